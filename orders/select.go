package orders

import (
	"strings"
	"time"

	"hey-sweetie-print/models"
	"hey-sweetie-print/utils"
)

// Select filters orders with the configured policy and expands the survivors by
// quantity. now is the instant sale dates are compared against.
func Select(list []models.Order, opts models.SelectOptions, now time.Time) []models.Order {
	return Expand(Filter(list, opts, now))
}

// Filter keeps the orders eligible for printing under opts
func Filter(list []models.Order, opts models.SelectOptions, now time.Time) []models.Order {
	kept := make([]models.Order, 0, len(list))
	for _, o := range list {
		if eligible(o, opts, now) {
			kept = append(kept, o)
		}
	}
	return kept
}

func eligible(o models.Order, opts models.SelectOptions, now time.Time) bool {
	switch opts.Mode {
	case models.ModeDateWindow:
		if strings.TrimSpace(o.DatePosted) != "" {
			return false
		}
		if opts.IncludeToday {
			return true
		}
		return soldBefore(o, now)
	default:
		return o.AwaitingFulfillment
	}
}

// soldBefore reports whether the end of the sale day is strictly before now.
// Orders without a readable sale date are kept.
func soldBefore(o models.Order, now time.Time) bool {
	if strings.TrimSpace(o.SaleDate) == "" {
		return true
	}
	endOfDay, err := utils.ParseSaleDate(o.SaleDate, now.Location())
	if err != nil {
		return true
	}
	return endOfDay.Before(now)
}

// Expand replaces each order with Quantity copies, keeping copies of the same order
// next to each other and distinct orders in their original order
func Expand(list []models.Order) []models.Order {
	total := 0
	for _, o := range list {
		total += max(o.Quantity, 1)
	}

	expanded := make([]models.Order, 0, total)
	for _, o := range list {
		for i := 0; i < max(o.Quantity, 1); i++ {
			expanded = append(expanded, o)
		}
	}
	return expanded
}
