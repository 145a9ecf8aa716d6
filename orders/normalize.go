// Package orders turns raw export rows into canonical orders and decides which of
// them get printed.
package orders

import (
	"strings"

	"hey-sweetie-print/models"
	"hey-sweetie-print/utils"
)

// Classify determines the origin of a row from the columns it carries.
// Schemas are checked in priority order, so the result does not depend on column order.
func Classify(raw models.RawRow) models.Origin {
	for _, s := range Schemas {
		if len(s.Markers) == 0 || utils.HasAny(raw, s.Markers) {
			return s.Origin
		}
	}
	return models.OriginBulk
}

// Normalize maps a raw row onto a canonical Order. It never fails: missing columns
// become empty fields and a bad quantity becomes 1.
func Normalize(raw models.RawRow) models.Order {
	origin := Classify(raw)
	schema, ok := SchemaFor(origin)
	if !ok {
		schema = Schemas[len(Schemas)-1]
	}
	f := schema.Fields

	// the first message column wins even when blank, so a later column is never
	// mistaken for the personalisation
	message := utils.FirstPresent(raw, f.Message)
	if f.StripHelpText && message != "" {
		message = utils.StripHelpText(message)
	}
	message = strings.TrimSpace(message)

	order := models.Order{
		Name:       utils.FirstNonEmpty(raw, f.Name),
		Address1:   utils.FirstNonEmpty(raw, f.Address1),
		Address2:   utils.FirstNonEmpty(raw, f.Address2),
		Address3:   utils.FirstNonEmpty(raw, f.Address3),
		Address4:   utils.FirstNonEmpty(raw, f.Address4),
		Postcode:   utils.FirstNonEmpty(raw, f.Postcode),
		Message:    message,
		DatePosted: utils.FirstNonEmpty(raw, f.DatePosted),
		SaleDate:   utils.FirstNonEmpty(raw, f.SaleDate),
		Origin:     origin,
		Quantity:   utils.ParseQuantity(utils.FirstNonEmpty(raw, f.Quantity)),
	}
	order.AwaitingFulfillment = awaitingFulfillment(origin, raw, order)

	return order
}

func awaitingFulfillment(origin models.Origin, raw models.RawRow, order models.Order) bool {
	switch origin {
	case models.OriginEtsy:
		return strings.TrimSpace(order.DatePosted) == ""
	case models.OriginWix:
		schema, _ := SchemaFor(models.OriginWix)
		for _, column := range schema.Fields.Fulfillment {
			if v, ok := raw[column]; ok {
				return v == wixNotFulfilled
			}
		}
		return false
	default:
		return true
	}
}

// NormalizeAll normalizes every row, keeping input order
func NormalizeAll(rows []models.RawRow) []models.Order {
	result := make([]models.Order, 0, len(rows))
	for _, row := range rows {
		result = append(result, Normalize(row))
	}
	return result
}

// CountByOrigin tallies orders per origin
func CountByOrigin(list []models.Order) map[models.Origin]int {
	counts := make(map[models.Origin]int, len(models.Origins))
	for _, o := range list {
		counts[o.Origin]++
	}
	return counts
}
