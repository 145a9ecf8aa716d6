package models

import "strings"

// RawRow represents one row of an order export, keyed by column header
type RawRow map[string]string

// Has reports whether the row carries the given column, even if its value is empty
func (r RawRow) Has(column string) bool {
	_, ok := r[column]
	return ok
}

// Origin identifies which export schema a row came from
type Origin string

const (
	OriginEtsy Origin = "etsy"
	OriginWix  Origin = "wix"
	OriginBulk Origin = "bulk"
)

// Origins lists every known origin in classification priority order
var Origins = []Origin{OriginEtsy, OriginWix, OriginBulk}

// Order represents one normalized order, independent of the export it came from
type Order struct {
	Name                string `json:"name,omitempty"`
	Address1            string `json:"address1,omitempty"`
	Address2            string `json:"address2,omitempty"`
	Address3            string `json:"address3,omitempty"`
	Address4            string `json:"address4,omitempty"`
	Postcode            string `json:"postcode,omitempty"`
	Message             string `json:"message,omitempty"`
	AwaitingFulfillment bool   `json:"awaitingFulfillment"`
	DatePosted          string `json:"datePosted,omitempty"`
	SaleDate            string `json:"saleDate,omitempty"`
	Origin              Origin `json:"origin"`
	Quantity            int    `json:"quantity"` // always >= 1
}

// HasMessage reports whether the order carries a personalised message
func (o Order) HasMessage() bool {
	return strings.TrimSpace(o.Message) != ""
}

// AddressLines returns the non-empty address fields in label order
func (o Order) AddressLines() []string {
	fields := []string{o.Name, o.Address1, o.Address2, o.Address3, o.Address4, o.Postcode}
	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			lines = append(lines, f)
		}
	}
	return lines
}
