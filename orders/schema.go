package orders

import "hey-sweetie-print/models"

// FieldMapping lists, per canonical field, the source columns to try in order
type FieldMapping struct {
	Name       []string
	Address1   []string
	Address2   []string
	Address3   []string
	Address4   []string
	Postcode   []string
	Message    []string
	Quantity   []string
	DatePosted []string
	SaleDate   []string
	// Fulfillment holds the status column; only Wix exports carry one
	Fulfillment []string
	// StripHelpText drops the marketplace prompt in front of the message
	StripHelpText bool
}

// Schema describes one export format: how to recognise it and how to map it
type Schema struct {
	Origin models.Origin
	// Markers are columns whose presence identifies the origin. Empty matches anything.
	Markers []string
	Fields  FieldMapping
}

// wixNotFulfilled is the exact fulfillment status of an open Wix order
const wixNotFulfilled = "not fulfilled"

// Schemas is checked in order; the first schema whose markers match wins, and the
// last entry (Bulk) matches every row.
var Schemas = []Schema{
	{
		Origin:  models.OriginEtsy,
		Markers: []string{"Transaction ID"},
		Fields: FieldMapping{
			Name:          []string{"Delivery Name", "Ship Name", "Buyer", "name"},
			Address1:      []string{"Delivery Address1", "Ship Address1"},
			Address2:      []string{"Delivery Address2", "Ship Address2"},
			Address3:      []string{"Delivery City", "Ship City"},
			Address4:      []string{"Delivery County", "Delivery State", "Ship State"},
			Postcode:      []string{"Delivery Zipcode", "Ship Zipcode"},
			Message:       []string{"Variations", "Personalisation"},
			Quantity:      []string{"Quantity"},
			DatePosted:    []string{"Date Posted"},
			SaleDate:      []string{"Sale Date"},
			StripHelpText: true,
		},
	},
	{
		Origin:  models.OriginWix,
		Markers: []string{"Order #", "Order number"},
		Fields: FieldMapping{
			Name:          []string{"Delivery customer", "Billing customer", "name"},
			Address1:      []string{"Delivery address", "Delivery street name and number"},
			Address2:      []string{"Delivery apartment/unit"},
			Address3:      []string{"Delivery city"},
			Address4:      []string{"Delivery state", "Delivery country"},
			Postcode:      []string{"Delivery zip/postal code"},
			Message:       []string{"Custom text", "Note from customer"},
			Quantity:      []string{"Qty", "Quantity"},
			SaleDate:      []string{"Date created"},
			Fulfillment:   []string{"Fulfillment status"},
			StripHelpText: true,
		},
	},
	{
		Origin: models.OriginBulk,
		Fields: FieldMapping{
			Name:     []string{"Delivery Name", "Name", "name"},
			Address1: []string{"Address1", "Address 1", "address1"},
			Address2: []string{"Address2", "Address 2", "address2"},
			Address3: []string{"Address3", "Address 3", "City", "address3"},
			Address4: []string{"Address4", "Address 4", "County", "address4"},
			Postcode: []string{"Postcode", "Post Code", "postcode"},
			Message:  []string{"Message", "message"},
			Quantity: []string{"Quantity", "quantity"},
		},
	},
}

// SchemaFor returns the schema registered for origin
func SchemaFor(origin models.Origin) (Schema, bool) {
	for _, s := range Schemas {
		if s.Origin == origin {
			return s, true
		}
	}
	return Schema{}, false
}
