package models

import (
	"strings"
	"time"
)

// PartStatus is the checkout state of a part.
type PartStatus string

const (
	StatusAvailable  PartStatus = "available"
	StatusCheckedOut PartStatus = "checked_out"
)

// Part is a single tracked inventory item. Parts are stored and written back
// as a whole collection; individual records are never patched in place.
type Part struct {
	ID           int        `json:"id" bson:"id"`
	PartNumber   string     `json:"partNumber" bson:"part_number"`
	Description  string     `json:"description" bson:"description"`
	Shelf        string     `json:"shelf,omitempty" bson:"shelf,omitempty"`
	Category     string     `json:"category,omitempty" bson:"category,omitempty"`
	Status       PartStatus `json:"status" bson:"status"`
	CheckedOutBy string     `json:"checkedOutBy,omitempty" bson:"checked_out_by,omitempty"`
	CheckedOutAt *time.Time `json:"checkedOutAt,omitempty" bson:"checked_out_at,omitempty"`
	Quantity     int        `json:"quantity" bson:"quantity"`
	MinQuantity  int        `json:"minQuantity" bson:"min_quantity"`
	Cost         float64    `json:"cost" bson:"cost"`
	Supplier     string     `json:"supplier,omitempty" bson:"supplier,omitempty"`
	Notes        string     `json:"notes,omitempty" bson:"notes,omitempty"`
	UpdatedAt    time.Time  `json:"lastModified" bson:"updated_at"`
	UpdatedBy    string     `json:"modifiedBy,omitempty" bson:"updated_by,omitempty"`
}

// SameNumber reports whether the part number matches n, ignoring case.
// Part numbers are unique case-insensitively across the collection.
func (p Part) SameNumber(n string) bool {
	return strings.EqualFold(p.PartNumber, n)
}

// Field returns the string form of a named searchable field. Unknown field
// names yield an empty string, which never matches a non-empty query.
func (p Part) Field(name string) string {
	switch name {
	case "partNumber":
		return p.PartNumber
	case "description":
		return p.Description
	case "category":
		return p.Category
	case "shelf":
		return p.Shelf
	case "supplier":
		return p.Supplier
	case "notes":
		return p.Notes
	case "status":
		return string(p.Status)
	}
	return ""
}

// NumericField returns the numeric value of a named field for range filters.
func (p Part) NumericField(name string) (float64, bool) {
	switch name {
	case "quantity":
		return float64(p.Quantity), true
	case "minQuantity":
		return float64(p.MinQuantity), true
	case "cost":
		return p.Cost, true
	case "id":
		return float64(p.ID), true
	}
	return 0, false
}
