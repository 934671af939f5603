// Package catalog holds the read-only product and table catalog types
// supplied by external collaborators. The checkout core never mutates them.
package catalog

import (
	"github.com/shopspring/decimal"
)

// Product is a sellable catalog entry.
type Product struct {
	ID         string
	Name       string
	Category   string
	BasePrice  decimal.Decimal
	Variations []Variation
	Optionals  []Optional
}

// Variation is a mutually-exclusive price-affecting choice on a product,
// such as a size. A nil Price means the product's base price applies; a
// non-nil Price replaces the base price entirely.
type Variation struct {
	ID    string
	Name  string
	Price *decimal.Decimal
}

// Optional is an additive, repeatable add-on to a product. Its price
// contributes Price times the chosen quantity on top of the unit price.
type Optional struct {
	ID    string
	Name  string
	Price decimal.Decimal
}

// Table is a destination the order can be attached to.
type Table struct {
	ID   string
	Name string
}
