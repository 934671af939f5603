// Package cart implements the in-memory order-in-progress: cart lines keyed
// by their product/variation/optionals identity, with duplicate-merge
// semantics and change notification.
package cart

import (
	"sort"
	"strconv"
	"strings"

	"github.com/xenking/mesa-pos/catalog"
)

// SelectedOptional is an optional chosen for a cart line together with how
// many times it was added.
type SelectedOptional struct {
	Optional catalog.Optional
	Quantity int
}

// Line is one entry in the order-in-progress: a product with a specific
// variation/optionals configuration. Observation is free text and is not part
// of the line's identity.
type Line struct {
	Key         LineKey
	Product     catalog.Product
	Variation   *catalog.Variation
	Optionals   []SelectedOptional
	Quantity    int
	Observation string
}

// LineKey is the value-type identity of a cart line: product, variation, and
// the sorted optional selection. Two lines with equal keys must be merged,
// never duplicated. It is comparable and usable as a map key.
type LineKey struct {
	ProductID   string
	VariationID string
	// Optionals is the canonical "id:qty" encoding of the selected
	// optionals, sorted by id.
	Optionals string
}

// NewLineKey derives the key for a product/variation/optionals selection.
func NewLineKey(productID, variationID string, optionals []SelectedOptional) LineKey {
	parts := make([]string, 0, len(optionals))
	for _, o := range optionals {
		parts = append(parts, o.Optional.ID+":"+strconv.Itoa(o.Quantity))
	}
	sort.Strings(parts)

	return LineKey{
		ProductID:   productID,
		VariationID: variationID,
		Optionals:   strings.Join(parts, ","),
	}
}

// KeyOf derives the key for a line from its current selection.
func KeyOf(line Line) LineKey {
	variationID := ""
	if line.Variation != nil {
		variationID = line.Variation.ID
	}
	return NewLineKey(line.Product.ID, variationID, line.Optionals)
}
