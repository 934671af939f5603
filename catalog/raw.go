package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/xenking/mesa-pos/pkg/money"
)

// RawProduct mirrors a catalog entry as delivered by the external catalog
// API, where price fields arrive untyped: a JSON number, a formatted numeric
// string, or null.
type RawProduct struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Category   string         `json:"category"`
	Price      any            `json:"price"`
	Variations []RawVariation `json:"variations"`
	Optionals  []RawOptional  `json:"optionals"`
}

// RawVariation mirrors a variation as delivered by the catalog API.
type RawVariation struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price any    `json:"price"`
}

// RawOptional mirrors an optional as delivered by the catalog API.
type RawOptional struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price any    `json:"price"`
}

// ProductFromRaw converts a raw catalog entry into a Product with clean
// decimal prices. Malformed or negative prices coerce to zero; a variation
// price is kept nil only when the raw value is absent, preserving the
// distinction between "no own price" and "costs zero".
func ProductFromRaw(r RawProduct) Product {
	p := Product{
		ID:        r.ID,
		Name:      r.Name,
		Category:  r.Category,
		BasePrice: money.Coerce(r.Price),
	}

	if len(r.Variations) > 0 {
		p.Variations = make([]Variation, len(r.Variations))
		for i, v := range r.Variations {
			p.Variations[i] = Variation{ID: v.ID, Name: v.Name, Price: coerceNullable(v.Price)}
		}
	}
	if len(r.Optionals) > 0 {
		p.Optionals = make([]Optional, len(r.Optionals))
		for i, o := range r.Optionals {
			p.Optionals[i] = Optional{ID: o.ID, Name: o.Name, Price: money.Coerce(o.Price)}
		}
	}
	return p
}

func coerceNullable(v any) *decimal.Decimal {
	if v == nil {
		return nil
	}
	if s, ok := v.(string); ok && s == "" {
		return nil
	}
	d := money.Coerce(v)
	return &d
}
