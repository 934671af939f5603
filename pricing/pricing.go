// Package pricing resolves cart line prices and aggregates order totals.
// All functions are pure; they never fail and never return negative money.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/xenking/mesa-pos/cart"
)

var (
	hundred = decimal.NewFromInt(100)
	zero    = decimal.Zero
)

// Totals is the derived monetary summary of a cart. It is recomputed on
// every read, never stored.
type Totals struct {
	Subtotal  decimal.Decimal
	Taxes     decimal.Decimal
	Discounts decimal.Decimal
	Total     decimal.Decimal
}

// UnitPrice resolves the price of one unit of the line: the variation price
// when the selected variation carries its own price, else the product's base
// price, plus every selected optional's price times its quantity.
func UnitPrice(line cart.Line) decimal.Decimal {
	price := line.Product.BasePrice
	if line.Variation != nil && line.Variation.Price != nil {
		price = *line.Variation.Price
	}

	for _, opt := range line.Optionals {
		if opt.Quantity <= 0 {
			continue
		}
		price = price.Add(opt.Optional.Price.Mul(decimal.NewFromInt(int64(opt.Quantity))))
	}
	return floorAtZero(price)
}

// LineTotal returns UnitPrice times the line quantity.
func LineTotal(line cart.Line) decimal.Decimal {
	if line.Quantity <= 0 {
		return zero
	}
	return UnitPrice(line).Mul(decimal.NewFromInt(int64(line.Quantity)))
}

// Subtotal returns the sum of LineTotal across all lines.
func Subtotal(lines []cart.Line) decimal.Decimal {
	sum := zero
	for _, line := range lines {
		sum = sum.Add(LineTotal(line))
	}
	return sum
}

// ComputeTotals aggregates the cart into subtotal, taxes, discounts, and the
// payable total. Taxes and the percentage discount are computed against the
// subtotal; the total is floored at zero. Negative rate or amount inputs are
// coerced to zero contributions.
func ComputeTotals(lines []cart.Line, taxRatePercent, discountAmount, discountPercent decimal.Decimal) Totals {
	subtotal := Subtotal(lines)

	taxes := floorAtZero(subtotal.Mul(taxRatePercent).Div(hundred)).Round(2)

	discounts := floorAtZero(discountAmount).
		Add(floorAtZero(subtotal.Mul(discountPercent).Div(hundred))).
		Round(2)

	total := floorAtZero(subtotal.Add(taxes).Sub(discounts)).Round(2)

	return Totals{
		Subtotal:  subtotal.Round(2),
		Taxes:     taxes,
		Discounts: discounts,
		Total:     total,
	}
}

// floorAtZero clamps negative values to zero.
func floorAtZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return zero
	}
	return d
}
