// Package money provides tolerant numeric coercion and currency formatting
// for monetary values.
//
// Catalog collaborators deliver prices as JSON numbers, numeric strings in
// either "1.234,56" or "1,234.56" shape, or null. All coercion here degrades
// to zero on malformed or negative input instead of returning an error:
// the values represent user-in-progress input, not terminal failures.
package money

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

var zero = decimal.Zero

// Parse converts a numeric string into a non-negative decimal. It accepts an
// optional "R$" prefix and both comma-decimal and dot-decimal notations with
// thousands separators. Unparsable or negative input yields zero.
func Parse(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	if s == "" {
		return zero
	}

	d, err := decimal.NewFromString(normalizeSeparators(s))
	if err != nil {
		return zero
	}
	return clampZero(d)
}

// Coerce converts an arbitrarily-typed price field into a non-negative
// decimal. Supported inputs are nil, decimal values, numeric Go types,
// json.Number, and numeric strings (per Parse). Anything else yields zero.
func Coerce(v any) decimal.Decimal {
	switch p := v.(type) {
	case nil:
		return zero
	case decimal.Decimal:
		return clampZero(p)
	case *decimal.Decimal:
		if p == nil {
			return zero
		}
		return clampZero(*p)
	case string:
		return Parse(p)
	case json.Number:
		return Parse(p.String())
	case float64:
		return clampZero(decimal.NewFromFloat(p))
	case float32:
		return clampZero(decimal.NewFromFloat32(p))
	case int:
		return clampZero(decimal.NewFromInt(int64(p)))
	case int64:
		return clampZero(decimal.NewFromInt(p))
	default:
		return zero
	}
}

// Format renders a decimal as a pt-BR currency string, e.g. "R$ 1.234,56".
func Format(d decimal.Decimal) string {
	neg := d.IsNegative()
	s := d.Abs().StringFixed(2)

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	b.WriteString("R$ ")
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}

// normalizeSeparators rewrites a human-entered numeric string into canonical
// dot-decimal form. When both separators appear, whichever comes last is the
// decimal separator; a lone comma is always decimal.
func normalizeSeparators(s string) string {
	lastDot := strings.LastIndexByte(s, '.')
	lastComma := strings.LastIndexByte(s, ',')

	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		if strings.Count(s, ",") > 1 {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.Replace(s, ",", ".", 1)
		}
	case lastDot >= 0:
		if strings.Count(s, ".") > 1 {
			s = strings.ReplaceAll(s, ".", "")
		}
	}
	return s
}

func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return zero
	}
	return d
}
