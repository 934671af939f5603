package payment

import (
	"github.com/shopspring/decimal"
)

// Mode selects between a single payment method and a split across several.
type Mode int

const (
	// ModeSingle settles the whole total with one method.
	ModeSingle Mode = iota
	// ModeSplit settles the total across multiple methods.
	ModeSplit
)

// SplitItem is one leg of a split payment in progress. A nil Amount means
// the operator has not entered a value yet, which is distinct from zero.
type SplitItem struct {
	Method Method
	Amount *decimal.Decimal
}

// State is the operator's payment input for the order in progress.
type State struct {
	Mode           Mode
	SingleMethodID string
	Split          []SplitItem
	// NeedsChange marks a cash flow where change must be calculated from
	// ReceivedAmount. Single mode only.
	NeedsChange    bool
	ReceivedAmount *decimal.Decimal
}

// Selected reports whether any payment choice has been made: a method id in
// single mode, or at least one split leg in split mode.
func (s State) Selected() bool {
	if s.Mode == ModeSplit {
		return len(s.Split) > 0
	}
	return s.SingleMethodID != ""
}

// TotalPaid sums the entered split amounts, treating unentered legs as zero.
func TotalPaid(items []SplitItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		if item.Amount != nil {
			sum = sum.Add(*item.Amount)
		}
	}
	return sum
}

// IsComplete reports whether the payment input can settle the given total.
// In split mode the entered amounts must reach the total; amounts equal to
// the total are complete, one cent short is not. In single mode selecting a
// method is enough: received-amount sufficiency for cash flows is a separate
// validation concern.
func IsComplete(total decimal.Decimal, s State) bool {
	if s.Mode == ModeSplit {
		return TotalPaid(s.Split).GreaterThanOrEqual(total)
	}
	return s.SingleMethodID != ""
}

// ChangeDue returns the overpayment across split legs, floored at zero.
func ChangeDue(total decimal.Decimal, items []SplitItem) decimal.Decimal {
	change := TotalPaid(items).Sub(total)
	if change.IsNegative() {
		return decimal.Zero
	}
	return change
}

// BreakdownEntry is one method/amount pair shown on the confirmation screen.
type BreakdownEntry struct {
	Method Method
	Amount decimal.Decimal
}

// ConfirmationBreakdown builds the method/amount pairs the operator confirms
// before submission. In split mode, legs without a positive entered amount
// are dropped and the rest pass through as-is. In single mode the method is
// resolved from the catalog and the amount is the received cash when a change
// calculation was requested, else the order total. An unresolvable method id
// yields an empty breakdown.
func ConfirmationBreakdown(s State, methods []Method, total decimal.Decimal) []BreakdownEntry {
	if s.Mode == ModeSplit {
		out := make([]BreakdownEntry, 0, len(s.Split))
		for _, item := range s.Split {
			if item.Amount == nil || !item.Amount.IsPositive() {
				continue
			}
			out = append(out, BreakdownEntry{Method: item.Method, Amount: *item.Amount})
		}
		return out
	}

	m, ok := FindMethod(methods, s.SingleMethodID)
	if !ok {
		return nil
	}

	amount := total
	if s.NeedsChange && s.ReceivedAmount != nil {
		amount = *s.ReceivedAmount
	}
	return []BreakdownEntry{{Method: m, Amount: amount}}
}
