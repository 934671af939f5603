package validate

import (
	"github.com/shopspring/decimal"

	"github.com/xenking/mesa-pos/cart"
	"github.com/xenking/mesa-pos/orderstatus"
	"github.com/xenking/mesa-pos/payment"
)

// BeforeStart gates the first submission of a new order: the cart must have
// items, a destination must be chosen, and the payment input must be usable.
func BeforeStart(lines []cart.Line, tableID string, isDelivery bool, pay payment.State, total decimal.Decimal) []Issue {
	var issues []Issue
	issues = collect(issues,
		CartNotEmpty(lines),
		DestinationSelected(tableID, isDelivery),
		PaymentSelected(pay),
	)
	issues = collectPayment(issues, total, pay)
	return issues
}

// BeforeUpdate gates edits to an already-persisted order.
func BeforeUpdate(status orderstatus.Status, lines []cart.Line) []Issue {
	var issues []Issue
	return collect(issues,
		StatusAllowsEditing(status),
		CartNotEmpty(lines),
	)
}

// BeforeFinalize gates closing the order out: the status must permit it and
// the payment must be resolved in full.
func BeforeFinalize(status orderstatus.Status, lines []cart.Line, pay payment.State, total decimal.Decimal) []Issue {
	var issues []Issue
	issues = collect(issues,
		StatusAllowsEditing(status),
		StatusAllowsFinalizing(status),
		CartNotEmpty(lines),
		PaymentSelected(pay),
	)
	issues = collectPayment(issues, total, pay)
	return issues
}

// collectPayment appends the mode-dependent payment checks: split
// completeness in split mode, received-amount sufficiency when a cash change
// calculation was requested.
func collectPayment(issues []Issue, total decimal.Decimal, pay payment.State) []Issue {
	if pay.Mode == payment.ModeSplit {
		return collect(issues, PaymentComplete(total, pay))
	}
	if pay.NeedsChange {
		return collect(issues, ReceivedAmountSufficient(total, pay.ReceivedAmount))
	}
	return issues
}

func collect(issues []Issue, found ...*Issue) []Issue {
	for _, issue := range found {
		if issue != nil {
			issues = append(issues, *issue)
		}
	}
	return issues
}
