package validate

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/xenking/mesa-pos/cart"
	"github.com/xenking/mesa-pos/orderstatus"
	"github.com/xenking/mesa-pos/payment"
	"github.com/xenking/mesa-pos/pkg/money"
)

// CartNotEmpty fails when the cart has no lines.
func CartNotEmpty(lines []cart.Line) *Issue {
	if len(lines) > 0 {
		return nil
	}
	return &Issue{
		Field:    "cart",
		Message:  "Adicione pelo menos um item ao carrinho",
		Severity: SeverityError,
	}
}

// DestinationSelected fails when neither a table nor the delivery flag is
// set. Delivery and pickup orders need no table.
func DestinationSelected(tableID string, isDelivery bool) *Issue {
	if isDelivery || tableID != "" {
		return nil
	}
	return &Issue{
		Field:    "table",
		Message:  "Selecione uma mesa ou marque o pedido como entrega",
		Severity: SeverityError,
	}
}

// PaymentSelected fails when no payment choice has been made: no method id
// in single mode, no legs in split mode.
func PaymentSelected(pay payment.State) *Issue {
	if pay.Selected() {
		return nil
	}
	return &Issue{
		Field:    "payment",
		Message:  "Selecione uma forma de pagamento",
		Severity: SeverityError,
	}
}

// PaymentComplete fails when the entered split amounts do not reach the
// order total. The message names both amounts as currency. Single-mode
// states are always complete here; see ReceivedAmountSufficient for the
// cash-change flow.
func PaymentComplete(total decimal.Decimal, pay payment.State) *Issue {
	if pay.Mode != payment.ModeSplit {
		return nil
	}
	paid := payment.TotalPaid(pay.Split)
	if paid.GreaterThanOrEqual(total) {
		return nil
	}
	return &Issue{
		Field: "payment",
		Message: fmt.Sprintf("Pagamento incompleto: informado %s de %s",
			money.Format(paid), money.Format(total)),
		Severity: SeverityError,
	}
}

// ReceivedAmountSufficient fails when a change calculation was requested but
// the received amount is absent, non-positive, or below the order total.
func ReceivedAmountSufficient(total decimal.Decimal, received *decimal.Decimal) *Issue {
	if received != nil && received.IsPositive() && received.GreaterThanOrEqual(total) {
		return nil
	}
	return &Issue{
		Field: "receivedAmount",
		Message: fmt.Sprintf("Informe um valor recebido de pelo menos %s para calcular o troco",
			money.Format(total)),
		Severity: SeverityError,
	}
}

// StatusAllowsEditing fails when the order reached a final status.
func StatusAllowsEditing(s orderstatus.Status) *Issue {
	if orderstatus.CanEdit(s) {
		return nil
	}
	return &Issue{
		Field:    "status",
		Message:  fmt.Sprintf("Pedido com status %q não pode mais ser editado", statusName(s)),
		Severity: SeverityError,
	}
}

// StatusAllowsFinalizing fails when the order is already in a final status
// or has not yet reached a finalizable one. The message names the current
// status.
func StatusAllowsFinalizing(s orderstatus.Status) *Issue {
	if orderstatus.CanFinalize(s) {
		return nil
	}
	msg := fmt.Sprintf("Pedido com status %q ainda não pode ser finalizado", statusName(s))
	if orderstatus.IsFinal(s) {
		msg = fmt.Sprintf("Pedido com status %q já foi finalizado", statusName(s))
	}
	return &Issue{
		Field:    "status",
		Message:  msg,
		Severity: SeverityError,
	}
}

// TableOccupied flags the destination table when the open-orders snapshot
// already maps it to a different order. The snapshot is passed in by the
// caller; this check never reads ambient state. The finding is informational
// only: reservation races are settled by the persistence layer, not here.
func TableOccupied(tableID, currentOrderID string, open map[string]string) *Issue {
	if tableID == "" {
		return nil
	}
	other, ok := open[tableID]
	if !ok || other == "" || other == currentOrderID {
		return nil
	}
	return &Issue{
		Field:    "table",
		Message:  "Mesa ocupada por outro pedido em aberto",
		Severity: SeverityInfo,
	}
}

func statusName(s orderstatus.Status) string {
	if s == orderstatus.Unknown {
		return "desconhecido"
	}
	return string(s)
}
