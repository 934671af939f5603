package payment

import (
	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"
)

// SinglePayment is the wire form of a one-method payment.
type SinglePayment struct {
	MethodID string
	// NeedsChange asks the counter to calculate change from ReceivedAmount.
	NeedsChange bool
	// ReceivedAmount is nil unless a change calculation applies.
	ReceivedAmount *decimal.Decimal
}

// SplitPayment is the wire form of one settled split leg.
type SplitPayment struct {
	MethodID    string
	Amount      decimal.Decimal
	NeedsChange bool
}

// Payload is the payment portion of the order submission. Exactly one of
// Single and Split is populated.
type Payload struct {
	Single *SinglePayment
	Split  []SplitPayment
}

// BuildSubmissionPayload converts the operator's payment state into the wire
// payload. Split legs without a positive entered amount are dropped; a split
// leg needs change exactly when its method is cash. Preconditions (a method
// selected, amounts complete) are the Validation Engine's responsibility and
// are not re-checked here.
func BuildSubmissionPayload(s State) Payload {
	if s.Mode == ModeSplit {
		legs := make([]SplitPayment, 0, len(s.Split))
		for _, item := range s.Split {
			if item.Amount == nil || !item.Amount.IsPositive() {
				continue
			}
			legs = append(legs, SplitPayment{
				MethodID:    item.Method.ID,
				Amount:      *item.Amount,
				NeedsChange: item.Method.IsCash(),
			})
		}
		return Payload{Split: legs}
	}

	var received *decimal.Decimal
	if s.NeedsChange {
		received = s.ReceivedAmount
	}
	return Payload{Single: &SinglePayment{
		MethodID:       s.SingleMethodID,
		NeedsChange:    s.NeedsChange,
		ReceivedAmount: received,
	}}
}

// Encode writes the payload as a JSON object using the persistence API's
// field names.
func (p Payload) Encode(e *jx.Encoder) {
	e.ObjStart()
	if p.Single != nil {
		e.FieldStart("payment_method_id")
		e.Str(p.Single.MethodID)
		e.FieldStart("precisa_troco")
		e.Bool(p.Single.NeedsChange)
		e.FieldStart("valor_recebido")
		if p.Single.ReceivedAmount != nil {
			e.Float64(p.Single.ReceivedAmount.InexactFloat64())
		} else {
			e.Null()
		}
	} else {
		e.FieldStart("split_payments")
		e.ArrStart()
		for _, leg := range p.Split {
			e.ObjStart()
			e.FieldStart("payment_method_id")
			e.Str(leg.MethodID)
			e.FieldStart("amount")
			e.Float64(leg.Amount.InexactFloat64())
			e.FieldStart("needs_change")
			e.Bool(leg.NeedsChange)
			e.ObjEnd()
		}
		e.ArrEnd()
	}
	e.ObjEnd()
}
