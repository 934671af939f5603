package checkout

import (
	"github.com/go-faster/jx"

	"github.com/xenking/mesa-pos/cart"
	"github.com/xenking/mesa-pos/payment"
)

// OrderPayload is the order create/update document handed to the persistence
// collaborator. Its shape assumes the validation pipelines already passed;
// preconditions are not re-checked during encoding.
type OrderPayload struct {
	ID       string
	TableID  string
	Delivery bool
	Lines    []cart.Line
	Payment  payment.Payload
}

// Encode writes the payload as a JSON object.
func (p OrderPayload) Encode(e *jx.Encoder) {
	e.ObjStart()

	e.FieldStart("id")
	e.Str(p.ID)

	if p.Delivery {
		e.FieldStart("is_delivery")
		e.Bool(true)
	} else {
		e.FieldStart("table_id")
		e.Str(p.TableID)
	}

	e.FieldStart("items")
	e.ArrStart()
	for _, line := range p.Lines {
		encodeLine(e, line)
	}
	e.ArrEnd()

	e.FieldStart("payment")
	p.Payment.Encode(e)

	e.ObjEnd()
}

func encodeLine(e *jx.Encoder, line cart.Line) {
	e.ObjStart()

	e.FieldStart("product_id")
	e.Str(line.Product.ID)

	if line.Variation != nil {
		e.FieldStart("variation_id")
		e.Str(line.Variation.ID)
	}

	e.FieldStart("quantity")
	e.Int(line.Quantity)

	if line.Observation != "" {
		e.FieldStart("observation")
		e.Str(line.Observation)
	}

	if len(line.Optionals) > 0 {
		e.FieldStart("optionals")
		e.ArrStart()
		for _, opt := range line.Optionals {
			e.ObjStart()
			e.FieldStart("optional_id")
			e.Str(opt.Optional.ID)
			e.FieldStart("quantity")
			e.Int(opt.Quantity)
			e.ObjEnd()
		}
		e.ArrEnd()
	}

	e.ObjEnd()
}
