// Package orderstatus models the fulfillment lifecycle of an order as pure
// predicates over a closed status set. The wire values are the pt-BR strings
// the persistence API speaks.
//
// Every function here honors a never-fail contract: an unrecognized status
// string yields false or no transition, never a panic or an error.
package orderstatus

// Status is an order's fulfillment state.
type Status string

const (
	// Unknown is the zero value, used before the order is first persisted.
	Unknown Status = ""
	// Pending is the initial persisted state.
	Pending Status = "Pendente"
	// Preparing means the kitchen has started on the order.
	Preparing Status = "Preparando"
	// Ready means the order awaits pickup, serving, or dispatch.
	Ready Status = "Pronto"
	// OutForDelivery applies to delivery orders between Ready and Delivered.
	OutForDelivery Status = "Em Entrega"
	// Delivered is final.
	Delivered Status = "Entregue"
	// Completed is final.
	Completed Status = "Concluído"
	// Canceled is final for editing purposes, but may still be the target
	// of another cancel action (the operator "reopen" affordance).
	Canceled Status = "Cancelado"
	// Archived is final.
	Archived Status = "Arquivado"
)

// IsFinal reports whether the status permits no further edits or forward
// transitions.
func IsFinal(s Status) bool {
	switch s {
	case Delivered, Canceled, Completed, Archived:
		return true
	default:
		return false
	}
}

// CanEdit reports whether the order's contents may still be changed.
func CanEdit(s Status) bool {
	return !IsFinal(s)
}

// CanAdvance reports whether the order has a forward transition available.
// Unknown and unrecognized statuses cannot advance.
func CanAdvance(s Status) bool {
	switch s {
	case Pending, Preparing, Ready, OutForDelivery:
		return true
	default:
		return false
	}
}

// CanFinalize reports whether the order may be finalized (paid out and
// closed). Only orders that are ready or out for delivery qualify.
func CanFinalize(s Status) bool {
	return s == Ready || s == OutForDelivery
}

// CanCancel reports whether the cancel action is available. It is permitted
// for unpersisted and non-final orders, and also for orders already in
// Canceled: the UI reuses the cancel action to reopen them. CanEdit stays
// false for Canceled regardless.
func CanCancel(s Status) bool {
	return s == Unknown || s == Canceled || !IsFinal(s)
}

// Next returns the single-step forward transition from s, taking the
// delivery branch after Ready when isDelivery is set. The second return is
// false for final, unknown, and unrecognized statuses: there is no forward
// transition from a terminal state. Cancellation and archival are operator
// actions outside this map.
func Next(s Status, isDelivery bool) (Status, bool) {
	switch s {
	case Pending:
		return Preparing, true
	case Preparing:
		return Ready, true
	case Ready:
		if isDelivery {
			return OutForDelivery, true
		}
		return Delivered, true
	case OutForDelivery:
		return Delivered, true
	default:
		return Unknown, false
	}
}
