// Package checkout composes the cart store, pricing, payment, status, and
// validation pieces into the single-operator order session and owns the
// write boundary to the external persistence collaborator.
package checkout

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/xenking/mesa-pos/cart"
	"github.com/xenking/mesa-pos/orderstatus"
	"github.com/xenking/mesa-pos/payment"
	"github.com/xenking/mesa-pos/pricing"
	"github.com/xenking/mesa-pos/validate"
)

// Sentinel errors for transition requests.
var (
	ErrNoForwardTransition = errors.New("no forward transition from current status")
	ErrCancelNotAllowed    = errors.New("order status does not permit cancellation")
)

// Destination is where the order goes: a table, or out for delivery/pickup.
type Destination struct {
	TableID  string
	Delivery bool
}

// Submitter is the external persistence collaborator. It is the authority on
// writes: it may reject a payload (for example when two operators raced for
// the same table) and the operator retries by re-invoking the same call.
type Submitter interface {
	SubmitOrder(ctx context.Context, payload []byte) error
	SubmitStatus(ctx context.Context, orderID string, status orderstatus.Status) error
}

// Session is one operator's order in progress. It owns the cart store
// exclusively; nothing here is safe for concurrent use, by contract.
type Session struct {
	id     string
	cart   *cart.Store
	dest   Destination
	pay    payment.State
	status orderstatus.Status

	methods []payment.Method

	taxRatePercent  decimal.Decimal
	discountAmount  decimal.Decimal
	discountPercent decimal.Decimal

	submitter Submitter
	metrics   sessionMetrics
}

// NewSession creates a session with a fresh cart and a client-generated
// order id, using the config's tax and discount defaults.
func NewSession(cfg Config, methods []payment.Method, submitter Submitter) (*Session, error) {
	m, err := newSessionMetrics()
	if err != nil {
		return nil, errors.Wrap(err, "init metrics")
	}

	return &Session{
		id:              uuid.New().String(),
		cart:            cart.NewStore(),
		methods:         methods,
		taxRatePercent:  decimal.NewFromFloat(cfg.TaxRatePercent),
		discountAmount:  decimal.NewFromFloat(cfg.DiscountAmount),
		discountPercent: decimal.NewFromFloat(cfg.DiscountPercent),
		submitter:       submitter,
		metrics:         m,
	}, nil
}

// ID returns the client-generated order identity stamped into payloads.
func (s *Session) ID() string { return s.id }

// Cart exposes the session's cart store.
func (s *Session) Cart() *cart.Store { return s.cart }

// Status returns the order's last known fulfillment status.
func (s *Session) Status() orderstatus.Status { return s.status }

// SetStatus records the status reported back by the persistence layer.
func (s *Session) SetStatus(status orderstatus.Status) { s.status = status }

// Destination returns the current destination.
func (s *Session) Destination() Destination { return s.dest }

// SetDestination selects the order's table or delivery destination.
func (s *Session) SetDestination(d Destination) { s.dest = d }

// Payment returns the operator's current payment input.
func (s *Session) Payment() payment.State { return s.pay }

// SetPayment replaces the operator's payment input.
func (s *Session) SetPayment(p payment.State) { s.pay = p }

// SetDiscounts overrides the config defaults for this order.
func (s *Session) SetDiscounts(amount, percent decimal.Decimal) {
	s.discountAmount = amount
	s.discountPercent = percent
}

// Totals recomputes the monetary summary from the live cart on every call;
// it is never cached across mutations.
func (s *Session) Totals() pricing.Totals {
	return pricing.ComputeTotals(s.cart.Lines(), s.taxRatePercent, s.discountAmount, s.discountPercent)
}

// Breakdown builds the confirmation method/amount pairs for the current
// payment input.
func (s *Session) Breakdown() []payment.BreakdownEntry {
	return payment.ConfirmationBreakdown(s.pay, s.methods, s.Totals().Total)
}

// ChangeDue returns the change owed to the customer for the current payment
// input: split overpayment in split mode, received cash minus total in a
// single-mode change flow.
func (s *Session) ChangeDue() decimal.Decimal {
	total := s.Totals().Total
	if s.pay.Mode == payment.ModeSplit {
		return payment.ChangeDue(total, s.pay.Split)
	}
	if s.pay.NeedsChange && s.pay.ReceivedAmount != nil {
		change := s.pay.ReceivedAmount.Sub(total)
		if change.IsPositive() {
			return change
		}
	}
	return decimal.Zero
}

// BeforeStart runs the new-order pipeline. The open-orders snapshot is
// passed in by the caller and only feeds the informational table-occupancy
// check; it never blocks.
func (s *Session) BeforeStart(open map[string]string) []validate.Issue {
	issues := validate.BeforeStart(s.cart.Lines(), s.dest.TableID, s.dest.Delivery, s.pay, s.Totals().Total)
	if issue := validate.TableOccupied(s.dest.TableID, s.id, open); issue != nil {
		issues = append(issues, *issue)
	}
	return issues
}

// BeforeUpdate runs the edit pipeline against the last known status.
func (s *Session) BeforeUpdate() []validate.Issue {
	return validate.BeforeUpdate(s.status, s.cart.Lines())
}

// BeforeFinalize runs the finalization pipeline.
func (s *Session) BeforeFinalize() []validate.Issue {
	return validate.BeforeFinalize(s.status, s.cart.Lines(), s.pay, s.Totals().Total)
}

// Submit validates the order and hands the encoded payload to the persistence
// collaborator. A non-empty blocking issue list is returned without
// submitting and without error; submission failures are returned for the
// operator to retry with the same call.
func (s *Session) Submit(ctx context.Context, open map[string]string) ([]validate.Issue, error) {
	var issues []validate.Issue
	if s.status == orderstatus.Unknown {
		issues = s.BeforeStart(open)
	} else {
		issues = s.BeforeUpdate()
	}
	if validate.Blocking(issues) {
		return issues, nil
	}

	total := s.Totals().Total
	payload := s.encodeOrder()

	lg := zctx.From(ctx)
	lg.Info("Submitting order",
		zap.String("order_id", s.id),
		zap.Int("lines", s.cart.Len()),
		zap.String("total", total.String()),
	)

	if err := s.submitter.SubmitOrder(ctx, payload); err != nil {
		return issues, errors.Wrap(err, "submit order")
	}

	s.metrics.submitted.Add(ctx, 1)
	s.metrics.orderTotal.Record(ctx, total.InexactFloat64())
	return issues, nil
}

// Advance requests the single-step forward transition for the order. It
// fails with ErrNoForwardTransition when the status machine has no next step.
func (s *Session) Advance(ctx context.Context) (orderstatus.Status, error) {
	next, ok := orderstatus.Next(s.status, s.dest.Delivery)
	if !ok {
		return orderstatus.Unknown, ErrNoForwardTransition
	}
	if err := s.requestStatus(ctx, next); err != nil {
		return orderstatus.Unknown, err
	}
	return next, nil
}

// Cancel requests cancellation. Canceling an already-canceled order is
// permitted (the UI reuses the action to reopen) and resubmits the same
// status; the persistence layer decides what reopening means.
func (s *Session) Cancel(ctx context.Context) error {
	if !orderstatus.CanCancel(s.status) {
		return ErrCancelNotAllowed
	}
	return s.requestStatus(ctx, orderstatus.Canceled)
}

// Finalize validates and requests the closing transition to Concluído. A
// blocking issue list is returned without submitting and without error.
func (s *Session) Finalize(ctx context.Context) ([]validate.Issue, error) {
	issues := s.BeforeFinalize()
	if validate.Blocking(issues) {
		return issues, nil
	}
	if err := s.requestStatus(ctx, orderstatus.Completed); err != nil {
		return issues, err
	}
	return issues, nil
}

func (s *Session) requestStatus(ctx context.Context, target orderstatus.Status) error {
	zctx.From(ctx).Info("Requesting status transition",
		zap.String("order_id", s.id),
		zap.String("from", string(s.status)),
		zap.String("to", string(target)),
	)

	if err := s.submitter.SubmitStatus(ctx, s.id, target); err != nil {
		return errors.Wrap(err, "submit status")
	}

	s.status = target
	s.metrics.transitions.Add(ctx, 1,
		metric.WithAttributes(attribute.String("status", string(target))))
	return nil
}

func (s *Session) encodeOrder() []byte {
	p := OrderPayload{
		ID:       s.id,
		TableID:  s.dest.TableID,
		Delivery: s.dest.Delivery,
		Lines:    s.cart.Lines(),
		Payment:  payment.BuildSubmissionPayload(s.pay),
	}

	e := &jx.Encoder{}
	p.Encode(e)
	return e.Bytes()
}
