package checkout

import (
	"context"
	"testing"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/mesa-pos/cart"
	"github.com/xenking/mesa-pos/catalog"
	"github.com/xenking/mesa-pos/orderstatus"
	"github.com/xenking/mesa-pos/payment"
	"github.com/xenking/mesa-pos/validate"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

type mockSubmitter struct {
	orders       [][]byte
	statuses     []orderstatus.Status
	submitErr    error
	statusErr    error
	statusOrders []string
}

func (m *mockSubmitter) SubmitOrder(_ context.Context, payload []byte) error {
	if m.submitErr != nil {
		return m.submitErr
	}
	m.orders = append(m.orders, payload)
	return nil
}

func (m *mockSubmitter) SubmitStatus(_ context.Context, orderID string, status orderstatus.Status) error {
	if m.statusErr != nil {
		return m.statusErr
	}
	m.statusOrders = append(m.statusOrders, orderID)
	m.statuses = append(m.statuses, status)
	return nil
}

var methods = []payment.Method{
	{ID: "m1", Name: "Dinheiro", Kind: payment.KindCash},
	{ID: "m2", Name: "Cartão", Kind: payment.KindCard},
}

func newTestSession(t *testing.T, sub Submitter) *Session {
	t.Helper()
	s, err := NewSession(Config{}, methods, sub)
	require.NoError(t, err)
	return s
}

// burger is the worked pricing example: 35.00 base, optionals 5.00 x2 and
// 12.00 x1, unit price 57.00.
func burger() cart.Line {
	return cart.Line{
		Product: catalog.Product{ID: "p1", Name: "X-Burger", BasePrice: dec("35.00")},
		Optionals: []cart.SelectedOptional{
			{Optional: catalog.Optional{ID: "o1", Name: "Bacon", Price: dec("5.00")}, Quantity: 2},
			{Optional: catalog.Optional{ID: "o2", Name: "Cheddar", Price: dec("12.00")}, Quantity: 1},
		},
		Quantity: 1,
	}
}

func TestSession_TotalsRecomputeOnEveryRead(t *testing.T) {
	s := newTestSession(t, &mockSubmitter{})

	assert.True(t, s.Totals().Total.IsZero())

	s.Cart().Add(burger())
	assert.True(t, s.Totals().Total.Equal(dec("57.00")))

	s.Cart().Add(burger())
	assert.True(t, s.Totals().Total.Equal(dec("114.00")), "totals must never go stale after a merge")

	s.SetDiscounts(dec("14.00"), decimal.Zero)
	assert.True(t, s.Totals().Total.Equal(dec("100.00")))
}

func TestSession_SubmitBlockedByValidation(t *testing.T) {
	sub := &mockSubmitter{}
	s := newTestSession(t, sub)

	issues, err := s.Submit(context.Background(), nil)
	require.NoError(t, err, "validation failures are issues, not errors")
	assert.True(t, validate.Blocking(issues))
	assert.Empty(t, sub.orders, "nothing may reach the collaborator")
}

func TestSession_SubmitCashChangePayload(t *testing.T) {
	sub := &mockSubmitter{}
	s := newTestSession(t, sub)

	s.Cart().Add(cart.Line{
		Product:  catalog.Product{ID: "p1", BasePrice: dec("40.00")},
		Quantity: 1,
	})
	s.SetDestination(Destination{TableID: "t1"})
	s.SetPayment(payment.State{
		Mode:           payment.ModeSingle,
		SingleMethodID: "m1",
		NeedsChange:    true,
		ReceivedAmount: decPtr("50.00"),
	})

	assert.True(t, s.ChangeDue().Equal(dec("10.00")))

	issues, err := s.Submit(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, issues)

	require.Len(t, sub.orders, 1)
	got := string(sub.orders[0])
	assert.Contains(t, got, `"table_id":"t1"`)
	assert.Contains(t, got, `"product_id":"p1"`)
	assert.Contains(t, got, `"payment_method_id":"m1"`)
	assert.Contains(t, got, `"precisa_troco":true`)
	assert.Contains(t, got, `"valor_recebido":50`)
	assert.Contains(t, got, `"id":"`+s.ID()+`"`)
}

func TestSession_SubmitRetryAfterFailure(t *testing.T) {
	sub := &mockSubmitter{submitErr: errors.New("boom")}
	s := newTestSession(t, sub)

	s.Cart().Add(burger())
	s.SetDestination(Destination{Delivery: true})
	s.SetPayment(payment.State{Mode: payment.ModeSingle, SingleMethodID: "m2"})

	_, err := s.Submit(context.Background(), nil)
	require.Error(t, err)

	// The operator retries the same call once the collaborator recovers.
	sub.submitErr = nil
	issues, err := s.Submit(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, issues)
	require.Len(t, sub.orders, 1)
	assert.Contains(t, string(sub.orders[0]), `"is_delivery":true`)
}

func TestSession_OccupiedTableWarnsButSubmits(t *testing.T) {
	sub := &mockSubmitter{}
	s := newTestSession(t, sub)

	s.Cart().Add(burger())
	s.SetDestination(Destination{TableID: "t1"})
	s.SetPayment(payment.State{Mode: payment.ModeSingle, SingleMethodID: "m2"})

	open := map[string]string{"t1": "other-order"}
	issues, err := s.Submit(context.Background(), open)
	require.NoError(t, err)

	require.Len(t, issues, 1)
	assert.Equal(t, validate.SeverityInfo, issues[0].Severity)
	assert.Len(t, sub.orders, 1, "an occupancy hint never blocks the write")
}

func TestSession_SubmitUsesUpdatePipelineOncePersisted(t *testing.T) {
	sub := &mockSubmitter{}
	s := newTestSession(t, sub)

	s.Cart().Add(burger())
	s.SetStatus(orderstatus.Delivered)

	issues, err := s.Submit(context.Background(), nil)
	require.NoError(t, err)
	require.True(t, validate.Blocking(issues), "final orders reject edits")
	assert.Empty(t, sub.orders)
}

func TestSession_Advance(t *testing.T) {
	sub := &mockSubmitter{}
	s := newTestSession(t, sub)
	s.SetStatus(orderstatus.Pending)

	next, err := s.Advance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, orderstatus.Preparing, next)
	assert.Equal(t, orderstatus.Preparing, s.Status())
	assert.Equal(t, []string{s.ID()}, sub.statusOrders)

	// Delivery branch after Ready.
	s.SetStatus(orderstatus.Ready)
	s.SetDestination(Destination{Delivery: true})
	next, err = s.Advance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, orderstatus.OutForDelivery, next)

	// No forward transition from a terminal state.
	s.SetStatus(orderstatus.Delivered)
	_, err = s.Advance(context.Background())
	assert.ErrorIs(t, err, ErrNoForwardTransition)
}

func TestSession_AdvanceKeepsStatusOnSubmitterError(t *testing.T) {
	sub := &mockSubmitter{statusErr: errors.New("down")}
	s := newTestSession(t, sub)
	s.SetStatus(orderstatus.Pending)

	_, err := s.Advance(context.Background())
	require.Error(t, err)
	assert.Equal(t, orderstatus.Pending, s.Status(), "local status only moves on success")
}

func TestSession_Cancel(t *testing.T) {
	sub := &mockSubmitter{}
	s := newTestSession(t, sub)

	s.SetStatus(orderstatus.Preparing)
	require.NoError(t, s.Cancel(context.Background()))
	assert.Equal(t, orderstatus.Canceled, s.Status())

	// Canceling again is the reopen affordance; it resubmits the status.
	require.NoError(t, s.Cancel(context.Background()))
	assert.Len(t, sub.statuses, 2)

	s.SetStatus(orderstatus.Delivered)
	assert.ErrorIs(t, s.Cancel(context.Background()), ErrCancelNotAllowed)
}

func TestSession_Finalize(t *testing.T) {
	sub := &mockSubmitter{}
	s := newTestSession(t, sub)

	s.Cart().Add(burger())
	s.SetPayment(payment.State{Mode: payment.ModeSingle, SingleMethodID: "m2"})

	t.Run("blocked before the order is ready", func(t *testing.T) {
		s.SetStatus(orderstatus.Pending)
		issues, err := s.Finalize(context.Background())
		require.NoError(t, err)
		assert.True(t, validate.Blocking(issues))
		assert.Empty(t, sub.statuses)
	})

	t.Run("ready order closes to Concluído", func(t *testing.T) {
		s.SetStatus(orderstatus.Ready)
		issues, err := s.Finalize(context.Background())
		require.NoError(t, err)
		assert.Empty(t, issues)
		require.Len(t, sub.statuses, 1)
		assert.Equal(t, orderstatus.Completed, sub.statuses[0])
		assert.Equal(t, orderstatus.Completed, s.Status())
	})

	t.Run("split shortfall blocks finalization", func(t *testing.T) {
		s2 := newTestSession(t, sub)
		s2.Cart().Add(burger()) // total 57.00
		s2.SetStatus(orderstatus.Ready)
		s2.SetPayment(payment.State{Mode: payment.ModeSplit, Split: []payment.SplitItem{
			{Method: methods[0], Amount: decPtr("30.00")},
		}})

		issues, err := s2.Finalize(context.Background())
		require.NoError(t, err)
		require.True(t, validate.Blocking(issues))
		assert.Contains(t, issues[0].Message, "R$ 30,00")
		assert.Contains(t, issues[0].Message, "R$ 57,00")
	})
}

func TestSession_Breakdown(t *testing.T) {
	s := newTestSession(t, &mockSubmitter{})
	s.Cart().Add(burger()) // total 57.00

	s.SetPayment(payment.State{Mode: payment.ModeSingle, SingleMethodID: "m2"})
	bd := s.Breakdown()
	require.Len(t, bd, 1)
	assert.Equal(t, "m2", bd[0].Method.ID)
	assert.True(t, bd[0].Amount.Equal(dec("57.00")))

	s.SetPayment(payment.State{Mode: payment.ModeSplit, Split: []payment.SplitItem{
		{Method: methods[0], Amount: decPtr("40.00")},
		{Method: methods[1], Amount: decPtr("17.00")},
	}})
	bd = s.Breakdown()
	require.Len(t, bd, 2)
	assert.True(t, s.ChangeDue().IsZero())
}
