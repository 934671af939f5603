package payment

import (
	"testing"

	"github.com/go-faster/jx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encode(t *testing.T, p Payload) string {
	t.Helper()
	e := &jx.Encoder{}
	p.Encode(e)
	return string(e.Bytes())
}

func TestBuildSubmissionPayload_SingleCashChange(t *testing.T) {
	st := State{
		Mode:           ModeSingle,
		SingleMethodID: "m1",
		NeedsChange:    true,
		ReceivedAmount: decPtr("50.00"),
	}

	p := BuildSubmissionPayload(st)
	require.NotNil(t, p.Single)
	assert.Nil(t, p.Split)

	assert.JSONEq(t,
		`{"payment_method_id":"m1","precisa_troco":true,"valor_recebido":50}`,
		encode(t, p),
	)
}

func TestBuildSubmissionPayload_SingleNoChange(t *testing.T) {
	// A received amount is carried only when the change flow is on.
	st := State{
		Mode:           ModeSingle,
		SingleMethodID: "m2",
		ReceivedAmount: decPtr("99.00"),
	}

	p := BuildSubmissionPayload(st)
	require.NotNil(t, p.Single)
	assert.Nil(t, p.Single.ReceivedAmount)

	assert.JSONEq(t,
		`{"payment_method_id":"m2","precisa_troco":false,"valor_recebido":null}`,
		encode(t, p),
	)
}

func TestBuildSubmissionPayload_Split(t *testing.T) {
	st := State{
		Mode: ModeSplit,
		Split: []SplitItem{
			{Method: cash, Amount: decPtr("60.00")},
			{Method: card, Amount: decPtr("40.00")},
			{Method: pix, Amount: nil},          // dropped: not entered
			{Method: pix, Amount: decPtr("0")},  // dropped: non-positive
			{Method: pix, Amount: decPtr("-5")}, // dropped: non-positive
		},
	}

	p := BuildSubmissionPayload(st)
	require.Nil(t, p.Single)
	require.Len(t, p.Split, 2)

	// Only the cash leg needs change.
	assert.JSONEq(t,
		`{"split_payments":[
			{"payment_method_id":"m1","amount":60,"needs_change":true},
			{"payment_method_id":"m2","amount":40,"needs_change":false}
		]}`,
		encode(t, p),
	)
}
