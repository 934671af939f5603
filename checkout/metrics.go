package checkout

import (
	"github.com/go-faster/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

type sessionMetrics struct {
	submitted   metric.Int64Counter
	transitions metric.Int64Counter
	orderTotal  metric.Float64Histogram
}

func newSessionMetrics() (sessionMetrics, error) {
	meter := otel.Meter("github.com/xenking/mesa-pos/checkout")

	submitted, err := meter.Int64Counter("pos.orders.submitted",
		metric.WithDescription("Order payloads handed to the persistence collaborator"))
	if err != nil {
		return sessionMetrics{}, errors.Wrap(err, "submitted counter")
	}

	transitions, err := meter.Int64Counter("pos.orders.status_transitions",
		metric.WithDescription("Status-transition requests handed to the persistence collaborator"))
	if err != nil {
		return sessionMetrics{}, errors.Wrap(err, "transitions counter")
	}

	orderTotal, err := meter.Float64Histogram("pos.orders.total",
		metric.WithDescription("Order total at submission time"))
	if err != nil {
		return sessionMetrics{}, errors.Wrap(err, "total histogram")
	}

	return sessionMetrics{
		submitted:   submitted,
		transitions: transitions,
		orderTotal:  orderTotal,
	}, nil
}
