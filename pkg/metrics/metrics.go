package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// NoncesIssued counts issued challenge nonces.
	NoncesIssued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "refgate_nonces_issued_total",
		Help: "Number of challenge nonces issued",
	})

	// Activations counts activation gate outcomes by result.
	Activations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "refgate_activations_total",
		Help: "Number of activation attempts by result",
	}, []string{"result"})

	// AttributionBinds counts attribution ledger outcomes by result.
	AttributionBinds = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "refgate_attribution_binds_total",
		Help: "Number of attribution bind attempts by result",
	}, []string{"result"})

	// CompletionEvents counts completion processor outcomes.
	CompletionEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "refgate_completion_events_total",
		Help: "Number of completion events by outcome",
	}, []string{"outcome"})
)
