package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	fetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "agentboard_client",
			Name:      "fetches_total",
			Help:      "Reconciliation fetches by outcome.",
		},
		[]string{"outcome"},
	)

	mutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "agentboard_client",
			Name:      "mutations_total",
			Help:      "Mutating operations (submit_brief, delete_task, review_task) by outcome.",
		},
		[]string{"op", "outcome"},
	)

	staleFetchesDiscarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "agentboard_client",
			Name:      "stale_fetches_discarded_total",
			Help:      "Fetch responses discarded because a later-issued fetch already applied.",
		},
	)
)

const (
	outcomeOK    = "ok"
	outcomeError = "error"
)
