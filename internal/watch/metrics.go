package watch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var recomputations = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "ledger_recomputations_total",
		Help: "How many full ledger recomputations have been performed.",
	},
)

var unclassifiedRecords = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "ledger_unclassified_records",
		Help: "Number of records with unrecognized kinds in the last recomputed ledger.",
	},
)
