package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "carrylink_requests_created_total",
		Help: "Total number of delivery requests successfully created.",
	})

	MatchesConfirmedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "carrylink_matches_confirmed_total",
		Help: "Total number of carrier matches confirmed by buyers.",
	})

	MatchesCancelledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "carrylink_matches_cancelled_total",
		Help: "Total number of confirmed matches cancelled by buyers.",
	})

	InterestExpressedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "carrylink_interest_expressed_total",
		Help: "Total number of carrier interest records created.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "carrylink_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	ListingCacheBuyers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "carrylink_listing_cache_buyers",
		Help: "Current number of buyer listings held in the cache.",
	})
)
