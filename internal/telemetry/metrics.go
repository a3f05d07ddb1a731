package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PaymentsProcessed counts payment requests by terminal outcome
	// (authorized, declined, rejected, bank_unavailable, error).
	PaymentsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gateway_payments_total",
		Help: "Payment requests by outcome",
	}, []string{"outcome"})

	// BankRequestDuration tracks the round trip of acquiring bank calls.
	BankRequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gateway_bank_request_duration_seconds",
		Help:    "Acquiring bank authorization call duration",
		Buckets: prometheus.DefBuckets,
	})
)
