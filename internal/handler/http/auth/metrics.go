package auth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var authRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "auth_requests_total",
		Help: "Total number of authentication attempts",
	},
	[]string{"result"},
)

// RecordAuthRequest records one authentication attempt outcome
// ("success" or "failure").
func RecordAuthRequest(result string) {
	authRequestsTotal.WithLabelValues(result).Inc()
}
