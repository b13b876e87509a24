package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APIFetchErrCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "meetuppage",
		Subsystem: "api",
		Name:      "fetch_err_count",
	}, []string{"resource", "kind"})
	APIFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "meetuppage",
		Subsystem: "api",
		Name:      "fetch_duration",
	}, []string{"resource"})
	CounterClicks = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "meetuppage",
		Subsystem: "counter",
		Name:      "clicks",
	})
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "meetuppage",
		Subsystem: "http",
		Name:      "request_duration",
	}, []string{"route", "code"})
)
