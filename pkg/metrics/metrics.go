package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ContentRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "pixelperfect", Name: "content_requests_total", Help: "Content collection reads by collection and outcome."},
		[]string{"collection", "outcome"},
	)
	Submissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "pixelperfect", Name: "submissions_total", Help: "Contact form submissions by outcome."},
		[]string{"outcome"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(ContentRequests)
	reg.MustRegister(Submissions)
}
