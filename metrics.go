package vidnavigator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	uploadsEnqueuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vidnavigator_client",
			Name:      "uploads_enqueued_total",
			Help:      "Uploads accepted into the shard executor.",
		},
		[]string{"shard"},
	)

	uploadFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vidnavigator_client",
			Name:      "upload_failures_total",
			Help:      "Uploads whose async job returned error or panic.",
		},
		[]string{"shard"},
	)
)
