package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "saamcms", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "saamcms", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
	StoreOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "saamcms", Name: "store_ops_total", Help: "Number of store operations by store and operation."},
		[]string{"store", "op"},
	)
	StoreErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "saamcms", Name: "store_errors_total", Help: "Number of failed store operations by store."},
		[]string{"store"},
	)
	Uploads = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "saamcms", Name: "uploads_total", Help: "Number of completed uploads by storage backend."},
		[]string{"backend"},
	)
	UploadErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "saamcms", Name: "upload_errors_total", Help: "Number of failed uploads by storage backend."},
		[]string{"backend"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(StoreOps)
	reg.MustRegister(StoreErrors)
	reg.MustRegister(Uploads)
	reg.MustRegister(UploadErrors)
}
