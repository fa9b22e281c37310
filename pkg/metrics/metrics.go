package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ArticlesCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "blogapi", Name: "articles_created_total", Help: "Number of articles created."},
	)
	ArticlesUpdated = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "blogapi", Name: "articles_updated_total", Help: "Number of article updates (including image attachments)."},
	)
	ArticlesDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "blogapi", Name: "articles_deleted_total", Help: "Number of articles deleted."},
	)
	ImageUploads = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "blogapi", Name: "image_uploads_total", Help: "Number of image upload attempts by result."},
		[]string{"result"},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "blogapi", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "blogapi", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(ArticlesCreated)
	reg.MustRegister(ArticlesUpdated)
	reg.MustRegister(ArticlesDeleted)
	reg.MustRegister(ImageUploads)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
