package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "chat"
	subsystem = "feed"
)

var (
	pageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "page_duration_seconds",
		Help:      "Time to fetch and enrich one feed page",
		Buckets:   prometheus.DefBuckets,
	}, []string{"scope"})

	pageMessages = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "page_messages",
		Help:      "Messages returned per feed page",
		Buckets:   prometheus.LinearBuckets(0, 10, 11),
	}, []string{"scope"})

	danglingReferences = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "dangling_references_total",
		Help:      "References replaced by placeholders during enrichment",
	}, []string{"kind"})

	attachmentFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "attachment_failures_total",
		Help:      "Attachment uploads and URL resolutions that failed",
	}, []string{"op"})
)

func ObservePage(scope string, size int, elapsed time.Duration) {
	pageDuration.WithLabelValues(scope).Observe(elapsed.Seconds())
	pageMessages.WithLabelValues(scope).Observe(float64(size))
}

func DanglingReference(kind string) {
	danglingReferences.WithLabelValues(kind).Inc()
}

func AttachmentFailure(op string) {
	attachmentFailures.WithLabelValues(op).Inc()
}

func Handler() http.Handler {
	return promhttp.Handler()
}
