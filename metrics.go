package navshell

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type pageMetrics struct {
	views    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// Metrics returns a middleware recording page views per route, render mode
// and status, and the time spent serving them. A nil registerer means
// prometheus.DefaultRegisterer. Call it once per registerer.
func Metrics(reg prometheus.Registerer) MiddlewareFunc {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	m := &pageMetrics{
		views: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "navshell",
			Name:      "page_views_total",
			Help:      "Pages served, by route, render mode and status.",
		}, []string{"route", "mode", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "navshell",
			Name:      "render_duration_seconds",
			Help:      "Time spent serving a page, by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}
	return func(next http.Handler, route Route) http.Handler {
		observer := m.duration.WithLabelValues(route.Name)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx, info := withRenderInfo(r.Context())
			next.ServeHTTP(w, r.WithContext(ctx))
			observer.Observe(time.Since(start).Seconds())
			m.views.WithLabelValues(route.Name, info.mode.String(), strconv.Itoa(info.status)).Inc()
		})
	}
}
