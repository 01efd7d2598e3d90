package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector counts recipe authoring events and HTTP traffic.
type Collector struct {
	recipesCreated      prometheus.Counter
	shortCodeCollisions prometheus.Counter
	requests            *prometheus.CounterVec
	latency             *prometheus.HistogramVec
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		recipesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "foodgram_recipes_created_total",
			Help: "Number of recipes created.",
		}),
		shortCodeCollisions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "foodgram_short_code_collisions_total",
			Help: "Number of short code draws rejected as already taken.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "foodgram_http_requests_total",
			Help: "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "status_code"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "foodgram_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}

	reg.MustRegister(c.recipesCreated, c.shortCodeCollisions, c.requests, c.latency)

	return c
}

func (c *Collector) RecipeCreated() {
	c.recipesCreated.Inc()
}

func (c *Collector) ShortCodeCollision() {
	c.shortCodeCollisions.Inc()
}

// RecordRequest records one served request. route is the matched pattern,
// not the raw path, to keep label cardinality bounded.
func (c *Collector) RecordRequest(route string, method string, statusCode int, duration time.Duration) {
	c.requests.WithLabelValues(route, method, strconv.Itoa(statusCode)).Inc()
	c.latency.WithLabelValues(route).Observe(duration.Seconds())
}

// Handler serves the registry for Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
