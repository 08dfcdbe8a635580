package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds every Prometheus collector of the service
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration   *prometheus.HistogramVec
	DBOpenConnections *prometheus.GaugeVec
	DBInUse           *prometheus.GaugeVec
	DBIdle            *prometheus.GaugeVec
	DBWaitCount       *prometheus.GaugeVec

	BookingsTotal        *prometheus.CounterVec
	SlotRejectionsTotal  *prometheus.CounterVec
	AvailableSlotsServed *prometheus.HistogramVec
}

// New registers collectors in the default registry
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry registers collectors in the given registry (tests use a fresh one)
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "route"}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			Buckets:     []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),

		DBOpenConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBInUse: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBIdle: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBWaitCount: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}, []string{"db"}),

		BookingsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "salon_bookings_total",
			Help:        "Booking commit attempts by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),

		SlotRejectionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "salon_slot_rejections_total",
			Help:        "Commit-time slot rejections by reason",
			ConstLabels: constLabels,
		}, []string{"reason"}),

		AvailableSlotsServed: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "salon_available_slots",
			Help:        "Number of available slots returned per professional",
			Buckets:     []float64{0, 1, 2, 4, 8, 16, 32, 64},
			ConstLabels: constLabels,
		}, []string{}),
	}
}

// Booking outcomes
const (
	OutcomeConfirmed = "confirmed"
	OutcomeConflict  = "conflict"
	OutcomeRejected  = "rejected"
	OutcomeError     = "error"
)

// ObserveBooking counts a commit attempt; safe on a nil receiver
func (m *Metrics) ObserveBooking(outcome string) {
	if m == nil {
		return
	}
	m.BookingsTotal.WithLabelValues(outcome).Inc()
}

// ObserveSlotRejection counts a commit-time rejection reason; safe on a nil receiver
func (m *Metrics) ObserveSlotRejection(reason string) {
	if m == nil {
		return
	}
	m.SlotRejectionsTotal.WithLabelValues(reason).Inc()
}

// ObserveAvailableSlots records how many slots one professional had; safe on a nil receiver
func (m *Metrics) ObserveAvailableSlots(count int) {
	if m == nil {
		return
	}
	m.AvailableSlotsServed.WithLabelValues().Observe(float64(count))
}
