// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Cascade outcomes recorded by TrackTagCascade.
const (
	CascadeOK     = "ok"
	CascadeFailed = "failed"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "route"},
	)

	PanicsRecovered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "http_panics_recovered_total",
			Help: "Handler panics turned into 500 responses",
		},
	)

	ActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_requests",
			Help: "Current number of active HTTP requests",
		},
	)

	// Note metrics
	NoteOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "note_operations_total",
			Help: "Total number of note operations",
		},
		[]string{"operation"}, // create, update, archive, trash, ...
	)

	// Tag metrics
	TagCascadeTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tag_cascade_total",
			Help: "Outcomes of removing deleted tag ids from notes",
		},
		[]string{"result"},
	)

	TagCascadeNotes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tag_cascade_notes_total",
			Help: "Notes rewritten by tag reference cleanup",
		},
	)

	PendingTagCleanups = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tag_cleanups_pending",
			Help: "Tag reference cleanups still pending after the last reconcile",
		},
	)
)

// TrackNoteOperation increments the note operation counter.
func TrackNoteOperation(operation string) {
	NoteOperationsTotal.WithLabelValues(operation).Inc()
}

// TrackTagCascade records one cleanup attempt and the notes it rewrote.
func TrackTagCascade(result string, notes int64) {
	TagCascadeTotal.WithLabelValues(result).Inc()
	if notes > 0 {
		TagCascadeNotes.Add(float64(notes))
	}
}

// SetPendingTagCleanups sets the pending cleanup gauge.
func SetPendingTagCleanups(n int) {
	PendingTagCleanups.Set(float64(n))
}
