// Package metrics provides Prometheus metrics for frame rendering.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label values for SourceLoadsTotal.
const (
	SourceHit    = "hit"
	SourceDecode = "decode"
	SourceError  = "error"
)

// Label values for OverlayAnomaliesTotal.
const (
	AnomalyWindow     = "empty_window"
	AnomalyPosition   = "unknown_position"
	AnomalyAnimation  = "unknown_animation"
	AnomalyTransition = "unknown_transition"
)

var (
	// FramesRenderedTotal counts frames composed and written.
	FramesRenderedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "videoforge_frames_rendered_total",
		Help: "Total number of frames composed and written.",
	})

	// FrameComposeSeconds observes the time to compose one frame.
	FrameComposeSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "videoforge_frame_compose_seconds",
		Help:    "Time to compose one frame into pixels.",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
	})

	// SourceLoadsTotal counts asset loads by result.
	SourceLoadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "videoforge_source_loads_total",
		Help: "Total number of scene source loads, by result (hit/decode/error).",
	}, []string{"result"})

	// OverlayAnomaliesTotal counts recoverable spec anomalies found when an
	// engine is built.
	OverlayAnomaliesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "videoforge_spec_anomalies_total",
		Help: "Total number of degraded overlays and transitions, by kind.",
	}, []string{"kind"})

	// LegibilityWarningsTotal counts overlays flagged as hard to read.
	LegibilityWarningsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "videoforge_legibility_warnings_total",
		Help: "Total number of overlays flagged as hard to read over their background.",
	})
)

// WriteTextfile dumps the default registry to path in the text exposition
// format, for the node_exporter textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
