// Package fpsmetrics exports the statistics of an fpsticker.Ticker as
// prometheus metrics.
package fpsmetrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	fpsticker "github.com/mitchmindtree/fps-ticker"
)

// Register adds the following collectors for t to reg, each read from
// t.Stats() at scrape time:
//
//	<namespace>_fps_avg          gauge
//	<namespace>_fps_min          gauge
//	<namespace>_fps_max          gauge
//	<namespace>_fps_window_len   gauge
//	<namespace>_ticks_total      counter
//	<namespace>_evictions_total  counter
//
// Registration stops at the first error, which is returned wrapped. The
// collectors registered before it stay registered.
func Register(reg prometheus.Registerer, namespace string, t *fpsticker.Ticker) error {
	collectors := []prometheus.Collector{
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "fps_avg",
			Help:      "Average frames per second over the window",
		}, func() float64 { return t.Stats().Avg }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "fps_min",
			Help:      "Frames per second of the slowest frame in the window",
		}, func() float64 { return t.Stats().Min }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "fps_max",
			Help:      "Frames per second of the fastest frame in the window",
		}, func() float64 { return t.Stats().Max }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "fps_window_len",
			Help:      "Number of frame durations currently in the window",
		}, func() float64 { return float64(t.Stats().Len) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "Total number of ticks",
		}, func() float64 { return float64(t.Stats().Ticks) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evictions_total",
			Help:      "Total number of frame durations evicted from the window",
		}, func() float64 { return float64(t.Stats().Evictions) }),
	}

	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return fmt.Errorf("registering fps metrics errored with: %w", err)
		}
	}
	return nil
}
