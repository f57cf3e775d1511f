package commands

import (
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	fetches      *prometheus.CounterVec
	duration     prometheus.Histogram
	growth       prometheus.Gauge
	dailyGrowth  prometheus.Gauge
	yearlyGrowth prometheus.Gauge
	points       prometheus.Gauge
}

func newMetrics(registry *prometheus.Registry) *metrics {
	m := &metrics{
		fetches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_fetches_total",
				Help: "Total number of worksheet fetches",
			},
			[]string{"result"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dashboard_fetch_duration_seconds",
				Help:    "Worksheet fetch duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		growth: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "dashboard_total_growth_percent",
				Help: "Percentage growth between the first and latest non-zero totals",
			},
		),
		dailyGrowth: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "dashboard_average_daily_growth_percent",
				Help: "Average daily growth between the first and latest non-zero totals",
			},
		),
		yearlyGrowth: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "dashboard_average_yearly_growth_percent",
				Help: "Average yearly growth between the first and latest non-zero totals",
			},
		),
		points: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "dashboard_data_points",
				Help: "Number of non-zero totals in the worksheet",
			},
		),
	}

	registry.MustRegister(m.fetches, m.duration, m.growth, m.dailyGrowth, m.yearlyGrowth, m.points)

	return m
}
