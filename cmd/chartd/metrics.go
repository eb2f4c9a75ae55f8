package main

import "github.com/prometheus/client_golang/prometheus"

var (
	ticksTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "chartd_ticks_total",
		Help: "Engine ticks driven.",
	})
	tickDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "chartd_tick_duration_seconds",
		Help:    "Engine tick wall time.",
		Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
	})
	framesSent = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "chartd_frames_sent_total",
		Help: "Frames delivered over websocket.",
	})
	wsClients = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "chartd_ws_clients",
		Help: "Connected websocket clients.",
	})
)

func init() {
	prometheus.MustRegister(ticksTotal, tickDuration, framesSent, wsClients)
}
