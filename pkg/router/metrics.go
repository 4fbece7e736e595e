// Copyright © 2024 The Things Industries, distributed under the MIT license (see LICENSE file)

package router

import "github.com/prometheus/client_golang/prometheus"

var watchersGauge = prometheus.NewGauge(prometheus.GaugeOpts{
	Namespace: "topaz",
	Subsystem: "router",
	Name:      "watchers",
	Help:      "Number of live watchers.",
})

var publishedCounter = prometheus.NewCounter(prometheus.CounterOpts{
	Namespace: "topaz",
	Subsystem: "router",
	Name:      "messages_published_total",
	Help:      "Number of published messages.",
})

var deliveredCounter = prometheus.NewCounter(prometheus.CounterOpts{
	Namespace: "topaz",
	Subsystem: "router",
	Name:      "messages_delivered_total",
	Help:      "Number of messages delivered to watchers.",
})

var droppedCounter = prometheus.NewCounter(prometheus.CounterOpts{
	Namespace: "topaz",
	Subsystem: "router",
	Name:      "messages_dropped_total",
	Help:      "Number of messages dropped on slow watchers.",
})

var routedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "topaz",
	Subsystem: "router",
	Name:      "route_hits_total",
	Help:      "Number of published messages matching each route.",
}, []string{"destination"})

func init() {
	prometheus.MustRegister(watchersGauge)
	prometheus.MustRegister(publishedCounter)
	prometheus.MustRegister(deliveredCounter)
	prometheus.MustRegister(droppedCounter)
	prometheus.MustRegister(routedCounter)
}
