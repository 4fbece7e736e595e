// Copyright © 2024 The Things Industries, distributed under the MIT license (see LICENSE file)

package subscription

import "github.com/prometheus/client_golang/prometheus"

var subscriptionsGauge = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Namespace: "topaz",
		Name:      "subscriptions",
		Help:      "Number of indexed subscriptions.",
	},
)

func init() {
	prometheus.MustRegister(subscriptionsGauge)
}
