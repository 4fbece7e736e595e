// Copyright © 2024 The Things Industries, distributed under the MIT license (see LICENSE file)

package main

import (
	"context"
	"strconv"

	"github.com/TheThingsIndustries/topaz/pkg/log"
	"github.com/TheThingsIndustries/topaz/pkg/message"
	"github.com/TheThingsIndustries/topaz/pkg/router"
	"github.com/TheThingsIndustries/topaz/pkg/topic"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/prometheus/client_golang/prometheus"
)

var auditedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "topaz",
	Subsystem: "audit",
	Name:      "topics_total",
	Help:      "Number of audited topic names by kind and validity.",
}, []string{"kind", "valid"})

func init() {
	prometheus.MustRegister(auditedCounter)
}

func audit(ctx context.Context, r *router.Router, m mqtt.Message) {
	name := m.Topic()
	kind := topic.KindOf(topic.Split(name))
	valid := topic.ValidTopic(name)
	auditedCounter.WithLabelValues(kind.String(), strconv.FormatBool(valid)).Inc()
	if !valid {
		log.FromContext(ctx).WithField("topic", name).Warn("Observed invalid publish topic")
		return
	}
	r.Publish(ctx, &message.Message{
		Topic:   name,
		Payload: m.Payload(),
		Retain:  m.Retained(),
	})
}
