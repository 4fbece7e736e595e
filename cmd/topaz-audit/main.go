// Copyright © 2024 The Things Industries, distributed under the MIT license (see LICENSE file)

// The Topaz auditor subscribes to an external MQTT broker and audits the
// observed topic names: it classifies them, flags names that are not
// legal publish topics, and re-exposes the traffic on the local watch and
// metrics endpoints.
package main

import (
	_ "net/http/pprof" // Add pprof handlers to the default http mux
	"time"

	"github.com/TheThingsIndustries/topaz"
	"github.com/TheThingsIndustries/topaz/pkg/log"
	"github.com/TheThingsIndustries/topaz/pkg/router"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	pflag.String("mqtt.broker", "tcp://localhost:1883", "Address of the MQTT broker to audit")
	pflag.String("mqtt.client-id", "topaz-audit", "MQTT client ID")
	pflag.StringSlice("mqtt.filter", []string{"#"}, "Filters to audit")

	topaz.Configure("topaz-audit")
	ctx := topaz.Context()
	logger := log.FromContext(ctx)

	r := router.New(ctx)

	opts := mqtt.NewClientOptions().
		AddBroker(viper.GetString("mqtt.broker")).
		SetClientID(viper.GetString("mqtt.client-id")).
		SetConnectTimeout(10 * time.Second).
		SetAutoReconnect(true)
	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		logger.WithError(token.Error()).Fatal("Could not connect to MQTT broker")
	}
	defer client.Disconnect(250)

	for _, filter := range viper.GetStringSlice("mqtt.filter") {
		logger.WithField("filter", filter).Info("Auditing filter")
		token := client.Subscribe(filter, 0, func(_ mqtt.Client, m mqtt.Message) {
			audit(ctx, r, m)
		})
		if token.Wait() && token.Error() != nil {
			logger.WithError(token.Error()).Fatal("Could not subscribe")
		}
	}

	topaz.RunServer(r)
}
