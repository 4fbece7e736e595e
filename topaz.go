// Copyright © 2024 The Things Industries, distributed under the MIT license (see LICENSE file)

// Package topaz implements a topic routing service.
// See the cmd package for the main executables.
package topaz

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/TheThingsIndustries/topaz/pkg/inspect"
	"github.com/TheThingsIndustries/topaz/pkg/log"
	"github.com/TheThingsIndustries/topaz/pkg/ratelimit"
	"github.com/TheThingsIndustries/topaz/pkg/router"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"
)

var (
	ctx        = context.Background()
	logger     = log.Default
	configured = false
)

// Context returns the global context
func Context() context.Context {
	if !configured {
		panic("topaz.Configure() was not called")
	}
	return ctx
}

// Configure the binary
func Configure(binaryName string) {
	pflag.BoolP("debug", "d", false, "Print debug logs")
	pflag.String("listen.status", ":9690", "Address for status+API server to listen on")
	pflag.String("websocket.pattern", "/watch", "URL pattern for the websocket watch endpoint")
	pflag.String("routes.file", "", "Location of the routes file")
	pflag.Float64("publish.rate", 0, "Maximum publishes per second (0 to disable)")
	pflag.Int("publish.burst", 16, "Publish burst size")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", binaryName)
		fmt.Fprintln(os.Stderr, "Options:")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	viper.BindPFlags(pflag.CommandLine)
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if viper.GetBool("debug") {
		log.SetLevelFromString("debug")
	}
	ctx = log.NewContext(ctx, logger)

	configured = true
}

// RunServer runs the routing service until a signal is received.
func RunServer(r *router.Router) {
	if routesFile := viper.GetString("routes.file"); routesFile != "" {
		if err := LoadRoutes(ctx, r, routesFile); err != nil {
			logger.WithError(err).Fatal("Could not load routes")
		}
		WatchRoutes(ctx, r, routesFile)
	}

	publishCtx := ctx
	if limit := viper.GetFloat64("publish.rate"); limit > 0 {
		publishCtx = ratelimit.New(ctx, rate.Limit(limit), viper.GetInt("publish.burst"))
	}

	http.Handle("/metrics", promhttp.Handler())
	http.Handle("/publish", publishHandler(publishCtx, r))
	http.Handle("/validate", validateHandler())
	http.Handle("/triples", triplesHandler())
	http.Handle(viper.GetString("websocket.pattern"), watchHandler(ctx, r))
	http.Handle("/debug/routes", inspect.Routes(r))
	http.Handle("/debug/retained", inspect.Retained(r.Retained()))

	listen := viper.GetString("listen.status")
	logger.WithField("address", listen).Info("Starting status+API server")
	go func() {
		err := http.ListenAndServe(listen, nil)
		if err != nil {
			logger.WithError(err).Fatal("Could not start status+API server")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	signal := (<-sigChan).String()
	logger.WithField("signal", signal).Info("Signal received")
}
