// Copyright © 2024 The Things Industries, distributed under the MIT license (see LICENSE file)

package topaz

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/TheThingsIndustries/topaz/pkg/log"
	"github.com/TheThingsIndustries/topaz/pkg/router"
	"github.com/TheThingsIndustries/topaz/pkg/subscription"
	"github.com/TheThingsIndustries/topaz/pkg/topic"
	"github.com/fsnotify/fsnotify"
)

// ParseRoutes reads routes from a file. Each line holds a filter, a
// destination and an optional QoS, separated by whitespace. Empty lines
// and lines starting with "//" are skipped.
func ParseRoutes(file string) ([]subscription.Route[string], error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var routes []subscription.Route[string]
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "//") {
			continue
		}
		if len(fields) < 2 || len(fields) > 3 {
			return nil, fmt.Errorf("%s:%d: expected \"filter destination [qos]\"", file, line)
		}
		route := subscription.Route[string]{Filter: fields[0], Origin: fields[1]}
		if !topic.ValidFilter(route.Filter) {
			return nil, fmt.Errorf("%s:%d: invalid filter %q", file, line, route.Filter)
		}
		if len(fields) == 3 {
			qos, err := strconv.ParseUint(fields[2], 10, 8)
			if err != nil || qos > 2 {
				return nil, fmt.Errorf("%s:%d: invalid qos %q", file, line, fields[2])
			}
			route.QoS = byte(qos)
		}
		routes = append(routes, route)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return routes, nil
}

// LoadRoutes replaces the router's route index with the routes in the
// file.
func LoadRoutes(ctx context.Context, r *router.Router, file string) error {
	routes, err := ParseRoutes(file)
	if err != nil {
		return err
	}
	index := r.Routes()
	index.Clear()
	for _, route := range routes {
		index.Add(route.Filter, route.QoS, route.Origin)
	}
	log.FromContext(ctx).WithFields(log.F{"file": file, "routes": len(routes)}).Info("Loaded routes")
	return nil
}

// WatchRoutes reloads the routes file when it changes.
func WatchRoutes(ctx context.Context, r *router.Router, file string) {
	logger := log.FromContext(ctx)
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.WithError(err).Warn("Could not watch routes file")
		return
	}
	if err := watcher.Add(file); err != nil {
		logger.WithError(err).Warn("Could not watch routes file")
		return
	}
	update := make(chan bool, 1)
	go func() {
		for {
			select {
			case event := <-watcher.Events:
				if event.Op&fsnotify.Write == fsnotify.Write {
					select {
					case update <- true:
						logger.Info("Detected routes change. Scheduling reload...")
						time.AfterFunc(5*time.Second, func() {
							if err := LoadRoutes(ctx, r, file); err != nil {
								logger.WithError(err).Error("Could not reload routes")
							}
							<-update
						})
					default:
						// Debounce
					}
				}
			case err := <-watcher.Errors:
				logger.WithError(err).Warn("Error watching file")
			}
		}
	}()
}
