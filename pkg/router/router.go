// Copyright © 2024 The Things Industries, distributed under the MIT license (see LICENSE file)

// Package router implements in-process routing of published messages to
// matching routes and watchers.
package router

import (
	"context"
	"sync"

	"github.com/TheThingsIndustries/topaz/pkg/log"
	"github.com/TheThingsIndustries/topaz/pkg/message"
	"github.com/TheThingsIndustries/topaz/pkg/ratelimit"
	"github.com/TheThingsIndustries/topaz/pkg/retained"
	"github.com/TheThingsIndustries/topaz/pkg/subscription"
	"github.com/TheThingsIndustries/topaz/pkg/topic"
	"github.com/google/uuid"
)

const watcherBuffer = 16

// Router matches published messages against a route index and delivers
// them to live watchers. Routes carry the name of their destination as
// the subscription origin.
type Router struct {
	ctx      context.Context
	routes   *subscription.Index[string]
	retained retained.Store

	mu       sync.RWMutex
	watchers map[string]*Watcher
}

// New returns a Router
func New(ctx context.Context) *Router {
	return &Router{
		ctx:      ctx,
		routes:   subscription.NewIndex[string](),
		retained: retained.SimpleStore(),
		watchers: make(map[string]*Watcher),
	}
}

// Routes returns the route index, for configuration and inspection.
func (r *Router) Routes() *subscription.Index[string] {
	return r.routes
}

// Retained returns the retained message store.
func (r *Router) Retained() retained.Store {
	return r.retained
}

// Publish validates the topic, applies the rate limit carried in the
// context, counts hits on matching routes and delivers the message to
// matching watchers. Watchers that cannot keep up lose the message.
func (r *Router) Publish(ctx context.Context, msg *message.Message) error {
	if err := topic.ValidateTopic(msg.Topic); err != nil {
		return err
	}
	if err := ratelimit.Wait(ctx); err != nil {
		return err
	}
	publishedCounter.Inc()
	for _, route := range r.routes.Matches(msg.Topic) {
		routedCounter.WithLabelValues(route.Origin).Inc()
	}
	topicPath := topic.Split(msg.Topic)
	r.mu.RLock()
	for _, w := range r.watchers {
		if !topic.MatchPath(topicPath, w.filterPath) {
			continue
		}
		select {
		case w.messages <- msg:
			deliveredCounter.Inc()
		default:
			droppedCounter.Inc()
		}
	}
	r.mu.RUnlock()
	r.retained.Retain(msg)
	log.FromContext(ctx).WithField("topic", msg.Topic).Debug("Publish")
	return nil
}

// Watcher receives the messages matching its filter.
type Watcher struct {
	ID     string
	Filter string

	filterPath []string
	router     *Router
	messages   chan *message.Message
	closeOnce  sync.Once
}

// Messages delivered to the watcher. The channel is closed by Close.
func (w *Watcher) Messages() <-chan *message.Message {
	return w.messages
}

// Close the watcher.
func (w *Watcher) Close() {
	w.closeOnce.Do(func() {
		w.router.mu.Lock()
		delete(w.router.watchers, w.ID)
		close(w.messages)
		w.router.mu.Unlock()
		watchersGauge.Dec()
		log.FromContext(w.router.ctx).WithField("watcher", w.ID).Debug("Unwatch")
	})
}

// Watch registers a watcher for the filter. Retained messages matching
// the filter are replayed onto it immediately.
func (r *Router) Watch(ctx context.Context, filter string) (*Watcher, error) {
	if err := topic.ValidateFilter(filter); err != nil {
		return nil, err
	}
	w := &Watcher{
		ID:         uuid.NewString(),
		Filter:     filter,
		filterPath: topic.Split(filter),
		router:     r,
		messages:   make(chan *message.Message, watcherBuffer),
	}
	replay := r.retained.Get(filter)
	r.mu.Lock()
	r.watchers[w.ID] = w
	for _, msg := range replay {
		select {
		case w.messages <- msg:
			deliveredCounter.Inc()
		default:
			droppedCounter.Inc()
		}
	}
	r.mu.Unlock()
	watchersGauge.Inc()
	log.FromContext(ctx).WithFields(log.F{"filter": filter, "watcher": w.ID}).Debug("Watch")
	return w, nil
}

// Watchers returns a snapshot of the live watchers.
func (r *Router) Watchers() []*Watcher {
	r.mu.RLock()
	defer r.mu.RUnlock()
	watchers := make([]*Watcher, 0, len(r.watchers))
	for _, w := range r.watchers {
		watchers = append(watchers, w)
	}
	return watchers
}
