// Copyright © 2024 The Things Industries, distributed under the MIT license (see LICENSE file)

// Package subscription implements a level-indexed store of topic
// subscriptions.
package subscription

import (
	"sync"

	"github.com/TheThingsIndustries/topaz/pkg/topic"
)

// Route is a subscription held by the index. Origin is the opaque
// identity of whoever subscribed; the index stores it and hands it back
// on a match, nothing more.
type Route[Origin any] struct {
	Filter string
	QoS    byte
	Origin Origin
}

// node names are whole prefix paths, so filters sharing a prefix share
// nodes. Edges are keyed by the next hierarchy word.
type node[Origin any] struct {
	edges map[string]string
	route *Route[Origin]
}

// Index stores subscriptions in a trie with one node per topic hierarchy
// level, built from topic.Triples. It holds at most one route per filter;
// adding an existing filter replaces its route.
type Index[Origin any] struct {
	mu    sync.RWMutex
	nodes map[string]*node[Origin]
	count int
}

// NewIndex returns an empty subscription index.
func NewIndex[Origin any]() *Index[Origin] {
	return &Index[Origin]{
		nodes: map[string]*node[Origin]{
			topic.Root: {edges: map[string]string{}},
		},
	}
}

// Add a subscription to the index. The filter must be valid for
// subscription.
func (x *Index[Origin]) Add(filter string, qos byte, origin Origin) (added bool) {
	if !topic.ValidFilter(filter) {
		return
	}
	x.mu.Lock()
	defer x.mu.Unlock()
	for _, t := range topic.Triples(filter) {
		parent := x.nodes[t.Prefix]
		if _, ok := x.nodes[t.Name]; !ok {
			x.nodes[t.Name] = &node[Origin]{edges: map[string]string{}}
		}
		parent.edges[t.Word] = t.Name
	}
	n := x.nodes[filter]
	if n.route == nil {
		added = true
		x.count++
		subscriptionsGauge.Inc()
	}
	n.route = &Route[Origin]{Filter: filter, QoS: qos, Origin: origin}
	return
}

// Remove a subscription from the index, pruning trie nodes that no longer
// index anything.
func (x *Index[Origin]) Remove(filter string) (removed bool) {
	x.mu.Lock()
	defer x.mu.Unlock()
	n, ok := x.nodes[filter]
	if !ok || n.route == nil {
		return
	}
	n.route = nil
	x.count--
	subscriptionsGauge.Dec()
	triples := topic.Triples(filter)
	for i := len(triples) - 1; i >= 0; i-- {
		t := triples[i]
		child := x.nodes[t.Name]
		if child == nil || child.route != nil || len(child.edges) > 0 {
			break
		}
		delete(x.nodes, t.Name)
		delete(x.nodes[t.Prefix].edges, t.Word)
	}
	return true
}

// Clear the index.
func (x *Index[Origin]) Clear() {
	x.mu.Lock()
	subscriptionsGauge.Sub(float64(x.count))
	x.count = 0
	x.nodes = map[string]*node[Origin]{
		topic.Root: {edges: map[string]string{}},
	}
	x.mu.Unlock()
}

// Match the topic to the index and return the maximum QoS
func (x *Index[Origin]) Match(t string) (qos byte, found bool) {
	for _, route := range x.Matches(t) {
		found = true
		if route.QoS > qos {
			qos = route.QoS
		}
	}
	return
}

// Matches returns the routes of all subscriptions matching the topic.
func (x *Index[Origin]) Matches(t string) (routes []Route[Origin]) {
	path := topic.Split(t)
	x.mu.RLock()
	defer x.mu.RUnlock()
	x.walk(x.nodes[topic.Root], path, &routes)
	return
}

func (x *Index[Origin]) walk(n *node[Origin], path []string, routes *[]Route[Origin]) {
	if n == nil {
		return
	}
	// a trailing "#" matches the remaining levels, including none
	if name, ok := n.edges[topic.Wildcard]; ok {
		if hash := x.nodes[name]; hash != nil && hash.route != nil {
			*routes = append(*routes, *hash.route)
		}
	}
	if len(path) == 0 {
		if n.route != nil {
			*routes = append(*routes, *n.route)
		}
		return
	}
	if name, ok := n.edges[topic.PartWildcard]; ok {
		x.walk(x.nodes[name], path[1:], routes)
	}
	// a literal "+" or "#" word in the topic was already tried above
	if path[0] != topic.PartWildcard && path[0] != topic.Wildcard {
		if name, ok := n.edges[path[0]]; ok {
			x.walk(x.nodes[name], path[1:], routes)
		}
	}
}

// Count the subscriptions in the index.
func (x *Index[Origin]) Count() (count int) {
	x.mu.RLock()
	count = x.count
	x.mu.RUnlock()
	return
}

// Subscriptions returns the subscriptions in the index by filter.
func (x *Index[Origin]) Subscriptions() map[string]Route[Origin] {
	x.mu.RLock()
	defer x.mu.RUnlock()
	subscriptions := make(map[string]Route[Origin], x.count)
	for _, n := range x.nodes {
		if n.route != nil {
			subscriptions[n.route.Filter] = *n.route
		}
	}
	return subscriptions
}
