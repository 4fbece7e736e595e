// Copyright © 2024 The Things Industries, distributed under the MIT license (see LICENSE file)

package subscription

import (
	"testing"

	"github.com/smartystreets/assertions"
	"github.com/smartystreets/assertions/should"
)

func routeFilters(routes []Route[string]) (filters []string) {
	for _, route := range routes {
		filters = append(filters, route.Filter)
	}
	return
}

func TestIndex(t *testing.T) {
	a := assertions.New(t)
	x := NewIndex[string]()

	_, ok := x.Match("foo")
	a.So(ok, should.BeFalse)

	a.So(x.Add("foo", 1, "session-a"), should.BeTrue)
	a.So(x.Count(), should.Equal, 1)
	a.So(x.Subscriptions(), should.ContainKey, "foo")

	qos, ok := x.Match("foo")
	a.So(ok, should.BeTrue)
	a.So(qos, should.Equal, 1)

	// replacing a filter keeps a single route
	a.So(x.Add("foo", 0, "session-b"), should.BeFalse)
	a.So(x.Count(), should.Equal, 1)
	a.So(x.Subscriptions()["foo"].Origin, should.Equal, "session-b")

	a.So(x.Add("+", 2, "session-a"), should.BeTrue)
	qos, ok = x.Match("foo")
	a.So(ok, should.BeTrue)
	a.So(qos, should.Equal, 2)

	matches := routeFilters(x.Matches("foo"))
	a.So(matches, should.Contain, "foo")
	a.So(matches, should.Contain, "+")

	a.So(x.Remove("foo"), should.BeTrue)
	a.So(x.Remove("+"), should.BeTrue)
	a.So(x.Remove("other"), should.BeFalse)

	_, ok = x.Match("foo")
	a.So(ok, should.BeFalse)

	x.Clear()
	a.So(x.Subscriptions(), should.BeEmpty)
}

func TestIndexWildcards(t *testing.T) {
	a := assertions.New(t)
	x := NewIndex[string]()

	a.So(x.Add("sensors/+/temperature", 0, "dash"), should.BeTrue)
	a.So(x.Add("sensors/#", 1, "archive"), should.BeTrue)
	a.So(x.Add("sensors/svalbard/humidity", 2, "alarm"), should.BeTrue)

	matches := routeFilters(x.Matches("sensors/svalbard/temperature"))
	a.So(matches, should.Contain, "sensors/+/temperature")
	a.So(matches, should.Contain, "sensors/#")
	a.So(matches, should.NotContain, "sensors/svalbard/humidity")

	// "#" matches the level above it
	matches = routeFilters(x.Matches("sensors"))
	a.So(matches, should.Contain, "sensors/#")
	a.So(matches, should.HaveLength, 1)

	a.So(routeFilters(x.Matches("actuators/valve")), should.BeEmpty)

	matches = routeFilters(x.Matches("sensors/svalbard/humidity"))
	a.So(matches, should.Contain, "sensors/#")
	a.So(matches, should.Contain, "sensors/svalbard/humidity")
	a.So(matches, should.NotContain, "sensors/+/temperature")
}

func TestIndexValidation(t *testing.T) {
	a := assertions.New(t)
	x := NewIndex[int]()

	a.So(x.Add("", 0, 0), should.BeFalse)
	a.So(x.Add("a/#/c", 0, 0), should.BeFalse)
	a.So(x.Add("a//b", 0, 0), should.BeFalse)
	a.So(x.Count(), should.Equal, 0)
}

func TestIndexPruning(t *testing.T) {
	a := assertions.New(t)
	x := NewIndex[string]()

	a.So(x.Add("a/b/c", 0, "x"), should.BeTrue)
	a.So(x.Add("a/b", 0, "y"), should.BeTrue)

	// removing the leaf keeps the shared prefix intact
	a.So(x.Remove("a/b/c"), should.BeTrue)
	matches := routeFilters(x.Matches("a/b"))
	a.So(matches, should.Contain, "a/b")
	a.So(routeFilters(x.Matches("a/b/c")), should.BeEmpty)

	a.So(x.Remove("a/b"), should.BeTrue)
	a.So(x.Count(), should.Equal, 0)

	// the index is reusable after full pruning
	a.So(x.Add("a/b/c", 0, "z"), should.BeTrue)
	a.So(routeFilters(x.Matches("a/b/c")), should.Contain, "a/b/c")
}
