// Copyright © 2024 The Things Industries, distributed under the MIT license (see LICENSE file)

package topic

import (
	"strings"
	"testing"

	"github.com/smartystreets/assertions"
	"github.com/smartystreets/assertions/should"
)

func TestSplit(t *testing.T) {
	a := assertions.New(t)
	a.So(Split("a/b/c"), should.Resemble, []string{"a", "b", "c"})
	a.So(Split("finance"), should.Resemble, []string{"finance"})
	a.So(Split("/finance"), should.Resemble, []string{"", "finance"})
	a.So(Split("a//b"), should.Resemble, []string{"a", "", "b"})
	a.So(Split("a/b/"), should.Resemble, []string{"a", "b", ""})
	a.So(Split(""), should.Resemble, []string{""})

	// Join is the exact inverse of Split.
	for _, s := range []string{"", "/", "//", "a", "/a", "a/", "a/b/c", "a//b", "foo bar/baz"} {
		a.So(Join(Split(s)), should.Equal, s)
	}
}

func TestKindOf(t *testing.T) {
	a := assertions.New(t)
	a.So(KindOf(Split("a/b/c")), should.Equal, KindDirect)
	a.So(KindOf(Split("a/+/c")), should.Equal, KindWildcard)
	a.So(KindOf(Split("+")), should.Equal, KindWildcard)
	a.So(KindOf(Split("#")), should.Equal, KindWildcard)
	a.So(KindOf(Split("a/b/#")), should.Equal, KindWildcard)

	// "#" in a non-terminal position is a literal word for classification;
	// validation rejects it instead.
	a.So(KindOf(Split("a/#/c")), should.Equal, KindDirect)
	a.So(ValidFilter("a/#/c"), should.BeFalse)

	a.So(KindDirect.String(), should.Equal, "direct")
	a.So(KindWildcard.String(), should.Equal, "wildcard")
}

func TestTopic(t *testing.T) {
	a := assertions.New(t)
	topic := Make("sensors/+/temperature", "node-eu-1")
	a.So(topic.Name, should.Equal, "sensors/+/temperature")
	a.So(topic.Origin, should.Equal, "node-eu-1")
	a.So(topic.Kind(), should.Equal, KindWildcard)
	a.So(Make("sensors/svalbard/temperature", 42).Kind(), should.Equal, KindDirect)
}

func TestMatch(t *testing.T) {
	a := assertions.New(t)
	a.So(Match("a", "b"), should.BeFalse)
	a.So(Match("/", "/"), should.BeTrue)
	a.So(Match("//", "//"), should.BeTrue)
	a.So(Match("a/b/c", "a/b/c"), should.BeTrue)
	a.So(Match("a/b/c", "a/b"), should.BeFalse)
	a.So(Match("a/b", "a/b/c"), should.BeFalse)
	a.So(Match("a", "+"), should.BeTrue)
	a.So(Match("/", "+/+"), should.BeTrue)
	a.So(Match("a", "#"), should.BeTrue)
	a.So(Match("/", "#"), should.BeTrue)
	a.So(Match("a/b", "+/a"), should.BeFalse)
	a.So(Match("a/b", "+/b"), should.BeTrue)
	a.So(Match("a/b", "a/+"), should.BeTrue)
	a.So(Match("a/b/c", "a/+"), should.BeFalse)
	a.So(Match("a/b/c", "a/#"), should.BeTrue)

	// "#" also matches the level above it and deep remainders.
	a.So(Match("a", "a/#"), should.BeTrue)
	a.So(Match("a/b/c/d/e", "a/#"), should.BeTrue)

	// "#" is only special as the entire remaining filter.
	a.So(Match("a/#/c", "a/#/c"), should.BeTrue)
	a.So(Match("a/x/c", "a/#/c"), should.BeFalse)
}

func TestMatchPath(t *testing.T) {
	a := assertions.New(t)
	a.So(MatchPath([]string{"a", "b"}, []string{"+", "b"}), should.BeTrue)
	a.So(MatchPath([]string{"a", "b", "c"}, []string{"+", "b"}), should.BeFalse)
	a.So(MatchPath([]string{"a", "b", "c"}, []string{"a", "#"}), should.BeTrue)
	a.So(MatchPath([]string{"a"}, []string{"a", "#"}), should.BeTrue)
	a.So(MatchPath(nil, []string{"#"}), should.BeTrue)
	a.So(MatchPath(nil, nil), should.BeTrue)
	a.So(MatchPath([]string{"a"}, nil), should.BeFalse)
	a.So(MatchPath(nil, []string{"a"}), should.BeFalse)

	// "+" consumes exactly one word, even an empty one.
	a.So(MatchPath([]string{""}, []string{"+"}), should.BeTrue)
	a.So(MatchPath([]string{"", "b"}, []string{"+", "b"}), should.BeTrue)
}

func TestValidate(t *testing.T) {
	a := assertions.New(t)

	a.So(Validate(Subscribe, "a/b/c"), should.BeTrue)
	a.So(Validate(Subscribe, "/a/b"), should.BeTrue)
	a.So(Validate(Subscribe, "/+/x"), should.BeTrue)
	a.So(Validate(Subscribe, "/a/b/c/#"), should.BeTrue)
	a.So(Validate(Subscribe, "#"), should.BeTrue)
	a.So(Validate(Subscribe, "+"), should.BeTrue)
	a.So(Validate(Subscribe, "a/#/c"), should.BeFalse)
	a.So(Validate(Subscribe, "#/a"), should.BeFalse)
	a.So(Validate(Subscribe, "a/#/#"), should.BeFalse)
	a.So(Validate(Subscribe, "a//b"), should.BeFalse)
	a.So(Validate(Subscribe, "a/b/"), should.BeFalse)
	a.So(Validate(Subscribe, "/"), should.BeFalse)
	a.So(Validate(Subscribe, ""), should.BeFalse)
	a.So(Validate(Subscribe, "foo bar baz/subTopïç⚡"), should.BeTrue)

	a.So(Validate(Publish, "a/b/c"), should.BeTrue)
	a.So(Validate(Publish, "/a/b"), should.BeTrue)
	a.So(Validate(Publish, "a/+/c"), should.BeFalse)
	a.So(Validate(Publish, "a/#"), should.BeFalse)
	a.So(Validate(Publish, "#"), should.BeFalse)
	a.So(Validate(Publish, ""), should.BeFalse)

	long := strings.Repeat("x", MaxLength)
	a.So(Validate(Subscribe, long), should.BeTrue)
	a.So(Validate(Subscribe, long+"x"), should.BeFalse)
	a.So(Validate(Publish, long+"x"), should.BeFalse)

	a.So(ValidateFilter("a/+"), should.BeNil)
	a.So(ValidateFilter("a/#/c"), should.Equal, ErrInvalidFilter)
	a.So(ValidateTopic("a/b"), should.BeNil)
	a.So(ValidateTopic("a/+"), should.Equal, ErrInvalidTopic)
}

func TestTriples(t *testing.T) {
	a := assertions.New(t)

	a.So(Triples("a"), should.Resemble, []Triple{
		{Prefix: Root, Word: "a", Name: "a"},
	})
	a.So(Triples("a/b/c"), should.Resemble, []Triple{
		{Prefix: Root, Word: "a", Name: "a"},
		{Prefix: "a", Word: "b", Name: "a/b"},
		{Prefix: "a/b", Word: "c", Name: "a/b/c"},
	})
	a.So(Triples("/a"), should.Resemble, []Triple{
		{Prefix: Root, Word: "", Name: ""},
		{Prefix: "", Word: "a", Name: "/a"},
	})
	a.So(Triples("a/+/#"), should.Resemble, []Triple{
		{Prefix: Root, Word: "a", Name: "a"},
		{Prefix: "a", Word: "+", Name: "a/+"},
		{Prefix: "a/+", Word: "#", Name: "a/+/#"},
	})
}
