// Copyright © 2024 The Things Industries, distributed under the MIT license (see LICENSE file)

// Package topic implements MQTT-style topic tokenization, classification,
// matching, validation and decomposition.
//
// All functions are pure: they keep no state, perform no I/O and are safe
// for concurrent use.
package topic

import "strings"

// Topic constants
const (
	Separator    = "/"
	Wildcard     = "#"
	PartWildcard = "+"
)

// MaxLength is the maximum length in bytes of a topic or filter.
const MaxLength = 65536

// Split a topic into its hierarchy levels. Leading, trailing and
// consecutive separators produce empty words at those positions, so
// Join(Split(s)) == s for every s.
func Split(topic string) []string {
	return strings.Split(topic, Separator)
}

// Join hierarchy levels back into a topic.
func Join(path []string) string {
	return strings.Join(path, Separator)
}

// Kind of a topic: direct or wildcard.
type Kind int

// Topic kinds
const (
	KindDirect Kind = iota
	KindWildcard
)

func (k Kind) String() string {
	if k == KindWildcard {
		return "wildcard"
	}
	return "direct"
}

// KindOf classifies a separated topic as direct or wildcard. A topic is
// wildcard if any word is "+" or if its last word is "#".
//
// Classification is advisory: a "#" in any other position is treated as a
// literal word here and rejected by validation instead.
func KindOf(path []string) Kind {
	for i, word := range path {
		if word == PartWildcard {
			return KindWildcard
		}
		if word == Wildcard && i == len(path)-1 {
			return KindWildcard
		}
	}
	return KindDirect
}

// Topic is a named topic value together with the origin that created it.
// Origin is an opaque identity tag supplied by the caller, typically a
// node or session identifier; this package never inspects or compares it.
type Topic[Origin any] struct {
	Name   string
	Origin Origin
}

// Make returns a Topic carrying the caller's origin identity.
func Make[Origin any](name string, origin Origin) Topic[Origin] {
	return Topic[Origin]{Name: name, Origin: origin}
}

// Kind classifies the topic as direct or wildcard.
func (t Topic[Origin]) Kind() Kind {
	return KindOf(Split(t.Name))
}
