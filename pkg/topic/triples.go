// Copyright © 2024 The Things Industries, distributed under the MIT license (see LICENSE file)

package topic

import "strings"

// Root marks the prefix of a top-level triple. It contains a null byte,
// which never appears in a topic value, so it cannot collide with a real
// prefix (the empty string is a real prefix for topics with a leading
// separator).
const Root = "\x00root"

// Triple links one hierarchy level to its parent path: Name is the whole
// path up to and including this level, Word is the level itself and
// Prefix is everything above it, or Root at the top level.
type Triple struct {
	Prefix string
	Word   string
	Name   string
}

// Triples decomposes a topic into one triple per hierarchy level, in
// root-to-leaf order. A consumer indexing topics per level links the node
// named Name under the node named Prefix via the edge Word, without
// re-tokenizing the topic.
func Triples(topic string) []Triple {
	triples := make([]Triple, strings.Count(topic, Separator)+1)
	name := topic
	for i := len(triples) - 1; i >= 0; i-- {
		sep := strings.LastIndex(name, Separator)
		if sep < 0 {
			triples[i] = Triple{Prefix: Root, Word: name, Name: name}
			continue
		}
		triples[i] = Triple{Prefix: name[:sep], Word: name[sep+1:], Name: name}
		name = name[:sep]
	}
	return triples
}
