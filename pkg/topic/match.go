// Copyright © 2024 The Things Industries, distributed under the MIT license (see LICENSE file)

package topic

// Match a topic to a filter
func Match(topic, filter string) bool {
	return MatchPath(Split(topic), Split(filter))
}

// MatchPath matches a separated topic to a separated filter. A "+" in the
// filter consumes exactly one topic word, even an empty one; a filter
// ending in a sole "#" consumes all remaining topic words, including none.
// Words are otherwise compared as opaque strings.
func MatchPath(topicPath, filterPath []string) bool {
	for len(filterPath) > 0 {
		if len(filterPath) == 1 && filterPath[0] == Wildcard {
			return true
		}
		if len(topicPath) == 0 {
			return false
		}
		if filterPath[0] != PartWildcard && filterPath[0] != topicPath[0] {
			return false
		}
		topicPath, filterPath = topicPath[1:], filterPath[1:]
	}
	return len(topicPath) == 0
}
