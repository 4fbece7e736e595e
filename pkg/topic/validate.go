// Copyright © 2024 The Things Industries, distributed under the MIT license (see LICENSE file)

package topic

import "errors"

// Intent selects which validation rules apply to a topic value: filters
// for Subscribe may contain wildcards, topics for Publish must not.
type Intent int

// Intents
const (
	Subscribe Intent = iota + 1
	Publish
)

func (i Intent) String() string {
	if i == Publish {
		return "publish"
	}
	return "subscribe"
}

// Validation errors. Validation is a binary signal: these errors do not
// say which rule failed.
var (
	ErrInvalidFilter = errors.New("topic: invalid filter")
	ErrInvalidTopic  = errors.New("topic: invalid topic")
)

// Validate reports whether the topic value is legal for the given intent.
// A topic must be 1..MaxLength bytes. A single leading separator is
// permitted; any other empty word is not, and "#" is only legal as the
// final word. For Publish the topic must additionally contain no "+" or
// "#" word at all.
func Validate(intent Intent, topic string) bool {
	if len(topic) == 0 || len(topic) > MaxLength {
		return false
	}
	path := Split(topic)
	if path[0] == "" {
		path = path[1:]
	}
	for i, word := range path {
		switch word {
		case "":
			return false
		case Wildcard:
			if intent == Publish || i != len(path)-1 {
				return false
			}
		case PartWildcard:
			if intent == Publish {
				return false
			}
		}
	}
	return true
}

// ValidFilter reports whether the filter is legal for subscription.
func ValidFilter(filter string) bool {
	return Validate(Subscribe, filter)
}

// ValidTopic reports whether the topic is legal for publishing.
func ValidTopic(topic string) bool {
	return Validate(Publish, topic)
}

// ValidateFilter returns ErrInvalidFilter if the filter is not legal for
// subscription.
func ValidateFilter(filter string) error {
	if !ValidFilter(filter) {
		return ErrInvalidFilter
	}
	return nil
}

// ValidateTopic returns ErrInvalidTopic if the topic is not legal for
// publishing.
func ValidateTopic(topic string) error {
	if !ValidTopic(topic) {
		return ErrInvalidTopic
	}
	return nil
}
