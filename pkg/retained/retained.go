// Copyright © 2024 The Things Industries, distributed under the MIT license (see LICENSE file)

// Package retained implements a store for retained messages.
package retained

import (
	"sync"

	"github.com/TheThingsIndustries/topaz/pkg/message"
	"github.com/TheThingsIndustries/topaz/pkg/topic"
)

// Store for retained messages
type Store interface {
	// Retain the message if its Retain flag is set. An empty payload
	// removes the retained message for the topic.
	Retain(*message.Message)

	// Get all currently retained messages that match the filters
	Get(filter ...string) []*message.Message

	// All retained messages
	All() []*message.Message
}

// SimpleStore returns an in-memory store for retained messages
func SimpleStore() Store {
	return &retainedMessages{
		messages: make(map[string]*message.Message),
	}
}

type retainedMessages struct {
	mu       sync.RWMutex
	messages map[string]*message.Message
}

func (r *retainedMessages) Retain(msg *message.Message) {
	if !msg.Retain {
		return
	}
	r.mu.Lock()
	_, exists := r.messages[msg.Topic]
	if len(msg.Payload) > 0 {
		retained := *msg
		r.messages[msg.Topic] = &retained
		if !exists {
			retainedGauge.Inc()
		}
	} else if exists {
		delete(r.messages, msg.Topic)
		retainedGauge.Dec()
	}
	r.mu.Unlock()
}

func (r *retainedMessages) Get(filter ...string) (messages []*message.Message) {
nextRetained:
	for _, msg := range r.All() {
		for _, filter := range filter {
			if topic.Match(msg.Topic, filter) {
				messages = append(messages, msg)
				continue nextRetained
			}
		}
	}
	return
}

func (r *retainedMessages) All() []*message.Message {
	r.mu.RLock()
	defer r.mu.RUnlock()
	messages := make([]*message.Message, 0, len(r.messages))
	for _, msg := range r.messages {
		messages = append(messages, msg)
	}
	return messages
}
