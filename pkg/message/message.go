// Copyright © 2024 The Things Industries, distributed under the MIT license (see LICENSE file)

// Package message defines the message passed between the routing
// components.
package message

// Message is a published message. The payload is opaque to the router.
type Message struct {
	Topic   string `json:"topic"`
	Payload []byte `json:"payload,omitempty"`
	Retain  bool   `json:"retain,omitempty"`
}
