// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

// internal constants
const (
	queueSize = 1000
)

// Message - one queued notification
type Message struct {
	From string
	Item interface{}
}

// Bus - a buffered event queue
type Bus struct {
	queue chan Message
}

// New - create a bus with the default queue size
func New() *Bus {
	return &Bus{
		queue: make(chan Message, queueSize),
	}
}

// Send - queue an item
//
// drops the event when the queue is full so a slow or absent
// consumer can never block a registry operation
func (bus *Bus) Send(from string, item interface{}) {
	select {
	case bus.queue <- Message{From: from, Item: item}:
	default:
	}
}

// Chan - channel to read from
func (bus *Bus) Chan() <-chan Message {
	return bus.queue
}
