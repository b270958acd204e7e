// Copyright 2026 The Surge Authors
// SPDX-License-Identifier: Apache-2.0

package webhook

import (
	"encoding/json"
	"time"

	"github.com/surge-realtime/surge-go/lib/fault"
)

// Event names the server delivers.
const (
	NameChannelOccupied   = "channel_occupied"
	NameChannelVacated    = "channel_vacated"
	NameMemberAdded       = "member_added"
	NameMemberRemoved     = "member_removed"
	NameClientEvent       = "client_event"
	NameSubscriptionCount = "subscription_count"
	NameCacheMiss         = "cache_miss"
)

// Event is one entry of a webhook delivery. Concrete types are
// [ChannelOccupied], [ChannelVacated], [MemberAdded], [MemberRemoved],
// [ClientEvent], [SubscriptionCount], [CacheMiss], and [Generic] for
// names this package does not know; switch on the concrete type to
// handle them.
type Event interface {
	// EventName is the wire name, e.g. "channel_occupied".
	EventName() string
	// EventChannel is the channel the event concerns, or "" when the
	// event carries none.
	EventChannel() string
}

// ChannelOccupied fires when a channel gains its first subscriber.
type ChannelOccupied struct {
	Channel string `json:"channel"`
}

// ChannelVacated fires when a channel loses its last subscriber.
type ChannelVacated struct {
	Channel string `json:"channel"`
}

// MemberAdded fires when a user joins a presence channel.
type MemberAdded struct {
	Channel string `json:"channel"`
	UserID  string `json:"user_id"`
}

// MemberRemoved fires when a user leaves a presence channel.
type MemberRemoved struct {
	Channel string `json:"channel"`
	UserID  string `json:"user_id"`
}

// ClientEvent is a client-originated event relayed by the server. Data
// is the raw payload string; SocketID and UserID are present when the
// server knows them.
type ClientEvent struct {
	Channel  string `json:"channel"`
	Event    string `json:"event"`
	Data     string `json:"data"`
	SocketID string `json:"socket_id"`
	UserID   string `json:"user_id"`
}

// SubscriptionCount reports the subscriber count of a channel.
type SubscriptionCount struct {
	Channel string `json:"channel"`
	Count   int64  `json:"subscription_count"`
}

// CacheMiss fires when a client subscribes to a cache channel that has
// no cached event.
type CacheMiss struct {
	Channel string `json:"channel"`
}

// Generic carries an event with a name this package does not model.
// Fields holds the raw decoded object, name included.
type Generic struct {
	Name   string
	Fields map[string]any
}

func (e ChannelOccupied) EventName() string      { return NameChannelOccupied }
func (e ChannelOccupied) EventChannel() string   { return e.Channel }
func (e ChannelVacated) EventName() string       { return NameChannelVacated }
func (e ChannelVacated) EventChannel() string    { return e.Channel }
func (e MemberAdded) EventName() string          { return NameMemberAdded }
func (e MemberAdded) EventChannel() string       { return e.Channel }
func (e MemberRemoved) EventName() string        { return NameMemberRemoved }
func (e MemberRemoved) EventChannel() string     { return e.Channel }
func (e ClientEvent) EventName() string          { return NameClientEvent }
func (e ClientEvent) EventChannel() string       { return e.Channel }
func (e SubscriptionCount) EventName() string    { return NameSubscriptionCount }
func (e SubscriptionCount) EventChannel() string { return e.Channel }
func (e CacheMiss) EventName() string            { return NameCacheMiss }
func (e CacheMiss) EventChannel() string         { return e.Channel }

func (e Generic) EventName() string { return e.Name }

func (e Generic) EventChannel() string {
	channel, _ := e.Fields["channel"].(string)
	return channel
}

// Payload is a decoded webhook body: the server-side send time and the
// batch of events delivered together.
type Payload struct {
	TimeMS int64
	Events []Event
}

// Decode parses a webhook body. Call it only after [Validator.Validate]
// has accepted the delivery; a body that is not a JSON object of the
// expected shape fails with a ValidationError.
func Decode(body []byte) (*Payload, error) {
	var wire struct {
		TimeMS int64             `json:"time_ms"`
		Events []json.RawMessage `json:"events"`
	}
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fault.Validationf("parsing webhook body: %v", err)
	}

	payload := &Payload{
		TimeMS: wire.TimeMS,
		Events: make([]Event, 0, len(wire.Events)),
	}
	for index, raw := range wire.Events {
		event, err := decodeEvent(raw)
		if err != nil {
			return nil, fault.Validationf("webhook event %d: %v", index, err)
		}
		payload.Events = append(payload.Events, event)
	}
	return payload, nil
}

func decodeEvent(raw json.RawMessage) (Event, error) {
	var probe struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, err
	}

	switch probe.Name {
	case NameChannelOccupied:
		var event ChannelOccupied
		if err := json.Unmarshal(raw, &event); err != nil {
			return nil, err
		}
		return event, nil
	case NameChannelVacated:
		var event ChannelVacated
		if err := json.Unmarshal(raw, &event); err != nil {
			return nil, err
		}
		return event, nil
	case NameMemberAdded:
		var event MemberAdded
		if err := json.Unmarshal(raw, &event); err != nil {
			return nil, err
		}
		return event, nil
	case NameMemberRemoved:
		var event MemberRemoved
		if err := json.Unmarshal(raw, &event); err != nil {
			return nil, err
		}
		return event, nil
	case NameClientEvent:
		var event ClientEvent
		if err := json.Unmarshal(raw, &event); err != nil {
			return nil, err
		}
		return event, nil
	case NameSubscriptionCount:
		var event SubscriptionCount
		if err := json.Unmarshal(raw, &event); err != nil {
			return nil, err
		}
		return event, nil
	case NameCacheMiss:
		var event CacheMiss
		if err := json.Unmarshal(raw, &event); err != nil {
			return nil, err
		}
		return event, nil
	default:
		fields := make(map[string]any)
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, err
		}
		return Generic{Name: probe.Name, Fields: fields}, nil
	}
}

// Time converts the delivery timestamp to a time.Time. A negative
// time_ms cannot come from a well-behaved server and is rejected.
func (p *Payload) Time() (time.Time, error) {
	if p.TimeMS < 0 {
		return time.Time{}, fault.Validationf("webhook time_ms %d is negative", p.TimeMS)
	}
	return time.UnixMilli(p.TimeMS), nil
}

// ByName returns the events in the delivery with the given wire name,
// in delivery order.
func (p *Payload) ByName(name string) []Event {
	var matched []Event
	for _, event := range p.Events {
		if event.EventName() == name {
			matched = append(matched, event)
		}
	}
	return matched
}

// ByChannel returns the events in the delivery concerning the given
// channel, in delivery order.
func (p *Payload) ByChannel(channel string) []Event {
	var matched []Event
	for _, event := range p.Events {
		if event.EventChannel() == channel {
			matched = append(matched, event)
		}
	}
	return matched
}
