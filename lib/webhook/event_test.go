// Copyright 2026 The Surge Authors
// SPDX-License-Identifier: Apache-2.0

package webhook

import (
	"testing"
	"time"

	"github.com/surge-realtime/surge-go/lib/fault"
)

func TestDecode_TypedEvents(t *testing.T) {
	body := `{
		"time_ms": 1327078148132,
		"events": [
			{"name": "channel_occupied", "channel": "presence-game"},
			{"name": "channel_vacated", "channel": "private-room"},
			{"name": "member_added", "channel": "presence-game", "user_id": "10"},
			{"name": "member_removed", "channel": "presence-game", "user_id": "11"},
			{"name": "client_event", "channel": "presence-game", "event": "client-move",
			 "data": "{\"x\":1}", "socket_id": "123.456", "user_id": "10"},
			{"name": "subscription_count", "channel": "lobby", "subscription_count": 42},
			{"name": "cache_miss", "channel": "cache-scores"}
		]
	}`

	payload, err := Decode([]byte(body))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if payload.TimeMS != 1327078148132 {
		t.Errorf("TimeMS = %d, want 1327078148132", payload.TimeMS)
	}
	if len(payload.Events) != 7 {
		t.Fatalf("decoded %d events, want 7", len(payload.Events))
	}

	if event, ok := payload.Events[0].(ChannelOccupied); !ok || event.Channel != "presence-game" {
		t.Errorf("event 0 = %#v, want ChannelOccupied on presence-game", payload.Events[0])
	}
	if event, ok := payload.Events[1].(ChannelVacated); !ok || event.Channel != "private-room" {
		t.Errorf("event 1 = %#v, want ChannelVacated on private-room", payload.Events[1])
	}
	if event, ok := payload.Events[2].(MemberAdded); !ok || event.UserID != "10" {
		t.Errorf("event 2 = %#v, want MemberAdded for user 10", payload.Events[2])
	}
	if event, ok := payload.Events[3].(MemberRemoved); !ok || event.UserID != "11" {
		t.Errorf("event 3 = %#v, want MemberRemoved for user 11", payload.Events[3])
	}

	clientEvent, ok := payload.Events[4].(ClientEvent)
	if !ok {
		t.Fatalf("event 4 = %#v, want ClientEvent", payload.Events[4])
	}
	if clientEvent.Event != "client-move" || clientEvent.Data != `{"x":1}` ||
		clientEvent.SocketID != "123.456" || clientEvent.UserID != "10" {
		t.Errorf("ClientEvent = %#v", clientEvent)
	}

	if event, ok := payload.Events[5].(SubscriptionCount); !ok || event.Count != 42 {
		t.Errorf("event 5 = %#v, want SubscriptionCount 42", payload.Events[5])
	}
	if event, ok := payload.Events[6].(CacheMiss); !ok || event.Channel != "cache-scores" {
		t.Errorf("event 6 = %#v, want CacheMiss on cache-scores", payload.Events[6])
	}
}

func TestDecode_UnknownEventName(t *testing.T) {
	body := `{"time_ms": 1, "events": [{"name": "future_event", "channel": "ch", "extra": 7}]}`

	payload, err := Decode([]byte(body))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	generic, ok := payload.Events[0].(Generic)
	if !ok {
		t.Fatalf("event = %#v, want Generic", payload.Events[0])
	}
	if generic.EventName() != "future_event" {
		t.Errorf("EventName = %s, want future_event", generic.EventName())
	}
	if generic.EventChannel() != "ch" {
		t.Errorf("EventChannel = %s, want ch", generic.EventChannel())
	}
	if generic.Fields["extra"] != float64(7) {
		t.Errorf("Fields[extra] = %v, want 7", generic.Fields["extra"])
	}
}

func TestDecode_Rejects(t *testing.T) {
	for _, body := range []string{
		"not json",
		`[]`,
		`{"time_ms": 1, "events": ["not an object"]}`,
	} {
		_, err := Decode([]byte(body))
		if err == nil {
			t.Errorf("Decode(%q) should have failed", body)
			continue
		}
		if !fault.IsValidation(err) {
			t.Errorf("Decode(%q) error = %v, want ValidationError", body, err)
		}
	}
}

func TestPayload_Time(t *testing.T) {
	payload := &Payload{TimeMS: 1327078148132}
	at, err := payload.Time()
	if err != nil {
		t.Fatalf("Time failed: %v", err)
	}
	if want := time.UnixMilli(1327078148132); !at.Equal(want) {
		t.Errorf("Time = %v, want %v", at, want)
	}

	negative := &Payload{TimeMS: -1}
	if _, err := negative.Time(); !fault.IsValidation(err) {
		t.Errorf("negative time_ms error = %v, want ValidationError", err)
	}
}

func TestPayload_Find(t *testing.T) {
	payload := &Payload{Events: []Event{
		ChannelOccupied{Channel: "a"},
		ChannelVacated{Channel: "a"},
		ChannelOccupied{Channel: "b"},
	}}

	occupied := payload.ByName(NameChannelOccupied)
	if len(occupied) != 2 {
		t.Fatalf("ByName returned %d events, want 2", len(occupied))
	}
	if occupied[0].EventChannel() != "a" || occupied[1].EventChannel() != "b" {
		t.Error("ByName must preserve delivery order")
	}

	onA := payload.ByChannel("a")
	if len(onA) != 2 {
		t.Fatalf("ByChannel returned %d events, want 2", len(onA))
	}
	if onA[0].EventName() != NameChannelOccupied || onA[1].EventName() != NameChannelVacated {
		t.Error("ByChannel must preserve delivery order")
	}

	if len(payload.ByName("nope")) != 0 || len(payload.ByChannel("nope")) != 0 {
		t.Error("no-match lookups must return empty results")
	}
}
