// Copyright 2026 The Surge Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"encoding/json"

	"github.com/surge-realtime/surge-go/lib/auth"
	"github.com/surge-realtime/surge-go/lib/channel"
	"github.com/surge-realtime/surge-go/lib/credential"
	"github.com/surge-realtime/surge-go/lib/fault"
	"github.com/surge-realtime/surge-go/lib/sealed"
)

// Server-enforced limits, checked locally so an oversized request
// never leaves the process.
const (
	MaxNameLength      = 200
	MaxTriggerChannels = 100
	MaxBatchSize       = 10
)

// Trigger describes one event published to one or more channels.
//
// Data is the raw payload, typically JSON, embedded as a string in the
// wire body. SocketID, when set, excludes that connection from
// delivery. Info requests channel attributes in the server response.
type Trigger struct {
	Name     string
	Channels []string
	Data     []byte
	SocketID string
	Info     string
}

// BatchEntry is one event of a batch publish. Unlike [Trigger], each
// entry targets exactly one channel.
type BatchEntry struct {
	Name     string
	Channel  string
	Data     []byte
	SocketID string
	Info     string
}

type triggerBody struct {
	Name     string   `json:"name"`
	Channels []string `json:"channels"`
	Data     string   `json:"data"`
	SocketID string   `json:"socket_id,omitempty"`
	Info     string   `json:"info,omitempty"`
}

type batchEntryBody struct {
	Name     string `json:"name"`
	Channel  string `json:"channel"`
	Data     string `json:"data"`
	SocketID string `json:"socket_id,omitempty"`
	Info     string `json:"info,omitempty"`
}

type batchBody struct {
	Batch []batchEntryBody `json:"batch"`
}

// Builder constructs publish request bodies for one app. It is
// stateless and safe for concurrent use.
type Builder struct {
	creds *credential.Credentials
}

// NewBuilder binds a Builder to credentials.
func NewBuilder(creds *credential.Credentials) *Builder {
	return &Builder{creds: creds}
}

// TriggerBody builds the JSON body for a single publish.
//
// All channels are classified up front. An encrypted channel must be
// the only target: every channel has its own derived key, so a
// multi-channel publish including an encrypted channel cannot produce
// one ciphertext all subscribers could open, and is rejected rather
// than encrypted under an arbitrary channel's key. For an encrypted
// target the data field carries the sealed envelope instead of the
// plaintext.
func (b *Builder) TriggerBody(t Trigger) ([]byte, error) {
	if err := validateName(t.Name); err != nil {
		return nil, err
	}
	if len(t.Channels) == 0 {
		return nil, fault.Validationf("trigger requires at least one channel")
	}
	if len(t.Channels) > MaxTriggerChannels {
		return nil, fault.Validationf("trigger targets %d channels, limit is %d", len(t.Channels), MaxTriggerChannels)
	}
	if t.SocketID != "" {
		if err := auth.ValidateSocketID(t.SocketID); err != nil {
			return nil, err
		}
	}

	classifier := b.creds.Classifier()
	var encrypted *channel.Channel
	for _, name := range t.Channels {
		ch, err := classifier.Classify(name)
		if err != nil {
			return nil, err
		}
		if ch.Encrypted() {
			encrypted = &ch
		}
	}
	if encrypted != nil && len(t.Channels) > 1 {
		return nil, fault.Validationf("encrypted channel %q cannot share a trigger with other channels", encrypted.Name)
	}

	data := string(t.Data)
	if encrypted != nil {
		sealedData, err := sealed.EncryptJSON(b.creds.MasterKeyBytes(), encrypted.Name, t.Data)
		if err != nil {
			return nil, err
		}
		data = string(sealedData)
	}

	return marshalBody(triggerBody{
		Name:     t.Name,
		Channels: t.Channels,
		Data:     data,
		SocketID: t.SocketID,
		Info:     t.Info,
	})
}

// BatchBody builds the JSON body for a batch publish. Each entry is
// validated independently; encrypted entries are sealed under their
// own channel's key.
func (b *Builder) BatchBody(entries []BatchEntry) ([]byte, error) {
	if len(entries) == 0 {
		return nil, fault.Validationf("batch requires at least one event")
	}
	if len(entries) > MaxBatchSize {
		return nil, fault.Validationf("batch holds %d events, limit is %d", len(entries), MaxBatchSize)
	}

	classifier := b.creds.Classifier()
	body := batchBody{Batch: make([]batchEntryBody, 0, len(entries))}
	for index, entry := range entries {
		if err := validateName(entry.Name); err != nil {
			return nil, fault.Validationf("batch event %d: %v", index, err)
		}
		if entry.SocketID != "" {
			if err := auth.ValidateSocketID(entry.SocketID); err != nil {
				return nil, fault.Validationf("batch event %d: %v", index, err)
			}
		}

		// Classification errors keep their own type: a missing master
		// key is a ConfigError, not a validation failure.
		ch, err := classifier.Classify(entry.Channel)
		if err != nil {
			return nil, err
		}

		data := string(entry.Data)
		if ch.Encrypted() {
			sealedData, err := sealed.EncryptJSON(b.creds.MasterKeyBytes(), ch.Name, entry.Data)
			if err != nil {
				return nil, err
			}
			data = string(sealedData)
		}

		body.Batch = append(body.Batch, batchEntryBody{
			Name:     entry.Name,
			Channel:  entry.Channel,
			Data:     data,
			SocketID: entry.SocketID,
			Info:     entry.Info,
		})
	}

	return marshalBody(body)
}

func validateName(name string) error {
	if name == "" {
		return fault.Validationf("event name cannot be empty")
	}
	if len(name) > MaxNameLength {
		return fault.Validationf("event name is %d characters, limit is %d", len(name), MaxNameLength)
	}
	return nil
}

func marshalBody(body any) ([]byte, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fault.Validationf("encoding publish body: %v", err)
	}
	return encoded, nil
}
