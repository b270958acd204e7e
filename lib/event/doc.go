// Copyright 2026 The Surge Authors
// SPDX-License-Identifier: Apache-2.0

// Package event builds the JSON request bodies for publishing events:
// single triggers for /events and batches for /batch_events.
//
// Validation mirrors what the server enforces so bad requests fail
// locally: event names capped at 200 characters, at most 100 channels
// per trigger, at most 10 events per batch. Payloads for encrypted
// channels are sealed before the body is assembled, and an encrypted
// channel must be a trigger's only target since each channel has its
// own key.
//
// Key exports:
//
//   - [Builder.TriggerBody] -- body for a single publish
//   - [Builder.BatchBody] -- body for a batch publish
//
// Depends on lib/credential, lib/channel, lib/sealed, lib/auth, and
// lib/fault.
package event
