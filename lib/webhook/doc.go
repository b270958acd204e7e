// Copyright 2026 The Surge Authors
// SPDX-License-Identifier: Apache-2.0

// Package webhook authenticates and decodes event deliveries from the
// realtime server.
//
// The server signs every delivery: X-Pusher-Key names the app key and
// X-Pusher-Signature is the HMAC-SHA256 of the raw request body under
// the app secret. Validation must run against the exact wire bytes —
// re-encoding the JSON first would change the signed input.
//
// Authentication and decoding are separate steps on purpose: decode
// nothing you have not authenticated.
//
// Key exports:
//
//   - [Validator.Validate] -- authenticity check; accepts multiple
//     credential sets so old keys keep verifying during rotation
//   - [ValidContentType] -- application/json gate
//   - [Decode] -- body into [Payload] with typed [Event] values;
//     unknown event names decode as [Generic] rather than failing
//   - [Payload.Time], [Payload.ByName], [Payload.ByChannel]
//
// Depends on lib/credential, lib/signature, and lib/fault.
package webhook
