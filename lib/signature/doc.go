// Copyright 2026 The Surge Authors
// SPDX-License-Identifier: Apache-2.0

// Package signature is the keyed-hash primitive underneath every
// signing operation in the SDK core.
//
// All signatures on the wire are hex-encoded HMAC-SHA256 over a
// canonical byte string. Centralizing the primitive here enforces two
// disciplines in one place: the hash choice, and constant-time
// comparison on every verification path (never a short-circuit string
// compare, which would leak the mismatch position through timing).
//
// Key exports:
//
//   - [Sign] -- hex HMAC-SHA256 of a canonical message
//   - [Verify] -- recompute-and-compare in constant time
//   - [BodyMD5] -- wire-compatibility checksum of request bodies
//
// This package depends on no other Surge packages.
package signature
