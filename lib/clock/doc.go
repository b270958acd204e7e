// Copyright 2026 The Surge Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time source for request signing.
//
// Request signatures include an auth_timestamp parameter, so any code
// path that signs a request takes a [Clock] instead of calling
// time.Now directly. Production code uses [Real]; tests use [Fixed] to
// pin the timestamp and make signatures reproducible.
//
// Key exports:
//
//   - [Clock] -- the single-method time interface
//   - [Real] -- wall-clock implementation
//   - [Fixed] -- frozen clock for deterministic tests
//
// This package depends on no other Surge packages.
package clock
