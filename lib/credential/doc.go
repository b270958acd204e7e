// Copyright 2026 The Surge Authors
// SPDX-License-Identifier: Apache-2.0

// Package credential holds the immutable credential tuple for one app:
// app ID, public key, signing secret, and the optional 32-byte
// encryption master key for end-to-end encrypted channels.
//
// Secrets live in mmap-backed buffers from lib/secret — locked against
// swap, excluded from core dumps, and zeroed by [Credentials.Close].
// A Credentials value never mutates after construction, so concurrent
// signing, verification, and encryption against it need no locking.
//
// The master key length is enforced at construction: a key that is not
// exactly [MasterKeySize] bytes fails with a ConfigError before any
// channel operation is attempted.
//
// Key exports:
//
//   - [New] / [NewWithMasterKey] -- direct construction
//   - [Load] / [LoadFile] -- YAML credential-file loading with an
//     explicit path (SURGE_CREDENTIALS), no discovery, no fallbacks
//   - [Credentials.Classifier] -- channel classification bound to the
//     master-key configuration
//   - [Credentials.Close] -- wipes all key material
//
// Depends on lib/secret, lib/channel, lib/fault, and gopkg.in/yaml.v3.
package credential
