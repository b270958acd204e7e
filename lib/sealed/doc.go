// Copyright 2026 The Surge Authors
// SPDX-License-Identifier: Apache-2.0

// Package sealed encrypts and decrypts event payloads for end-to-end
// encrypted channels.
//
// Each encrypted channel has a symmetric key derived from the app's
// master key: SHA-256 over the channel name followed by the master
// key. Subscribers receive this shared secret in their authorization
// response and decrypt events without any further contact with the
// publisher.
//
// Payloads are sealed with NaCl secretbox (XSalsa20-Poly1305): a fresh
// random 24-byte nonce per call, ciphertext with a 16-byte
// authentication tag, wire-encoded as the JSON [Envelope]
// {"nonce": base64, "ciphertext": base64}. The central safety property
// is nonce freshness — a nonce is never reused under the same key, and
// the randomness source is crypto/rand with no cross-call state.
//
// Key exports:
//
//   - [SharedSecret] -- per-channel key derivation (wipe-on-close)
//   - [Encrypt] / [EncryptJSON] -- seal a payload
//   - [Decrypt] / [DecryptJSON] -- open a payload; tag mismatch and
//     malformed input both fail with EncryptionError, never partial
//     plaintext
//
// Depends on lib/secret, lib/credential, lib/fault, and
// golang.org/x/crypto/nacl/secretbox.
package sealed
