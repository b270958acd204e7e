// Copyright 2026 The Surge Authors
// SPDX-License-Identifier: Apache-2.0

// Package fault defines the error taxonomy shared by every package in
// the SDK core. Each kind is a distinct error type so callers can
// branch with errors.As without string matching:
//
//   - [ValidationError] -- malformed caller input (channel name,
//     socket ID, user ID, missing presence data, multiple encrypted
//     channels in one trigger)
//   - [ConfigError] -- the caller's setup is at fault (missing or
//     wrong-length master key)
//   - [EncryptionError] -- failed decrypt or malformed ciphertext
//   - [SigningError] -- internal keyed-crypto failure, fatal
//
// None of these are retried locally: every operation in the core is
// deterministic, so retrying changes nothing. The transport layer
// maps ValidationError and ConfigError to client-facing 4xx-equivalent
// responses.
//
// Key exports:
//
//   - [Validationf], [Configf], [Encryptionf], [EncryptionWrap],
//     [SigningWrap] -- constructors
//   - [IsValidation], [IsConfig], [IsEncryption], [IsSigning] --
//     errors.As predicates
//
// This package depends on no other Surge packages.
package fault
