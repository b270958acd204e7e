// Copyright 2026 The Surge Authors
// SPDX-License-Identifier: Apache-2.0

// Package request signs HTTP API requests.
//
// Every request to the server API carries its credentials in the query
// string: auth_key identifies the app, auth_timestamp dates the
// request, auth_version pins the scheme, body_md5 checksums the body
// when one is present, and auth_signature is an HMAC-SHA256 over the
// canonical METHOD\nPATH\nsorted-query string. The server recomputes
// the same canonical string and compares; two independent
// implementations agree because sorting and casing are fully
// specified.
//
// Key exports:
//
//   - [Authenticator] -- per-app signer with an injectable clock
//   - [Authenticator.Sign] -- full signed parameter set for a request
//   - [AuthVersion] -- the fixed protocol version "1.0"
//
// Depends on lib/credential, lib/clock, lib/signature, and lib/fault.
package request
