// Copyright 2026 The Surge Authors
// SPDX-License-Identifier: Apache-2.0

// Package auth answers the two questions a client library asks an
// application server: "may this connection subscribe to this channel?"
// and "who is this connection's user?".
//
// Both answers are HMAC-SHA256 signatures under the app secret over a
// colon-delimited message that binds the connection's socket ID to the
// channel (and member data) or to the user record. The client forwards
// the signature to the realtime server, which holds the same secret
// and recomputes it; the application server never talks to the
// realtime server directly.
//
// Key exports:
//
//   - [Authorizer.AuthorizeChannel] -- private/presence/encrypted
//     subscription responses; encrypted channels include the
//     channel's shared secret
//   - [Authorizer.AuthenticateUser] -- signed user records
//   - [ValidateSocketID] -- strict socket ID form check
//
// Depends on lib/credential, lib/signature, lib/sealed, and lib/fault.
package auth
