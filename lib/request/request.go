// Copyright 2026 The Surge Authors
// SPDX-License-Identifier: Apache-2.0

package request

import (
	"sort"
	"strconv"
	"strings"

	"github.com/surge-realtime/surge-go/lib/clock"
	"github.com/surge-realtime/surge-go/lib/credential"
	"github.com/surge-realtime/surge-go/lib/fault"
	"github.com/surge-realtime/surge-go/lib/signature"
)

// AuthVersion is the wire protocol's fixed auth_version value.
const AuthVersion = "1.0"

// reservedParams are the query keys the signer owns. A caller supplying
// one of these would either be silently overwritten or silently change
// the signature, so both are rejected up front.
var reservedParams = map[string]bool{
	"auth_key":       true,
	"auth_timestamp": true,
	"auth_version":   true,
	"auth_signature": true,
	"body_md5":       true,
}

// Authenticator signs HTTP API requests for one app.
//
// The zero timestamp source is the real clock; tests inject a fixed
// clock to make signatures deterministic. The Authenticator itself is
// stateless between calls and safe for concurrent use.
type Authenticator struct {
	creds *credential.Credentials
	clock clock.Clock
}

// NewAuthenticator binds an Authenticator to credentials. A nil clk
// uses the real clock.
func NewAuthenticator(creds *credential.Credentials, clk clock.Clock) *Authenticator {
	if clk == nil {
		clk = clock.Real()
	}
	return &Authenticator{creds: creds, clock: clk}
}

// Sign produces the complete signed query parameter set for a request:
// the caller's own query parameters plus auth_key, auth_timestamp,
// auth_version, body_md5 (when a body is present), and auth_signature.
//
// The signature covers the canonical string
//
//	METHOD\n/path\nkey=value&key=value...
//
// with the method uppercased, parameter keys lowercased and sorted
// lexicographically, and values unescaped. auth_signature itself is
// never part of the signed string. Any server recomputing the same
// canonical string from the received parameters gets a byte-identical
// input, so signatures verify without normalization guesswork.
func (a *Authenticator) Sign(method, path string, query map[string]string, body []byte) (map[string]string, error) {
	if method == "" {
		return nil, fault.Validationf("request method cannot be empty")
	}
	if !strings.HasPrefix(path, "/") {
		return nil, fault.Validationf("request path %q must start with /", path)
	}

	params := make(map[string]string, len(query)+5)
	for key, value := range query {
		lowered := strings.ToLower(key)
		if reservedParams[lowered] {
			return nil, fault.Validationf("query parameter %q is reserved for request signing", key)
		}
		params[lowered] = value
	}

	params["auth_key"] = a.creds.Key()
	params["auth_timestamp"] = strconv.FormatInt(a.clock.Now().Unix(), 10)
	params["auth_version"] = AuthVersion
	if len(body) > 0 {
		params["body_md5"] = signature.BodyMD5(body)
	}

	canonical := canonicalString(method, path, params)
	params["auth_signature"] = signature.Sign(a.creds.SecretBytes(), []byte(canonical))
	return params, nil
}

// canonicalString builds the string to sign. params must not yet
// contain auth_signature.
func canonicalString(method, path string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+params[key])
	}

	return strings.ToUpper(method) + "\n" + path + "\n" + strings.Join(pairs, "&")
}
