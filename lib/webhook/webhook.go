// Copyright 2026 The Surge Authors
// SPDX-License-Identifier: Apache-2.0

package webhook

import (
	"mime"
	"net/http"
	"strings"

	"github.com/surge-realtime/surge-go/lib/credential"
	"github.com/surge-realtime/surge-go/lib/signature"
)

// Wire header names. The realtime server identifies the signing app
// with HeaderKey and signs the raw request body into HeaderSignature.
const (
	HeaderKey       = "X-Pusher-Key"
	HeaderSignature = "X-Pusher-Signature"
)

// Validator authenticates incoming webhook deliveries.
//
// It holds one or more credential sets: the active one plus any older
// sets still accepted during key rotation. A delivery is valid when
// its key header names one of the held credentials and its signature
// header verifies against that credential's secret over the raw body.
type Validator struct {
	creds []*credential.Credentials
}

// NewValidator builds a Validator accepting the primary credentials
// and any number of additional sets for rotation.
func NewValidator(primary *credential.Credentials, additional ...*credential.Credentials) *Validator {
	creds := make([]*credential.Credentials, 0, 1+len(additional))
	creds = append(creds, primary)
	creds = append(creds, additional...)
	return &Validator{creds: creds}
}

// Validate reports whether the delivery is authentic. The body must be
// the raw request bytes, before any parsing or re-encoding — the
// signature covers the exact bytes on the wire.
//
// Validate never errors: a missing header, an unknown key, and a bad
// signature are all simply inauthentic. The signature comparison is
// constant-time.
func (v *Validator) Validate(headers http.Header, body []byte) bool {
	key := headers.Get(HeaderKey)
	sig := headers.Get(HeaderSignature)
	if key == "" || sig == "" {
		return false
	}

	for _, creds := range v.creds {
		if creds.Key() == key && signature.Verify(creds.SecretBytes(), body, sig) {
			return true
		}
	}
	return false
}

// ValidContentType reports whether a webhook Content-Type header value
// is the JSON the server sends. Parameters such as charset are
// tolerated; anything that is not application/json is not.
func ValidContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return strings.EqualFold(mediaType, "application/json")
}
