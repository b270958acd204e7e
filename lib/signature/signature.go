// Copyright 2026 The Surge Authors
// SPDX-License-Identifier: Apache-2.0

package signature

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
)

// Size is the length in bytes of a raw HMAC-SHA256 signature. The hex
// encoding used on the wire is twice this.
const Size = sha256.Size

// Sign computes the hex-encoded HMAC-SHA256 of message under secret.
// This is the only signing primitive in the SDK: request
// authentication, channel authorization, user authentication, and
// webhook verification all route through it, so the hash choice and
// comparison discipline live in exactly one place.
//
// HMAC accepts keys of any length and the underlying hash never fails,
// so Sign cannot error.
func Sign(secret, message []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(message)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify recomputes the signature of message under secret and compares
// it with signatureHex in constant time. The comparison runs in time
// independent of the position of any mismatch, so an attacker cannot
// recover a valid signature byte by byte from response timing.
func Verify(secret, message []byte, signatureHex string) bool {
	expected := Sign(secret, message)
	return hmac.Equal([]byte(expected), []byte(signatureHex))
}

// BodyMD5 computes the lowercase hex MD5 checksum of a request body.
// The wire protocol includes this checksum in the signed parameter set
// for compatibility; it is not a security primitive — integrity comes
// from the HMAC over the full canonical string.
func BodyMD5(body []byte) string {
	digest := md5.Sum(body)
	return hex.EncodeToString(digest[:])
}
