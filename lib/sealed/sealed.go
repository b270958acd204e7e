// Copyright 2026 The Surge Authors
// SPDX-License-Identifier: Apache-2.0

package sealed

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"io"

	"golang.org/x/crypto/nacl/secretbox"

	"github.com/surge-realtime/surge-go/lib/credential"
	"github.com/surge-realtime/surge-go/lib/fault"
	"github.com/surge-realtime/surge-go/lib/secret"
)

const (
	// SharedSecretSize is the length of a derived per-channel key.
	SharedSecretSize = 32

	// NonceSize is the secretbox (XSalsa20-Poly1305) nonce length.
	NonceSize = 24

	// Overhead is the authentication tag length appended to every
	// ciphertext.
	Overhead = secretbox.Overhead
)

// Envelope is the wire encoding of an encrypted event payload. It is
// substituted for the plaintext data field whenever the target channel
// is encrypted. The ciphertext includes the authentication tag.
type Envelope struct {
	Nonce      string `json:"nonce"`
	Ciphertext string `json:"ciphertext"`
}

// SharedSecret derives the per-channel symmetric key: SHA-256 over the
// channel name bytes followed by the master key bytes. The same
// derivation runs when authorizing a subscriber (the key is handed to
// them in the auth response) and when encrypting published payloads,
// so a subscriber holding the shared secret can decrypt events
// independently of the publisher.
//
// The returned buffer is wipe-on-close; the caller must Close it. The
// masterKey is borrowed and must be exactly
// [credential.MasterKeySize] bytes.
func SharedSecret(masterKey []byte, channelName string) (*secret.Buffer, error) {
	if len(masterKey) != credential.MasterKeySize {
		return nil, fault.Configf("encryption master key must be %d bytes, got %d", credential.MasterKeySize, len(masterKey))
	}
	if channelName == "" {
		return nil, fault.Validationf("channel name cannot be empty")
	}

	digest := sha256.New()
	digest.Write([]byte(channelName))
	digest.Write(masterKey)
	sum := digest.Sum(nil)

	// NewFromBytes moves the digest into protected memory and zeros
	// the heap copy.
	buffer, err := secret.NewFromBytes(sum)
	if err != nil {
		secret.Zero(sum)
		return nil, fault.Configf("protecting shared secret: %v", err)
	}
	return buffer, nil
}

// Encrypt seals plaintext for the named channel under the channel's
// derived shared secret and returns the wire envelope.
//
// A fresh random nonce is drawn from crypto/rand on every call. Nonce
// freshness is this package's central safety property: encrypting two
// payloads under the same key with the same nonce would let an
// observer recover plaintext, so no code path may ever reuse or cache
// a nonce. A counter is deliberately not used — independent client
// instances sharing a master key cannot coordinate counters.
func Encrypt(masterKey []byte, channelName string, plaintext []byte) (*Envelope, error) {
	sharedSecret, err := SharedSecret(masterKey, channelName)
	if err != nil {
		return nil, err
	}
	defer sharedSecret.Close()

	var key [SharedSecretSize]byte
	copy(key[:], sharedSecret.Bytes())
	defer secret.Zero(key[:])

	var nonce [NonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, fault.SigningWrap("generating nonce", err)
	}

	box := secretbox.Seal(nil, plaintext, &nonce, &key)

	return &Envelope{
		Nonce:      base64.StdEncoding.EncodeToString(nonce[:]),
		Ciphertext: base64.StdEncoding.EncodeToString(box),
	}, nil
}

// EncryptJSON seals plaintext and returns the JSON-encoded envelope,
// ready to substitute for an event's data field.
func EncryptJSON(masterKey []byte, channelName string, plaintext []byte) ([]byte, error) {
	envelope, err := Encrypt(masterKey, channelName, plaintext)
	if err != nil {
		return nil, err
	}
	encoded, err := json.Marshal(envelope)
	if err != nil {
		return nil, fault.EncryptionWrap("encoding envelope", err)
	}
	return encoded, nil
}

// Decrypt opens an envelope sealed for the named channel. A tampered
// ciphertext, a wrong key, a malformed base64 field, or a wrong-length
// nonce all fail with an EncryptionError — never partial plaintext.
func Decrypt(masterKey []byte, channelName string, envelope *Envelope) ([]byte, error) {
	nonceBytes, err := base64.StdEncoding.DecodeString(envelope.Nonce)
	if err != nil {
		return nil, fault.EncryptionWrap("decoding nonce", err)
	}
	if len(nonceBytes) != NonceSize {
		return nil, fault.Encryptionf("nonce is %d bytes, want %d", len(nonceBytes), NonceSize)
	}

	box, err := base64.StdEncoding.DecodeString(envelope.Ciphertext)
	if err != nil {
		return nil, fault.EncryptionWrap("decoding ciphertext", err)
	}
	if len(box) < Overhead {
		return nil, fault.Encryptionf("ciphertext is %d bytes, shorter than the %d-byte authentication tag", len(box), Overhead)
	}

	sharedSecret, err := SharedSecret(masterKey, channelName)
	if err != nil {
		return nil, err
	}
	defer sharedSecret.Close()

	var key [SharedSecretSize]byte
	copy(key[:], sharedSecret.Bytes())
	defer secret.Zero(key[:])

	var nonce [NonceSize]byte
	copy(nonce[:], nonceBytes)

	plaintext, ok := secretbox.Open(nil, box, &nonce, &key)
	if !ok {
		return nil, fault.Encryptionf("authentication failed: wrong key or tampered ciphertext")
	}
	return plaintext, nil
}

// DecryptJSON parses a JSON envelope and opens it.
func DecryptJSON(masterKey []byte, channelName string, encoded []byte) ([]byte, error) {
	var envelope Envelope
	if err := json.Unmarshal(encoded, &envelope); err != nil {
		return nil, fault.EncryptionWrap("parsing envelope", err)
	}
	return Decrypt(masterKey, channelName, &envelope)
}
