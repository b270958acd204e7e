// Copyright 2026 The Surge Authors
// SPDX-License-Identifier: Apache-2.0

package credential

import (
	"github.com/surge-realtime/surge-go/lib/channel"
	"github.com/surge-realtime/surge-go/lib/fault"
	"github.com/surge-realtime/surge-go/lib/secret"
)

// MasterKeySize is the required length of the encryption master key.
// The per-channel key derivation produces 32-byte keys, and the
// authenticated encryption cipher requires exactly that.
const MasterKeySize = 32

// Credentials is the immutable credential tuple for one app: the app
// ID, the public key, the signing secret, and optionally the
// encryption master key for end-to-end encrypted channels.
//
// The secret and master key live in mmap-backed secret buffers (locked
// against swap, zeroed on Close). Credentials never mutate after
// construction, so any number of goroutines may sign, verify, and
// encrypt against the same value without coordination.
type Credentials struct {
	appID     string
	key       string
	secret    *secret.Buffer
	masterKey *secret.Buffer
}

// New builds Credentials without an encryption master key. Encrypted
// channels are unavailable until a master key is configured; every
// other operation works.
func New(appID, key, appSecret string) (*Credentials, error) {
	if err := validateIdentity(appID, key, appSecret); err != nil {
		return nil, err
	}

	secretBuffer, err := secret.NewFromString(appSecret)
	if err != nil {
		return nil, fault.Configf("protecting app secret: %v", err)
	}

	return &Credentials{
		appID:  appID,
		key:    key,
		secret: secretBuffer,
	}, nil
}

// NewWithMasterKey builds Credentials with an encryption master key.
// The key must be exactly MasterKeySize bytes — this is enforced here,
// at configuration time, before any channel operation is attempted.
// The masterKey slice is copied into protected memory and zeroed in
// place.
func NewWithMasterKey(appID, key, appSecret string, masterKey []byte) (*Credentials, error) {
	if err := validateIdentity(appID, key, appSecret); err != nil {
		secret.Zero(masterKey)
		return nil, err
	}
	if len(masterKey) != MasterKeySize {
		length := len(masterKey)
		secret.Zero(masterKey)
		return nil, fault.Configf("encryption master key must be %d bytes, got %d", MasterKeySize, length)
	}

	secretBuffer, err := secret.NewFromString(appSecret)
	if err != nil {
		secret.Zero(masterKey)
		return nil, fault.Configf("protecting app secret: %v", err)
	}

	masterBuffer, err := secret.NewFromBytes(masterKey)
	if err != nil {
		secretBuffer.Close()
		return nil, fault.Configf("protecting master key: %v", err)
	}

	return &Credentials{
		appID:     appID,
		key:       key,
		secret:    secretBuffer,
		masterKey: masterBuffer,
	}, nil
}

func validateIdentity(appID, key, appSecret string) error {
	if appID == "" {
		return fault.Configf("app ID cannot be empty")
	}
	if key == "" {
		return fault.Configf("app key cannot be empty")
	}
	if appSecret == "" {
		return fault.Configf("app secret cannot be empty")
	}
	return nil
}

// AppID returns the app identifier.
func (c *Credentials) AppID() string { return c.appID }

// Key returns the public app key. The key is not secret — it appears
// in auth responses and signed query strings.
func (c *Credentials) Key() string { return c.key }

// SecretBytes returns the signing secret. The slice points into the
// protected buffer and is borrowed: do not retain it, and do not use
// it after Close.
func (c *Credentials) SecretBytes() []byte { return c.secret.Bytes() }

// HasMasterKey reports whether an encryption master key is configured.
func (c *Credentials) HasMasterKey() bool { return c.masterKey != nil }

// MasterKeyBytes returns the encryption master key, or nil when none
// is configured. Borrowed, same rules as SecretBytes.
func (c *Credentials) MasterKeyBytes() []byte {
	if c.masterKey == nil {
		return nil
	}
	return c.masterKey.Bytes()
}

// Classifier returns a channel classifier bound to this credential
// set's master-key configuration.
func (c *Credentials) Classifier() channel.Classifier {
	return channel.NewClassifier(c.HasMasterKey())
}

// Close wipes and releases the secret and master key buffers. After
// Close, any signing or encryption against these Credentials panics.
// Close is idempotent.
func (c *Credentials) Close() error {
	firstError := c.secret.Close()
	if c.masterKey != nil {
		if err := c.masterKey.Close(); err != nil && firstError == nil {
			firstError = err
		}
	}
	return firstError
}
