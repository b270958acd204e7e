// Copyright 2026 The Surge Authors
// SPDX-License-Identifier: Apache-2.0

package fault

import (
	"errors"
	"fmt"
)

// ValidationError indicates malformed caller input: a bad channel name,
// socket ID, or user ID; presence data missing where required; or a
// trigger that targets multiple encrypted channels. The surrounding
// transport layer maps it to a 4xx-equivalent response.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Message
}

// Validationf returns a ValidationError with a formatted message.
func Validationf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ConfigError indicates the caller's setup is at fault rather than the
// input: an encrypted channel used without a master key, or a master
// key of the wrong length.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return "config: " + e.Message
}

// Configf returns a ConfigError with a formatted message.
func Configf(format string, args ...any) error {
	return &ConfigError{Message: fmt.Sprintf(format, args...)}
}

// EncryptionError indicates a failed decrypt (authentication tag
// mismatch) or a malformed ciphertext or nonce. Decryption failures
// never expose partial plaintext.
type EncryptionError struct {
	Message string
	Err     error
}

func (e *EncryptionError) Error() string {
	if e.Err != nil {
		return "encryption: " + e.Message + ": " + e.Err.Error()
	}
	return "encryption: " + e.Message
}

func (e *EncryptionError) Unwrap() error { return e.Err }

// Encryptionf returns an EncryptionError with a formatted message and
// no wrapped cause.
func Encryptionf(format string, args ...any) error {
	return &EncryptionError{Message: fmt.Sprintf(format, args...)}
}

// EncryptionWrap returns an EncryptionError wrapping cause.
func EncryptionWrap(message string, cause error) error {
	return &EncryptionError{Message: message, Err: cause}
}

// SigningError indicates an internal failure in the keyed-crypto
// machinery, such as the system randomness source failing during nonce
// generation. It is deterministic from the process's point of view —
// retrying changes nothing — and is treated as fatal, not
// user-recoverable.
type SigningError struct {
	Message string
	Err     error
}

func (e *SigningError) Error() string {
	if e.Err != nil {
		return "signing: " + e.Message + ": " + e.Err.Error()
	}
	return "signing: " + e.Message
}

func (e *SigningError) Unwrap() error { return e.Err }

// SigningWrap returns a SigningError wrapping cause.
func SigningWrap(message string, cause error) error {
	return &SigningError{Message: message, Err: cause}
}

// IsValidation reports whether any error in err's chain is a
// ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsConfig reports whether any error in err's chain is a ConfigError.
func IsConfig(err error) bool {
	var target *ConfigError
	return errors.As(err, &target)
}

// IsEncryption reports whether any error in err's chain is an
// EncryptionError.
func IsEncryption(err error) bool {
	var target *EncryptionError
	return errors.As(err, &target)
}

// IsSigning reports whether any error in err's chain is a SigningError.
func IsSigning(err error) bool {
	var target *SigningError
	return errors.As(err, &target)
}
