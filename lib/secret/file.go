// Copyright 2026 The Surge Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"bytes"
	"fmt"
	"os"
)

// ReadFile reads a secret from a file into a protected buffer. The
// returned buffer is mmap-backed (locked into RAM, excluded from core
// dumps) and must be closed by the caller. Leading and trailing
// whitespace is trimmed before storing, so a trailing newline in a key
// file does not become part of the secret. Returns an error if the
// file is empty after trimming.
func ReadFile(path string) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		Zero(data)
		return nil, fmt.Errorf("secret: file %s is empty", path)
	}

	// NewFromBytes copies into mmap-backed memory and zeros trimmed.
	buffer, err := NewFromBytes(trimmed)
	// Zero the remaining bytes (whitespace prefix/suffix) not covered
	// by trimmed.
	Zero(data)
	if err != nil {
		return nil, err
	}
	return buffer, nil
}
