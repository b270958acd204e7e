// Copyright 2026 The Surge Authors
// SPDX-License-Identifier: Apache-2.0

package channel

import (
	"strings"
	"testing"

	"github.com/surge-realtime/surge-go/lib/fault"
)

func TestParse_Kinds(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
	}{
		{"my-channel", Public},
		{"notifications", Public},
		{"private-x", Private},
		{"presence-x", Presence},
		{"private-encrypted-x", PrivateEncrypted},
		{"presence-encrypted-x", PresenceEncrypted},
		// A bare prefix with nothing after it is not a prefixed
		// channel; it still matches the allowed character set.
		{"private-", Public},
		{"presence-", Public},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := Parse(tt.name)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.name, err)
			}
			if parsed.Kind != tt.kind {
				t.Errorf("Parse(%q).Kind = %v, want %v", tt.name, parsed.Kind, tt.kind)
			}
			if parsed.Name != tt.name {
				t.Errorf("Parse(%q).Name = %q, want the full name", tt.name, parsed.Name)
			}
		})
	}
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		label string
		name  string
	}{
		{"empty", ""},
		{"too long", strings.Repeat("a", MaxNameLength+1)},
		{"space", "my channel"},
		{"slash", "private/x"},
		{"colon", "private:x"},
		{"unicode", "privé"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			_, err := Parse(tt.name)
			if err == nil {
				t.Fatalf("Parse(%q) should have failed", tt.name)
			}
			if !fault.IsValidation(err) {
				t.Errorf("Parse(%q) error = %v, want ValidationError", tt.name, err)
			}
		})
	}
}

func TestParse_MaxLengthAccepted(t *testing.T) {
	name := strings.Repeat("a", MaxNameLength)
	if _, err := Parse(name); err != nil {
		t.Errorf("Parse of 200-character name failed: %v", err)
	}
}

func TestClassify_EncryptedRequiresMasterKey(t *testing.T) {
	without := NewClassifier(false)

	_, err := without.Classify("private-encrypted-room")
	if err == nil {
		t.Fatal("Classify should fail without a master key")
	}
	if !fault.IsConfig(err) {
		t.Errorf("error = %v, want ConfigError (caller setup at fault, not input)", err)
	}

	// Non-encrypted kinds classify fine without a master key.
	if _, err := without.Classify("presence-room"); err != nil {
		t.Errorf("Classify(presence-room) failed: %v", err)
	}

	with := NewClassifier(true)
	parsed, err := with.Classify("private-encrypted-room")
	if err != nil {
		t.Fatalf("Classify with master key failed: %v", err)
	}
	if parsed.Kind != PrivateEncrypted {
		t.Errorf("Kind = %v, want PrivateEncrypted", parsed.Kind)
	}
}

func TestClassify_InvalidNameStaysValidation(t *testing.T) {
	cl := NewClassifier(false)
	_, err := cl.Classify("bad name")
	if !fault.IsValidation(err) {
		t.Errorf("malformed name error = %v, want ValidationError", err)
	}
}

func TestChannelPredicates(t *testing.T) {
	tests := []struct {
		name         string
		requiresAuth bool
		encrypted    bool
		presence     bool
	}{
		{"plain", false, false, false},
		{"private-a", true, false, false},
		{"presence-a", true, false, true},
		{"private-encrypted-a", true, true, false},
		{"presence-encrypted-a", true, true, true},
	}

	for _, tt := range tests {
		parsed, err := Parse(tt.name)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", tt.name, err)
		}
		if parsed.RequiresAuth() != tt.requiresAuth {
			t.Errorf("%q RequiresAuth = %v, want %v", tt.name, parsed.RequiresAuth(), tt.requiresAuth)
		}
		if parsed.Encrypted() != tt.encrypted {
			t.Errorf("%q Encrypted = %v, want %v", tt.name, parsed.Encrypted(), tt.encrypted)
		}
		if parsed.IsPresence() != tt.presence {
			t.Errorf("%q IsPresence = %v, want %v", tt.name, parsed.IsPresence(), tt.presence)
		}
	}
}

func TestKindString(t *testing.T) {
	if Public.String() != "public" || PresenceEncrypted.String() != "presence-encrypted" {
		t.Error("Kind.String returned unexpected names")
	}
	if Kind(99).String() != "unknown" {
		t.Error("out-of-range Kind should stringify as unknown")
	}
}
