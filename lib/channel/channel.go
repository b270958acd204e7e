// Copyright 2026 The Surge Authors
// SPDX-License-Identifier: Apache-2.0

package channel

import (
	"regexp"

	"github.com/surge-realtime/surge-go/lib/fault"
)

// Kind is the security classification of a channel, derived from the
// channel name prefix.
type Kind int

const (
	// Public channels require no authorization.
	Public Kind = iota
	// Private channels require a subscription-authorization signature.
	Private
	// Presence channels require authorization plus member data.
	Presence
	// PrivateEncrypted channels are private channels whose event
	// payloads are end-to-end encrypted with a derived shared secret.
	PrivateEncrypted
	// PresenceEncrypted channels combine presence membership with
	// end-to-end encrypted payloads.
	PresenceEncrypted
)

// String returns the kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case Public:
		return "public"
	case Private:
		return "private"
	case Presence:
		return "presence"
	case PrivateEncrypted:
		return "private-encrypted"
	case PresenceEncrypted:
		return "presence-encrypted"
	default:
		return "unknown"
	}
}

// Channel is a validated channel identifier: the full wire name plus
// its classified kind. Construct via Parse or Classifier.Classify.
type Channel struct {
	Name string
	Kind Kind
}

// RequiresAuth reports whether subscribing to the channel requires a
// subscription-authorization signature. Only public channels do not.
func (c Channel) RequiresAuth() bool { return c.Kind != Public }

// Encrypted reports whether event payloads on the channel are
// end-to-end encrypted.
func (c Channel) Encrypted() bool {
	return c.Kind == PrivateEncrypted || c.Kind == PresenceEncrypted
}

// IsPresence reports whether the channel carries presence membership.
func (c Channel) IsPresence() bool {
	return c.Kind == Presence || c.Kind == PresenceEncrypted
}

// MaxNameLength is the wire protocol's channel name length limit.
const MaxNameLength = 200

var namePattern = regexp.MustCompile(`^[A-Za-z0-9_\-=@,.;]+$`)

// Kind prefixes, checked longest first so that "presence-encrypted-x"
// never classifies as a plain presence channel.
var kindPrefixes = []struct {
	prefix string
	kind   Kind
}{
	{"presence-encrypted-", PresenceEncrypted},
	{"private-encrypted-", PrivateEncrypted},
	{"presence-", Presence},
	{"private-", Private},
}

// Parse validates name and classifies it by prefix. It performs no
// configuration checks: encrypted kinds are returned even when no
// master key is configured. Use a Classifier when the result will be
// used for authorization or encryption.
func Parse(name string) (Channel, error) {
	if name == "" {
		return Channel{}, fault.Validationf("channel name cannot be empty")
	}
	if len(name) > MaxNameLength {
		return Channel{}, fault.Validationf("channel name %q exceeds %d characters", name, MaxNameLength)
	}
	if !namePattern.MatchString(name) {
		return Channel{}, fault.Validationf("channel name %q contains characters outside [A-Za-z0-9_\\-=@,.;]", name)
	}

	for _, candidate := range kindPrefixes {
		if len(name) > len(candidate.prefix) && name[:len(candidate.prefix)] == candidate.prefix {
			return Channel{Name: name, Kind: candidate.kind}, nil
		}
	}
	return Channel{Name: name, Kind: Public}, nil
}

// Classifier classifies channel names against the client's key
// configuration. It rejects encrypted kinds when no encryption master
// key is configured — that is the caller's setup at fault, so the
// failure is a ConfigError rather than a ValidationError.
//
// A Classifier is a pure value: classification has no side effects and
// is safe for concurrent use.
type Classifier struct {
	hasMasterKey bool
}

// NewClassifier returns a Classifier. hasMasterKey states whether the
// client configuration carries an encryption master key.
func NewClassifier(hasMasterKey bool) Classifier {
	return Classifier{hasMasterKey: hasMasterKey}
}

// Classify validates and classifies name. Encrypted kinds fail with a
// ConfigError when no master key is configured.
func (cl Classifier) Classify(name string) (Channel, error) {
	parsed, err := Parse(name)
	if err != nil {
		return Channel{}, err
	}
	if parsed.Encrypted() && !cl.hasMasterKey {
		return Channel{}, fault.Configf("channel %q is encrypted but no encryption master key is configured", name)
	}
	return parsed, nil
}
