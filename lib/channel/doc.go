// Copyright 2026 The Surge Authors
// SPDX-License-Identifier: Apache-2.0

// Package channel classifies channel names into their security kind.
//
// A channel name is a string of at most 200 characters drawn from
// [A-Za-z0-9_\-=@,.;]. Its kind is derived deterministically from the
// longest matching name prefix:
//
//	presence-encrypted-  ->  PresenceEncrypted
//	private-encrypted-   ->  PrivateEncrypted
//	presence-            ->  Presence
//	private-             ->  Private
//	(anything else)      ->  Public
//
// Key exports:
//
//   - [Parse] -- pure validation and classification
//   - [Classifier] -- classification gated on master-key presence;
//     encrypted kinds without a configured master key fail with a
//     ConfigError
//   - [Channel.RequiresAuth], [Channel.Encrypted], [Channel.IsPresence]
//
// Depends on lib/fault for the error taxonomy.
package channel
