// Copyright 2026 The Surge Authors
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"encoding/base64"
	"encoding/json"
	"regexp"

	"github.com/surge-realtime/surge-go/lib/credential"
	"github.com/surge-realtime/surge-go/lib/fault"
	"github.com/surge-realtime/surge-go/lib/sealed"
	"github.com/surge-realtime/surge-go/lib/signature"
)

// socketIDPattern matches the connection identifiers the realtime
// server hands out: two decimal runs joined by a dot.
var socketIDPattern = regexp.MustCompile(`^\d+\.\d+$`)

// PresenceData identifies a member joining a presence channel. UserID
// is required; UserInfo is an optional JSON-serializable payload
// broadcast to other members.
type PresenceData struct {
	UserID   string `json:"user_id"`
	UserInfo any    `json:"user_info,omitempty"`
}

// SocketAuth is the response body a subscription auth endpoint returns
// to the client library.
type SocketAuth struct {
	Auth         string `json:"auth"`
	ChannelData  string `json:"channel_data,omitempty"`
	SharedSecret string `json:"shared_secret,omitempty"`
}

// UserAuth is the response body a user authentication endpoint returns
// to the client library.
type UserAuth struct {
	Auth     string `json:"auth"`
	UserData string `json:"user_data"`
}

// Authorizer produces subscription and user authentication responses
// for one app. It is stateless and safe for concurrent use.
type Authorizer struct {
	creds *credential.Credentials
}

// NewAuthorizer binds an Authorizer to credentials.
func NewAuthorizer(creds *credential.Credentials) *Authorizer {
	return &Authorizer{creds: creds}
}

// ValidateSocketID checks that socketID has the server-issued
// "number.number" form. Anything else is rejected before it can reach
// a signed message, since the socket ID is interpolated into the
// colon-delimited canonical string.
func ValidateSocketID(socketID string) error {
	if !socketIDPattern.MatchString(socketID) {
		return fault.Validationf("socket ID %q is not of the form <number>.<number>", socketID)
	}
	return nil
}

// AuthorizeChannel signs a subscription request for a private,
// presence, or encrypted channel.
//
// The signed message is socket_id:channel_name for private channels
// and socket_id:channel_name:channel_data for presence channels, where
// channel_data is the compact JSON encoding of presence. Presence
// channels require presence data with a non-empty UserID; passing
// presence data for a non-presence channel is rejected rather than
// silently ignored. Public channels never need authorization, so
// asking for one is an error.
//
// For encrypted channels the response additionally carries the
// channel's shared secret, base64-encoded, so the subscriber can
// decrypt published payloads.
func (a *Authorizer) AuthorizeChannel(socketID, channelName string, presence *PresenceData) (*SocketAuth, error) {
	if err := ValidateSocketID(socketID); err != nil {
		return nil, err
	}

	ch, err := a.creds.Classifier().Classify(channelName)
	if err != nil {
		return nil, err
	}
	if !ch.RequiresAuth() {
		return nil, fault.Validationf("public channel %q does not require authorization", channelName)
	}

	var channelData string
	switch {
	case ch.IsPresence() && presence == nil:
		return nil, fault.Validationf("presence channel %q requires presence data", channelName)
	case !ch.IsPresence() && presence != nil:
		return nil, fault.Validationf("channel %q is not a presence channel but presence data was supplied", channelName)
	case presence != nil:
		if presence.UserID == "" {
			return nil, fault.Validationf("presence data requires a user_id")
		}
		encoded, err := json.Marshal(presence)
		if err != nil {
			return nil, fault.Validationf("encoding presence data: %v", err)
		}
		channelData = string(encoded)
	}

	message := socketID + ":" + ch.Name
	if channelData != "" {
		message += ":" + channelData
	}

	response := &SocketAuth{
		Auth:        a.creds.Key() + ":" + signature.Sign(a.creds.SecretBytes(), []byte(message)),
		ChannelData: channelData,
	}

	if ch.Encrypted() {
		sharedSecret, err := sealed.SharedSecret(a.creds.MasterKeyBytes(), ch.Name)
		if err != nil {
			return nil, err
		}
		response.SharedSecret = base64.StdEncoding.EncodeToString(sharedSecret.Bytes())
		sharedSecret.Close()
	}

	return response, nil
}

// AuthenticateUser signs a user authentication request. userData must
// contain a non-empty string "id"; the remaining entries are
// application-defined and echoed back to the client verbatim.
//
// The signed message is socket_id::user::user_data. The double-colon
// sentinel cannot collide with a channel authorization message because
// channel names never start with a colon.
func (a *Authorizer) AuthenticateUser(socketID string, userData map[string]any) (*UserAuth, error) {
	if err := ValidateSocketID(socketID); err != nil {
		return nil, err
	}

	id, ok := userData["id"].(string)
	if !ok || id == "" {
		return nil, fault.Validationf("user data requires a non-empty string id")
	}

	encoded, err := json.Marshal(userData)
	if err != nil {
		return nil, fault.Validationf("encoding user data: %v", err)
	}

	message := socketID + "::user::" + string(encoded)
	return &UserAuth{
		Auth:     a.creds.Key() + ":" + signature.Sign(a.creds.SecretBytes(), []byte(message)),
		UserData: string(encoded),
	}, nil
}
