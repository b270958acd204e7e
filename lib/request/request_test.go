// Copyright 2026 The Surge Authors
// SPDX-License-Identifier: Apache-2.0

package request

import (
	"testing"
	"time"

	"github.com/surge-realtime/surge-go/lib/clock"
	"github.com/surge-realtime/surge-go/lib/credential"
	"github.com/surge-realtime/surge-go/lib/fault"
)

func testAuthenticator(t *testing.T) *Authenticator {
	t.Helper()
	creds, err := credential.New("102015", "test_key", "test_secret")
	if err != nil {
		t.Fatalf("building credentials: %v", err)
	}
	t.Cleanup(func() { creds.Close() })
	return NewAuthenticator(creds, clock.Fixed(time.Unix(1353088179, 0)))
}

func TestSign_PostWithBody(t *testing.T) {
	auth := testAuthenticator(t)
	body := []byte(`{"name":"order-created","channels":["orders"],"data":"{\"id\":7}"}`)

	params, err := auth.Sign("POST", "/apps/102015/events", nil, body)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	// Independently computed: HMAC-SHA256("test_secret",
	// "POST\n/apps/102015/events\nauth_key=test_key&auth_timestamp=
	// 1353088179&auth_version=1.0&body_md5=<md5 of body>").
	want := map[string]string{
		"auth_key":       "test_key",
		"auth_timestamp": "1353088179",
		"auth_version":   "1.0",
		"body_md5":       "46ec85441cd916b3e30ae3d9fba168fb",
		"auth_signature": "36f7396a0f0d98b00a2babf98424d23123e9d93ae378aa3dfbbd7ed5c41186fb",
	}
	if len(params) != len(want) {
		t.Errorf("Sign returned %d params, want %d: %v", len(params), len(want), params)
	}
	for key, value := range want {
		if params[key] != value {
			t.Errorf("params[%s] = %s, want %s", key, params[key], value)
		}
	}
}

func TestSign_GetWithQuery(t *testing.T) {
	auth := testAuthenticator(t)

	params, err := auth.Sign("get", "/apps/102015/channels", map[string]string{
		"info":             "user_count",
		"filter_by_prefix": "presence-",
	}, nil)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	// Lowercase method is canonicalized to GET; caller params sort
	// into the canonical string alongside the auth params.
	want := "44b5ad358891e50c59db5355c9eeb8bcb6d7d63e868a841e8401dfb617743449"
	if params["auth_signature"] != want {
		t.Errorf("auth_signature = %s, want %s", params["auth_signature"], want)
	}
	if _, present := params["body_md5"]; present {
		t.Error("bodyless request must not carry body_md5")
	}
	if params["info"] != "user_count" || params["filter_by_prefix"] != "presence-" {
		t.Error("caller query parameters must survive into the result")
	}
}

func TestSign_Deterministic(t *testing.T) {
	auth := testAuthenticator(t)
	body := []byte(`{"data":"x"}`)

	first, err := auth.Sign("POST", "/apps/102015/events", nil, body)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	second, err := auth.Sign("POST", "/apps/102015/events", nil, body)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	if first["auth_signature"] != second["auth_signature"] {
		t.Error("fixed clock and identical input must give identical signatures")
	}
}

func TestSign_Rejects(t *testing.T) {
	auth := testAuthenticator(t)

	tests := []struct {
		label  string
		method string
		path   string
		query  map[string]string
	}{
		{"empty method", "", "/apps/1/events", nil},
		{"relative path", "POST", "apps/1/events", nil},
		{"reserved auth_key", "POST", "/apps/1/events", map[string]string{"auth_key": "spoof"}},
		{"reserved auth_signature", "POST", "/apps/1/events", map[string]string{"auth_signature": "spoof"}},
		{"reserved mixed case", "POST", "/apps/1/events", map[string]string{"Auth_Timestamp": "0"}},
		{"reserved body_md5", "POST", "/apps/1/events", map[string]string{"body_md5": "spoof"}},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			_, err := auth.Sign(tt.method, tt.path, tt.query, nil)
			if err == nil {
				t.Fatal("Sign should have failed")
			}
			if !fault.IsValidation(err) {
				t.Errorf("error = %v, want ValidationError", err)
			}
		})
	}
}

func TestNewAuthenticator_DefaultClock(t *testing.T) {
	creds, err := credential.New("app", "key", "secret")
	if err != nil {
		t.Fatalf("building credentials: %v", err)
	}
	defer creds.Close()

	auth := NewAuthenticator(creds, nil)
	params, err := auth.Sign("GET", "/apps/app/channels", nil, nil)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	if params["auth_timestamp"] == "" {
		t.Error("real clock must still populate auth_timestamp")
	}
}
