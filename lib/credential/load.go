// Copyright 2026 The Surge Authors
// SPDX-License-Identifier: Apache-2.0

package credential

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/surge-realtime/surge-go/lib/fault"
	"github.com/surge-realtime/surge-go/lib/secret"
)

// fileConfig is the YAML shape of a credential file.
//
// The master key may be given inline (master_key_base64) or as a path
// to a file whose contents are the base64 key (master_key_file), but
// not both. Either way the decoded key must be exactly MasterKeySize
// bytes.
type fileConfig struct {
	AppID           string `yaml:"app_id"`
	Key             string `yaml:"key"`
	Secret          string `yaml:"secret"`
	MasterKeyBase64 string `yaml:"master_key_base64"`
	MasterKeyFile   string `yaml:"master_key_file"`
}

// Load reads credentials from the file named by the SURGE_CREDENTIALS
// environment variable.
//
// This is the only way to load credentials without an explicit path.
// There are no fallbacks and no automatic discovery — configuration
// stays deterministic and auditable.
func Load() (*Credentials, error) {
	path := os.Getenv("SURGE_CREDENTIALS")
	if path == "" {
		return nil, fault.Configf("SURGE_CREDENTIALS environment variable not set; " +
			"set it to the path of your credentials YAML file")
	}
	return LoadFile(path)
}

// LoadFile reads credentials from a YAML file at path. The file is the
// single source of truth: environment variables never override its
// values.
func LoadFile(path string) (*Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading credentials file: %w", err)
	}

	var parsed fileConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fault.Configf("parsing credentials file %s: %v", path, err)
	}

	if err := parsed.validate(); err != nil {
		return nil, &fault.ConfigError{Message: fmt.Sprintf("credentials file %s: %v", path, err)}
	}

	masterKey, err := parsed.decodeMasterKey()
	if err != nil {
		return nil, err
	}
	if masterKey == nil {
		return New(parsed.AppID, parsed.Key, parsed.Secret)
	}
	return NewWithMasterKey(parsed.AppID, parsed.Key, parsed.Secret, masterKey)
}

func (f *fileConfig) validate() error {
	var errs []error

	if f.AppID == "" {
		errs = append(errs, fmt.Errorf("app_id is required"))
	}
	if f.Key == "" {
		errs = append(errs, fmt.Errorf("key is required"))
	}
	if f.Secret == "" {
		errs = append(errs, fmt.Errorf("secret is required"))
	}
	if f.MasterKeyBase64 != "" && f.MasterKeyFile != "" {
		errs = append(errs, fmt.Errorf("master_key_base64 and master_key_file are mutually exclusive"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// decodeMasterKey resolves the optional master key to raw bytes.
// Returns nil bytes when no master key is configured.
func (f *fileConfig) decodeMasterKey() ([]byte, error) {
	encoded := f.MasterKeyBase64

	if f.MasterKeyFile != "" {
		keyFile, err := secret.ReadFile(f.MasterKeyFile)
		if err != nil {
			return nil, fault.Configf("reading master key file: %v", err)
		}
		encoded = keyFile.String()
		keyFile.Close()
	}

	if encoded == "" {
		return nil, nil
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fault.Configf("master key is not valid base64: %v", err)
	}
	return raw, nil
}
