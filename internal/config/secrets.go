package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type secretsFile struct {
	Credentials
}

func readSecretsFile(path string) (secretsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return secretsFile{}, fmt.Errorf("read secrets file %s: %w", path, err)
	}
	var s secretsFile
	if err := toml.Unmarshal(data, &s.Credentials); err != nil {
		return secretsFile{}, fmt.Errorf("parse secrets file %s: %w", path, err)
	}
	return s, nil
}

// overlay returns base with every non-empty secret replacing its env counterpart.
func (s secretsFile) overlay(base Credentials) Credentials {
	if s.ClientID != "" {
		base.ClientID = s.ClientID
	}
	if s.ClientSecret != "" {
		base.ClientSecret = s.ClientSecret
	}
	if s.RedirectURI != "" {
		base.RedirectURI = s.RedirectURI
	}
	return base
}
