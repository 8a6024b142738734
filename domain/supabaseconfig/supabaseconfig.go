// Package supabaseconfig contains the domain for the public Supabase client configuration
package supabaseconfig

import (
	"fmt"
	"strings"
)

const (
	KeyURL     = "SUPABASE_URL"
	KeyAnonKey = "SUPABASE_ANON_KEY"
)

// RequiredKeys lists the environment keys the PWA needs, in reporting order.
var RequiredKeys = []string{KeyURL, KeyAnonKey}

type Config struct {
	URL     string `json:"SUPABASE_URL"`
	AnonKey string `json:"SUPABASE_ANON_KEY"`
}

// MissingKeysError names the required keys absent from an env file.
type MissingKeysError struct {
	Keys []string
}

func (e *MissingKeysError) Error() string {
	return fmt.Sprintf("missing variables in .env: %s", strings.Join(e.Keys, ", "))
}

// FromEnv builds a Config from parsed env entries. In strict mode every
// required key must be present (an empty value counts as present);
// otherwise absent keys default to "".
func FromEnv(env map[string]string, strict bool) (*Config, error) {
	if strict {
		var missing []string
		for _, key := range RequiredKeys {
			if _, ok := env[key]; !ok {
				missing = append(missing, key)
			}
		}
		if len(missing) > 0 {
			return nil, &MissingKeysError{Keys: missing}
		}
	}

	return &Config{
		URL:     env[KeyURL],
		AnonKey: env[KeyAnonKey],
	}, nil
}
