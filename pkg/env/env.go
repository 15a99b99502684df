// Package env reads process environment overrides that sit outside the
// typed configuration, such as platform-injected ports.
package env

import (
	"os"
	"strings"
)

// Get returns the trimmed value of key, or fallback when the variable is
// unset or blank.
func Get(key, fallback string) string {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	if val := strings.TrimSpace(raw); val != "" {
		return val
	}
	return fallback
}
