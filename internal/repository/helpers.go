package repository

import (
	"fmt"
	"strings"
	"time"
)

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// validateKey rejects keys that cannot double as file names.
func validateKey(key string) error {
	if key == "" {
		return fmt.Errorf("entry key is required")
	}
	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("invalid entry key %q", key)
	}
	return nil
}

// cloneBytes copies b so callers cannot alias stored values.
func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
