// Package testing prepares the process environment for package tests.
// Import it for its side effects.
package testing

import "os"

var defaults = map[string]string{
	"MEDICARE_TEST_MODE": "1",
	"BACKEND_URL":        "http://127.0.0.1:0",
	"SESSION_SECRET":     "test-session-secret",
	"CSRF_SECRET":        "test-csrf-secret",
}

func init() {
	for key, value := range defaults {
		if _, ok := os.LookupEnv(key); !ok {
			_ = os.Setenv(key, value)
		}
	}
}
