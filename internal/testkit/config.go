// Package testkit provides test infrastructure for integration tests against a rates upstream.
package testkit

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds environment-driven configuration for integration test infrastructure.
type Config struct {
	UpstreamURL    string        // If set, skip the stub upstream and hit this URL.
	TimeoutSec     int           // Provider timeout used by the service under test.
	StartupTimeout time.Duration // Max time to wait for the upstream to answer.
	KeepUpstream   bool          // If true, leave the stub running on shutdown and print its URL.
}

// LoadConfig reads test infrastructure settings from environment variables.
func LoadConfig() Config {
	return Config{
		UpstreamURL:    os.Getenv("TEST_UPSTREAM_URL"),
		TimeoutSec:     envIntOrDefault("TEST_UPSTREAM_TIMEOUT_SEC", 5),
		StartupTimeout: envDurationOrDefault("TEST_STARTUP_TIMEOUT", 10*time.Second),
		KeepUpstream:   envBoolOrDefault("KEEP_UPSTREAM", false),
	}
}

func envIntOrDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		fmt.Fprintf(os.Stderr, "testkit: invalid value %q for %s (expected positive int), using default %d\n", v, key, def)
		return def
	}
	return n
}

func envDurationOrDefault(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		// Try parsing as plain seconds.
		secs, err2 := strconv.Atoi(v)
		if err2 != nil {
			fmt.Fprintf(os.Stderr, "testkit: invalid value %q for %s (expected duration or seconds), using default %v\n", v, key, def)
			return def
		}
		return time.Duration(secs) * time.Second
	}
	return d
}

func envBoolOrDefault(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "testkit: invalid value %q for %s (expected bool), using default %v\n", v, key, def)
		return def
	}
	return b
}
