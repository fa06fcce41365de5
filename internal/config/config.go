// Package config carries the runtime settings of the server process.
package config

import (
	"strings"
	"time"
)

const (
	DefaultAddr       = ":5000"
	DefaultEvictGrace = time.Minute * 5
)

type Config struct {
	Addr           string        // listen address
	AllowedOrigins []string      // exact Origin header values allowed through
	EvictGrace     time.Duration // how long an empty room survives
	Debug          bool
}

func Default() Config {
	return Config{
		Addr:       DefaultAddr,
		EvictGrace: DefaultEvictGrace,
	}
}

// ParseOrigins splits a comma-separated origin list, dropping empty items.
func ParseOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
