package helpers

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a config duration such as "10s", falling back to defaultDuration
// when the value is empty or malformed.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	durationStr = strings.TrimSpace(durationStr)
	if durationStr == "" {
		return defaultDuration
	}

	duration, err := time.ParseDuration(durationStr)
	if err != nil || duration <= 0 {
		log.Warn().Err(err).
			Str("value", durationStr).
			Dur("default", defaultDuration).
			Msg("Invalid duration in config, using default")
		return defaultDuration
	}
	return duration
}
