package config

import (
	"os"
	"strconv"
	"strings"
)

// Development reports whether the DEVELOPMENT env variable asks for
// development mode. It only picks the default for the mode key.
// Accepts anything strconv.ParseBool does; other non-empty values count as
// true, so DEVELOPMENT=yes works.
func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	development = strings.TrimSpace(development)
	if development == "" {
		return false
	}
	if b, err := strconv.ParseBool(development); err == nil {
		return b
	}
	return true
}
