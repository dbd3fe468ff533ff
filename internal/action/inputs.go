// Package action adapts the wrapper to the GitHub Actions runtime surface:
// input resolution, workflow commands, step outputs, and the step summary.
package action

import (
	"os"
	"strings"
	"time"
)

// Inputs are the two documents the action manifest declares. The Actions
// runner delivers declared inputs as INPUT_<NAME> environment variables.
type Inputs struct {
	Jobs   string
	Config string
}

// ReadInputs resolves the action's inputs from the environment. Empty
// values are returned as-is; validation names the offending input.
func ReadInputs() Inputs {
	return Inputs{
		Jobs:   os.Getenv("INPUT_JOBS"),
		Config: os.Getenv("INPUT_CONFIG"),
	}
}

// Timeout returns the optional wrapper-level wall-clock budget from
// WEBCHANGES_TIMEOUT. Zero means the external tool's own timeout policy is
// the only bound. A malformed duration is an error the caller surfaces as a
// usage failure.
func Timeout() (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv("WEBCHANGES_TIMEOUT"))
	if raw == "" {
		return 0, nil
	}
	return time.ParseDuration(raw)
}

// InCI reports whether we are running under a CI environment. GitHub sets
// CI=true on its runners.
func InCI() bool {
	return os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != ""
}
