package input

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// File names inside the run-scoped working directory. The external tool
// receives these as --jobs, --config, and --hooks.
const (
	JobsFileName   = "jobs.yaml"
	ConfigFileName = "config.yaml"
	HooksFileName  = "hooks.py"
)

// hooksSource is the reporter/filter plugin the action ships for the
// external tool: the github_issue reporter and the between filter.
//
//go:embed assets/hooks.py
var hooksSource []byte

// Paths holds the locations of the materialized run artifacts.
type Paths struct {
	Jobs   string
	Config string
	Hooks  string
}

// WorkDir creates a run-scoped working directory. On a GitHub runner it
// lives under RUNNER_TEMP, which the runner wipes between jobs; elsewhere
// the OS temp dir is used. A UUID segment keeps concurrent local runs from
// colliding.
func WorkDir() (string, error) {
	base := os.Getenv("RUNNER_TEMP")
	if base == "" {
		base = os.TempDir()
	}
	dir := filepath.Join(base, "webchanges-"+uuid.New().String())
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("creating working directory: %w", err)
	}
	return dir, nil
}

// Materialize writes the validated documents plus the bundled hooks into
// workDir. Contents are written byte-for-byte; stale files from a previous
// run in the same directory are overwritten, never appended to. The config
// file carries a credential and is kept owner-only where the platform
// supports file modes.
func Materialize(jobsText, configText, workDir string) (Paths, error) {
	paths := Paths{
		Jobs:   filepath.Join(workDir, JobsFileName),
		Config: filepath.Join(workDir, ConfigFileName),
		Hooks:  filepath.Join(workDir, HooksFileName),
	}

	if err := writeFile(paths.Jobs, []byte(jobsText), 0o644); err != nil {
		return Paths{}, fmt.Errorf("writing jobs file: %w", err)
	}
	if err := writeFile(paths.Config, []byte(configText), 0o600); err != nil {
		return Paths{}, fmt.Errorf("writing config file: %w", err)
	}
	if err := writeFile(paths.Hooks, hooksSource, 0o644); err != nil {
		return Paths{}, fmt.Errorf("writing hooks file: %w", err)
	}
	return paths, nil
}

// writeFile truncates-and-writes like os.WriteFile, then re-applies perm.
// os.WriteFile only honors perm on creation; an overwritten file would keep
// the mode of the stale copy.
func writeFile(path string, data []byte, perm os.FileMode) error {
	if err := os.WriteFile(path, data, perm); err != nil {
		return err
	}
	return os.Chmod(path, perm)
}
