package rclone

import (
	"context"
	"os"
)

// ResolveBinary picks the executable to run: the configured one, else the
// managed install when it exists, else DefaultBinary from PATH.
func ResolveBinary(configured, installed string) string {
	if configured != "" {
		return configured
	}
	if installed != "" {
		if info, err := os.Stat(installed); err == nil && !info.IsDir() {
			return installed
		}
	}
	return DefaultBinary
}

// ResolvingRunner re-resolves the executable on every call so a tool
// installed while the process is running is used by later operations.
type ResolvingRunner struct {
	binary func() string
}

func NewResolvingRunner(configured, installed string) *ResolvingRunner {
	return NewResolvingRunnerFunc(func() string {
		return ResolveBinary(configured, installed)
	})
}

// NewResolvingRunnerFunc asks binary for the executable before each call,
// which lets the configured path change while the process runs.
func NewResolvingRunnerFunc(binary func() string) *ResolvingRunner {
	return &ResolvingRunner{binary: binary}
}

// Binary returns the executable the next call would spawn.
func (r *ResolvingRunner) Binary() string {
	return r.binary()
}

func (r *ResolvingRunner) Run(ctx context.Context, args ...string) (string, error) {
	return NewExecRunner(r.Binary()).Run(ctx, args...)
}
