package rclone

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"strings"
	"time"
	"unicode/utf8"

	"rcloneexplorer/internal/models"
)

// DefaultBinary is the executable looked up on PATH when nothing else is
// configured.
const DefaultBinary = "rclone"

// Runner runs one rclone invocation and returns its standard output.
type Runner interface {
	Run(ctx context.Context, args ...string) (string, error)
}

// ExecRunner runs rclone as a child process and blocks until it exits.
// There is no timeout and no retry.
type ExecRunner struct {
	binary string
}

// NewExecRunner creates a runner for the given executable. An empty binary
// means DefaultBinary.
func NewExecRunner(binary string) *ExecRunner {
	if binary == "" {
		binary = DefaultBinary
	}
	return &ExecRunner{binary: binary}
}

// Binary returns the executable this runner spawns.
func (r *ExecRunner) Binary() string {
	return r.binary
}

func (r *ExecRunner) Run(ctx context.Context, args ...string) (string, error) {
	out, err := r.exec(ctx, args)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(out) {
		return "", models.Errorf(models.KindInvalidOutputEncoding,
			"invalid UTF-8 output from rclone %s", strings.Join(args, " "))
	}

	return string(out), nil
}

// RunLossy is Run without the encoding check: invalid UTF-8 in stdout is
// replaced with U+FFFD instead of failing.
func (r *ExecRunner) RunLossy(ctx context.Context, args ...string) (string, error) {
	out, err := r.exec(ctx, args)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(out), "\uFFFD"), nil
}

func (r *ExecRunner) exec(ctx context.Context, args []string) ([]byte, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, r.binary, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()

	slog.Debug("rclone finished",
		"binary", r.binary,
		"args", args,
		"duration", time.Since(start),
		"error", err)

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, models.Errorf(models.KindToolExecutionFailed,
				"Rclone error: %s", strings.TrimSpace(stderr.String()))
		}
		return nil, models.Errorf(models.KindToolNotFound,
			"Failed to execute rclone: %v. Make sure rclone is installed.", err)
	}

	return stdout.Bytes(), nil
}
