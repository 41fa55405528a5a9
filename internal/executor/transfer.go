package executor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"rcloneexplorer/internal/models"
	"rcloneexplorer/internal/rclone"
	"rcloneexplorer/internal/sanitizer"
)

// TransferExecutor issues copy, move and delete operations to rclone, one
// invocation per source item. The first failure aborts the batch; items
// already transferred stay transferred.
type TransferExecutor struct {
	runner rclone.Runner
	now    func() time.Time
}

func NewTransferExecutor(runner rclone.Runner) *TransferExecutor {
	return &TransferExecutor{
		runner: runner,
		now:    time.Now,
	}
}

// Copy copies every source path into the destination and returns a job
// identifier derived from the current time.
func (e *TransferExecutor) Copy(ctx context.Context, req models.TransferRequest) (string, error) {
	for _, fromPath := range req.FromPaths {
		args := e.prepareCopyArgs(req, fromPath)
		if err := e.run(ctx, "copy", req.FromRemote, fromPath, args); err != nil {
			return "", err
		}
	}
	return e.jobID(), nil
}

// Move moves every source path into the destination. Options are ignored.
func (e *TransferExecutor) Move(ctx context.Context, req models.TransferRequest) (string, error) {
	for _, fromPath := range req.FromPaths {
		args := []string{
			"move",
			sanitizer.Target(req.FromRemote, fromPath),
			sanitizer.Target(req.ToRemote, req.ToPath),
		}
		if err := e.run(ctx, "move", req.FromRemote, fromPath, args); err != nil {
			return "", err
		}
	}
	return e.jobID(), nil
}

// Delete removes each path with rclone deletefile, so every path must name
// a single file.
func (e *TransferExecutor) Delete(ctx context.Context, req models.DeleteRequest) error {
	for _, path := range req.Paths {
		args := []string{"deletefile", sanitizer.Target(req.Remote, path)}
		if err := e.run(ctx, "deletefile", req.Remote, path, args); err != nil {
			return err
		}
	}
	return nil
}

func (e *TransferExecutor) prepareCopyArgs(req models.TransferRequest, fromPath string) []string {
	args := []string{
		"copy",
		sanitizer.Target(req.FromRemote, fromPath),
		sanitizer.Target(req.ToRemote, req.ToPath),
	}

	if req.Options.SkipExisting {
		args = append(args, "--ignore-existing")
	}

	// Only suppresses the modtime update; contents are still overwritten.
	if !req.Options.Overwrite {
		args = append(args, "--no-update-modtime")
	}

	return args
}

func (e *TransferExecutor) run(ctx context.Context, op, remote, path string, args []string) error {
	slog.Info("running rclone transfer",
		"operation", op,
		"remote", remote,
		"path", path,
		"args", args)

	if _, err := e.runner.Run(ctx, args...); err != nil {
		slog.Error("rclone transfer failed",
			"operation", op,
			"remote", remote,
			"path", path,
			"error", err)
		return err
	}
	return nil
}

func (e *TransferExecutor) jobID() string {
	return fmt.Sprintf("job_%d", e.now().UTC().Unix())
}
