package interfaces

import (
	"context"

	"rcloneexplorer/internal/models"
	"rcloneexplorer/internal/provision"
)

// RemoteCatalog lists the remotes rclone is configured with
type RemoteCatalog interface {
	ListRemotes(ctx context.Context) ([]models.Remote, error)
}

// DirectoryLister lists one directory of a remote or of the local machine
type DirectoryLister interface {
	ListDir(ctx context.Context, remote, path string) ([]models.FileItem, error)
	LocalLabel() string
}

// TransferExecutor copies, moves and deletes items through rclone
type TransferExecutor interface {
	Copy(ctx context.Context, req models.TransferRequest) (string, error)
	Move(ctx context.Context, req models.TransferRequest) (string, error)
	Delete(ctx context.Context, req models.DeleteRequest) error
}

// ToolProvisioner reports on and installs the rclone executable
type ToolProvisioner interface {
	CheckVersion(ctx context.Context) models.RcloneInfo
	Install(ctx context.Context, sink provision.ProgressSink) (string, error)
	Update(ctx context.Context, sink provision.ProgressSink) (string, error)
}
