//go:build linux || darwin || freebsd

package listing

import (
	"log/slog"

	"golang.org/x/sys/unix"

	"rcloneexplorer/internal/models"
)

type platformVolumes struct{}

// Volumes reports the root filesystem, sized from statfs when possible.
func (platformVolumes) Volumes() ([]models.FileItem, error) {
	return []models.FileItem{rootVolume(rootCapacity("/"))}, nil
}

func rootCapacity(path string) int64 {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		slog.Debug("statfs failed", "path", path, "error", err)
		return 0
	}
	return int64(stat.Blocks * uint64(stat.Bsize))
}
