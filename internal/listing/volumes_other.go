//go:build !linux && !darwin && !freebsd && !windows

package listing

import "rcloneexplorer/internal/models"

type platformVolumes struct{}

func (platformVolumes) Volumes() ([]models.FileItem, error) {
	return []models.FileItem{rootVolume(0)}, nil
}
