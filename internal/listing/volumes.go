package listing

import "rcloneexplorer/internal/models"

// VolumeEnumerator lists the top-level volumes of the machine as directory
// items. Each platform provides its own implementation.
type VolumeEnumerator interface {
	Volumes() ([]models.FileItem, error)
}

// NewVolumeEnumerator returns the enumerator for the running platform.
func NewVolumeEnumerator() VolumeEnumerator {
	return platformVolumes{}
}

// rootVolume is the single synthetic entry reported where there are no
// drive letters.
func rootVolume(size int64) models.FileItem {
	return models.FileItem{
		Name:  "Root (/)",
		Path:  "/",
		Size:  size,
		IsDir: true,
	}
}
