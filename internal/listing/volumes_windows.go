//go:build windows

package listing

import (
	"fmt"
	"log/slog"
	"sort"

	"golang.org/x/sys/windows"

	"rcloneexplorer/internal/models"
)

type platformVolumes struct{}

// Volumes enumerates drive letters with their labels and capacities.
func (platformVolumes) Volumes() ([]models.FileItem, error) {
	n, err := windows.GetLogicalDriveStrings(0, nil)
	if err != nil || n == 0 {
		return nil, models.NewError(models.KindFilesystem, "failed to get drive list", err)
	}

	buf := make([]uint16, n)
	if _, err := windows.GetLogicalDriveStrings(n, &buf[0]); err != nil {
		return nil, models.NewError(models.KindFilesystem, "failed to get drive strings", err)
	}

	var drives []models.FileItem
	start := 0
	for i, c := range buf {
		if c != 0 {
			continue
		}
		if i > start {
			root := windows.UTF16ToString(buf[start:i])
			drives = append(drives, describeDrive(root))
		}
		start = i + 1
	}

	sort.Slice(drives, func(i, j int) bool {
		return drives[i].Path < drives[j].Path
	})

	return drives, nil
}

func describeDrive(root string) models.FileItem {
	letter := root[:1]
	rootPtr, err := windows.UTF16PtrFromString(root)
	if err != nil {
		return models.FileItem{Name: fmt.Sprintf("Drive (%s:)", letter), Path: root, IsDir: true}
	}

	label := volumeLabel(rootPtr)
	name := driveName(label, letter, windows.GetDriveType(rootPtr))

	var total uint64
	if err := windows.GetDiskFreeSpaceEx(rootPtr, nil, &total, nil); err != nil {
		slog.Debug("failed to get disk space", "drive", root, "error", err)
		total = 0
	}

	return models.FileItem{
		Name:  name,
		Path:  root,
		Size:  int64(total),
		IsDir: true,
	}
}

func volumeLabel(rootPtr *uint16) string {
	buf := make([]uint16, windows.MAX_PATH+1)
	err := windows.GetVolumeInformation(rootPtr, &buf[0], uint32(len(buf)), nil, nil, nil, nil, 0)
	if err != nil {
		return ""
	}
	return windows.UTF16ToString(buf)
}

func driveName(label, letter string, driveType uint32) string {
	if label != "" {
		return fmt.Sprintf("%s (%s:)", label, letter)
	}

	switch driveType {
	case windows.DRIVE_FIXED:
		return fmt.Sprintf("Local Disk (%s:)", letter)
	case windows.DRIVE_REMOVABLE:
		return fmt.Sprintf("Removable Disk (%s:)", letter)
	case windows.DRIVE_REMOTE:
		return fmt.Sprintf("Network Drive (%s:)", letter)
	case windows.DRIVE_CDROM:
		return fmt.Sprintf("CD Drive (%s:)", letter)
	default:
		return fmt.Sprintf("Drive (%s:)", letter)
	}
}
