package provision

import (
	"archive/zip"
	"io"
	"os"
	"path"
	"path/filepath"
	"runtime"

	"github.com/mholt/archiver/v3"

	"rcloneexplorer/internal/models"
)

// extractExecutable copies the first archive entry named exeName to dest
// and marks it executable.
func extractExecutable(archivePath, exeName, dest string) error {
	var (
		found      bool
		extractErr error
	)

	err := archiver.NewZip().Walk(archivePath, func(f archiver.File) error {
		if f.IsDir() || path.Base(entryName(f)) != exeName {
			return nil
		}
		found = true
		extractErr = writeExecutable(f, dest)
		return archiver.ErrStopWalk
	})
	if err != nil {
		return models.NewError(models.KindArchive, "failed to read zip", err)
	}
	if extractErr != nil {
		return extractErr
	}
	if !found {
		return models.Errorf(models.KindArchive, "no %s found in %s", exeName, filepath.Base(archivePath))
	}
	return nil
}

func entryName(f archiver.File) string {
	if hdr, ok := f.Header.(zip.FileHeader); ok {
		return hdr.Name
	}
	return f.Name()
}

// writeExecutable stages src next to dest and renames it into place, so a
// failed extraction leaves any previous executable untouched.
func writeExecutable(src io.Reader, dest string) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(dest), ".rclone-*.tmp")
	if err != nil {
		return models.NewError(models.KindFilesystem, "failed to create rclone executable", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			os.Remove(tmpPath)
		}
	}()

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		return models.NewError(models.KindArchive, "failed to extract rclone", err)
	}
	if err := tmp.Close(); err != nil {
		return models.NewError(models.KindFilesystem, "failed to extract rclone", err)
	}

	if runtime.GOOS != "windows" {
		if err := os.Chmod(tmpPath, 0755); err != nil {
			return models.NewError(models.KindFilesystem, "failed to set permissions", err)
		}
	}

	if err := os.Rename(tmpPath, dest); err != nil {
		return models.NewError(models.KindFilesystem, "failed to replace rclone executable", err)
	}
	return nil
}
