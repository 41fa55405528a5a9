package listing

import (
	"context"
	"encoding/json"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"rcloneexplorer/internal/models"
	"rcloneexplorer/internal/rclone"
	"rcloneexplorer/internal/sanitizer"
)

// DefaultLocalLabel is the pseudo-remote that addresses this machine.
const DefaultLocalLabel = "This PC"

// remoteEntry is one object of `rclone lsjson` output.
type remoteEntry struct {
	Path     string  `json:"Path"`
	Name     string  `json:"Name"`
	Size     int64   `json:"Size"`
	MimeType *string `json:"MimeType"`
	ModTime  string  `json:"ModTime"`
	IsDir    bool    `json:"IsDir"`
}

// Lister lists directories of the local machine or of an rclone remote.
// Nothing is cached; every call queries its source again.
type Lister struct {
	runner     rclone.Runner
	volumes    VolumeEnumerator
	fs         afero.Fs
	localLabel func() string
}

// Option customizes a Lister.
type Option func(*Lister)

// WithFs replaces the local filesystem, which defaults to the OS.
func WithFs(fs afero.Fs) Option {
	return func(l *Lister) {
		l.fs = fs
	}
}

// WithVolumeEnumerator replaces the platform volume enumerator.
func WithVolumeEnumerator(v VolumeEnumerator) Option {
	return func(l *Lister) {
		l.volumes = v
	}
}

// WithLocalLabel changes the pseudo-remote name of the local machine.
func WithLocalLabel(label string) Option {
	return func(l *Lister) {
		if label != "" {
			l.localLabel = func() string { return label }
		}
	}
}

// WithLocalLabelFunc reads the local pseudo-remote name on every call, so a
// reloaded configuration applies to the next listing. An empty result
// falls back to DefaultLocalLabel.
func WithLocalLabelFunc(label func() string) Option {
	return func(l *Lister) {
		l.localLabel = func() string {
			if name := label(); name != "" {
				return name
			}
			return DefaultLocalLabel
		}
	}
}

func NewLister(runner rclone.Runner, opts ...Option) *Lister {
	l := &Lister{
		runner:     runner,
		volumes:    NewVolumeEnumerator(),
		fs:         afero.NewOsFs(),
		localLabel: func() string { return DefaultLocalLabel },
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LocalLabel returns the pseudo-remote name of the local machine.
func (l *Lister) LocalLabel() string {
	return l.localLabel()
}

// ListDir lists path on remote. The local label at "/" lists volumes, the
// local label elsewhere reads the disk directly, and any other remote goes
// through rclone lsjson.
func (l *Lister) ListDir(ctx context.Context, remote, path string) ([]models.FileItem, error) {
	slog.Debug("listing directory", "remote", remote, "path", path)

	localLabel := l.localLabel()
	switch {
	case remote == localLabel && path == "/":
		return l.volumes.Volumes()
	case remote == localLabel:
		return l.listLocal(path)
	default:
		return l.listRemote(ctx, remote, path)
	}
}

func (l *Lister) listLocal(dir string) ([]models.FileItem, error) {
	infos, err := afero.ReadDir(l.fs, dir)
	if err != nil {
		return nil, models.NewError(models.KindFilesystem, "failed to read directory", err)
	}

	items := make([]models.FileItem, 0, len(infos))
	for _, info := range infos {
		items = append(items, localItem(dir, info))
	}

	sortDirsFirst(items)
	return items, nil
}

func localItem(dir string, info fs.FileInfo) models.FileItem {
	item := models.FileItem{
		Name:     info.Name(),
		Path:     filepath.ToSlash(filepath.Join(dir, info.Name())),
		Modified: info.ModTime().UTC().Format(models.ModTimeLayout),
		IsDir:    info.IsDir(),
	}
	if !item.IsDir {
		item.Size = info.Size()
	}
	return item
}

// sortDirsFirst orders directories before files, each group by
// case-insensitive name.
func sortDirsFirst(items []models.FileItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].IsDir != items[j].IsDir {
			return items[i].IsDir
		}
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})
}

func (l *Lister) listRemote(ctx context.Context, remote, dir string) ([]models.FileItem, error) {
	output, err := l.runner.Run(ctx, "lsjson", sanitizer.Target(remote, dir))
	if err != nil {
		return nil, err
	}

	entries, err := parseRemoteEntries(output)
	if err != nil {
		return nil, err
	}

	items := make([]models.FileItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, remoteItem(dir, entry))
	}
	return items, nil
}

func parseRemoteEntries(output string) ([]remoteEntry, error) {
	var entries []remoteEntry
	if err := json.Unmarshal([]byte(output), &entries); err != nil {
		return nil, models.NewError(models.KindMalformedToolOutput, "failed to parse rclone output", err)
	}
	return entries, nil
}

func remoteItem(dir string, entry remoteEntry) models.FileItem {
	item := models.FileItem{
		Name:     entry.Name,
		Path:     sanitizer.JoinLogical(dir, entry.Name),
		Size:     entry.Size,
		Modified: entry.ModTime,
		IsDir:    entry.IsDir,
		MimeType: entry.MimeType,
	}
	// rclone reports -1 and inode/directory for directories.
	if item.IsDir {
		item.Size = 0
		item.MimeType = nil
	}
	return item
}
