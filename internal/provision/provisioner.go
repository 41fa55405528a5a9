package provision

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"rcloneexplorer/internal/models"
	"rcloneexplorer/internal/rclone"
)

// DefaultDownloadBaseURL hosts the official rclone release archives.
const DefaultDownloadBaseURL = "https://downloads.rclone.org"

// InstalledMessage is returned by a successful install.
const InstalledMessage = "Rclone installed successfully"

const downloadChunkSize = 32 * 1024

// Config locates the managed rclone installation.
type Config struct {
	InstallDir      string
	DownloadBaseURL string
	Platform        Platform
}

// Provisioner checks, installs and updates the rclone executable kept under
// InstallDir. It holds no state between calls; its Config is read on every
// call so a reloaded configuration takes effect immediately.
type Provisioner struct {
	settings   func() Config
	httpClient *http.Client
}

func New(cfg Config) *Provisioner {
	return NewWithSource(func() Config { return cfg })
}

// NewWithSource creates a provisioner that asks source for its Config on
// every operation.
func NewWithSource(source func() Config) *Provisioner {
	return &Provisioner{
		settings: source,
		// No timeout: the download runs until it completes or fails.
		httpClient: &http.Client{},
	}
}

func (p *Provisioner) config() Config {
	cfg := p.settings()
	if cfg.DownloadBaseURL == "" {
		cfg.DownloadBaseURL = DefaultDownloadBaseURL
	}
	if cfg.Platform == (Platform{}) {
		cfg.Platform = CurrentPlatform()
	}
	return cfg
}

// ExecutablePath is where the managed rclone lives.
func (p *Provisioner) ExecutablePath() string {
	return p.config().executablePath()
}

// DownloadURL is the archive fetched by Install.
func (p *Provisioner) DownloadURL() string {
	return p.config().downloadURL()
}

func (c Config) executablePath() string {
	return filepath.Join(c.InstallDir, c.Platform.ExecutableName())
}

func (c Config) downloadURL() string {
	return strings.TrimRight(c.DownloadBaseURL, "/") + "/" + c.Platform.ArchiveName()
}

// CheckVersion reports whether the managed rclone exists and runs. It never
// fails: every problem reads as not installed.
func (p *Provisioner) CheckVersion(ctx context.Context) models.RcloneInfo {
	exe := p.ExecutablePath()
	info := models.RcloneInfo{Path: exe}

	if _, err := os.Stat(exe); err != nil {
		return info
	}

	// A working rclone with odd bytes in its banner still counts as installed.
	out, err := rclone.NewExecRunner(exe).RunLossy(ctx, "version")
	if err != nil {
		slog.Warn("rclone version check failed", "path", exe, "error", err)
		return info
	}

	info.Installed = true
	info.Version = parseVersion(out)
	return info
}

// parseVersion reads "rclone v1.66.0" from the first line of
// `rclone version` and returns "1.66.0".
func parseVersion(out string) *string {
	firstLine, _, _ := strings.Cut(out, "\n")
	fields := strings.Fields(firstLine)
	if len(fields) < 2 {
		return nil
	}
	version := strings.TrimPrefix(fields[1], "v")
	return &version
}

// Install downloads the release archive for the configured platform and
// extracts rclone into InstallDir, replacing any previous executable.
func (p *Provisioner) Install(ctx context.Context, sink ProgressSink) (string, error) {
	cfg := p.config()
	dir := cfg.InstallDir
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", models.NewError(models.KindFilesystem, "failed to create rclone directory", err)
	}

	url := cfg.downloadURL()
	archivePath := filepath.Join(dir, cfg.Platform.ArchiveName())

	slog.Info("downloading rclone", "url", url, "archive", archivePath)

	created, err := p.download(ctx, url, archivePath, sink)
	if created {
		defer func() {
			if err := os.Remove(archivePath); err != nil && !errors.Is(err, os.ErrNotExist) {
				slog.Debug("failed to remove rclone archive", "path", archivePath, "error", err)
			}
		}()
	}
	if err != nil {
		return "", err
	}

	exe := cfg.executablePath()
	if err := extractExecutable(archivePath, cfg.Platform.ExecutableName(), exe); err != nil {
		return "", err
	}

	slog.Info("rclone installed", "path", exe)
	return InstalledMessage, nil
}

// Update reinstalls rclone; it is the same operation as Install.
func (p *Provisioner) Update(ctx context.Context, sink ProgressSink) (string, error) {
	return p.Install(ctx, sink)
}

// download streams url into dest, notifying sink after every chunk. created
// reports whether dest was created and needs cleaning up.
func (p *Provisioner) download(ctx context.Context, url, dest string, sink ProgressSink) (created bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, models.NewError(models.KindDownloadFailed, "failed to download rclone", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return false, models.NewError(models.KindDownloadFailed, "failed to download rclone", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, models.Errorf(models.KindDownloadFailed, "failed to download rclone: HTTP %s", resp.Status)
	}

	var total uint64
	if resp.ContentLength > 0 {
		total = uint64(resp.ContentLength)
	}

	file, err := os.Create(dest)
	if err != nil {
		return false, models.NewError(models.KindFilesystem, "failed to create archive file", err)
	}

	var downloaded uint64
	buf := make([]byte, downloadChunkSize)
	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			if _, err := file.Write(buf[:n]); err != nil {
				file.Close()
				return true, models.NewError(models.KindFilesystem, "failed to write archive", err)
			}
			downloaded += uint64(n)
			notify(sink, newProgress(downloaded, total))
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			file.Close()
			return true, models.NewError(models.KindDownloadFailed, "failed to read download", readErr)
		}
	}

	if err := file.Sync(); err != nil {
		file.Close()
		return true, models.NewError(models.KindFilesystem, "failed to flush file", err)
	}
	if err := file.Close(); err != nil {
		return true, models.NewError(models.KindFilesystem, "failed to flush file", err)
	}

	slog.Debug("rclone archive downloaded", "bytes", downloaded, "total", total)
	return true, nil
}
