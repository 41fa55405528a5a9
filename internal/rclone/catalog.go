package rclone

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"rcloneexplorer/internal/models"
	"rcloneexplorer/internal/sanitizer"
)

var providerNames = map[string]string{
	"drive":    "Google Drive",
	"onedrive": "OneDrive",
	"dropbox":  "Dropbox",
	"s3":       "Amazon S3",
}

// ProviderName maps an rclone backend type to a display label. Unknown
// types are returned unchanged.
func ProviderName(backendType string) string {
	if name, ok := providerNames[backendType]; ok {
		return name
	}
	return backendType
}

// Catalog enumerates the remotes configured in rclone.
type Catalog struct {
	runner Runner
}

func NewCatalog(runner Runner) *Catalog {
	return &Catalog{runner: runner}
}

// ListRemotes returns every configured remote in `listremotes` order. The
// config is dumped once per remote; a failed or unparsable dump only makes
// the provider "Unknown".
func (c *Catalog) ListRemotes(ctx context.Context) ([]models.Remote, error) {
	output, err := c.runner.Run(ctx, "listremotes")
	if err != nil {
		return nil, err
	}

	remotes := make([]models.Remote, 0)
	for _, line := range strings.Split(output, "\n") {
		name := sanitizer.RemoteNameFromListing(line)
		if name == "" {
			continue
		}

		remotes = append(remotes, models.Remote{
			Name:     name,
			Provider: c.providerFor(ctx, name),
			Status:   models.RemoteStatusConnected,
		})
	}

	slog.Debug("listed remotes", "count", len(remotes))
	return remotes, nil
}

func (c *Catalog) providerFor(ctx context.Context, name string) string {
	dump, err := c.runner.Run(ctx, "config", "dump")
	if err != nil {
		slog.Warn("rclone config dump failed", "remote", name, "error", err)
		return models.ProviderUnknown
	}

	backendType, err := backendType(dump, name)
	if err != nil {
		slog.Warn("cannot determine remote type", "remote", name, "error", err)
		return models.ProviderUnknown
	}
	return ProviderName(backendType)
}

// backendType extracts config[name].type from a `config dump` document.
func backendType(dump, name string) (string, error) {
	var config map[string]map[string]any
	if err := json.Unmarshal([]byte(dump), &config); err != nil {
		return "", fmt.Errorf("failed to parse config dump: %w", err)
	}

	section, ok := config[name]
	if !ok {
		return "", fmt.Errorf("remote %q not in config dump", name)
	}

	t, ok := section["type"].(string)
	if !ok {
		return "", fmt.Errorf("remote %q has no type", name)
	}
	return t, nil
}
