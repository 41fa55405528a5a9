package provision

import (
	"log/slog"

	"rcloneexplorer/internal/models"
)

// ProgressSink receives download progress. Delivery is best effort: a sink
// must not block, and anything it does wrong is ignored.
type ProgressSink interface {
	Notify(progress models.DownloadProgress)
}

// SinkFunc adapts a function to ProgressSink.
type SinkFunc func(models.DownloadProgress)

func (f SinkFunc) Notify(progress models.DownloadProgress) {
	f(progress)
}

// ChannelSink forwards progress to a channel, dropping events the reader is
// not ready for.
type ChannelSink chan<- models.DownloadProgress

func (c ChannelSink) Notify(progress models.DownloadProgress) {
	select {
	case c <- progress:
	default:
	}
}

// LogSink writes progress to the default logger at debug level.
type LogSink struct{}

func (LogSink) Notify(progress models.DownloadProgress) {
	slog.Debug("rclone download progress",
		"event", models.DownloadProgressEvent,
		"downloaded", progress.Downloaded,
		"total", progress.Total,
		"percentage", progress.Percentage)
}

// Discard drops every event.
var Discard ProgressSink = SinkFunc(func(models.DownloadProgress) {})

func notify(sink ProgressSink, progress models.DownloadProgress) {
	if sink == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			slog.Debug("progress sink failed", "panic", r)
		}
	}()
	sink.Notify(progress)
}

func newProgress(downloaded, total uint64) models.DownloadProgress {
	var percentage float32
	if total > 0 {
		percentage = float32(downloaded) / float32(total) * 100
	}
	return models.DownloadProgress{
		Downloaded: downloaded,
		Total:      total,
		Percentage: percentage,
	}
}
