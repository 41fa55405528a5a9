package models

// RcloneInfo describes the provisioned rclone executable. It is computed on
// every check and never cached.
type RcloneInfo struct {
	Version   *string `json:"version"`
	Path      string  `json:"path"`
	Installed bool    `json:"installed"`
}

// DownloadProgressEvent is the event name progress notifications are
// published under.
const DownloadProgressEvent = "rclone-download-progress"

// DownloadProgress reports how much of the rclone archive has been written.
// Total is 0 when the server did not announce a length.
type DownloadProgress struct {
	Downloaded uint64  `json:"downloaded"`
	Total      uint64  `json:"total"`
	Percentage float32 `json:"percentage"`
}
