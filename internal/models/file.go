package models

// ModTimeLayout is the layout of FileItem.Modified for local entries.
const ModTimeLayout = "2006-01-02 15:04:05"

// FileItem is one entry of a directory listing, whatever its origin: the
// local disk, the OS volume list or an rclone remote.
type FileItem struct {
	Name     string  `json:"name"`
	Path     string  `json:"path"`
	Size     int64   `json:"size"`
	Modified string  `json:"modified"`
	IsDir    bool    `json:"is_dir"`
	MimeType *string `json:"mime_type,omitempty"`
}

// CopyOptions are the per-request flags of a copy.
type CopyOptions struct {
	Overwrite    bool `json:"overwrite"`
	SkipExisting bool `json:"skip_existing"`
}

// TransferRequest describes a copy or move of several items into one
// destination directory.
type TransferRequest struct {
	FromRemote string      `json:"from_remote"`
	FromPaths  []string    `json:"from_paths"`
	ToRemote   string      `json:"to_remote"`
	ToPath     string      `json:"to_path"`
	Options    CopyOptions `json:"options"`
}

// DeleteRequest lists files to delete from one remote.
type DeleteRequest struct {
	Remote string   `json:"remote"`
	Paths  []string `json:"paths"`
}
