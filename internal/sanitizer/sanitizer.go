package sanitizer

import (
	"fmt"
	"strings"
)

// RemoteSeparator separates a remote name from a path in rclone arguments.
const RemoteSeparator = ":"

// RemoteNameFromListing cleans one line of `rclone listremotes` output into
// a remote name. Blank lines yield "".
func RemoteNameFromListing(line string) string {
	return strings.TrimRight(strings.TrimSpace(line), RemoteSeparator)
}

// ValidateRemoteName rejects names that cannot be addressed as
// "<name>:<path>".
func ValidateRemoteName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("remote name is required")
	}
	if strings.Contains(name, RemoteSeparator) {
		return fmt.Errorf("remote name %q must not contain %q", name, RemoteSeparator)
	}
	return nil
}

// Target builds the rclone location "<remote>:<path>".
func Target(remote, path string) string {
	return remote + RemoteSeparator + path
}

// JoinLogical appends name to dir with exactly one slash between them.
func JoinLogical(dir, name string) string {
	if strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return dir + "/" + name
}
