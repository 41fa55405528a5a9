package sanitizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoteNameFromListing(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "colon terminated",
			input:    "gdrive:",
			expected: "gdrive",
		},
		{
			name:     "surrounding whitespace",
			input:    "  s3-backup:  ",
			expected: "s3-backup",
		},
		{
			name:     "windows line ending",
			input:    "dropbox:\r",
			expected: "dropbox",
		},
		{
			name:     "blank line",
			input:    "   ",
			expected: "",
		},
		{
			name:     "no colon",
			input:    "local",
			expected: "local",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RemoteNameFromListing(tt.input))
		})
	}
}

func TestValidateRemoteName(t *testing.T) {
	assert.NoError(t, ValidateRemoteName("gdrive"))
	assert.NoError(t, ValidateRemoteName("This PC"))

	err := ValidateRemoteName("")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "required")

	err = ValidateRemoteName("gdrive:")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must not contain")
}

func TestTarget(t *testing.T) {
	assert.Equal(t, "gdrive:/docs", Target("gdrive", "/docs"))
	assert.Equal(t, "s3:", Target("s3", ""))
}

func TestJoinLogical(t *testing.T) {
	tests := []struct {
		name     string
		dir      string
		entry    string
		expected string
	}{
		{
			name:     "no trailing slash",
			dir:      "/docs",
			entry:    "report.pdf",
			expected: "/docs/report.pdf",
		},
		{
			name:     "trailing slash",
			dir:      "/docs/",
			entry:    "report.pdf",
			expected: "/docs/report.pdf",
		},
		{
			name:     "root",
			dir:      "/",
			entry:    "photos",
			expected: "/photos",
		},
		{
			name:     "empty dir",
			dir:      "",
			entry:    "a.txt",
			expected: "/a.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, JoinLogical(tt.dir, tt.entry))
		})
	}
}
