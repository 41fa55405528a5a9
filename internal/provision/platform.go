package provision

import "runtime"

// Platform selects which rclone build to download.
type Platform struct {
	OS   string
	Arch string
}

// CurrentPlatform describes the running binary's platform.
func CurrentPlatform() Platform {
	return Platform{OS: runtime.GOOS, Arch: runtime.GOARCH}
}

// ExecutableName is the rclone file name on this platform.
func (p Platform) ExecutableName() string {
	if p.OS == "windows" {
		return "rclone.exe"
	}
	return "rclone"
}

// ArchiveName is the name of the "current" release zip on downloads.rclone.org.
func (p Platform) ArchiveName() string {
	return "rclone-current-" + p.releaseOS() + "-" + p.releaseArch() + ".zip"
}

func (p Platform) releaseOS() string {
	switch p.OS {
	case "windows":
		return "windows"
	case "darwin":
		return "osx"
	default:
		return "linux"
	}
}

func (p Platform) releaseArch() string {
	switch p.OS {
	case "windows":
		switch p.Arch {
		case "amd64", "arm64":
			return p.Arch
		default:
			return "386"
		}
	case "darwin":
		if p.Arch == "arm64" {
			return "arm64"
		}
		return "amd64"
	default:
		switch p.Arch {
		case "386", "arm", "arm64":
			return p.Arch
		default:
			return "amd64"
		}
	}
}
