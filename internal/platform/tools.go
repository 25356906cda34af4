package platform

import "os/exec"

// External tools the wrapped downloader relies on
const (
	YTDLPCommand  = "yt-dlp"
	FFmpegCommand = "ffmpeg"
)

// LookPath is swapped in tests
var LookPath = exec.LookPath

// HasExecutable reports whether name resolves on PATH
func HasExecutable(name string) bool {
	if name == "" {
		return false
	}
	_, err := LookPath(name)
	return err == nil
}
