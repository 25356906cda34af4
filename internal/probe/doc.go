// Package probe extracts video metadata and the available format list through
// yt-dlp (github.com/lrstanley/go-ytdlp). Extraction walks a fixed chain of
// cookie strategies and stops at the first one that succeeds.
package probe
