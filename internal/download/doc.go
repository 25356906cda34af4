// Package download runs one download through yt-dlp
// (github.com/lrstanley/go-ytdlp). It builds the request for the chosen mode,
// forwards progress to a sink, tracks the task state and records the outcome
// in the history store when one is configured.
package download
