package model

import (
	"fmt"
	"strings"
)

// Mode selects audio-only or muxed video downloads
type Mode string

const (
	ModeAudio Mode = "audio"
	ModeVideo Mode = "video"
)

// Legacy values written by older settings files
const (
	legacyModeAudio = "mp3"
	legacyModeVideo = "mp4"
)

// String returns the string representation of Mode
func (m Mode) String() string {
	return string(m)
}

// IsAudio reports whether m requests an audio-only download
func (m Mode) IsAudio() bool {
	return m == ModeAudio
}

// ParseMode converts user or persisted input into a Mode
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(ModeAudio), legacyModeAudio:
		return ModeAudio, nil
	case string(ModeVideo), legacyModeVideo:
		return ModeVideo, nil
	default:
		return "", fmt.Errorf("unknown download mode: %q", s)
	}
}
