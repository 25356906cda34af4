package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Codec and resolution markers used by yt-dlp
const (
	CodecNone           = "none"
	ResolutionAudioOnly = "audio only"
)

// RawFormat is one entry of the "formats" list exactly as the wrapped library emitted it
type RawFormat map[string]any

// Metadata is the single-video info record returned by a probe
type Metadata struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Uploader   string      `json:"uploader"`
	Duration   float64     `json:"duration"`
	WebpageURL string      `json:"webpage_url"`
	Extractor  string      `json:"extractor"`
	RawFormats []RawFormat `json:"formats"`
}

// Format describes one selectable stream/container variant
type Format struct {
	ID             string
	Ext            string
	Resolution     string  // "WIDTHxHEIGHT" or "audio only"
	FPS            float64 // 0 if unknown
	ACodec         string
	VCodec         string
	FileSize       int64 // bytes, 0 if unknown
	FileSizeApprox bool  // FileSize came from filesize_approx
	TBR            float64
	ABR            float64
	Note           string
}

// DecodeMetadata parses the JSON document printed by --dump-single-json
func DecodeMetadata(data []byte) (*Metadata, error) {
	var md Metadata
	if err := json.Unmarshal(data, &md); err != nil {
		return nil, fmt.Errorf("failed to decode video metadata: %w", err)
	}
	return &md, nil
}

// Formats normalizes the raw format list, preserving its order
func (m *Metadata) Formats() []Format {
	if m == nil {
		return nil
	}
	out := make([]Format, 0, len(m.RawFormats))
	for _, raw := range m.RawFormats {
		out = append(out, raw.Format())
	}
	return out
}

// Format converts a raw entry into a Format descriptor
func (r RawFormat) Format() Format {
	f := Format{
		ID:     r.str("format_id"),
		Ext:    r.str("ext"),
		ACodec: r.str("acodec"),
		VCodec: r.str("vcodec"),
		Note:   r.str("format_note"),
	}
	f.FPS, _ = r.num("fps")
	f.TBR, _ = r.num("tbr")
	f.ABR, _ = r.num("abr")

	f.Resolution = r.str("resolution")
	if f.Resolution == "" {
		if w, ok := r.num("width"); ok && w > 0 {
			h, _ := r.num("height")
			f.Resolution = fmt.Sprintf("%dx%d", int(w), int(h))
		} else {
			f.Resolution = ResolutionAudioOnly
		}
	}

	if size, ok := r.num("filesize"); ok && size > 0 {
		f.FileSize = int64(size)
	} else if size, ok := r.num("filesize_approx"); ok && size > 0 {
		f.FileSize = int64(size)
		f.FileSizeApprox = true
	}
	return f
}

func (r RawFormat) str(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func (r RawFormat) num(key string) (float64, bool) {
	switch v := r[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		n, err := v.Float64()
		return n, err == nil
	default:
		return 0, false
	}
}

// IsAudioOnly reports whether the format carries audio and no video
func (f Format) IsAudioOnly() bool {
	return f.VCodec == CodecNone && f.ACodec != CodecNone
}

// HasVideo reports whether the format carries a video stream
func (f Format) HasVideo() bool {
	return f.VCodec != CodecNone
}

// Height returns the vertical resolution, or 0 for audio-only or unparsable values
func (f Format) Height() int {
	_, h, ok := strings.Cut(f.Resolution, "x")
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(h)
	if err != nil {
		return 0
	}
	return n
}

// Codecs returns "vcodec/acodec" for video formats and the audio codec otherwise
func (f Format) Codecs() string {
	if f.HasVideo() {
		return orDash(f.VCodec) + "/" + orDash(f.ACodec)
	}
	return orDash(f.ACodec)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
