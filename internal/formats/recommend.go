package formats

import (
	"strings"

	"github.com/ytget/easytube/internal/model"
)

// Recommendation is the quality hint shown next to each format
type Recommendation string

const (
	RecommendAll    Recommendation = ""
	RecommendHigh   Recommendation = "high"
	RecommendMedium Recommendation = "medium"
	RecommendLow    Recommendation = "low"
)

// Size limits in MiB for the video recommendations
const (
	highMaxMB   = 150
	mediumMaxMB = 100
	highMinH    = 1080
	mediumMinH  = 720
	bytesPerMB  = 1024 * 1024
)

// Kind labels used for the type column
const (
	KindVideo = "Video"
	KindAudio = "Audio"
)

// Split separates formats with a video stream from the rest, keeping order
func Split(formats []model.Format) (video, audio []model.Format) {
	for _, f := range formats {
		if f.HasVideo() {
			video = append(video, f)
		} else {
			audio = append(audio, f)
		}
	}
	return video, audio
}

// Kind returns the type column label
func Kind(f model.Format) string {
	if f.HasVideo() {
		return KindVideo
	}
	return KindAudio
}

// Recommend rates a format. Video is rated on height and size (unknown size
// counts as zero); audio is rated on container and codec.
func Recommend(f model.Format) Recommendation {
	if !f.HasVideo() {
		if f.Ext == "m4a" || strings.Contains(f.ACodec, "opus") {
			return RecommendHigh
		}
		return RecommendMedium
	}

	h := f.Height()
	mb := float64(f.FileSize) / bytesPerMB
	switch {
	case h >= highMinH && mb <= highMaxMB:
		return RecommendHigh
	case h >= mediumMinH && mb <= mediumMaxMB:
		return RecommendMedium
	default:
		return RecommendLow
	}
}

// Filter keeps the formats with the given recommendation; RecommendAll keeps everything
func Filter(formats []model.Format, rec Recommendation) []model.Format {
	out := make([]model.Format, 0, len(formats))
	for _, f := range formats {
		if rec == RecommendAll || Recommend(f) == rec {
			out = append(out, f)
		}
	}
	return out
}

func (r Recommendation) rank() int {
	switch r {
	case RecommendHigh:
		return 3
	case RecommendMedium:
		return 2
	case RecommendLow:
		return 1
	}
	return 0
}
