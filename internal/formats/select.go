package formats

import "github.com/ytget/easytube/internal/model"

// AudioPreference is the container order tried by SelectBestAudio
var AudioPreference = []string{"mp3", "m4a", "aac", "ogg", "opus", "webm"}

// AudioOnly returns the formats that carry audio and no video, in input order
func AudioOnly(formats []model.Format) []model.Format {
	var out []model.Format
	for _, f := range formats {
		if f.IsAudioOnly() {
			out = append(out, f)
		}
	}
	return out
}

// SelectBestAudio picks the audio-only format to download. The first
// preferred extension that has candidates wins, taking its highest bitrate;
// without any preferred extension the highest bitrate overall wins. Ties keep
// the earlier entry. ok is false when there is no audio-only format at all.
func SelectBestAudio(formats []model.Format) (id string, ok bool) {
	audio := AudioOnly(formats)
	if len(audio) == 0 {
		return "", false
	}

	for _, ext := range AudioPreference {
		if best, found := highestBitrate(audio, func(f model.Format) bool { return f.Ext == ext }); found {
			return best.ID, true
		}
	}

	best, _ := highestBitrate(audio, func(model.Format) bool { return true })
	return best.ID, true
}

func highestBitrate(formats []model.Format, match func(model.Format) bool) (model.Format, bool) {
	var (
		best  model.Format
		found bool
	)
	for _, f := range formats {
		if !match(f) {
			continue
		}
		if !found || f.ABR > best.ABR {
			best = f
			found = true
		}
	}
	return best, found
}
