package download

import (
	"path/filepath"

	"github.com/ytget/easytube/internal/model"
	"github.com/ytget/easytube/internal/probe"
)

// Format expressions and post-processing settings per mode
const (
	AudioFormat    = "bestaudio/best"
	VideoFormat    = "bestvideo+bestaudio/best"
	OutputTemplate = "%(title)s.%(ext)s"
	AudioCodec     = "mp3"
	AudioQuality   = "192"
	CookiesBrowser = probe.DefaultBrowser
)

// Request is the full description of one yt-dlp download invocation
type Request struct {
	URL            string
	Format         string
	Output         string
	ExtractAudio   bool
	AudioFormat    string
	AudioQuality   string
	CookiesBrowser string
	Headers        []string
}

// BuildRequest maps a mode and target folder to the download options
func BuildRequest(url string, mode model.Mode, folder string) Request {
	req := Request{
		URL:            url,
		Format:         VideoFormat,
		Output:         filepath.Join(folder, OutputTemplate),
		CookiesBrowser: CookiesBrowser,
		Headers:        append([]string(nil), probe.Headers...),
	}
	if mode.IsAudio() {
		req.Format = AudioFormat
		req.ExtractAudio = true
		req.AudioFormat = AudioCodec
		req.AudioQuality = AudioQuality
	}
	return req
}
