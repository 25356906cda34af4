package probe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/easytube/internal/model"
	"github.com/ytget/easytube/internal/platform"
)

const (
	// DefaultBrowser is the browser whose cookie store is read first
	DefaultBrowser = "firefox"
	// CookieFileName is the Netscape cookie file bundled next to the executable
	CookieFileName = "cookies.txt"
)

// Headers are sent with every yt-dlp request, as FIELD:VALUE pairs
var Headers = []string{
	"User-Agent:Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:109.0) Gecko/20100101 Firefox/119.0",
	"Accept:text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	"Accept-Language:es-ES,es;q=0.8,en-US;q=0.5,en;q=0.3",
}

// HeaderFlag repeats once per header. The command builder keeps only the last
// header it is given, so headers travel as extra arguments instead.
const HeaderFlag = "--add-headers"

// runCommand executes a prepared command with extra arguments; replaced in tests
var runCommand = func(ctx context.Context, cmd *ytdlp.Command, args ...string) (*ytdlp.Result, error) {
	return cmd.Run(ctx, args...)
}

// DefaultStrategies returns the standard chain: browser cookies, bundled
// cookie file, no cookies
func DefaultStrategies() []Strategy {
	return []Strategy{
		BrowserCookies{Browser: DefaultBrowser},
		CookieFile{Path: DefaultCookieFile()},
		NoCookies{},
	}
}

// DefaultCookieFile is the bundled cookie file location
func DefaultCookieFile() string {
	return filepath.Join(platform.ExecutableDir(), CookieFileName)
}

// HeaderArgs renders Headers as repeated --add-headers arguments
func HeaderArgs() []string {
	args := make([]string, 0, 2*len(Headers))
	for _, header := range Headers {
		args = append(args, HeaderFlag, header)
	}
	return args
}

// RunArgs is the argument list passed after the flags: every header, then url
func RunArgs(url string) []string {
	return append(HeaderArgs(), url)
}

// newProbeCommand builds the quiet metadata-only invocation shared by all strategies
func newProbeCommand() *ytdlp.Command {
	return ytdlp.New().
		DumpSingleJSON().
		SkipDownload().
		NoPlaylist().
		Quiet().
		NoWarnings()
}

// extract runs cmd and decodes its JSON output
func extract(ctx context.Context, cmd *ytdlp.Command, url string) (*model.Metadata, error) {
	result, err := runCommand(ctx, cmd, RunArgs(url)...)
	if err != nil {
		return nil, err
	}
	if result == nil || strings.TrimSpace(result.Stdout) == "" {
		return nil, fmt.Errorf("yt-dlp returned no metadata")
	}
	return model.DecodeMetadata([]byte(result.Stdout))
}

// BrowserCookies reads cookies from a local browser profile
type BrowserCookies struct {
	Browser string
}

func (s BrowserCookies) Name() string {
	return "cookies-from-browser:" + s.Browser
}

func (s BrowserCookies) Attempt(ctx context.Context, url string) (*model.Metadata, error) {
	if s.Browser == "" {
		return nil, fmt.Errorf("%w: no browser configured", ErrSkipped)
	}
	return extract(ctx, newProbeCommand().CookiesFromBrowser(s.Browser), url)
}

// CookieFile uses a Netscape-format cookie file
type CookieFile struct {
	Path string
}

func (s CookieFile) Name() string {
	return "cookiefile:" + s.Path
}

func (s CookieFile) Attempt(ctx context.Context, url string) (*model.Metadata, error) {
	info, err := os.Stat(s.Path)
	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("%w: cookie file %s not found", ErrSkipped, s.Path)
	}
	return extract(ctx, newProbeCommand().Cookies(s.Path), url)
}

// NoCookies asks anonymously
type NoCookies struct{}

func (NoCookies) Name() string {
	return "no-cookies"
}

func (NoCookies) Attempt(ctx context.Context, url string) (*model.Metadata, error) {
	return extract(ctx, newProbeCommand(), url)
}
