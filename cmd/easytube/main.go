// Command easytube is the headless companion of the EasyTube app: it probes
// formats, picks the best audio stream, downloads and lists the history.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"

	"github.com/ytget/easytube/internal/config"
	"github.com/ytget/easytube/internal/download"
	"github.com/ytget/easytube/internal/formats"
	"github.com/ytget/easytube/internal/history"
	"github.com/ytget/easytube/internal/model"
	"github.com/ytget/easytube/internal/platform"
	"github.com/ytget/easytube/internal/probe"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const usageText = "Usage: easytube [-mode audio|video] [-o folder] [-formats] [-best-audio] [-history N] URL"

var errUsage = errors.New(usageText)

type options struct {
	mode        string
	output      string
	listFormats bool
	bestAudio   bool
	history     int
	url         string
}

// parseFlagsFrom parses command line arguments, without the program name
func parseFlagsFrom(args []string) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("easytube", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&opts.mode, "mode", "", "Download mode: audio or video (default from settings)")
	fs.StringVar(&opts.output, "o", "", "Destination folder (default from settings)")
	fs.BoolVar(&opts.listFormats, "formats", false, "List the available formats and exit")
	fs.BoolVar(&opts.bestAudio, "best-audio", false, "Print the ID of the best audio-only format and exit")
	fs.IntVar(&opts.history, "history", 0, "Show the last N downloads and exit")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}
	if opts.history < 0 {
		return nil, fmt.Errorf("%w: -history must not be negative", errUsage)
	}
	if opts.mode != "" {
		if _, err := model.ParseMode(opts.mode); err != nil {
			return nil, fmt.Errorf("%w: %v", errUsage, err)
		}
	}

	if opts.history > 0 {
		return opts, nil
	}
	if fs.NArg() != 1 {
		return nil, errUsage
	}
	url, err := platform.ValidateURL(fs.Arg(0))
	if err != nil {
		return nil, err
	}
	opts.url = url
	return opts, nil
}

type formatLister interface {
	Formats(ctx context.Context, url string) ([]model.Format, error)
}

type historyLister interface {
	Recent(ctx context.Context, limit int) ([]history.Entry, error)
}

// cli runs one command against its collaborators; history may be nil
type cli struct {
	out        io.Writer
	store      *config.Store
	prober     formatLister
	downloader download.Downloader
	history    historyLister
}

func (c *cli) run(ctx context.Context, opts *options) error {
	switch {
	case opts.history > 0:
		return c.showHistory(ctx, opts.history)
	case opts.listFormats:
		return c.showFormats(ctx, opts.url)
	case opts.bestAudio:
		return c.showBestAudio(ctx, opts.url)
	default:
		return c.download(ctx, opts)
	}
}

func (c *cli) showHistory(ctx context.Context, limit int) error {
	if c.history == nil {
		return errors.New("history is not available")
	}
	entries, err := c.history.Recent(ctx, limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(c.out, "No downloads yet")
		return nil
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tSTATUS\tMODE\tTITLE\tFOLDER")
	for _, e := range entries {
		status := "ok"
		if !e.OK {
			status = "failed"
		}
		name := e.Title
		if name == "" {
			name = e.URL
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", humanize.Time(e.FinishedAt), status, e.Mode, name, e.Folder)
	}
	return w.Flush()
}

func (c *cli) showFormats(ctx context.Context, url string) error {
	list, err := c.prober.Formats(ctx, url)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tRESOLUTION\tCODECS\tSIZE\tQUALITY")
	for _, f := range list {
		rec := formats.Recommend(f)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			f.ID, formats.Kind(f), f.Resolution, f.Codecs(), formats.SizeLabel(f, "unknown"), rec)
	}
	return w.Flush()
}

func (c *cli) showBestAudio(ctx context.Context, url string) error {
	list, err := c.prober.Formats(ctx, url)
	if err != nil {
		return err
	}
	id, ok := formats.SelectBestAudio(list)
	if !ok {
		return errors.New("no audio-only format available")
	}
	fmt.Fprintln(c.out, id)
	return nil
}

func (c *cli) download(ctx context.Context, opts *options) error {
	settings := c.store.Load()

	mode := settings.DefaultFormat
	if opts.mode != "" {
		mode, _ = model.ParseMode(opts.mode)
	}
	folder := opts.output
	if folder == "" {
		folder = c.store.DownloadFolder(settings)
	}

	fmt.Fprintf(c.out, "Downloading %s (%s) to %s\n", opts.url, mode, folder)

	if platform.IsPlaylistURL(opts.url) {
		res := c.downloader.DownloadPlaylist(ctx, opts.url, mode, folder, &playlistBar{barSink: barSink{out: c.out}})
		if res.Playlist != nil {
			fmt.Fprintf(c.out, "%d of %d videos downloaded\n", res.Playlist.Count(model.TaskStatusFinished), len(res.Playlist.Videos))
		}
		if !res.OK {
			return errors.New(res.Error)
		}
		return nil
	}

	sink := &barSink{out: c.out}
	res := c.downloader.Download(ctx, opts.url, mode, folder, "", sink)
	sink.done()
	if !res.OK {
		return errors.New(res.Error)
	}
	if res.Task == nil {
		fmt.Fprintln(c.out, "Download complete")
		return nil
	}
	fmt.Fprintf(c.out, "Download complete: %s\n", res.Task.GetDisplayTitle())
	if res.Task.OutputPath != "" {
		fmt.Fprintf(c.out, "Saved to %s\n", res.Task.OutputPath)
	}
	return nil
}

// barSink renders progress events as a byte progress bar
type barSink struct {
	mu  sync.Mutex
	out io.Writer
	bar *progressbar.ProgressBar
}

func (s *barSink) OnProgress(ev model.ProgressEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.bar == nil {
		s.bar = progressbar.NewOptions64(-1,
			progressbar.OptionSetWriter(s.out),
			progressbar.OptionSetDescription("Downloading..."),
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetWidth(30),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(s.out)
			}),
		)
	}
	if ev.TotalBytes > 0 && s.bar.GetMax64() != ev.TotalBytes {
		s.bar.ChangeMax64(ev.TotalBytes)
	}
	if ev.DownloadedBytes > 0 {
		_ = s.bar.Set64(ev.DownloadedBytes)
	}
	if ev.Status == model.ProgressFinished {
		_ = s.bar.Finish()
	}
}

// done closes the current bar so the next one starts on a fresh line
func (s *barSink) done() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bar != nil && !s.bar.IsFinished() {
		_ = s.bar.Finish()
	}
	s.bar = nil
}

// playlistBar prints one bar per playlist item
type playlistBar struct {
	barSink
}

func (p *playlistBar) OnItem(item download.PlaylistItem) {
	if item.Result != nil {
		p.done()
		if !item.Result.OK {
			fmt.Fprintf(p.out, "[%d/%d] failed: %s\n", item.Index+1, item.Total, item.Result.Error)
		}
		return
	}
	title := item.Video.Title
	if title == "" {
		title = item.Video.URL
	}
	fmt.Fprintf(p.out, "[%d/%d] %s\n", item.Index+1, item.Total, title)
}

func main() {
	os.Exit(runMain(os.Args[1:]))
}

// runMain wires the services and returns the process exit code
func runMain(args []string) int {
	opts, err := parseFlagsFrom(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	ctx := context.Background()
	service := download.NewService(nil)
	c := &cli{
		out:        os.Stdout,
		store:      config.NewStore(),
		prober:     probe.NewProber(),
		downloader: service,
	}

	if path, err := history.DefaultPath(); err != nil {
		log.Printf("History disabled: %v", err)
	} else if store, err := history.Open(ctx, path); err != nil {
		log.Printf("History disabled: %v", err)
	} else {
		defer store.Close()
		service.SetRecorder(store)
		c.history = store
	}

	if err := c.run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "easytube %s: %s\n", version, strings.TrimSpace(err.Error()))
		return 1
	}
	return 0
}
