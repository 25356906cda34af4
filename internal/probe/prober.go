package probe

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/ytget/easytube/internal/model"
)

// ErrSkipped is returned by a strategy that does not apply in the current
// environment, e.g. a cookie file that does not exist
var ErrSkipped = errors.New("strategy skipped")

// Strategy is one way of asking yt-dlp for a video's metadata
type Strategy interface {
	Name() string
	Attempt(ctx context.Context, url string) (*model.Metadata, error)
}

// AuthRequiredError is returned when every strategy failed. It wraps the
// error of the last strategy that actually ran.
type AuthRequiredError struct {
	Attempts []string
	Err      error
}

func (e *AuthRequiredError) Error() string {
	var b strings.Builder
	b.WriteString("could not read video information; YouTube probably requires authentication.\n")
	b.WriteString("Suggestions:\n")
	b.WriteString(" - Export your YouTube cookies from Firefox to " + CookieFileName + " next to the application and try again.\n")
	b.WriteString(" - Or log in to YouTube in Firefox so yt-dlp can read its cookies (--cookies-from-browser firefox).")
	if e.Err != nil {
		b.WriteString("\nLast error: ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *AuthRequiredError) Unwrap() error {
	return e.Err
}

// Prober runs the strategy chain
type Prober struct {
	strategies []Strategy
}

// NewProber creates a prober with the given strategies, or the default chain
// when none are given
func NewProber(strategies ...Strategy) *Prober {
	if len(strategies) == 0 {
		strategies = DefaultStrategies()
	}
	return &Prober{strategies: strategies}
}

// Strategies returns the chain in the order it is tried
func (p *Prober) Strategies() []Strategy {
	return p.strategies
}

// Probe returns the metadata from the first strategy that succeeds
func (p *Prober) Probe(ctx context.Context, url string) (*model.Metadata, error) {
	var (
		lastErr  error
		attempts []string
	)

	for _, strategy := range p.strategies {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		meta, err := strategy.Attempt(ctx, url)
		if errors.Is(err, ErrSkipped) {
			log.Printf("Probe strategy %s skipped: %v", strategy.Name(), err)
			continue
		}
		attempts = append(attempts, strategy.Name())
		if err != nil {
			log.Printf("Probe strategy %s failed: %v", strategy.Name(), err)
			lastErr = err
			continue
		}
		if meta == nil {
			lastErr = fmt.Errorf("%s: empty metadata", strategy.Name())
			continue
		}
		return meta, nil
	}

	return nil, &AuthRequiredError{Attempts: attempts, Err: lastErr}
}

// Formats probes url and returns its normalized format list
func (p *Prober) Formats(ctx context.Context, url string) ([]model.Format, error) {
	meta, err := p.Probe(ctx, url)
	if err != nil {
		return nil, err
	}
	return meta.Formats(), nil
}
