// Package naming resolves colors to human names, preferring a curated
// external service and falling back to local HSV heuristics.
package naming

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dcazrael/color-sentence/core"
	"github.com/dcazrael/color-sentence/logging"
)

// Info is one answer from a naming service
type Info struct {
	Name       string
	MatchedHex string  // normalized hex of the service's nearest entry
	Distance   float64 // perceptual distance reported by the service
	Exact      bool    // zero distance or hex identity with the request
}

// Client answers naming lookups. Implementations must honor ctx.
type Client interface {
	Lookup(ctx context.Context, c core.RGB) (Info, error)
}

// Config bounds the external naming stage
type Config struct {
	BaseURL     string        `koanf:"base_url" validate:"required,url"`
	Timeout     time.Duration `koanf:"timeout" validate:"gt=0"`
	MaxDistance float64       `koanf:"max_distance" validate:"gte=0"`
}

// DefaultConfig returns the stock naming service settings
func DefaultConfig() Config {
	return Config{
		BaseURL:     "https://api.color.pizza/v1",
		Timeout:     3 * time.Second,
		MaxDistance: 20.0,
	}
}

// Resolver applies the two-stage policy: a service answer within the
// distance bound wins, anything else falls back to the local heuristic.
// Service failures never escape the resolver.
type Resolver struct {
	client Client // nil skips the service stage entirely
	log    *log.Logger
}

// NewResolver builds a resolver around an optional client
func NewResolver(client Client) *Resolver {
	return &Resolver{
		client: client,
		log:    logging.New("naming"),
	}
}

// Name resolves a color name with provenance under the given bounds.
// It never returns an error: the heuristic stage is total.
func (r *Resolver) Name(ctx context.Context, c core.RGB, cfg Config, heur core.HeuristicConfig) (string, core.NameSource) {
	if r.client != nil {
		lookupCtx := ctx
		if cfg.Timeout > 0 {
			var cancel context.CancelFunc
			lookupCtx, cancel = context.WithTimeout(ctx, cfg.Timeout)
			defer cancel()
		}

		info, err := r.client.Lookup(lookupCtx, c)
		switch {
		case err != nil:
			r.log.Debug("service lookup failed, using heuristic", "color", c.Hex(), "error", err)
		case info.Name == "":
			r.log.Debug("service returned empty name, using heuristic", "color", c.Hex())
		case info.Distance > cfg.MaxDistance:
			r.log.Debug("service match too far, using heuristic",
				"color", c.Hex(), "distance", info.Distance, "max", cfg.MaxDistance)
		default:
			return info.Name, core.NameFromService
		}
	}
	return core.ApproxName(c, heur), core.NameFromHeuristic
}
