package engine

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/dcazrael/color-sentence/core"
	"github.com/dcazrael/color-sentence/logging"
	"github.com/dcazrael/color-sentence/naming"
	"github.com/dcazrael/color-sentence/normalize"
	"github.com/dcazrael/color-sentence/override"
	"github.com/dcazrael/color-sentence/speech"
)

// Engine runs the derivation pipeline. The resolver decides between
// service and heuristic naming, the narrator speaks results aloud.
type Engine struct {
	namer    *naming.Resolver
	narrator speech.Narrator
	log      *log.Logger
}

// New wires an engine. A nil namer falls back to pure heuristic naming,
// a nil narrator disables speech regardless of configuration.
func New(namer *naming.Resolver, narrator speech.Narrator) *Engine {
	if namer == nil {
		namer = naming.NewResolver(nil)
	}
	return &Engine{
		namer:    namer,
		narrator: narrator,
		log:      logging.New("engine"),
	}
}

// Compute derives the color and its name for one sentence. Stages run
// in fixed order: normalize, base color, color word pull, punctuation,
// length floor, naming. A sentence without letters maps to the neutral
// color directly, skipping every color stage but not the naming one.
// Speech is enqueued fire and forget after the result is complete.
func (e *Engine) Compute(ctx context.Context, text string, cfg Config) (core.Result, error) {
	if err := cfg.Validate(); err != nil {
		return core.Result{}, err
	}

	analysis, err := normalize.Analyze(text, cfg.Strict)
	if err != nil {
		return core.Result{}, fmt.Errorf("normalize: %w", err)
	}

	c := cfg.Neutral
	if analysis.Letters != "" {
		if cfg.Mode == ModeAnchor {
			c = anchorBase(analysis.Letters, cfg.Anchor)
		} else {
			c = freqBase(analysis.Letters, analysis.Visible, cfg.Frequency)
		}

		if pull, ok := override.Combine(override.Resolve(analysis.Letters, cfg.Overrides), cfg.Overrides.BlendCeiling); ok {
			e.log.Debug("color word pull", "target", pull.Color.Hex(), "weight", pull.Weight)
			c = c.Blend(pull.Color, pull.Weight)
		}

		c = applyPunctuation(c, text, cfg.Punct)
		c = applyLengthFloor(c, analysis.Visible, cfg.Floor)
	}

	name, source := e.namer.Name(ctx, c, cfg.Naming, cfg.Heuristic)
	res := core.Result{Color: c, Name: name, Source: source}
	e.log.Debug("computed", "color", res.Color.Hex(), "name", res.Name, "source", res.Source)

	if e.narrator != nil && cfg.Speech.Enabled {
		e.narrator.Enqueue(speech.Utterance(text, res, cfg.Utterance))
	}
	return res, nil
}
