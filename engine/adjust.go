package engine

import (
	"math"
	"strings"

	"github.com/dcazrael/color-sentence/core"
)

// applyPunctuation shifts saturation and value by the capped counts of
// exclamation and question marks in the raw text. Exclamations add
// intensity, questions wash it out.
func applyPunctuation(c core.RGB, text string, cfg PunctuationConfig) core.RGB {
	if !cfg.Enabled {
		return c
	}

	excl := min(strings.Count(text, "!"), cfg.MaxCount)
	quest := min(strings.Count(text, "?"), cfg.MaxCount)
	if excl == 0 && quest == 0 {
		return c
	}

	h, s, v := c.HSV()
	s += float64(excl)*cfg.SatPerExcl - float64(quest)*cfg.SatPerQuest
	v += float64(excl) * cfg.ValPerExcl
	return core.FromHSV(h, clamp01(s), clamp01(v))
}

// applyLengthFloor brightens short sentences and darkens long ones.
// Both regions are inclusive; lengths in between pass through unchanged.
func applyLengthFloor(c core.RGB, visible int, cfg FloorConfig) core.RGB {
	if !cfg.Enabled {
		return c
	}
	if visible > cfg.ShortMax && visible < cfg.LongMin {
		return c
	}

	h, s, v := c.HSV()
	if visible <= cfg.ShortMax {
		v = math.Min(1.0, v+cfg.ShortBonus)
	} else {
		v = math.Max(v-cfg.LongPenalty, cfg.MinValue)
	}
	return core.FromHSV(h, s, v)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
