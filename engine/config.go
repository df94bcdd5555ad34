// Package engine derives a color and a name from a sentence: normalized
// letters feed a base color, color words pull toward their targets,
// punctuation and sentence length modulate the result, and a two-stage
// naming pass labels it.
package engine

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/dcazrael/color-sentence/core"
	"github.com/dcazrael/color-sentence/naming"
	"github.com/dcazrael/color-sentence/override"
	"github.com/dcazrael/color-sentence/speech"
)

// Mode selects the base color strategy
type Mode string

const (
	ModeFrequency Mode = "freq"
	ModeAnchor    Mode = "anchor"
)

// Denominator selects the divisor of the frequency mode
type Denominator string

const (
	DenomVisible Denominator = "visible" // non-whitespace runes of the raw text
	DenomLetters Denominator = "letters" // extracted letter count
	DenomMatched Denominator = "matched" // band hits, at least 1
)

// FrequencyConfig holds the three letter bands and the divisor choice.
// Band bounds are single lowercase letters, both inclusive.
type FrequencyConfig struct {
	RLo         string      `koanf:"r_lo" validate:"required,len=1"`
	RHi         string      `koanf:"r_hi" validate:"required,len=1"`
	GLo         string      `koanf:"g_lo" validate:"required,len=1"`
	GHi         string      `koanf:"g_hi" validate:"required,len=1"`
	BLo         string      `koanf:"b_lo" validate:"required,len=1"`
	BHi         string      `koanf:"b_hi" validate:"required,len=1"`
	Denominator Denominator `koanf:"denominator" validate:"required,oneof=visible letters matched"`
}

// AnchorConfig fixes saturation and value of the positional mode
type AnchorConfig struct {
	Saturation float64 `koanf:"saturation" validate:"gte=0,lte=1"`
	Value      float64 `koanf:"value" validate:"gte=0,lte=1"`
}

// PunctuationConfig caps the emphasis adjustments
type PunctuationConfig struct {
	Enabled     bool    `koanf:"enabled"`
	MaxCount    int     `koanf:"max_count" validate:"gte=0"`
	SatPerExcl  float64 `koanf:"sat_per_excl" validate:"gte=0,lte=1"`
	ValPerExcl  float64 `koanf:"val_per_excl" validate:"gte=0,lte=1"`
	SatPerQuest float64 `koanf:"sat_per_quest" validate:"gte=0,lte=1"`
}

// FloorConfig is the step function on visible length. Short sentences
// up to ShortMax brighten, long ones from LongMin darken toward MinValue.
type FloorConfig struct {
	Enabled     bool    `koanf:"enabled"`
	ShortMax    int     `koanf:"short_max" validate:"gte=0"`
	LongMin     int     `koanf:"long_min" validate:"gt=0"`
	ShortBonus  float64 `koanf:"short_bonus" validate:"gte=0,lte=1"`
	LongPenalty float64 `koanf:"long_penalty" validate:"gte=0,lte=1"`
	MinValue    float64 `koanf:"min_value" validate:"gte=0,lte=1"`
}

// Config aggregates every tunable of one Compute call. Values are read,
// never written; callers may share one Config across calls.
type Config struct {
	Mode      Mode                 `koanf:"mode" validate:"required,oneof=freq anchor"`
	Strict    bool                 `koanf:"strict"`
	Neutral   core.RGB             `koanf:"neutral"`
	Frequency FrequencyConfig      `koanf:"frequency"`
	Anchor    AnchorConfig         `koanf:"anchor"`
	Punct     PunctuationConfig    `koanf:"punctuation"`
	Floor     FloorConfig          `koanf:"floor"`
	Overrides override.Config      `koanf:"-"`
	Heuristic core.HeuristicConfig `koanf:"-"`
	Naming    naming.Config        `koanf:"naming"`
	Speech    speech.Config        `koanf:"speech"`
	Utterance speech.Options       `koanf:"utterance"`
}

// DefaultConfig returns the stock pipeline settings
func DefaultConfig() Config {
	return Config{
		Mode:    ModeFrequency,
		Neutral: core.RGB{R: 128, G: 128, B: 128},
		Frequency: FrequencyConfig{
			RLo: "a", RHi: "i",
			GLo: "j", GHi: "r",
			BLo: "s", BHi: "z",
			Denominator: DenomVisible,
		},
		Anchor: AnchorConfig{
			Saturation: 0.70,
			Value:      0.85,
		},
		Punct: PunctuationConfig{
			Enabled:     true,
			MaxCount:    3,
			SatPerExcl:  0.08,
			ValPerExcl:  0.06,
			SatPerQuest: 0.10,
		},
		Floor: FloorConfig{
			Enabled:     true,
			ShortMax:    6,
			LongMin:     30,
			ShortBonus:  0.25,
			LongPenalty: 0.20,
			MinValue:    0.30,
		},
		Overrides: override.DefaultConfig(),
		Heuristic: core.DefaultHeuristicConfig(),
		Naming:    naming.DefaultConfig(),
		Speech:    speech.DefaultConfig(),
		Utterance: speech.DefaultOptions(),
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate rejects configurations the pipeline cannot run with. The
// engine never silently substitutes defaults for invalid values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := c.Frequency.validateBands(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := c.Overrides.Validate(); err != nil {
		return fmt.Errorf("config overrides: %w", err)
	}
	if err := validateHeuristic(c.Heuristic); err != nil {
		return fmt.Errorf("config heuristic: %w", err)
	}
	if c.Floor.ShortMax >= c.Floor.LongMin {
		return fmt.Errorf("config: floor short max %d must stay below long min %d",
			c.Floor.ShortMax, c.Floor.LongMin)
	}
	return nil
}

// band is one contiguous inclusive letter range
type band struct {
	lo, hi byte
}

func (b band) contains(ch byte) bool {
	return ch >= b.lo && ch <= b.hi
}

// bands converts the configured bounds; call only after validation
func (f FrequencyConfig) bands() (r, g, b band) {
	return band{f.RLo[0], f.RHi[0]},
		band{f.GLo[0], f.GHi[0]},
		band{f.BLo[0], f.BHi[0]}
}

func (f FrequencyConfig) validateBands() error {
	parse := func(name, lo, hi string) (band, error) {
		if len(lo) != 1 || lo[0] < 'a' || lo[0] > 'z' {
			return band{}, fmt.Errorf("%s band lower bound %q is not a lowercase letter", name, lo)
		}
		if len(hi) != 1 || hi[0] < 'a' || hi[0] > 'z' {
			return band{}, fmt.Errorf("%s band upper bound %q is not a lowercase letter", name, hi)
		}
		if lo[0] > hi[0] {
			return band{}, fmt.Errorf("%s band %q..%q is inverted", name, lo, hi)
		}
		return band{lo[0], hi[0]}, nil
	}

	r, err := parse("r", f.RLo, f.RHi)
	if err != nil {
		return err
	}
	g, err := parse("g", f.GLo, f.GHi)
	if err != nil {
		return err
	}
	b, err := parse("b", f.BLo, f.BHi)
	if err != nil {
		return err
	}

	pairs := [][2]band{{r, g}, {r, b}, {g, b}}
	names := [][2]string{{"r", "g"}, {"r", "b"}, {"g", "b"}}
	for i, p := range pairs {
		if p[0].lo <= p[1].hi && p[1].lo <= p[0].hi {
			return fmt.Errorf("%s and %s bands overlap", names[i][0], names[i][1])
		}
	}
	return nil
}

func validateHeuristic(h core.HeuristicConfig) error {
	for name, v := range map[string]float64{
		"black value max": h.BlackValueMax,
		"white value min": h.WhiteValueMin,
		"white sat max":   h.WhiteSatMax,
		"gray sat max":    h.GraySatMax,
		"dark value max":  h.DarkValueMax,
		"light value min": h.LightValueMin,
		"muted sat max":   h.MutedSatMax,
		"vivid sat min":   h.VividSatMin,
	} {
		if v < 0 || v > 2 {
			return fmt.Errorf("%s %.2f outside [0,2]", name, v)
		}
	}
	if len(h.Bands) == 0 {
		return fmt.Errorf("no hue bands")
	}
	prev := 0.0
	for i, b := range h.Bands {
		if b.Name == "" {
			return fmt.Errorf("hue band %d has no name", i)
		}
		if b.UpTo <= prev && i > 0 {
			return fmt.Errorf("hue band %q out of order at %.1f", b.Name, b.UpTo)
		}
		prev = b.UpTo
	}
	if last := h.Bands[len(h.Bands)-1].UpTo; last < 360 {
		return fmt.Errorf("hue bands end at %.1f, must cover 360", last)
	}
	return nil
}
