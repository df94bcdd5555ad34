// Package override detects color words inside a normalized letter sequence
// and folds them into a single weighted color pull.
package override

import (
	"fmt"
	"math"
	"strings"

	"github.com/dcazrael/color-sentence/core"
)

// StemRule binds the spellings of one color word to a target color.
// Stems are matched as substrings of the letter sequence.
type StemRule struct {
	Name   string   // canonical identity, one override at most per rule
	Stems  []string // accepted spellings, lowercase ASCII
	Color  core.RGB // target the override pulls toward
	Weight float64  // weight of a bare occurrence
}

// SuffixRule replaces the bare weight when a stem is directly followed
// by the suffix
type SuffixRule struct {
	Suffix string
	Weight float64
}

// Config holds the override vocabulary and the blend ceiling
type Config struct {
	Stems        []StemRule
	Suffixes     []SuffixRule
	BlendCeiling float64 // upper bound on the combined blend weight
}

// Override is one resolved color pull
type Override struct {
	Color  core.RGB
	Weight float64
}

// Resolve scans letters for every configured stem. Each occurrence gets the
// bare stem weight, or the suffix weight when a configured suffix follows
// immediately. Per rule only the strongest occurrence survives; results come
// back in rule order.
func Resolve(letters string, cfg Config) []Override {
	if letters == "" {
		return nil
	}

	var out []Override
	for _, rule := range cfg.Stems {
		best := -1.0
		for _, stem := range rule.Stems {
			if stem == "" {
				continue
			}
			from := 0
			for {
				i := strings.Index(letters[from:], stem)
				if i < 0 {
					break
				}
				at := from + i
				w := occurrenceWeight(letters[at+len(stem):], rule.Weight, cfg.Suffixes)
				if w > best {
					best = w
				}
				from = at + 1
			}
		}
		if best >= 0 {
			out = append(out, Override{Color: rule.Color, Weight: best})
		}
	}
	return out
}

// occurrenceWeight picks the suffix weight for the first suffix prefixing
// rest, falling back to the bare stem weight
func occurrenceWeight(rest string, base float64, suffixes []SuffixRule) float64 {
	for _, s := range suffixes {
		if s.Suffix != "" && strings.HasPrefix(rest, s.Suffix) {
			return s.Weight
		}
	}
	return base
}

// Combine merges resolved overrides into one pull: the color is the
// weight-weighted channel average, the weight is the capped weight sum.
// Returns false when there is nothing to combine.
func Combine(overrides []Override, ceiling float64) (Override, bool) {
	if len(overrides) == 0 {
		return Override{}, false
	}

	var total, r, g, b float64
	for _, o := range overrides {
		total += o.Weight
		r += o.Weight * float64(o.Color.R)
		g += o.Weight * float64(o.Color.G)
		b += o.Weight * float64(o.Color.B)
	}
	if total <= 0 {
		return Override{}, false
	}

	combined := Override{
		Color: core.RGB{
			R: core.Clamp(int(math.Round(r / total))),
			G: core.Clamp(int(math.Round(g / total))),
			B: core.Clamp(int(math.Round(b / total))),
		},
		Weight: math.Min(ceiling, math.Min(1.0, total)),
	}
	return combined, true
}

// Validate checks the vocabulary for values the resolver cannot work with
func (c Config) Validate() error {
	if c.BlendCeiling < 0 || c.BlendCeiling > 1 {
		return fmt.Errorf("blend ceiling %.2f outside [0,1]", c.BlendCeiling)
	}
	for _, rule := range c.Stems {
		if rule.Name == "" {
			return fmt.Errorf("stem rule without a name")
		}
		if len(rule.Stems) == 0 {
			return fmt.Errorf("stem rule %q has no spellings", rule.Name)
		}
		for _, stem := range rule.Stems {
			if !lowerASCII(stem) {
				return fmt.Errorf("stem %q of rule %q is not lowercase ASCII", stem, rule.Name)
			}
		}
		if rule.Weight < 0 || rule.Weight > 1 {
			return fmt.Errorf("weight %.2f of rule %q outside [0,1]", rule.Weight, rule.Name)
		}
	}
	minStem := 2.0
	for _, rule := range c.Stems {
		if rule.Weight < minStem {
			minStem = rule.Weight
		}
	}
	for _, s := range c.Suffixes {
		if !lowerASCII(s.Suffix) {
			return fmt.Errorf("suffix %q is not lowercase ASCII", s.Suffix)
		}
		if s.Weight < 0 || s.Weight > 1 {
			return fmt.Errorf("weight %.2f of suffix %q outside [0,1]", s.Weight, s.Suffix)
		}
		// Suffixed forms express weaker commitment than a bare stem.
		if len(c.Stems) > 0 && s.Weight >= minStem {
			return fmt.Errorf("suffix %q weight %.2f must stay below the weakest stem weight %.2f",
				s.Suffix, s.Weight, minStem)
		}
	}
	return nil
}

func lowerASCII(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
