package engine

import (
	"math"

	"github.com/dcazrael/color-sentence/core"
)

// freqBase counts letters per band and scales the counts onto channels.
// A letter can hit at most one band since validated bands never overlap.
func freqBase(letters string, visible int, cfg FrequencyConfig) core.RGB {
	rBand, gBand, bBand := cfg.bands()

	var rHits, gHits, bHits int
	for i := 0; i < len(letters); i++ {
		switch ch := letters[i]; {
		case rBand.contains(ch):
			rHits++
		case gBand.contains(ch):
			gHits++
		case bBand.contains(ch):
			bHits++
		}
	}

	denom := visible
	switch cfg.Denominator {
	case DenomLetters:
		denom = len(letters)
	case DenomMatched:
		denom = rHits + gHits + bHits
	}
	if denom < 1 {
		denom = 1
	}

	return core.RGB{
		R: scaleCount(rHits, denom),
		G: scaleCount(gHits, denom),
		B: scaleCount(bHits, denom),
	}
}

func scaleCount(hits, denom int) uint8 {
	return core.Clamp(int(math.Round(255 * float64(hits) / float64(denom))))
}

// anchorBase spreads the alphabet over the hue circle and picks the hue
// at the mean letter position, with fixed saturation and value
func anchorBase(letters string, cfg AnchorConfig) core.RGB {
	sum := 0
	for i := 0; i < len(letters); i++ {
		sum += int(letters[i] - 'a')
	}
	mean := float64(sum) / float64(len(letters))
	return core.FromHSV(mean*360.0/26.0, cfg.Saturation, cfg.Value)
}
