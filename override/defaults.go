package override

import "github.com/dcazrael/color-sentence/core"

// DefaultConfig returns the German color vocabulary
func DefaultConfig() Config {
	return Config{
		BlendCeiling: 0.70,
		Suffixes: []SuffixRule{
			{"farben", 0.60},
			{"farbig", 0.60},
			{"stichig", 0.50},
			{"lich", 0.35},
		},
		Stems: []StemRule{
			{"rot", []string{"rot", "roet"}, core.RGB{R: 255, G: 0, B: 0}, 0.70},
			{"gruen", []string{"gruen"}, core.RGB{R: 0, G: 255, B: 0}, 0.70},
			{"blau", []string{"blau", "blaeu"}, core.RGB{R: 0, G: 0, B: 255}, 0.70},
			{"gelb", []string{"gelb"}, core.RGB{R: 255, G: 255, B: 0}, 0.70},
			{"orange", []string{"orange"}, core.RGB{R: 255, G: 165, B: 0}, 0.70},
			{"lila", []string{"lila"}, core.RGB{R: 180, G: 0, B: 255}, 0.70},
			{"violett", []string{"violett"}, core.RGB{R: 148, G: 0, B: 211}, 0.70},
			{"magenta", []string{"magenta"}, core.RGB{R: 255, G: 0, B: 255}, 0.70},
			{"pink", []string{"pink"}, core.RGB{R: 255, G: 105, B: 180}, 0.70},
			{"tuerkis", []string{"tuerkis"}, core.RGB{R: 64, G: 224, B: 208}, 0.70},
			{"cyan", []string{"cyan"}, core.RGB{R: 0, G: 255, B: 255}, 0.70},
			{"braun", []string{"braun", "braeun"}, core.RGB{R: 150, G: 75, B: 0}, 0.70},
			{"grau", []string{"grau"}, core.RGB{R: 128, G: 128, B: 128}, 0.70},
			{"weiss", []string{"weiss"}, core.RGB{R: 255, G: 255, B: 255}, 0.70},
			{"schwarz", []string{"schwarz"}, core.RGB{R: 0, G: 0, B: 0}, 0.70},
			{"gold", []string{"gold"}, core.RGB{R: 212, G: 175, B: 55}, 0.70},
			{"silber", []string{"silber", "silbern"}, core.RGB{R: 192, G: 192, B: 192}, 0.70},
			{"bronze", []string{"bronze", "bronzen"}, core.RGB{R: 205, G: 127, B: 50}, 0.70},
			{"kupfer", []string{"kupfer"}, core.RGB{R: 184, G: 115, B: 51}, 0.70},
			{"messing", []string{"messing"}, core.RGB{R: 181, G: 166, B: 66}, 0.70},
			{"beige", []string{"beige"}, core.RGB{R: 245, G: 245, B: 220}, 0.70},
			{"oliv", []string{"oliv"}, core.RGB{R: 128, G: 128, B: 0}, 0.70},
			{"mint", []string{"mint"}, core.RGB{R: 170, G: 255, B: 195}, 0.70},
			{"khaki", []string{"khaki"}, core.RGB{R: 195, G: 176, B: 145}, 0.70},
		},
	}
}
