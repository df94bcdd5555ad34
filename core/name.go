package core

// HueBand maps the hue range (previous band, UpTo] to a base name.
// A hue exactly on UpTo belongs to this band, not the next.
type HueBand struct {
	UpTo float64
	Name string
}

// HeuristicConfig holds every threshold used by ApproxName
type HeuristicConfig struct {
	BlackValueMax float64   // below: achromatic black
	WhiteValueMin float64   // above (with low saturation): white
	WhiteSatMax   float64   // saturation ceiling for the white check
	GraySatMax    float64   // below: achromatic gray
	DarkValueMax  float64   // below: "dark" qualifier
	LightValueMin float64   // at or above: "light" qualifier
	MutedSatMax   float64   // at or below: "muted" qualifier
	VividSatMin   float64   // at or above: "vivid" qualifier
	Bands         []HueBand // ordered by UpTo, last entry covers 360
}

// DefaultHeuristicConfig returns the stock naming thresholds
func DefaultHeuristicConfig() HeuristicConfig {
	return HeuristicConfig{
		BlackValueMax: 0.12,
		WhiteValueMin: 0.92,
		WhiteSatMax:   0.15,
		GraySatMax:    0.12,
		DarkValueMax:  0.45,
		LightValueMin: 0.80,
		MutedSatMax:   0.40,
		VividSatMin:   0.90,
		Bands: []HueBand{
			{12, "red"},
			{35, "orange"},
			{55, "yellow"},
			{85, "lime"},
			{165, "green"},
			{200, "cyan"},
			{250, "blue"},
			{285, "indigo"},
			{320, "purple"},
			{350, "magenta"},
			{360, "pink"},
		},
	}
}

// ApproxName derives a human color name from HSV position alone.
// Achromatic checks run first, then a hue band lookup with an optional
// brightness or saturation qualifier.
func ApproxName(c RGB, cfg HeuristicConfig) string {
	h, s, v := c.HSV()

	if v < cfg.BlackValueMax {
		return "black"
	}
	if v > cfg.WhiteValueMin && s < cfg.WhiteSatMax {
		return "white"
	}
	if s < cfg.GraySatMax {
		return "gray"
	}

	name := ""
	for _, band := range cfg.Bands {
		if h <= band.UpTo {
			name = band.Name
			break
		}
	}
	if name == "" && len(cfg.Bands) > 0 {
		name = cfg.Bands[len(cfg.Bands)-1].Name
	}

	switch {
	case v < cfg.DarkValueMax:
		return "dark " + name
	case v >= cfg.LightValueMin:
		return "light " + name
	case s <= cfg.MutedSatMax:
		return "muted " + name
	case s >= cfg.VividSatMin:
		return "vivid " + name
	}
	return name
}
