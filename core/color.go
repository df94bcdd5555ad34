package core

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB stores explicit 8-bit color channels, decoupled from any renderer
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// Clamp maps an arbitrary integer onto a valid 0..255 channel
func Clamp(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// roundChannel converts a float channel to uint8, half away from zero
func roundChannel(v float64) uint8 {
	return Clamp(int(math.Round(v)))
}

// Blend mixes src into c: result = src*weight + c*(1-weight)
func (c RGB) Blend(src RGB, weight float64) RGB {
	if weight <= 0 {
		return c
	}
	if weight >= 1 {
		return src
	}
	inv := 1.0 - weight
	return RGB{
		R: roundChannel(float64(src.R)*weight + float64(c.R)*inv),
		G: roundChannel(float64(src.G)*weight + float64(c.G)*inv),
		B: roundChannel(float64(src.B)*weight + float64(c.B)*inv),
	}
}

// Hex returns the lowercase #rrggbb form
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// HSV converts to hue in [0,360) and saturation/value in [0,1]
func (c RGB) HSV() (h, s, v float64) {
	col := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
	return col.Hsv()
}

// FromHSV builds an RGB from hue/saturation/value components
func FromHSV(h, s, v float64) RGB {
	col := colorful.Hsv(h, s, v)
	return RGB{
		R: roundChannel(col.R * 255.0),
		G: roundChannel(col.G * 255.0),
		B: roundChannel(col.B * 255.0),
	}
}

// Luminance returns perceived brightness on the 0..255 scale (Rec. 709 weights)
func (c RGB) Luminance() float64 {
	return 0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)
}
