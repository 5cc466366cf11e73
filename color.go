package vib3

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

// Color is an opaque 24-bit colour in 0xRRGGBB form.
type Color uint32

const (
	// DefaultFogColor is the colour used by EnableFog and EnableFogExp2
	// when no colour is given.
	DefaultFogColor Color = 0xf2f8f7

	// SplitViewBackground is the background drawn behind the secondary
	// view while split view is enabled.
	SplitViewBackground Color = 0x000040
)

// R returns the red component.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green component.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue component.
func (c Color) B() uint8 { return uint8(c) }

// RGBA converts the colour to a gg colour with full opacity.
func (c Color) RGBA() gg.RGBA {
	return gg.RGB(float64(c.R())/255, float64(c.G())/255, float64(c.B())/255)
}

// NRGBA converts the colour to the standard library representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: 0xff}
}

// String returns the colour as "#rrggbb".
func (c Color) String() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xffffff)
}

// ParseColor parses "#rgb", "#rrggbb", "0xrrggbb" or "rrggbb".
func ParseColor(s string) (Color, error) {
	h := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(h, "#"):
		h = h[1:]
	case strings.HasPrefix(h, "0x"), strings.HasPrefix(h, "0X"):
		h = h[2:]
	}
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return Color(v), nil
}

// ColorFrom converts any colour to a Color, dropping alpha.
func ColorFrom(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color(uint32(n.R)<<16 | uint32(n.G)<<8 | uint32(n.B))
}
