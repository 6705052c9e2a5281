// pkg/render/color.go
package render

import (
	"image/color"

	"go-minion-arena/internal/config"
)

// SceneColors holds the colors shared by both frontends.
type SceneColors struct {
	Background color.RGBA
	Ground     color.RGBA
	Grid       color.RGBA
	TargetLine color.RGBA
	Moving     color.RGBA
	Text       color.RGBA
	Fallback   color.RGBA
}

// DefaultColors returns the palette both frontends use.
func DefaultColors() SceneColors {
	return SceneColors{
		Background: config.BackgroundColor,
		Ground:     config.GroundColor,
		Grid:       config.GridColor,
		TargetLine: config.TargetLineColor,
		Moving:     config.MovingColor,
		Text:       config.TextLightColor,
		Fallback:   config.FallbackColor,
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha returns c with its alpha replaced. Color channels are not premultiplied.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}

// MinionColor picks the draw color of a minion: previews fade, moving minions are tinted.
func MinionColor(base color.RGBA, colors SceneColors, preview, moving bool, previewAlpha uint8) color.RGBA {
	if base == (color.RGBA{}) {
		base = colors.Fallback
	}
	switch {
	case preview:
		return WithAlpha(base, previewAlpha)
	case moving:
		return color.RGBA{
			R: uint8((uint16(base.R) + uint16(colors.Moving.R)) / 2),
			G: uint8((uint16(base.G) + uint16(colors.Moving.G)) / 2),
			B: uint8((uint16(base.B) + uint16(colors.Moving.B)) / 2),
			A: base.A,
		}
	default:
		return base
	}
}
