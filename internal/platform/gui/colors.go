package gui

import (
	"image/color"

	"github.com/vovakirdan/tui-kokaton/internal/core"
)

var (
	backgroundColor = color.RGBA{R: 16, G: 20, B: 32, A: 255}
	overlayColor    = color.RGBA{A: 160}
)

// palette maps core.Color to RGBA, matching the xterm colors the terminal uses.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {R: 229, G: 229, B: 229, A: 255},
	core.ColorRed:           {R: 205, A: 255},
	core.ColorGreen:         {G: 205, A: 255},
	core.ColorYellow:        {R: 205, G: 205, A: 255},
	core.ColorBlue:          {R: 30, G: 90, B: 238, A: 255},
	core.ColorMagenta:       {R: 205, B: 205, A: 255},
	core.ColorCyan:          {G: 205, B: 205, A: 255},
	core.ColorWhite:         {R: 229, G: 229, B: 229, A: 255},
	core.ColorBrightRed:     {R: 255, A: 255},
	core.ColorBrightGreen:   {G: 255, A: 255},
	core.ColorBrightYellow:  {R: 255, G: 255, A: 255},
	core.ColorBrightBlue:    {R: 92, G: 92, B: 255, A: 255},
	core.ColorBrightMagenta: {R: 255, B: 255, A: 255},
	core.ColorBrightCyan:    {G: 255, B: 255, A: 255},
	core.ColorBrightWhite:   {R: 255, G: 255, B: 255, A: 255},
	core.ColorOrange:        {R: 255, G: 135, A: 255},
	core.ColorGray:          {R: 138, G: 138, B: 138, A: 255},
}

// rgba returns the RGBA value of c, falling back to the default color.
func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

// fade scales the alpha of c by num/den.
func fade(c color.RGBA, num, den int) color.RGBA {
	if den <= 0 {
		return c
	}
	num = core.Max(core.Min(num, den), 0)
	// Colors are premultiplied.
	scale := func(v uint8) uint8 { return uint8(int(v) * num / den) }
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: scale(c.A)}
}
