package core

import "image/color"

// Color represents a foreground color for a screen cell or a shape.
// Terminal frontends map it to ANSI 256-color codes, pixel frontends
// use RGBA.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBlack
)

var colorNames = map[Color]string{
	ColorDefault:       "default",
	ColorRed:           "red",
	ColorGreen:         "green",
	ColorYellow:        "yellow",
	ColorBlue:          "blue",
	ColorMagenta:       "magenta",
	ColorCyan:          "cyan",
	ColorWhite:         "white",
	ColorBrightRed:     "bright_red",
	ColorBrightGreen:   "bright_green",
	ColorBrightYellow:  "bright_yellow",
	ColorBrightBlue:    "bright_blue",
	ColorBrightMagenta: "bright_magenta",
	ColorBrightCyan:    "bright_cyan",
	ColorBrightWhite:   "bright_white",
	ColorOrange:        "orange",
	ColorGray:          "gray",
	ColorBlack:         "black",
}

var colorRGBA = map[Color]color.RGBA{
	ColorDefault:       {255, 255, 255, 255},
	ColorRed:           {255, 0, 0, 255},
	ColorGreen:         {0, 255, 0, 255},
	ColorYellow:        {255, 255, 0, 255},
	ColorBlue:          {0, 0, 255, 255},
	ColorMagenta:       {255, 0, 255, 255},
	ColorCyan:          {0, 255, 255, 255},
	ColorWhite:         {255, 255, 255, 255},
	ColorBrightRed:     {255, 85, 85, 255},
	ColorBrightGreen:   {85, 255, 85, 255},
	ColorBrightYellow:  {255, 255, 85, 255},
	ColorBrightBlue:    {85, 85, 255, 255},
	ColorBrightMagenta: {255, 85, 255, 255},
	ColorBrightCyan:    {85, 255, 255, 255},
	ColorBrightWhite:   {255, 255, 255, 255},
	ColorOrange:        {255, 135, 0, 255},
	ColorGray:          {138, 138, 138, 255},
	ColorBlack:         {0, 0, 0, 255},
}

// String returns the configuration name of the color.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "unknown"
}

// RGBA returns the color as an opaque RGBA value.
func (c Color) RGBA() color.RGBA {
	if rgba, ok := colorRGBA[c]; ok {
		return rgba
	}
	return colorRGBA[ColorDefault]
}

// ParseColor looks up a color by its configuration name.
func ParseColor(name string) (Color, bool) {
	for c, n := range colorNames {
		if n == name {
			return c, true
		}
	}
	return ColorDefault, false
}
