package core

// Color is the foreground colour of a screen cell.
// Values map to ANSI 256-colour codes in the platform renderer.
type Color uint8

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
)

// FruitPalette is the colour cycle used for fruit, indexed by value.
var FruitPalette = []Color{
	ColorBrightRed,
	ColorOrange,
	ColorBrightYellow,
	ColorBrightGreen,
	ColorBrightMagenta,
}

// FruitColor returns the palette colour for a fruit worth value.
func FruitColor(value int) Color {
	return FruitPalette[Abs(value)%len(FruitPalette)]
}
