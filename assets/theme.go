package assets

import "github.com/gdamore/tcell/v2"

// Terrain glyphs for the tunnel board.
const (
	GlyphSoil    = "🟫"
	GlyphWater   = "🟦"
	GlyphFoodHUD = "🍞"
)

// Board colors.
var (
	ColorDefender = tcell.ColorYellow
	ColorAttacker = tcell.ColorRed
	ColorWater    = tcell.ColorBlue
	ColorHUD      = tcell.ColorWhite
	ColorDim      = tcell.ColorGray
	ColorGood     = tcell.ColorGreen
	ColorBad      = tcell.ColorRed
)
