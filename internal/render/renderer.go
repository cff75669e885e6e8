package render

import (
	"strconv"

	"antsiege/assets"
	"antsiege/internal/component"
	"antsiege/internal/ecs"
	"antsiege/internal/tunnel"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Board layout in terminal columns. The board is small and fixed, so
// there is no camera: the queen column sits at the left edge, one row per
// tunnel, and the spawner column at the right edge.
const (
	boardTop = 1 // row 0 holds the column header
	queenX   = 0
	cellsX   = 4 // first tunnel cell column
	cellW    = 4 // glyph (2) + attacker count (1) + gap (1)
)

// kindGlyphs maps unit kinds to their board glyphs.
var kindGlyphs = map[component.SpeciesKind]string{
	component.KindGrower:  assets.GlyphGrower,
	component.KindThrower: assets.GlyphThrower,
	component.KindEater:   assets.GlyphEater,
	component.KindScuba:   assets.GlyphScuba,
	component.KindGuard:   assets.GlyphGuard,
	component.KindBee:     assets.GlyphBee,
}

// Renderer draws the tunnel board onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// DrawBoard renders the column header, the queen column, every tunnel
// chain, and the spawner column with its pending count.
func (r *Renderer) DrawBoard(w *ecs.World, g *tunnel.Grid, pending int) {
	r.screen.Clear()

	dim := tcell.StyleDefault.Foreground(assets.ColorDim)

	// Column header.
	for col := 0; col < r.boardCols(g); col++ {
		r.drawText(cellsX+col*cellW, 0, strconv.Itoa(col), dim)
	}

	queenRow := boardTop + (len(g.Chains)/2)*2
	for row, chain := range g.Chains {
		y := boardTop + row*2
		r.drawText(queenX+3, y, strconv.Itoa(row), dim)
		for col, locID := range chain {
			r.drawCell(cellsX+col*cellW, y, w, g.At(locID))
		}
		// Spawner column marker at the mouth end of each tunnel.
		r.drawText(cellsX+len(chain)*cellW, y, "◀", dim)
	}

	// The shared queen cell, with any attackers that reached it.
	queen := g.At(g.Queen)
	queenStyle := tcell.StyleDefault.Foreground(assets.ColorHUD)
	if len(queen.Attackers) > 0 {
		queenStyle = tcell.StyleDefault.Foreground(assets.ColorBad)
	}
	r.putGlyph(queenX, queenRow, assets.GlyphQueen, queenStyle)

	// Spawner glyph with pending count, right of the longest tunnel.
	sx := cellsX + r.boardCols(g)*cellW + 2
	r.putGlyph(sx, queenRow, assets.GlyphSpawner, tcell.StyleDefault)
	if pending > 0 {
		r.drawText(sx+3, queenRow, strconv.Itoa(pending), tcell.StyleDefault.Foreground(assets.ColorAttacker))
	}
}

// drawCell renders one tunnel cell: terrain, the outward-facing defender
// (guard precedence), and the attacker presence count.
func (r *Renderer) drawCell(x, y int, w *ecs.World, l *tunnel.Location) {
	style := tcell.StyleDefault
	if l.Water {
		style = style.Background(assets.ColorWater)
	}

	glyph := assets.GlyphSoil
	if l.Water {
		glyph = assets.GlyphWater
	}
	if def := l.Defender(); def != ecs.NilEntity {
		glyph = unitGlyph(w, def)
		style = style.Foreground(assets.ColorDefender)
	} else if len(l.Attackers) > 0 {
		glyph = assets.GlyphBee
		style = style.Foreground(assets.ColorAttacker)
	}
	r.putGlyph(x, y, glyph, style)

	// Attacker count, shown whenever it adds information over the glyph.
	n := len(l.Attackers)
	if n > 1 || (n == 1 && l.Defender() != ecs.NilEntity) {
		r.drawText(x+2, y, strconv.Itoa(n), tcell.StyleDefault.Foreground(assets.ColorAttacker))
	}
}

// DrawHUD renders the status bar, message log, and command prompt at the
// bottom of the screen.
func (r *Renderer) DrawHUD(turn, food int, boosts []string, pending int, messages []string, input string) {
	_, screenH := r.screen.Size()
	hudY := screenH - 6

	r.drawHLine(hudY, assets.ColorDim)

	status := "Turn " + strconv.Itoa(turn) + "  " + assets.GlyphFoodHUD + " " + strconv.Itoa(food) +
		"  incoming " + strconv.Itoa(pending)
	if len(boosts) > 0 {
		status += "  boosts:"
		for _, b := range boosts {
			status += " " + b
		}
	}
	r.drawText(0, hudY+1, status, tcell.StyleDefault.Foreground(assets.ColorHUD))

	// Message log (last 3 messages).
	start := len(messages) - 3
	if start < 0 {
		start = 0
	}
	for i, msg := range messages[start:] {
		r.drawText(0, hudY+2+i, msg, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}

	r.drawText(0, hudY+5, "> "+input, tcell.StyleDefault.Foreground(assets.ColorGood))

	r.screen.Show()
}

// boardCols returns the widest chain length.
func (r *Renderer) boardCols(g *tunnel.Grid) int {
	cols := 0
	for _, chain := range g.Chains {
		if len(chain) > cols {
			cols = len(chain)
		}
	}
	return cols
}

func unitGlyph(w *ecs.World, id ecs.EntityID) string {
	c := w.Get(id, component.CSpecies)
	if c == nil {
		return "?"
	}
	return kindGlyphs[c.(component.Species).Kind]
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen
// position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col++
	}
}

