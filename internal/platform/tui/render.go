package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-mosaic/internal/core"
	"github.com/vovakirdan/tui-mosaic/internal/engine"
	"github.com/vovakirdan/tui-mosaic/internal/puzzles"
)

// Board cell footprint in terminal characters. Two text rows per board
// row keeps tokens roughly square on common fonts.
const (
	cellW = 4
	cellH = 2
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorDarkGray:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// boardLayout centers the board in the screen and returns the pointer
// mapping the engine needs for click handling.
func boardLayout(screenW, screenH, gridW, gridH int) engine.Layout {
	originX := (screenW - gridW*cellW) / 2
	originY := (screenH - gridH*cellH) / 2
	if originX < 1 {
		originX = 1
	}
	if originY < 2 {
		originY = 2
	}
	return engine.Layout{OriginX: originX, OriginY: originY, CellW: cellW, CellH: cellH}
}

// renderPuzzle draws the full play screen: frame, hidden picture, token
// grid, reveal overlays, particles and the HUD.
func renderPuzzle(s *core.Screen, snap engine.Snapshot, pz *puzzles.Puzzle, l engine.Layout) {
	s.Clear()

	frame := core.Rect{
		X: l.OriginX - 1,
		Y: l.OriginY - 1,
		W: snap.Width*l.CellW + 2,
		H: snap.Height*l.CellH + 2,
	}
	s.DrawBox(frame, core.ColorGray)

	drawArt(s, snap, pz, l)
	drawTokens(s, snap, l)
	drawSelection(s, snap, l)
	drawParticles(s, snap, frame)
	drawHUD(s, snap, pz, frame)
}

// drawArt paints the hidden picture. During normal play only revealed
// cells show through; once the color fade starts the whole image is
// drawn, first desaturated, then in full color.
func drawArt(s *core.Screen, snap engine.Snapshot, pz *puzzles.Puzzle, l engine.Layout) {
	for row := 0; row < snap.Height; row++ {
		for col := 0; col < snap.Width; col++ {
			revealed := snap.IsRevealed(col, row)
			if !revealed && snap.ColorFade == 0 {
				drawCover(s, snap, col, row, l)
				continue
			}

			art := pz.At(col, row)
			color := art.Color
			if snap.ColorFade > 0 && snap.ColorFade < 0.5 {
				color = core.ColorGray
			}
			fillCell(s, col, row, l, art.Glyph, color)
		}
	}
}

// drawCover shades an undisclosed picture cell. The overlay thins as
// the reveal animation drains its opacity.
func drawCover(s *core.Screen, snap engine.Snapshot, col, row int, l engine.Layout) {
	if snap.OverlayFade <= 0 {
		return
	}
	glyph := '░'
	if snap.OverlayFade < 0.5 {
		glyph = '·'
	}
	fillCell(s, col, row, l, glyph, core.ColorDarkGray)
}

// fillCell floods one board cell's character area.
func fillCell(s *core.Screen, col, row int, l engine.Layout, glyph rune, color core.Color) {
	x, y := l.CellOrigin(col, row)
	for dy := 0; dy < l.CellH; dy++ {
		for dx := 0; dx < l.CellW; dx++ {
			s.SetColored(x+dx, y+dy, glyph, color)
		}
	}
}

// drawTokens paints every present token at its render position, shaded
// by scale and opacity so removal and refill read as animation.
func drawTokens(s *core.Screen, snap engine.Snapshot, l engine.Layout) {
	boardTop := l.OriginY
	for _, c := range snap.Cells {
		if !c.Present {
			continue
		}
		opacity := c.Opacity * snap.TokenFade
		if opacity <= 0 || c.Scale <= 0 {
			continue
		}

		glyph := tokenGlyph(c.Scale, opacity)
		color := core.TokenColor(c.Color)

		x := l.OriginX + c.Col*l.CellW
		y := l.OriginY + int(c.RenderY*float64(l.CellH))
		for dy := 0; dy < l.CellH-1; dy++ {
			if y+dy < boardTop {
				continue // Spawning tokens clip at the frame
			}
			for dx := 0; dx < l.CellW-1; dx++ {
				s.SetColored(x+dx, y+dy, glyph, color)
			}
		}
	}
}

// tokenGlyph picks a block shade for the combined scale and opacity.
func tokenGlyph(scale, opacity float64) rune {
	level := scale
	if opacity < level {
		level = opacity
	}
	switch {
	case level >= 0.75:
		return '█'
	case level >= 0.5:
		return '▓'
	case level >= 0.25:
		return '▒'
	default:
		return '░'
	}
}

// drawSelection brackets the currently selected cell.
func drawSelection(s *core.Screen, snap engine.Snapshot, l engine.Layout) {
	if !snap.HasSelection {
		return
	}
	x, y := l.CellOrigin(snap.SelCol, snap.SelRow)
	for dy := 0; dy < l.CellH-1; dy++ {
		s.SetColored(x-1, y+dy, '[', core.ColorBrightWhite)
		s.SetColored(x+l.CellW-1, y+dy, ']', core.ColorBrightWhite)
	}
}

// drawParticles maps the percent-coordinate particle field onto the
// board frame.
func drawParticles(s *core.Screen, snap engine.Snapshot, frame core.Rect) {
	glyphs := []rune{'✦', '·', '*'}
	for i, p := range snap.Particles {
		if p.X < 0 || p.X > 100 || p.Y < 0 || p.Y > 100 {
			continue
		}
		x := frame.X + int(p.X/100*float64(frame.W-1))
		y := frame.Y + int(p.Y/100*float64(frame.H-1))
		color := core.ColorBrightYellow
		if p.Opacity < 0.7 {
			color = core.ColorWhite
		}
		s.SetColored(x, y, glyphs[i%len(glyphs)], color)
	}
}

// drawHUD writes the title above the frame and counters below it.
func drawHUD(s *core.Screen, snap engine.Snapshot, pz *puzzles.Puzzle, frame core.Rect) {
	title := fmt.Sprintf(" %s · %s ", pz.ID, pz.Title)
	s.DrawTextColored(frame.X+(frame.W-len([]rune(title)))/2, frame.Y, title, core.ColorBrightWhite)

	status := fmt.Sprintf("points %d  swaps %d  revealed %d%%",
		snap.Points, snap.Attempts, int(snap.RevealFraction()*100))
	s.DrawTextColored(frame.X, frame.Bottom(), status, core.ColorGray)

	var hint string
	switch snap.Phase {
	case engine.PhaseComplete:
		hint = "solved! · r: replay · esc: calendar · q: quit"
	case engine.PhaseRevealing:
		hint = "revealing..."
	default:
		hint = "click two adjacent tiles to swap · esc: calendar · q: quit"
	}
	s.DrawTextColored(frame.X, frame.Bottom()+1, hint, core.ColorDarkGray)
}
