package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/akarpov/tilerunner/internal/core"
	"github.com/akarpov/tilerunner/internal/game"
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
	core.ColorBrown:         lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
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
			cell := s.CellAt(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.CellAt(x, y)
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

// renderSnapshot draws one simulation snapshot into the screen buffer.
// One screen cell covers one tile; the camera offset selects the visible
// column window.
func renderSnapshot(snap *game.Snapshot, s *core.Screen) {
	s.Clear()

	ts := snap.TileSize
	camCol := int(snap.CameraX / ts)

	// Pin the bottom of the map one row above the bottom of the screen;
	// row 0 stays reserved for the HUD.
	vOff := s.Height() - snap.MapRows - 1
	if vOff < 1 {
		vOff = 1
	}

	drawTiles(snap, s, camCol, vOff)
	drawDecor(snap, s, camCol, vOff)
	drawGate(snap, s, camCol, vOff)
	drawEnemies(snap, s, camCol, vOff)
	drawParticles(snap, s, camCol, vOff)
	drawPlayer(snap, s, camCol, vOff)
	drawHUD(snap, s)
	drawOverlay(snap, s)
}

func drawTiles(snap *game.Snapshot, s *core.Screen, camCol, vOff int) {
	for sx := 0; sx < s.Width(); sx++ {
		col := camCol + sx
		if col < 0 || col >= snap.MapCols {
			continue
		}
		for row := 0; row < snap.MapRows; row++ {
			tile := snap.Grid.At(col, row)
			if tile.Type == game.TileEmpty {
				continue
			}
			sy := row + vOff
			switch tile.Type {
			case game.TileGrass:
				s.SetColored(sx, sy, '▀', core.ColorGreen)
			case game.TileGround:
				s.SetColored(sx, sy, '█', core.ColorBrown)
			case game.TileStone:
				s.SetColored(sx, sy, '▓', core.ColorGray)
			}
		}
	}
}

func drawDecor(snap *game.Snapshot, s *core.Screen, camCol, vOff int) {
	ts := snap.TileSize
	for _, d := range snap.Decor {
		sx := int(d.Pos.X/ts) - camCol
		sy := int(d.Pos.Y/ts) + vOff
		switch d.Kind {
		case game.DecorPlant:
			s.SetColored(sx, sy, '♣', core.ColorGreen)
		case game.DecorCrate:
			s.SetColored(sx, sy, '■', core.ColorBrightYellow)
		}
	}
}

func drawGate(snap *game.Snapshot, s *core.Screen, camCol, vOff int) {
	ts := snap.TileSize
	sx := int(snap.Gate.Pos.X/ts) - camCol
	topRow := int(snap.Gate.Pos.Y / ts)

	// Shimmer between two colors driven by the gate's phase.
	color := core.ColorBrightCyan
	if int(snap.Gate.Phase)%2 == 1 {
		color = core.ColorBrightMagenta
	}

	rows := int(snap.Gate.Height / ts)
	for i := 0; i < rows; i++ {
		s.SetColored(sx, topRow+i+vOff, '║', color)
	}
}

func drawEnemies(snap *game.Snapshot, s *core.Screen, camCol, vOff int) {
	ts := snap.TileSize
	for _, e := range snap.Enemies {
		sx := int((e.Pos.X+e.Width/2)/ts) - camCol
		sy := int((e.Pos.Y+e.Height/2)/ts) + vOff

		// The patrol phase wobbles the glyph so enemies look animated.
		glyph := 'o'
		if math.Sin(e.Phase) > 0 {
			glyph = 'O'
		}
		s.SetColored(sx, sy, glyph, core.ColorBrightRed)
	}
}

func drawParticles(snap *game.Snapshot, s *core.Screen, camCol, vOff int) {
	ts := snap.TileSize
	for _, p := range snap.Particles {
		sx := int(p.Pos.X/ts) - camCol
		sy := int(p.Pos.Y/ts) + vOff

		glyph := '·'
		if p.Size >= 1.5 {
			glyph = '*'
		}
		s.SetColored(sx, sy, glyph, p.Color)
	}
}

func drawPlayer(snap *game.Snapshot, s *core.Screen, camCol, vOff int) {
	if snap.Status == game.StatusDead {
		return
	}
	ts := snap.TileSize
	p := snap.Player
	sx := int((p.Pos.X+p.Width/2)/ts) - camCol
	sy := int((p.Pos.Y+p.Height/2)/ts) + vOff
	s.SetColored(sx, sy, '@', core.ColorBrightWhite)
}

func drawHUD(snap *game.Snapshot, s *core.Screen) {
	left := fmt.Sprintf(" SCORE %d  LEVEL %d", snap.Score, snap.Level)
	s.DrawTextColored(0, 0, left, core.ColorBrightWhite)

	right := "p pause  r reset  q quit "
	s.DrawTextColored(s.Width()-len(right), 0, right, core.ColorGray)
}

func drawOverlay(snap *game.Snapshot, s *core.Screen) {
	var text string
	var color core.Color

	switch {
	case snap.Paused:
		text = " PAUSED "
		color = core.ColorBrightYellow
	case snap.Status == game.StatusDead:
		text = " YOU DIED "
		color = core.ColorBrightRed
	case snap.Status == game.StatusWin:
		text = " LEVEL COMPLETE! "
		color = core.ColorBrightGreen
	default:
		return
	}

	y := s.Height() / 2
	x := (s.Width() - len(text)) / 2
	s.DrawBox(x-1, y-1, len(text)+2, 3)
	s.DrawTextColored(x, y, text, color)
}
