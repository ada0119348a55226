package orchard

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/fruit-harvest/internal/core"
)

const (
	minScreenW = 44
	minScreenH = 14
	barWidth   = 20
)

// layout holds the screen rows and the column of position 0.
type layout struct {
	lineX   int
	groundY int
	fruitY  int
	labelY  int
	tickY   int
	helpY   int
}

func (g *Game) layout(w, h int) layout {
	ground := h - 3
	return layout{
		lineX:   (w - g.params.Positions) / 2,
		groundY: ground,
		fruitY:  ground - 1,
		labelY:  ground - 3,
		tickY:   h - 2,
		helpY:   h - 1,
	}
}

// fits reports whether a w x h screen can show the current line.
func (g *Game) fits(w, h int) bool {
	return w >= max(g.params.Positions+4, minScreenW) && h >= minScreenH
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall || !g.fits(dst.Width(), dst.Height()) {
		need := max(g.params.Positions+4, minScreenW)
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need at least %dx%d", need, minScreenH))
		return
	}

	l := g.layout(dst.Width(), dst.Height())
	l.lineX += g.fx.ShakeOffset()

	g.renderHUD(dst)
	g.renderGround(dst, l)
	g.renderFruit(dst, l)
	g.renderPlayer(dst, l)
	g.fx.Render(dst, g.fx.ShakeOffset())
	g.renderHelp(dst, l)

	switch {
	case g.won:
		g.renderOverlay(dst, "Orchard complete!", fmt.Sprintf("Final harvest: %d", g.State().Score))
	case g.levelCleared:
		g.renderOverlay(dst, g.clearedTitle(), fmt.Sprintf("Perfect harvest: %d", g.session.Collected))
	case g.gameOver:
		g.renderResults(dst)
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) clearedTitle() string {
	if g.mode != ModeCampaign {
		return fmt.Sprintf("Round %d cleared!", g.rounds+1)
	}
	if lvl := GetLevel(g.levelIndex); lvl != nil {
		return fmt.Sprintf("Level %d cleared: %s", lvl.ID, lvl.Name)
	}
	return "Level cleared!"
}

// renderHUD draws steps, the budget bar and the running total.
func (g *Game) renderHUD(dst *core.Screen) {
	s := g.session

	var title string
	if g.mode != ModeCampaign {
		title = fmt.Sprintf(" %s  Round %d  Score %d", g.Title(), g.rounds+1, g.State().Score)
	} else {
		name := ""
		if lvl := GetLevel(g.levelIndex); lvl != nil {
			name = lvl.Name
		}
		title = fmt.Sprintf(" Fruit Harvest  Level %d/%d %s  Score %d", g.levelIndex+1, LevelCount(), name, g.State().Score)
	}
	dst.DrawTextColor(0, 0, title, core.ColorBrightWhite)

	used := 0.0
	if s.Budget > 0 {
		used = float64(s.StepsUsed()) / float64(s.Budget)
	}
	filled := int(used * barWidth)
	barColor := core.ColorGreen
	if used > 0.8 {
		barColor = core.ColorRed
	}
	dst.DrawText(1, 1, fmt.Sprintf("Steps %2d/%-2d ", s.StepsLeft, s.Budget))
	dst.SetColor(13, 1, '[', core.ColorGray)
	dst.DrawHLine(14, 1, filled, '█', barColor)
	dst.DrawHLine(14+filled, 1, barWidth-filled, '░', core.ColorGray)
	dst.SetColor(14+barWidth, 1, ']', core.ColorGray)

	dst.DrawTextColor(1, 2, fmt.Sprintf("Collected %d", s.Collected), core.ColorBrightYellow)
	dst.DrawHLine(0, 3, dst.Width(), '─', core.ColorGray)
}

// renderGround draws the line, its ticks and the start marker. After a
// failed round the optimal window is highlighted.
func (g *Game) renderGround(dst *core.Screen, l layout) {
	n := g.params.Positions
	dst.DrawHLine(l.lineX, l.groundY, n, '═', core.ColorGreen)

	if g.gameOver {
		if w := g.session.BestRoute(); !w.Empty() {
			lo := g.session.Fruits[w.Left].Position
			hi := g.session.Fruits[w.Right].Position
			dst.DrawHLine(l.lineX+lo, l.groundY, hi-lo+1, '▀', core.ColorBrightCyan)
		}
	}

	for pos := 0; pos < n; pos += 5 {
		dst.SetColor(l.lineX+pos, l.tickY, '╵', core.ColorGray)
	}
	dst.SetColor(l.lineX+g.session.Start, l.tickY, '^', core.ColorBrightBlue)
}

// renderFruit draws uneaten fruit bobbing above the ground with their values
// overhead.
func (g *Game) renderFruit(dst *core.Screen, l layout) {
	for _, f := range g.session.Fruits {
		if g.session.Eaten[f.Position] {
			continue
		}
		x := l.lineX + f.Position
		y := l.fruitY
		if g.bobUp(f.Position) {
			y--
		}
		color := core.FruitColor(f.Value)
		dst.SetColor(x, y, '●', color)
		dst.DrawTextColor(x, l.labelY, fmt.Sprint(f.Value), color)
	}
}

// bobUp alternates fruit between two rows, offset by position so they do not
// move in lockstep.
func (g *Game) bobUp(pos int) bool {
	return (int(g.tick/20)+pos)%2 == 0
}

func (g *Game) renderPlayer(dst *core.Screen, l layout) {
	x := l.lineX + g.session.Player
	dst.SetColor(x, l.fruitY, '▲', core.ColorBrightCyan)
	dst.SetColor(x, l.fruitY-1, 'o', core.ColorBrightCyan)
}

func (g *Game) renderHelp(dst *core.Screen, l layout) {
	var help string
	switch {
	case g.gameOver || g.won:
		help = "R restart  Q quit"
	default:
		help = "←/→ move  Enter finish  P pause  Q quit"
	}
	dst.DrawTextCentered(l.helpY, help, core.ColorGray)
}

// renderResults shows how the failed round compared to the optimum and
// which stretch of the line an optimal walk covers.
func (g *Game) renderResults(dst *core.Screen) {
	s := g.session
	lines := []string{
		"Harvest over",
		fmt.Sprintf("Collected %d / Max possible %d", s.Collected, s.Optimum()),
	}
	if w := s.BestRoute(); !w.Empty() {
		lo := s.Fruits[w.Left].Position
		hi := s.Fruits[w.Right].Position
		lines = append(lines, fmt.Sprintf("Best: %s first, %d..%d in %d steps", w.First, lo, hi, w.Cost))
	}
	lines = append(lines, "Press R to restart")
	g.renderBox(dst, lines, core.ColorBrightRed)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	g.renderBox(dst, []string{line1, line2}, core.ColorBrightWhite)
}

func (g *Game) renderBox(dst *core.Screen, lines []string, c core.Color) {
	width := 0
	for _, line := range lines {
		width = max(width, len([]rune(line)))
	}
	r := core.CenteredRect(dst.Width(), dst.Height(), width+4, len(lines)+2)
	dst.DrawRect(r, ' ')
	dst.DrawBox(r, c)
	for i, line := range lines {
		pad := (width - len([]rune(line))) / 2
		dst.DrawText(r.X+2+pad, r.Y+1+i, strings.TrimRight(line, " "))
	}
}
