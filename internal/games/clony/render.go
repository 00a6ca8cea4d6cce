package clony

import (
	"fmt"

	"github.com/vovakirdan/clony-bird/internal/core"
)

// Render draws the current session into dst. What is drawn depends only on
// the phase; the screen may be smaller than the arena after a resize, in
// which case anything outside is clipped.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch g.phase {
	case core.PhaseSelecting:
		g.drawSelection(dst)

	case core.PhaseIdle:
		g.drawWorld(dst)
		g.drawHUD(dst)
		dst.DrawTextCentered(g.arenaH/2, "Press SPACE to start/jump", core.ColorText)

	case core.PhasePlaying:
		g.drawWorld(dst)
		g.drawHUD(dst)
		if g.levelUpTicks > 0 {
			dst.DrawTextCentered(g.arenaH/2, fmt.Sprintf("LEVEL %d!", g.level), core.ColorAlert)
		}

	case core.PhaseGameOver:
		g.drawWorld(dst)
		g.drawHUD(dst)
		drawCenteredMessage(dst, g.arenaH,
			"GAME OVER!",
			fmt.Sprintf("Reached Level: %d | Total Score: %d", g.level, g.totalScore),
			"Press R to restart, Q to quit")
	}
}

// drawSelection renders the difficulty picker.
func (g *Game) drawSelection(dst *core.Screen) {
	top := g.arenaH/2 - g.catalog.Len() - 2

	dst.DrawTextCentered(top, g.Title(), core.ColorBird)
	dst.DrawTextCentered(top+2, "Choose difficulty", core.ColorText)

	for i := 0; i < g.catalog.Len(); i++ {
		opt := g.catalog.Option(i)
		cursor, color := "  ", core.ColorText
		if i == g.selectedIndex {
			cursor, color = "> ", core.ColorHighlight
		}
		line := fmt.Sprintf("%s%d. %-8s x%.2f", cursor, i+1, opt.Label, opt.SpeedMultiplier)
		dst.DrawTextCentered(top+4+i, line, color)
	}

	dst.DrawTextCentered(top+5+g.catalog.Len(), "Left/Right or 1-3 to choose, Enter to confirm", core.ColorText)
}

// drawWorld renders sky, ground, obstacles and the bird.
func (g *Game) drawWorld(dst *core.Screen) {
	groundY := g.arenaH - 1
	for y := 0; y < groundY; y++ {
		dst.FillRow(y, ' ', core.ColorSky)
	}
	dst.FillRow(groundY, GroundChar, core.ColorGround)

	width := g.cfg.Obstacles.Width
	for _, o := range g.obstacles.Obstacles() {
		x := int(o.X)
		if x < -width || x >= g.arenaW {
			continue
		}
		gap := o.GapSpan(g.cfg.Obstacles.Gap)
		gapTop, gapBottom := int(gap.Lo), int(gap.Hi)

		// Top section from row 1 down to the gap, bottom section from the gap to the ground.
		dst.DrawRect(core.NewRect(x, 1, width, gapTop-1), ObstacleChar, core.ColorObstacle)
		dst.DrawRect(core.NewRect(x, gapBottom+1, width, groundY-gapBottom-1), ObstacleChar, core.ColorObstacle)
	}

	bx, by := int(g.bird.X), int(g.bird.Y)
	if by < groundY {
		dst.Set(bx, by, BirdChar, core.ColorBird)
	}
}

// drawHUD renders level and score in the top-left corner.
func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawText(2, 0, fmt.Sprintf("Level: %d/%d", g.level, g.cfg.Levels.Max), core.ColorText)
	dst.DrawText(2, 1, fmt.Sprintf("Level Score: %d/%d | Total: %d",
		g.levelScore, g.cfg.Levels.PointsPerLevel, g.totalScore), core.ColorText)
}

// drawCenteredMessage draws a boxed message in the middle of the arena.
// The first line is the title and is drawn in the alert colour.
func drawCenteredMessage(dst *core.Screen, arenaH int, title string, lines ...string) {
	boxW := len([]rune(title))
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (arenaH - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorText)

	dst.DrawTextCentered(boxY+1, title, core.ColorAlert)
	for i, l := range lines {
		dst.DrawTextCentered(boxY+3+i, l, core.ColorText)
	}
}
