package dragon

import (
	"fmt"

	"github.com/vovakirdan/flappy-dragon/internal/assets"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Visual characters and colors
const (
	WallChar  = '|'
	WallColor = core.ColorRed
	SkyColor  = core.ColorSkyBlue

	panelWidth = 44
	statsWidth = 28
)

// Render draws the current frame into dst.
// While playing, three layers are composited: the base (sky, wall, text),
// the dragon sprite, and the optional dev overlay.
func (g *Game) Render(dst *core.Screen) {
	switch g.mode {
	case ModeMenu:
		g.renderMenu(dst)
	case ModePlaying, ModePaused:
		g.renderPlaying(dst)
	case ModeSettings:
		g.renderSettings(dst)
	case ModeEnd:
		g.renderEnd(dst)
	}
}

func (g *Game) renderMenu(dst *core.Screen) {
	dst.Clear()
	drawPanel(dst, 1, 12)
	dst.DrawTextCentered(3, Title)
	dst.DrawTextCentered(5, "Your dragon awaits")
	dst.DrawTextCentered(8, "(P) Play")
	dst.DrawTextCentered(9, "(Q) Quit")
	dst.DrawTextCentered(10, "(S) Settings")
}

func (g *Game) renderEnd(dst *core.Screen) {
	dst.Clear()
	drawPanel(dst, 3, 14)
	dst.DrawTextCentered(5, "GAME OVER")
	dst.DrawTextCentered(6, fmt.Sprintf("Score: %d", g.score))
	dst.DrawTextCentered(8, "(P) Play")
	dst.DrawTextCentered(9, "(Q) Quit")
	dst.DrawTextCentered(10, "(S) Settings")
	dst.DrawTextCentered(15, g.deathMessage)
}

func (g *Game) renderSettings(dst *core.Screen) {
	dst.Clear()
	s := g.settings
	drawPanel(dst, 3, 10)
	dst.DrawTextCentered(5, "SETTINGS")
	dst.DrawTextCentered(6, fmt.Sprintf("(F) Flap Velocity: %g", s.FlapVelocity))
	dst.DrawTextCentered(7, fmt.Sprintf("(G) Minimum Gap Size: %d", s.MinGapSize))
	dst.DrawTextCentered(8, fmt.Sprintf("(V) Volume: %d", s.Volume))
	dst.DrawTextCentered(10, "(M) Main Menu")
	dst.DrawTextRight(dst.Width()-1, dst.Height()-1, "Press the key in () to adjust a value")
}

func (g *Game) renderPlaying(dst *core.Screen) {
	dst.ClearBg(SkyColor)

	g.drawObstacle(dst)

	dst.DrawText(0, 0, "Press Space to flap ><")
	dst.DrawText(0, 1, fmt.Sprintf("Score %d", g.score))
	if g.encouragementFrames > 0 {
		dst.DrawTextCentered(6, g.encouragement)
	}
	if g.mode == ModePaused {
		dst.DrawTextCentered(5, "(P) Paused")
	}

	g.spriteLayer.Clear()
	pose := assets.PoseFor(g.player.Velocity)
	g.sprite.Draw(g.spriteLayer, g.cfg.Player.ScreenX, g.player.Y, pose, g.player.Frame)
	dst.Overlay(g.spriteLayer)

	if g.devOverlay {
		g.overlayLayer.Clear()
		g.drawDevOverlay(g.overlayLayer)
		dst.Overlay(g.overlayLayer)
	}
}

// drawPanel frames the rows top..top+height-1 in a centered box.
func drawPanel(dst *core.Screen, top, height int) {
	dst.DrawBox(core.NewRect((dst.Width()-panelWidth)/2, top, panelWidth, height))
}

// screenX converts a world column to a screen column, keeping the dragon at
// its fixed screen column.
func (g *Game) screenX(worldX int) int {
	return worldX - g.player.X + g.cfg.Player.ScreenX
}

// drawObstacle draws the wall above and below the gap. Rows between GapTop
// and GapBottom inclusive are left open, matching Collides.
func (g *Game) drawObstacle(dst *core.Screen) {
	o := g.obstacle
	x := g.screenX(o.X)
	dst.DrawVLine(x, 0, o.GapTop(), WallChar, WallColor)
	dst.DrawVLine(x, o.GapBottom()+1, dst.Height()-o.GapBottom()-1, WallChar, WallColor)
}

func (g *Game) drawDevOverlay(dst *core.Screen) {
	right := dst.Width() - 1
	dst.DrawRect(core.NewRect(dst.Width()-statsWidth, 0, statsWidth, 5), ' ')
	dst.DrawTextCentered(0, "(D) DEV VIEW")
	dst.DrawTextRight(right, 0, fmt.Sprintf("x,y: %d, %d", g.player.X, g.player.Y))
	dst.DrawTextRight(right, 1, fmt.Sprintf("velocity: %.1f", g.player.Velocity))
	dst.DrawTextRight(right, 2, fmt.Sprintf("flap_velocity: %g", g.settings.FlapVelocity))
	dst.DrawTextRight(right, 3, fmt.Sprintf("min_gap_size: %d", g.settings.MinGapSize))
	dst.DrawTextRight(right, 4, fmt.Sprintf("wall x: %d gap: %d..%d", g.obstacle.X, g.obstacle.GapTop(), g.obstacle.GapBottom()))
	dst.DrawTextRight(right, dst.Height()-1, fmt.Sprintf("Current Obstacle Gap Size: %d", g.obstacle.Size))

	// Mark the wall column on the dragon's row to show where the hit test happens.
	dst.SetCell(g.screenX(g.obstacle.X), g.player.Y, '+', core.ColorBrightWhite, core.ColorDefault)
}
