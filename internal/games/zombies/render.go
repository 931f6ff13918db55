package zombies

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/zombie-arcade/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar = '@'
	ZombieChar = 'Z'
	BulletChar = '•'
	HPFull     = '█'
	HPEmpty    = '░'
)

const (
	hudRows    = 1
	hpBarWidth = 20
)

// Layout maps between arena coordinates and screen cells. The arena square
// is stretched over the bordered field below the HUD.
type Layout struct {
	Field core.Rect // inner playfield, border excluded
	Half  float64
}

// NewLayout computes the playfield for a screen of w x h cells.
func NewLayout(w, h int, half float64) Layout {
	// border box sits below the HUD; the field is inside it
	fw := max(w-2, 1)
	fh := max(h-hudRows-2, 1)
	return Layout{
		Field: core.NewRect(1, hudRows+1, fw, fh),
		Half:  half,
	}
}

// ToCell converts an arena point to the cell containing it.
func (l Layout) ToCell(p core.Vec2) (int, int) {
	span := 2 * l.Half
	fx := (p.X + l.Half) / span
	fy := (l.Half - p.Y) / span // arena y grows upward, rows grow downward
	x := l.Field.X + int(math.Floor(fx*float64(l.Field.W)))
	y := l.Field.Y + int(math.Floor(fy*float64(l.Field.H)))
	return core.Clamp(x, l.Field.X, l.Field.Right()-1), core.Clamp(y, l.Field.Y, l.Field.Bottom()-1)
}

// ToArena converts a cell to the arena point at its centre.
func (l Layout) ToArena(x, y int) core.Vec2 {
	span := 2 * l.Half
	fx := (float64(x-l.Field.X) + 0.5) / float64(l.Field.W)
	fy := (float64(y-l.Field.Y) + 0.5) / float64(l.Field.H)
	return core.V(fx*span-l.Half, l.Half-fy*span)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	lay := NewLayout(dst.Width(), dst.Height(), g.cfg.Arena.HalfExtent)
	dst.DrawBox(core.NewRect(lay.Field.X-1, lay.Field.Y-1, lay.Field.W+2, lay.Field.H+2), core.ColorGray)

	for _, b := range g.session.Bullets() {
		x, y := lay.ToCell(b.Pos)
		dst.SetColored(x, y, BulletChar, core.ColorBrightYellow)
	}
	for _, z := range g.session.Zombies() {
		x, y := lay.ToCell(z.Pos)
		dst.SetColored(x, y, ZombieChar, core.ColorBrightGreen)
	}
	p := g.session.Player()
	px, py := lay.ToCell(p.Pos)
	dst.SetColored(px, py, PlayerChar, core.ColorCyan)

	g.drawHUD(dst, p)

	if g.paused {
		drawCenteredMessage(dst, lay.Field, "PAUSED", "Press P to resume")
	}
	if res, over := g.session.Result(); over {
		drawCenteredMessage(dst, lay.Field, "GAME OVER",
			fmt.Sprintf("Kills: %d  Stage: %d  |  Press R to restart", res.Kills, res.Stage))
	}
}

// drawHUD draws the kill/stage counters and the HP bar on the top row.
func (g *Game) drawHUD(dst *core.Screen, p PlayerView) {
	dst.DrawText(1, 0, fmt.Sprintf("Kills: %d  Stage: %d", g.session.Kills(), g.session.Stage()))

	bar := HPBar(p.HP, p.MaxHP, hpBarWidth)
	label := fmt.Sprintf(" %d/%d", p.HP, p.MaxHP)
	x := dst.Width() - len([]rune(bar)) - len(label) - 5
	dst.DrawText(x, 0, "HP ")
	dst.DrawTextColored(x+3, 0, bar, core.ColorRed)
	dst.DrawText(x+3+len([]rune(bar)), 0, label)
}

// HPBar renders hp/max as a fixed-width bar.
func HPBar(hp, maxHP, width int) string {
	if maxHP <= 0 || width <= 0 {
		return ""
	}
	filled := core.Clamp(int(math.Ceil(float64(hp)*float64(width)/float64(maxHP))), 0, width)
	return strings.Repeat(string(HPFull), filled) + strings.Repeat(string(HPEmpty), width-filled)
}

// drawCenteredMessage draws a message box over the middle of area.
func drawCenteredMessage(dst *core.Screen, area core.Rect, title, subtitle string) {
	cx, cy := area.Center()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := cx - boxW/2
	boxY := cy - boxH/2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightRed)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
