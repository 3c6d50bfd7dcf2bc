package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	BirdBodyChar  = '●'
	BirdUpChar    = '▲'
	BirdLevelChar = '▶'
	BirdDownChar  = '▼'
	PipeChar      = '█'
	PipeCapTop    = '▀'
	PipeCapBottom = '▄'
	GroundChar    = '═'
	SkylineChar   = '░'
)

// skyline is the building profile of one background tile, in rows,
// sampled evenly across the tile width.
var skyline = []int{2, 2, 4, 4, 4, 3, 1, 1, 5, 5, 3, 3, 3, 2, 6, 6, 6, 2, 1, 1}

// Render draws snap into dst. It reads only the snapshot; the session is
// never touched. scale maps logical units to cells.
func Render(dst *core.Screen, snap Snapshot, scale core.Scale) {
	dst.Clear()

	drawSkyline(dst, snap, scale)

	for _, p := range snap.Obstacles {
		drawPipe(dst, p, snap, scale)
	}

	groundY := dst.Height() - 1
	dst.DrawHLine(0, groundY, dst.Width(), GroundChar, core.ColorOrange)

	drawBird(dst, snap, scale)
	drawHUD(dst, snap)

	switch snap.State {
	case StateIdle:
		drawCenteredMessage(dst,
			"FLAPPY BIRD",
			"Space / click to flap",
			fmt.Sprintf("Best: %d", snap.BestScore),
		)
	case StateTerminal:
		result := fmt.Sprintf("Score: %d  Best: %d", snap.Score, snap.BestScore)
		if snap.NewBest {
			result = fmt.Sprintf("New best: %d!", snap.Score)
		}
		drawCenteredMessage(dst, "GAME OVER", result, "R to restart  |  Q to quit")
	}
}

// drawSkyline tiles the building profile across the screen, shifted by the
// parallax offset.
func drawSkyline(dst *core.Screen, snap Snapshot, scale core.Scale) {
	tile := snap.Viewport.TileWidth
	if tile <= 0 {
		return
	}
	groundY := dst.Height() - 1
	for col := 0; col < dst.Width(); col++ {
		x := (float64(col)+0.5)*scale.CellW - snap.ParallaxOffset
		u := math.Mod(x, tile)
		if u < 0 {
			u += tile
		}
		h := skyline[int(u/tile*float64(len(skyline)))%len(skyline)]
		dst.DrawVLine(col, groundY-h, h, SkylineChar, core.ColorGray)
	}
}

// drawPipe renders both segments of one obstacle pair.
func drawPipe(dst *core.Screen, p Obstacle, snap Snapshot, scale core.Scale) {
	left := scale.Col(p.X)
	right := int(math.Ceil((p.X+snap.ObstacleWidth)/scale.CellW)) - 1
	groundY := dst.Height() - 1

	gapBottom := p.GapTopY + snap.GapHeight
	// Any row touching a segment is drawn as pipe
	topRows := int(math.Ceil(p.GapTopY / scale.CellH))
	bottomStart := int(math.Floor(gapBottom / scale.CellH))

	for x := left; x <= right; x++ {
		dst.DrawVLine(x, 0, topRows, PipeChar, core.ColorGreen)
		if topRows > 0 {
			dst.SetColored(x, topRows-1, PipeCapTop, core.ColorBrightGreen)
		}

		dst.DrawVLine(x, bottomStart, groundY-bottomStart, PipeChar, core.ColorGreen)
		if bottomStart < groundY {
			dst.SetColored(x, bottomStart, PipeCapBottom, core.ColorBrightGreen)
		}
	}
}

// drawBird draws the body with the head glyph chosen from the tilt. The
// floor band shares the ground row, so a bird resting on the floor is
// drawn on the row above it.
func drawBird(dst *core.Screen, snap Snapshot, scale core.Scale) {
	col := scale.Col(snap.ActorX)
	row := core.Min(scale.Row(snap.ActorY), dst.Height()-2)

	head := BirdLevelChar
	switch {
	case snap.ActorTilt < -0.2:
		head = BirdUpChar
	case snap.ActorTilt > 0.8:
		head = BirdDownChar
	}

	dst.SetColored(col-1, row, BirdBodyChar, core.ColorBrightYellow)
	dst.SetColored(col, row, head, core.ColorYellow)
}

func drawHUD(dst *core.Screen, snap Snapshot) {
	if snap.State != StateIdle {
		dst.DrawTextCentered(0, fmt.Sprintf(" %d ", snap.Score), core.ColorBrightWhite)
	}
	best := fmt.Sprintf("Best: %d ", snap.BestScore)
	dst.DrawTextColored(dst.Width()-len(best), 0, best, core.ColorCyan)
}

// drawCenteredMessage draws a box with a title and lines of text in the
// middle of the screen.
func drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	boxW := len([]rune(title))
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 4
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	titleX := box.X + (boxW-len([]rune(title)))/2
	dst.DrawTextColored(titleX, box.Y+1, title, core.ColorBrightYellow)

	for i, l := range lines {
		x := box.X + (boxW-len([]rune(l)))/2
		dst.DrawText(x, box.Y+3+i, l)
	}
}
