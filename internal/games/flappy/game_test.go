package flappy

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

var testScale = core.Scale{CellW: 10, CellH: 20}

// activeSnapshot is an 80x24 frame: one pair at X=400 with its gap at
// 200..370 and the bird level at (50, 150).
func activeSnapshot() Snapshot {
	return Snapshot{
		State:         StateActive,
		Score:         4,
		BestScore:     3,
		ActorX:        50,
		ActorY:        150,
		ActorRadius:   15,
		Obstacles:     []Obstacle{{X: 400, GapTopY: 200}},
		GapHeight:     170,
		ObstacleWidth: 60,
		Viewport:      core.Viewport{Width: 800, Height: 480, TileWidth: 400},
	}
}

func TestGameDeterminism(t *testing.T) {
	rc := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345}

	// Flap every 15 ticks to try to stay airborne
	inputSequence := make([]core.InputFrame, 400)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		if i%15 == 0 {
			inputSequence[i].Set(core.ActionFlap)
		}
	}

	run := func() (StepResult, Snapshot) {
		g := New(testConfig(), rc, nil, nil)
		var res StepResult
		for _, in := range inputSequence {
			res = g.Step(in)
			if res.Ended {
				break
			}
		}
		return res, g.Snapshot()
	}

	r1, s1 := run()
	r2, s2 := run()

	if r1.Status != r2.Status || r1.Cause != r2.Cause {
		t.Errorf("Determinism failed: %+v vs %+v", r1, r2)
	}
	if s1.Tick != s2.Tick || s1.ActorY != s2.ActorY {
		t.Errorf("Determinism failed: tick %d/%d, y %v/%v", s1.Tick, s2.Tick, s1.ActorY, s2.ActorY)
	}
}

func TestGameViewportFromScreen(t *testing.T) {
	g := New(testConfig(), core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, nil, nil)

	want := core.Viewport{Width: 800, Height: 480, TileWidth: 400}
	if got := g.Viewport(); got != want {
		t.Errorf("Viewport() = %+v, expected %+v", got, want)
	}
	if g.ID() != "flappy" {
		t.Errorf("unexpected ID %q", g.ID())
	}
}

func TestGameResizeMidRun(t *testing.T) {
	g := New(testConfig(), core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3}, nil, nil)
	g.Step(input(core.ActionFlap))
	if g.Status().State != StateActive {
		t.Fatalf("state = %v, expected active", g.Status().State)
	}

	g.Resize(100, 30)
	res := g.Step(core.NewInputFrame())

	if res.Status.State != StateActive {
		t.Errorf("resize should not end the run, state = %v", res.Status.State)
	}
	want := core.Viewport{Width: 1000, Height: 600, TileWidth: 400}
	if got := g.Snapshot().Viewport; got != want {
		t.Errorf("session viewport = %+v, expected %+v", got, want)
	}
}

func TestGameOverOnGround(t *testing.T) {
	g := New(testConfig(), core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, nil, nil)
	g.Step(input(core.ActionFlap))

	var res StepResult
	for i := 0; i < 300 && !res.Ended; i++ {
		res = g.Step(core.NewInputFrame())
	}

	if !res.Ended {
		t.Fatal("Falling bird should end the run")
	}
	if res.Status.State != StateTerminal {
		t.Errorf("state = %v, expected terminal", res.Status.State)
	}
}

func TestGameRender(t *testing.T) {
	g := New(testConfig(), core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, nil, nil)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	str := screen.String()
	if !strings.Contains(str, "FLAPPY BIRD") {
		t.Error("Title screen should show the game name")
	}
	if !strings.Contains(str, "Best: 0") {
		t.Error("Title screen should show the best score")
	}

	groundY := 23
	for x := 0; x < 80; x++ {
		if screen.Get(x, groundY) != GroundChar {
			t.Fatalf("Ground should span the bottom row, got %q at %d", screen.Get(x, groundY), x)
		}
	}
}

func TestRenderPipe(t *testing.T) {
	screen := core.NewScreen(80, 24)
	Render(screen, activeSnapshot(), testScale)

	tests := []struct {
		name string
		x, y int
		want rune
	}{
		{"top segment", 42, 5, PipeChar},
		{"top cap", 42, 9, PipeCapTop},
		{"gap", 42, 12, ' '},
		{"bottom cap", 42, 18, PipeCapBottom},
		{"bottom segment", 42, 20, PipeChar},
		{"left column", 40, 5, PipeChar},
		{"right column", 45, 5, PipeChar},
		{"past right edge", 46, 5, ' '},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := screen.Get(tc.x, tc.y); got != tc.want {
				t.Errorf("(%d,%d) = %q, expected %q", tc.x, tc.y, got, tc.want)
			}
		})
	}

	if c := screen.GetCell(42, 5).Color; c != core.ColorGreen {
		t.Errorf("pipe color = %v, expected green", c)
	}
}

func TestRenderBirdTilt(t *testing.T) {
	tests := []struct {
		name string
		tilt float64
		want rune
	}{
		{"level", 0, BirdLevelChar},
		{"nose up", -0.44, BirdUpChar},
		{"diving", 1.2, BirdDownChar},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			snap := activeSnapshot()
			snap.ActorTilt = tc.tilt

			screen := core.NewScreen(80, 24)
			Render(screen, snap, testScale)

			if got := screen.Get(5, 7); got != tc.want {
				t.Errorf("head = %q, expected %q", got, tc.want)
			}
			if got := screen.Get(4, 7); got != BirdBodyChar {
				t.Errorf("body = %q, expected %q", got, BirdBodyChar)
			}
		})
	}
}

func TestRenderHUD(t *testing.T) {
	screen := core.NewScreen(80, 24)
	Render(screen, activeSnapshot(), testScale)

	row := screen.Row(0)
	if !strings.Contains(row, " 4 ") {
		t.Errorf("score missing from HUD: %q", row)
	}
	if !strings.HasSuffix(row, "Best: 3 ") {
		t.Errorf("best score should be right-aligned: %q", row)
	}
	if strings.Contains(screen.String(), "GAME OVER") {
		t.Error("no overlay while playing")
	}
}

func TestRenderGameOver(t *testing.T) {
	snap := activeSnapshot()
	snap.State = StateTerminal

	screen := core.NewScreen(80, 24)
	Render(screen, snap, testScale)
	str := screen.String()

	if !strings.Contains(str, "GAME OVER") {
		t.Error("Game over overlay missing")
	}
	if !strings.Contains(str, "Score: 4  Best: 3") {
		t.Error("Game over overlay should show score and best")
	}

	snap.NewBest = true
	snap.BestScore = 4
	Render(screen, snap, testScale)
	if !strings.Contains(screen.String(), "New best: 4!") {
		t.Error("Game over overlay should announce a new best")
	}
}

func TestRenderBirdOnFloorKeepsGround(t *testing.T) {
	snap := activeSnapshot()
	snap.Obstacles = nil
	snap.State = StateTerminal
	// Resting on the 480 floor
	snap.ActorY = 465
	snap.ActorTilt = 1.5

	screen := core.NewScreen(80, 24)
	Render(screen, snap, testScale)

	if got := screen.Get(5, 22); got != BirdDownChar {
		t.Errorf("bird head at (5, 22) = %q, expected %q", got, BirdDownChar)
	}
	if got := screen.Get(4, 22); got != BirdBodyChar {
		t.Errorf("bird body at (4, 22) = %q, expected %q", got, BirdBodyChar)
	}
	for x := 0; x < 80; x++ {
		if got := screen.Get(x, 23); got != GroundChar {
			t.Fatalf("ground at (%d, 23) = %q, expected %q", x, got, GroundChar)
		}
	}
}

func TestRenderSkylineScrolls(t *testing.T) {
	snap := activeSnapshot()
	snap.Obstacles = nil

	a := core.NewScreen(80, 24)
	Render(a, snap, testScale)

	snap.ParallaxOffset = -100
	b := core.NewScreen(80, 24)
	Render(b, snap, testScale)

	if a.Row(19) == b.Row(19) {
		t.Error("Skyline should shift with the parallax offset")
	}

	// A full tile of scroll draws the same skyline again
	snap.ParallaxOffset = -400
	c := core.NewScreen(80, 24)
	Render(c, snap, testScale)
	if a.Row(19) != c.Row(19) {
		t.Error("Skyline should repeat every tile")
	}
}

func TestRenderDoesNotMutateSession(t *testing.T) {
	g := New(testConfig(), core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 9}, nil, nil)
	g.Step(input(core.ActionFlap))
	before := g.Snapshot()

	g.Render(core.NewScreen(80, 24))
	g.Render(core.NewScreen(20, 5))

	after := g.Snapshot()
	if before.ActorY != after.ActorY || before.Tick != after.Tick || len(before.Obstacles) != len(after.Obstacles) {
		t.Error("Render should not change the simulation")
	}
}

func TestRenderTinyScreen(t *testing.T) {
	snap := activeSnapshot()
	for _, size := range [][2]int{{0, 0}, {1, 1}, {3, 2}} {
		screen := core.NewScreen(size[0], size[1])
		Render(screen, snap, testScale)
	}
}
