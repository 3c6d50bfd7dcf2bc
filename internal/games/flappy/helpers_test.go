package flappy

import (
	"errors"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// memStore is an in-memory BestScoreStore.
type memStore struct {
	best    int
	loadErr error
	saveErr error
	saves   []int
}

func (m *memStore) LoadBestScore() (int, error) {
	if m.loadErr != nil {
		return 0, m.loadErr
	}
	return m.best, nil
}

func (m *memStore) SaveBestScore(score int) error {
	m.saves = append(m.saves, score)
	if m.saveErr != nil {
		return m.saveErr
	}
	m.best = score
	return nil
}

var errBroken = errors.New("broken record")

func testConfig() config.FlappyConfig {
	return config.DefaultFlappyConfig()
}

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  30,
		TickRate: 60,
		Seed:     seed,
	}
}

// viewport800x600 matches the playfield used in the collision examples.
var viewport800x600 = core.Viewport{Width: 800, Height: 600, TileWidth: 400}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func newTestSession(store BestScoreStore) *Session {
	return NewSession(testConfig(), testRuntime(1), store, nil)
}
