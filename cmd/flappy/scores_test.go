package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPrintScoresEmpty(t *testing.T) {
	store := openTestStore(t)

	var buf bytes.Buffer
	if err := printScores(&buf, store, 10); err != nil {
		t.Fatalf("printScores() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No scores recorded yet.") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestPrintScores(t *testing.T) {
	store := openTestStore(t)
	for _, s := range []int{3, 11, 7} {
		store.SaveScore(flappy.ID, s)
	}
	store.SaveRecord("best_score", 11)

	var buf bytes.Buffer
	if err := printScores(&buf, store, 2); err != nil {
		t.Fatalf("printScores() failed: %v", err)
	}
	out := buf.String()

	first := strings.Index(out, "11")
	second := strings.Index(out, "7 ")
	if first < 0 || second < 0 || first > second {
		t.Errorf("scores missing or out of order:\n%s", out)
	}
	if strings.Contains(out, "  3  ") {
		t.Errorf("limit not applied:\n%s", out)
	}
	if !strings.Contains(out, "Best: 11") {
		t.Errorf("best score missing:\n%s", out)
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore(flappy.ID, 5)
	store.SaveRecord("best_score", 5)
	store.SaveRecord("best_score:alice", 9)

	if err := clearScores(store); err != nil {
		t.Fatalf("clearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores(flappy.ID, 10); len(scores) != 0 {
		t.Errorf("history should be empty, got %d", len(scores))
	}
	if best, _ := store.LoadRecord("best_score"); best != 0 {
		t.Errorf("local best = %d, expected 0", best)
	}
	// Remote players keep their records
	if best, _ := store.LoadRecord("best_score:alice"); best != 9 {
		t.Errorf("alice's best = %d, expected 9", best)
	}
}
