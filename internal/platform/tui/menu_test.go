package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/nuwa-jump/internal/core"
	"github.com/vovakirdan/nuwa-jump/internal/storage"
)

func menuKeys(m MenuModel, msgs ...tea.KeyMsg) MenuModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}
	return m
}

func TestMenuEntries(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())

	labels := make([]string, len(m.items))
	for i, item := range m.items {
		labels[i] = item.Label
	}
	expected := []string{"Story", "Endless", "High Scores", "Quit"}
	if strings.Join(labels, ",") != strings.Join(expected, ",") {
		t.Errorf("menu = %v, expected %v", labels, expected)
	}
	if !strings.Contains(m.View(), "N U W A") {
		t.Error("menu title missing")
	}
}

func TestMenuResults(t *testing.T) {
	down := tea.KeyMsg{Type: tea.KeyDown}
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	tests := []struct {
		name   string
		keys   []tea.KeyMsg
		game   string
		scores bool
		quit   bool
	}{
		{"story", []tea.KeyMsg{enter}, "skyjump", false, false},
		{"endless", []tea.KeyMsg{down, enter}, "skyjump_endless", false, false},
		{"scores", []tea.KeyMsg{down, down, enter}, "", true, false},
		{"quit entry", []tea.KeyMsg{down, down, down, enter}, "", false, true},
		{"quit key", []tea.KeyMsg{runes("q")}, "", false, true},
		{"cursor clamps", []tea.KeyMsg{down, down, down, down, down, enter}, "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := menuKeys(NewMenuModel(core.DefaultConfig()), tt.keys...).Result()
			if res.GameID != tt.game || res.WantsScoreboard != tt.scores || res.Quit != tt.quit {
				t.Errorf("result = %+v, expected game=%q scores=%v quit=%v", res, tt.game, tt.scores, tt.quit)
			}
		})
	}
}

func TestScoreboardModes(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	for _, r := range []storage.Run{
		{Mode: "skyjump", Distance: 3100, Stones: 5, HasLeg: true, Won: true},
		{Mode: "skyjump", Distance: 900, Stones: 1},
		{Mode: "skyjump_endless", Distance: 5000, Stones: 2},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatal(err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	if len(m.runs) != 2 || m.stats.Wins != 1 {
		t.Fatalf("story runs = %d wins = %d, expected 2 and 1", len(m.runs), m.stats.Wins)
	}
	if view := m.View(); !strings.Contains(view, "HIGH SCORES") || !strings.Contains(view, "patched") {
		t.Error("scoreboard view missing title or run outcome")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if len(m.runs) != 1 || m.runs[0].Distance != 5000 {
		t.Errorf("endless runs = %+v", m.runs)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.modeCursor != 0 {
		t.Errorf("mode cursor = %d, expected wrap to 0", m.modeCursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc did not go back")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty scoreboard placeholder missing")
	}
}
