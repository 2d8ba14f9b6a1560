package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/scottkirkwood/fractals"
)

func send(m menuModel, msgs ...tea.Msg) (menuModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(menuModel)
	}
	return m, cmd
}

func TestMenuMoveAndPick(t *testing.T) {
	m, cmd := send(newMenu(),
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyUp},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	if cmd == nil {
		t.Errorf("enter did not quit the menu")
	}
	if k, ok := m.selected(); !ok || k != fractals.KindJulia {
		t.Errorf("selected() = %v, %v, want julia", k, ok)
	}
}

func TestMenuCursorStaysInside(t *testing.T) {
	m, _ := send(newMenu(), tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor = %d after up at the top", m.cursor)
	}
	for i := 0; i < 10; i++ {
		m, _ = send(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != len(fractals.Kinds)-1 {
		t.Errorf("cursor = %d after many downs", m.cursor)
	}
}

func TestMenuDigit(t *testing.T) {
	m, _ := send(newMenu(), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("4")})
	if k, ok := m.selected(); !ok || k != fractals.KindSierpinski {
		t.Errorf("selected() = %v, %v, want sierpinski", k, ok)
	}
	m, _ = send(newMenu(), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("9")})
	if _, ok := m.selected(); ok {
		t.Errorf("9 picked an entry")
	}
}

func TestMenuQuit(t *testing.T) {
	m, cmd := send(newMenu(), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil || !m.quit {
		t.Errorf("q did not quit")
	}
	if _, ok := m.selected(); ok {
		t.Errorf("quitting selected an entry")
	}
	if m.View() != "" {
		t.Errorf("View() after quit = %q, want empty", m.View())
	}
}

func TestMenuView(t *testing.T) {
	v := newMenu().View()
	for _, k := range fractals.Kinds {
		if !strings.Contains(v, k.String()) {
			t.Errorf("menu does not list %s", k)
		}
	}
}
