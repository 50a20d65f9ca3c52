package cli

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/bricklayer/pkg/plan"
	"github.com/matzehuels/bricklayer/pkg/wall/bond"
)

func press(m PlanViewModel, keys ...tea.KeyMsg) PlanViewModel {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(PlanViewModel)
	}
	return m
}

var (
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyHome  = tea.KeyMsg{Type: tea.KeyHome}
	keyEnd   = tea.KeyMsg{Type: tea.KeyEnd}
)

func sweepViewModel(t *testing.T) PlanViewModel {
	t.Helper()
	l := bond.Stretcher(1000, 200)
	p, err := plan.DefaultSweep().Plan(context.Background(), l)
	if err != nil {
		t.Fatal(err)
	}
	return NewPlanViewModel(l, p)
}

func TestPlanViewNavigation(t *testing.T) {
	m := sweepViewModel(t)
	last := m.Plan.Steps() - 1

	if m.Step != -1 || m.Placed() != 0 {
		t.Fatalf("initial step %d placed %d", m.Step, m.Placed())
	}

	m = press(m, keyLeft)
	if m.Step != -1 {
		t.Errorf("left at start: step = %d", m.Step)
	}

	m = press(m, keyRight)
	if m.Step != 0 || m.Placed() == 0 {
		t.Errorf("after right: step %d placed %d", m.Step, m.Placed())
	}

	m = press(m, keyEnd)
	if m.Step != last || m.Placed() != m.Layout.TotalBricks {
		t.Errorf("end: step %d placed %d", m.Step, m.Placed())
	}

	m = press(m, keyRight)
	if m.Step != last {
		t.Errorf("right at end: step = %d", m.Step)
	}

	m = press(m, keyHome)
	if m.Step != -1 {
		t.Errorf("home: step = %d", m.Step)
	}
}

func TestPlanViewQuit(t *testing.T) {
	m := sweepViewModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestPlanViewPlays(t *testing.T) {
	m := sweepViewModel(t)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = next.(PlanViewModel)
	if !m.Playing || cmd == nil {
		t.Fatal("space should start playing")
	}

	for i := 0; i < m.Plan.Steps()+1; i++ {
		next, _ = m.Update(tickMsg{})
		m = next.(PlanViewModel)
	}
	if m.Playing || m.Step != m.Plan.Steps()-1 {
		t.Errorf("playback should stop at the last step: step %d playing %v", m.Step, m.Playing)
	}
}

func TestPlanViewRendersCourses(t *testing.T) {
	m := sweepViewModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m = press(next.(PlanViewModel), keyEnd)

	view := m.View()
	if !strings.Contains(view, "stride") || !strings.Contains(view, "17/17 bricks") {
		t.Errorf("status line missing:\n%s", view)
	}
	if strings.Contains(view, glyphOpen) {
		t.Error("finished wall should show no open bricks")
	}

	m = press(m, keyHome)
	if strings.Contains(m.View(), glyphLaid) {
		t.Error("empty wall should show no laid bricks")
	}
}
