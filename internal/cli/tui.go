package cli

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/bricklayer/pkg/plan"
	"github.com/matzehuels/bricklayer/pkg/wall"
)

var (
	brickLaidStyle    = lipgloss.NewStyle().Foreground(colorBrick)
	brickCurrentStyle = lipgloss.NewStyle().Foreground(colorYellow)
	brickOpenStyle    = lipgloss.NewStyle().Foreground(colorDim)
	viewHelpStyle     = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	glyphLaid = "█"
	glyphOpen = "░"

	playInterval = 150 * time.Millisecond
)

// =============================================================================
// PlanViewModel - Stride-by-stride plan viewer
// =============================================================================

// PlanViewModel is the bubbletea model for stepping through a plan. Step
// -1 shows the empty wall; step i shows every brick placed up to step i of
// [plan.Plan.ByStride], with the bricks of step i highlighted.
type PlanViewModel struct {
	Layout  wall.Layout
	Plan    plan.Plan
	Step    int
	Width   int
	Playing bool

	steps  [][]wall.BrickID
	stepOf map[wall.BrickID]int
}

// NewPlanViewModel creates a viewer positioned before the first step.
func NewPlanViewModel(l wall.Layout, p plan.Plan) PlanViewModel {
	return PlanViewModel{
		Layout: l,
		Plan:   p,
		Step:   -1,
		Width:  100,
		steps:  p.ByStride(),
		stepOf: p.StepIndex(),
	}
}

type tickMsg struct{}

func tick() tea.Cmd {
	return tea.Tick(playInterval, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m PlanViewModel) Init() tea.Cmd {
	return nil
}

func (m PlanViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	last := len(m.steps) - 1

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l", "n":
			m.Step = min(m.Step+1, last)
		case "left", "h", "p":
			m.Step = max(m.Step-1, -1)
		case "home", "g":
			m.Step = -1
		case "end", "G":
			m.Step = last
		case " ":
			m.Playing = !m.Playing
			if m.Playing {
				return m, tick()
			}
		}
	case tickMsg:
		if !m.Playing {
			return m, nil
		}
		if m.Step >= last {
			m.Playing = false
			return m, nil
		}
		m.Step++
		return m, tick()
	case tea.WindowSizeMsg:
		m.Width = msg.Width
	}
	return m, nil
}

// Placed returns the number of bricks placed up to the current step.
func (m PlanViewModel) Placed() int {
	n := 0
	for i := 0; i <= m.Step && i < len(m.steps); i++ {
		n += len(m.steps[i])
	}
	return n
}

func (m PlanViewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("%s wall · %s plan", m.Layout.Pattern, m.Plan.Strategy)))
	b.WriteString("\n")
	unit := "stride"
	if !m.Plan.Strided() {
		unit = "brick"
	}
	b.WriteString(StyleNumber.Render(fmt.Sprintf("%s %d/%d", unit, m.Step+1, len(m.steps))))
	b.WriteString(StyleDim.Render(fmt.Sprintf(" · %d/%d bricks · %s", m.Placed(), m.Layout.TotalBricks, m.Plan.Status)))
	b.WriteString("\n\n")

	cols := max(m.Width-2, 20)
	for i := len(m.Layout.Courses) - 1; i >= 0; i-- {
		b.WriteString(m.renderCourse(m.Layout.Courses[i], cols))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(viewHelpStyle.Render("←/→ stride  home/end first/last  space play  q quit"))
	return b.String()
}

// renderCourse draws one course scaled to cols columns. Every brick ends
// with a one-column joint.
func (m PlanViewModel) renderCourse(c wall.Course, cols int) string {
	scale := m.Layout.Width / float64(cols)
	var b strings.Builder
	prev := 0
	for _, brick := range c.Bricks {
		end := int(math.Round(brick.Right() / scale))
		n := max(end-prev, 1)
		prev += n

		glyph, style := glyphOpen, brickOpenStyle
		if step, ok := m.stepOf[brick.ID]; ok && step <= m.Step {
			glyph, style = glyphLaid, brickLaidStyle
			if step == m.Step {
				style = brickCurrentStyle
			}
		}
		b.WriteString(style.Render(strings.Repeat(glyph, n-1)))
		b.WriteString(" ")
	}
	return b.String()
}
