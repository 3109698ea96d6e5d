package review

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/ldr/pkg/todo"
)

type decision int

const (
	decisionNone decision = iota
	decisionDone
	decisionRemove
	decisionUp
)

func (d decision) String() string {
	switch d {
	case decisionDone:
		return "done"
	case decisionRemove:
		return "remove"
	case decisionUp:
		return "up"
	default:
		return ""
	}
}

type styles struct {
	title lipgloss.Style
	count lipgloss.Style
	task  lipgloss.Style
	sub   lipgloss.Style
	badge lipgloss.Style
	dim   lipgloss.Style
	help  lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		title: lipgloss.NewStyle().Bold(true).Underline(true),
		count: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		task:  lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		sub:   lipgloss.NewStyle().Foreground(lipgloss.Color("44")),
		badge: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		dim:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		help:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// model walks the list top-down, one task at a time, collecting decisions
// that the runner applies in one batch after the program exits.
type model struct {
	listName string
	tasks    []*todo.Task

	index     int
	decisions []decision
	order     []int // task indices in the order they were last decided

	adds   []string
	adding bool
	input  textinput.Model

	width  int
	height int

	styles styles
}

func newModel(listName string, tasks []*todo.Task) *model {
	input := textinput.New()
	input.Placeholder = "New task…"
	input.Prompt = "> "

	return &model{
		listName:  listName,
		tasks:     tasks,
		decisions: make([]decision, len(tasks)),
		input:     input,
		styles:    defaultStyles(),
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyPressMsg:
		if m.adding {
			return m.updateAdding(msg)
		}
		return m.updateReview(msg)
	}
	return m, nil
}

func (m *model) updateAdding(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if text := strings.TrimSpace(m.input.Value()); text != "" {
			m.adds = append(m.adds, text)
		}
		m.input.SetValue("")
		m.adding = false
		return m, nil
	case "esc":
		m.input.SetValue("")
		m.adding = false
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) updateReview(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "d":
		m.decide(decisionDone)
	case "r":
		m.decide(decisionRemove)
	case "u":
		m.decide(decisionUp)
	case "c":
		m.clear()
	case "s", " ", "enter", "j", "down":
		m.forward()
	case "k", "up":
		if m.index > 0 {
			m.index--
		}
	case "a":
		m.adding = true
		return m, m.input.Focus()
	}
	return m, nil
}

func (m *model) decide(d decision) {
	if m.index >= len(m.tasks) {
		return
	}
	m.decisions[m.index] = d
	for i, ti := range m.order {
		if ti == m.index {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	m.order = append(m.order, m.index)
	m.forward()
}

func (m *model) clear() {
	if m.index >= len(m.tasks) {
		return
	}
	m.decisions[m.index] = decisionNone
	for i, ti := range m.order {
		if ti == m.index {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

func (m *model) forward() {
	if m.index < len(m.tasks) {
		m.index++
	}
}

func (m *model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render("Reviewing "+m.listName) + " ")
	b.WriteString(m.styles.count.Render(fmt.Sprintf("%d/%d", min(m.index+1, len(m.tasks)), len(m.tasks))))
	b.WriteString("\n\n")

	if m.index >= len(m.tasks) {
		b.WriteString(m.styles.dim.Render("Review complete."))
		b.WriteString("\n\n")
		b.WriteString(m.summary())
		b.WriteString("\n")
		b.WriteString(m.styles.help.Render("k back  a add  q apply & quit"))
		return b.String()
	}

	t := m.tasks[m.index]
	b.WriteString("  " + m.styles.task.Render(t.Text))
	if d := m.decisions[m.index]; d != decisionNone {
		b.WriteString("  " + m.styles.badge.Render("["+d.String()+"]"))
	}
	b.WriteString("\n")
	for i, s := range t.Subtasks {
		b.WriteString(fmt.Sprintf("     %s\n", m.styles.sub.Render(fmt.Sprintf("%c. %s", rune('a'+i), s.Text))))
	}

	if m.adding {
		b.WriteString("\n" + m.input.View() + "\n")
		b.WriteString(m.styles.help.Render("enter save  esc cancel"))
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(m.summary())
	b.WriteString("\n")
	b.WriteString(m.styles.help.Render("d done  r remove  u up  s skip  k back  c clear  a add  q apply & quit"))
	return b.String()
}

func (m *model) summary() string {
	counts := make(map[decision]int)
	for _, d := range m.decisions {
		counts[d]++
	}
	return m.styles.dim.Render(fmt.Sprintf(
		"done %d · remove %d · up %d · added %d",
		counts[decisionDone], counts[decisionRemove], counts[decisionUp], len(m.adds)))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
