package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// multiChoice is the four-option selector for one quiz question.
type multiChoice struct {
	Options      []string
	CorrectIndex int
	Selected     int
	Submitted    bool
	ChosenIndex  int
}

func newMultiChoice(options []string, correctIndex int) multiChoice {
	return multiChoice{
		Options:      options,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
	}
}

// Update handles keyboard navigation and selection.
func (m multiChoice) Update(msg tea.Msg) multiChoice {
	if m.Submitted {
		return m
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "a", "b", "c", "d":
		i := int(kmsg.String()[0] - 'a')
		if i < len(m.Options) {
			m.Selected = i
		}
	case "enter":
		m.Submitted = true
		m.ChosenIndex = m.Selected
	}

	return m
}

// View renders the option list.
func (m multiChoice) View() string {
	var s string
	labels := []string{"A", "B", "C", "D"}

	for i, opt := range m.Options {
		label := labels[i%len(labels)]
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		switch {
		case m.Submitted && i == m.CorrectIndex:
			s += feedbackGood.Render(line) + "\n"
		case m.Submitted && i == m.ChosenIndex:
			s += feedbackBad.Render(line) + "\n"
		case m.Submitted:
			s += explainStyle.Render(line) + "\n"
		case i == m.Selected:
			s += lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(colorText).Render(line) + "\n"
		}
	}

	return s
}

// IsCorrect reports whether the submitted choice was right.
func (m multiChoice) IsCorrect() bool {
	return m.Submitted && m.ChosenIndex == m.CorrectIndex
}
