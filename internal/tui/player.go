// Package tui is the interactive quiz player. It presents one question
// at a time, gives immediate feedback, and collects the answers so the
// caller can persist them after the program exits.
package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/progress"
	tea "charm.land/bubbletea/v2"

	"github.com/bashlore/bashlore/internal/quiz"
)

// Answer is one recorded response, in question order.
type Answer struct {
	QuestionID  string
	Type        quiz.Type
	Command     string
	ChosenIndex int
	Correct     bool
}

// Player is the Bubble Tea model for one quiz run.
type Player struct {
	set    *quiz.Set
	index  int
	choice multiChoice
	bar    progress.Model

	score   int
	answers []Answer
	done    bool
	aborted bool

	width  int
	height int
}

// NewPlayer creates a player for a non-empty quiz set.
func NewPlayer(set *quiz.Set) *Player {
	p := &Player{
		set: set,
		bar: progress.New(progress.WithDefaultBlend()),
	}
	if len(set.Questions) > 0 {
		p.choice = newMultiChoice(set.Questions[0].Options, set.Questions[0].CorrectIndex)
	} else {
		p.done = true
	}
	return p
}

// Answers returns the responses recorded so far.
func (p *Player) Answers() []Answer { return p.answers }

// Score returns the number of correct answers.
func (p *Player) Score() int { return p.score }

// Aborted reports whether the player quit before the last question.
func (p *Player) Aborted() bool { return p.aborted }

func (p *Player) Init() tea.Cmd {
	return nil
}

func (p *Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		return p, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if !p.done {
				p.aborted = true
			}
			return p, tea.Quit
		}
		if p.done {
			if msg.String() == "enter" {
				return p, tea.Quit
			}
			return p, nil
		}

		wasSubmitted := p.choice.Submitted
		p.choice = p.choice.Update(msg)

		if !wasSubmitted && p.choice.Submitted {
			q := p.set.Questions[p.index]
			correct := p.choice.IsCorrect()
			if correct {
				p.score++
			}
			p.answers = append(p.answers, Answer{
				QuestionID:  q.ID,
				Type:        q.Type,
				Command:     q.Command,
				ChosenIndex: p.choice.ChosenIndex,
				Correct:     correct,
			})
			return p, nil
		}

		if wasSubmitted && msg.String() == "enter" {
			p.index++
			if p.index >= len(p.set.Questions) {
				p.done = true
				return p, nil
			}
			q := p.set.Questions[p.index]
			p.choice = newMultiChoice(q.Options, q.CorrectIndex)
		}
	}
	return p, nil
}

func (p *Player) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if p.done {
		v.SetContent(p.scoreView())
		return v
	}

	q := p.set.Questions[p.index]
	var b strings.Builder

	b.WriteString(titleStyle.Render("bashlore quiz"))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render(fmt.Sprintf("Question %d of %d · %s · difficulty %d/5",
		p.index+1, len(p.set.Questions), q.Type, q.Difficulty)))
	b.WriteString("\n")
	b.WriteString(p.bar.ViewAs(float64(p.index) / float64(len(p.set.Questions))))
	b.WriteString("\n\n")

	b.WriteString(promptStyle.Render(q.Prompt))
	b.WriteString("\n\n")
	b.WriteString(p.choice.View())

	if p.choice.Submitted {
		b.WriteString("\n")
		if p.choice.IsCorrect() {
			b.WriteString(feedbackGood.Render("Correct!"))
		} else {
			b.WriteString(feedbackBad.Render("Not quite."))
		}
		b.WriteString("\n")
		b.WriteString(explainStyle.Render(q.Explanation))
		b.WriteString("\n\n")
		b.WriteString(hintStyle.Render("Enter to continue · q to quit"))
	} else {
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("↑↓ or a-d to choose · Enter to answer · q to quit"))
	}

	v.SetContent(cardStyle.Render(b.String()))
	return v
}

func (p *Player) scoreView() string {
	total := len(p.set.Questions)
	var b strings.Builder
	b.WriteString(titleStyle.Render("Quiz complete"))
	b.WriteString("\n\n")
	b.WriteString(scoreStyle.Render(fmt.Sprintf("%d / %d correct", p.score, total)))
	b.WriteString("\n\n")
	switch {
	case total == 0:
		b.WriteString(hintStyle.Render("Nothing to play."))
	case p.score == total:
		b.WriteString("Flawless. Time for harder commands.")
	case p.score*2 >= total:
		b.WriteString("Solid. Check the commands you missed.")
	default:
		b.WriteString("Rough set. Re-read the report and try again.")
	}
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("Enter or q to exit"))
	return cardStyle.Render(b.String())
}

// Run plays the quiz set in the terminal and returns the finished
// player for result persistence.
func Run(set *quiz.Set) (*Player, error) {
	p := NewPlayer(set)
	if _, err := tea.NewProgram(p).Run(); err != nil {
		return nil, fmt.Errorf("run quiz ui: %w", err)
	}
	return p, nil
}
