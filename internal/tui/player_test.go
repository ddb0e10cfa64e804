package tui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/bashlore/bashlore/internal/quiz"
)

func testSet() *quiz.Set {
	return &quiz.Set{
		Requested: 2,
		Questions: []quiz.Question{
			{
				ID: "q1", Type: quiz.WhichFlag, Command: "grep",
				Prompt:       "Which flag makes grep case-insensitive?",
				Options:      []string{"-v", "-i", "-n", "-c"},
				CorrectIndex: 1, Difficulty: 2,
			},
			{
				ID: "q2", Type: quiz.WhatDoesThisDo, Command: "tar",
				Prompt:       "What does this command do?",
				Options:      []string{"w", "x", "y", "z"},
				CorrectIndex: 0, Difficulty: 3,
			},
		},
	}
}

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code, Text: string(code)}
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func TestPlayerAnswerFlow(t *testing.T) {
	p := NewPlayer(testSet())

	// Move to option B and answer the first question correctly.
	p.Update(key('j'))
	p.Update(enter())
	if len(p.Answers()) != 1 || !p.Answers()[0].Correct {
		t.Fatalf("answers = %+v", p.Answers())
	}
	if p.Score() != 1 {
		t.Errorf("score = %d", p.Score())
	}

	// Advance and answer the second question wrong.
	p.Update(enter())
	p.Update(key('j'))
	p.Update(enter())
	if len(p.Answers()) != 2 {
		t.Fatalf("answers = %+v", p.Answers())
	}
	if p.Answers()[1].Correct {
		t.Error("second answer should be wrong")
	}

	// Advancing past the last question finishes the run.
	p.Update(enter())
	if !p.done {
		t.Error("player not done after last question")
	}
	if p.Aborted() {
		t.Error("completed run reported as aborted")
	}
	if p.Score() != 1 {
		t.Errorf("final score = %d", p.Score())
	}
}

func TestPlayerLetterSelection(t *testing.T) {
	p := NewPlayer(testSet())
	p.Update(key('d'))
	p.Update(enter())
	a := p.Answers()
	if len(a) != 1 || a[0].ChosenIndex != 3 || a[0].Correct {
		t.Errorf("answers = %+v", a)
	}
}

func TestPlayerQuitMidRunAborts(t *testing.T) {
	p := NewPlayer(testSet())
	_, cmd := p.Update(key('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if !p.Aborted() {
		t.Error("mid-run quit not marked aborted")
	}
}

func TestPlayerEmptySet(t *testing.T) {
	p := NewPlayer(&quiz.Set{})
	if !p.done {
		t.Error("empty set should start done")
	}
	if !strings.Contains(p.scoreView(), "Nothing to play") {
		t.Errorf("score view = %q", p.scoreView())
	}
}

func TestScoreViewTiers(t *testing.T) {
	p := NewPlayer(testSet())
	p.score = 2
	p.done = true
	if !strings.Contains(p.scoreView(), "2 / 2") {
		t.Errorf("score view = %q", p.scoreView())
	}
	if !strings.Contains(p.scoreView(), "Flawless") {
		t.Errorf("perfect score message missing: %q", p.scoreView())
	}
}
