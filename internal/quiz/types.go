// Package quiz generates multiple-choice questions from analyzed
// commands and the knowledge lookup. Generation is fully deterministic:
// the same commands, lookup, and seed always produce the same set.
package quiz

import "errors"

// Type is the kind of question.
type Type int

const (
	WhatDoesThisDo Type = iota
	WhichFlag
	BuildCommand
	SpotDifference
)

func (t Type) String() string {
	switch t {
	case WhatDoesThisDo:
		return "what_does_this_do"
	case WhichFlag:
		return "which_flag"
	case BuildCommand:
		return "build_command"
	case SpotDifference:
		return "spot_the_difference"
	default:
		return "unknown"
	}
}

// allTypes fixes the generation order; it is part of the deterministic
// behavior, as is the weight of each type.
var allTypes = [...]Type{WhatDoesThisDo, WhichFlag, BuildCommand, SpotDifference}

var typeWeights = map[Type]int{
	WhatDoesThisDo: 40,
	WhichFlag:      25,
	BuildCommand:   20,
	SpotDifference: 15,
}

// Question is one multiple-choice question. Options holds the correct
// answer and three distractors in presentation order.
type Question struct {
	ID           string
	Type         Type
	Prompt       string
	Command      string
	Options      []string
	CorrectIndex int
	Explanation  string
	Difficulty   int
}

// Answer returns the correct option text.
func (q Question) Answer() string { return q.Options[q.CorrectIndex] }

// Set is a generated quiz.
type Set struct {
	Questions []Question
	// Requested is the question count asked for.
	Requested int
	// Shortfall is how many questions short of Requested the set is,
	// zero when the request was fully satisfied.
	Shortfall int
	Warnings  []string
}

// Options configures generation.
type Options struct {
	// Count is the desired question count; zero means DefaultCount.
	Count int
	// Seed feeds the single random source used for every shuffle and
	// choice during generation.
	Seed int64
}

// DefaultCount is the question count used when Options.Count is zero.
const DefaultCount = 20

// ErrNegativeCount reports a programmer error; it is the only error
// Generate can return.
var ErrNegativeCount = errors.New("quiz: negative question count")

// largestRemainder splits total into len(weights) integer shares
// proportional to weights, summing exactly to total. Ties in the
// fractional remainders break toward earlier entries.
func largestRemainder(total int, weights []int) []int {
	sum := 0
	for _, w := range weights {
		sum += w
	}
	out := make([]int, len(weights))
	if sum == 0 || total <= 0 {
		return out
	}
	type frac struct {
		idx int
		rem int
	}
	fracs := make([]frac, len(weights))
	given := 0
	for i, w := range weights {
		out[i] = total * w / sum
		given += out[i]
		fracs[i] = frac{idx: i, rem: total*w%sum}
	}
	// Stable sort by remainder descending; equal remainders keep the
	// earlier index first.
	for i := 1; i < len(fracs); i++ {
		for j := i; j > 0 && fracs[j].rem > fracs[j-1].rem; j-- {
			fracs[j], fracs[j-1] = fracs[j-1], fracs[j]
		}
	}
	for i := 0; given < total; i++ {
		out[fracs[i%len(fracs)].idx]++
		given++
	}
	return out
}
