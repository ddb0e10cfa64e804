package quiz

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/bashlore/bashlore/internal/knowledge"
)

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

func clampDifficulty(d int) int {
	if d < 1 {
		return 1
	}
	if d > 5 {
		return 5
	}
	return d
}

func (g *generator) buildWhatDoes(cand *candidate) (Question, bool) {
	e, ok := g.lookup.Get(cand.base)
	if !ok || e.Description == "" {
		return Question{}, false
	}
	answer := e.Description

	// Descriptions from other categories avoid plausible near-misses
	// from commands that do similar work.
	distractors := g.pickDistinct(g.otherCategoryDescs(e.Category), answer, 3)
	if len(distractors) < 3 {
		return Question{}, false
	}

	q := Question{
		Type:        WhatDoesThisDo,
		Prompt:      fmt.Sprintf("What does this command do?\n\n    %s", cand.text),
		Command:     cand.base,
		Explanation: fmt.Sprintf("`%s` %s.", cand.base, lowerFirst(answer)),
		Difficulty:  clampDifficulty(cand.complexity),
	}
	return g.finalize(q, answer, distractors), true
}

func (g *generator) buildWhichFlag(cand *candidate) (Question, bool) {
	e, ok := g.lookup.Get(cand.base)
	if !ok || len(e.Flags) == 0 {
		return Question{}, false
	}
	flags := sortedFlags(e)
	target := flags[g.rng.Intn(len(flags))]
	desc := e.Flags[target]

	// Prefer the command's own flags; widen to same-category flags,
	// then everything, until three distractors exist.
	var pool []string
	for _, f := range flags {
		if f != target {
			pool = append(pool, f)
		}
	}
	if len(pool) < 3 {
		pool = append(pool, g.flagsFromCommands(g.lookup.InCategory(e.Category), cand.base)...)
	}
	if len(pool) < 3 {
		pool = append(pool, g.flagsFromCommands(g.entryNames, cand.base)...)
	}
	distractors := g.pickDistinct(pool, target, 3)
	if len(distractors) < 3 {
		return Question{}, false
	}

	q := Question{
		Type:        WhichFlag,
		Prompt:      fmt.Sprintf("You want to %s when using `%s`. Which flag should you use?", lowerFirst(desc), cand.base),
		Command:     cand.base,
		Explanation: fmt.Sprintf("`%s %s` is used to %s.", cand.base, target, lowerFirst(desc)),
		Difficulty:  2,
	}
	return g.finalize(q, target, distractors), true
}

// flagsFromCommands gathers the flags of the named commands, skipping
// one command, in deterministic order.
func (g *generator) flagsFromCommands(names []string, skip string) []string {
	var out []string
	for _, name := range names {
		if name == skip {
			continue
		}
		e, ok := g.lookup.Get(name)
		if !ok {
			continue
		}
		out = append(out, sortedFlags(e)...)
	}
	return out
}

func (g *generator) buildBuildCommand(cand *candidate) (Question, bool) {
	e, ok := g.lookup.Get(cand.base)
	if !ok || e.Description == "" {
		return Question{}, false
	}
	correct := strings.Join(strings.Fields(cand.text), " ")
	base, flags, args := parseShape(correct)
	if base == "" || len(flags)+len(args) == 0 {
		return Question{}, false
	}

	var mutations []string

	// Wrong order.
	parts := strings.Fields(correct)
	if len(parts) > 2 {
		shuffled := make([]string, len(parts))
		copy(shuffled, parts)
		g.rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		mutations = append(mutations, strings.Join(shuffled, " "))
	}

	// Missing flag.
	if len(flags) > 0 {
		mutations = append(mutations, joinShape(base, flags[:len(flags)-1], args))
	}

	// Wrong flag: substitute a flag the command has but the correct
	// answer doesn't use.
	if len(flags) > 0 {
		if unused := g.unusedFlags(e, flags); len(unused) > 0 {
			swapped := make([]string, len(flags))
			copy(swapped, flags)
			swapped[0] = unused[g.rng.Intn(len(unused))]
			mutations = append(mutations, joinShape(base, swapped, args))
		}
	}

	// Related command from the same category.
	var related []string
	for _, name := range g.lookup.InCategory(e.Category) {
		if name != cand.base {
			related = append(related, name)
		}
	}
	if len(related) > 0 {
		other := related[g.rng.Intn(len(related))]
		mutations = append(mutations, joinShape(other, flags, args))
	}

	distractors := dedupe(mutations, correct)
	if len(distractors) < 3 {
		return Question{}, false
	}
	distractors = distractors[:3]

	q := Question{
		Type:        BuildCommand,
		Prompt:      fmt.Sprintf("You want to %s. Which command is correct?", lowerFirst(e.Description)),
		Command:     cand.base,
		Explanation: fmt.Sprintf("The correct command is `%s`.", correct),
		Difficulty:  3,
	}
	return g.finalize(q, correct, distractors), true
}

func (g *generator) unusedFlags(e knowledge.Entry, used []string) []string {
	inUse := make(map[string]bool, len(used))
	for _, f := range used {
		inUse[f] = true
	}
	var out []string
	for _, f := range sortedFlags(e) {
		if !inUse[f] {
			out = append(out, f)
		}
	}
	return out
}

// spotDiffDecoys are deliberately wrong analyses; the real difference
// statement names concrete flags, these never do.
var spotDiffDecoys = []string{
	"Both commands do exactly the same thing",
	"The first command runs faster than the second",
	"The second command is deprecated in favor of the first",
	"The first command modifies files, the second only reads them",
	"The second command requires root permissions, the first does not",
}

func (g *generator) buildSpotDifference(cand *candidate) (Question, bool) {
	e, ok := g.lookup.Get(cand.base)
	if !ok || len(e.Flags) == 0 {
		return Question{}, false
	}
	cmd1 := strings.Join(strings.Fields(cand.text), " ")
	base, flags1, args := parseShape(cmd1)
	if base == "" {
		return Question{}, false
	}

	inUse := make(map[string]bool, len(flags1))
	for _, f := range flags1 {
		inUse[f] = true
	}
	var available []string
	for _, f := range sortedFlags(e) {
		if !inUse[f] {
			available = append(available, f)
		}
	}

	// Variant strategies, in fixed order so the rng draw is stable.
	var strategies []string
	if len(available) > 0 {
		strategies = append(strategies, "add")
	}
	if len(flags1) > 0 {
		strategies = append(strategies, "remove")
	}
	if len(flags1) > 0 && len(available) > 0 {
		strategies = append(strategies, "change")
	}
	if len(strategies) == 0 {
		return Question{}, false
	}

	flags2 := make([]string, len(flags1))
	copy(flags2, flags1)
	switch strategies[g.rng.Intn(len(strategies))] {
	case "add":
		flags2 = append(flags2, available[g.rng.Intn(len(available))])
	case "remove":
		i := g.rng.Intn(len(flags2))
		flags2 = append(flags2[:i], flags2[i+1:]...)
	case "change":
		flags2[g.rng.Intn(len(flags2))] = available[g.rng.Intn(len(available))]
	}
	cmd2 := joinShape(base, flags2, args)
	if cmd2 == cmd1 {
		return Question{}, false
	}

	answer := diffStatement(e, flags1, flags2)
	distractors := g.pickDistinct(spotDiffDecoys, answer, 3)
	if len(distractors) < 3 {
		return Question{}, false
	}

	q := Question{
		Type: SpotDifference,
		Prompt: fmt.Sprintf("What is the key difference between these two commands?\n\n    1) %s\n    2) %s",
			cmd1, cmd2),
		Command:     cand.base,
		Explanation: fmt.Sprintf("The key difference: %s.", lowerFirst(answer)),
		Difficulty:  4,
	}
	return g.finalize(q, answer, distractors), true
}

// diffStatement describes how the two flag sets differ, naming each
// differing flag with its meaning.
func diffStatement(e knowledge.Entry, flags1, flags2 []string) string {
	set1 := make(map[string]bool, len(flags1))
	for _, f := range flags1 {
		set1[f] = true
	}
	set2 := make(map[string]bool, len(flags2))
	for _, f := range flags2 {
		set2[f] = true
	}
	var parts []string
	for _, f := range sortedUnion(flags1, flags2) {
		desc := e.Flags[f]
		if desc == "" {
			desc = "no documented meaning"
		}
		switch {
		case set1[f] && !set2[f]:
			parts = append(parts, fmt.Sprintf("only the first uses `%s` (%s)", f, lowerFirst(desc)))
		case !set1[f] && set2[f]:
			parts = append(parts, fmt.Sprintf("only the second uses `%s` (%s)", f, lowerFirst(desc)))
		}
	}
	if len(parts) == 0 {
		return "The commands take different arguments"
	}
	return strings.Join(parts, "; ")
}

func sortedUnion(a, b []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range append(append([]string{}, a...), b...) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

func joinShape(base string, flags, args []string) string {
	parts := append([]string{base}, flags...)
	parts = append(parts, args...)
	return strings.Join(parts, " ")
}

// dedupe drops duplicates and any value equal to correct, preserving
// first-seen order.
func dedupe(values []string, correct string) []string {
	seen := map[string]bool{correct: true}
	var out []string
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
