package quiz

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/bashlore/bashlore/internal/analyzer"
	"github.com/bashlore/bashlore/internal/knowledge"
)

// candidate is one command eligible for question generation: a session
// command (preferred) or a knowledge-base fill.
type candidate struct {
	base        string
	text        string
	complexity  int
	frequency   int
	fromSession bool
}

// Generate builds a quiz set from the analyzed commands, filling from
// unused knowledge-base commands when the session alone cannot satisfy
// the request. It returns an error only for a negative count; an
// insufficient pool is reported through Set.Shortfall and Set.Warnings.
func Generate(cmds []analyzer.Command, lookup knowledge.Lookup, opts Options) (*Set, error) {
	if opts.Count < 0 {
		return nil, ErrNegativeCount
	}
	count := opts.Count
	if count == 0 {
		count = DefaultCount
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	g := &generator{
		lookup: lookup,
		rng:    rng,
		pool:   buildPool(cmds, lookup),
		used:   make(map[string]map[Type]bool),
	}
	g.indexEntries()

	set := &Set{Requested: count}

	weights := make([]int, len(allTypes))
	for i, t := range allTypes {
		weights[i] = typeWeights[t]
	}
	quotas := largestRemainder(count, weights)

	exhausted := make(map[Type]bool)
	for i, t := range allTypes {
		made := g.fill(t, quotas[i], &set.Questions)
		if made < quotas[i] {
			exhausted[t] = true
		}
	}

	// Redistribute unmet quota over the types that still have pool left.
	for len(set.Questions) < count {
		var open []Type
		var openWeights []int
		for _, t := range allTypes {
			if !exhausted[t] {
				open = append(open, t)
				openWeights = append(openWeights, typeWeights[t])
			}
		}
		if len(open) == 0 {
			break
		}
		extra := largestRemainder(count-len(set.Questions), openWeights)
		progress := 0
		for i, t := range open {
			made := g.fill(t, extra[i], &set.Questions)
			progress += made
			if made < extra[i] {
				exhausted[t] = true
			}
		}
		if progress == 0 {
			break
		}
	}

	if len(set.Questions) < count {
		set.Shortfall = count - len(set.Questions)
		set.Warnings = append(set.Warnings, fmt.Sprintf(
			"question pool exhausted: produced %d of %d requested questions",
			len(set.Questions), count))
	}

	rng.Shuffle(len(set.Questions), func(i, j int) {
		set.Questions[i], set.Questions[j] = set.Questions[j], set.Questions[i]
	})
	return set, nil
}

type generator struct {
	lookup knowledge.Lookup
	rng    *rand.Rand
	pool   []candidate
	used   map[string]map[Type]bool

	// entryNames is the sorted name list; descByOther caches, per
	// category, the descriptions of entries outside that category.
	entryNames  []string
	descByOther map[string][]string
}

// buildPool orders candidates: session commands by descending
// frequency (name ascending on ties), then knowledge-base commands not
// observed in the session, sorted by name.
func buildPool(cmds []analyzer.Command, lookup knowledge.Lookup) []candidate {
	byBase := make(map[string]*candidate)
	var session []*candidate
	for _, c := range cmds {
		if cur, ok := byBase[c.Base]; ok {
			cur.frequency += c.Frequency
			continue
		}
		cand := &candidate{
			base:        c.Base,
			text:        c.FirstSeen,
			complexity:  c.Complexity,
			frequency:   c.Frequency,
			fromSession: true,
		}
		byBase[c.Base] = cand
		session = append(session, cand)
	}
	sort.SliceStable(session, func(i, j int) bool {
		if session[i].frequency != session[j].frequency {
			return session[i].frequency > session[j].frequency
		}
		return session[i].base < session[j].base
	})

	var pool []candidate
	for _, c := range session {
		pool = append(pool, *c)
	}
	for _, name := range lookup.Names() {
		if _, ok := byBase[name]; ok {
			continue
		}
		e, _ := lookup.Get(name)
		text := name
		if len(e.Patterns) > 0 {
			text = e.Patterns[0]
		}
		pool = append(pool, candidate{base: name, text: text, complexity: 2})
	}
	return pool
}

func (g *generator) indexEntries() {
	g.entryNames = g.lookup.Names()
	g.descByOther = make(map[string][]string)
}

// otherCategoryDescs returns the descriptions of all entries whose
// category differs from cat, in sorted-name order.
func (g *generator) otherCategoryDescs(cat string) []string {
	if d, ok := g.descByOther[cat]; ok {
		return d
	}
	var out []string
	for _, name := range g.entryNames {
		e, _ := g.lookup.Get(name)
		if e.Category != cat && e.Description != "" {
			out = append(out, e.Description)
		}
	}
	g.descByOther[cat] = out
	return out
}

// fill appends up to quota questions of type t, walking the candidate
// pool in order, and returns how many it made.
func (g *generator) fill(t Type, quota int, out *[]Question) int {
	made := 0
	for i := range g.pool {
		if made >= quota {
			break
		}
		cand := &g.pool[i]
		if g.used[cand.base][t] {
			continue
		}
		q, ok := g.build(t, cand)
		if !ok {
			continue
		}
		if g.used[cand.base] == nil {
			g.used[cand.base] = make(map[Type]bool)
		}
		g.used[cand.base][t] = true
		*out = append(*out, q)
		made++
	}
	return made
}

func (g *generator) build(t Type, cand *candidate) (Question, bool) {
	switch t {
	case WhatDoesThisDo:
		return g.buildWhatDoes(cand)
	case WhichFlag:
		return g.buildWhichFlag(cand)
	case BuildCommand:
		return g.buildBuildCommand(cand)
	case SpotDifference:
		return g.buildSpotDifference(cand)
	}
	return Question{}, false
}

// finalize shuffles the answer in among the distractors and stamps the
// content-hash ID. Distractors must already be deduplicated and
// distinct from answer.
func (g *generator) finalize(q Question, answer string, distractors []string) Question {
	options := append([]string{answer}, distractors...)
	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	q.Options = options
	for i, o := range options {
		if o == answer {
			q.CorrectIndex = i
			break
		}
	}
	q.ID = questionID(q.Type, q.Prompt, answer)
	return q
}

func questionID(t Type, prompt, answer string) string {
	sum := md5.Sum([]byte(t.String() + "|" + prompt + "|" + answer))
	return hex.EncodeToString(sum[:])[:8]
}

// pickDistinct shuffles a copy of candidates and takes up to n values,
// skipping duplicates and any value equal to exclude.
func (g *generator) pickDistinct(candidates []string, exclude string, n int) []string {
	shuffled := make([]string, len(candidates))
	copy(shuffled, candidates)
	g.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	var out []string
	seen := map[string]bool{exclude: true}
	for _, c := range shuffled {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
		if len(out) == n {
			break
		}
	}
	return out
}

// sortedFlags returns an entry's flags in deterministic order.
func sortedFlags(e knowledge.Entry) []string {
	flags := make([]string, 0, len(e.Flags))
	for f := range e.Flags {
		flags = append(flags, f)
	}
	sort.Strings(flags)
	return flags
}

// parseShape splits a command string into base, flags, and args the
// simple way the question builders need.
func parseShape(text string) (base string, flags, args []string) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return "", nil, nil
	}
	base = fields[0]
	for _, f := range fields[1:] {
		if len(f) > 1 && f[0] == '-' {
			flags = append(flags, f)
		} else {
			args = append(args, f)
		}
	}
	return base, flags, args
}
