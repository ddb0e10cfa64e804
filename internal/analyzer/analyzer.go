// Package analyzer categorizes and scores atomic commands and
// aggregates them by normalized text. It holds no I/O and no clock;
// feed it atoms, then read the result.
package analyzer

import (
	"strings"

	"github.com/bashlore/bashlore/internal/knowledge"
	"github.com/bashlore/bashlore/internal/shellsplit"
)

// Command is one analyzed, aggregated command.
type Command struct {
	// Base is the command name after stripping leading assignments.
	Base string
	// Normalized is the whitespace-collapsed aggregation key.
	Normalized string
	// FirstSeen is the literal text of the first occurrence.
	FirstSeen string
	Category  string
	// Complexity is the highest 1..5 score across occurrences. Taking
	// the max keeps the score independent of ingestion order when the
	// same text appears both alone and inside a pipeline.
	Complexity int
	// Frequency counts every occurrence across all ingested atoms.
	Frequency int
}

// Analyzer accumulates analyzed commands across many compound commands.
// Not safe for concurrent use; analyze sequentially, share the result.
type Analyzer struct {
	lookup   knowledge.Lookup
	byKey    map[string]*Command
	order    []string
	total    int
	warnings []string
}

// New returns an Analyzer that categorizes against the given lookup.
func New(lookup knowledge.Lookup) *Analyzer {
	return &Analyzer{
		lookup: lookup,
		byKey:  make(map[string]*Command),
	}
}

// Ingest consumes the atoms of one compound command. Pipeline
// membership is derived from neighboring atoms, so a compound command's
// atoms must arrive in a single call.
func (a *Analyzer) Ingest(atoms []shellsplit.Atom) {
	for i, atom := range atoms {
		inPipeline := atom.Op == shellsplit.OpPipe ||
			(i+1 < len(atoms) && atoms[i+1].Op == shellsplit.OpPipe)
		a.ingestOne(atom.Text, inPipeline)
	}
}

func (a *Analyzer) ingestOne(text string, inPipeline bool) {
	normalized := strings.Join(strings.Fields(text), " ")
	if normalized == "" {
		return
	}
	a.total++

	f := extractFeatures(text)
	f.inPipeline = inPipeline

	if c, ok := a.byKey[normalized]; ok {
		c.Frequency++
		if s := score(f); s > c.Complexity {
			c.Complexity = s
		}
		return
	}

	base := f.base
	category, ok := a.lookup.CategoryOf(base)
	if !ok {
		category = fallbackCategory(base)
		if category == knowledge.CategoryUncategorized {
			a.warnings = append(a.warnings, "unknown command: "+base)
		}
	}

	c := &Command{
		Base:       base,
		Normalized: normalized,
		FirstSeen:  text,
		Category:   category,
		Complexity: score(f),
		Frequency:  1,
	}
	a.byKey[normalized] = c
	a.order = append(a.order, normalized)
}

// Result returns the analyzed commands in first-seen order.
func (a *Analyzer) Result() []Command {
	out := make([]Command, 0, len(a.order))
	for _, key := range a.order {
		out = append(out, *a.byKey[key])
	}
	return out
}

// Total is the number of atom occurrences ingested, duplicates included.
func (a *Analyzer) Total() int { return a.total }

// Warnings lists the commands that fell through to Uncategorized.
func (a *Analyzer) Warnings() []string {
	out := make([]string, len(a.warnings))
	copy(out, a.warnings)
	return out
}

// shellWords is the fixed operator/builtin set used by the second
// fallback rule. It covers control keywords and builtins that have no
// knowledge entry of their own.
var shellWords = map[string]bool{
	"if": true, "then": true, "else": true, "elif": true, "fi": true,
	"for": true, "while": true, "until": true, "do": true, "done": true,
	"case": true, "esac": true, "in": true, "function": true,
	"!": true, "[": true, "[[": true, "test": true, "time": true,
	"exit": true, "return": true, "break": true, "continue": true,
	"shift": true, "wait": true, "trap": true, "eval": true, "exec": true,
	"set": true, "unset": true, "local": true, "declare": true,
	"readonly": true, ":": true, "true": true, "false": true,
}

// fallbackCategory applies the heuristic rules in order; the first
// match wins. Order matters and is part of the behavior.
func fallbackCategory(base string) string {
	switch {
	case strings.Contains(base, "/") || strings.HasPrefix(base, "./") || strings.HasPrefix(base, "~/"):
		return knowledge.CategoryFileSystem
	case shellWords[base]:
		return knowledge.CategoryShellBuiltins
	default:
		return knowledge.CategoryUncategorized
	}
}
