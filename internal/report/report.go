// Package report renders analysis results: an HTML learning report and
// a styled terminal summary. It consumes the analyzer and quiz outputs
// and owns no pipeline logic of its own.
package report

import (
	"sort"
	"time"

	"github.com/bashlore/bashlore/internal/analyzer"
	"github.com/bashlore/bashlore/internal/knowledge"
	"github.com/bashlore/bashlore/internal/quiz"
)

// Data is everything a renderer needs for one analysis run.
type Data struct {
	GeneratedAt  time.Time
	SessionCount int
	// Seed is the quiz generation seed, kept for reproducibility.
	Seed int64
	// TotalOccurrences counts every command occurrence, duplicates
	// included; len(Commands) is the distinct count.
	TotalOccurrences int
	Commands         []analyzer.Command
	Quiz             *quiz.Set
	Warnings         []string
}

// CategoryGroup is the commands of one category, most frequent first.
type CategoryGroup struct {
	Name        string
	Description string
	Commands    []analyzer.Command
}

// Categories groups the commands by category in learning order, with
// Uncategorized last. Empty categories are omitted.
func (d Data) Categories() []CategoryGroup {
	byCat := make(map[string][]analyzer.Command)
	for _, c := range d.Commands {
		byCat[c.Category] = append(byCat[c.Category], c)
	}
	names := append(knowledge.CategoryNames(), knowledge.CategoryUncategorized)
	var groups []CategoryGroup
	for _, name := range names {
		cmds := byCat[name]
		if len(cmds) == 0 {
			continue
		}
		sort.SliceStable(cmds, func(i, j int) bool {
			if cmds[i].Frequency != cmds[j].Frequency {
				return cmds[i].Frequency > cmds[j].Frequency
			}
			return cmds[i].Normalized < cmds[j].Normalized
		})
		groups = append(groups, CategoryGroup{
			Name:        name,
			Description: knowledge.Describe(name),
			Commands:    cmds,
		})
	}
	return groups
}

// ComplexityHistogram returns occurrence counts per complexity 1..5.
func (d Data) ComplexityHistogram() [5]int {
	var h [5]int
	for _, c := range d.Commands {
		if c.Complexity >= 1 && c.Complexity <= 5 {
			h[c.Complexity-1] += c.Frequency
		}
	}
	return h
}

// TopCommands returns up to n commands by descending frequency.
func (d Data) TopCommands(n int) []analyzer.Command {
	cmds := make([]analyzer.Command, len(d.Commands))
	copy(cmds, d.Commands)
	sort.SliceStable(cmds, func(i, j int) bool {
		if cmds[i].Frequency != cmds[j].Frequency {
			return cmds[i].Frequency > cmds[j].Frequency
		}
		return cmds[i].Normalized < cmds[j].Normalized
	})
	if len(cmds) > n {
		cmds = cmds[:n]
	}
	return cmds
}
