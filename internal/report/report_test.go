package report

import (
	"strings"
	"testing"
	"time"

	"github.com/bashlore/bashlore/internal/analyzer"
	"github.com/bashlore/bashlore/internal/knowledge"
	"github.com/bashlore/bashlore/internal/quiz"
	"github.com/bashlore/bashlore/internal/shellsplit"
)

func testData(t *testing.T) Data {
	t.Helper()
	a := analyzer.New(knowledge.Base())
	for _, c := range []string{"git status", "git status", "ls -la | wc -l", "frobnicate"} {
		a.Ingest(shellsplit.Split(c).Atoms)
	}
	set, err := quiz.Generate(a.Result(), knowledge.Base(), quiz.Options{Count: 5, Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	return Data{
		GeneratedAt:      time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		SessionCount:     2,
		Seed:             1,
		TotalOccurrences: a.Total(),
		Commands:         a.Result(),
		Quiz:             set,
		Warnings:         a.Warnings(),
	}
}

func TestCategoriesGroupedInLearningOrder(t *testing.T) {
	d := testData(t)
	groups := d.Categories()
	if len(groups) == 0 {
		t.Fatal("no groups")
	}
	last := groups[len(groups)-1]
	if last.Name != knowledge.CategoryUncategorized {
		t.Errorf("Uncategorized not last: %v", last.Name)
	}
	order := map[string]int{}
	for i, name := range append(knowledge.CategoryNames(), knowledge.CategoryUncategorized) {
		order[name] = i
	}
	for i := 1; i < len(groups); i++ {
		if order[groups[i-1].Name] > order[groups[i].Name] {
			t.Errorf("groups out of learning order: %s before %s", groups[i-1].Name, groups[i].Name)
		}
	}
}

func TestComplexityHistogramCountsOccurrences(t *testing.T) {
	d := testData(t)
	h := d.ComplexityHistogram()
	total := 0
	for _, n := range h {
		total += n
	}
	if total != d.TotalOccurrences {
		t.Errorf("histogram total %d, want %d", total, d.TotalOccurrences)
	}
}

func TestWriteHTML(t *testing.T) {
	d := testData(t)
	var sb strings.Builder
	if err := WriteHTML(&sb, d); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	for _, want := range []string{"<!DOCTYPE html>", "git status", "Git", "Quiz", "Uncategorized"} {
		if !strings.Contains(out, want) {
			t.Errorf("html missing %q", want)
		}
	}
}

func TestWriteHTMLEscapesCommandText(t *testing.T) {
	d := Data{
		GeneratedAt: time.Now(),
		Commands: []analyzer.Command{{
			Base: "echo", Normalized: `echo "<script>alert(1)</script>"`,
			FirstSeen: `echo "<script>alert(1)</script>"`,
			Category:  knowledge.CategoryShellBuiltins, Complexity: 1, Frequency: 1,
		}},
		TotalOccurrences: 1,
	}
	var sb strings.Builder
	if err := WriteHTML(&sb, d); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(sb.String(), "<script>alert(1)</script>") {
		t.Error("command text not escaped")
	}
}

func TestSummary(t *testing.T) {
	d := testData(t)
	out := Summary(d)
	for _, want := range []string{"Shell learning summary", "By category", "Top commands", "git status", "seed 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q", want)
		}
	}

	empty := Summary(Data{})
	if !strings.Contains(empty, "No commands found") {
		t.Errorf("empty summary = %q", empty)
	}
}
