package analyzer

import (
	"testing"

	"github.com/bashlore/bashlore/internal/knowledge"
	"github.com/bashlore/bashlore/internal/shellsplit"
)

func analyze(t *testing.T, commands ...string) []Command {
	t.Helper()
	a := New(knowledge.Base())
	for _, c := range commands {
		a.Ingest(shellsplit.Split(c).Atoms)
	}
	return a.Result()
}

func TestCategorizeKnownCommand(t *testing.T) {
	got := analyze(t, "grep -rn TODO src/")
	if len(got) != 1 {
		t.Fatalf("got %d commands", len(got))
	}
	if got[0].Base != "grep" {
		t.Errorf("base = %q", got[0].Base)
	}
	if got[0].Category != knowledge.CategoryTextProcessing {
		t.Errorf("category = %q", got[0].Category)
	}
}

func TestBaseStripsAssignments(t *testing.T) {
	got := analyze(t, "FOO=1 BAR=two git status")
	if got[0].Base != "git" {
		t.Errorf("base = %q, want git", got[0].Base)
	}
	if got[0].Category != knowledge.CategoryGit {
		t.Errorf("category = %q", got[0].Category)
	}
}

func TestFallbackOrder(t *testing.T) {
	cases := []struct {
		cmd  string
		want string
	}{
		{"./scripts/deploy.sh prod", knowledge.CategoryFileSystem},
		{"~/bin/tool", knowledge.CategoryFileSystem},
		{"/usr/local/bin/custom", knowledge.CategoryFileSystem},
		{"if true", knowledge.CategoryShellBuiltins},
		{"frobnicate --all", knowledge.CategoryUncategorized},
	}
	for _, c := range cases {
		got := analyze(t, c.cmd)
		if got[0].Category != c.want {
			t.Errorf("category of %q = %q, want %q", c.cmd, got[0].Category, c.want)
		}
	}
}

func TestUnknownCommandWarns(t *testing.T) {
	a := New(knowledge.Base())
	a.Ingest(shellsplit.Split("frobnicate now").Atoms)
	if len(a.Warnings()) != 1 {
		t.Errorf("warnings = %v, want one unknown-command warning", a.Warnings())
	}
}

func TestComplexityScoring(t *testing.T) {
	cases := []struct {
		cmd  string
		want int
	}{
		{"ls", 1},
		{"ls -l", 1},
		{"ls -l -a", 2},
		{"ls > out.txt", 2},
		{"echo $(date)", 2},
		{"ls -l -a -h > out.txt", 4},
		{"cp a b c d e f", 4},
		{"find . -type f -name '*.go' -size +1M -exec wc -l {} + > big.txt", 5},
	}
	for _, c := range cases {
		got := analyze(t, c.cmd)
		if got[0].Complexity != c.want {
			t.Errorf("complexity of %q = %d, want %d", c.cmd, got[0].Complexity, c.want)
		}
	}
}

func TestPipelineStageScoresHigher(t *testing.T) {
	got := analyze(t, "ps aux | grep node")
	if len(got) != 2 {
		t.Fatalf("got %d commands", len(got))
	}
	for _, c := range got {
		if c.Complexity < 2 {
			t.Errorf("%q complexity = %d, want >= 2 for pipeline stage", c.Normalized, c.Complexity)
		}
	}

	solo := analyze(t, "ps aux")
	if solo[0].Complexity >= got[0].Complexity && got[0].Complexity < 5 {
		t.Errorf("pipeline did not increase score: solo %d, piped %d", solo[0].Complexity, got[0].Complexity)
	}
}

func TestFrequencyAggregation(t *testing.T) {
	a := New(knowledge.Base())
	a.Ingest(shellsplit.Split("git status").Atoms)
	a.Ingest(shellsplit.Split("git  status").Atoms)
	a.Ingest(shellsplit.Split("git status && ls").Atoms)

	got := a.Result()
	if len(got) != 2 {
		t.Fatalf("got %d commands, want 2", len(got))
	}
	if got[0].Normalized != "git status" || got[0].Frequency != 3 {
		t.Errorf("got %+v, want git status x3", got[0])
	}
	if got[0].FirstSeen != "git status" {
		t.Errorf("FirstSeen = %q", got[0].FirstSeen)
	}
	if a.Total() != 4 {
		t.Errorf("Total = %d, want 4", a.Total())
	}
}

func TestReprocessingIdempotent(t *testing.T) {
	atoms := shellsplit.Split("ls -la | grep foo > out").Atoms

	a := New(knowledge.Base())
	a.Ingest(atoms)
	once := a.Result()
	a.Ingest(atoms)
	twice := a.Result()

	if len(once) != len(twice) {
		t.Fatalf("command count changed: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].Category != twice[i].Category || once[i].Complexity != twice[i].Complexity {
			t.Errorf("category/score changed on re-ingest: %+v vs %+v", once[i], twice[i])
		}
		if twice[i].Frequency != 2*once[i].Frequency {
			t.Errorf("frequency not additive: %+v vs %+v", once[i], twice[i])
		}
	}
}

func TestFirstSeenOrderPreserved(t *testing.T) {
	got := analyze(t, "cd /tmp", "ls", "cd /tmp", "pwd")
	want := []string{"cd /tmp", "ls", "pwd"}
	if len(got) != len(want) {
		t.Fatalf("got %d commands", len(got))
	}
	for i, w := range want {
		if got[i].Normalized != w {
			t.Errorf("order[%d] = %q, want %q", i, got[i].Normalized, w)
		}
	}
}

func TestEmptyInput(t *testing.T) {
	a := New(knowledge.Base())
	got := a.Result()
	if got == nil || len(got) != 0 {
		t.Errorf("empty result should be non-nil empty, got %#v", got)
	}
}

func TestComplexityIndependentOfIngestionOrder(t *testing.T) {
	find := func(cmds []Command, normalized string) Command {
		t.Helper()
		for _, c := range cmds {
			if c.Normalized == normalized {
				return c
			}
		}
		t.Fatalf("command %q not in result", normalized)
		return Command{}
	}

	soloFirst := find(analyze(t, "ls -la", "ls -la | head"), "ls -la")
	pipeFirst := find(analyze(t, "ls -la | head", "ls -la"), "ls -la")

	if soloFirst.Complexity != pipeFirst.Complexity {
		t.Errorf("complexity depends on order: solo-first=%d pipe-first=%d",
			soloFirst.Complexity, pipeFirst.Complexity)
	}
	if soloFirst.Complexity != 2 {
		t.Errorf("complexity = %d, want 2 (pipeline occurrence must count)", soloFirst.Complexity)
	}
	if soloFirst.Frequency != 2 {
		t.Errorf("frequency = %d, want 2", soloFirst.Frequency)
	}
}
