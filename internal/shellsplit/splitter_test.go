package shellsplit

import (
	"strings"
	"testing"
)

func atomTexts(r Result) []string {
	out := make([]string, len(r.Atoms))
	for i, a := range r.Atoms {
		out[i] = a.Text
	}
	return out
}

func TestSplitSimple(t *testing.T) {
	r := Split("ls -la")
	if len(r.Atoms) != 1 {
		t.Fatalf("got %d atoms, want 1", len(r.Atoms))
	}
	a := r.Atoms[0]
	if a.Text != "ls -la" || a.Op != OpStart || a.Index != 0 || a.Depth != 0 {
		t.Errorf("unexpected atom: %+v", a)
	}
	if len(r.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", r.Warnings)
	}
}

func TestSplitOperators(t *testing.T) {
	r := Split("mkdir -p build && cd build || echo fail; make | tee log")
	want := []struct {
		text string
		op   Operator
	}{
		{"mkdir -p build", OpStart},
		{"cd build", OpAnd},
		{"echo fail", OpOr},
		{"make", OpSeq},
		{"tee log", OpPipe},
	}
	if len(r.Atoms) != len(want) {
		t.Fatalf("got %d atoms %v, want %d", len(r.Atoms), atomTexts(r), len(want))
	}
	for i, w := range want {
		a := r.Atoms[i]
		if a.Text != w.text || a.Op != w.op || a.Index != i {
			t.Errorf("atom %d = %+v, want text %q op %v", i, a, w.text, w.op)
		}
	}
}

func TestSplitQuotesProtectOperators(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{`echo "a && b"`, []string{`echo "a && b"`}},
		{`echo 'x | y; z'`, []string{`echo 'x | y; z'`}},
		{`grep -v "^#" f | wc -l`, []string{`grep -v "^#" f`, `wc -l`}},
		{`echo "it's fine" && ls`, []string{`echo "it's fine"`, `ls`}},
	}
	for _, c := range cases {
		r := Split(c.in)
		got := atomTexts(r)
		if len(got) != len(c.want) {
			t.Errorf("Split(%q) = %v, want %v", c.in, got, c.want)
			continue
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("Split(%q)[%d] = %q, want %q", c.in, i, got[i], c.want[i])
			}
		}
	}
}

func TestSplitEscapes(t *testing.T) {
	r := Split(`echo a\;b; echo done`)
	got := atomTexts(r)
	if len(got) != 2 || got[0] != `echo a\;b` || got[1] != "echo done" {
		t.Errorf("got %v", got)
	}

	// An escaped quote must not open a quote region.
	r = Split(`echo \" && ls`)
	if len(r.Atoms) != 2 {
		t.Errorf("escaped quote mis-scanned: %v", atomTexts(r))
	}
}

func TestSplitNestingProtectsOperators(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"(cd /tmp && ls)", []string{"(cd /tmp && ls)"}},
		{"echo $(date; uname)", []string{"echo $(date; uname)"}},
		{"{ make; make install; } && echo ok", []string{"{ make; make install; }", "echo ok"}},
		{"echo `date; id`", []string{"echo `date; id`"}},
	}
	for _, c := range cases {
		got := atomTexts(Split(c.in))
		if strings.Join(got, "\x00") != strings.Join(c.want, "\x00") {
			t.Errorf("Split(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestSplitEmptySegmentsSkipped(t *testing.T) {
	r := Split("a;;b")
	got := atomTexts(r)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("got %v", got)
	}
	if r.Atoms[1].Op != OpSeq {
		t.Errorf("second atom op = %v, want OpSeq", r.Atoms[1].Op)
	}

	if got := atomTexts(Split(";; ;")); len(got) != 0 {
		t.Errorf("operator-only input produced atoms: %v", got)
	}
	if got := atomTexts(Split("")); len(got) != 0 {
		t.Errorf("empty input produced atoms: %v", got)
	}
}

func TestSplitHeredoc(t *testing.T) {
	in := "cat <<EOF > out.txt\nline one | not a pipe\nEOF\necho after"
	r := Split(in)
	got := atomTexts(r)
	if len(got) != 2 {
		t.Fatalf("got %d atoms: %v", len(got), got)
	}
	if !strings.Contains(got[0], "not a pipe") {
		t.Errorf("heredoc body not kept in first atom: %q", got[0])
	}
	if got[1] != "echo after" {
		t.Errorf("atom after heredoc = %q", got[1])
	}
	if len(r.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", r.Warnings)
	}
}

func TestSplitHeredocDashStripsTabs(t *testing.T) {
	in := "cat <<-END\n\tindented\n\tEND\necho next"
	r := Split(in)
	got := atomTexts(r)
	if len(got) != 2 || got[1] != "echo next" {
		t.Fatalf("got %v, warnings %v", got, r.Warnings)
	}
}

func TestSplitHerestringIsNotHeredoc(t *testing.T) {
	r := Split("grep foo <<< \"bar\" && echo ok")
	got := atomTexts(r)
	if len(got) != 2 || got[1] != "echo ok" {
		t.Errorf("got %v", got)
	}
}

func TestSplitQuotedHeredocDelimiter(t *testing.T) {
	in := "cat <<'EOF'\n$HOME && stuff\nEOF"
	r := Split(in)
	if len(r.Atoms) != 1 {
		t.Fatalf("got %v", atomTexts(r))
	}
	if len(r.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", r.Warnings)
	}
}

func TestSplitUnterminatedQuoteDegrades(t *testing.T) {
	r := Split(`echo "oops && ls`)
	if len(r.Atoms) != 1 {
		t.Fatalf("got %v", atomTexts(r))
	}
	if len(r.Warnings) == 0 {
		t.Error("expected a warning for unterminated quote")
	}
}

func TestSplitUnterminatedHeredocDegrades(t *testing.T) {
	r := Split("cat <<EOF\nno terminator here | not split")
	if len(r.Atoms) != 1 {
		t.Fatalf("got %v", atomTexts(r))
	}
	if len(r.Warnings) == 0 {
		t.Error("expected a warning for unterminated heredoc")
	}
}

func TestSplitRejoinReproducesInput(t *testing.T) {
	inputs := []string{
		"ls -la",
		"mkdir -p a && cd a || echo no; ls | wc -l",
		`echo "a && b" | grep a`,
		"(cd /tmp && ls) | sort",
		"FOO=1 ./run.sh --flag; tail -f log",
	}
	strip := func(s string) string {
		return strings.Join(strings.Fields(s), "")
	}
	for _, in := range inputs {
		r := Split(in)
		var b strings.Builder
		for _, a := range r.Atoms {
			b.WriteString(a.Op.String())
			b.WriteString(a.Text)
		}
		if strip(b.String()) != strip(in) {
			t.Errorf("rejoin mismatch for %q: got %q", in, b.String())
		}
	}
}

func TestSplitDepthZeroAtoms(t *testing.T) {
	r := Split("(a && b) | c")
	for _, a := range r.Atoms {
		if a.Depth != 0 {
			t.Errorf("atom %q depth = %d, want 0", a.Text, a.Depth)
		}
	}
}
