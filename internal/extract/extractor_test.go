package extract

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeSession(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	var data []byte
	for _, l := range lines {
		data = append(data, l...)
		data = append(data, '\n')
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const (
	useLine = `{"type":"assistant","timestamp":"2026-08-01T10:00:00Z","message":{"content":[{"type":"tool_use","id":"tu_1","name":"Bash","input":{"command":"ls -la","description":"List files"}}]}}`
	resLine = `{"type":"user","message":{"content":[{"type":"tool_result","tool_use_id":"tu_1","content":"total 0"}]}}`
)

func TestFromFileCorrelatesOutput(t *testing.T) {
	path := writeSession(t, t.TempDir(), "s.jsonl", useLine, resLine)
	s, err := FromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Commands) != 1 {
		t.Fatalf("got %d commands", len(s.Commands))
	}
	c := s.Commands[0]
	if c.Command != "ls -la" || c.Description != "List files" {
		t.Errorf("command = %+v", c)
	}
	if c.Output != "total 0" {
		t.Errorf("output = %q", c.Output)
	}
	if c.Timestamp != "2026-08-01T10:00:00Z" {
		t.Errorf("timestamp = %q", c.Timestamp)
	}
}

func TestFromFileSkipsNonBashAndMalformed(t *testing.T) {
	path := writeSession(t, t.TempDir(), "s.jsonl",
		`not json at all`,
		`{"message":{"content":[{"type":"tool_use","id":"tu_2","name":"Read","input":{"file_path":"/x"}}]}}`,
		`{"message":{"content":"plain text"}}`,
		`{"message":{"content":[{"type":"tool_use","id":"tu_3","name":"Bash","input":{"command":"pwd"}}]}}`,
	)
	s, err := FromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Commands) != 1 || s.Commands[0].Command != "pwd" {
		t.Errorf("commands = %+v", s.Commands)
	}
}

func TestFromFileListResultContent(t *testing.T) {
	path := writeSession(t, t.TempDir(), "s.jsonl",
		`{"message":{"content":[{"type":"tool_use","id":"a","name":"bash","input":{"command":"echo hi"}}]}}`,
		`{"message":{"content":[{"type":"tool_result","tool_use_id":"a","content":[{"type":"text","text":"hi"},{"type":"text","text":"there"}],"is_error":true}]}}`,
	)
	s, err := FromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Commands[0].Output != "hi\nthere" {
		t.Errorf("output = %q", s.Commands[0].Output)
	}
	if !s.Commands[0].IsError {
		t.Error("is_error not carried over")
	}
}

func TestFromFileStringInput(t *testing.T) {
	path := writeSession(t, t.TempDir(), "s.jsonl",
		`{"content":[{"type":"tool_use","id":"b","name":"Bash","input":"git status"}]}`,
	)
	s, err := FromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Commands) != 1 || s.Commands[0].Command != "git status" {
		t.Errorf("commands = %+v", s.Commands)
	}
}

func TestFromFileOrderPreserved(t *testing.T) {
	path := writeSession(t, t.TempDir(), "s.jsonl",
		`{"message":{"content":[{"type":"tool_use","id":"x1","name":"Bash","input":{"command":"first"}}]}}`,
		`{"message":{"content":[{"type":"tool_use","id":"x2","name":"Bash","input":{"command":"second"}}]}}`,
		`{"message":{"content":[{"type":"tool_result","tool_use_id":"x1","content":"out1"}]}}`,
	)
	s, err := FromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Commands) != 2 || s.Commands[0].Command != "first" || s.Commands[1].Command != "second" {
		t.Errorf("commands = %+v", s.Commands)
	}
}

func TestFromDirLimitNewestFirst(t *testing.T) {
	dir := t.TempDir()
	old := writeSession(t, dir, "old.jsonl", useLine)
	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(old, past, past); err != nil {
		t.Fatal(err)
	}
	empty := writeSession(t, dir, "empty.jsonl", `{"message":{"content":"nothing here"}}`)
	if err := os.Chtimes(empty, past, past); err != nil {
		t.Fatal(err)
	}
	writeSession(t, dir, "new.jsonl",
		`{"message":{"content":[{"type":"tool_use","id":"n","name":"Bash","input":{"command":"newest"}}]}}`)

	sessions, err := FromDir(dir, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(sessions) != 1 {
		t.Fatalf("got %d sessions", len(sessions))
	}
	if sessions[0].Commands[0].Command != "newest" {
		t.Errorf("limit did not keep the newest session: %+v", sessions[0])
	}
}
