// Package extract pulls bash commands out of recorded agent-session
// JSONL files. Each session file holds one JSON entry per line; bash
// invocations appear as tool_use content blocks and their output
// arrives later in tool_result blocks, correlated by tool_use_id.
// Malformed lines are skipped, never fatal.
package extract

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Command is one extracted bash invocation with its correlated output.
type Command struct {
	Command     string
	Description string
	Output      string
	IsError     bool
	Timestamp   string
	Sequence    int
}

// Session is the ordered command history of one session file.
type Session struct {
	Path     string
	Commands []Command
}

// maxLineSize bounds a single JSONL line; session entries carrying
// large tool output can run to megabytes.
const maxLineSize = 16 * 1024 * 1024

type lineEntry struct {
	Timestamp string          `json:"timestamp"`
	Content   json.RawMessage `json:"content"`
	Message   *struct {
		Timestamp string          `json:"timestamp"`
		Content   json.RawMessage `json:"content"`
	} `json:"message"`
}

type contentBlock struct {
	Type      string          `json:"type"`
	Name      string          `json:"name"`
	ID        string          `json:"id"`
	Input     json.RawMessage `json:"input"`
	ToolUseID string          `json:"tool_use_id"`
	Content   json.RawMessage `json:"content"`
	IsError   bool            `json:"is_error"`
}

type bashInput struct {
	Command     string `json:"command"`
	Description string `json:"description"`
}

// FromFile extracts the bash commands of one session file in sequence
// order.
func FromFile(path string) (*Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}
	defer f.Close()

	type pending struct {
		cmd Command
	}
	uses := make(map[string]*pending)
	var order []string
	results := make(map[string]contentBlock)

	seq := 0
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), maxLineSize)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var e lineEntry
		if err := json.Unmarshal(line, &e); err != nil {
			continue
		}
		seq++

		for _, raw := range [][]byte{e.Content, messageContent(e)} {
			for _, b := range blocks(raw) {
				switch b.Type {
				case "tool_use":
					if !strings.EqualFold(b.Name, "bash") || b.ID == "" {
						continue
					}
					var in bashInput
					if err := json.Unmarshal(b.Input, &in); err != nil {
						// Input may be a bare command string.
						var s string
						if json.Unmarshal(b.Input, &s) != nil {
							continue
						}
						in.Command = s
					}
					if in.Command == "" {
						continue
					}
					ts := e.Timestamp
					if ts == "" && e.Message != nil {
						ts = e.Message.Timestamp
					}
					if _, dup := uses[b.ID]; !dup {
						order = append(order, b.ID)
					}
					uses[b.ID] = &pending{cmd: Command{
						Command:     in.Command,
						Description: in.Description,
						Timestamp:   ts,
						Sequence:    seq,
					}}
				case "tool_result":
					if b.ToolUseID != "" {
						results[b.ToolUseID] = b
					}
				}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan session %s: %w", path, err)
	}

	s := &Session{Path: path}
	for _, id := range order {
		p := uses[id]
		if r, ok := results[id]; ok {
			p.cmd.Output = resultText(r.Content)
			p.cmd.IsError = r.IsError
		}
		s.Commands = append(s.Commands, p.cmd)
	}
	sort.SliceStable(s.Commands, func(i, j int) bool {
		return s.Commands[i].Sequence < s.Commands[j].Sequence
	})
	return s, nil
}

func messageContent(e lineEntry) json.RawMessage {
	if e.Message == nil {
		return nil
	}
	return e.Message.Content
}

// blocks decodes a content value that may be an array of blocks or a
// plain string (text-only content, which carries no commands).
func blocks(raw json.RawMessage) []contentBlock {
	if len(raw) == 0 {
		return nil
	}
	var bs []contentBlock
	if err := json.Unmarshal(raw, &bs); err != nil {
		return nil
	}
	return bs
}

// resultText flattens a tool_result content value, which is either a
// string or a list of text blocks.
func resultText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var items []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return ""
	}
	var parts []string
	for _, it := range items {
		if it.Type == "text" && it.Text != "" {
			parts = append(parts, it.Text)
		}
	}
	return strings.Join(parts, "\n")
}

// FromDir extracts every *.jsonl session under root, newest first.
// limit > 0 caps the number of session files read. Unreadable files
// are skipped; the error covers only the directory walk itself.
func FromDir(root string, limit int) ([]*Session, error) {
	type fileInfo struct {
		path string
		mod  int64
	}
	var files []fileInfo
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() || filepath.Ext(path) != ".jsonl" {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		files = append(files, fileInfo{path: path, mod: info.ModTime().UnixNano()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk sessions: %w", err)
	}
	sort.Slice(files, func(i, j int) bool {
		if files[i].mod != files[j].mod {
			return files[i].mod > files[j].mod
		}
		return files[i].path < files[j].path
	})
	if limit > 0 && len(files) > limit {
		files = files[:limit]
	}

	var sessions []*Session
	for _, f := range files {
		s, err := FromFile(f.path)
		if err != nil {
			continue
		}
		if len(s.Commands) > 0 {
			sessions = append(sessions, s)
		}
	}
	return sessions, nil
}
