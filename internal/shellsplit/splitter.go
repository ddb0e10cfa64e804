// Package shellsplit breaks a compound shell command into its atomic
// commands. It is a scanner, not a shell parser: it tracks just enough
// state (quoting, escapes, nesting, heredocs) to find the operator
// boundaries that are safe to split on, and it never fails. Malformed
// input degrades to fewer, larger atoms plus a warning.
package shellsplit

import "strings"

// Operator identifies how an atom was introduced in its compound command.
type Operator int

const (
	// OpStart marks the first atom of a compound command.
	OpStart Operator = iota
	OpAnd
	OpOr
	OpSeq
	OpPipe
)

func (op Operator) String() string {
	switch op {
	case OpAnd:
		return "&&"
	case OpOr:
		return "||"
	case OpSeq:
		return ";"
	case OpPipe:
		return "|"
	default:
		return ""
	}
}

// Atom is one atomic command within a compound command.
type Atom struct {
	// Text is the atom's source text, trimmed of surrounding whitespace.
	Text string
	// Op is the operator that introduced this atom (OpStart for the first).
	Op Operator
	// Index is the atom's position within the compound command.
	Index int
	// Depth is the nesting depth at the point the atom began.
	Depth int
}

// Result holds the atoms of one compound command plus any degradation
// warnings the scanner recorded along the way.
type Result struct {
	Atoms    []Atom
	Warnings []string
}

type quoteState int

const (
	quoteNone quoteState = iota
	quoteSingle
	quoteDouble
)

// Split scans one compound command and returns its atomic commands in
// order. It never returns an error: unterminated quotes and heredocs
// fold the remainder into the current atom and record a warning.
func Split(command string) Result {
	var res Result
	var buf strings.Builder

	quote := quoteNone
	depth := 0
	atomDepth := 0
	pending := OpStart
	started := false

	emit := func(next Operator) {
		text := strings.TrimSpace(buf.String())
		buf.Reset()
		if text != "" {
			res.Atoms = append(res.Atoms, Atom{
				Text:  text,
				Op:    pending,
				Index: len(res.Atoms),
				Depth: atomDepth,
			})
		}
		pending = next
		started = false
	}

	i := 0
	n := len(command)
	for i < n {
		c := command[i]

		if !started && !isSpace(c) {
			started = true
			atomDepth = depth
		}

		if quote == quoteSingle {
			buf.WriteByte(c)
			if c == '\'' {
				quote = quoteNone
			}
			i++
			continue
		}

		// Backslash escapes the next byte everywhere outside single quotes.
		if c == '\\' && i+1 < n {
			buf.WriteByte(c)
			buf.WriteByte(command[i+1])
			i += 2
			continue
		}

		if quote == quoteDouble {
			buf.WriteByte(c)
			if c == '"' {
				quote = quoteNone
			}
			i++
			continue
		}

		switch c {
		case '\'':
			quote = quoteSingle
			buf.WriteByte(c)
			i++
		case '"':
			quote = quoteDouble
			buf.WriteByte(c)
			i++
		case '`':
			// Backquoted command substitution is kept opaque.
			end := strings.IndexByte(command[i+1:], '`')
			if end < 0 {
				res.Warnings = append(res.Warnings, "unterminated backquote substitution")
				buf.WriteString(command[i:])
				i = n
				break
			}
			buf.WriteString(command[i : i+end+2])
			i += end + 2
		case '(', '{':
			depth++
			buf.WriteByte(c)
			i++
		case ')', '}':
			if depth > 0 {
				depth--
			}
			buf.WriteByte(c)
			i++
		case '&':
			if depth == 0 && i+1 < n && command[i+1] == '&' {
				emit(OpAnd)
				i += 2
			} else {
				buf.WriteByte(c)
				i++
			}
		case '|':
			if depth == 0 {
				if i+1 < n && command[i+1] == '|' {
					emit(OpOr)
					i += 2
				} else {
					emit(OpPipe)
					i++
				}
			} else {
				buf.WriteByte(c)
				i++
			}
		case ';':
			if depth == 0 {
				emit(OpSeq)
				i++
			} else {
				buf.WriteByte(c)
				i++
			}
		case '<':
			if i+2 < n && command[i+1] == '<' && command[i+2] == '<' {
				// <<< herestring, an ordinary token.
				buf.WriteString("<<<")
				i += 3
			} else if j, ok := heredocOpener(command, i); ok {
				i = consumeHeredoc(command, i, j, &buf, &res.Warnings)
			} else {
				buf.WriteByte(c)
				i++
			}
		default:
			buf.WriteByte(c)
			i++
		}
	}

	if quote != quoteNone {
		res.Warnings = append(res.Warnings, "unterminated quote, remainder kept as one command")
	}
	emit(OpStart)
	return res
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// heredocOpener reports whether command[i:] begins a heredoc (<< or <<-
// but not <<<) and returns the index just past the operator.
func heredocOpener(command string, i int) (int, bool) {
	if i+1 >= len(command) || command[i+1] != '<' {
		return 0, false
	}
	j := i + 2
	if j < len(command) && command[j] == '<' {
		// <<< is a herestring, an ordinary token.
		return 0, false
	}
	if j < len(command) && command[j] == '-' {
		j++
	}
	return j, true
}

// consumeHeredoc copies everything from the heredoc operator at i
// through the terminator line into buf and returns the resume index.
// j points just past the operator (and past a trailing '-' if present).
func consumeHeredoc(command string, i, j int, buf *strings.Builder, warnings *[]string) int {
	n := len(command)
	stripTabs := j > i+2 // operator was <<-

	// Skip spaces between the operator and the delimiter token.
	k := j
	for k < n && (command[k] == ' ' || command[k] == '\t') {
		k++
	}

	// Delimiter may be quoted; quoting only affects expansion, not
	// where the document ends.
	delimStart := k
	for k < n && !isSpace(command[k]) && command[k] != ';' && command[k] != '|' && command[k] != '&' {
		k++
	}
	delim := strings.Trim(command[delimStart:k], `'"`)
	if delim == "" {
		buf.WriteString(command[i:k])
		return k
	}

	// The document body starts after the next newline. Everything up to
	// there (the rest of the command line) stays part of the atom.
	nl := strings.IndexByte(command[k:], '\n')
	if nl < 0 {
		buf.WriteString(command[i:])
		return n
	}
	bodyStart := k + nl + 1
	buf.WriteString(command[i:bodyStart])

	// Consume lines until the terminator line.
	pos := bodyStart
	for pos < n {
		lineEnd := strings.IndexByte(command[pos:], '\n')
		var line string
		var next int
		if lineEnd < 0 {
			line = command[pos:]
			next = n
		} else {
			line = command[pos : pos+lineEnd]
			next = pos + lineEnd + 1
		}
		check := line
		if stripTabs {
			check = strings.TrimLeft(check, "\t")
		}
		buf.WriteString(command[pos:next])
		pos = next
		if strings.TrimRight(check, "\r") == delim {
			return pos
		}
	}
	*warnings = append(*warnings, "unterminated heredoc <<"+delim+", remainder kept as one command")
	return n
}
