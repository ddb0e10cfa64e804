package analyzer

import "strings"

// features is the structural shape of a single atomic command, the
// input to the complexity score.
type features struct {
	base        string
	flags       []string
	args        int
	hasRedirect bool
	hasSubshell bool
	inPipeline  bool
}

// extractFeatures tokenizes one atomic command and pulls out the base
// command, its distinct flags, its argument count, and the structural
// markers the score cares about.
func extractFeatures(text string) features {
	var f features

	tokens := tokenize(text)

	// Leading VAR=value assignments are environment for the real
	// command, not the command itself.
	i := 0
	for i < len(tokens) && isAssignment(tokens[i]) {
		i++
	}
	if i < len(tokens) {
		f.base = tokens[i]
		i++
	}

	seen := make(map[string]bool)
	for ; i < len(tokens); i++ {
		tok := tokens[i]
		if len(tok) > 1 && tok[0] == '-' {
			if !seen[tok] {
				seen[tok] = true
				f.flags = append(f.flags, tok)
			}
			continue
		}
		if isRedirectToken(tok) {
			f.hasRedirect = true
			continue
		}
		f.args++
	}

	f.hasRedirect = f.hasRedirect || hasUnquotedRedirect(text)
	f.hasSubshell = strings.Contains(text, "$(") || strings.Contains(text, "`") ||
		strings.HasPrefix(strings.TrimSpace(text), "(")
	return f
}

// tokenize splits on unquoted whitespace, keeping quoted regions
// intact. It is deliberately loose; it only has to be stable, not a
// full word parser.
func tokenize(text string) []string {
	var tokens []string
	var buf strings.Builder
	quote := byte(0)

	flush := func() {
		if buf.Len() > 0 {
			tokens = append(tokens, buf.String())
			buf.Reset()
		}
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case quote != 0:
			buf.WriteByte(c)
			if c == quote {
				quote = 0
			}
		case c == '\\' && i+1 < len(text):
			buf.WriteByte(c)
			buf.WriteByte(text[i+1])
			i++
		case c == '\'' || c == '"':
			quote = c
			buf.WriteByte(c)
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			flush()
		default:
			buf.WriteByte(c)
		}
	}
	flush()
	return tokens
}

// isAssignment reports whether tok is a VAR=value environment prefix.
func isAssignment(tok string) bool {
	eq := strings.IndexByte(tok, '=')
	if eq < 1 {
		return false
	}
	for i := 0; i < eq; i++ {
		c := tok[i]
		ok := c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
			(i > 0 && c >= '0' && c <= '9')
		if !ok {
			return false
		}
	}
	return true
}

func isRedirectToken(tok string) bool {
	switch tok {
	case ">", ">>", "<", "2>", "2>>", "&>", "&>>", "2>&1", "1>&2":
		return true
	}
	return false
}

// hasUnquotedRedirect catches redirections glued to their target
// (">out", "2>/dev/null") that tokenize as one word.
func hasUnquotedRedirect(text string) bool {
	quote := byte(0)
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\\':
			i++
		case c == '\'' || c == '"':
			quote = c
		case c == '>':
			return true
		case c == '<':
			// <( process substitution and <<< herestrings are not
			// plain redirections, but < file is.
			if i+1 < len(text) && (text[i+1] == '(' || text[i+1] == '<') {
				i++
				continue
			}
			return true
		}
	}
	return false
}
