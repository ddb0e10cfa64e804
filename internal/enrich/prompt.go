package enrich

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are documenting command-line tools for a shell learning reference. Entries must be factual and concise. Only describe flags the tool actually has; if you are not sure a command exists, describe the closest well-known tool with that name.`

func buildUserMessage(name string, observed []string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Command: %s\n", name))

	if len(observed) > 0 {
		b.WriteString("\nObserved invocations:\n")
		for _, o := range observed {
			b.WriteString(fmt.Sprintf("- %s\n", o))
		}
	}

	b.WriteString(`
Instructions:
Write a reference entry for this command:
1. One clear sentence describing what the command does.
2. Pick the single best-fitting category from the allowed list.
3. List 3-8 of its most common flags with a short description each. Prefer flags that appear in the observed invocations.
4. Give 1-3 realistic example invocations.`)

	return b.String()
}
