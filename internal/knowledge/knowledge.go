// Package knowledge holds the read-only reference data describing shell
// commands, their flags, and usage patterns. The analyzer and quiz
// generator receive a Lookup as an injected dependency; nothing in this
// package is mutated after construction.
package knowledge

import "sort"

// Category names, in learning order.
const (
	CategoryShellBuiltins   = "Shell Builtins"
	CategoryFileSystem      = "File System"
	CategorySearch          = "Search & Navigation"
	CategoryTextProcessing  = "Text Processing"
	CategoryPermissions     = "Permissions"
	CategoryCompression     = "Compression"
	CategoryProcessSystem   = "Process & System"
	CategoryGit             = "Git"
	CategoryPackageMgmt     = "Package Management"
	CategoryDevelopment     = "Development"
	CategoryNetworking      = "Networking"
	CategoryUncategorized   = "Uncategorized"
)

// Entry describes one command: what it does, what its flags mean, and
// example usage patterns.
type Entry struct {
	Name        string            `json:"name"`
	Category    string            `json:"category"`
	Description string            `json:"description"`
	Flags       map[string]string `json:"flags,omitempty"`
	Patterns    []string          `json:"patterns,omitempty"`
}

// Lookup is the read-only knowledge interface consumed by the analyzer
// and the quiz generator. Implementations must be safe for concurrent use.
type Lookup interface {
	// Get returns the full entry for a base command, if one exists.
	Get(name string) (Entry, bool)

	// CategoryOf returns the category for a base command. This covers a
	// wider command set than Get: many commands are categorized without
	// having a full entry.
	CategoryOf(name string) (string, bool)

	// Names returns the names of all commands with full entries, sorted.
	Names() []string

	// InCategory returns the names of all full entries in a category, sorted.
	InCategory(category string) []string
}

// CategoryNames returns the fixed category names in learning order.
// Uncategorized is not included; it is the analyzer's fallback, not a
// real category.
func CategoryNames() []string {
	return []string{
		CategoryShellBuiltins,
		CategoryFileSystem,
		CategorySearch,
		CategoryTextProcessing,
		CategoryPermissions,
		CategoryCompression,
		CategoryProcessSystem,
		CategoryGit,
		CategoryPackageMgmt,
		CategoryDevelopment,
		CategoryNetworking,
	}
}

var categoryDescriptions = map[string]string{
	CategoryShellBuiltins:  "Built-in shell commands for scripting and interactive use",
	CategoryFileSystem:     "Commands for navigating, viewing, creating, and managing files and directories",
	CategorySearch:         "Commands for finding files and navigating the filesystem",
	CategoryTextProcessing: "Commands for viewing, searching, filtering, and transforming text content",
	CategoryPermissions:    "Commands for managing file ownership and access permissions",
	CategoryCompression:    "Commands for compressing, archiving, and extracting files",
	CategoryProcessSystem:  "Commands for monitoring, managing, and controlling running processes",
	CategoryGit:            "Version control system commands for tracking changes and collaboration",
	CategoryPackageMgmt:    "Package managers for installing, updating, and managing software dependencies",
	CategoryDevelopment:    "Development tools for building, testing, and running code",
	CategoryNetworking:     "Commands for network operations, file transfers, and remote access",
}

// Describe returns the human-readable description of a category.
func Describe(category string) string {
	return categoryDescriptions[category]
}

// base is the built-in Lookup over the embedded data tables.
type base struct {
	entries    map[string]Entry
	categories map[string]string
	names      []string
	byCategory map[string][]string
}

var builtin = newBase()

// Base returns the built-in knowledge lookup.
func Base() Lookup {
	return builtin
}

func newBase() *base {
	b := &base{
		entries:    commandDB,
		categories: make(map[string]string),
		byCategory: make(map[string][]string),
	}
	for cat, cmds := range categoryMembers {
		for _, c := range cmds {
			b.categories[c] = cat
		}
	}
	for name, e := range b.entries {
		b.names = append(b.names, name)
		b.byCategory[e.Category] = append(b.byCategory[e.Category], name)
		// Entries win over the membership table.
		b.categories[name] = e.Category
	}
	sort.Strings(b.names)
	for _, names := range b.byCategory {
		sort.Strings(names)
	}
	return b
}

func (b *base) Get(name string) (Entry, bool) {
	e, ok := b.entries[name]
	return e, ok
}

func (b *base) CategoryOf(name string) (string, bool) {
	c, ok := b.categories[name]
	return c, ok
}

func (b *base) Names() []string {
	out := make([]string, len(b.names))
	copy(out, b.names)
	return out
}

func (b *base) InCategory(category string) []string {
	names := b.byCategory[category]
	out := make([]string, len(names))
	copy(out, names)
	return out
}
