package knowledge

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Overlay is a set of extra entries layered on top of another Lookup,
// typically produced by the enrich command for commands the built-in
// data doesn't know.
type Overlay struct {
	Entries []Entry `json:"entries"`
}

// LoadOverlay reads an overlay file written by the enrich command.
// A missing file is not an error; it yields an empty overlay.
func LoadOverlay(path string) (*Overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Overlay{}, nil
		}
		return nil, fmt.Errorf("read overlay: %w", err)
	}
	var o Overlay
	if err := json.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("parse overlay %s: %w", path, err)
	}
	return &o, nil
}

// Save writes the overlay to path as indented JSON with entries sorted
// by name, so repeated enrich runs produce stable diffs.
func (o *Overlay) Save(path string) error {
	sort.Slice(o.Entries, func(i, j int) bool { return o.Entries[i].Name < o.Entries[j].Name })
	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// Add inserts or replaces an entry by name.
func (o *Overlay) Add(e Entry) {
	for i := range o.Entries {
		if o.Entries[i].Name == e.Name {
			o.Entries[i] = e
			return
		}
	}
	o.Entries = append(o.Entries, e)
}

// merged layers overlay entries over a base Lookup. Overlay entries win
// on conflicts.
type merged struct {
	base    Lookup
	entries map[string]Entry
}

// Merged returns a Lookup combining base with the overlay's entries.
func Merged(base Lookup, o *Overlay) Lookup {
	m := &merged{base: base, entries: make(map[string]Entry, len(o.Entries))}
	for _, e := range o.Entries {
		m.entries[e.Name] = e
	}
	return m
}

func (m *merged) Get(name string) (Entry, bool) {
	if e, ok := m.entries[name]; ok {
		return e, true
	}
	return m.base.Get(name)
}

func (m *merged) CategoryOf(name string) (string, bool) {
	if e, ok := m.entries[name]; ok {
		return e.Category, true
	}
	return m.base.CategoryOf(name)
}

func (m *merged) Names() []string {
	seen := make(map[string]bool)
	var out []string
	for _, n := range m.base.Names() {
		seen[n] = true
		out = append(out, n)
	}
	for n := range m.entries {
		if !seen[n] {
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}

func (m *merged) InCategory(category string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, n := range m.base.InCategory(category) {
		// An overlay entry may move a command to another category.
		if e, ok := m.entries[n]; ok && e.Category != category {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	for n, e := range m.entries {
		if e.Category == category && !seen[n] {
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}
