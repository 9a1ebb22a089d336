// Package groups holds the fixed registry of valid group identifiers
// and matches user-entered text against it.
package groups

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"unicode"
)

// Registry maps normalized group keys to their display form.
// Populated once at startup, read-only afterwards.
type Registry struct {
	byKey map[string]string
	names []string
}

type groupsFile struct {
	Groups []string `json:"groups"`
}

// Load reads the group list from a JSON document with a single
// "groups" array of display-form identifiers.
func Load(path string) (*Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("groups: read %s: %w", path, err)
	}

	var doc groupsFile
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("groups: parse %s: %w", path, err)
	}
	if len(doc.Groups) == 0 {
		return nil, fmt.Errorf("groups: %s contains no groups", path)
	}

	return NewRegistry(doc.Groups), nil
}

// NewRegistry builds a registry from display-form identifiers.
// Entries that normalize to the same key keep the first display form.
func NewRegistry(names []string) *Registry {
	reg := &Registry{
		byKey: make(map[string]string, len(names)),
		names: make([]string, 0, len(names)),
	}
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		key := Normalize(name)
		if _, exists := reg.byKey[key]; exists {
			continue
		}
		reg.byKey[key] = name
		reg.names = append(reg.names, name)
	}
	return reg
}

// Normalize strips all whitespace and hyphens and upper-cases the rest.
// Two inputs naming the same group always produce the same key.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsSpace(r) || r == '-' {
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToUpper(b.String())
}

// Resolve matches user-entered text against the registry and returns
// the stored display form of the group.
func (r *Registry) Resolve(text string) (string, bool) {
	display, ok := r.byKey[Normalize(text)]
	return display, ok
}

// Names returns the display forms of all registered groups in load order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len reports the number of registered groups.
func (r *Registry) Len() int {
	return len(r.names)
}
