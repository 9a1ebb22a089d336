package groups

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"A-12", "A12"},
		{"a 12", "A12"},
		{"A12", "A12"},
		{"  оп - 11 ", "ОП11"},
		{"", ""},
		{"- - -", ""},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestResolveReturnsDisplayForm(t *testing.T) {
	reg := NewRegistry([]string{"A12", "B07"})

	for _, in := range []string{"A-12", "a 12", "A12"} {
		got, ok := reg.Resolve(in)
		if !ok {
			t.Fatalf("Resolve(%q): no match", in)
		}
		if got != "A12" {
			t.Errorf("Resolve(%q) = %q, want stored display form %q", in, got, "A12")
		}
	}

	if _, ok := reg.Resolve("C01"); ok {
		t.Error("Resolve(C01): matched unknown group")
	}
}

func TestNewRegistrySkipsDuplicatesAndBlanks(t *testing.T) {
	reg := NewRegistry([]string{"A12", "a-12", "", "  ", "B07"})
	if reg.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", reg.Len())
	}
	got, _ := reg.Resolve("a12")
	if got != "A12" {
		t.Errorf("duplicate entry replaced display form: got %q", got)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "groups.json")
	if err := os.WriteFile(path, []byte(`{"groups":["A12","B07"]}`), 0o600); err != nil {
		t.Fatal(err)
	}

	reg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if reg.Len() != 2 {
		t.Errorf("Len() = %d, want 2", reg.Len())
	}

	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("Load(missing): expected error")
	}

	empty := filepath.Join(dir, "empty.json")
	if err := os.WriteFile(empty, []byte(`{"groups":[]}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(empty); err == nil {
		t.Error("Load(empty): expected error")
	}
}
