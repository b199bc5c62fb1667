package emojigen

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeMappingFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fedimoji.json")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write mapping file: %v", err)
	}
	return path
}

func TestLoadMapping(t *testing.T) {
	path := writeMappingFile(t, `{
		"smile": 983040,
		"WAVE": "`+string(rune(0xF0001))+`",
		"": 983042
	}`)

	got, err := LoadMapping(path)
	if err != nil {
		t.Fatalf("LoadMapping: %v", err)
	}
	want := Mapping{
		"smile": 0xF0000,
		"wave":  0xF0001,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mapping mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMappingMissingFile(t *testing.T) {
	_, err := LoadMapping(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want fs.ErrNotExist", err)
	}
}

func TestLoadMappingMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"not json", "not json at all"},
		{"wrong shape", `[1, 2, 3]`},
		{"bad codepoint", `{"smile": "too long"}`},
		{"out of unicode", `{"smile": 99999999}`},
	}
	for _, tt := range tests {
		path := writeMappingFile(t, tt.in)
		if _, err := LoadMapping(path); err == nil {
			t.Errorf("%s: LoadMapping succeeded, want error", tt.name)
		}
	}
}

func TestLoadMappingRoundTrip(t *testing.T) {
	dir := t.TempDir()
	want := Mapping{
		"smile": 0xF0000,
		"wave":  0xFFFFD,
	}
	if err := writeJSON(filepath.Join(dir, "fedimoji.json"), want); err != nil {
		t.Fatalf("writeJSON: %v", err)
	}
	got, err := LoadMapping(filepath.Join(dir, "fedimoji.json"))
	if err != nil {
		t.Fatalf("LoadMapping: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
