package emojigen

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// lowercase folds names the same way everywhere: imported mapping keys and
// source filenames must normalize identically or stability lookups miss.
// Und keeps the folding locale-independent.
var lowercase = cases.Lower(language.Und)

// Mapping is a name-to-codepoint table. Keys are lower-cased emoji names;
// each key holds exactly one codepoint.
type Mapping map[string]Codepoint

// LoadMapping reads a previously emitted fedimoji.json and returns its
// entries with lower-cased keys. Entries with empty names are dropped.
//
// A missing or unreadable file is an error: when the caller asked for an
// import, silently starting from scratch would reassign every codepoint.
func LoadMapping(path string) (Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("emojigen: read mapping file: %w", err)
	}
	var raw Mapping
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("emojigen: parse mapping file %q: %w", path, err)
	}

	m := make(Mapping, len(raw))
	for name, cp := range raw {
		if name == "" {
			continue
		}
		m[lowercase.String(name)] = cp
	}
	return m, nil
}
