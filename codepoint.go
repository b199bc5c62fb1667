package emojigen

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// Private-use codepoint range for newly allocated emoji. The supplementary
// private-use area B, minus the two <plane 15 noncharacter> values at the
// top of the plane.
const (
	PrivateUseMin Codepoint = 0xF0000
	PrivateUseMax Codepoint = 0xFFFFD
)

// Codepoint is a single Unicode scalar value used as the rendering key for
// one glyph.
//
// In JSON, a Codepoint is written as a one-character string (the form the
// font-provider descriptor and fedimoji.json use). On decode, both the
// one-character-string form and a plain integer scalar are accepted, so
// hand-written integer mappings import cleanly too.
type Codepoint rune

// String formats the codepoint in the conventional U+XXXX notation.
func (c Codepoint) String() string {
	return fmt.Sprintf("U+%04X", rune(c))
}

// MarshalJSON encodes the codepoint as a one-character JSON string.
func (c Codepoint) MarshalJSON() ([]byte, error) {
	if !utf8.ValidRune(rune(c)) {
		return nil, fmt.Errorf("emojigen: %#x is not a Unicode scalar value", rune(c))
	}
	return json.Marshal(string(rune(c)))
}

// UnmarshalJSON decodes either a one-character JSON string or an integer
// scalar value.
func (c *Codepoint) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		r, size := utf8.DecodeRuneInString(s)
		if s == "" || size != len(s) {
			return fmt.Errorf("emojigen: codepoint string %q must contain exactly one character", s)
		}
		*c = Codepoint(r)
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	// Bounds-check before narrowing to rune: values beyond 32 bits would
	// otherwise truncate and be accepted as unrelated small scalars.
	if n < 0 || n > utf8.MaxRune || !utf8.ValidRune(rune(n)) {
		return fmt.Errorf("emojigen: %d is not a Unicode scalar value", n)
	}
	*c = Codepoint(n)
	return nil
}
