package emojigen

import "errors"

// Pipeline errors.
var (
	// ErrExhausted is returned by [Allocator.Next] when every codepoint in
	// the private-use range has been handed out or reserved. Individual
	// emoji hitting this condition are skipped; the run continues.
	ErrExhausted = errors.New("emojigen: private-use codepoint range exhausted")

	// ErrNoValidInput is returned by [Generate] when no source image
	// survived loading and codepoint assignment. No artifacts are written.
	ErrNoValidInput = errors.New("emojigen: no valid emoji images")
)
