// Package emojigen builds a custom emoji font pack for a chat/federation
// platform.
//
// # Overview
//
// emojigen scans a directory of individually-authored emoji images, assigns
// each one a private-use Unicode codepoint, composes all glyphs into a single
// vertical atlas bitmap, and emits machine-readable descriptors that client
// software consumes to render the emoji as text glyphs.
//
// # Quick Start
//
//	import "github.com/fedimoji/emojigen"
//
//	// Build a pack from ./emoji into ./out.
//	res, err := emojigen.Generate("./emoji", "./out")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("generated %d glyphs\n", res.GlyphCount)
//
// # Codepoint Stability
//
// Re-running the generator would normally reassign codepoints whenever the
// set of source images changes. To keep previously published emoji stable,
// pass the fedimoji.json emitted by an earlier run back in via
// [WithImportPath]: every name found in the imported mapping keeps its old
// codepoint, and only genuinely new emoji draw fresh values from the
// private-use range U+F0000..U+FFFFD.
//
// # Outputs
//
// Three artifacts are written to the output directory:
//   - emoji.png: the atlas bitmap, 64 pixels wide, 64*N pixels tall
//   - emoji.json: a bitmap font-provider descriptor referencing the atlas
//   - fedimoji.json: the name-to-codepoint mapping (also the import format)
//
// # Logging
//
// By default emojigen produces no log output. Call [SetLogger] to enable
// logging; the emojigen command installs a text handler on stderr.
package emojigen
