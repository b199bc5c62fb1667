package emojigen

import (
	"fmt"
	"image"
	"os"
)

// Option configures a generation run.
// Use functional options to customize Generate behavior.
type Option func(*config)

// config holds optional configuration for a generation run.
type config struct {
	importPath string
}

// WithImportPath supplies a fedimoji.json from an earlier run. Every emoji
// whose name appears in it keeps its previously assigned codepoint; only new
// names draw fresh codepoints from the private-use range.
//
// The file must exist: a missing import file aborts the run before any
// processing, since proceeding would silently reassign published codepoints.
func WithImportPath(path string) Option {
	return func(c *config) {
		c.importPath = path
	}
}

// Result reports what a successful generation run produced.
type Result struct {
	// GlyphCount is the number of glyphs composed into the atlas.
	GlyphCount int

	// Mapping is the final name-to-codepoint table, as written to
	// fedimoji.json.
	Mapping Mapping

	// Skipped collects the per-item failures absorbed during the run:
	// images that failed to decode and emoji dropped because the
	// codepoint range was exhausted.
	Skipped []error
}

// entry is one accepted emoji, ordered; its index is its atlas cell.
type entry struct {
	name string
	code Codepoint
	img  *image.NRGBA
}

// Generate builds an emoji font pack from the images in srcDir and writes
// the three artifacts (emoji.png, emoji.json, fedimoji.json) into outDir,
// creating it if needed.
//
// Per-image failures (undecodable files, codepoint exhaustion) are logged,
// recorded in [Result.Skipped], and do not abort the run. Generate fails as
// a whole only on a missing source directory, a bad import file, an empty
// survivor set ([ErrNoValidInput]), or an output write error. On failure no
// artifacts are written.
func Generate(srcDir, outDir string, opts ...Option) (*Result, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	info, err := os.Stat(srcDir)
	if err != nil {
		return nil, fmt.Errorf("emojigen: emoji directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("emojigen: emoji directory %q is not a directory", srcDir)
	}

	imported := Mapping{}
	if cfg.importPath != "" {
		imported, err = LoadMapping(cfg.importPath)
		if err != nil {
			return nil, err
		}
		Logger().Info("imported existing mappings", "count", len(imported))
	}

	alloc := NewAllocator(imported)

	glyphs, skipped, err := loadGlyphs(srcDir)
	if err != nil {
		return nil, err
	}

	// Join loader output with the imported mapping and the allocator.
	// Stability rule: an imported name always keeps its old codepoint.
	var entries []entry
	for _, g := range glyphs {
		code, ok := imported[g.name]
		if ok {
			Logger().Debug("using existing mapping", "name", g.name, "codepoint", code.String())
		} else {
			code, err = alloc.Next()
			if err != nil {
				Logger().Error("no remaining codepoints, skipping", "name", g.name)
				skipped = append(skipped, fmt.Errorf("emojigen: %q: %w", g.name, err))
				continue
			}
			Logger().Debug("using new mapping", "name", g.name, "codepoint", code.String())
		}
		entries = append(entries, entry{name: g.name, code: code, img: g.img})
	}

	if len(entries) == 0 {
		return nil, ErrNoValidInput
	}

	atlas := NewAtlas(len(entries))
	Logger().Debug("allocated atlas",
		"width", GlyphSize, "height", GlyphSize*len(entries))

	// Duplicate names stay duplicated in the atlas; the mapping keeps the
	// last occurrence's codepoint for the shared key.
	mapping := make(Mapping, len(entries))
	chars := make([]Codepoint, len(entries))
	for i, e := range entries {
		atlas.Place(i, e.img)
		Logger().Debug("copied glyph into atlas", "name", e.name, "y", i*GlyphSize)
		mapping[e.name] = e.code
		chars[i] = e.code
	}

	if err := writeArtifacts(outDir, atlas, chars, mapping); err != nil {
		return nil, err
	}

	Logger().Info("generated pack", "glyphs", len(entries))
	return &Result{
		GlyphCount: len(entries),
		Mapping:    mapping,
		Skipped:    skipped,
	}, nil
}
