package emojigen

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fedimoji/emojigen/internal/imgio"
)

// AtlasResourcePath is the logical resource path under which clients load
// the atlas bitmap. The font-provider descriptor references the atlas by
// this path, not by its on-disk filename.
const AtlasResourcePath = "fedimoji:font/emoji.png"

// Output filenames, fixed relative to the output directory.
const (
	atlasFileName    = "emoji.png"
	providerFileName = "emoji.json"
	mappingFileName  = "fedimoji.json"
)

// Bitmap font metrics declared in the provider descriptor.
const (
	providerHeight = 8
	providerAscent = 8
)

// fontProvider is one provider entry in the descriptor. Chars is in atlas
// row order: index i renders from rows [i*GlyphSize, (i+1)*GlyphSize).
type fontProvider struct {
	Type   string      `json:"type"`
	File   string      `json:"file"`
	Height int         `json:"height"`
	Ascent int         `json:"ascent"`
	Chars  []Codepoint `json:"chars"`
}

// providerDoc is the emoji.json document.
type providerDoc struct {
	Providers []fontProvider `json:"providers"`
}

// writeArtifacts persists the atlas, the font-provider descriptor, and the
// name-to-codepoint mapping into dir. Any failure is fatal to the run; there
// is no partial-success mode for this stage.
func writeArtifacts(dir string, atlas *Atlas, chars []Codepoint, mapping Mapping) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("emojigen: create output directory: %w", err)
	}

	atlasPath := filepath.Join(dir, atlasFileName)
	if err := imgio.SavePNG(atlasPath, atlas.Image()); err != nil {
		return fmt.Errorf("emojigen: write atlas: %w", err)
	}
	Logger().Debug("wrote atlas", "path", atlasPath)

	doc := providerDoc{
		Providers: []fontProvider{{
			Type:   "bitmap",
			File:   AtlasResourcePath,
			Height: providerHeight,
			Ascent: providerAscent,
			Chars:  chars,
		}},
	}
	if err := writeJSON(filepath.Join(dir, providerFileName), doc); err != nil {
		return err
	}
	Logger().Debug("wrote font provider definition", "path", filepath.Join(dir, providerFileName))

	if err := writeJSON(filepath.Join(dir, mappingFileName), mapping); err != nil {
		return err
	}
	Logger().Debug("wrote name->codepoint mapping", "path", filepath.Join(dir, mappingFileName))

	return nil
}

// writeJSON pretty-prints v into path.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("emojigen: encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("emojigen: write %s: %w", filepath.Base(path), err)
	}
	return nil
}
