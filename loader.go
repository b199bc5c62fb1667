package emojigen

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/fedimoji/emojigen/internal/imgio"
)

// sourceGlyph is one discovered emoji image, decoded and resized, keyed by
// its canonical (lower-cased, extension-stripped) name.
type sourceGlyph struct {
	name string
	img  *image.NRGBA
}

// loadGlyphs lists dir (non-recursive), keeps regular files whose stored
// extension is exactly ".png" (symlinks are followed and kept when their
// target is a regular file), and decodes and resizes each one to
// GlyphSize x GlyphSize. Files that fail to decode are logged and skipped;
// their errors come back in the second return value. Only an unreadable
// directory fails the whole call.
//
// os.ReadDir sorts entries by filename, so the returned order (which decides
// both atlas layout and fresh codepoint assignment) is lexicographic by
// stored filename.
func loadGlyphs(dir string) ([]sourceGlyph, []error, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("emojigen: read emoji directory: %w", err)
	}

	var (
		glyphs  []sourceGlyph
		skipped []error
	)
	for _, entry := range entries {
		if filepath.Ext(entry.Name()) != ".png" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if !isRegularFile(entry, path) {
			continue
		}

		src, err := imgio.LoadPNG(path)
		if err != nil {
			Logger().Warn("failed to read image, skipping it", "path", path, "error", err)
			skipped = append(skipped, fmt.Errorf("emojigen: load %q: %w", path, err))
			continue
		}

		name := lowercase.String(entry.Name())
		img := imgio.Scale(src, GlyphSize, GlyphSize)
		Logger().Debug("resized image", "name", name)

		glyphs = append(glyphs, sourceGlyph{
			name: trimPNGSuffix(name),
			img:  img,
		})
	}
	return glyphs, skipped, nil
}

// isRegularFile reports whether entry is a regular file, following a
// symlink to its target. Directories and other non-file entries are out,
// even when their names end in ".png".
func isRegularFile(entry os.DirEntry, path string) bool {
	t := entry.Type()
	if t&os.ModeSymlink != 0 {
		info, err := os.Stat(path)
		return err == nil && info.Mode().IsRegular()
	}
	return t.IsRegular()
}

// trimPNGSuffix strips every trailing ".png" run, so "party.png.png"
// normalizes to "party". The name is already lower-cased.
func trimPNGSuffix(name string) string {
	for strings.HasSuffix(name, ".png") {
		name = strings.TrimSuffix(name, ".png")
	}
	return name
}
