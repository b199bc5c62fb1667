package emojigen

import (
	"fmt"
	"image"
	"image/draw"
)

// GlyphSize is the width and height in pixels of every glyph cell. The atlas
// is one glyph wide and stacks glyphs vertically, so its height is always an
// exact multiple of GlyphSize.
const GlyphSize = 64

// Atlas is the composite bitmap holding all glyphs. Glyph i occupies rows
// [i*GlyphSize, (i+1)*GlyphSize), column 0.
type Atlas struct {
	img   *image.NRGBA
	count int
}

// NewAtlas allocates a fully transparent atlas with room for n glyphs.
func NewAtlas(n int) *Atlas {
	return &Atlas{
		img:   image.NewNRGBA(image.Rect(0, 0, GlyphSize, GlyphSize*n)),
		count: n,
	}
}

// Place copies glyph into cell i. The glyph must be exactly
// GlyphSize x GlyphSize: the loader resizes every image before it reaches
// the atlas, so a mismatch here is a bug, not an input problem, and Place
// panics rather than returning an error.
func (a *Atlas) Place(i int, glyph *image.NRGBA) {
	if i < 0 || i >= a.count {
		panic(fmt.Sprintf("emojigen: atlas cell %d out of range [0,%d)", i, a.count))
	}
	b := glyph.Bounds()
	if b.Dx() != GlyphSize || b.Dy() != GlyphSize {
		panic(fmt.Sprintf("emojigen: glyph is %dx%d, want %dx%d", b.Dx(), b.Dy(), GlyphSize, GlyphSize))
	}
	cell := image.Rect(0, i*GlyphSize, GlyphSize, (i+1)*GlyphSize)
	draw.Draw(a.img, cell, glyph, b.Min, draw.Src)
}

// Image returns the underlying bitmap.
func (a *Atlas) Image() *image.NRGBA {
	return a.img
}

// GlyphCount returns the number of cells the atlas was allocated for.
func (a *Atlas) GlyphCount() int {
	return a.count
}
