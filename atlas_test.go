package emojigen

import (
	"image"
	"testing"
)

func solidGlyph(c byte) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, GlyphSize, GlyphSize))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = c
		img.Pix[i+3] = 255
	}
	return img
}

func TestAtlasDimensions(t *testing.T) {
	for _, n := range []int{1, 2, 7} {
		a := NewAtlas(n)
		b := a.Image().Bounds()
		if b.Dx() != GlyphSize || b.Dy() != GlyphSize*n {
			t.Errorf("NewAtlas(%d): bounds %v, want %dx%d", n, b, GlyphSize, GlyphSize*n)
		}
		if a.GlyphCount() != n {
			t.Errorf("NewAtlas(%d): GlyphCount = %d", n, a.GlyphCount())
		}
	}
}

func TestAtlasPlace(t *testing.T) {
	a := NewAtlas(2)
	a.Place(0, solidGlyph(10))
	a.Place(1, solidGlyph(20))

	img := a.Image()
	// Glyph i owns rows [i*GlyphSize, (i+1)*GlyphSize).
	checks := []struct {
		x, y int
		want byte
	}{
		{0, 0, 10},
		{GlyphSize - 1, GlyphSize - 1, 10},
		{0, GlyphSize, 20},
		{GlyphSize - 1, 2*GlyphSize - 1, 20},
	}
	for _, c := range checks {
		if got := img.NRGBAAt(c.x, c.y).R; got != c.want {
			t.Errorf("pixel (%d,%d): R = %d, want %d", c.x, c.y, got, c.want)
		}
	}
}

func TestAtlasPlaceWrongSizePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Place with a wrong-sized glyph did not panic")
		}
	}()
	NewAtlas(1).Place(0, image.NewNRGBA(image.Rect(0, 0, 32, 32)))
}

func TestAtlasPlaceOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Place beyond the last cell did not panic")
		}
	}()
	NewAtlas(1).Place(1, solidGlyph(0))
}
