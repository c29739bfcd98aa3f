package certgen

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// fontSet parses the TTF once and hands out faces per size. Faces are not
// cached; gg contexts hold their own and renders are short-lived.
type fontSet struct {
	ttf   *truetype.Font
	bytes []byte
}

// loadFont reads the configured TTF, falling back to the embedded Go
// Regular face when no path is set. Keeping the raw bytes around matters
// for PDF output, which embeds the font directly.
func loadFont(path string) (*fontSet, error) {
	raw := goregular.TTF
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read font %q: %w", path, err)
		}
		raw = b
	}
	ttf, err := truetype.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &fontSet{ttf: ttf, bytes: raw}, nil
}

func (f *fontSet) face(size float64) font.Face {
	return truetype.NewFace(f.ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
