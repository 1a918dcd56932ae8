package raster

import (
	"bytes"

	barcoders "github.com/killercup/barcoders"
)

// TextGenerator renders module patterns as lines of '#' and ' ' characters.
type TextGenerator struct{}

// NewTextGenerator creates a new text generator.
func NewTextGenerator() *TextGenerator {
	return &TextGenerator{}
}

// Generate renders the module pattern as a character grid, one byte per
// pixel. Rows are joined with newlines and there is no trailing newline.
func (g *TextGenerator) Generate(code []bool, opts *barcoders.RenderOptions) ([]byte, error) {
	b, err := Rasterize(code, opts)
	if err != nil {
		return nil, err
	}

	line := make([]byte, b.Width)
	for x, pix := range b.Row(0) {
		if pix != b.Background {
			line[x] = '#'
		} else {
			line[x] = ' '
		}
	}

	var buf bytes.Buffer
	buf.Grow((b.Width + 1) * b.Height)
	for y := 0; y < b.Height; y++ {
		if y > 0 {
			buf.WriteByte('\n')
		}
		buf.Write(line)
	}
	return buf.Bytes(), nil
}
