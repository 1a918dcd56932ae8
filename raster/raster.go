// Package raster turns module patterns into pixel buffers and serializes
// them as text, PNG, or GIF byte streams.
package raster

import (
	"fmt"

	barcoders "github.com/killercup/barcoders"
)

// Buffer is a row-major grid of 8-bit pixel intensities.
type Buffer struct {
	Width, Height int

	// Foreground and Background record the two intensities the buffer was
	// painted with.
	Foreground uint8
	Background uint8

	Pix []uint8
}

// Row returns the pixels of row y.
func (b *Buffer) Row(y int) []uint8 {
	return b.Pix[y*b.Width : (y+1)*b.Width]
}

// renderParams are resolved render options with defaults applied.
type renderParams struct {
	height      int
	moduleWidth int
	quietZone   int
	foreground  uint8
	background  uint8
}

func resolveRenderOptions(opts *barcoders.RenderOptions) (renderParams, error) {
	p := renderParams{
		height:      barcoders.DefaultHeight,
		moduleWidth: barcoders.DefaultModuleWidth,
		foreground:  0x00,
		background:  0xFF,
	}
	if opts != nil {
		if opts.Height != 0 {
			p.height = opts.Height
		}
		if opts.ModuleWidth != 0 {
			p.moduleWidth = opts.ModuleWidth
		}
		p.quietZone = opts.QuietZone
		if opts.Foreground != nil {
			p.foreground = *opts.Foreground
		}
		if opts.Background != nil {
			p.background = *opts.Background
		}
	}
	if p.height < 1 {
		return renderParams{}, fmt.Errorf("height should be positive, but got %d: %w",
			p.height, barcoders.ErrInvalidDimension)
	}
	if p.moduleWidth < 1 {
		return renderParams{}, fmt.Errorf("module width should be positive, but got %d: %w",
			p.moduleWidth, barcoders.ErrInvalidDimension)
	}
	if p.quietZone < 0 {
		return renderParams{}, fmt.Errorf("quiet zone should not be negative, but got %d: %w",
			p.quietZone, barcoders.ErrInvalidDimension)
	}
	return p, nil
}

// Rasterize expands a module pattern into a pixel buffer. Every module
// becomes a moduleWidth-wide run of uniform intensity and every row is
// identical; quiet zone modules are painted with the background intensity on
// both sides.
func Rasterize(code []bool, opts *barcoders.RenderOptions) (*Buffer, error) {
	p, err := resolveRenderOptions(opts)
	if err != nil {
		return nil, err
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("empty module pattern: %w", barcoders.ErrInvalidDimension)
	}

	width := (len(code) + 2*p.quietZone) * p.moduleWidth
	b := &Buffer{
		Width:      width,
		Height:     p.height,
		Foreground: p.foreground,
		Background: p.background,
		Pix:        make([]uint8, width*p.height),
	}

	row := b.Row(0)
	for i := range row {
		row[i] = p.background
	}
	for i, bar := range code {
		if !bar {
			continue
		}
		start := (p.quietZone + i) * p.moduleWidth
		for x := start; x < start+p.moduleWidth; x++ {
			row[x] = p.foreground
		}
	}
	for y := 1; y < b.Height; y++ {
		copy(b.Row(y), row)
	}
	return b, nil
}
