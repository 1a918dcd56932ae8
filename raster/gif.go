package raster

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	barcoders "github.com/killercup/barcoders"
)

const (
	gifMaxDimension = 0xFFFF
	gifLitWidth     = 2 // minimum LZW code size allowed by GIF
)

// GIFGenerator renders module patterns as GIF images.
type GIFGenerator struct{}

// NewGIFGenerator creates a new GIF generator.
func NewGIFGenerator() *GIFGenerator {
	return &GIFGenerator{}
}

// Generate renders the module pattern as a GIF byte stream.
func (g *GIFGenerator) Generate(code []bool, opts *barcoders.RenderOptions) ([]byte, error) {
	b, err := Rasterize(code, opts)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := EncodeGIF(&buf, b); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeGIF writes the pixel buffer to w as a two-color GIF89a image. Index
// 0 of the color table is the background intensity, index 1 the foreground;
// pixels that do not match the background map to the foreground.
func EncodeGIF(w io.Writer, b *Buffer) error {
	if b.Width > gifMaxDimension || b.Height > gifMaxDimension {
		return fmt.Errorf("gif: image %dx%d exceeds the %d pixel dimension limit: %w",
			b.Width, b.Height, gifMaxDimension, barcoders.ErrInvalidDimension)
	}

	// Header, logical screen descriptor, and the two-entry global color
	// table of grey triples.
	var hdr [19]byte
	copy(hdr[0:6], "GIF89a")
	binary.LittleEndian.PutUint16(hdr[6:8], uint16(b.Width))
	binary.LittleEndian.PutUint16(hdr[8:10], uint16(b.Height))
	hdr[10] = 0x80 // global color table present, 2 entries
	hdr[11] = 0    // background color index
	hdr[12] = 0    // pixel aspect ratio
	hdr[13], hdr[14], hdr[15] = b.Background, b.Background, b.Background
	hdr[16], hdr[17], hdr[18] = b.Foreground, b.Foreground, b.Foreground
	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("gif: write header: %w", err)
	}

	var desc [11]byte
	desc[0] = 0x2C // image separator
	binary.LittleEndian.PutUint16(desc[5:7], uint16(b.Width))
	binary.LittleEndian.PutUint16(desc[7:9], uint16(b.Height))
	desc[9] = 0 // no local color table, not interlaced
	desc[10] = gifLitWidth
	if _, err := w.Write(desc[:]); err != nil {
		return fmt.Errorf("gif: write image descriptor: %w", err)
	}

	indexes := make([]byte, len(b.Pix))
	for i, pix := range b.Pix {
		if pix != b.Background {
			indexes[i] = 1
		}
	}
	if err := writeSubBlocks(w, lzwEncode(indexes, gifLitWidth)); err != nil {
		return err
	}

	if _, err := w.Write([]byte{0x3B}); err != nil {
		return fmt.Errorf("gif: write trailer: %w", err)
	}
	return nil
}

// writeSubBlocks frames data into sub-blocks of at most 255 bytes, each with
// a size prefix, followed by the zero-size terminator.
func writeSubBlocks(w io.Writer, data []byte) error {
	for len(data) > 0 {
		n := len(data)
		if n > 255 {
			n = 255
		}
		if _, err := w.Write([]byte{byte(n)}); err != nil {
			return fmt.Errorf("gif: write data sub-block: %w", err)
		}
		if _, err := w.Write(data[:n]); err != nil {
			return fmt.Errorf("gif: write data sub-block: %w", err)
		}
		data = data[n:]
	}
	if _, err := w.Write([]byte{0}); err != nil {
		return fmt.Errorf("gif: write block terminator: %w", err)
	}
	return nil
}
