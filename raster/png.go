package raster

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash"
	"hash/crc32"
	"io"

	"github.com/klauspost/compress/zlib"

	barcoders "github.com/killercup/barcoders"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n")

// PNGGenerator renders module patterns as PNG images.
type PNGGenerator struct{}

// NewPNGGenerator creates a new PNG generator.
func NewPNGGenerator() *PNGGenerator {
	return &PNGGenerator{}
}

// Generate renders the module pattern as a PNG byte stream.
func (g *PNGGenerator) Generate(code []bool, opts *barcoders.RenderOptions) ([]byte, error) {
	b, err := Rasterize(code, opts)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := EncodePNG(&buf, b); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// pngWriter serializes a pixel buffer as an 8-bit greyscale PNG.
type pngWriter struct {
	w   io.Writer
	tmp [13]byte
	crc hash.Hash32
}

// EncodePNG writes the pixel buffer to w as an 8-bit greyscale PNG.
func EncodePNG(w io.Writer, b *Buffer) error {
	p := &pngWriter{w: w, crc: crc32.NewIEEE()}
	return p.encode(b)
}

func (p *pngWriter) encode(b *Buffer) error {
	if _, err := p.w.Write(pngHeader); err != nil {
		return fmt.Errorf("png: write signature: %w", err)
	}

	binary.BigEndian.PutUint32(p.tmp[0:4], uint32(b.Width))
	binary.BigEndian.PutUint32(p.tmp[4:8], uint32(b.Height))
	p.tmp[8] = 8  // bit depth
	p.tmp[9] = 0  // greyscale
	p.tmp[10] = 0 // compression method
	p.tmp[11] = 0 // filter method
	p.tmp[12] = 0 // interlace method
	if err := p.writeChunk("IHDR", p.tmp[:13]); err != nil {
		return err
	}

	idat, err := deflateRows(b)
	if err != nil {
		return err
	}
	if err := p.writeChunk("IDAT", idat); err != nil {
		return err
	}

	return p.writeChunk("IEND", nil)
}

// deflateRows compresses the scanlines into a single zlib stream, each row
// prefixed with the None filter type.
func deflateRows(b *Buffer) ([]byte, error) {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	row := make([]byte, 1+b.Width)
	for y := 0; y < b.Height; y++ {
		row[0] = 0 // filter type None
		copy(row[1:], b.Row(y))
		if _, err := zw.Write(row); err != nil {
			return nil, fmt.Errorf("png: deflate row %d: %w", y, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("png: close zlib stream: %w", err)
	}
	return buf.Bytes(), nil
}

// writeChunk writes one chunk: payload length, type, payload, and a CRC-32
// over type and payload.
func (p *pngWriter) writeChunk(name string, data []byte) error {
	var hdr [8]byte
	binary.BigEndian.PutUint32(hdr[0:4], uint32(len(data)))
	copy(hdr[4:8], name)
	p.crc.Reset()
	p.crc.Write(hdr[4:8])
	p.crc.Write(data)

	if _, err := p.w.Write(hdr[:]); err != nil {
		return fmt.Errorf("png: write %s chunk: %w", name, err)
	}
	if _, err := p.w.Write(data); err != nil {
		return fmt.Errorf("png: write %s chunk: %w", name, err)
	}
	var sum [4]byte
	binary.BigEndian.PutUint32(sum[:], p.crc.Sum32())
	if _, err := p.w.Write(sum[:]); err != nil {
		return fmt.Errorf("png: write %s chunk: %w", name, err)
	}
	return nil
}
