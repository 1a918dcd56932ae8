package raster

import (
	"bytes"
	"compress/lzw"
	"io"
	"testing"
)

// --- Exact code streams ---

func TestLZWEncodeVectors(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		litWidth int
		want     []byte
	}{
		{"empty", nil, 2, []byte{0x2C}},
		{"single value", []byte{3}, 2, []byte{0x5C, 0x01}},
		{"short pattern", []byte{0, 1, 1, 0}, 2, []byte{0x44, 0x02, 0x05}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := lzwEncode(tc.data, tc.litWidth)
			if !bytes.Equal(got, tc.want) {
				t.Errorf("lzwEncode(%v, %d) = %#v, want %#v", tc.data, tc.litWidth, got, tc.want)
			}
		})
	}
}

// --- Round trips through the standard decoder ---

func lzwDecode(t *testing.T, data []byte, litWidth int) []byte {
	t.Helper()
	r := lzw.NewReader(bytes.NewReader(data), lzw.LSB, litWidth)
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	return out
}

func TestLZWRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		litWidth int
	}{
		{"empty", nil, 2},
		{"single value", []byte{2}, 2},
		{"alternating", bytes.Repeat([]byte{0, 1}, 300), 2},
		{"uniform run", bytes.Repeat([]byte{1}, 5000), 2},
		{"uniform bytes", bytes.Repeat([]byte{0xAB}, 5000), 8},
		{"all values", func() []byte {
			data := make([]byte, 256)
			for i := range data {
				data[i] = byte(i)
			}
			return data
		}(), 8},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := lzwDecode(t, lzwEncode(tc.data, tc.litWidth), tc.litWidth)
			if !bytes.Equal(got, tc.data) {
				t.Errorf("round trip changed data: got %d bytes, want %d", len(got), len(tc.data))
			}
		})
	}
}

// TestLZWRoundTripLong feeds enough low-redundancy data through the encoder
// to fill the code table several times over, so the stream crosses every
// code width and the mid-stream table resets.
func TestLZWRoundTripLong(t *testing.T) {
	data := make([]byte, 1<<15)
	seed := uint32(1)
	for i := range data {
		seed = seed*1664525 + 1013904223
		data[i] = byte(seed >> 24)
	}

	got := lzwDecode(t, lzwEncode(data, 8), 8)
	if !bytes.Equal(got, data) {
		t.Fatalf("round trip changed data: got %d bytes, want %d", len(got), len(data))
	}
}

// TestLZWRoundTripPixelIndexes mirrors how the GIF encoder calls the
// compressor: two-valued pixel data at the minimum code size.
func TestLZWRoundTripPixelIndexes(t *testing.T) {
	data := make([]byte, 4000)
	for i := range data {
		if i%7 == 0 || i%11 == 3 {
			data[i] = 1
		}
	}

	got := lzwDecode(t, lzwEncode(data, gifLitWidth), gifLitWidth)
	if !bytes.Equal(got, data) {
		t.Fatalf("round trip changed data: got %d bytes, want %d", len(got), len(data))
	}
}
