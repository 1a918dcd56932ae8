package raster

import "bytes"

const (
	lzwMaxWidth = 12
	lzwMaxCode  = 1<<lzwMaxWidth - 1
)

// lzwEncoder compresses data with the LZW variant used by GIF: variable-width
// codes packed least significant bit first, growing from litWidth+1 up to 12
// bits, a Clear code leading the stream and preceding every table reset, and
// an End-of-Information code closing it.
type lzwEncoder struct {
	bytes bytes.Buffer
	bit   uint32
	nbit  uint

	litWidth int
	width    uint
	clear    int
	eoi      int
	next     int
	table    map[int]int
}

// lzwEncode compresses data values, each below 1<<litWidth, with litWidth
// between 2 and 8.
func lzwEncode(data []byte, litWidth int) []byte {
	e := &lzwEncoder{litWidth: litWidth}
	e.reset()
	e.writeCode(e.clear)

	current := -1
	for _, b := range data {
		k := int(b)
		if current < 0 {
			current = k
			continue
		}
		key := current<<8 | k
		if code, ok := e.table[key]; ok {
			current = code
			continue
		}
		e.writeCode(current)
		e.table[key] = e.next
		if e.next == 1<<e.width {
			e.width++
		}
		e.next++
		if e.next > lzwMaxCode {
			// The table is full. Emit a Clear while both sides still agree
			// on the code width and start over.
			e.writeCode(e.clear)
			e.reset()
		}
		current = k
	}
	if current >= 0 {
		e.writeCode(current)
	}
	e.writeCode(e.eoi)
	e.flush()
	return e.bytes.Bytes()
}

func (e *lzwEncoder) reset() {
	e.width = uint(e.litWidth) + 1
	e.clear = 1 << e.litWidth
	e.eoi = e.clear + 1
	e.next = e.eoi + 1
	e.table = make(map[int]int)
}

// writeCode packs a code into the output, least significant bit first.
func (e *lzwEncoder) writeCode(code int) {
	e.bit |= uint32(code) << e.nbit
	e.nbit += e.width
	for e.nbit >= 8 {
		e.bytes.WriteByte(byte(e.bit))
		e.bit >>= 8
		e.nbit -= 8
	}
}

func (e *lzwEncoder) flush() {
	if e.nbit > 0 {
		e.bytes.WriteByte(byte(e.bit))
		e.bit = 0
		e.nbit = 0
	}
}
