package oned

import (
	"fmt"
	"strings"

	barcoders "github.com/killercup/barcoders"
)

const code39Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ-. $/+%"

// code39CharacterEncodings holds the nine modules of each alphabet character
// as bits, most significant first.
var code39CharacterEncodings = [43]int{
	0x034, 0x121, 0x061, 0x160, 0x031, 0x130, 0x070, 0x025, 0x124, 0x064, // 0-9
	0x109, 0x049, 0x148, 0x019, 0x118, 0x058, 0x00D, 0x10C, 0x04C, 0x01C, // A-J
	0x103, 0x043, 0x142, 0x013, 0x112, 0x052, 0x007, 0x106, 0x046, 0x016, // K-T
	0x181, 0x0C1, 0x1C0, 0x091, 0x190, 0x0D0, 0x085, 0x184, 0x0C4, 0x0A8, // U-$
	0x0A2, 0x08A, 0x02A, // /-%
}

const code39AsteriskEncoding = 0x094

const code39MaxLength = 80

// Code39Encoder encodes Code 39 barcodes.
type Code39Encoder struct {
	withChecksum bool
}

// NewCode39Encoder creates a new Code 39 encoder. If withChecksum is true, a
// modulo-43 check character is inserted before the stop sentinel.
func NewCode39Encoder(withChecksum bool) *Code39Encoder {
	return &Code39Encoder{withChecksum: withChecksum}
}

// EncodeContents encodes Code 39 contents into a boolean pattern.
func (e *Code39Encoder) EncodeContents(contents string) ([]bool, error) {
	length := len(contents)
	if length == 0 || length > code39MaxLength {
		return nil, fmt.Errorf("requested contents should be 1 to %d characters long, but got %d: %w",
			code39MaxLength, length, barcoders.ErrInvalidLength)
	}

	indices := make([]int, 0, length+1)
	for i := 0; i < length; i++ {
		idx := strings.IndexByte(code39Alphabet, contents[i])
		if idx < 0 {
			return nil, fmt.Errorf("contents contain character %q at index %d outside the alphabet: %w",
				contents[i], i, barcoders.ErrInvalidCharacter)
		}
		indices = append(indices, idx)
	}
	if e.withChecksum {
		sum := 0
		for _, idx := range indices {
			sum += idx
		}
		indices = append(indices, sum%43)
	}

	// start sentinel + characters + stop sentinel, one narrow space after
	// every character but the last
	n := len(indices)
	result := make([]bool, 9*(n+2)+(n+1))
	pos := 0

	pos += appendCode39Character(result, pos, code39AsteriskEncoding)
	for _, idx := range indices {
		pos++
		pos += appendCode39Character(result, pos, code39CharacterEncodings[idx])
	}
	pos++
	appendCode39Character(result, pos, code39AsteriskEncoding)
	return result, nil
}

// appendCode39Character writes the nine modules of a character encoding into
// target at pos, most significant bit first. Returns the number of modules
// written.
func appendCode39Character(target []bool, pos int, encoding int) int {
	for i := 0; i < 9; i++ {
		target[pos+i] = encoding&(1<<uint(8-i)) != 0
	}
	return 9
}
