package oned

import (
	"fmt"

	barcoders "github.com/killercup/barcoders"
)

const ean13CodeWidth = 3 + (7 * 6) + 5 + (7 * 6) + 3 // = 95

// ean13FirstDigitEncodings selects the parities of the six left-hand digits
// from the leading digit; a set bit means the G pattern.
var ean13FirstDigitEncodings = [10]int{0x00, 0x0B, 0x0D, 0x0E, 0x13, 0x19, 0x1C, 0x15, 0x16, 0x1A}

// EAN13Encoder encodes EAN-13 barcodes. JAN and Bookland barcodes share the
// same structure and use this encoder unchanged.
type EAN13Encoder struct{}

// NewEAN13Encoder creates a new EAN-13 encoder.
func NewEAN13Encoder() *EAN13Encoder {
	return &EAN13Encoder{}
}

// EncodeContents encodes EAN-13 contents into a boolean pattern.
func (e *EAN13Encoder) EncodeContents(contents string) ([]bool, error) {
	var err error
	contents, err = CheckUPCEANLength(contents, 12, 13)
	if err != nil {
		return nil, err
	}

	firstDigit := int(contents[0] - '0')
	parities := ean13FirstDigitEncodings[firstDigit]
	result := make([]bool, ean13CodeWidth)
	pos := 0

	pos += AppendPattern(result, pos, UPCEANStartEndPattern, true)

	for i := 1; i <= 6; i++ {
		digit := int(contents[i] - '0')
		if (parities>>(6-i))&1 == 1 {
			digit += 10
		}
		pos += AppendPattern(result, pos, LAndGPatterns[digit], false)
	}

	pos += AppendPattern(result, pos, UPCEANMiddlePattern, false)

	for i := 7; i <= 12; i++ {
		digit := int(contents[i] - '0')
		pos += AppendPattern(result, pos, LPatterns[digit], true)
	}

	AppendPattern(result, pos, UPCEANStartEndPattern, true)
	return result, nil
}

// UPCAEncoder encodes UPC-A barcodes by delegating to EAN-13.
type UPCAEncoder struct {
	ean13 *EAN13Encoder
}

// NewUPCAEncoder creates a new UPC-A encoder.
func NewUPCAEncoder() *UPCAEncoder {
	return &UPCAEncoder{ean13: NewEAN13Encoder()}
}

// EncodeContents encodes UPC-A contents into a boolean pattern.
func (e *UPCAEncoder) EncodeContents(contents string) ([]bool, error) {
	length := len(contents)
	if length != 11 && length != 12 {
		return nil, fmt.Errorf("requested contents should be 11 or 12 digits long, but got %d: %w",
			length, barcoders.ErrInvalidLength)
	}
	// Transform UPC-A to EAN-13 by prepending 0
	return e.ean13.EncodeContents("0" + contents)
}
