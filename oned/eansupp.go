package oned

import (
	"fmt"

	barcoders "github.com/killercup/barcoders"
)

const (
	ean2CodeWidth = 4 + (7 * 2) + (2 * 1) // = 20
	ean5CodeWidth = 4 + (7 * 5) + (2 * 4) // = 47
)

var eanSuppStartPattern = []int{1, 1, 2}

// eanSuppDelineator separates consecutive supplemental digit encodings.
var eanSuppDelineator = []int{1, 1}

// ean5CheckDigitEncodings selects the parities of the five digits from the
// check digit; a set bit means the G pattern.
var ean5CheckDigitEncodings = [10]int{
	0x18, 0x14, 0x12, 0x11, 0x0C, 0x06, 0x03, 0x0A, 0x09, 0x05,
}

// EANSuppEncoder encodes EAN-2 and EAN-5 supplemental barcodes. The variant
// is chosen by the payload length.
type EANSuppEncoder struct{}

// NewEANSuppEncoder creates a new supplemental encoder.
func NewEANSuppEncoder() *EANSuppEncoder {
	return &EANSuppEncoder{}
}

// EncodeContents encodes supplemental contents into a boolean pattern.
func (e *EANSuppEncoder) EncodeContents(contents string) ([]bool, error) {
	length := len(contents)
	if length != 2 && length != 5 {
		return nil, fmt.Errorf("requested contents should be 2 or 5 digits long, but got %d: %w",
			length, barcoders.ErrInvalidLength)
	}
	if err := CheckNumeric(contents); err != nil {
		return nil, err
	}
	if length == 2 {
		return e.encodeTwoDigits(contents), nil
	}
	return e.encodeFiveDigits(contents), nil
}

func (e *EANSuppEncoder) encodeTwoDigits(contents string) []bool {
	parities := (10*int(contents[0]-'0') + int(contents[1]-'0')) % 4
	result := make([]bool, ean2CodeWidth)
	pos := 0

	pos += AppendPattern(result, pos, eanSuppStartPattern, true)

	for i := 0; i < 2; i++ {
		if i > 0 {
			pos += AppendPattern(result, pos, eanSuppDelineator, false)
		}
		digit := int(contents[i] - '0')
		if (parities>>(1-i))&1 == 1 {
			digit += 10
		}
		pos += AppendPattern(result, pos, LAndGPatterns[digit], false)
	}
	return result
}

func (e *EANSuppEncoder) encodeFiveDigits(contents string) []bool {
	parities := ean5CheckDigitEncodings[ean5Checksum(contents)]
	result := make([]bool, ean5CodeWidth)
	pos := 0

	pos += AppendPattern(result, pos, eanSuppStartPattern, true)

	for i := 0; i < 5; i++ {
		if i > 0 {
			pos += AppendPattern(result, pos, eanSuppDelineator, false)
		}
		digit := int(contents[i] - '0')
		if (parities>>(4-i))&1 == 1 {
			digit += 10
		}
		pos += AppendPattern(result, pos, LAndGPatterns[digit], false)
	}
	return result
}

// ean5Checksum computes the EAN-5 check digit, which selects the parity
// sequence and is never emitted as a digit of its own.
func ean5Checksum(s string) int {
	length := len(s)
	sum := 0
	for i := length - 2; i >= 0; i -= 2 {
		sum += int(s[i] - '0')
	}
	sum *= 3
	for i := length - 1; i >= 0; i -= 2 {
		sum += int(s[i] - '0')
	}
	sum *= 3
	return sum % 10
}

// AppendSupplement concatenates a primary pattern and a supplemental pattern,
// separated by gapModules space modules. A negative gap is treated as zero.
func AppendSupplement(primary, supplement []bool, gapModules int) []bool {
	if gapModules < 0 {
		gapModules = 0
	}
	result := make([]bool, 0, len(primary)+gapModules+len(supplement))
	result = append(result, primary...)
	result = append(result, make([]bool, gapModules)...)
	result = append(result, supplement...)
	return result
}
