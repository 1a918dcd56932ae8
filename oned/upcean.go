package oned

import (
	"fmt"

	barcoders "github.com/killercup/barcoders"
)

// UPC/EAN guard patterns.
var (
	UPCEANStartEndPattern = []int{1, 1, 1}
	UPCEANMiddlePattern   = []int{1, 1, 1, 1, 1}
)

// LPatterns contains the "odd" or "L" patterns for encoding UPC/EAN digits.
// Each entry is the run lengths of a 7-module digit starting with a space;
// appending the same runs starting with a bar yields the "R" pattern.
var LPatterns = [10][]int{
	{3, 2, 1, 1}, // 0
	{2, 2, 2, 1}, // 1
	{2, 1, 2, 2}, // 2
	{1, 4, 1, 1}, // 3
	{1, 1, 3, 2}, // 4
	{1, 2, 3, 1}, // 5
	{1, 1, 1, 4}, // 6
	{1, 3, 1, 2}, // 7
	{1, 2, 1, 3}, // 8
	{3, 1, 1, 2}, // 9
}

// LAndGPatterns includes both the L and G patterns.
// Indices 0-9 are L patterns, 10-19 are G patterns (reversed L patterns).
var LAndGPatterns [20][]int

func init() {
	for i := 0; i < 10; i++ {
		LAndGPatterns[i] = LPatterns[i]
	}
	for i := 10; i < 20; i++ {
		widths := LPatterns[i-10]
		reversed := make([]int, len(widths))
		for j := 0; j < len(widths); j++ {
			reversed[j] = widths[len(widths)-j-1]
		}
		LAndGPatterns[i] = reversed
	}
}

// GetStandardUPCEANChecksum computes the UPC/EAN check digit for a string of
// digits (without the check digit itself). Returns -1 if s contains a
// non-digit character.
func GetStandardUPCEANChecksum(s string) int {
	length := len(s)
	sum := 0
	for i := length - 1; i >= 0; i -= 2 {
		d := int(s[i] - '0')
		if d < 0 || d > 9 {
			return -1
		}
		sum += d
	}
	sum *= 3
	for i := length - 2; i >= 0; i -= 2 {
		d := int(s[i] - '0')
		if d < 0 || d > 9 {
			return -1
		}
		sum += d
	}
	return (1000 - sum) % 10
}

// CheckStandardUPCEANChecksum verifies the UPC/EAN checksum.
func CheckStandardUPCEANChecksum(s string) bool {
	length := len(s)
	if length == 0 {
		return false
	}
	check := int(s[length-1] - '0')
	return GetStandardUPCEANChecksum(s[:length-1]) == check
}

// CheckUPCEANLength validates the length and character set, then computes or
// verifies the check digit. expectedWithout is the length without check digit,
// expectedWith is the length with check digit. Returns the contents with the
// check digit in place.
func CheckUPCEANLength(contents string, expectedWithout, expectedWith int) (string, error) {
	length := len(contents)
	if length != expectedWithout && length != expectedWith {
		return "", fmt.Errorf("requested contents should be %d or %d digits long, but got %d: %w",
			expectedWithout, expectedWith, length, barcoders.ErrInvalidLength)
	}
	if err := CheckNumeric(contents); err != nil {
		return "", err
	}
	if length == expectedWithout {
		check := GetStandardUPCEANChecksum(contents)
		contents += string(rune('0' + check))
	} else if !CheckStandardUPCEANChecksum(contents) {
		return "", fmt.Errorf("contents do not pass checksum: %w", barcoders.ErrChecksum)
	}
	return contents, nil
}
