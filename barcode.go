// Package barcoders encodes barcode payloads into module patterns and
// serializes them as text, PNG, or GIF byte streams.
package barcoders

// Symbology represents a barcode symbology.
type Symbology int

const (
	SymbologyEAN13 Symbology = iota
	SymbologyEAN8
	SymbologyUPCA
	SymbologyJAN
	SymbologyBookland
	SymbologyEANSupp
	SymbologyCode39
)

// String returns the name of the symbology.
func (s Symbology) String() string {
	switch s {
	case SymbologyEAN13:
		return "EAN_13"
	case SymbologyEAN8:
		return "EAN_8"
	case SymbologyUPCA:
		return "UPC_A"
	case SymbologyJAN:
		return "JAN"
	case SymbologyBookland:
		return "BOOKLAND"
	case SymbologyEANSupp:
		return "EAN_SUPP"
	case SymbologyCode39:
		return "CODE_39"
	default:
		return "UNKNOWN"
	}
}
