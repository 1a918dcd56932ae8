package barcoders

import "fmt"

// EncodeOptions configures barcode encoding behavior.
type EncodeOptions struct {
	// Code39Checksum appends a modulo-43 check character to Code 39 barcodes.
	Code39Checksum bool
}

// Encoder encodes a payload into a module pattern. Each element of the
// pattern is one module: true for a bar, false for a space.
type Encoder interface {
	// EncodeContents encodes the contents into a boolean array representing bars.
	EncodeContents(contents string) ([]bool, error)
}

// encoderFactory is a function that creates an Encoder.
type encoderFactory func(opts *EncodeOptions) Encoder

var encoderFactories = map[Symbology]encoderFactory{}

// RegisterEncoder registers an encoder factory for the given symbology.
func RegisterEncoder(sym Symbology, factory encoderFactory) {
	encoderFactories[sym] = factory
}

// Encode encodes the given contents into a module pattern of the specified
// symbology.
func Encode(contents string, sym Symbology, opts *EncodeOptions) ([]bool, error) {
	factory, ok := encoderFactories[sym]
	if !ok {
		return nil, fmt.Errorf("no encoder registered for symbology %s: %w", sym, ErrUnknownSymbology)
	}
	encoder := factory(opts)
	return encoder.EncodeContents(contents)
}
