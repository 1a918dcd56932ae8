package barcoders

import "fmt"

// OutputFormat represents an output serialization format.
type OutputFormat int

const (
	FormatText OutputFormat = iota
	FormatPNG
	FormatGIF
)

// String returns the name of the output format.
func (f OutputFormat) String() string {
	switch f {
	case FormatText:
		return "TEXT"
	case FormatPNG:
		return "PNG"
	case FormatGIF:
		return "GIF"
	default:
		return "UNKNOWN"
	}
}

// Default render parameters applied when RenderOptions fields are unset.
const (
	DefaultHeight      = 80
	DefaultModuleWidth = 1
)

// RenderOptions configures rendering of a module pattern.
type RenderOptions struct {
	// Height is the number of pixel rows. Zero selects DefaultHeight.
	Height int

	// ModuleWidth is the number of pixels per module. Zero selects
	// DefaultModuleWidth.
	ModuleWidth int

	// QuietZone is the number of background modules added to each side of
	// the pattern before scaling.
	QuietZone int

	// Foreground overrides the bar intensity. Defaults to 0x00 (black).
	Foreground *uint8

	// Background overrides the space intensity. Defaults to 0xFF (white).
	Background *uint8
}

// Generator serializes a module pattern into an output byte stream.
type Generator interface {
	// Generate renders the module pattern with the given options.
	Generate(code []bool, opts *RenderOptions) ([]byte, error)
}

// generatorFactory is a function that creates a Generator.
type generatorFactory func() Generator

var generatorFactories = map[OutputFormat]generatorFactory{}

// RegisterGenerator registers a generator factory for the given output format.
func RegisterGenerator(format OutputFormat, factory generatorFactory) {
	generatorFactories[format] = factory
}

// Generate serializes the given module pattern in the specified output format.
func Generate(code []bool, format OutputFormat, opts *RenderOptions) ([]byte, error) {
	factory, ok := generatorFactories[format]
	if !ok {
		return nil, fmt.Errorf("no generator registered for format %s: %w", format, ErrUnknownFormat)
	}
	generator := factory()
	return generator.Generate(code, opts)
}
