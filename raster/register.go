package raster

import (
	barcoders "github.com/killercup/barcoders"
)

func init() {
	barcoders.RegisterGenerator(barcoders.FormatText, func() barcoders.Generator {
		return NewTextGenerator()
	})
	barcoders.RegisterGenerator(barcoders.FormatPNG, func() barcoders.Generator {
		return NewPNGGenerator()
	})
	barcoders.RegisterGenerator(barcoders.FormatGIF, func() barcoders.Generator {
		return NewGIFGenerator()
	})
}
