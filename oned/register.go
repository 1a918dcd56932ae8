package oned

import barcoders "github.com/killercup/barcoders"

func init() {
	// JAN and Bookland are EAN-13 with dedicated number-system prefixes; the
	// module structure is identical.
	ean13Factory := func(opts *barcoders.EncodeOptions) barcoders.Encoder { return NewEAN13Encoder() }
	barcoders.RegisterEncoder(barcoders.SymbologyEAN13, ean13Factory)
	barcoders.RegisterEncoder(barcoders.SymbologyJAN, ean13Factory)
	barcoders.RegisterEncoder(barcoders.SymbologyBookland, ean13Factory)

	barcoders.RegisterEncoder(barcoders.SymbologyUPCA, func(opts *barcoders.EncodeOptions) barcoders.Encoder {
		return NewUPCAEncoder()
	})
	barcoders.RegisterEncoder(barcoders.SymbologyEAN8, func(opts *barcoders.EncodeOptions) barcoders.Encoder {
		return NewEAN8Encoder()
	})
	barcoders.RegisterEncoder(barcoders.SymbologyEANSupp, func(opts *barcoders.EncodeOptions) barcoders.Encoder {
		return NewEANSuppEncoder()
	})
	barcoders.RegisterEncoder(barcoders.SymbologyCode39, func(opts *barcoders.EncodeOptions) barcoders.Encoder {
		return NewCode39Encoder(opts != nil && opts.Code39Checksum)
	})
}
