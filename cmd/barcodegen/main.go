package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	barcoders "github.com/killercup/barcoders"
	"github.com/killercup/barcoders/oned"

	// Register all output generators.
	_ "github.com/killercup/barcoders/raster"
)

func main() {
	symbology := flag.String("symbology", "ean13", "barcode symbology: ean13, ean8, upca, jan, bookland, eansupp, code39")
	format := flag.String("format", "text", "output format: text, png, gif")
	output := flag.String("o", "", "output file (default stdout)")
	height := flag.Int("height", 0, "bar height in pixels")
	moduleWidth := flag.Int("module-width", 0, "pixels per module")
	quietZone := flag.Int("quiet-zone", 0, "quiet zone width on each side, in modules")
	code39Checksum := flag.Bool("code39-checksum", false, "append the modulo 43 check character (Code 39 only)")
	supplement := flag.String("supplement", "", "2- or 5-digit supplement appended after the primary code")
	supplementGap := flag.Int("supplement-gap", 7, "gap between the primary code and the supplement, in modules")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: barcodegen [flags] <contents>\n\n")
		fmt.Fprintf(os.Stderr, "Encode contents as a barcode and write it as text, PNG, or GIF.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	sym, err := parseSymbology(*symbology)
	if err != nil {
		fatal(err)
	}
	outFormat, err := parseFormat(*format)
	if err != nil {
		fatal(err)
	}

	code, err := barcoders.Encode(flag.Arg(0), sym, &barcoders.EncodeOptions{
		Code39Checksum: *code39Checksum,
	})
	if err != nil {
		fatal(err)
	}
	if *supplement != "" {
		supp, err := barcoders.Encode(*supplement, barcoders.SymbologyEANSupp, nil)
		if err != nil {
			fatal(fmt.Errorf("supplement: %w", err))
		}
		code = oned.AppendSupplement(code, supp, *supplementGap)
	}

	out, err := barcoders.Generate(code, outFormat, &barcoders.RenderOptions{
		Height:      *height,
		ModuleWidth: *moduleWidth,
		QuietZone:   *quietZone,
	})
	if err != nil {
		fatal(err)
	}

	if *output == "" {
		if _, err := os.Stdout.Write(out); err != nil {
			fatal(err)
		}
		if outFormat == barcoders.FormatText {
			fmt.Println()
		}
		return
	}
	if err := os.WriteFile(*output, out, 0o644); err != nil {
		fatal(err)
	}
}

func parseSymbology(name string) (barcoders.Symbology, error) {
	switch strings.ToLower(name) {
	case "ean13", "ean-13":
		return barcoders.SymbologyEAN13, nil
	case "ean8", "ean-8":
		return barcoders.SymbologyEAN8, nil
	case "upca", "upc-a":
		return barcoders.SymbologyUPCA, nil
	case "jan":
		return barcoders.SymbologyJAN, nil
	case "bookland":
		return barcoders.SymbologyBookland, nil
	case "eansupp", "ean-supp":
		return barcoders.SymbologyEANSupp, nil
	case "code39", "code-39":
		return barcoders.SymbologyCode39, nil
	}
	return 0, fmt.Errorf("unknown symbology %q", name)
}

func parseFormat(name string) (barcoders.OutputFormat, error) {
	switch strings.ToLower(name) {
	case "text":
		return barcoders.FormatText, nil
	case "png":
		return barcoders.FormatPNG, nil
	case "gif":
		return barcoders.FormatGIF, nil
	}
	return 0, fmt.Errorf("unknown output format %q", name)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "barcodegen: %v\n", err)
	os.Exit(1)
}
