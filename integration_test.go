package barcoders_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"strings"
	"testing"

	barcoders "github.com/killercup/barcoders"
	"github.com/killercup/barcoders/oned"

	// Register all output generators.
	_ "github.com/killercup/barcoders/raster"
)

// --- Encode ---

func TestEncodePatternWidths(t *testing.T) {
	tests := []struct {
		name      string
		contents  string
		symbology barcoders.Symbology
		width     int
	}{
		{"EAN13", "750103131130", barcoders.SymbologyEAN13, 95},
		{"EAN8", "5512345", barcoders.SymbologyEAN8, 67},
		{"UPCA", "03600029145", barcoders.SymbologyUPCA, 95},
		{"JAN", "4901234567894", barcoders.SymbologyJAN, 95},
		{"Bookland", "9780306406157", barcoders.SymbologyBookland, 95},
		{"EANSupp2", "34", barcoders.SymbologyEANSupp, 20},
		{"EANSupp5", "51234", barcoders.SymbologyEANSupp, 47},
		{"Code39", "CODE", barcoders.SymbologyCode39, 59},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, err := barcoders.Encode(tc.contents, tc.symbology, nil)
			if err != nil {
				t.Fatalf("Encode(%q, %s) failed: %v", tc.contents, tc.symbology, err)
			}
			if len(code) != tc.width {
				t.Errorf("pattern width = %d, want %d", len(code), tc.width)
			}
		})
	}
}

func TestEncodeUnknownSymbology(t *testing.T) {
	_, err := barcoders.Encode("123", barcoders.Symbology(99), nil)
	if !errors.Is(err, barcoders.ErrUnknownSymbology) {
		t.Errorf("got %v, want ErrUnknownSymbology", err)
	}
}

func TestEncodeValidationErrors(t *testing.T) {
	tests := []struct {
		name      string
		contents  string
		symbology barcoders.Symbology
		want      error
	}{
		{"wrong check digit", "7501031311300", barcoders.SymbologyEAN13, barcoders.ErrChecksum},
		{"non-digit", "1a34567", barcoders.SymbologyEAN8, barcoders.ErrInvalidCharacter},
		{"lowercase", "code", barcoders.SymbologyCode39, barcoders.ErrInvalidCharacter},
		{"supplement length", "123", barcoders.SymbologyEANSupp, barcoders.ErrInvalidLength},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := barcoders.Encode(tc.contents, tc.symbology, nil); !errors.Is(err, tc.want) {
				t.Errorf("Encode(%q, %s) = %v, want %v", tc.contents, tc.symbology, err, tc.want)
			}
		})
	}
}

func TestJANAndBooklandMatchEAN13(t *testing.T) {
	for _, contents := range []string{"4901234567894", "9780306406157"} {
		want, err := barcoders.Encode(contents, barcoders.SymbologyEAN13, nil)
		if err != nil {
			t.Fatalf("Encode(%q, EAN_13) failed: %v", contents, err)
		}
		for _, sym := range []barcoders.Symbology{barcoders.SymbologyJAN, barcoders.SymbologyBookland} {
			got, err := barcoders.Encode(contents, sym, nil)
			if err != nil {
				t.Fatalf("Encode(%q, %s) failed: %v", contents, sym, err)
			}
			if patternString(got) != patternString(want) {
				t.Errorf("%s pattern differs from EAN_13 for %q", sym, contents)
			}
		}
	}
}

func TestCode39ChecksumOption(t *testing.T) {
	plain, err := barcoders.Encode("CODE", barcoders.SymbologyCode39, nil)
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	checked, err := barcoders.Encode("CODE", barcoders.SymbologyCode39, &barcoders.EncodeOptions{
		Code39Checksum: true,
	})
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	if len(plain) != 59 || len(checked) != 69 {
		t.Fatalf("pattern widths = %d/%d, want 59/69", len(plain), len(checked))
	}
	// Start sentinel plus four data characters with their gaps.
	if patternString(plain[:50]) != patternString(checked[:50]) {
		t.Error("check character changed the data prefix")
	}
}

func TestSupplementedEAN13(t *testing.T) {
	primary, err := barcoders.Encode("750103131130", barcoders.SymbologyEAN13, nil)
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	supp, err := barcoders.Encode("34", barcoders.SymbologyEANSupp, nil)
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}

	code := oned.AppendSupplement(primary, supp, 7)
	if len(code) != 95+7+20 {
		t.Fatalf("pattern width = %d, want %d", len(code), 95+7+20)
	}
	if patternString(code[:95]) != patternString(primary) {
		t.Error("primary pattern changed")
	}
	if patternString(code[95:102]) != strings.Repeat("0", 7) {
		t.Error("gap contains bar modules")
	}
	if patternString(code[102:]) != patternString(supp) {
		t.Error("supplement pattern changed")
	}
}

// --- Generate ---

func TestGenerateText(t *testing.T) {
	const pattern = "1010110001011000100110010010011010101000010101110010011101000100101"

	code, err := barcoders.Encode("5512345", barcoders.SymbologyEAN8, nil)
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	out, err := barcoders.Generate(code, barcoders.FormatText, &barcoders.RenderOptions{Height: 1})
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}

	want := strings.Map(func(r rune) rune {
		if r == '1' {
			return '#'
		}
		return ' '
	}, pattern)
	if string(out) != want {
		t.Errorf("got  %q\nwant %q", out, want)
	}
}

func TestGeneratePNG(t *testing.T) {
	code, err := barcoders.Encode("750103131130", barcoders.SymbologyEAN13, nil)
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	out, err := barcoders.Generate(code, barcoders.FormatPNG, nil)
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}

	if !bytes.HasPrefix(out, []byte("\x89PNG\r\n\x1a\n")) {
		t.Fatal("output does not start with the PNG signature")
	}
	if got := binary.BigEndian.Uint32(out[16:20]); got != 95 {
		t.Errorf("width = %d, want 95", got)
	}
	if got := binary.BigEndian.Uint32(out[20:24]); got != uint32(barcoders.DefaultHeight) {
		t.Errorf("height = %d, want %d", got, barcoders.DefaultHeight)
	}
}

func TestGenerateGIF(t *testing.T) {
	code, err := barcoders.Encode("750103131130", barcoders.SymbologyEAN13, nil)
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	out, err := barcoders.Generate(code, barcoders.FormatGIF, nil)
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}

	if !bytes.HasPrefix(out, []byte("GIF89a")) {
		t.Fatal("output does not start with the GIF89a signature")
	}
	if got := binary.LittleEndian.Uint16(out[6:8]); got != 95 {
		t.Errorf("width = %d, want 95", got)
	}
	if got := binary.LittleEndian.Uint16(out[8:10]); got != uint16(barcoders.DefaultHeight) {
		t.Errorf("height = %d, want %d", got, barcoders.DefaultHeight)
	}
	if out[len(out)-1] != 0x3B {
		t.Errorf("trailer = %#x, want 0x3b", out[len(out)-1])
	}
}

func TestGenerateUnknownFormat(t *testing.T) {
	_, err := barcoders.Generate([]bool{true}, barcoders.OutputFormat(99), nil)
	if !errors.Is(err, barcoders.ErrUnknownFormat) {
		t.Errorf("got %v, want ErrUnknownFormat", err)
	}
}

func TestGenerateRejectsBadDimensions(t *testing.T) {
	code, err := barcoders.Encode("5512345", barcoders.SymbologyEAN8, nil)
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	for _, opts := range []*barcoders.RenderOptions{
		{Height: -1},
		{ModuleWidth: -1},
		{QuietZone: -1},
	} {
		if _, err := barcoders.Generate(code, barcoders.FormatText, opts); !errors.Is(err, barcoders.ErrInvalidDimension) {
			t.Errorf("Generate(%+v) = %v, want ErrInvalidDimension", opts, err)
		}
	}
}

// patternString renders a boolean pattern as a string of 1s and 0s.
func patternString(code []bool) string {
	var sb strings.Builder
	for _, b := range code {
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
