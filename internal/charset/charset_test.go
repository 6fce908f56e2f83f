package charset

import (
	"bytes"
	"strings"
	"testing"

	"EncodingConverter/internal/errors"
)

func TestSupportedIsSingleton(t *testing.T) {
	if Supported() != Supported() {
		t.Error("Supported() should return the same registry every time")
	}
}

func TestRegistryContainsCommonEncodings(t *testing.T) {
	r := Supported()
	for _, name := range []string{"UTF-8", "IBM866", "windows-1251", "KOI8-R", "ISO-8859-1", "Shift_JIS", "GBK", "Big5", "EUC-KR"} {
		if r.Canonical(name) == "" {
			t.Errorf("registry should support %s", name)
		}
	}
	if r.Canonical(DefaultTarget) != DefaultTarget {
		t.Errorf("default target %q should be canonical", DefaultTarget)
	}
}

func TestNamesSortedAndCopied(t *testing.T) {
	r := Supported()
	names := r.Names()
	if len(names) != r.Len() || len(names) == 0 {
		t.Fatalf("Names() length = %d, Len() = %d", len(names), r.Len())
	}
	for i := 1; i < len(names); i++ {
		if strings.ToLower(names[i-1]) > strings.ToLower(names[i]) {
			t.Fatalf("names not sorted: %q before %q", names[i-1], names[i])
		}
	}

	names[0] = "mutated"
	if r.Names()[0] == "mutated" {
		t.Error("Names() should return a copy")
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"UTF-8", "UTF-8"},
		{"utf-8", "UTF-8"},
		{"utf8", "UTF-8"},
		{"ibm866", "IBM866"},
		{"cp866", "IBM866"},
		{" KOI8-R ", "KOI8-R"},
		{"GB-18030", "GB18030"},
	}

	r := Supported()
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			e, err := r.Lookup(tt.in)
			if err != nil {
				t.Fatalf("Lookup(%q): %v", tt.in, err)
			}
			if e.Name != tt.want {
				t.Errorf("Lookup(%q).Name = %q, want %q", tt.in, e.Name, tt.want)
			}
		})
	}
}

func TestLookupUnsupported(t *testing.T) {
	r := Supported()
	for _, name := range []string{"", "   ", "no-such-charset", "EBCDIC-XYZ"} {
		_, err := r.Lookup(name)
		if !errors.Is(err, errors.ErrUnsupportedEncoding) {
			t.Errorf("Lookup(%q) error = %v, want ErrUnsupportedEncoding", name, err)
		}
	}
}

func TestFilter(t *testing.T) {
	r := Supported()
	got := r.Filter("utf")
	if len(got) == 0 {
		t.Fatal("Filter(utf) should match the Unicode encodings")
	}
	for _, n := range got {
		if !strings.Contains(strings.ToLower(n), "utf") {
			t.Errorf("Filter(utf) returned %q", n)
		}
	}
	if len(r.Filter("")) != r.Len() {
		t.Error("empty filter should return every name")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	r := Supported()
	src := []byte("Привет, мир")

	cp866, err := r.Lookup("IBM866")
	if err != nil {
		t.Fatal(err)
	}
	encoded, err := cp866.Encode(src, false)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if bytes.Equal(encoded, src) {
		t.Fatal("IBM866 bytes should differ from UTF-8 bytes")
	}
	if len(encoded) != len([]rune(string(src))) {
		t.Errorf("IBM866 should be one byte per rune, got %d bytes", len(encoded))
	}

	decoded, err := cp866.Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(decoded, src) {
		t.Errorf("round trip = %q, want %q", decoded, src)
	}
}

func TestEncodeUnrepresentable(t *testing.T) {
	latin1, err := Supported().Lookup("ISO-8859-1")
	if err != nil {
		t.Fatal(err)
	}
	text := []byte("tea 茶")

	if _, err := latin1.Encode(text, false); err == nil {
		t.Error("strict encode of CJK into Latin-1 should fail")
	}

	out, err := latin1.Encode(text, true)
	if err != nil {
		t.Fatalf("lossy encode: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("tea ")) || len(out) != 5 {
		t.Errorf("lossy encode = %q, want ASCII prefix plus one substitute byte", out)
	}
}

func TestDetectUTF8(t *testing.T) {
	d := NewDetector(nil)
	text := strings.Repeat("Съешь же ещё этих мягких французских булок, да выпей чаю. ", 8)

	det := d.Detect([]byte(text))
	if !det.Conclusive {
		t.Fatalf("UTF-8 Cyrillic text should be conclusive, got %+v", det)
	}
	if det.Charset != "UTF-8" {
		t.Errorf("Charset = %q, want UTF-8", det.Charset)
	}
	if det.Confidence < DefaultMinConfidence {
		t.Errorf("Confidence = %d, want >= %d", det.Confidence, DefaultMinConfidence)
	}
}

func TestDetectInconclusive(t *testing.T) {
	d := NewDetector(nil)

	if det := d.Detect(nil); det.Conclusive || det.Charset != "" {
		t.Errorf("empty input should be inconclusive, got %+v", det)
	}

	binary := make([]byte, 512)
	for i := range binary {
		binary[i] = byte(i * 7)
	}
	if det := d.Detect(binary); det.Conclusive {
		t.Errorf("binary input should be inconclusive, got %+v", det)
	}
}

func TestDetectMinConfidence(t *testing.T) {
	d := NewDetector(nil)
	d.MinConfidence = 101

	det := d.Detect([]byte(strings.Repeat("Grüße aus Köln. ", 10)))
	if det.Conclusive {
		t.Errorf("nothing can reach confidence 101, got %+v", det)
	}
}

func TestStaticDetector(t *testing.T) {
	want := Detection{Charset: "KOI8-R", Confidence: 100, Conclusive: true}
	if got := StaticDetector(want).Detect([]byte("ignored")); got != want {
		t.Errorf("Detect() = %+v, want %+v", got, want)
	}
}

func TestIsWide(t *testing.T) {
	for name, want := range map[string]bool{
		"UTF-16LE": true,
		"utf-32be": true,
		"UTF-8":    false,
		"IBM866":   false,
	} {
		if got := isWide(name); got != want {
			t.Errorf("isWide(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestDetectHonorsMetaCharset(t *testing.T) {
	body := "<html><head><meta charset=\"windows-1251\"><title>t</title></head><body>" +
		strings.Repeat("Привет, мир. ", 20) + "</body></html>"
	cp1251, err := Supported().Lookup("windows-1251")
	if err != nil {
		t.Fatal(err)
	}
	data, err := cp1251.Encode([]byte(body), false)
	if err != nil {
		t.Fatal(err)
	}

	d := NewDetector(nil)
	det := d.Detect(data)
	if !det.Conclusive || det.Charset != "windows-1251" || det.Confidence != 100 {
		t.Errorf("declared charset should win, got %+v", det)
	}
}

func TestDeclaredIgnoresPlainText(t *testing.T) {
	d := NewDetector(nil)
	if name := d.declared([]byte("charset is mentioned but there is no markup")); name != "" {
		t.Errorf("declared() = %q, want empty", name)
	}
}

func TestDeclaredIgnoresMetaWithoutCharset(t *testing.T) {
	d := NewDetector(nil)
	page := []byte(`<html><head><meta name="description" content="charset tables"></head></html>`)
	if name := d.declared(page); name != "" {
		t.Errorf("declared() = %q, want empty", name)
	}
}

func TestDecodeRejectsInvalidBytes(t *testing.T) {
	r := Supported()
	tests := []struct {
		charset string
		data    []byte
	}{
		{"UTF-8", append([]byte("Привет"), 0xff, 0xfe, 'x')},
		{"UTF-8", []byte{'a', 0xc3}},
		{"windows-1252", []byte("caf\x81")},
		{"UTF-16LE", []byte{'a', 0x00, 'b'}},
	}

	for _, tt := range tests {
		t.Run(tt.charset, func(t *testing.T) {
			enc, err := r.Lookup(tt.charset)
			if err != nil {
				t.Fatal(err)
			}
			if _, err := enc.Decode(tt.data); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Decode(% x) error = %v, want ErrInvalidInput", tt.data, err)
			}
		})
	}
}

func TestDecodeKeepsEncodedReplacementCharacter(t *testing.T) {
	enc, err := Supported().Lookup("UTF-16LE")
	if err != nil {
		t.Fatal(err)
	}
	text := []byte("a�b")
	data, err := enc.Encode(text, false)
	if err != nil {
		t.Fatal(err)
	}

	got, err := enc.Decode(data)
	if err != nil {
		t.Fatalf("a U+FFFD present in the source is valid: %v", err)
	}
	if !bytes.Equal(got, text) {
		t.Errorf("Decode() = %q, want %q", got, text)
	}

	if got, err := Supported().Lookup("UTF-8"); err == nil {
		if _, err := got.Decode(text); err != nil {
			t.Errorf("valid UTF-8 with U+FFFD: %v", err)
		}
	}
}
