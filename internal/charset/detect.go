package charset

import (
	"bytes"
	"strings"

	"github.com/saintfish/chardet"
	htmlcharset "golang.org/x/net/html/charset"
)

// DefaultMinConfidence is the lowest chardet confidence (0-100) accepted as
// a usable guess.
const DefaultMinConfidence = 10

// sniffLen bounds the prefix scanned for NUL bytes.
const sniffLen = 8000

// metaLen is how far into a document a <meta charset> declaration counts.
const metaLen = 1024

// Detection is the outcome of running the detector over a buffer.
// Charset is empty when Conclusive is false and nothing was guessed.
type Detection struct {
	Charset    string
	Language   string
	Confidence int
	Conclusive bool
}

// Detector guesses the character encoding of a byte buffer.
type Detector interface {
	Detect(data []byte) Detection
}

// ChardetDetector is the default Detector, backed by the ICU-derived
// recognizers in github.com/saintfish/chardet.
type ChardetDetector struct {
	// MinConfidence below which a guess is reported as inconclusive.
	MinConfidence int

	// HonorDeclared makes a charset declared in an HTML <meta> tag win
	// over the statistical guess.
	HonorDeclared bool

	registry *Registry
	text     *chardet.Detector
}

// NewDetector returns a ChardetDetector that only reports charsets the
// registry can decode. A nil registry means Supported().
func NewDetector(registry *Registry) *ChardetDetector {
	if registry == nil {
		registry = Supported()
	}
	return &ChardetDetector{
		MinConfidence: DefaultMinConfidence,
		HonorDeclared: true,
		registry:      registry,
		text:          chardet.NewTextDetector(),
	}
}

// Detect inspects the whole buffer. Empty input, input that looks binary,
// a low-confidence guess or a charset the registry cannot decode all yield
// Conclusive == false.
func (d *ChardetDetector) Detect(data []byte) Detection {
	if len(data) == 0 {
		return Detection{}
	}

	if d.HonorDeclared {
		if name := d.declared(data); name != "" {
			return Detection{Charset: name, Confidence: 100, Conclusive: true}
		}
	}

	best, err := d.text.DetectBest(data)
	if err != nil || best == nil {
		return Detection{}
	}

	det := Detection{
		Charset:    best.Charset,
		Language:   best.Language,
		Confidence: best.Confidence,
	}
	if det.Confidence < d.MinConfidence {
		return det
	}
	if looksBinary(data) && !isWide(det.Charset) {
		return det
	}

	canonical := d.registry.Canonical(det.Charset)
	if canonical == "" {
		return det
	}
	det.Charset = canonical
	det.Conclusive = true
	return det
}

// declared returns the registry name of the charset an HTML document
// declares for itself, or "" when there is no usable declaration.
func (d *ChardetDetector) declared(data []byte) string {
	head := data
	if len(head) > metaLen {
		head = head[:metaLen]
	}
	lower := bytes.ToLower(head)
	if !bytes.Contains(lower, []byte("<meta")) || !bytes.Contains(lower, []byte("charset")) {
		return ""
	}
	// Without a usable declaration DetermineEncoding falls back to a guess
	// (utf-8 or windows-1252); only a name spelled out in the head counts.
	enc, name, _ := htmlcharset.DetermineEncoding(head, "text/html")
	if enc == nil || !bytes.Contains(lower, []byte(strings.ToLower(name))) {
		return ""
	}
	return d.registry.Canonical(name)
}

// looksBinary reports whether the prefix of data contains a NUL byte.
// Text in single and multi-byte encodings never does; UTF-16 and UTF-32
// are handled by the caller.
func looksBinary(data []byte) bool {
	if len(data) > sniffLen {
		data = data[:sniffLen]
	}
	return bytes.IndexByte(data, 0) >= 0
}

func isWide(name string) bool {
	n := strings.ToUpper(name)
	return strings.HasPrefix(n, "UTF-16") || strings.HasPrefix(n, "UTF-32")
}

// StaticDetector always reports the same Detection. It is used when the
// source encoding is known up front.
type StaticDetector Detection

// Detect ignores data.
func (s StaticDetector) Detect([]byte) Detection {
	return Detection(s)
}
