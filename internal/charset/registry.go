// Package charset provides the process-wide registry of supported character
// encodings and the heuristic detector used to guess a file's source encoding.
//
// The registry is built once from golang.org/x/text and is read-only
// afterwards, so it is shared between goroutines without locking.
package charset

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"EncodingConverter/internal/errors"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// DefaultTarget is the encoding preselected when the user has not chosen one.
const DefaultTarget = "IBM866"

// aliases maps names reported by the detector, or commonly typed by users,
// that the IANA index does not know to their canonical registry names.
var aliases = map[string]string{
	"gb-18030": "GB18030",
	"utf8":     "UTF-8",
	"cp866":    "IBM866",
	"cp1251":   "windows-1251",
	"cp1252":   "windows-1252",
}

// Encoding is a resolved, usable character encoding.
type Encoding struct {
	Name string
	enc  encoding.Encoding
}

// ErrInvalidInput means the bytes are not valid in the encoding they are
// being decoded from.
var ErrInvalidInput = errors.New("input is not valid in this encoding")

// Decode converts bytes in this encoding to UTF-8 text. Bytes that are not
// valid in the encoding are an error rather than being replaced.
func (e Encoding) Decode(data []byte) ([]byte, error) {
	if strings.EqualFold(e.Name, "UTF-8") && !utf8.Valid(data) {
		return nil, fmt.Errorf("decode %s: %w", e.Name, ErrInvalidInput)
	}
	out, err := e.enc.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", e.Name, err)
	}
	// x/text decoders substitute U+FFFD for invalid sequences. Keep the
	// text only if the replacement character was really in the source,
	// i.e. it encodes back to the same bytes.
	if bytes.ContainsRune(out, utf8.RuneError) {
		back, err := e.enc.NewEncoder().Bytes(out)
		if err != nil || !bytes.Equal(back, data) {
			return nil, fmt.Errorf("decode %s: %w", e.Name, ErrInvalidInput)
		}
	}
	return out, nil
}

// Encode converts UTF-8 text to this encoding. Unless lossy is set, a rune
// the encoding cannot represent is an error; with lossy it is replaced by the
// encoding's substitution byte.
func (e Encoding) Encode(text []byte, lossy bool) ([]byte, error) {
	enc := e.enc.NewEncoder()
	if lossy {
		enc = encoding.ReplaceUnsupported(enc)
	}
	out, err := enc.Bytes(text)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", e.Name, err)
	}
	return out, nil
}

// Registry is an immutable lookup of supported encodings by canonical name.
type Registry struct {
	names  []string
	byName map[string]Encoding // keyed by lower-cased canonical name
}

var (
	supported     *Registry
	supportedOnce sync.Once
)

// Supported returns the process-wide registry, building it on first use.
func Supported() *Registry {
	supportedOnce.Do(func() {
		supported = newRegistry()
	})
	return supported
}

func newRegistry() *Registry {
	var all []encoding.Encoding
	all = append(all, unicode.All...)
	all = append(all, utf32.All...)
	all = append(all, charmap.All...)
	all = append(all, japanese.All...)
	all = append(all, korean.All...)
	all = append(all, simplifiedchinese.All...)
	all = append(all, traditionalchinese.All...)

	r := &Registry{byName: make(map[string]Encoding, len(all))}
	for _, e := range all {
		name := nameOf(e)
		if name == "" {
			// No IANA name (x-user-defined, some Mac code pages).
			continue
		}
		key := strings.ToLower(name)
		if _, dup := r.byName[key]; dup {
			continue
		}
		r.byName[key] = Encoding{Name: name, enc: e}
		r.names = append(r.names, name)
	}
	sort.Slice(r.names, func(i, j int) bool {
		return strings.ToLower(r.names[i]) < strings.ToLower(r.names[j])
	})
	return r
}

// nameOf prefers the MIME name ("ISO-8859-1") over the formal IANA one
// ("ISO_8859-1:1987").
func nameOf(e encoding.Encoding) string {
	if name, err := ianaindex.MIME.Name(e); err == nil && name != "" {
		return name
	}
	if name, err := ianaindex.IANA.Name(e); err == nil {
		return name
	}
	return ""
}

// Names returns the canonical names of all supported encodings, sorted
// case-insensitively. The slice is a copy.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of supported encodings.
func (r *Registry) Len() int {
	return len(r.names)
}

// Lookup resolves a name or alias (case-insensitive) to a supported encoding.
func (r *Registry) Lookup(name string) (Encoding, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return Encoding{}, errors.Wrap(errors.ErrUnsupportedEncoding, "empty encoding name")
	}
	if canonical, ok := aliases[key]; ok {
		key = strings.ToLower(canonical)
	}
	if e, ok := r.byName[key]; ok {
		return e, nil
	}

	// Fall back to the IANA and WHATWG alias tables, then canonicalize.
	for _, find := range []func(string) (encoding.Encoding, error){
		ianaindex.IANA.Encoding,
		ianaindex.MIME.Encoding,
		htmlindex.Get,
	} {
		enc, err := find(key)
		if err != nil || enc == nil {
			continue
		}
		if e, ok := r.byName[strings.ToLower(nameOf(enc))]; ok {
			return e, nil
		}
	}
	return Encoding{}, fmt.Errorf("%w: %q", errors.ErrUnsupportedEncoding, name)
}

// Canonical returns the canonical name for name, or "" if it is unsupported.
func (r *Registry) Canonical(name string) string {
	e, err := r.Lookup(name)
	if err != nil {
		return ""
	}
	return e.Name
}

// Filter returns the names containing substr (case-insensitive).
func (r *Registry) Filter(substr string) []string {
	if substr == "" {
		return r.Names()
	}
	needle := strings.ToLower(substr)
	var out []string
	for _, n := range r.names {
		if strings.Contains(strings.ToLower(n), needle) {
			out = append(out, n)
		}
	}
	return out
}
