// Package textenc converts between Go strings and the strict single-byte
// encodings used by relay import files.
package textenc

import (
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/marioIncandeza/relay-settings/pkg/errors"
)

// Encoding names
const (
	ASCII       = "ascii"
	UTF8        = "utf-8"
	Windows1252 = "windows-1252"
	ISO88591    = "iso-8859-1"
)

// Codec encodes and decodes text. Both directions fail on characters the
// encoding cannot represent rather than substituting them.
type Codec interface {
	Name() string
	Encode(s string) ([]byte, error)
	Decode(b []byte) (string, error)
}

var charmaps = map[string]*charmap.Charmap{
	Windows1252: charmap.Windows1252,
	ISO88591:    charmap.ISO8859_1,
}

var aliases = map[string]string{
	"us-ascii": ASCII,
	"cp1252":   Windows1252,
	"latin1":   ISO88591,
	"latin-1":  ISO88591,
	"utf8":     UTF8,
}

// Lookup returns the codec for name. Names are case-insensitive.
func Lookup(name string) (Codec, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = ASCII
	}
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}

	switch key {
	case ASCII:
		return asciiCodec{}, nil
	case UTF8:
		return utf8Codec{}, nil
	}
	if cm, ok := charmaps[key]; ok {
		return charmapCodec{name: key, enc: cm}, nil
	}
	return nil, errors.Newf(errors.ErrUnknownEncode, "unknown encoding %q", name).
		WithDetail("known", Names())
}

// SingleByte lists the encodings a device family may write. Each maps
// every character to exactly one byte.
func SingleByte() []string {
	return []string{ASCII, ISO88591, Windows1252}
}

// LookupSingleByte is Lookup restricted to SingleByte encodings
func LookupSingleByte(name string) (Codec, error) {
	codec, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if codec.Name() == UTF8 {
		return nil, errors.Newf(errors.ErrUnknownEncode, "encoding %q is not a single-byte encoding", name).
			WithDetail("allowed", SingleByte())
	}
	return codec, nil
}

// Names lists the canonical encoding names
func Names() []string {
	names := []string{ASCII, UTF8}
	for name := range charmaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type asciiCodec struct{}

func (asciiCodec) Name() string { return ASCII }

func (asciiCodec) Encode(s string) ([]byte, error) {
	for i, r := range s {
		if r >= utf8.RuneSelf {
			return nil, unrepresentable(ASCII, r, i)
		}
	}
	return []byte(s), nil
}

func (asciiCodec) Decode(b []byte) (string, error) {
	for i, c := range b {
		if c >= utf8.RuneSelf {
			return "", errors.Newf(errors.ErrEncoding, "byte 0x%02x at offset %d is not valid %s", c, i, ASCII)
		}
	}
	return string(b), nil
}

type utf8Codec struct{}

func (utf8Codec) Name() string { return UTF8 }

func (utf8Codec) Encode(s string) ([]byte, error) {
	if !utf8.ValidString(s) {
		return nil, errors.New(errors.ErrEncoding, "text is not valid utf-8")
	}
	return []byte(s), nil
}

func (utf8Codec) Decode(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", errors.New(errors.ErrEncoding, "input is not valid utf-8")
	}
	return string(b), nil
}

type charmapCodec struct {
	name string
	enc  *charmap.Charmap
}

func (c charmapCodec) Name() string { return c.name }

func (c charmapCodec) Encode(s string) ([]byte, error) {
	out, err := c.enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrEncoding, "text is not representable in %s", c.name)
	}
	return out, nil
}

func (c charmapCodec) Decode(b []byte) (string, error) {
	out, err := c.enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrEncoding, "input is not valid %s", c.name)
	}
	return string(out), nil
}

func unrepresentable(name string, r rune, offset int) error {
	return errors.Newf(errors.ErrEncoding, "character %q at offset %d is not representable in %s", r, offset, name).
		WithDetail("rune", r)
}
