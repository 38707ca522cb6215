package engine

import (
	"bytes"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/dshills/forge/internal/engine/rope"
)

// Encoding is the on-disk text encoding of a buffer.
type Encoding uint8

const (
	EncodingUTF8    Encoding = iota // UTF-8 without a byte order mark
	EncodingUTF8BOM                 // UTF-8 with a byte order mark
	EncodingUTF16LE                 // UTF-16 little endian with a byte order mark
	EncodingUTF16BE                 // UTF-16 big endian with a byte order mark
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// String returns the conventional name of the encoding.
func (e Encoding) String() string {
	switch e {
	case EncodingUTF8BOM:
		return "utf-8-bom"
	case EncodingUTF16LE:
		return "utf-16le"
	case EncodingUTF16BE:
		return "utf-16be"
	default:
		return "utf-8"
	}
}

// DetectEncoding picks the encoding from a byte order mark. Data without
// one is taken to be UTF-8.
func DetectEncoding(data []byte) Encoding {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return EncodingUTF8BOM
	case bytes.HasPrefix(data, bomUTF16LE):
		return EncodingUTF16LE
	case bytes.HasPrefix(data, bomUTF16BE):
		return EncodingUTF16BE
	default:
		return EncodingUTF8
	}
}

// codec returns the transcoder for UTF-16 encodings and nil for UTF-8,
// which is handled without transcoding so invalid bytes are rejected
// rather than replaced.
func (e Encoding) codec() encoding.Encoding {
	switch e {
	case EncodingUTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM)
	case EncodingUTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM)
	default:
		return nil
	}
}

// decode converts file bytes to UTF-8 text, stripping any byte order
// mark. Content that does not decode cleanly is ErrInvalidEncoding.
func decode(data []byte) (string, Encoding, error) {
	enc := DetectEncoding(data)
	if enc == EncodingUTF8BOM {
		data = data[len(bomUTF8):]
	}
	if c := enc.codec(); c != nil {
		out, _, err := transform.Bytes(c.NewDecoder(), data)
		if err != nil {
			return "", enc, ErrInvalidEncoding
		}
		data = out
	}
	if !utf8.Valid(data) {
		return "", enc, ErrInvalidEncoding
	}
	return string(data), enc, nil
}

// encodeTo streams r to w as file bytes in enc and returns the number of
// bytes written.
func encodeTo(w io.Writer, r rope.Rope, enc Encoding) (int64, error) {
	cw := &countingWriter{w: w}
	c := enc.codec()
	if c == nil {
		if enc == EncodingUTF8BOM {
			if _, err := cw.Write(bomUTF8); err != nil {
				return cw.n, err
			}
		}
		_, err := r.WriteTo(cw)
		return cw.n, err
	}
	tw := transform.NewWriter(cw, c.NewEncoder())
	if _, err := r.WriteTo(tw); err != nil {
		return cw.n, err
	}
	err := tw.Close()
	return cw.n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
