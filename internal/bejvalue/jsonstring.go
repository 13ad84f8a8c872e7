package bejvalue

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// stringDecoder repairs any ill-formed UTF-8 in a STRING payload before it
// is JSON-escaped, replacing invalid sequences with U+FFFD rather than
// rejecting the document outright. DSP0218 defines BEJ STRING payloads as
// UTF-8 with no charset selector on the wire (unlike DICOM, where VRs such
// as SH/LO/PN carry one of two dozen national character sets — see
// DESIGN.md for why the rest of the teacher's CharacterSetMap family of
// encodings has no component to bind to here).
var stringDecoder = encoding.ReplaceUnsupported(unicode.UTF8.NewDecoder())

func sanitizeUTF8(raw []byte) []byte {
	sanitized, _, err := transform.Bytes(stringDecoder, raw)
	if err != nil {
		return raw
	}
	return sanitized
}

// writeJSONString writes raw, JSON-quoted and escaped: ", \, \b, \f, \n,
// \r, \t, and any byte < 0x20 become escapes; everything else (including
// multi-byte UTF-8) passes through unchanged.
func writeJSONString(w io.Writer, raw []byte) error {
	s := sanitizeUTF8(raw)
	if _, err := io.WriteString(w, `"`); err != nil {
		return err
	}
	for _, b := range s {
		switch b {
		case '"':
			if _, err := io.WriteString(w, `\"`); err != nil {
				return err
			}
		case '\\':
			if _, err := io.WriteString(w, `\\`); err != nil {
				return err
			}
		case '\b':
			if _, err := io.WriteString(w, `\b`); err != nil {
				return err
			}
		case '\f':
			if _, err := io.WriteString(w, `\f`); err != nil {
				return err
			}
		case '\n':
			if _, err := io.WriteString(w, `\n`); err != nil {
				return err
			}
		case '\r':
			if _, err := io.WriteString(w, `\r`); err != nil {
				return err
			}
		case '\t':
			if _, err := io.WriteString(w, `\t`); err != nil {
				return err
			}
		default:
			if b < 0x20 {
				if _, err := fmt.Fprintf(w, `\u%04x`, b); err != nil {
					return err
				}
				continue
			}
			if _, err := w.Write([]byte{b}); err != nil {
				return err
			}
		}
	}
	_, err := io.WriteString(w, `"`)
	return err
}
