package bejvalue

import (
	"encoding/binary"
	"io"
	"math"
	"strconv"

	"github.com/vkolodii/bejdump/internal/sflv"
)

// decodeReal implements a length-dispatched REAL decode. 4/8-byte
// IEEE-754 bit-casting is grounded on Element.GetValue's
// math.Float32frombits/Float64frombits branches (opendcm's
// core/representation.go, dicom.go) — the DSP0218 REAL format (5.3.7) is
// actually a compound record (sign, exponent-length, exponent,
// integer/fraction lengths, fraction); full decoding is deferred, and the
// 1/2-byte paths fall back to the raw little-endian unsigned value as a
// stopgap.
func decodeReal(w io.Writer, rec sflv.Record) error {
	switch len(rec.Value) {
	case 4:
		bits := binary.LittleEndian.Uint32(rec.Value)
		f := math.Float32frombits(bits)
		_, err := io.WriteString(w, strconv.FormatFloat(float64(f), 'g', 7, 32))
		return err
	case 8:
		bits := binary.LittleEndian.Uint64(rec.Value)
		f := math.Float64frombits(bits)
		_, err := io.WriteString(w, strconv.FormatFloat(f, 'g', 15, 64))
		return err
	case 1:
		_, err := io.WriteString(w, strconv.FormatUint(uint64(rec.Value[0]), 10))
		return err
	case 2:
		v := binary.LittleEndian.Uint16(rec.Value)
		_, err := io.WriteString(w, strconv.FormatUint(uint64(v), 10))
		return err
	default:
		_, err := io.WriteString(w, "null")
		return err
	}
}
