// Package nnint implements the NNINT (Non-Negative Integer) primitive per
// DSP0218 (5.3.3): a length-prefixed, little-endian, variable-width
// unsigned integer in [0, 2^32).
package nnint

import (
	"fmt"

	"github.com/vkolodii/bejdump/internal/bejerrors"
	"github.com/vkolodii/bejdump/internal/bufreader"
)

// Read decodes one NNINT from r: a length byte L in [1,4] followed by L
// little-endian value bytes, zero-extended to 32 bits.
func Read(r bufreader.Reader) (uint32, error) {
	lengthByte, err := r.ReadByte()
	if err != nil {
		return 0, bejerrors.Wrap(bejerrors.KindIO, "read NNINT length byte", err)
	}
	if lengthByte == 0 || lengthByte > 4 {
		return 0, bejerrors.New(bejerrors.KindInvalidNNINT, fmt.Sprintf("length byte %d not in [1,4]", lengthByte))
	}

	raw, err := r.ReadFull(int(lengthByte))
	if err != nil {
		return 0, bejerrors.Wrap(bejerrors.KindIO, fmt.Sprintf("read %d NNINT value bytes", lengthByte), err)
	}

	var value uint32
	for i, b := range raw {
		value |= uint32(b) << (8 * uint(i))
	}
	return value, nil
}
