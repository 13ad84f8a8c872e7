// Package sflv reads Sequence/Format/Length/Value records per DSP0218
// (5.3.6 - 5.3.9), the universal container for every value in a BEJ
// document.
package sflv

import (
	"github.com/vkolodii/bejdump/internal/bejerrors"
	"github.com/vkolodii/bejdump/internal/bufreader"
	"github.com/vkolodii/bejdump/internal/nnint"
)

// Record is one decoded SFLV tuple.
type Record struct {
	Sequence     uint32
	DictSelector uint8 // 0 = schema dictionary, 1 = annotation dictionary
	Format       uint8 // 4-bit principal data type
	SubFlags     uint8 // low nibble of the raw format byte; parsed, not acted on
	Length       uint32
	Value        []byte
}

// Schema and Annotation name the two dictionary selectors a Record's
// DictSelector bit may choose between.
const (
	Schema     uint8 = 0
	Annotation uint8 = 1
)

// Read parses one SFLV record from r: NNINT sequence, one format byte,
// NNINT length, then exactly length raw value bytes.
func Read(r bufreader.Reader) (Record, error) {
	rawSequence, err := nnint.Read(r)
	if err != nil {
		return Record{}, err
	}

	formatByte, err := r.ReadByte()
	if err != nil {
		return Record{}, bejerrors.Wrap(bejerrors.KindIO, "read SFLV format byte", err)
	}

	length, err := nnint.Read(r)
	if err != nil {
		return Record{}, err
	}

	var value []byte
	if length > 0 {
		value, err = r.ReadFull(int(length))
		if err != nil {
			return Record{}, bejerrors.Wrap(bejerrors.KindIO, "read SFLV value payload", err)
		}
	} else {
		value = []byte{}
	}

	return Record{
		Sequence:     rawSequence >> 1,
		DictSelector: uint8(rawSequence & 1),
		Format:       (formatByte >> 4) & 0x0F,
		SubFlags:     formatByte & 0x0F,
		Length:       length,
		Value:        value,
	}, nil
}
