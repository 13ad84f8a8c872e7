// Package bejdecode is the decoder driver: it reads the BEJ document's
// 7-byte prologue, reads the single root SFLV, invokes the recursive
// value decoder with a nil parent entry, and terminates the output with
// a trailing newline.
//
// Grounded on opendcm.FromReader's "read preamble, then parse" shape
// (dicom.go) — BEJ carries exactly one root SFLV rather than DICOM's flat
// element stream, so the per-element loop collapses to a single read.
package bejdecode

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/vkolodii/bejdump/internal/bejerrors"
	"github.com/vkolodii/bejdump/internal/bejvalue"
	"github.com/vkolodii/bejdump/internal/bufreader"
	"github.com/vkolodii/bejdump/internal/dictionary"
	"github.com/vkolodii/bejdump/internal/sflv"
)

// Known BEJ prologue version values. Both are accepted; any other value
// is still decoded, since the prologue's version gates nothing else in
// this decoder.
const (
	VersionV1_0 uint32 = 0xF1F0F000
	VersionV1_1 uint32 = 0xF1F1F000
)

// Prologue is the fixed 7-byte BEJ document header.
type Prologue struct {
	Version     uint32
	Flags       uint16
	SchemaClass uint8
}

// ReadPrologue reads the 7-byte version/flags/schema-class header from r.
func ReadPrologue(r io.Reader) (Prologue, error) {
	buf := make([]byte, 7)
	if _, err := io.ReadFull(r, buf); err != nil {
		return Prologue{}, bejerrors.Wrap(bejerrors.KindMalformedHeader, "read BEJ prologue", err)
	}
	return Prologue{
		Version:     binary.LittleEndian.Uint32(buf[0:4]),
		Flags:       binary.LittleEndian.Uint16(buf[4:6]),
		SchemaClass: buf[6],
	}, nil
}

// DecodeDocument reads a full BEJ document from r (prologue + one root
// SFLV), decodes it to JSON, and writes the result to w with a trailing
// newline. schema and annotation are the two dictionaries used to resolve
// names throughout the document; either may be nil, in which case every
// property falls back to its synthetic "seq_<N>" key.
func DecodeDocument(r io.Reader, w io.Writer, schema, annotation *dictionary.Dictionary) error {
	br := bufio.NewWriter(w)
	defer br.Flush()

	if _, err := ReadPrologue(r); err != nil {
		return err
	}

	fr := bufreader.NewFileReader(r)
	root, err := sflv.Read(fr)
	if err != nil {
		return err
	}

	ctx := bejvalue.NewContext(schema, annotation)
	if err := bejvalue.Decode(ctx, br, root, nil); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(br); err != nil {
		return err
	}
	return br.Flush()
}
