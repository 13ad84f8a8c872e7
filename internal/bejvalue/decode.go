// Package bejvalue implements the recursive value decoder: it consumes
// SFLV records and emits their canonical JSON representation,
// dispatching on the 4-bit principal format and recursing into SET/ARRAY
// over a nested bufreader.BufferReader carved from the SFLV's own value
// payload.
//
// SET/ARRAY recursion is grounded on ElementReader.readItem /
// readElementDataUndefLength's pattern of bounding a sub-reader over an
// embedded payload and looping child reads to an end condition (opendcm.go)
// — adapted from DICOM's defined/undefined-length item loop to BEJ's single
// NNINT-prefixed child count.
package bejvalue

import (
	"fmt"
	"io"
	"strconv"

	"github.com/vkolodii/bejdump/internal/bejerrors"
	"github.com/vkolodii/bejdump/internal/bufreader"
	"github.com/vkolodii/bejdump/internal/dictionary"
	"github.com/vkolodii/bejdump/internal/logging"
	"github.com/vkolodii/bejdump/internal/nnint"
	"github.com/vkolodii/bejdump/internal/resolver"
	"github.com/vkolodii/bejdump/internal/sflv"
)

// Decode writes rec's JSON representation to w, using entry (possibly nil)
// as the dictionary context for name/enum resolution.
func Decode(ctx *Context, w io.Writer, rec sflv.Record, entry *dictionary.Entry) error {
	switch rec.Format {
	case FormatSet:
		return decodeSet(ctx, w, rec, entry)
	case FormatArray:
		return decodeArray(ctx, w, rec, entry)
	case FormatNull:
		_, err := io.WriteString(w, "null")
		return err
	case FormatInteger:
		return decodeInteger(w, rec)
	case FormatEnum:
		return decodeEnum(ctx, w, rec, entry)
	case FormatString:
		return writeJSONString(w, rec.Value)
	case FormatReal:
		return decodeReal(w, rec)
	case FormatBoolean:
		val := "false"
		if rec.Length > 0 && rec.Value[0] != 0 {
			val = "true"
		}
		_, err := io.WriteString(w, val)
		return err
	case FormatByteString:
		_, err := io.WriteString(w, `"<byte_string>"`)
		return err
	case FormatChoice:
		logging.Warn("CHOICE format is not implemented; emitting null")
		_, err := io.WriteString(w, "null")
		return err
	case FormatPropertyAnnotation:
		logging.Warn("PROPERTY_ANNOTATION format is not implemented; emitting null")
		_, err := io.WriteString(w, "null")
		return err
	case FormatRegistryItem:
		logging.Warn("REGISTRY_ITEM format is not implemented; emitting null")
		_, err := io.WriteString(w, "null")
		return err
	default:
		if _, err := io.WriteString(w, "null"); err != nil {
			return err
		}
		return bejerrors.New(bejerrors.KindUnknownFormat, fmt.Sprintf("principal format 0x%02X", rec.Format))
	}
}

func writeIndent(w io.Writer, depth int) error {
	for i := 0; i < depth; i++ {
		if _, err := io.WriteString(w, "\t"); err != nil {
			return err
		}
	}
	return nil
}

// decodeSet emits a JSON object. Payload shape: NNINT
// element_count, then that many child SFLVs, each preceded in the emitted
// output by its resolved property name (or a synthetic "seq_<N>" key).
func decodeSet(ctx *Context, w io.Writer, rec sflv.Record, entry *dictionary.Entry) error {
	if err := ctx.enterContainer(); err != nil {
		return err
	}
	defer ctx.leaveContainer()

	payload := bufreader.NewBufferReader(rec.Value)
	count, err := readElementCount(payload)
	if err != nil {
		return err
	}

	if count == 0 {
		_, err := io.WriteString(w, "{}")
		return err
	}

	if _, err := io.WriteString(w, "{\n"); err != nil {
		return err
	}
	ctx.Indent++

	for i := uint32(0); i < count; i++ {
		child, err := sflv.Read(payload)
		if err != nil {
			return err
		}

		childDict := ctx.dictFor(child.DictSelector)
		resolved, found := resolver.Resolve(childDict, entry, child.Sequence, int8(child.Format))

		if err := writeIndent(w, ctx.Indent); err != nil {
			return err
		}

		var keyErr error
		if found && resolved.HasName {
			keyErr = writeJSONString(w, []byte(resolved.Name))
		} else {
			keyErr = writeJSONString(w, []byte(fmt.Sprintf("seq_%d", child.Sequence)))
		}
		if keyErr != nil {
			return keyErr
		}

		if _, err := io.WriteString(w, ": "); err != nil {
			return err
		}

		var childEntry *dictionary.Entry
		if found {
			childEntry = resolved
		}
		if err := Decode(ctx, w, child, childEntry); err != nil {
			return err
		}

		if i < count-1 {
			if _, err := io.WriteString(w, ",\n"); err != nil {
				return err
			}
		} else {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
	}

	ctx.Indent--
	if err := writeIndent(w, ctx.Indent); err != nil {
		return err
	}
	_, err = io.WriteString(w, "}")
	return err
}

// decodeArray emits a JSON array. Same NNINT-prefixed payload
// shape as SET, but every element inherits the array's own dictionary
// entry — BEJ arrays have one element schema, so the resolver is never
// consulted per-element.
func decodeArray(ctx *Context, w io.Writer, rec sflv.Record, entry *dictionary.Entry) error {
	if err := ctx.enterContainer(); err != nil {
		return err
	}
	defer ctx.leaveContainer()

	payload := bufreader.NewBufferReader(rec.Value)
	count, err := readElementCount(payload)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}

	for i := uint32(0); i < count; i++ {
		child, err := sflv.Read(payload)
		if err != nil {
			return err
		}
		if err := Decode(ctx, w, child, entry); err != nil {
			return err
		}
		if i < count-1 {
			if _, err := io.WriteString(w, ", "); err != nil {
				return err
			}
		}
	}

	_, err = io.WriteString(w, "]")
	return err
}

// readElementCount reads the leading NNINT element count shared by SET and
// ARRAY payloads. original_source/decode.c's ARRAY path dereferences an
// uninitialized pointer here instead of reading a count; this follows the
// SET pattern for both.
func readElementCount(payload *bufreader.BufferReader) (uint32, error) {
	return nnint.Read(payload)
}

func decodeInteger(w io.Writer, rec sflv.Record) error {
	n := len(rec.Value)
	if n == 0 {
		_, err := io.WriteString(w, "0")
		return err
	}
	if n > 8 {
		return bejerrors.New(bejerrors.KindOutOfBounds, fmt.Sprintf("INTEGER length %d exceeds 8 bytes", n))
	}

	var acc uint64
	for i, b := range rec.Value {
		acc |= uint64(b) << (8 * uint(i))
	}
	if n < 8 && rec.Value[n-1]&0x80 != 0 {
		acc |= ^uint64(0) &^ ((uint64(1) << (uint(n) * 8)) - 1)
	}

	_, err := io.WriteString(w, strconv.FormatInt(int64(acc), 10))
	return err
}

// decodeEnum resolves the enum option's sequence number against entry's
// children in the selected dictionary, emitting its name (or, on
// resolution failure, the quoted decimal sequence number).
func decodeEnum(ctx *Context, w io.Writer, rec sflv.Record, entry *dictionary.Entry) error {
	payload := bufreader.NewBufferReader(rec.Value)
	option, err := nnint.Read(payload)
	if err != nil {
		return err
	}

	dict := ctx.dictFor(rec.DictSelector)
	resolved, found := resolver.Resolve(dict, entry, option, resolver.AnyFormat)
	if found && resolved.HasName {
		return writeJSONString(w, []byte(resolved.Name))
	}
	return writeJSONString(w, []byte(strconv.FormatUint(uint64(option), 10)))
}
