// Package dictionary loads BEJ schema/annotation dictionaries per DSP0218
// (7.2.3.2): a flat table of entries whose parent→child relationships are
// expressed as byte-offset ranges within the same file (an arena-and-index
// tree, not a pointer graph). Grounded on dictionary.DicomDictionary /
// dictionary.DictEntry (opendcm), adapted from a generated flat map keyed
// by tag to a loaded flat table keyed by intra-file offset ranges.
package dictionary

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/vkolodii/bejdump/internal/bejerrors"
	"github.com/vkolodii/bejdump/internal/logging"
)

const (
	// HeaderSize is the fixed 12-byte dictionary file header.
	HeaderSize = 12
	// EntrySize is the fixed 10-byte width of one dictionary entry row.
	EntrySize = 10
)

// Entry is one row of a dictionary (DSP0218 7.2.3.2).
type Entry struct {
	Format             byte
	SequenceNumber     uint16
	ChildPointerOffset uint16
	ChildCount         uint16
	NameLength         byte
	NameOffset         uint16
	Name               string
	HasName            bool
}

// PrincipalFormat returns the high nibble of Format, the 4-bit principal
// data type used for format-filtered resolution.
func (e *Entry) PrincipalFormat() uint8 {
	return getMSB4(e.Format)
}

// getMSB4 extracts the 4 most significant bits of value.
func getMSB4(value byte) uint8 {
	return (value >> 4) & 0x0F
}

// Dictionary is an ordered, immutable table of entries plus header fields
// (DSP0218 7.2.3.2). It is loaded once, shared read-only for the whole
// decode, and never mutated.
type Dictionary struct {
	VersionTag    byte
	Flags         byte
	EntryCount    uint16
	SchemaVersion uint32
	Size          uint32
	Entries       []Entry
}

// LoadFile reads and parses the dictionary file at path.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, bejerrors.Wrap(bejerrors.KindIO, fmt.Sprintf("open dictionary %q", path), err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, bejerrors.Wrap(bejerrors.KindIO, fmt.Sprintf("stat dictionary %q", path), err)
	}

	data := make([]byte, stat.Size())
	if _, err := readFull(f, data); err != nil {
		return nil, bejerrors.Wrap(bejerrors.KindIO, fmt.Sprintf("read dictionary %q", path), err)
	}
	return Load(data)
}

func readFull(f *os.File, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := f.Read(buf[total:])
		total += n
		if err != nil {
			return total, err
		}
		if n == 0 {
			return total, fmt.Errorf("short read")
		}
	}
	return total, nil
}

// Load parses an already-slurped dictionary file image.
func Load(data []byte) (*Dictionary, error) {
	if len(data) < HeaderSize {
		return nil, bejerrors.New(bejerrors.KindMalformedHeader, "file shorter than 12-byte header")
	}

	d := &Dictionary{
		VersionTag:    data[0],
		Flags:         data[1],
		EntryCount:    binary.LittleEndian.Uint16(data[2:4]),
		SchemaVersion: binary.LittleEndian.Uint32(data[4:8]),
		Size:          binary.LittleEndian.Uint32(data[8:12]),
	}

	need := HeaderSize + int(d.EntryCount)*EntrySize
	if len(data) < need {
		return nil, bejerrors.New(bejerrors.KindMalformedHeader,
			fmt.Sprintf("file too short for %d entries: need %d bytes, have %d", d.EntryCount, need, len(data)))
	}

	d.Entries = make([]Entry, d.EntryCount)
	for i := 0; i < int(d.EntryCount); i++ {
		off := HeaderSize + i*EntrySize
		row := data[off : off+EntrySize]
		e := Entry{
			Format:             row[0],
			SequenceNumber:     binary.LittleEndian.Uint16(row[1:3]),
			ChildPointerOffset: binary.LittleEndian.Uint16(row[3:5]),
			ChildCount:         binary.LittleEndian.Uint16(row[5:7]),
			NameLength:         row[7],
			NameOffset:         binary.LittleEndian.Uint16(row[8:10]),
		}

		if e.ChildPointerOffset != 0 {
			if int(e.ChildPointerOffset) < HeaderSize || (int(e.ChildPointerOffset)-HeaderSize)%EntrySize != 0 {
				return nil, bejerrors.New(bejerrors.KindOutOfBounds,
					fmt.Sprintf("entry %d: child_pointer_offset %d is not a valid entry-row offset", i, e.ChildPointerOffset))
			}
		}

		if e.NameLength > 0 && e.NameLength < 255 {
			start := int(e.NameOffset)
			end := start + int(e.NameLength)
			if start >= 0 && end <= len(data) && end <= int(d.Size) {
				e.Name = string(data[start:end])
				e.HasName = true
			} else {
				logging.Warnf("dictionary entry %d: name offset/length escapes file bounds; leaving unnamed", i)
			}
		}

		d.Entries[i] = e
	}

	return d, nil
}

// ChildRange returns the slice of d.Entries that are children of parent.
// A nil parent searches the entire table (the root scope).
func (d *Dictionary) ChildRange(parent *Entry) []Entry {
	if parent == nil {
		return d.Entries
	}
	if parent.ChildCount == 0 {
		return nil
	}
	start := (int(parent.ChildPointerOffset) - HeaderSize) / EntrySize
	end := start + int(parent.ChildCount)
	if start < 0 || start > len(d.Entries) {
		return nil
	}
	if end > len(d.Entries) {
		end = len(d.Entries)
	}
	return d.Entries[start:end]
}
