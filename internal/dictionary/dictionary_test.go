package dictionary

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildDict assembles a minimal dictionary image: a header followed by the
// given entries and a name pool built from names, in order.
func buildDict(t *testing.T, names []string, rows func(nameOffsets []uint16) []Entry) []byte {
	t.Helper()

	entryCount := len(rows(make([]uint16, len(names))))
	headerAndEntries := HeaderSize + entryCount*EntrySize
	nameOffsets := make([]uint16, len(names))
	offset := headerAndEntries
	for i, n := range names {
		nameOffsets[i] = uint16(offset)
		offset += len(n)
	}

	entries := rows(nameOffsets)
	totalSize := headerAndEntries
	for _, n := range names {
		totalSize += len(n)
	}

	buf := make([]byte, totalSize)
	buf[0] = 1                                        // version_tag
	buf[1] = 0                                         // flags
	binary.LittleEndian.PutUint16(buf[2:4], uint16(len(entries)))
	binary.LittleEndian.PutUint32(buf[4:8], 1)         // schema_version
	binary.LittleEndian.PutUint32(buf[8:12], uint32(totalSize))

	for i, e := range entries {
		off := HeaderSize + i*EntrySize
		buf[off] = e.Format
		binary.LittleEndian.PutUint16(buf[off+1:off+3], e.SequenceNumber)
		binary.LittleEndian.PutUint16(buf[off+3:off+5], e.ChildPointerOffset)
		binary.LittleEndian.PutUint16(buf[off+5:off+7], e.ChildCount)
		buf[off+7] = e.NameLength
		binary.LittleEndian.PutUint16(buf[off+8:off+10], e.NameOffset)
	}

	pos := headerAndEntries
	for _, n := range names {
		copy(buf[pos:], n)
		pos += len(n)
	}
	return buf
}

func TestLoad_SimpleEntryWithName(t *testing.T) {
	data := buildDict(t, []string{"Foo"}, func(off []uint16) []Entry {
		return []Entry{
			{Format: 0x00, SequenceNumber: 0, NameLength: 3, NameOffset: off[0]},
		}
	})

	d, err := Load(data)
	require.NoError(t, err)
	require.Len(t, d.Entries, 1)
	assert.True(t, d.Entries[0].HasName)
	assert.Equal(t, "Foo", d.Entries[0].Name)
}

func TestLoad_PrincipalFormatIsHighNibble(t *testing.T) {
	e := Entry{Format: 0x35}
	assert.EqualValues(t, 0x03, e.PrincipalFormat())
}

func TestLoad_NameOutOfBoundsLeavesUnnamed(t *testing.T) {
	data := buildDict(t, nil, func(off []uint16) []Entry {
		return []Entry{
			{Format: 0x00, SequenceNumber: 0, NameLength: 10, NameOffset: 9000},
		}
	})

	d, err := Load(data)
	require.NoError(t, err)
	assert.False(t, d.Entries[0].HasName)
}

func TestLoad_InvalidChildPointerOffsetErrors(t *testing.T) {
	data := buildDict(t, nil, func(off []uint16) []Entry {
		return []Entry{
			{Format: 0x00, SequenceNumber: 0, ChildPointerOffset: 13, ChildCount: 1},
		}
	})

	_, err := Load(data)
	assert.Error(t, err)
}

func TestLoad_HeaderTooShort(t *testing.T) {
	_, err := Load([]byte{1, 2, 3})
	assert.Error(t, err)
}

func TestChildRange_NilParentReturnsWholeTable(t *testing.T) {
	d := &Dictionary{Entries: []Entry{{SequenceNumber: 0}, {SequenceNumber: 1}}}
	assert.Len(t, d.ChildRange(nil), 2)
}

func TestChildRange_ParentSelectsSlice(t *testing.T) {
	d := &Dictionary{Entries: make([]Entry, 5)}
	parent := &Entry{ChildPointerOffset: HeaderSize + 2*EntrySize, ChildCount: 2}
	got := d.ChildRange(parent)
	assert.Len(t, got, 2)
}
