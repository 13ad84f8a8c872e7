package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vkolodii/bejdump/internal/dictionary"
)

func TestResolve_RootSearchesWholeTable(t *testing.T) {
	dict := &dictionary.Dictionary{Entries: []dictionary.Entry{
		{SequenceNumber: 0, Format: 0x00, Name: "Root", HasName: true},
		{SequenceNumber: 1, Format: 0x50, Name: "Name", HasName: true},
	}}

	got, ok := Resolve(dict, nil, 1, AnyFormat)
	assert.True(t, ok)
	assert.Equal(t, "Name", got.Name)
}

func TestResolve_ChildScopeIsParentChildRange(t *testing.T) {
	dict := &dictionary.Dictionary{Entries: make([]dictionary.Entry, 12)}
	dict.Entries[2] = dictionary.Entry{SequenceNumber: 0, Format: 0x40, Name: "Red", HasName: true}
	dict.Entries[3] = dictionary.Entry{SequenceNumber: 1, Format: 0x40, Name: "Green", HasName: true}
	parent := &dictionary.Entry{ChildPointerOffset: dictionary.HeaderSize + 2*dictionary.EntrySize, ChildCount: 2}

	got, ok := Resolve(dict, parent, 1, AnyFormat)
	assert.True(t, ok)
	assert.Equal(t, "Green", got.Name)
}

func TestResolve_FormatFilterExcludesMismatch(t *testing.T) {
	dict := &dictionary.Dictionary{Entries: []dictionary.Entry{
		{SequenceNumber: 0, Format: 0x30},
	}}
	_, ok := Resolve(dict, nil, 0, 5)
	assert.False(t, ok)
}

func TestResolve_NoMatchReturnsFalse(t *testing.T) {
	dict := &dictionary.Dictionary{Entries: []dictionary.Entry{{SequenceNumber: 0}}}
	_, ok := Resolve(dict, nil, 99, AnyFormat)
	assert.False(t, ok)
}

func TestResolve_FirstMatchWinsTies(t *testing.T) {
	dict := &dictionary.Dictionary{Entries: []dictionary.Entry{
		{SequenceNumber: 0, Format: 0x00, Name: "First", HasName: true},
		{SequenceNumber: 0, Format: 0x00, Name: "Second", HasName: true},
	}}
	got, ok := Resolve(dict, nil, 0, AnyFormat)
	assert.True(t, ok)
	assert.Equal(t, "First", got.Name)
}
