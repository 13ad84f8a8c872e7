// Package resolver implements the dictionary resolver: given a parent
// entry (or none, for the root), a sequence number, and a format filter,
// it returns the matching child entry.
//
// Grounded on opendcm.lookupTag's linear-scan-with-sensible-default pattern
// (dicom.go), adapted from a flat tag→entry map lookup to a contiguous
// child-range linear scan over the arena rather than materializing a
// pointer graph.
package resolver

import "github.com/vkolodii/bejdump/internal/dictionary"

// AnyFormat tells Resolve to match by sequence number alone.
const AnyFormat int8 = -1

// Resolve returns the first entry in dict whose sequence number matches
// sequence and, if format != AnyFormat, whose principal format nibble
// matches format. The search space is parent's children, or the whole
// table when parent is nil. Table order decides ties: the first match
// wins.
func Resolve(dict *dictionary.Dictionary, parent *dictionary.Entry, sequence uint32, format int8) (*dictionary.Entry, bool) {
	if dict == nil {
		return nil, false
	}
	candidates := dict.ChildRange(parent)
	for i := range candidates {
		e := &candidates[i]
		if uint32(e.SequenceNumber) != sequence {
			continue
		}
		if format != AnyFormat && int8(e.PrincipalFormat()) != format {
			continue
		}
		return e, true
	}
	return nil, false
}
