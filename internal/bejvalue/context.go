package bejvalue

import (
	"fmt"

	"github.com/vkolodii/bejdump/internal/bejerrors"
	"github.com/vkolodii/bejdump/internal/dictionary"
)

// maxContainerDepth bounds SET/ARRAY nesting. A crafted document costs
// only a handful of bytes per nesting level, so depth isn't bounded by
// input size the way most other decode costs are; this caps native Go
// recursion well short of a stack overflow on adversarial input.
const maxContainerDepth = 10000

// Context holds the immutable references a decode needs at every recursion
// level: both dictionaries (borrowed, not owned) and the current
// indentation depth. One Context exists per decode invocation; SET/ARRAY
// recursion shares it, adjusting Indent around container bodies.
//
// Grounded on ElementReader's embedded parse state (implicit, charSet) that
// travels with every read call (opendcm.go) — adapted from mutable
// endianness/VR flags to the two borrowed dictionaries plus the indent
// depth DSP0218's DecoderContext_t carries alongside them.
type Context struct {
	Schema     *dictionary.Dictionary
	Annotation *dictionary.Dictionary
	Indent     int
	depth      int
}

// NewContext returns a fresh Context for one decode invocation.
func NewContext(schema, annotation *dictionary.Dictionary) *Context {
	return &Context{Schema: schema, Annotation: annotation}
}

// dictFor returns the dictionary selected by an SFLV's dict_selector bit.
func (c *Context) dictFor(selector uint8) *dictionary.Dictionary {
	if selector == 1 {
		return c.Annotation
	}
	return c.Schema
}

// enterContainer tracks one more level of SET/ARRAY nesting, failing once
// maxContainerDepth is exceeded rather than letting recursion run the Go
// stack out. Every successful call must be matched by a leaveContainer.
func (c *Context) enterContainer() error {
	c.depth++
	if c.depth > maxContainerDepth {
		return bejerrors.New(bejerrors.KindOutOfBounds,
			fmt.Sprintf("container nesting exceeds %d levels", maxContainerDepth))
	}
	return nil
}

func (c *Context) leaveContainer() {
	c.depth--
}
