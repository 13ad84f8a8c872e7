package nnint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkolodii/bejdump/internal/bufreader"
)

func TestRead_ValidLengths(t *testing.T) {
	cases := []struct {
		name string
		buf  []byte
		want uint32
	}{
		{"length 1", []byte{1, 0x7F}, 0x7F},
		{"length 2", []byte{2, 0x12, 0x34}, 0x3412},
		{"length 3", []byte{3, 0x01, 0x02, 0x03}, 0x030201},
		{"length 4", []byte{4, 0xFF, 0xFF, 0xFF, 0xFF}, 0xFFFFFFFF},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Read(bufreader.NewBufferReader(c.buf))
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestRead_InvalidLengthZero(t *testing.T) {
	_, err := Read(bufreader.NewBufferReader([]byte{0}))
	assert.Error(t, err)
}

func TestRead_InvalidLengthTooLarge(t *testing.T) {
	_, err := Read(bufreader.NewBufferReader([]byte{5, 0xAA}))
	assert.Error(t, err)
}

func TestRead_ShortBuffer(t *testing.T) {
	_, err := Read(bufreader.NewBufferReader([]byte{4, 0x01, 0x02}))
	assert.Error(t, err)
}

func TestRead_RoundTripAllMinimalLengths(t *testing.T) {
	// For every v in a representative sample, the minimal length L such
	// that v < 2^(8L) round-trips exactly.
	values := []uint32{0, 1, 0xFF, 0x100, 0xFFFF, 0x10000, 0xFFFFFF, 0x1000000, 0xFFFFFFFF}
	for _, v := range values {
		v64 := uint64(v)
		length := 1
		for length < 4 && v64 >= (uint64(1)<<uint(8*length)) {
			length++
		}
		buf := make([]byte, 1+length)
		buf[0] = byte(length)
		for i := 0; i < length; i++ {
			buf[1+i] = byte(v >> (8 * uint(i)))
		}
		got, err := Read(bufreader.NewBufferReader(buf))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}
