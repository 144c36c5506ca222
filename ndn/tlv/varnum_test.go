package tlv_test

import (
	"testing"

	"github.com/named-data/ndnlite-go/ndn/tlv"
	"github.com/stretchr/testify/assert"
)

func TestVarNumRoundTrip(t *testing.T) {
	values := []uint64{
		0, 1, 0xFC, 0xFD, 0xFE, 0xFF, 0x100, 0xFFFF,
		0x10000, 0xFFFFFFFF, 0x100000000, 0xFFFFFFFFFFFFFFFF,
	}
	for _, v := range values {
		size := tlv.ProbeVarSize(v)
		buf := make([]byte, size)
		written := tlv.EncodeVarNum(buf, v)
		assert.Equal(t, size, written)

		decoded, n, err := tlv.DecodeVarNum(buf)
		assert.NoError(t, err)
		assert.Equal(t, size, n)
		assert.Equal(t, v, decoded)
	}
}

func TestProbeVarSizeThresholds(t *testing.T) {
	assert.Equal(t, 1, tlv.ProbeVarSize(252))
	assert.Equal(t, 3, tlv.ProbeVarSize(253))
	assert.Equal(t, 3, tlv.ProbeVarSize(65535))
	assert.Equal(t, 5, tlv.ProbeVarSize(65536))
	assert.Equal(t, 5, tlv.ProbeVarSize(4294967295))
	assert.Equal(t, 9, tlv.ProbeVarSize(4294967296))
}

func TestDecodeVarNumTooShort(t *testing.T) {
	_, _, err := tlv.DecodeVarNum([]byte{0xFD, 0x01})
	assert.ErrorIs(t, err, tlv.ErrBufferTooShort)

	_, _, err = tlv.DecodeVarNum(nil)
	assert.ErrorIs(t, err, tlv.ErrBufferTooShort)
}

func TestProbeBlockSize(t *testing.T) {
	// type < 253, length < 253: 1 + 1 + len
	assert.Equal(t, 1+1+4, tlv.ProbeBlockSize(tlv.Content, 4))
	// length requiring 3-byte varint
	assert.Equal(t, 1+3+300, tlv.ProbeBlockSize(tlv.Content, 300))
}
