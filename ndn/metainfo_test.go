package ndn_test

import (
	"testing"

	"github.com/named-data/ndnlite-go/ndn"
	"github.com/named-data/ndnlite-go/ndn/tlv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetaInfoEncodeDecodeRoundTrip(t *testing.T) {
	m := &ndn.MetaInfo{}
	m.SetContentType(0)
	m.SetFreshnessPeriod(4000)
	fb, err := ndn.NewGenericComponent([]byte("seg-9"))
	require.NoError(t, err)
	m.SetFinalBlockID(fb)

	buf := make([]byte, 128)
	enc := tlv.NewEncoder(buf)
	require.NoError(t, m.Encode(enc))
	assert.Equal(t, m.ProbeBlockSize(), enc.Offset())

	dec := tlv.NewDecoder(enc.Bytes())
	decoded, err := ndn.DecodeMetaInfo(dec)
	require.NoError(t, err)
	assert.True(t, decoded.HasContentType)
	assert.EqualValues(t, 0, decoded.ContentType)
	assert.True(t, decoded.HasFreshness)
	assert.EqualValues(t, 4000, decoded.FreshnessPeriod)
	assert.True(t, decoded.HasFinalBlockID)
	assert.Equal(t, []byte("seg-9"), decoded.FinalBlockID.Bytes())
}

func TestMetaInfoFreshnessPeriodWireFormatHasNoMarkerByte(t *testing.T) {
	m := &ndn.MetaInfo{}
	m.SetFreshnessPeriod(4000)

	buf := make([]byte, 16)
	enc := tlv.NewEncoder(buf)
	require.NoError(t, m.Encode(enc))

	// TLV_MetaInfo, length 4; TLV_FreshnessPeriod, length 2, value 0x0FA0 —
	// a plain 2-byte NonNegativeInteger, no 0xFD/0xFE/0xFF varint marker.
	assert.Equal(t, []byte{byte(tlv.MetaInfo), 4, byte(tlv.FreshnessPeriod), 2, 0x0F, 0xA0}, enc.Bytes())
}

func TestMetaInfoEmpty(t *testing.T) {
	m := &ndn.MetaInfo{}
	buf := make([]byte, 16)
	enc := tlv.NewEncoder(buf)
	require.NoError(t, m.Encode(enc))

	dec := tlv.NewDecoder(enc.Bytes())
	decoded, err := ndn.DecodeMetaInfo(dec)
	require.NoError(t, err)
	assert.False(t, decoded.HasContentType)
	assert.False(t, decoded.HasFreshness)
	assert.False(t, decoded.HasFinalBlockID)
}
