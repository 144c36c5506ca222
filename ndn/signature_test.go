package ndn_test

import (
	"testing"

	"github.com/named-data/ndnlite-go/ndn"
	"github.com/named-data/ndnlite-go/ndn/tlv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignatureInitSetsFixedSizes(t *testing.T) {
	s, err := ndn.InitSignature(tlv.SigTypeDigestSha256)
	require.NoError(t, err)
	assert.Equal(t, 32, s.SigSize)

	s, err = ndn.InitSignature(tlv.SigTypeHmacSha256)
	require.NoError(t, err)
	assert.Equal(t, 32, s.SigSize)
}

func TestSignatureInitRejectsUnsupportedType(t *testing.T) {
	_, err := ndn.InitSignature(99)
	assert.ErrorIs(t, err, ndn.ErrUnsupportedSigType)
}

func TestSignatureSetValueEnforcesSizePerType(t *testing.T) {
	s, err := ndn.InitSignature(tlv.SigTypeEcdsaSha256)
	require.NoError(t, err)

	raw64 := make([]byte, 64)
	require.NoError(t, s.SetSignatureValue(raw64))

	wrongSize := make([]byte, 32)
	assert.ErrorIs(t, s.SetSignatureValue(wrongSize), ndn.ErrSignatureTypeMismatch)
}

func TestSignatureInfoEncodeDecodeRoundTrip(t *testing.T) {
	s, err := ndn.InitSignature(tlv.SigTypeHmacSha256)
	require.NoError(t, err)
	keyLocator, err := ndn.NameFromString("/producer/KEY/1")
	require.NoError(t, err)
	s.SetKeyLocator(keyLocator)
	s.SetSignatureInfoNonce(0xAABBCCDD)
	s.SetTimestamp(1700000000)

	buf := make([]byte, 256)
	enc := tlv.NewEncoder(buf)
	require.NoError(t, s.EncodeInfo(enc))
	assert.Equal(t, s.InfoProbeBlockSize(), enc.Offset())

	dec := tlv.NewDecoder(enc.Bytes())
	decoded, err := ndn.DecodeSignatureInfo(dec)
	require.NoError(t, err)
	assert.EqualValues(t, tlv.SigTypeHmacSha256, decoded.SigType)
	assert.True(t, decoded.EnableKeyLocator)
	assert.Equal(t, 0, keyLocator.Compare(&decoded.KeyLocatorName))
	assert.True(t, decoded.EnableSignatureInfoNonce)
	assert.EqualValues(t, 0xAABBCCDD, decoded.SignatureInfoNonce)
	assert.True(t, decoded.EnableTimestamp)
	assert.EqualValues(t, 1700000000, decoded.Timestamp)
}

func TestSignatureTimestampWireFormatHasNoMarkerByte(t *testing.T) {
	s, err := ndn.InitSignature(tlv.SigTypeDigestSha256)
	require.NoError(t, err)
	s.SetTimestamp(1700000000)

	buf := make([]byte, 64)
	enc := tlv.NewEncoder(buf)
	require.NoError(t, s.EncodeInfo(enc))

	// TLV_SignedInterestTimestamp, length 4, value 0x6553F100 — a plain
	// 4-byte NonNegativeInteger, no 0xFE varint marker byte.
	wire := enc.Bytes()
	tail := wire[len(wire)-6:]
	assert.Equal(t, []byte{byte(tlv.SignedInterestTimestamp), 4, 0x65, 0x53, 0xF1, 0x00}, tail)
}

func TestSignatureValidityPeriodRoundTrip(t *testing.T) {
	s, err := ndn.InitSignature(tlv.SigTypeDigestSha256)
	require.NoError(t, err)
	var notBefore, notAfter [tlv.ValidityTimeSize]byte
	copy(notBefore[:], "20260101T000000")
	copy(notAfter[:], "20270101T000000")
	s.SetValidityPeriod(notBefore, notAfter)

	buf := make([]byte, 256)
	enc := tlv.NewEncoder(buf)
	require.NoError(t, s.EncodeInfo(enc))

	dec := tlv.NewDecoder(enc.Bytes())
	decoded, err := ndn.DecodeSignatureInfo(dec)
	require.NoError(t, err)
	assert.True(t, decoded.EnableValidityPeriod)
	assert.Equal(t, notBefore, decoded.Validity.NotBefore)
	assert.Equal(t, notAfter, decoded.Validity.NotAfter)
}

func TestSignatureEncodeValueRequiresSignatureFirst(t *testing.T) {
	s, err := ndn.InitSignature(tlv.SigTypeEcdsaSha256)
	require.NoError(t, err)

	buf := make([]byte, 64)
	enc := tlv.NewEncoder(buf)
	assert.ErrorIs(t, s.EncodeValue(enc), ndn.ErrNoSignature)
}

func TestSignatureValueEncodeDecodeRoundTrip(t *testing.T) {
	s, err := ndn.InitSignature(tlv.SigTypeDigestSha256)
	require.NoError(t, err)
	digest := make([]byte, 32)
	for i := range digest {
		digest[i] = byte(i)
	}
	require.NoError(t, s.SetSignatureValue(digest))

	buf := make([]byte, 64)
	enc := tlv.NewEncoder(buf)
	require.NoError(t, s.EncodeValue(enc))

	decoded := &ndn.Signature{}
	dec := tlv.NewDecoder(enc.Bytes())
	require.NoError(t, ndn.DecodeSignatureValue(dec, decoded))
	assert.Equal(t, digest, decoded.SigValue[:decoded.SigSize])
}
