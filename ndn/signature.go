/* ndnlite-go - NDN-Lite TLV codec and signed-packet engine for Go.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn

import "github.com/named-data/ndnlite-go/ndn/tlv"

// ValidityPeriod carries a Signature's NotBefore/NotAfter ISO-8601
// timestamps, each a fixed 15-byte field per encode/signature.h's
// ndn_validity_period_t.
type ValidityPeriod struct {
	NotBefore [tlv.ValidityTimeSize]byte
	NotAfter  [tlv.ValidityTimeSize]byte
}

// Signature holds a Data (or signed Interest) packet's SignatureInfo and
// SignatureValue fields. SigValue lives in a fixed-capacity array sized to
// the worst case (a DER-encoded P-256 ECDSA signature) rather than a
// slice, mirroring ndn_signature_t's NDN_SIGNATURE_BUFFER_SIZE buffer —
// no signing or verification path in this package allocates the
// signature's storage on demand.
type Signature struct {
	SigType uint64
	SigSize int
	SigValue [tlv.SignatureMaxSize]byte

	KeyLocatorName  Name
	EnableKeyLocator bool

	EnableSignatureInfoNonce bool
	SignatureInfoNonce       uint32

	EnableTimestamp bool
	Timestamp       uint64

	EnableValidityPeriod bool
	Validity             ValidityPeriod
}

// InitSignature resets a Signature and sets its SigType, mirroring
// ndn_signature_init + ndn_signature_set_signature_type. SigSize is set to
// the expected fixed size for DigestSha256/HmacSha256; for EcdsaSha256 it
// is left at 0 until SetSignatureValue or the signing path fills it in,
// since the DER-encoded size is only known after signing.
func InitSignature(sigType uint64) (*Signature, error) {
	s := &Signature{SigType: sigType}
	switch sigType {
	case tlv.SigTypeDigestSha256, tlv.SigTypeHmacSha256:
		s.SigSize = 32
	case tlv.SigTypeEcdsaSha256:
		s.SigSize = 0
	default:
		return nil, ErrUnsupportedSigType
	}
	return s, nil
}

// SetSignatureValue copies value into SigValue, enforcing the same
// per-type size invariants as ndn_signature_set_signature: DigestSha256
// and HmacSha256 must be exactly 32 bytes, and EcdsaSha256 must be
// supplied as a raw (r||s) 64-byte value, not DER-encoded. EncodeValue
// writes whatever bytes are stored, so a value set here goes on the wire
// in that raw 64-byte form.
func (s *Signature) SetSignatureValue(value []byte) error {
	if len(value) > tlv.SignatureMaxSize {
		return tlv.ErrOversize
	}
	switch s.SigType {
	case tlv.SigTypeDigestSha256, tlv.SigTypeHmacSha256:
		if len(value) != 32 {
			return ErrSignatureTypeMismatch
		}
	case tlv.SigTypeEcdsaSha256:
		if len(value) != 64 {
			return ErrSignatureTypeMismatch
		}
	default:
		return ErrUnsupportedSigType
	}
	s.SigSize = len(value)
	copy(s.SigValue[:], value)
	return nil
}

// SetKeyLocator sets the KeyLocator name and enables its encoding.
func (s *Signature) SetKeyLocator(name *Name) {
	s.EnableKeyLocator = true
	s.KeyLocatorName = *name
}

// SetTimestamp sets the signed-Interest timestamp field.
func (s *Signature) SetTimestamp(ts uint64) {
	s.EnableTimestamp = true
	s.Timestamp = ts
}

// SetSignatureInfoNonce sets the SignatureInfo nonce field.
func (s *Signature) SetSignatureInfoNonce(nonce uint32) {
	s.EnableSignatureInfoNonce = true
	s.SignatureInfoNonce = nonce
}

// SetValidityPeriod sets the validity period, each timestamp exactly 15
// bytes of ISO-8601 text.
func (s *Signature) SetValidityPeriod(notBefore, notAfter [tlv.ValidityTimeSize]byte) {
	s.EnableValidityPeriod = true
	s.Validity.NotBefore = notBefore
	s.Validity.NotAfter = notAfter
}

func (s *Signature) infoValueSize() int {
	size := tlv.ProbeBlockSize(tlv.SignatureType, tlv.ProbeNNISize(s.SigType))
	if s.EnableKeyLocator {
		size += tlv.ProbeBlockSize(tlv.KeyLocator, s.KeyLocatorName.ProbeBlockSize())
	}
	if s.EnableValidityPeriod {
		validitySize := tlv.ProbeBlockSize(tlv.NotBefore, tlv.ValidityTimeSize) +
			tlv.ProbeBlockSize(tlv.NotAfter, tlv.ValidityTimeSize)
		size += tlv.ProbeBlockSize(tlv.ValidityPeriod, validitySize)
	}
	if s.EnableSignatureInfoNonce {
		size += tlv.ProbeBlockSize(tlv.SignatureNonce, 4)
	}
	if s.EnableTimestamp {
		size += tlv.ProbeBlockSize(tlv.SignedInterestTimestamp, tlv.ProbeNNISize(s.Timestamp))
	}
	return size
}

// InfoProbeBlockSize returns the total wire size of the TLV_SignatureInfo
// block, mirroring ndn_signature_info_probe_block_size.
func (s *Signature) InfoProbeBlockSize() int {
	return tlv.ProbeBlockSize(tlv.SignatureInfo, s.infoValueSize())
}

// ValueProbeBlockSize returns the total wire size of the TLV_SignatureValue
// block, mirroring ndn_signature_value_probe_block_size. It depends on
// SigSize being already set — for EcdsaSha256 that means signing must have
// happened (or the caller has already reserved a conservative estimate).
func (s *Signature) ValueProbeBlockSize() int {
	return tlv.ProbeBlockSize(tlv.SignatureValue, s.SigSize)
}

// EncodeInfo writes the TLV_SignatureInfo block to enc.
func (s *Signature) EncodeInfo(enc *tlv.Encoder) error {
	if err := enc.AppendType(tlv.SignatureInfo); err != nil {
		return err
	}
	if err := enc.AppendLength(s.infoValueSize()); err != nil {
		return err
	}
	if err := appendNNI(enc, tlv.SignatureType, s.SigType); err != nil {
		return err
	}
	if s.EnableKeyLocator {
		if err := enc.AppendType(tlv.KeyLocator); err != nil {
			return err
		}
		if err := enc.AppendLength(s.KeyLocatorName.ProbeBlockSize()); err != nil {
			return err
		}
		if err := s.KeyLocatorName.Encode(enc); err != nil {
			return err
		}
	}
	if s.EnableValidityPeriod {
		validitySize := tlv.ProbeBlockSize(tlv.NotBefore, tlv.ValidityTimeSize) +
			tlv.ProbeBlockSize(tlv.NotAfter, tlv.ValidityTimeSize)
		if err := enc.AppendType(tlv.ValidityPeriod); err != nil {
			return err
		}
		if err := enc.AppendLength(validitySize); err != nil {
			return err
		}
		if err := enc.AppendBlock(tlv.NotBefore, s.Validity.NotBefore[:]); err != nil {
			return err
		}
		if err := enc.AppendBlock(tlv.NotAfter, s.Validity.NotAfter[:]); err != nil {
			return err
		}
	}
	if s.EnableSignatureInfoNonce {
		buf := make([]byte, 4)
		buf[0] = byte(s.SignatureInfoNonce >> 24)
		buf[1] = byte(s.SignatureInfoNonce >> 16)
		buf[2] = byte(s.SignatureInfoNonce >> 8)
		buf[3] = byte(s.SignatureInfoNonce)
		if err := enc.AppendBlock(tlv.SignatureNonce, buf); err != nil {
			return err
		}
	}
	if s.EnableTimestamp {
		if err := appendNNI(enc, tlv.SignedInterestTimestamp, s.Timestamp); err != nil {
			return err
		}
	}
	return nil
}

// EncodeValue writes the TLV_SignatureValue block to enc, using
// SigValue[:SigSize] as the wire bytes. For EcdsaSha256 those bytes are
// the ASN.1 DER encoding spec.md §6 requires on the wire — the SignECDSA
// path in the Data engine writes DER straight into SigValue rather than
// going through SetSignatureValue's raw-64 invariant, since DER is what
// belongs on the wire, not what a caller manually supplies.
func (s *Signature) EncodeValue(enc *tlv.Encoder) error {
	if s.SigSize == 0 {
		return ErrNoSignature
	}
	if err := enc.AppendType(tlv.SignatureValue); err != nil {
		return err
	}
	if err := enc.AppendLength(s.SigSize); err != nil {
		return err
	}
	return enc.AppendRaw(s.SigValue[:s.SigSize])
}

// DecodeSignatureInfo reads a TLV_SignatureInfo block.
func DecodeSignatureInfo(dec *tlv.Decoder) (*Signature, error) {
	tlvType, err := dec.GetType()
	if err != nil {
		return nil, err
	}
	if tlvType != tlv.SignatureInfo {
		return nil, tlv.ErrWrongType
	}
	length, err := dec.GetLength()
	if err != nil {
		return nil, err
	}
	end := dec.Offset() + length

	s := &Signature{}
	for dec.Offset() < end {
		fieldType, _, err := dec.PeekType()
		if err != nil {
			return nil, err
		}
		switch fieldType {
		case tlv.SignatureType:
			dec.GetType()
			v, err := decodeNNI(dec)
			if err != nil {
				return nil, err
			}
			s.SigType = v
		case tlv.KeyLocator:
			dec.GetType()
			if _, err := dec.GetLength(); err != nil {
				return nil, err
			}
			name, err := DecodeName(dec)
			if err != nil {
				return nil, err
			}
			s.EnableKeyLocator = true
			s.KeyLocatorName = *name
		case tlv.ValidityPeriod:
			dec.GetType()
			if _, err := dec.GetLength(); err != nil {
				return nil, err
			}
			if err := decodeValidity(dec, s); err != nil {
				return nil, err
			}
		case tlv.SignatureNonce:
			dec.GetType()
			length, err := dec.GetLength()
			if err != nil {
				return nil, err
			}
			buf := make([]byte, length)
			if err := dec.GetRawBuffer(buf); err != nil {
				return nil, err
			}
			s.EnableSignatureInfoNonce = true
			for _, b := range buf {
				s.SignatureInfoNonce = s.SignatureInfoNonce<<8 | uint32(b)
			}
		case tlv.SignedInterestTimestamp:
			dec.GetType()
			v, err := decodeNNI(dec)
			if err != nil {
				return nil, err
			}
			s.EnableTimestamp = true
			s.Timestamp = v
		default:
			return nil, tlv.ErrWrongType
		}
	}
	return s, nil
}

func decodeValidity(dec *tlv.Decoder, s *Signature) error {
	s.EnableValidityPeriod = true
	for i := 0; i < 2; i++ {
		fieldType, err := dec.GetType()
		if err != nil {
			return err
		}
		length, err := dec.GetLength()
		if err != nil {
			return err
		}
		if length != tlv.ValidityTimeSize {
			return tlv.ErrOversize
		}
		switch fieldType {
		case tlv.NotBefore:
			if err := dec.GetRawBuffer(s.Validity.NotBefore[:]); err != nil {
				return err
			}
		case tlv.NotAfter:
			if err := dec.GetRawBuffer(s.Validity.NotAfter[:]); err != nil {
				return err
			}
		default:
			return tlv.ErrWrongType
		}
	}
	return nil
}

// DecodeSignatureValue reads a TLV_SignatureValue block into s, storing the
// wire bytes verbatim in SigValue/SigSize. Nothing here DER-decodes an
// EcdsaSha256 value; the verify path passes the stored bytes to the
// backend as they are.
func DecodeSignatureValue(dec *tlv.Decoder, s *Signature) error {
	tlvType, err := dec.GetType()
	if err != nil {
		return err
	}
	if tlvType != tlv.SignatureValue {
		return tlv.ErrWrongType
	}
	length, err := dec.GetLength()
	if err != nil {
		return err
	}
	if length > tlv.SignatureMaxSize {
		return tlv.ErrOversize
	}
	s.SigSize = length
	return dec.GetRawBuffer(s.SigValue[:length])
}
