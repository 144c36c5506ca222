/* ndnlite-go - NDN-Lite TLV codec and signed-packet engine for Go.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn

import "github.com/named-data/ndnlite-go/ndn/tlv"

// MetaInfo carries a Data packet's TLV_MetaInfo block: content type,
// freshness period, and an optional final-block identifier. Fields that
// were never set are simply left at their zero value and omitted from the
// wire encoding, mirroring the enable_* flag fields of ndn_metainfo_t.
type MetaInfo struct {
	ContentType     uint64
	HasContentType  bool
	FreshnessPeriod uint64
	HasFreshness    bool
	FinalBlockID    NameComponent
	HasFinalBlockID bool
}

// SetContentType sets the MetaInfo's ContentType field.
func (m *MetaInfo) SetContentType(t uint64) {
	m.ContentType = t
	m.HasContentType = true
}

// SetFreshnessPeriod sets the MetaInfo's FreshnessPeriod field, in
// milliseconds.
func (m *MetaInfo) SetFreshnessPeriod(ms uint64) {
	m.FreshnessPeriod = ms
	m.HasFreshness = true
}

// SetFinalBlockID sets the MetaInfo's FinalBlockId field.
func (m *MetaInfo) SetFinalBlockID(c NameComponent) {
	m.FinalBlockID = c
	m.HasFinalBlockID = true
}

func (m *MetaInfo) valueSize() int {
	size := 0
	if m.HasContentType {
		size += tlv.ProbeBlockSize(tlv.ContentType, tlv.ProbeNNISize(m.ContentType))
	}
	if m.HasFreshness {
		size += tlv.ProbeBlockSize(tlv.FreshnessPeriod, tlv.ProbeNNISize(m.FreshnessPeriod))
	}
	if m.HasFinalBlockID {
		size += tlv.ProbeBlockSize(tlv.FinalBlockID, m.FinalBlockID.probeBlockSize())
	}
	return size
}

// ProbeBlockSize returns the total wire size of the encoded TLV_MetaInfo
// block, without writing anything.
func (m *MetaInfo) ProbeBlockSize() int {
	return tlv.ProbeBlockSize(tlv.MetaInfo, m.valueSize())
}

// Encode writes the TLV_MetaInfo block to enc.
func (m *MetaInfo) Encode(enc *tlv.Encoder) error {
	if err := enc.AppendType(tlv.MetaInfo); err != nil {
		return err
	}
	if err := enc.AppendLength(m.valueSize()); err != nil {
		return err
	}
	if m.HasContentType {
		if err := appendNNI(enc, tlv.ContentType, m.ContentType); err != nil {
			return err
		}
	}
	if m.HasFreshness {
		if err := appendNNI(enc, tlv.FreshnessPeriod, m.FreshnessPeriod); err != nil {
			return err
		}
	}
	if m.HasFinalBlockID {
		if err := enc.AppendType(tlv.FinalBlockID); err != nil {
			return err
		}
		if err := enc.AppendLength(m.FinalBlockID.probeBlockSize()); err != nil {
			return err
		}
		if err := m.FinalBlockID.encode(enc); err != nil {
			return err
		}
	}
	return nil
}

// appendNNI writes a TLV field whose value is a plain NonNegativeInteger
// (no varint marker byte) — ContentType, FreshnessPeriod, SignatureType,
// and SignedInterestTimestamp all use this encoding on the wire, distinct
// from the marker-byte scheme AppendType/AppendLength use for TLV
// Type/Length fields themselves.
func appendNNI(enc *tlv.Encoder, tlvType uint64, value uint64) error {
	if err := enc.AppendType(tlvType); err != nil {
		return err
	}
	n := tlv.ProbeNNISize(value)
	if err := enc.AppendLength(n); err != nil {
		return err
	}
	buf := make([]byte, n)
	tlv.EncodeNNI(buf, value)
	return enc.AppendRaw(buf)
}

func decodeNNI(dec *tlv.Decoder) (uint64, error) {
	length, err := dec.GetLength()
	if err != nil {
		return 0, err
	}
	buf := make([]byte, length)
	if err := dec.GetRawBuffer(buf); err != nil {
		return 0, err
	}
	return tlv.DecodeNNI(buf)
}

// DecodeMetaInfo reads a TLV_MetaInfo block.
func DecodeMetaInfo(dec *tlv.Decoder) (*MetaInfo, error) {
	tlvType, err := dec.GetType()
	if err != nil {
		return nil, err
	}
	if tlvType != tlv.MetaInfo {
		return nil, tlv.ErrWrongType
	}
	length, err := dec.GetLength()
	if err != nil {
		return nil, err
	}
	end := dec.Offset() + length

	m := &MetaInfo{}
	for dec.Offset() < end {
		fieldType, _, err := dec.PeekType()
		if err != nil {
			return nil, err
		}
		switch fieldType {
		case tlv.ContentType:
			dec.GetType()
			v, err := decodeNNI(dec)
			if err != nil {
				return nil, err
			}
			m.SetContentType(v)
		case tlv.FreshnessPeriod:
			dec.GetType()
			v, err := decodeNNI(dec)
			if err != nil {
				return nil, err
			}
			m.SetFreshnessPeriod(v)
		case tlv.FinalBlockID:
			dec.GetType()
			if _, err := dec.GetLength(); err != nil {
				return nil, err
			}
			c, err := decodeComponent(dec)
			if err != nil {
				return nil, err
			}
			m.SetFinalBlockID(c)
		default:
			return nil, tlv.ErrWrongType
		}
	}
	return m, nil
}
