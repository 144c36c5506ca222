/* ndnlite-go - NDN-Lite TLV codec and signed-packet engine for Go.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv

import "encoding/binary"

// ProbeVarSize returns the number of bytes EncodeVarNum would need to write
// v: 1 byte for v <= 0xFC, 3/5/9 bytes with a 0xFD/0xFE/0xFF prefix
// otherwise. Mirrors ndn_encoder_probe_block_size's inner size rule and
// named-data/YaNFD's EncodeVarNum size thresholds.
func ProbeVarSize(v uint64) int {
	switch {
	case v <= 0xFC:
		return 1
	case v <= 0xFFFF:
		return 3
	case v <= 0xFFFFFFFF:
		return 5
	default:
		return 9
	}
}

// EncodeVarNum writes v into buf using NDN's variable-width encoding and
// returns the number of bytes written. buf must have at least
// ProbeVarSize(v) bytes available.
func EncodeVarNum(buf []byte, v uint64) int {
	switch {
	case v <= 0xFC:
		buf[0] = byte(v)
		return 1
	case v <= 0xFFFF:
		buf[0] = 0xFD
		binary.BigEndian.PutUint16(buf[1:], uint16(v))
		return 3
	case v <= 0xFFFFFFFF:
		buf[0] = 0xFE
		binary.BigEndian.PutUint32(buf[1:], uint32(v))
		return 5
	default:
		buf[0] = 0xFF
		binary.BigEndian.PutUint64(buf[1:], v)
		return 9
	}
}

// DecodeVarNum reads a variable-width encoded integer from the start of
// buf, returning its value and width in bytes.
func DecodeVarNum(buf []byte) (value uint64, size int, err error) {
	if len(buf) < 1 {
		return 0, 0, ErrBufferTooShort
	}
	switch {
	case buf[0] <= 0xFC:
		return uint64(buf[0]), 1, nil
	case buf[0] == 0xFD:
		if len(buf) < 3 {
			return 0, 0, ErrBufferTooShort
		}
		return uint64(binary.BigEndian.Uint16(buf[1:3])), 3, nil
	case buf[0] == 0xFE:
		if len(buf) < 5 {
			return 0, 0, ErrBufferTooShort
		}
		return uint64(binary.BigEndian.Uint32(buf[1:5])), 5, nil
	default: // 0xFF
		if len(buf) < 9 {
			return 0, 0, ErrBufferTooShort
		}
		return binary.BigEndian.Uint64(buf[1:9]), 9, nil
	}
}

// ProbeBlockSize returns the total wire size of a TLV block with the given
// type and value length: var_size(type) + var_size(len) + len. Mirrors
// encoder_probe_block_size in original_source/ndn-lite.
func ProbeBlockSize(tlvType uint64, valueLen int) int {
	return ProbeVarSize(tlvType) + ProbeVarSize(uint64(valueLen)) + valueLen
}

// ProbeNNISize returns the width, in bytes, of the plain big-endian
// NonNegativeInteger encoding of v: 1/2/4/8 bytes, truncated to the
// smallest width that holds v, with no marker byte. This is distinct
// from ProbeVarSize, which is only for TLV Type/Length fields — mirrors
// named-data-YaNFD's EncodeNNI/GetNNIBlockSize width rule.
func ProbeNNISize(v uint64) int {
	switch {
	case v <= 0xFF:
		return 1
	case v <= 0xFFFF:
		return 2
	case v <= 0xFFFFFFFF:
		return 4
	default:
		return 8
	}
}

// EncodeNNI writes v into buf as a plain big-endian NonNegativeInteger,
// truncated to ProbeNNISize(v) bytes, and returns the number of bytes
// written. buf must have at least ProbeNNISize(v) bytes available.
// Mirrors named-data-YaNFD's EncodeNNI.
func EncodeNNI(buf []byte, v uint64) int {
	size := ProbeNNISize(v)
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], v)
	copy(buf[:size], tmp[8-size:])
	return size
}

// DecodeNNI reads a plain big-endian NonNegativeInteger of width
// len(value) (1, 2, 4, or 8 bytes) and returns its value. Mirrors
// named-data-YaNFD's DecodeNNI.
func DecodeNNI(value []byte) (uint64, error) {
	if len(value) == 0 {
		return 0, ErrBufferTooShort
	}
	if len(value) > 8 {
		return 0, ErrOversize
	}
	var tmp [8]byte
	copy(tmp[8-len(value):], value)
	return binary.BigEndian.Uint64(tmp[:]), nil
}
