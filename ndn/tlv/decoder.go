/* ndnlite-go - NDN-Lite TLV codec and signed-packet engine for Go.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv

// Decoder wraps a read-only byte slice and an advancing read cursor. All
// Get* operations are bounds-checked against the slice's length, never
// against an implicit/grown buffer, mirroring ndn_decoder_t.
type Decoder struct {
	buf    []byte
	offset int
}

// NewDecoder wraps buf for reading, starting at offset 0.
func NewDecoder(buf []byte) *Decoder {
	return &Decoder{buf: buf}
}

// Offset returns the current read cursor.
func (d *Decoder) Offset() int { return d.offset }

// Len returns the total length of the wrapped buffer.
func (d *Decoder) Len() int { return len(d.buf) }

// Remaining returns the unread suffix of the buffer.
func (d *Decoder) Remaining() []byte { return d.buf[d.offset:] }

// GetType reads a TLV type field and advances the cursor.
func (d *Decoder) GetType() (uint64, error) {
	v, n, err := DecodeVarNum(d.buf[d.offset:])
	if err != nil {
		return 0, err
	}
	d.offset += n
	return v, nil
}

// GetLength reads a TLV length field and advances the cursor.
func (d *Decoder) GetLength() (int, error) {
	v, n, err := DecodeVarNum(d.buf[d.offset:])
	if err != nil {
		return 0, err
	}
	if d.offset+n+int(v) > len(d.buf) {
		return 0, ErrBufferTooShort
	}
	d.offset += n
	return int(v), nil
}

// GetRawBuffer copies the next len(dst) bytes into dst and advances the
// cursor by that many bytes.
func (d *Decoder) GetRawBuffer(dst []byte) error {
	if d.offset+len(dst) > len(d.buf) {
		return ErrBufferTooShort
	}
	copy(dst, d.buf[d.offset:d.offset+len(dst)])
	d.offset += len(dst)
	return nil
}

// MoveBackward rewinds the cursor by n bytes, e.g. to un-read a type field
// (of the width PeekType reports) once the caller finds it belongs to the
// next TLV block.
func (d *Decoder) MoveBackward(n int) error {
	if d.offset-n < 0 {
		return ErrBufferTooShort
	}
	d.offset -= n
	return nil
}

// PeekType reads the next TLV type without advancing the cursor, also
// returning the width in bytes of the type field so the caller can back
// up by exactly that amount later.
func (d *Decoder) PeekType() (tlvType uint64, width int, err error) {
	tlvType, width, err = DecodeVarNum(d.buf[d.offset:])
	return
}
