/* ndnlite-go - NDN-Lite TLV codec and signed-packet engine for Go.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv

// Encoder wraps a caller-owned, fixed-capacity byte slice and an advancing
// write cursor. It never grows its buffer: every Append* call fails with
// ErrOversize instead, matching ndn_encoder_t's bounds-checked append
// functions in original_source/ndn-lite. This is the buffer-oriented
// counterpart to named-data/YaNFD's allocating tlv.Block — required here
// because the Data packet engine (ndn package) must know a TLV's length
// before it writes the length field, yet needs to write signature bytes
// that are only known after signing.
type Encoder struct {
	buf    []byte
	offset int
}

// NewEncoder wraps buf for writing, starting at offset 0.
func NewEncoder(buf []byte) *Encoder {
	return &Encoder{buf: buf}
}

// Offset returns the current write cursor.
func (e *Encoder) Offset() int { return e.offset }

// SetOffset repositions the write cursor directly. Used by the ECDSA
// backpatch path (ndn package) once the final header size is known.
func (e *Encoder) SetOffset(n int) { e.offset = n }

// Cap returns the capacity of the underlying buffer.
func (e *Encoder) Cap() int { return len(e.buf) }

// Buffer returns the underlying buffer in full, for callers (the crypto
// backend) that need to write or read bytes directly at a known offset
// rather than through Append*.
func (e *Encoder) Buffer() []byte { return e.buf }

// Bytes returns the encoded prefix [0, Offset()).
func (e *Encoder) Bytes() []byte { return e.buf[:e.offset] }

// AppendType writes a TLV type field at the cursor.
func (e *Encoder) AppendType(tlvType uint64) error {
	n := ProbeVarSize(tlvType)
	if e.offset+n > len(e.buf) {
		return ErrOversize
	}
	EncodeVarNum(e.buf[e.offset:], tlvType)
	e.offset += n
	return nil
}

// AppendLength writes a TLV length field at the cursor.
func (e *Encoder) AppendLength(length int) error {
	n := ProbeVarSize(uint64(length))
	if e.offset+n > len(e.buf) {
		return ErrOversize
	}
	EncodeVarNum(e.buf[e.offset:], uint64(length))
	e.offset += n
	return nil
}

// AppendRaw copies value into the buffer at the cursor.
func (e *Encoder) AppendRaw(value []byte) error {
	if e.offset+len(value) > len(e.buf) {
		return ErrOversize
	}
	copy(e.buf[e.offset:], value)
	e.offset += len(value)
	return nil
}

// AppendBlock writes a complete type+length+value TLV block.
func (e *Encoder) AppendBlock(tlvType uint64, value []byte) error {
	if err := e.AppendType(tlvType); err != nil {
		return err
	}
	if err := e.AppendLength(len(value)); err != nil {
		return err
	}
	return e.AppendRaw(value)
}

// MoveForward reserves n bytes at the cursor for later use, zeroing the
// reserved range and advancing the cursor past it. Used to leave head-room for a TLV
// type+length header whose size isn't known until after the value (the
// signature) has been produced — see SignECDSA in the ndn package.
func (e *Encoder) MoveForward(n int) error {
	if e.offset+n > len(e.buf) {
		return ErrOversize
	}
	for i := e.offset; i < e.offset+n; i++ {
		e.buf[i] = 0
	}
	e.offset += n
	return nil
}

// MoveBackward rewinds the cursor by n bytes, e.g. to re-seat the encoder
// right before re-writing a header once its final size is known.
func (e *Encoder) MoveBackward(n int) error {
	if e.offset-n < 0 {
		return ErrOversize
	}
	e.offset -= n
	return nil
}
