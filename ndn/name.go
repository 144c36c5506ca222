/* ndnlite-go - NDN-Lite TLV codec and signed-packet engine for Go.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

// Package ndn implements the NDN-Lite Data packet model: names, metainfo,
// signatures, and the sign/verify/encrypted-content operations of the
// Data packet engine (spec.md §4.2-§4.4).
package ndn

import (
	"bytes"
	"strings"

	"github.com/named-data/ndnlite-go/ndn/tlv"
)

// NameComponent is a (type, byte-string) pair of bounded length, mirroring
// original_source/ndn-lite's name_component_t. The value lives in a
// fixed-capacity array rather than a slice so a Name's storage is a single
// flat struct, matching the "no heap, fixed caller-provided buffers"
// resource model of spec.md §5.
type NameComponent struct {
	Type  uint64
	Value [tlv.ComponentMaxSize]byte
	Size  int
}

// Bytes returns the component's value.
func (c *NameComponent) Bytes() []byte { return c.Value[:c.Size] }

// NewGenericComponent builds a GenericNameComponent from raw bytes.
func NewGenericComponent(value []byte) (NameComponent, error) {
	return NewComponent(tlv.GenericNameComponent, value)
}

// NewComponent builds a component of the given TLV type from raw bytes.
func NewComponent(tlvType uint64, value []byte) (NameComponent, error) {
	var c NameComponent
	if len(value) > tlv.ComponentMaxSize {
		return c, tlv.ErrOversize
	}
	c.Type = tlvType
	c.Size = len(value)
	copy(c.Value[:], value)
	return c, nil
}

func componentCompare(a, b *NameComponent) int {
	if a.Type != b.Type || a.Size != b.Size {
		return -1
	}
	if bytes.Equal(a.Value[:a.Size], b.Value[:b.Size]) {
		return 0
	}
	return -1
}

func (c *NameComponent) probeBlockSize() int {
	return tlv.ProbeBlockSize(c.Type, c.Size)
}

func (c *NameComponent) encode(enc *tlv.Encoder) error {
	return enc.AppendBlock(c.Type, c.Bytes())
}

func decodeComponent(dec *tlv.Decoder) (NameComponent, error) {
	var c NameComponent
	tlvType, err := dec.GetType()
	if err != nil {
		return c, err
	}
	length, err := dec.GetLength()
	if err != nil {
		return c, err
	}
	if length > tlv.ComponentMaxSize {
		return c, tlv.ErrOversize
	}
	c.Type = tlvType
	c.Size = length
	if err := dec.GetRawBuffer(c.Value[:length]); err != nil {
		return c, err
	}
	return c, nil
}

// Name is an ordered, fixed-capacity sequence of NameComponents. The
// invariant `ComponentsSize <= NameMaxComponents` is enforced by every
// mutator instead of by growing storage, matching ndn_name_t.
type Name struct {
	Components     [tlv.NameMaxComponents]NameComponent
	ComponentsSize int
}

// Invalidate marks the Name as unset, the state a free direct-face
// callback-table slot uses (NDN_FWD_INVALID_NAME_SIZE in
// original_source/ndn-lite).
func (n *Name) Invalidate() {
	n.ComponentsSize = tlv.InvalidSize
}

// IsInvalid reports whether the Name has been Invalidate()'d.
func (n *Name) IsInvalid() bool {
	return n.ComponentsSize == tlv.InvalidSize
}

// Append adds a component to the end of the Name, failing with
// ErrOversize once NameMaxComponents is reached.
func (n *Name) Append(c NameComponent) error {
	if n.ComponentsSize >= tlv.NameMaxComponents {
		return tlv.ErrOversize
	}
	n.Components[n.ComponentsSize] = c
	n.ComponentsSize++
	return nil
}

// AppendString appends a single GenericNameComponent built from s.
func (n *Name) AppendString(s string) error {
	c, err := NewGenericComponent([]byte(s))
	if err != nil {
		return err
	}
	return n.Append(c)
}

// NameFromString parses a URI-style name string ("/a/b/c") into a Name.
// Mirrors ndn_name_from_string in original_source/ndn-lite/encode/name.c:
// a leading '/' is required, components are split on '/', and an empty
// trailing segment (a string ending in "/") does not produce a trailing
// empty component.
func NameFromString(s string) (*Name, error) {
	n := &Name{}
	if len(s) == 0 || s[0] != '/' {
		return nil, ErrNameInvalidFormat
	}
	trimmed := strings.TrimSuffix(s[1:], "/")
	if trimmed == "" {
		return n, nil
	}
	for _, segment := range strings.Split(trimmed, "/") {
		if err := n.AppendString(segment); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// String renders the Name back into URI form.
func (n *Name) String() string {
	var b strings.Builder
	if n.ComponentsSize == 0 || n.ComponentsSize == tlv.InvalidSize {
		return "/"
	}
	for i := 0; i < n.ComponentsSize; i++ {
		b.WriteByte('/')
		b.Write(n.Components[i].Bytes())
	}
	return b.String()
}

// ProbeBlockSize returns the total wire size of the encoded TLV_Name
// block, without writing anything.
func (n *Name) ProbeBlockSize() int {
	valueSize := 0
	for i := 0; i < n.ComponentsSize; i++ {
		valueSize += n.Components[i].probeBlockSize()
	}
	return tlv.ProbeBlockSize(tlv.Name, valueSize)
}

// Encode writes the TLV_Name block to enc.
func (n *Name) Encode(enc *tlv.Encoder) error {
	if err := enc.AppendType(tlv.Name); err != nil {
		return err
	}
	valueSize := 0
	for i := 0; i < n.ComponentsSize; i++ {
		valueSize += n.Components[i].probeBlockSize()
	}
	if err := enc.AppendLength(valueSize); err != nil {
		return err
	}
	for i := 0; i < n.ComponentsSize; i++ {
		if err := n.Components[i].encode(enc); err != nil {
			return err
		}
	}
	return nil
}

// DecodeName reads a TLV_Name block, failing with ErrOversize if it
// carries more than NameMaxComponents components.
func DecodeName(dec *tlv.Decoder) (*Name, error) {
	tlvType, err := dec.GetType()
	if err != nil {
		return nil, err
	}
	if tlvType != tlv.Name {
		return nil, tlv.ErrWrongType
	}
	length, err := dec.GetLength()
	if err != nil {
		return nil, err
	}
	end := dec.Offset() + length

	n := &Name{}
	for dec.Offset() < end {
		if n.ComponentsSize >= tlv.NameMaxComponents {
			return nil, tlv.ErrOversize
		}
		c, err := decodeComponent(dec)
		if err != nil {
			return nil, err
		}
		n.Components[n.ComponentsSize] = c
		n.ComponentsSize++
	}
	return n, nil
}

// Compare is a boolean equality predicate, not a three-way comparator:
// it returns 0 iff the two Names have the same length and are
// componentwise equal, -1 otherwise. This matches
// original_source/ndn-lite's ndn_name_compare exactly — Design Note §9
// warns against "upgrading" this to an ordering without auditing callers,
// so it stays as-is here.
func (n *Name) Compare(other *Name) int {
	if n.ComponentsSize != other.ComponentsSize {
		return -1
	}
	for i := 0; i < n.ComponentsSize; i++ {
		if componentCompare(&n.Components[i], &other.Components[i]) != 0 {
			return -1
		}
	}
	return 0
}

// IsPrefixOf is a boolean predicate: it returns 0 iff n is a prefix of (or
// equal to) other, 1 otherwise. Matches ndn_name_is_prefix_of's
// "0 iff lhs is a proper-or-equal prefix of rhs" contract from
// original_source/ndn-lite/encode/name.c.
func (n *Name) IsPrefixOf(other *Name) int {
	if n.ComponentsSize > other.ComponentsSize {
		return 1
	}
	for i := 0; i < n.ComponentsSize; i++ {
		if componentCompare(&n.Components[i], &other.Components[i]) != 0 {
			return 1
		}
	}
	return 0
}
