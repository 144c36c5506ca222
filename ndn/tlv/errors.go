/* ndnlite-go - NDN-Lite TLV codec and signed-packet engine for Go.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv

import "errors"

// TLV errors. Kept as comparable sentinel values (checked with errors.Is),
// matching the style of named-data/YaNFD's ndn/tlv/errors.go, rather than
// as bare integer codes.
var (
	// ErrOversize is returned when an encode or decode operation would
	// exceed a fixed-capacity buffer or structure.
	ErrOversize = errors.New("tlv: value exceeds buffer or structure capacity")
	// ErrWrongType is returned when a decoder encounters a TLV type other
	// than the one it expected.
	ErrWrongType = errors.New("tlv: unexpected TLV type")
	// ErrBufferTooShort is returned when a decoder runs out of input
	// before an encoded length says it should.
	ErrBufferTooShort = errors.New("tlv: buffer shorter than encoded length")
	// ErrMissingLength names a type field that is not followed by a
	// length field. The Decoder does not return it: GetLength reports a
	// missing length field as ErrBufferTooShort.
	ErrMissingLength = errors.New("tlv: missing TLV length")
)
