/* ndnlite-go - NDN-Lite TLV codec and signed-packet engine for Go.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package face

import "errors"

// Sentinel errors for the direct-face dispatcher, in the same checked-
// with-errors.Is style as ndn/tlv/errors.go and ndn/errors.go.
var (
	// ErrNoMatchedCallback is returned by Send when no registered
	// callback-table entry matches the packet being sent, mirroring
	// NDN_FWD_NO_MATCHED_CALLBACK.
	ErrNoMatchedCallback = errors.New("face: no registered callback matches this packet")
	// ErrCBTableFull is returned by ExpressInterest/RegisterPrefix when
	// every callback-table slot is already in use, mirroring
	// NDN_FWD_APP_FACE_CB_TABLE_FULL.
	ErrCBTableFull = errors.New("face: callback table is full")
	// ErrInvalidNameSize is returned when Send is called without a name
	// to dispatch on — a direct face never decodes a packet's name for
	// itself.
	ErrInvalidNameSize = errors.New("face: send requires a decoded name")
	// ErrUnsupportedPacketType is returned when Send is given a packet
	// whose outer TLV type is neither Interest nor Data.
	ErrUnsupportedPacketType = errors.New("face: packet is neither Interest nor Data")
	// ErrFaceNotUp is returned when Send is called on a face that is
	// Down or Destroyed.
	ErrFaceNotUp = errors.New("face: face is not up")
)
