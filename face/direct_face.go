/* ndnlite-go - NDN-Lite TLV codec and signed-packet engine for Go.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package face

import (
	"github.com/named-data/ndnlite-go/core"
	"github.com/named-data/ndnlite-go/ndn"
	"github.com/named-data/ndnlite-go/ndn/tlv"
)

// defaultCost is the FIB entry cost RegisterPrefix installs for itself.
// original_source/ndn-lite/face/direct-face.c refers to this as
// NDN_FACE_DEFAULT_COST, whose value is defined in a constants header not
// present in the retrieved sources; 1 is the conventional "directly
// reachable, cheapest" cost used across the forwarding examples.
const defaultCost = 1

type cbEntry struct {
	interestName ndn.Name
	isPrefix     bool
	onData       OnDataCallback
	onInterest   OnInterestCallback
	onTimeout    OnTimeoutCallback
}

func (e *cbEntry) free() bool { return e.interestName.IsInvalid() }

// DirectFace is the application-facing face a producer or consumer uses
// to express Interests, register prefixes, and send Data — the direct
// counterpart to a transport-backed face, grounded on
// original_source/ndn-lite's ndn_direct_face_t. Unlike the original's
// single process-wide instance, a DirectFace here is an ordinary value a
// caller constructs and owns, any number of which can coexist against
// the same or different Forwarders.
type DirectFace struct {
	state     State
	forwarder Forwarder
	cbEntries [tlv.CBTableSize]cbEntry
}

// NewDirectFace constructs a DirectFace bound to forwarder, with every
// callback-table slot free and the face in the Destroyed state until Up
// is called, mirroring ndn_direct_face_construct's initial state.
func NewDirectFace(forwarder Forwarder) *DirectFace {
	f := &DirectFace{state: Destroyed, forwarder: forwarder}
	for i := range f.cbEntries {
		f.cbEntries[i].interestName.Invalidate()
	}
	return f
}

// Up transitions the face to the Up state.
func (f *DirectFace) Up() error {
	f.state = Up
	return nil
}

// Down transitions the face to the Down state.
func (f *DirectFace) Down() error {
	f.state = Down
	return nil
}

// Destroy frees every callback-table slot and transitions the face to
// Destroyed.
func (f *DirectFace) Destroy() {
	for i := range f.cbEntries {
		f.cbEntries[i].interestName.Invalidate()
	}
	f.state = Destroyed
}

// State reports the face's current State.
func (f *DirectFace) State() State { return f.state }

// Send dispatches packet, which must already have name decoded by the
// caller, to the first callback-table entry that matches it: an exact
// name match against a non-prefix entry for Data, or a prefix match
// against a prefix entry for Interest — mirroring
// ndn_direct_face_send's first-match linear scan and its boolean (not
// three-way) comparison semantics.
func (f *DirectFace) Send(name *ndn.Name, packet []byte) error {
	if f.state != Up {
		return ErrFaceNotUp
	}
	if name == nil {
		return ErrInvalidNameSize
	}
	dec := tlv.NewDecoder(packet)
	tlvType, _, err := dec.PeekType()
	if err != nil {
		return err
	}
	var isInterest bool
	switch tlvType {
	case tlv.Interest:
		isInterest = true
	case tlv.Data:
		isInterest = false
	default:
		return ErrUnsupportedPacketType
	}

	for i := range f.cbEntries {
		entry := &f.cbEntries[i]
		if entry.free() {
			continue
		}
		if isInterest && entry.isPrefix && entry.interestName.IsPrefixOf(name) == 0 {
			entry.onInterest(packet)
			return nil
		}
		if !isInterest && !entry.isPrefix && entry.interestName.Compare(name) == 0 {
			entry.onData(packet)
			return nil
		}
	}
	core.LogDebug("face.DirectFace", "no matched callback for "+name.String())
	return ErrNoMatchedCallback
}

// ExpressInterest reserves a callback-table slot for interestName, then
// hands the encoded interest packet to the Forwarder for processing.
// onData is invoked when a satisfying Data packet arrives at this face;
// onTimeout is invoked by the caller's own timer if no Data arrives in
// time (see OnTimeoutCallback's doc comment). Mirrors
// ndn_direct_face_express_interest.
func (f *DirectFace) ExpressInterest(interestName *ndn.Name, interest []byte, onData OnDataCallback, onTimeout OnTimeoutCallback) error {
	for i := range f.cbEntries {
		entry := &f.cbEntries[i]
		if !entry.free() {
			continue
		}
		entry.interestName = *interestName
		entry.isPrefix = false
		entry.onData = onData
		entry.onTimeout = onTimeout
		entry.onInterest = nil
		return f.forwarder.FaceReceive(f, interest)
	}
	return ErrCBTableFull
}

// RegisterPrefix reserves a callback-table slot for prefixName and
// installs this face as a FIB next hop for it, so that Interests the
// Forwarder forwards to this face reach onInterest. Mirrors
// ndn_direct_face_register_prefix.
func (f *DirectFace) RegisterPrefix(prefixName *ndn.Name, onInterest OnInterestCallback) error {
	for i := range f.cbEntries {
		entry := &f.cbEntries[i]
		if !entry.free() {
			continue
		}
		entry.interestName = *prefixName
		entry.isPrefix = true
		entry.onData = nil
		entry.onTimeout = nil
		entry.onInterest = onInterest
		return f.forwarder.FIBInsert(prefixName, f, defaultCost)
	}
	return ErrCBTableFull
}
