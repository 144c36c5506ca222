/* ndnlite-go - NDN-Lite TLV codec and signed-packet engine for Go.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package face

import "github.com/named-data/ndnlite-go/ndn"

// Face is the interface a face implementation (DirectFace, or a future
// transport-backed face) satisfies so the Forwarder can depend on it
// without importing a concrete face type — the same "avoid circular
// dependency between faces and forwarding" rationale as
// named-data/YaNFD's dispatch.Face interface.
type Face interface {
	Up() error
	Down() error
	Destroy()
	State() State

	// Send delivers an already-encoded Interest or Data packet addressed
	// by name through this face. name must be non-nil: per
	// original_source/ndn-lite's ndn_direct_face_send, a direct face
	// never decodes the name itself — that work belongs to whichever
	// component (ExpressInterest, RegisterPrefix, or the Forwarder) has
	// already decoded it.
	Send(name *ndn.Name, packet []byte) error
}

// Forwarder is the interface a face depends on to hand itself packets
// and register FIB entries, mirroring named-data/YaNFD's dispatch.FWThread
// contract and original_source/ndn-lite's ndn_face_receive /
// ndn_forwarder_fib_insert functions.
type Forwarder interface {
	// FaceReceive delivers a packet received on self into the forwarder's
	// processing pipeline.
	FaceReceive(self Face, packet []byte) error
	// FIBInsert registers self as a next hop for prefix at the given
	// cost.
	FIBInsert(prefix *ndn.Name, self Face, cost int) error
}

// OnDataCallback is invoked with a Data packet's wire encoding when it
// satisfies a pending ExpressInterest.
type OnDataCallback func(packet []byte)

// OnInterestCallback is invoked with an Interest packet's wire encoding
// when it matches a registered prefix.
type OnInterestCallback func(packet []byte)

// OnTimeoutCallback is invoked when an expressed Interest times out. This
// package does not implement timers itself (see spec.md's exclusion of
// asynchronous transport I/O); callers that need timeout delivery drive it
// externally and invoke the callback themselves.
type OnTimeoutCallback func()
