/* ndnlite-go - NDN-Lite TLV codec and signed-packet engine for Go.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

// Package tlv implements the NDN variable-length Type-Length-Value wire
// encoding: variable-width varint type/length fields, and an Encoder/Decoder
// pair that operate directly on a caller-supplied buffer instead of
// allocating a parse tree. This mirrors the "caller-provided buffer,
// bounds-checked, no hidden growth" discipline of
// original_source/ndn-lite's ndn_encoder_t/ndn_decoder_t, expressed with Go
// slices instead of C pointer+capacity pairs.
package tlv

// TLV type numbers used by the packets this module handles. Values match
// the standard NDN packet format (the same numbers used throughout the
// go-ndn definitions retrieved alongside this codebase).
const (
	Interest = 5
	Data     = 6

	Name                   = 7
	GenericNameComponent   = 8
	ImplicitSha256DigestComponent = 1
	ParametersSha256DigestComponent = 2

	MetaInfo        = 20
	Content         = 21
	SignatureInfo   = 22
	SignatureValue  = 23
	ContentType     = 24
	FreshnessPeriod = 25
	FinalBlockID    = 26

	SignatureType  = 27
	KeyLocator     = 28
	KeyDigest      = 29

	SignatureNonce = 38
	SignedInterestTimestamp = 40

	ValidityPeriod = 0xfd
	NotBefore      = 0xfe
	NotAfter       = 0xff
)

// Application-specific TLV types for the AES-encrypted content helper.
// original_source/ndn-lite's access-control extension does not ship its
// constants header in the retrieved sources; these values are chosen from
// the unassigned application range and are only meaningful within a single
// codec round-trip (they never cross the wire to a non-NDN-Lite peer).
const (
	ACEncryptedContent = 0x82
	ACAESIv            = 0x84
	ACEncryptedPayload = 0x86
)

// Signature type codes (spec.md §6 / encode/signature.h).
const (
	SigTypeDigestSha256 = 0
	SigTypeEcdsaSha256  = 3
	SigTypeHmacSha256   = 4
)

// Fixed capacities. These play the role of the NDN-Lite constants
// NDN_NAME_COMPONENTS_SIZE, NDN_CONTENT_BUFFER_SIZE,
// NDN_SIGNATURE_BUFFER_SIZE, NDN_NAME_COMPONENT_BUFFER_SIZE and the
// direct face's NDN_DIRECT_FACE_CB_ENTRY_SIZE — see ndn-lite's
// ndn-constants.h naming scheme.
const (
	NameMaxComponents = 20
	ComponentMaxSize  = 64
	ContentMaxSize    = 1024
	SignatureMaxSize  = 148 // holds a DER-encoded P-256 ECDSA signature (at most 72 bytes)
	CBTableSize       = 32

	AESBlockSize = 16
	ValidityTimeSize = 15

	// MaxTypeFieldSize and MaxLengthFieldSize bound a single varint TLV
	// type/length field (9 bytes: 0xFF prefix + 8-byte big-endian value).
	MaxTypeFieldSize   = 9
	MaxLengthFieldSize = 9

	// InvalidSize marks a Name as "no value set" / a direct-face callback
	// slot as free, matching NDN_FWD_INVALID_NAME_SIZE.
	InvalidSize = 0xFFFFFFFF
)
