/* ndnlite-go - NDN-Lite TLV codec and signed-packet engine for Go.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn

import "errors"

// Sentinel errors for the Data packet model, in the same style as
// ndn/tlv/errors.go: checked with errors.Is rather than integer codes.
var (
	// ErrNameInvalidFormat is returned by NameFromString when the input
	// does not start with '/'.
	ErrNameInvalidFormat = errors.New("ndn: name string must start with '/'")
	// ErrSignatureTypeMismatch is returned when a setter is called with a
	// value inconsistent with the Signature's current SigType.
	ErrSignatureTypeMismatch = errors.New("ndn: signature value does not match signature type")
	// ErrUnsupportedSigType is returned when a Signature is initialised or
	// given a value under a SignatureType this module does not implement,
	// and by the Decode*Verify family when the decoded SignatureType is not
	// the one that verify variant checks.
	ErrUnsupportedSigType = errors.New("ndn: unsupported signature type")
	// ErrVerificationFailed is returned by the Decode*Verify family when
	// the recomputed digest/MAC/signature does not match SignatureValue.
	ErrVerificationFailed = errors.New("ndn: signature verification failed")
	// ErrNoSignature is returned by Signature.EncodeValue when no
	// signature value has been set yet (SigSize is 0).
	ErrNoSignature = errors.New("ndn: data has not been signed")
	// ErrInvalidIVLength is returned by ParseEncryptedContent when the
	// decoded TLV_AC_AES_IV field is not exactly tlv.AESBlockSize bytes.
	ErrInvalidIVLength = errors.New("ndn: encrypted content IV has wrong length")
)
