/* ndnlite-go - NDN-Lite TLV codec and signed-packet engine for Go.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package security

import "errors"

var (
	// ErrVerificationFailed is returned by any backend Verify when the
	// signature does not match, mirroring the negative backend error
	// codes spec.md §7 says propagate verbatim from sign/verify.
	ErrVerificationFailed = errors.New("security: signature verification failed")
	// ErrKeySize names a key that does not have the size a primitive
	// requires (e.g. an AES-128 key that isn't 16 bytes). The software
	// backend does not return it: its AES primitives pass on the key-size
	// error from crypto/aes.
	ErrKeySize = errors.New("security: wrong key size")
	// ErrBlockAlignment is returned by the AES-CBC backend when input is
	// not a multiple of the cipher's block size (no padding is applied).
	ErrBlockAlignment = errors.New("security: input is not a multiple of the block size")
)
