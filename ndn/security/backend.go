/* ndnlite-go - NDN-Lite TLV codec and signed-packet engine for Go.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

// Package security defines the cryptographic backend contract the Data
// packet engine (ndn package) signs and verifies against, and a default
// software implementation of it.
//
// original_source/ndn-lite models a backend as a process-wide C
// function-pointer table (ndn_sha_backend_t, ndn_hmac_backend_t, ...)
// loaded once at startup. Design Note §9 of the specification calls for
// replacing that with "a capability interface (a variant or trait object)
// injected at construction, not global" so backends stay swappable
// (hardware vs. software) without touching callers. This package is that
// capability interface: five small Go interfaces plus a Backend struct
// that bundles one implementation of each, handed to the Data engine by
// the caller instead of looked up through a global.
package security

// ShaBackend computes and checks plain SHA-256 digests used as the
// DigestSha256 signature type.
type ShaBackend interface {
	Sha256(data []byte) [32]byte
	Sha256Sign(data []byte) ([]byte, error)
	Sha256Verify(data []byte, sig []byte) error
}

// HmacKey is an opaque, backend-owned HMAC-SHA256 key, addressed by KeyID
// the way original_source/ndn-lite's ndn_hmac_key_t pairs an opaque
// abstract_hmac_key_t with a key_id.
type HmacKey struct {
	value []byte
	KeyID uint32
}

// Value returns the raw key bytes. Exposed for backends; callers should
// treat keys as opaque and pass the *HmacKey around by reference.
func (k *HmacKey) Value() []byte { return k.value }

// HmacBackend implements HMAC-SHA256 signing/verification plus the key
// derivation helpers (HKDF, HMAC-PRNG) original_source/ndn-lite exposes
// alongside it.
type HmacBackend interface {
	LoadKey(value []byte, keyID uint32) *HmacKey
	HmacSha256(payload []byte, key *HmacKey) [32]byte
	Sign(payload []byte, key *HmacKey) ([]byte, error)
	Verify(payload []byte, sig []byte, key *HmacKey) error
	MakeKey(keyID uint32, personalization, seed, additional []byte, saltSize int) (*HmacKey, error)
	HKDF(input []byte, outputSize int, seed []byte) ([]byte, error)
	HMACPRNG(personalization, seed, additional []byte, outputSize int) ([]byte, error)
}

// AesKey is an opaque, backend-owned AES-128 key.
type AesKey struct {
	value []byte
	KeyID uint32
}

// Value returns the raw key bytes.
func (k *AesKey) Value() []byte { return k.value }

// AesBackend implements AES-128-CBC with no padding: callers must provide
// plaintext that is already a multiple of the block size, per spec.md
// §4.4's encrypted-content helper.
type AesBackend interface {
	LoadKey(value []byte, keyID uint32) *AesKey
	CbcEncrypt(plaintext []byte, iv []byte, key *AesKey) ([]byte, error)
	CbcDecrypt(ciphertext []byte, iv []byte, key *AesKey) ([]byte, error)
}

// EccBackend implements ECDSA over P-256 with DER (ASN.1) signature
// encoding, as required on the wire by spec.md §6.
type EccBackend interface {
	Sign(digestInput []byte, key *EcdsaPrivateKey) ([]byte, error)
	Verify(digestInput []byte, sig []byte, key *EcdsaPublicKey) error
}

// RngBackend fills a caller buffer with cryptographically secure random
// bytes, matching original_source/ndn-lite's ndn_rng_impl contract.
type RngBackend interface {
	Fill(dest []byte) error
}

// Backend bundles one implementation of each primitive. The Data packet
// engine's sign and verify methods take the one backend interface they
// need (e.g. backend.Sha) as an argument rather than reaching for a
// global, so a caller can supply hardware-backed implementations of the
// same interfaces without any change to this package or to ndn.
type Backend struct {
	Sha  ShaBackend
	Hmac HmacBackend
	Ecc  EccBackend
	Aes  AesBackend
	Rng  RngBackend
}
