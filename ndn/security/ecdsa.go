/* ndnlite-go - NDN-Lite TLV codec and signed-packet engine for Go.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package security

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
)

// EcdsaPrivateKey is an opaque, backend-owned ECDSA signing key. KeyID
// plays the role of ndn_ecc_prv_t.key_id in original_source/ndn-lite.
type EcdsaPrivateKey struct {
	Key   *ecdsa.PrivateKey
	KeyID uint32
}

// EcdsaPublicKey is the verification counterpart.
type EcdsaPublicKey struct {
	Key   *ecdsa.PublicKey
	KeyID uint32
}

// ImportEcdsaPrivateKey wraps a stdlib P-256 key with a key id for use as
// a signing key.
func ImportEcdsaPrivateKey(key *ecdsa.PrivateKey, keyID uint32) *EcdsaPrivateKey {
	return &EcdsaPrivateKey{Key: key, KeyID: keyID}
}

// ImportEcdsaPublicKey wraps a stdlib P-256 public key with a key id for
// use as a verification key.
func ImportEcdsaPublicKey(key *ecdsa.PublicKey, keyID uint32) *EcdsaPublicKey {
	return &EcdsaPublicKey{Key: key, KeyID: keyID}
}

// GenerateEcdsaKeyPair creates a fresh P-256 key pair, for tests and
// callers that don't bring their own key material.
func GenerateEcdsaKeyPair(keyID uint32) (*EcdsaPrivateKey, *EcdsaPublicKey, error) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, nil, err
	}
	return ImportEcdsaPrivateKey(key, keyID), ImportEcdsaPublicKey(&key.PublicKey, keyID), nil
}

// softwareEcc is the stdlib-backed EccBackend. Grounded directly in
// zjkmxy-ndnd__ecc-signer.go, which signs with ecdsa.SignASN1 over a
// SHA-256 digest and returns the DER encoding spec.md §6 requires on the
// wire (the raw-64 form is never produced here; only the explicit raw
// setter on Signature accepts it).
type softwareEcc struct{}

func (softwareEcc) Sign(digestInput []byte, key *EcdsaPrivateKey) ([]byte, error) {
	digest := sha256.Sum256(digestInput)
	return ecdsa.SignASN1(rand.Reader, key.Key, digest[:])
}

func (softwareEcc) Verify(digestInput []byte, sig []byte, key *EcdsaPublicKey) error {
	digest := sha256.Sum256(digestInput)
	if !ecdsa.VerifyASN1(key.Key, digest[:], sig) {
		return ErrVerificationFailed
	}
	return nil
}
