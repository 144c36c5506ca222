/* ndnlite-go - NDN-Lite TLV codec and signed-packet engine for Go.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package security

import (
	"crypto/hmac"
	"crypto/sha256"
)

// softwareHmac is the stdlib-backed HmacBackend, grounded the same way as
// softwareSha: crypto/hmac + crypto/sha256, no third-party MAC library.
type softwareHmac struct{}

func (softwareHmac) LoadKey(value []byte, keyID uint32) *HmacKey {
	v := make([]byte, len(value))
	copy(v, value)
	return &HmacKey{value: v, KeyID: keyID}
}

func (softwareHmac) HmacSha256(payload []byte, key *HmacKey) [32]byte {
	mac := hmac.New(sha256.New, key.value)
	mac.Write(payload)
	var out [32]byte
	copy(out[:], mac.Sum(nil))
	return out
}

func (s softwareHmac) Sign(payload []byte, key *HmacKey) ([]byte, error) {
	sum := s.HmacSha256(payload, key)
	return sum[:], nil
}

func (s softwareHmac) Verify(payload []byte, sig []byte, key *HmacKey) error {
	sum := s.HmacSha256(payload, key)
	if !hmac.Equal(sum[:], sig) {
		return ErrVerificationFailed
	}
	return nil
}

// MakeKey derives an HMAC key from caller-supplied entropy via HKDF,
// mirroring ndn_hmac_make_key's personalization/seed/additional/salt-size
// parameters from original_source/ndn-lite's ndn-lite-hmac.h.
func (s softwareHmac) MakeKey(
	keyID uint32,
	personalization, seed, additional []byte,
	saltSize int,
) (*HmacKey, error) {
	salt := seed
	if saltSize > 0 && saltSize <= len(seed) {
		salt = seed[:saltSize]
	}
	derived, err := s.hkdf(personalization, 32, salt, additional)
	if err != nil {
		return nil, err
	}
	return s.LoadKey(derived, keyID), nil
}

// HKDF implements RFC 5869 HMAC-based key derivation directly on top of
// crypto/hmac. golang.org/x/crypto/hkdf would do the same thing in fewer
// lines, but nothing in the example pack or the teacher's own dependency
// tree imports golang.org/x/crypto; HKDF itself is two HMAC calls, so
// hand-rolling it here avoids pulling in a module the surrounding corpus
// never reaches for (see DESIGN.md).
func (s softwareHmac) HKDF(input []byte, outputSize int, seed []byte) ([]byte, error) {
	return s.hkdf(input, outputSize, seed, nil)
}

func (softwareHmac) hkdf(input []byte, outputSize int, salt, info []byte) ([]byte, error) {
	// Extract
	extractor := hmac.New(sha256.New, salt)
	extractor.Write(input)
	prk := extractor.Sum(nil)

	// Expand
	var t []byte
	out := make([]byte, 0, outputSize)
	for counter := byte(1); len(out) < outputSize; counter++ {
		expander := hmac.New(sha256.New, prk)
		expander.Write(t)
		expander.Write(info)
		expander.Write([]byte{counter})
		t = expander.Sum(nil)
		out = append(out, t...)
	}
	return out[:outputSize], nil
}

// HMACPRNG implements the HMAC-based pseudo-random generator
// original_source/ndn-lite exposes as ndn_hmacprng: personalization acts
// as the PRNG input, seed keys the extract step, and additional is mixed
// into every expand block. It is the same extract-and-expand construction
// as HKDF, reused here under the name the spec's backend API uses.
func (s softwareHmac) HMACPRNG(personalization, seed, additional []byte, outputSize int) ([]byte, error) {
	extractor := hmac.New(sha256.New, seed)
	extractor.Write(personalization)
	prk := extractor.Sum(nil)

	var t []byte
	out := make([]byte, 0, outputSize)
	for counter := byte(1); len(out) < outputSize; counter++ {
		expander := hmac.New(sha256.New, prk)
		expander.Write(t)
		expander.Write(additional)
		expander.Write([]byte{counter})
		t = expander.Sum(nil)
		out = append(out, t...)
	}
	return out[:outputSize], nil
}
