/* ndnlite-go - NDN-Lite TLV codec and signed-packet engine for Go.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package security

// NewSoftwareBackend returns the default Backend: every primitive backed
// by Go's standard crypto/* packages. Swapping in a hardware-backed
// Backend means implementing these same five interfaces elsewhere — no
// change to this package or to any caller is required.
func NewSoftwareBackend() *Backend {
	return &Backend{
		Sha:  softwareSha{},
		Hmac: softwareHmac{},
		Ecc:  softwareEcc{},
		Aes:  softwareAes{},
		Rng:  softwareRng{},
	}
}
