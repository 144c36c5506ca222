/* ndnlite-go - NDN-Lite TLV codec and signed-packet engine for Go.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package security

import "crypto/rand"

// softwareRng is the stdlib-backed RngBackend.
type softwareRng struct{}

func (softwareRng) Fill(dest []byte) error {
	_, err := rand.Read(dest)
	return err
}
