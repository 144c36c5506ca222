package security_test

import (
	"testing"

	"github.com/named-data/ndnlite-go/ndn/security"
	"github.com/stretchr/testify/assert"
)

func TestShaSignVerify(t *testing.T) {
	backend := security.NewSoftwareBackend()
	data := []byte("hello world")

	sig, err := backend.Sha.Sha256Sign(data)
	assert.NoError(t, err)
	assert.Len(t, sig, 32)

	err = backend.Sha.Sha256Verify(data, sig)
	assert.NoError(t, err)

	err = backend.Sha.Sha256Verify([]byte("tampered"), sig)
	assert.Error(t, err)
}

func TestHmacSignVerifyWrongKey(t *testing.T) {
	backend := security.NewSoftwareBackend()
	k1 := backend.Hmac.LoadKey([]byte("key-one-material"), 1)
	k2 := backend.Hmac.LoadKey([]byte("key-two-material"), 2)

	data := []byte("payload")
	sig, err := backend.Hmac.Sign(data, k1)
	assert.NoError(t, err)

	assert.NoError(t, backend.Hmac.Verify(data, sig, k1))
	assert.Error(t, backend.Hmac.Verify(data, sig, k2))
}

func TestHKDFDeterministic(t *testing.T) {
	backend := security.NewSoftwareBackend()
	out1, err := backend.Hmac.HKDF([]byte("input"), 32, []byte("seed"))
	assert.NoError(t, err)
	out2, err := backend.Hmac.HKDF([]byte("input"), 32, []byte("seed"))
	assert.NoError(t, err)
	assert.Equal(t, out1, out2)
	assert.Len(t, out1, 32)
}

func TestEcdsaSignVerify(t *testing.T) {
	backend := security.NewSoftwareBackend()
	priv, pub, err := security.GenerateEcdsaKeyPair(1)
	assert.NoError(t, err)

	data := []byte("to be signed")
	sig, err := backend.Ecc.Sign(data, priv)
	assert.NoError(t, err)

	assert.NoError(t, backend.Ecc.Verify(data, sig, pub))

	_, otherPub, err := security.GenerateEcdsaKeyPair(2)
	assert.NoError(t, err)
	assert.Error(t, backend.Ecc.Verify(data, sig, otherPub))
}

func TestAesCbcRoundTrip(t *testing.T) {
	backend := security.NewSoftwareBackend()
	key := backend.Aes.LoadKey(make([]byte, 16), 1)
	iv := make([]byte, 16)
	plaintext := []byte("0123456789ABCDEF") // 16 bytes, block-aligned

	ciphertext, err := backend.Aes.CbcEncrypt(plaintext, iv, key)
	assert.NoError(t, err)
	assert.Len(t, ciphertext, 16)

	decrypted, err := backend.Aes.CbcDecrypt(ciphertext, iv, key)
	assert.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestAesCbcRejectsUnalignedInput(t *testing.T) {
	backend := security.NewSoftwareBackend()
	key := backend.Aes.LoadKey(make([]byte, 16), 1)
	iv := make([]byte, 16)

	_, err := backend.Aes.CbcEncrypt([]byte("not16bytes"), iv, key)
	assert.Error(t, err)
}

func TestRngFill(t *testing.T) {
	backend := security.NewSoftwareBackend()
	buf := make([]byte, 32)
	assert.NoError(t, backend.Rng.Fill(buf))
}
