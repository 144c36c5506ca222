/* ndnlite-go - NDN-Lite TLV codec and signed-packet engine for Go.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn

import (
	"fmt"

	"github.com/named-data/ndnlite-go/core"
	"github.com/named-data/ndnlite-go/ndn/security"
	"github.com/named-data/ndnlite-go/ndn/tlv"
)

// Content is a Data packet's payload, stored in a fixed-capacity array
// rather than a slice so a Data never allocates or grows its content
// buffer, matching ndn_data_t.content_value/content_size.
type Content struct {
	Value [tlv.ContentMaxSize]byte
	Size  int
}

// Bytes returns the content's value.
func (c *Content) Bytes() []byte { return c.Value[:c.Size] }

// Set copies value into the Data's content buffer.
func (c *Content) Set(value []byte) error {
	if len(value) > tlv.ContentMaxSize {
		return tlv.ErrOversize
	}
	c.Size = len(value)
	copy(c.Value[:], value)
	return nil
}

// Data is a single NDN Data packet: a Name, MetaInfo, Content and
// Signature, mirroring ndn_data_t from
// original_source/ndn-lite/encode/data.h. Unlike named-data/YaNFD's
// allocating tlv.Block-backed Data, every field here is a fixed-size
// struct — required so the sign path can know the packet's encoded size
// before the signature itself exists (see SignECDSA).
type Data struct {
	Name     Name
	MetaInfo MetaInfo
	Content  Content
	Signature Signature
}

// NewData builds an empty Data packet addressed by name.
func NewData(name *Name) *Data {
	d := &Data{}
	d.Name = *name
	return d
}

// keyLocatorName builds the /<producerIdentity>/KEY/<key-id> name used as
// the KeyLocator for HMAC and ECDSA signatures, mirroring
// _prepare_signature_info in original_source/ndn-lite/encode/data.c.
func keyLocatorName(producerIdentity *Name, keyID uint32) (Name, error) {
	n := *producerIdentity
	if err := n.AppendString("KEY"); err != nil {
		return n, err
	}
	raw := []byte{byte(keyID >> 24), byte(keyID >> 16), byte(keyID >> 8), byte(keyID)}
	c, err := NewGenericComponent(raw)
	if err != nil {
		return n, err
	}
	if err := n.Append(c); err != nil {
		return n, err
	}
	return n, nil
}

// unsignedBlockSize returns the wire size of the Name+MetaInfo+Content+
// SignatureInfo prefix that gets signed, not counting the outer TLV_Data
// header or the trailing SignatureValue block.
func (d *Data) unsignedBlockSize() int {
	return d.Name.ProbeBlockSize() +
		d.MetaInfo.ProbeBlockSize() +
		tlv.ProbeBlockSize(tlv.Content, d.Content.Size) +
		d.Signature.InfoProbeBlockSize()
}

// encodeUnsignedBlock writes Name, MetaInfo, Content and SignatureInfo to
// enc, in that order — the exact byte range that gets signed. Mirrors
// _ndn_data_prepare_unsigned_block.
func (d *Data) encodeUnsignedBlock(enc *tlv.Encoder) error {
	if err := d.Name.Encode(enc); err != nil {
		return err
	}
	if err := d.MetaInfo.Encode(enc); err != nil {
		return err
	}
	if err := enc.AppendBlock(tlv.Content, d.Content.Bytes()); err != nil {
		return err
	}
	return d.Signature.EncodeInfo(enc)
}

// SignDigest encodes and signs the Data packet with a DigestSha256
// signature, writing the full wire encoding into buf and returning the
// number of bytes used. Mirrors ndn_data_tlv_encode_digest_sign: the
// outer TLV_Data header size is known up front because a plain SHA-256
// digest has a fixed 32-byte size, so no backpatching is needed.
func (d *Data) SignDigest(buf []byte, backend security.ShaBackend) (int, error) {
	sig, err := InitSignature(tlv.SigTypeDigestSha256)
	if err != nil {
		return 0, err
	}
	d.Signature = *sig

	enc := tlv.NewEncoder(buf)
	dataBufferSize := d.unsignedBlockSize() + d.Signature.ValueProbeBlockSize()
	if err := enc.AppendType(tlv.Data); err != nil {
		return 0, err
	}
	if err := enc.AppendLength(dataBufferSize); err != nil {
		return 0, err
	}

	signStart := enc.Offset()
	if err := d.encodeUnsignedBlock(enc); err != nil {
		return 0, err
	}
	signEnd := enc.Offset()

	sigValue, err := backend.Sha256Sign(enc.Buffer()[signStart:signEnd])
	if err != nil {
		return 0, err
	}
	if err := d.Signature.SetSignatureValue(sigValue); err != nil {
		return 0, err
	}
	if err := d.Signature.EncodeValue(enc); err != nil {
		return 0, err
	}
	return enc.Offset(), nil
}

// SignHMAC encodes and signs the Data packet with an HmacSha256
// signature under key, setting the KeyLocator to
// /producerIdentity/KEY/<key.KeyID>. Mirrors
// ndn_data_tlv_encode_hmac_sign: the signature size is fixed (32 bytes),
// so like SignDigest no backpatching is required.
func (d *Data) SignHMAC(buf []byte, backend security.HmacBackend, producerIdentity *Name, key *security.HmacKey) (int, error) {
	sig, err := InitSignature(tlv.SigTypeHmacSha256)
	if err != nil {
		return 0, err
	}
	keyLocator, err := keyLocatorName(producerIdentity, key.KeyID)
	if err != nil {
		return 0, err
	}
	sig.SetKeyLocator(&keyLocator)
	d.Signature = *sig

	enc := tlv.NewEncoder(buf)
	dataBufferSize := d.unsignedBlockSize() + d.Signature.ValueProbeBlockSize()
	if err := enc.AppendType(tlv.Data); err != nil {
		return 0, err
	}
	if err := enc.AppendLength(dataBufferSize); err != nil {
		return 0, err
	}

	signStart := enc.Offset()
	if err := d.encodeUnsignedBlock(enc); err != nil {
		return 0, err
	}
	signEnd := enc.Offset()

	sigValue, err := backend.Sign(enc.Buffer()[signStart:signEnd], key)
	if err != nil {
		return 0, err
	}
	if err := d.Signature.SetSignatureValue(sigValue); err != nil {
		return 0, err
	}
	if err := d.Signature.EncodeValue(enc); err != nil {
		return 0, err
	}
	return enc.Offset(), nil
}

// SignECDSA encodes and signs the Data packet with an EcdsaSha256
// signature under key, setting the KeyLocator to
// /producerIdentity/KEY/<key.KeyID>.
//
// Unlike SignDigest/SignHMAC, a DER-encoded ECDSA signature's length
// varies run to run, so the outer TLV_Data header's length field cannot
// be written before the signature is produced. This mirrors
// ndn_data_tlv_encode_ecdsa_sign's two-phase strategy: reserve worst-case
// head-room for the TLV_Data type+length fields with MoveForward, encode
// and sign the unsigned block immediately after that head-room, then once
// the signature's real length is known, write the header at its real
// size immediately before the unsigned block and copy the header plus
// unsigned block down to the start of buf, then re-seat the Encoder with
// SetOffset. Unlike the original's manual offset arithmetic, which Design
// Note §9 flags as a historical source of off-by-one bugs, every offset
// here is computed from Encoder state.
func (d *Data) SignECDSA(buf []byte, backend security.EccBackend, producerIdentity *Name, key *security.EcdsaPrivateKey) (int, error) {
	sig, err := InitSignature(tlv.SigTypeEcdsaSha256)
	if err != nil {
		return 0, err
	}
	keyLocator, err := keyLocatorName(producerIdentity, key.KeyID)
	if err != nil {
		return 0, err
	}
	sig.SetKeyLocator(&keyLocator)
	d.Signature = *sig

	enc := tlv.NewEncoder(buf)
	headRoom := tlv.MaxTypeFieldSize + tlv.MaxLengthFieldSize
	if err := enc.MoveForward(headRoom); err != nil {
		return 0, err
	}

	signStart := enc.Offset()
	if err := d.encodeUnsignedBlock(enc); err != nil {
		return 0, err
	}
	signEnd := enc.Offset()

	der, err := backend.Sign(enc.Buffer()[signStart:signEnd], key)
	if err != nil {
		return 0, err
	}
	if len(der) > tlv.SignatureMaxSize {
		return 0, tlv.ErrOversize
	}
	d.Signature.SigSize = len(der)
	copy(d.Signature.SigValue[:], der)

	unsignedSize := signEnd - signStart
	dataBufferSize := unsignedSize + d.Signature.ValueProbeBlockSize()
	lengthFieldSize := tlv.ProbeVarSize(uint64(dataBufferSize))
	typeFieldSize := tlv.ProbeVarSize(tlv.Data)
	headerSize := typeFieldSize + lengthFieldSize

	// Re-seat the encoder right before the unsigned block (inside the
	// head-room MoveForward reserved) and write the now-known header; it
	// lands immediately adjacent to the already-encoded unsigned block,
	// so header and unsigned block together form one contiguous run
	// ending at signEnd. What remains is unused head-room before that
	// run, not a gap inside it.
	headerStart := signStart - headerSize
	enc.SetOffset(headerStart)
	if err := enc.AppendType(tlv.Data); err != nil {
		return 0, err
	}
	if err := enc.AppendLength(dataBufferSize); err != nil {
		return 0, err
	}

	// Slide the whole header+unsigned-block run down to the start of buf,
	// discarding the unused head-room in front of it.
	runLength := signEnd - headerStart
	copy(buf[:runLength], buf[headerStart:signEnd])
	enc.SetOffset(runLength)

	if err := d.Signature.EncodeValue(enc); err != nil {
		return 0, err
	}
	return enc.Offset(), nil
}

// decodeCommon parses the Name, MetaInfo, Content and SignatureInfo
// fields shared by every decode/verify variant, returning the byte range
// [start, end) of the signed input (Name through SignatureInfo). Mirrors
// the shared prefix of ndn_data_tlv_decode_* in
// original_source/ndn-lite/encode/data.c, including its
// Content-is-optional handling: a Data with no Content TLV goes straight
// from MetaInfo to SignatureInfo.
func decodeCommon(block []byte) (*Data, int, int, error) {
	dec := tlv.NewDecoder(block)
	tlvType, err := dec.GetType()
	if err != nil {
		return nil, 0, 0, err
	}
	if tlvType != tlv.Data {
		return nil, 0, 0, tlv.ErrWrongType
	}
	if _, err := dec.GetLength(); err != nil {
		return nil, 0, 0, err
	}

	inputStart := dec.Offset()

	name, err := DecodeName(dec)
	if err != nil {
		return nil, 0, 0, err
	}
	metaInfo, err := DecodeMetaInfo(dec)
	if err != nil {
		return nil, 0, 0, err
	}

	d := &Data{Name: *name, MetaInfo: *metaInfo}

	fieldType, _, err := dec.PeekType()
	if err != nil {
		return nil, 0, 0, err
	}
	switch fieldType {
	case tlv.Content:
		dec.GetType()
		// Check the claimed length against ContentMaxSize before GetLength
		// checks it against the remaining input, so an oversize Content is
		// reported as ErrOversize even when its value is not all present.
		claimed, _, err := tlv.DecodeVarNum(dec.Remaining())
		if err != nil {
			return nil, 0, 0, err
		}
		if claimed > tlv.ContentMaxSize {
			return nil, 0, 0, tlv.ErrOversize
		}
		length, err := dec.GetLength()
		if err != nil {
			return nil, 0, 0, err
		}
		d.Content.Size = length
		if err := dec.GetRawBuffer(d.Content.Value[:length]); err != nil {
			return nil, 0, 0, err
		}
	case tlv.SignatureInfo:
		// no Content TLV present; nothing to un-read since PeekType did
		// not advance the cursor.
	default:
		return nil, 0, 0, tlv.ErrWrongType
	}

	sigInfo, err := DecodeSignatureInfo(dec)
	if err != nil {
		return nil, 0, 0, err
	}
	d.Signature = *sigInfo
	inputEnd := dec.Offset()

	if err := DecodeSignatureValue(dec, &d.Signature); err != nil {
		return nil, 0, 0, err
	}
	return d, inputStart, inputEnd, nil
}

// DecodeNoVerify parses a Data packet's wire encoding without checking
// its signature. Mirrors ndn_data_tlv_decode_no_verify.
func DecodeNoVerify(block []byte) (*Data, error) {
	d, _, _, err := decodeCommon(block)
	return d, err
}

// DecodeDigestVerify parses a Data packet and checks it against a
// DigestSha256 signature. Mirrors ndn_data_tlv_decode_digest_verify.
func DecodeDigestVerify(block []byte, backend security.ShaBackend) (*Data, error) {
	d, start, end, err := decodeCommon(block)
	if err != nil {
		return nil, err
	}
	if d.Signature.SigType != tlv.SigTypeDigestSha256 {
		return nil, ErrUnsupportedSigType
	}
	if err := backend.Sha256Verify(block[start:end], d.Signature.SigValue[:d.Signature.SigSize]); err != nil {
		core.LogWarn("ndn.Data", "digest verification failed for "+d.Name.String())
		return nil, fmt.Errorf("%w: %w", ErrVerificationFailed, err)
	}
	return d, nil
}

// DecodeHMACVerify parses a Data packet and checks it against an
// HmacSha256 signature under key. Mirrors ndn_data_tlv_decode_hmac_verify.
func DecodeHMACVerify(block []byte, backend security.HmacBackend, key *security.HmacKey) (*Data, error) {
	d, start, end, err := decodeCommon(block)
	if err != nil {
		return nil, err
	}
	if d.Signature.SigType != tlv.SigTypeHmacSha256 {
		return nil, ErrUnsupportedSigType
	}
	if err := backend.Verify(block[start:end], d.Signature.SigValue[:d.Signature.SigSize], key); err != nil {
		core.LogWarn("ndn.Data", "hmac verification failed for "+d.Name.String())
		return nil, fmt.Errorf("%w: %w", ErrVerificationFailed, err)
	}
	return d, nil
}

// DecodeECDSAVerify parses a Data packet and checks it against an
// EcdsaSha256 signature under pub. Mirrors
// ndn_data_tlv_decode_ecdsa_verify.
func DecodeECDSAVerify(block []byte, backend security.EccBackend, pub *security.EcdsaPublicKey) (*Data, error) {
	d, start, end, err := decodeCommon(block)
	if err != nil {
		return nil, err
	}
	if d.Signature.SigType != tlv.SigTypeEcdsaSha256 {
		return nil, ErrUnsupportedSigType
	}
	if err := backend.Verify(block[start:end], d.Signature.SigValue[:d.Signature.SigSize], pub); err != nil {
		core.LogWarn("ndn.Data", "ecdsa verification failed for "+d.Name.String())
		return nil, fmt.Errorf("%w: %w", ErrVerificationFailed, err)
	}
	return d, nil
}

// SetEncryptedContent replaces the Data's content with an AES-CBC
// encrypted envelope wrapping keyID (the decryption key's name), an IV
// and the ciphertext, mirroring ndn_data_set_encrypted_content's wire
// layout: TLV_AC_ENCRYPTED_CONTENT { Name, TLV_AC_AES_IV, TLV_AC_
// ENCRYPTED_PAYLOAD }.
//
// original_source/ndn-lite advances its output offset by a *stale*
// data->content_size left over from a previous call
// (encoder.offset += data->content_size + NDN_AES_BLOCK_SIZE, using the
// struct field rather than the ciphertext length just computed) — flagged
// in Design Note §9 as a latent bug. This implementation instead sizes
// every step purely from the freshly observed ciphertext length, so a
// Data whose content is re-encrypted never carries forward a size from an
// earlier call.
func (d *Data) SetEncryptedContent(backend security.AesBackend, contentValue []byte, keyID *Name, iv []byte, key *security.AesKey) error {
	if len(iv) != tlv.AESBlockSize {
		return tlv.ErrOversize
	}
	ciphertext, err := backend.CbcEncrypt(contentValue, iv, key)
	if err != nil {
		return err
	}

	valueSize := keyID.ProbeBlockSize() +
		tlv.ProbeBlockSize(tlv.ACAESIv, tlv.AESBlockSize) +
		tlv.ProbeBlockSize(tlv.ACEncryptedPayload, len(ciphertext))
	totalSize := tlv.ProbeBlockSize(tlv.ACEncryptedContent, valueSize)
	if totalSize > tlv.ContentMaxSize {
		return tlv.ErrOversize
	}

	var out [tlv.ContentMaxSize]byte
	enc := tlv.NewEncoder(out[:])
	if err := enc.AppendType(tlv.ACEncryptedContent); err != nil {
		return err
	}
	if err := enc.AppendLength(valueSize); err != nil {
		return err
	}
	if err := keyID.Encode(enc); err != nil {
		return err
	}
	if err := enc.AppendBlock(tlv.ACAESIv, iv); err != nil {
		return err
	}
	if err := enc.AppendBlock(tlv.ACEncryptedPayload, ciphertext); err != nil {
		return err
	}

	d.Content.Size = enc.Offset()
	copy(d.Content.Value[:], out[:enc.Offset()])
	return nil
}

// ParseEncryptedContent reverses SetEncryptedContent, decrypting the
// envelope with key and returning the plaintext content and the name of
// the key it was encrypted under. Like SetEncryptedContent, the output
// size is taken from the ciphertext TLV's own length field rather than
// any previously cached size, so it cannot reproduce ndn-lite's stale-
// size bug.
func (d *Data) ParseEncryptedContent(backend security.AesBackend, key *security.AesKey) ([]byte, *Name, error) {
	dec := tlv.NewDecoder(d.Content.Value[:d.Content.Size])

	tlvType, err := dec.GetType()
	if err != nil {
		return nil, nil, err
	}
	if tlvType != tlv.ACEncryptedContent {
		return nil, nil, tlv.ErrWrongType
	}
	if _, err := dec.GetLength(); err != nil {
		return nil, nil, err
	}

	keyID, err := DecodeName(dec)
	if err != nil {
		return nil, nil, err
	}

	ivType, err := dec.GetType()
	if err != nil {
		return nil, nil, err
	}
	if ivType != tlv.ACAESIv {
		return nil, nil, tlv.ErrWrongType
	}
	ivLen, err := dec.GetLength()
	if err != nil {
		return nil, nil, err
	}
	if ivLen != tlv.AESBlockSize {
		return nil, nil, ErrInvalidIVLength
	}
	iv := make([]byte, ivLen)
	if err := dec.GetRawBuffer(iv); err != nil {
		return nil, nil, err
	}

	payloadType, err := dec.GetType()
	if err != nil {
		return nil, nil, err
	}
	if payloadType != tlv.ACEncryptedPayload {
		return nil, nil, tlv.ErrWrongType
	}
	payloadLen, err := dec.GetLength()
	if err != nil {
		return nil, nil, err
	}
	ciphertext := make([]byte, payloadLen)
	if err := dec.GetRawBuffer(ciphertext); err != nil {
		return nil, nil, err
	}

	plaintext, err := backend.CbcDecrypt(ciphertext, iv, key)
	if err != nil {
		core.LogError("ndn.Data", "failed to decrypt content: "+err.Error())
		return nil, nil, err
	}
	return plaintext, keyID, nil
}
