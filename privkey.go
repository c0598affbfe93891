package viakey

import (
	"fmt"
	"runtime"
)

// WIF payload layout: [version:1][scalar:32] with an optional trailing
// compression marker.
const (
	ScalarLen = 32

	wifPayloadLen           = 1 + ScalarLen
	wifCompressedPayloadLen = wifPayloadLen + 1
	compressionMarker       = 0x01
)

// PrivateKey is a secp256k1 private key bound to a network, together with
// the serialization format its derived public key should use. It is a
// value type; each PrivateKey exclusively owns its scalar bytes.
type PrivateKey struct {
	network    Network
	compressed bool
	scalar     [ScalarLen]byte
}

// NewPrivateKey constructs a PrivateKey from a raw 32-byte big-endian
// scalar, validating it through the Curve collaborator.
func (c Codec) NewPrivateKey(network Network, compressed bool, scalar []byte) (PrivateKey, error) {
	if len(scalar) != ScalarLen {
		return PrivateKey{}, &InvalidLengthError{Len: len(scalar)}
	}
	k := PrivateKey{network: network, compressed: compressed}
	copy(k.scalar[:], scalar)
	if err := c.Curve.CheckScalar(&k.scalar); err != nil {
		k.Zero()
		return PrivateKey{}, fmt.Errorf("%w: %v", ErrInvalidScalar, err)
	}
	return k, nil
}

// EncodeWIF renders the key in Wallet Import Format. Encoding is total: it
// cannot fail for a validly constructed key.
func (c Codec) EncodeWIF(k PrivateKey) string {
	var payload [wifCompressedPayloadLen]byte
	payload[0] = k.network.WIFVersion()
	copy(payload[1:wifPayloadLen], k.scalar[:])
	n := wifPayloadLen
	if k.compressed {
		payload[wifPayloadLen] = compressionMarker
		n = wifCompressedPayloadLen
	}
	wif := c.Check.CheckEncode(payload[:n])
	zeroBytes(payload[:])
	return wif
}

// ParseWIF decodes a Wallet Import Format string.
//
// A 34-byte payload is read as compressed regardless of the value of its
// trailing marker byte, matching the upstream decoder. Regtest keys come
// back as TestNet because the two networks share a version byte.
func (c Codec) ParseWIF(wif string) (PrivateKey, error) {
	payload, err := c.Check.CheckDecode(wif)
	if err != nil {
		return PrivateKey{}, err
	}
	defer zeroBytes(payload)

	var compressed bool
	switch len(payload) {
	case wifPayloadLen:
	case wifCompressedPayloadLen:
		compressed = true
	default:
		return PrivateKey{}, &InvalidLengthError{Len: len(payload)}
	}
	network, err := NetworkFromWIFVersion(payload[0])
	if err != nil {
		return PrivateKey{}, err
	}
	return c.NewPrivateKey(network, compressed, payload[1:wifPayloadLen])
}

// DerivePublicKey computes the public key for k's scalar. The result
// inherits k's compression preference. Derivation is total for a validly
// constructed key.
func (c Codec) DerivePublicKey(k PrivateKey) PublicKey {
	scalar := k.scalar
	point := c.Curve.ScalarBasePoint(&scalar)
	zeroBytes(scalar[:])
	return PublicKey{compressed: k.compressed, point: point}
}

// NewPrivateKey constructs a PrivateKey using the Default codec.
func NewPrivateKey(network Network, compressed bool, scalar []byte) (PrivateKey, error) {
	return Default.NewPrivateKey(network, compressed, scalar)
}

// ParseWIF decodes a Wallet Import Format string using the Default codec.
func ParseWIF(wif string) (PrivateKey, error) {
	return Default.ParseWIF(wif)
}

// Network returns the network the key belongs to.
func (k PrivateKey) Network() Network {
	return k.network
}

// Compressed reports whether the derived public key serializes compressed.
func (k PrivateKey) Compressed() bool {
	return k.compressed
}

// WithCompressed returns a copy of the key with the given compression
// preference. The receiver is unchanged.
func (k PrivateKey) WithCompressed(compressed bool) PrivateKey {
	k.compressed = compressed
	return k
}

// Serialize returns a fresh copy of the raw 32-byte scalar.
func (k PrivateKey) Serialize() []byte {
	b := make([]byte, ScalarLen)
	copy(b, k.scalar[:])
	return b
}

// ToWIF renders the key in Wallet Import Format using the Default codec.
func (k PrivateKey) ToWIF() string {
	return Default.EncodeWIF(k)
}

// PublicKey derives the public key using the Default codec.
func (k PrivateKey) PublicKey() PublicKey {
	return Default.DerivePublicKey(k)
}

// Equal reports whether both keys have the same network, compression
// preference and scalar.
func (k PrivateKey) Equal(other PrivateKey) bool {
	return k.network == other.network &&
		k.compressed == other.compressed &&
		k.scalar == other.scalar
}

// String returns the WIF encoding.
func (k PrivateKey) String() string {
	return k.ToWIF()
}

// GoString masks the scalar so %#v never prints key material.
func (k PrivateKey) GoString() string {
	return "viakey.PrivateKey{[private key data]}"
}

// Zero wipes the scalar in place. The key is unusable afterwards. Wiping
// is best effort: copies made by the garbage collector or by passing the
// key by value are not reached.
func (k *PrivateKey) Zero() {
	zeroBytes(k.scalar[:])
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
