package viakey

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// Serialized public key lengths.
const (
	CompressedPubKeyLen   = 33
	UncompressedPubKeyLen = 65
)

// PublicKey is an elliptic curve public key together with its preferred
// serialization format. It is a value type; the zero PublicKey is not
// valid. Obtain one from ParsePublicKey, PublicKeyFromHex, NewPublicKey or
// PrivateKey.PublicKey.
type PublicKey struct {
	compressed bool
	point      Point
}

// NewPublicKey constructs a PublicKey from an already validated point.
func NewPublicKey(point Point, compressed bool) PublicKey {
	return PublicKey{compressed: compressed, point: point}
}

// Compressed reports whether the key serializes to the 33-byte format.
func (k PublicKey) Compressed() bool {
	return k.compressed
}

// Point returns the underlying curve point.
func (k PublicKey) Point() Point {
	return k.point
}

// WithCompressed returns a copy of the key that serializes in the given
// format. The receiver is unchanged.
func (k PublicKey) WithCompressed(compressed bool) PublicKey {
	k.compressed = compressed
	return k
}

// Serialize returns the SEC1 encoding of the key: 33 bytes when compressed,
// 65 bytes otherwise.
func (k PublicKey) Serialize() []byte {
	if k.compressed {
		return k.point.SerializeCompressed()
	}
	return k.point.SerializeUncompressed()
}

// String returns the lowercase hex encoding of Serialize.
func (k PublicKey) String() string {
	return hex.EncodeToString(k.Serialize())
}

// Equal reports whether both keys serialize identically. The same point in
// different formats compares unequal.
func (k PublicKey) Equal(other PublicKey) bool {
	return k.compressed == other.compressed && bytes.Equal(k.Serialize(), other.Serialize())
}

// Compare orders keys by (compressed, serialized bytes) and returns -1, 0
// or +1. Uncompressed keys sort before compressed ones.
func (k PublicKey) Compare(other PublicKey) int {
	if k.compressed != other.compressed {
		if !k.compressed {
			return -1
		}
		return 1
	}
	return bytes.Compare(k.Serialize(), other.Serialize())
}

// ParsePublicKey deserializes a public key, routing through the Curve
// collaborator for point validation. The compression flag is taken from
// the input length.
func (c Codec) ParsePublicKey(b []byte) (PublicKey, error) {
	switch len(b) {
	case CompressedPubKeyLen, UncompressedPubKeyLen:
	default:
		return PublicKey{}, &InvalidLengthError{Len: len(b)}
	}
	point, err := c.Curve.ParsePoint(b)
	if err != nil {
		return PublicKey{}, fmt.Errorf("%w: %v", ErrInvalidPoint, err)
	}
	return PublicKey{compressed: len(b) == CompressedPubKeyLen, point: point}, nil
}

// PublicKeyFromHex parses the lowercase hex form produced by String. The
// compression flag follows from the text length (66 hex digits means
// compressed), which agrees with the byte length check in ParsePublicKey.
func (c Codec) PublicKeyFromHex(s string) (PublicKey, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return PublicKey{}, fmt.Errorf("%w: %v", ErrInvalidCharacter, err)
	}
	return c.ParsePublicKey(b)
}

// ParsePublicKey deserializes a public key using the Default codec.
func ParsePublicKey(b []byte) (PublicKey, error) {
	return Default.ParsePublicKey(b)
}

// PublicKeyFromHex parses a hex encoded public key using the Default codec.
func PublicKeyFromHex(s string) (PublicKey, error) {
	return Default.PublicKeyFromHex(s)
}
