package viakey

import (
	"github.com/viacoin/viakey/base58check"
	"github.com/viacoin/viakey/secp256k1"
)

// Point is a validated elliptic curve point as produced by the curve
// backend. The codecs treat it as opaque beyond its two serializations.
type Point interface {
	// SerializeCompressed returns the 33-byte parity-prefix encoding.
	SerializeCompressed() []byte
	// SerializeUncompressed returns the 65-byte 0x04-prefix encoding.
	SerializeUncompressed() []byte
}

// Curve is the capability the key codecs require from a cryptographic
// backend.
type Curve interface {
	// ParsePoint validates and parses a 33- or 65-byte point encoding.
	ParsePoint(b []byte) (Point, error)
	// ScalarBasePoint multiplies the curve base point by scalar. The
	// scalar must already have passed CheckScalar.
	ScalarBasePoint(scalar *[32]byte) Point
	// CheckScalar reports whether scalar is a nonzero value below the
	// curve group order.
	CheckScalar(scalar *[32]byte) error
}

// Base58Check is the capability the WIF and address codecs require from a
// checksummed text codec. Implementations should classify failures with
// base58check.ErrInvalidCharacter and base58check.ErrChecksumMismatch so
// callers can match them through this package's sentinels.
type Base58Check interface {
	CheckEncode(payload []byte) string
	CheckDecode(s string) ([]byte, error)
}

// Codec binds the two collaborators used to encode and decode key material.
// The zero value is not usable; start from Default when swapping in a
// custom backend.
type Codec struct {
	Curve Curve
	Check Base58Check
}

// Default is the codec backed by btcec secp256k1 and the standard Base58
// alphabet. The package level functions and the key methods use it.
var Default = Codec{Curve: btcecCurve{}, Check: stdCheck{}}

type btcecCurve struct{}

func (btcecCurve) ParsePoint(b []byte) (Point, error) {
	point, err := secp256k1.ParsePoint(b)
	if err != nil {
		return nil, err
	}
	return point, nil
}

func (btcecCurve) ScalarBasePoint(scalar *[32]byte) Point {
	return secp256k1.ScalarBasePoint(scalar)
}

func (btcecCurve) CheckScalar(scalar *[32]byte) error {
	return secp256k1.CheckScalar(scalar)
}

type stdCheck struct{}

func (stdCheck) CheckEncode(payload []byte) string {
	return base58check.CheckEncode(payload)
}

func (stdCheck) CheckDecode(s string) ([]byte, error) {
	return base58check.CheckDecode(s)
}
