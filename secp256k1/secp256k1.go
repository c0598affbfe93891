// Package secp256k1 is the cryptographic backend for viakey, wrapping
// btcec. It validates and parses curve points, checks private key scalars
// against the group order and derives public key points by scalar base
// multiplication.
package secp256k1

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // Required for p2pkh address derivation
)

// Sentinel errors
var (
	ErrScalarZero     = errors.New("secp256k1: scalar is zero")
	ErrScalarOverflow = errors.New("secp256k1: scalar not below group order")
)

// ParsePoint validates and parses a SEC1 encoded point, compressed or
// uncompressed. Points not on the curve and unknown format prefixes are
// rejected.
func ParsePoint(b []byte) (*btcec.PublicKey, error) {
	point, err := btcec.ParsePubKey(b)
	if err != nil {
		return nil, fmt.Errorf("parse point: %w", err)
	}
	return point, nil
}

// CheckScalar reports whether scalar is a valid private key: nonzero and
// below the curve group order.
func CheckScalar(scalar *[32]byte) error {
	var s btcec.ModNScalar
	overflow := s.SetBytes(scalar)
	zero := s.IsZero()
	s.Zero()
	if overflow != 0 {
		return ErrScalarOverflow
	}
	if zero {
		return ErrScalarZero
	}
	return nil
}

// ScalarBasePoint multiplies the curve base point by scalar. The scalar
// must already have passed CheckScalar; the multiplication itself cannot
// fail.
func ScalarBasePoint(scalar *[32]byte) *btcec.PublicKey {
	_, point := btcec.PrivKeyFromBytes(scalar[:])
	return point
}

// Hash160 computes RIPEMD160(SHA256(b)), the digest used by p2pkh
// addresses.
func Hash160(b []byte) []byte {
	sha := sha256.Sum256(b)
	rip := ripemd160.New()
	rip.Write(sha[:])
	return rip.Sum(nil)
}
