// Package base58check implements the checksummed Base58 text codec used by
// WIF private keys and p2pkh addresses: the payload is appended with the
// first four bytes of its double SHA-256 digest and encoded in the Base58
// alphabet.
package base58check

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
)

// ChecksumLen is the number of double SHA-256 bytes appended to a payload.
const ChecksumLen = 4

// Sentinel errors
var (
	ErrInvalidCharacter = errors.New("base58check: invalid base58 character")
	ErrChecksumMismatch = errors.New("base58check: checksum mismatch")
	ErrTooShort         = errors.New("base58check: decoded data too short")
)

// Checksum returns the first four bytes of SHA256(SHA256(payload)).
func Checksum(payload []byte) [ChecksumLen]byte {
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	var sum [ChecksumLen]byte
	copy(sum[:], second[:ChecksumLen])
	return sum
}

// CheckEncode appends the payload checksum and encodes the result in the
// Base58 alphabet.
func CheckEncode(payload []byte) string {
	sum := Checksum(payload)
	buf := make([]byte, 0, len(payload)+ChecksumLen)
	buf = append(buf, payload...)
	buf = append(buf, sum[:]...)
	return base58.Encode(buf)
}

// CheckDecode decodes a Base58Check string, verifies its checksum and
// returns the payload with the checksum stripped.
func CheckDecode(s string) ([]byte, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCharacter, err)
	}
	if len(raw) < ChecksumLen+1 {
		return nil, ErrTooShort
	}
	payload, sum := raw[:len(raw)-ChecksumLen], raw[len(raw)-ChecksumLen:]
	want := Checksum(payload)
	if !bytes.Equal(sum, want[:]) {
		return nil, ErrChecksumMismatch
	}
	return payload, nil
}
