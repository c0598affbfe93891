package viakey

import (
	"errors"
	"fmt"

	"github.com/viacoin/viakey/base58check"
)

// Sentinel errors - text decoding. These alias the base58check sentinels so
// callers can match with errors.Is without importing the collaborator.
var (
	ErrInvalidCharacter = base58check.ErrInvalidCharacter
	ErrChecksumMismatch = base58check.ErrChecksumMismatch
)

// Sentinel errors - cryptographic validation
var (
	ErrInvalidScalar = errors.New("viakey: invalid private key scalar")
	ErrInvalidPoint  = errors.New("viakey: invalid public key point")
)

// InvalidLengthError reports a payload whose byte count does not match any
// recognized key or address encoding.
type InvalidLengthError struct {
	Len int
}

// Error implements the error interface.
func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("viakey: invalid payload length %d", e.Len)
}

// UnknownVersionError reports a version byte outside the network table.
type UnknownVersionError struct {
	Version byte
}

// Error implements the error interface.
func (e *UnknownVersionError) Error() string {
	return fmt.Sprintf("viakey: unknown version byte 0x%02x", e.Version)
}
