package viakey

import (
	"github.com/viacoin/viakey/secp256k1"
)

// Hash160Len is the length of a p2pkh public key hash.
const Hash160Len = 20

// Address is a pay-to-pubkey-hash address: the RIPEMD160(SHA256) digest of
// a serialized public key, bound to a network.
type Address struct {
	network Network
	hash    [Hash160Len]byte
}

// NewAddress derives the p2pkh address of key on the given network. The
// digest covers the key's preferred serialization, so the compressed and
// uncompressed forms of the same point yield different addresses.
func NewAddress(key PublicKey, network Network) Address {
	a := Address{network: network}
	copy(a.hash[:], secp256k1.Hash160(key.Serialize()))
	return a
}

// ParseAddress decodes a Base58Check p2pkh address using the Default codec.
func ParseAddress(s string) (Address, error) {
	return Default.ParseAddress(s)
}

// ParseAddress decodes a Base58Check p2pkh address.
func (c Codec) ParseAddress(s string) (Address, error) {
	payload, err := c.Check.CheckDecode(s)
	if err != nil {
		return Address{}, err
	}
	if len(payload) != 1+Hash160Len {
		return Address{}, &InvalidLengthError{Len: len(payload)}
	}
	network, err := networkFromAddressVersion(payload[0])
	if err != nil {
		return Address{}, err
	}
	a := Address{network: network}
	copy(a.hash[:], payload[1:])
	return a, nil
}

// Network returns the network the address belongs to.
func (a Address) Network() Network {
	return a.network
}

// Hash160 returns a fresh copy of the public key hash.
func (a Address) Hash160() []byte {
	b := make([]byte, Hash160Len)
	copy(b, a.hash[:])
	return b
}

// String renders the address in Base58Check using the Default codec.
func (a Address) String() string {
	var payload [1 + Hash160Len]byte
	payload[0] = a.network.AddressVersion()
	copy(payload[1:], a.hash[:])
	return Default.Check.CheckEncode(payload[:])
}

// Equal reports whether both addresses have the same network and hash.
func (a Address) Equal(other Address) bool {
	return a.network == other.network && a.hash == other.hash
}
