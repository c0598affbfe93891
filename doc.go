// Package viakey implements the canonical external representations of
// Viacoin key material: the SEC1 byte encodings of secp256k1 public keys
// and the checksummed Wallet Import Format (WIF) for private keys.
//
// Viacoin is a forked parameter set. Its WIF version bytes (0xC7 mainnet,
// 0xEF testnet/regtest) and its p2pkh address versions (0x47 mainnet,
// 0x6F testnet/regtest) differ from the upstream Bitcoin values and must
// not be substituted with the familiar constants.
//
// All operations are pure functions of their input and are safe for
// concurrent use. The elliptic curve arithmetic and the Base58Check text
// codec are pluggable collaborators bound through a Codec; the package
// level functions use the Default codec, backed by btcec and the standard
// Base58 alphabet.
package viakey
