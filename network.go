package viakey

import (
	"fmt"
	"strings"
)

// Network identifies which chain a key or address belongs to.
type Network byte

// Supported networks. Testnet and regtest share version bytes, so a regtest
// key decodes back as TestNet.
const (
	MainNet Network = iota
	TestNet
	RegTest
)

// Version bytes for the Viacoin parameter set. The mainnet WIF prefix is
// 0xC7, not the upstream 0x80; decoders that substitute the familiar
// constant silently accept keys for the wrong chain.
const (
	wifVersionMain = 0xC7
	wifVersionTest = 0xEF

	addrVersionMain = 0x47
	addrVersionTest = 0x6F
)

// String implements fmt.Stringer.
func (n Network) String() string {
	switch n {
	case MainNet:
		return "mainnet"
	case TestNet:
		return "testnet"
	case RegTest:
		return "regtest"
	default:
		return fmt.Sprintf("network(%d)", byte(n))
	}
}

// ParseNetwork parses a network name as accepted on the command line and in
// config files.
func ParseNetwork(s string) (Network, error) {
	switch strings.ToLower(s) {
	case "mainnet", "main":
		return MainNet, nil
	case "testnet", "test":
		return TestNet, nil
	case "regtest":
		return RegTest, nil
	}
	return 0, fmt.Errorf("viakey: unknown network %q", s)
}

// WIFVersion returns the version byte used as the first byte of this
// network's WIF payload.
func (n Network) WIFVersion() byte {
	if n == MainNet {
		return wifVersionMain
	}
	return wifVersionTest
}

// NetworkFromWIFVersion routes a WIF version byte back to its network.
func NetworkFromWIFVersion(version byte) (Network, error) {
	switch version {
	case wifVersionMain:
		return MainNet, nil
	case wifVersionTest:
		return TestNet, nil
	}
	return 0, &UnknownVersionError{Version: version}
}

// AddressVersion returns the version byte of this network's p2pkh addresses.
func (n Network) AddressVersion() byte {
	if n == MainNet {
		return addrVersionMain
	}
	return addrVersionTest
}

func networkFromAddressVersion(version byte) (Network, error) {
	switch version {
	case addrVersionMain:
		return MainNet, nil
	case addrVersionTest:
		return TestNet, nil
	}
	return 0, &UnknownVersionError{Version: version}
}
