package viakey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viacoin/viakey/base58check"
)

func TestNewAddress(t *testing.T) {
	t.Run("mainnet uncompressed", func(t *testing.T) {
		pub, err := PublicKeyFromHex(mainnetPubHex)
		require.NoError(t, err)

		addr := NewAddress(pub, MainNet)
		assert.Equal(t, mainnetAddress, addr.String())
		assert.Equal(t, mustHex(t, "13a900853a1c4d462dde5e01e788266f40a60162"), addr.Hash160())
	})

	t.Run("testnet compressed", func(t *testing.T) {
		key, err := ParseWIF(testnetWIF)
		require.NoError(t, err)

		addr := NewAddress(key.PublicKey(), key.Network())
		assert.Equal(t, testnetAddress, addr.String())
		assert.Equal(t, mustHex(t, "726589f17c655b20a803f4599931907a050d0785"), addr.Hash160())
	})

	t.Run("compression changes the address", func(t *testing.T) {
		pub, err := PublicKeyFromHex(mainnetPubHex)
		require.NoError(t, err)

		a := NewAddress(pub, MainNet)
		b := NewAddress(pub.WithCompressed(true), MainNet)
		assert.False(t, a.Equal(b))
	})
}

func TestParseAddress(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		for _, s := range []string{mainnetAddress, testnetAddress} {
			addr, err := ParseAddress(s)
			require.NoError(t, err)
			assert.Equal(t, s, addr.String())
		}
	})

	t.Run("networks", func(t *testing.T) {
		addr, err := ParseAddress(mainnetAddress)
		require.NoError(t, err)
		assert.Equal(t, MainNet, addr.Network())

		addr, err = ParseAddress(testnetAddress)
		require.NoError(t, err)
		assert.Equal(t, TestNet, addr.Network())
	})

	t.Run("unknown version", func(t *testing.T) {
		payload := append([]byte{0x00}, make([]byte, Hash160Len)...)
		_, err := ParseAddress(base58check.CheckEncode(payload))
		var verErr *UnknownVersionError
		require.ErrorAs(t, err, &verErr)
		assert.Equal(t, byte(0x00), verErr.Version)
	})

	t.Run("wrong length", func(t *testing.T) {
		payload := append([]byte{0x47}, make([]byte, Hash160Len-1)...)
		_, err := ParseAddress(base58check.CheckEncode(payload))
		var lenErr *InvalidLengthError
		require.ErrorAs(t, err, &lenErr)
		assert.Equal(t, Hash160Len, lenErr.Len)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		tampered := mainnetAddress[:len(mainnetAddress)-1] + "m"
		_, err := ParseAddress(tampered)
		assert.ErrorIs(t, err, ErrChecksumMismatch)
	})
}
