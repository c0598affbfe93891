package secp256k1

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	knownScalarHex    = "421087263fb8f65892011d84773bdf20a2bf53a1693cfc4d357f3ad01b5a3aa8"
	knownPointHex     = "043b8f2b8f1e4cffe479c512a082306306e39b28961c3e8e6f91ff31cfa7d46faad951cc2e10702857d7c9389ef7ef82886b69430358e72992fbbd0bcde709c3bc"
	knownPointHexComp = "023b8f2b8f1e4cffe479c512a082306306e39b28961c3e8e6f91ff31cfa7d46faa"
	groupOrderHex     = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"
)

func scalar32(t *testing.T, hexStr string) *[32]byte {
	t.Helper()
	b, err := hex.DecodeString(hexStr)
	require.NoError(t, err)
	require.Len(t, b, 32)
	var s [32]byte
	copy(s[:], b)
	return &s
}

func TestParsePoint(t *testing.T) {
	t.Run("compressed", func(t *testing.T) {
		b, err := hex.DecodeString(knownPointHexComp)
		require.NoError(t, err)

		point, err := ParsePoint(b)
		require.NoError(t, err)
		assert.Equal(t, b, point.SerializeCompressed())
	})

	t.Run("uncompressed", func(t *testing.T) {
		b, err := hex.DecodeString(knownPointHex)
		require.NoError(t, err)

		point, err := ParsePoint(b)
		require.NoError(t, err)
		assert.Equal(t, b, point.SerializeUncompressed())
	})

	t.Run("both formats parse to the same point", func(t *testing.T) {
		comp, err := hex.DecodeString(knownPointHexComp)
		require.NoError(t, err)
		uncomp, err := hex.DecodeString(knownPointHex)
		require.NoError(t, err)

		a, err := ParsePoint(comp)
		require.NoError(t, err)
		b, err := ParsePoint(uncomp)
		require.NoError(t, err)
		assert.True(t, a.IsEqual(b))
	})

	t.Run("rejects bad prefix", func(t *testing.T) {
		b, err := hex.DecodeString(knownPointHexComp)
		require.NoError(t, err)
		b[0] = 0x01
		_, err = ParsePoint(b)
		assert.Error(t, err)
	})

	t.Run("rejects point off the curve", func(t *testing.T) {
		b, err := hex.DecodeString(knownPointHex)
		require.NoError(t, err)
		b[len(b)-1]++
		_, err = ParsePoint(b)
		assert.Error(t, err)
	})
}

func TestCheckScalar(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, CheckScalar(scalar32(t, knownScalarHex)))
	})

	t.Run("one below the group order is valid", func(t *testing.T) {
		assert.NoError(t, CheckScalar(scalar32(t, "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140")))
	})

	t.Run("zero", func(t *testing.T) {
		var s [32]byte
		assert.ErrorIs(t, CheckScalar(&s), ErrScalarZero)
	})

	t.Run("group order", func(t *testing.T) {
		assert.ErrorIs(t, CheckScalar(scalar32(t, groupOrderHex)), ErrScalarOverflow)
	})

	t.Run("all ones", func(t *testing.T) {
		var s [32]byte
		for i := range s {
			s[i] = 0xFF
		}
		assert.ErrorIs(t, CheckScalar(&s), ErrScalarOverflow)
	})
}

func TestScalarBasePoint(t *testing.T) {
	point := ScalarBasePoint(scalar32(t, knownScalarHex))
	assert.Equal(t, knownPointHex, hex.EncodeToString(point.SerializeUncompressed()))
	assert.Equal(t, knownPointHexComp, hex.EncodeToString(point.SerializeCompressed()))
}

func TestHash160(t *testing.T) {
	tests := []struct {
		name    string
		inHex   string
		wantHex string
	}{
		{
			name:    "uncompressed public key",
			inHex:   knownPointHex,
			wantHex: "13a900853a1c4d462dde5e01e788266f40a60162",
		},
		{
			name:    "compressed public key",
			inHex:   knownPointHexComp,
			wantHex: "4aa298c262edd9f1351204562e62e5476c4f06a9",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := hex.DecodeString(tt.inHex)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHex, hex.EncodeToString(Hash160(b)))
		})
	}
}
