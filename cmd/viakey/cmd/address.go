package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/viacoin/viakey"
)

var addressCmd = &cobra.Command{
	Use:   "address <wif|pubkey-hex>",
	Short: "Derive the p2pkh address of a key",
	Long: `Derive the pay-to-pubkey-hash address of a key. The input is
either a WIF private key, which carries its own network, or a hex encoded
public key combined with --network.

Examples:
  viakey address <wif>
  viakey address 023b8f2b...d46faa --network mainnet`,
	Args: cobra.ExactArgs(1),
	RunE: runAddress,
}

func init() {
	rootCmd.AddCommand(addressCmd)
}

func runAddress(cmd *cobra.Command, args []string) error {
	input := args[0]

	// Public key hex is fixed length; everything else is treated as WIF.
	if len(input) == 2*viakey.CompressedPubKeyLen || len(input) == 2*viakey.UncompressedPubKeyLen {
		pub, err := viakey.PublicKeyFromHex(input)
		if err != nil {
			return err
		}
		network, err := configNetwork()
		if err != nil {
			return err
		}
		fmt.Println(viakey.NewAddress(pub, network))
		return nil
	}

	key, err := viakey.ParseWIF(input)
	if err != nil {
		return err
	}
	defer key.Zero()

	fmt.Println(viakey.NewAddress(key.PublicKey(), key.Network()))
	return nil
}
