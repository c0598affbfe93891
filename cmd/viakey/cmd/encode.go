package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/viacoin/viakey"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <scalar-hex>",
	Short: "Encode a raw private key scalar as WIF",
	Long: `Encode a raw 32-byte big-endian scalar, given as 64 hex digits,
in Wallet Import Format. The network comes from --network, the VIAKEY_NETWORK
environment variable or the config file; keys encode compressed unless
--uncompressed is set.

Examples:
  viakey encode f7a1d6cd...4ce58d --network testnet
  viakey encode f7a1d6cd...4ce58d --uncompressed`,
	Args: cobra.ExactArgs(1),
	RunE: runEncode,
}

func init() {
	encodeCmd.Flags().Bool("uncompressed", false, "encode without the compression marker")

	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	scalar, err := hex.DecodeString(args[0])
	if err != nil {
		return fmt.Errorf("decode scalar hex: %w", err)
	}
	defer func() {
		for i := range scalar {
			scalar[i] = 0
		}
	}()

	network, err := configNetwork()
	if err != nil {
		return err
	}
	uncompressed, _ := cmd.Flags().GetBool("uncompressed")

	key, err := viakey.NewPrivateKey(network, !uncompressed, scalar)
	if err != nil {
		return err
	}
	defer key.Zero()

	fmt.Println(key.ToWIF())
	return nil
}
