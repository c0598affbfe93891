package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/viacoin/viakey"
)

var pubkeyCmd = &cobra.Command{
	Use:   "pubkey <wif>",
	Short: "Derive the public key of a WIF private key",
	Long: `Derive the secp256k1 public key of a WIF private key and print it
as lowercase hex. The serialization format follows the compression
preference embedded in the WIF unless overridden.

Examples:
  viakey pubkey <wif>
  viakey pubkey <wif> --uncompressed`,
	Args: cobra.ExactArgs(1),
	RunE: runPubkey,
}

func init() {
	pubkeyCmd.Flags().Bool("uncompressed", false, "force the 65-byte uncompressed format")
	pubkeyCmd.Flags().Bool("compressed", false, "force the 33-byte compressed format")

	rootCmd.AddCommand(pubkeyCmd)
}

func runPubkey(cmd *cobra.Command, args []string) error {
	key, err := viakey.ParseWIF(args[0])
	if err != nil {
		return err
	}
	defer key.Zero()

	pub := key.PublicKey()
	if force, _ := cmd.Flags().GetBool("uncompressed"); force {
		pub = pub.WithCompressed(false)
	}
	if force, _ := cmd.Flags().GetBool("compressed"); force {
		pub = pub.WithCompressed(true)
	}

	fmt.Println(pub)
	return nil
}
