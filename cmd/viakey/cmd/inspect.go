package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/viacoin/viakey"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <wif>",
	Short: "Decode a WIF private key and show everything derived from it",
	Long: `Decode a Wallet Import Format private key and print its network,
compression preference, derived public key and p2pkh address. The scalar
itself is never printed.

Examples:
  viakey inspect cVt4o7BGAig1UXywgGSmARhxMdzP5qvQsxKkSsc1XEkw3tDTQFpy`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	key, err := viakey.ParseWIF(args[0])
	if err != nil {
		return err
	}
	defer key.Zero()

	pub := key.PublicKey()
	addr := viakey.NewAddress(pub, key.Network())

	fmt.Printf("network:     %s\n", key.Network())
	fmt.Printf("compressed:  %t\n", key.Compressed())
	fmt.Printf("public key:  %s\n", pub)
	fmt.Printf("address:     %s\n", addr)
	return nil
}
