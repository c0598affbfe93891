package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/viacoin/viakey"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "viakey",
	Short: "Inspect and convert Viacoin key material",
	Long: `viakey works with the external representations of Viacoin keys:
WIF private keys, SEC1 public keys and p2pkh addresses.

Examples:
  viakey inspect cVt4o7BGAig1UXywgGSmARhxMdzP5qvQsxKkSsc1XEkw3tDTQFpy
  viakey pubkey <wif> --uncompressed
  viakey address <wif|pubkey-hex>
  viakey encode <scalar-hex> --network testnet`,
	SilenceUsage: true,
}

// Execute runs the root command and exits nonzero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.viakey.yaml)")
	rootCmd.PersistentFlags().StringP("network", "n", "", "network for raw key input (mainnet, testnet, regtest)")
	if err := viper.BindPFlag("network", rootCmd.PersistentFlags().Lookup("network")); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	viper.SetDefault("network", "mainnet")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigType("yaml")
			viper.SetConfigName(".viakey")
		}
	}

	viper.SetEnvPrefix("VIAKEY")
	viper.AutomaticEnv()

	// A missing config file is fine; flags and env cover everything.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "read config: %v\n", err)
			os.Exit(1)
		}
	}
}

// configNetwork resolves the network from flag, env or config file.
func configNetwork() (viakey.Network, error) {
	return viakey.ParseNetwork(viper.GetString("network"))
}
