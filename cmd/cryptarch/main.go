package main

import (
	"github.com/spf13/cobra"

	"github.com/cryptarch/cryptarch"
)

var log = cryptarch.Logger

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func init() {
	rootCmd.AddCommand(encryptCmd)
	rootCmd.AddCommand(decryptCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(infoCmd)

	for _, c := range []*cobra.Command{encryptCmd, decryptCmd} {
		c.Flags().StringArrayVarP(&keyFlags, "key", "k", nil, "cipher key, repeat for multi-key ciphers")
	}
	for _, c := range []*cobra.Command{encryptCmd, decryptCmd, encodeCmd, decodeCmd} {
		c.Flags().StringVar(&inPath, "in", "", "read the input text from a file")
		c.Flags().StringVar(&outPath, "out", "", "write the output to a file")
	}

	// after flag parsing, so the flag defaults cannot clobber config values
	cobra.OnInitialize(loadConfig)
}

var rootCmd = &cobra.Command{
	Use:   "cryptarch",
	Short: "Classical ciphers and encodings",
	Long:  banner() + "\nA toolkit of classical substitution, transposition and fractionation\nciphers, plus keyless text encodings.",
}
