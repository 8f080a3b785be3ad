package main

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/cryptarch/cryptarch/registry"
)

var (
	keyFlags []string
	inPath   string
	outPath  string
)

// readInput takes the text from the trailing argument, --in, or stdin, in
// that order of preference.
func readInput(args []string) (string, error) {
	if len(args) > 1 {
		return strings.Join(args[1:], " "), nil
	}
	if inPath != "" {
		raw, err := os.ReadFile(inPath)
		if err != nil {
			return "", errors.Wrap(err, "reading --in file")
		}
		return string(raw), nil
	}
	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", errors.Wrap(err, "reading stdin")
	}
	return strings.TrimRight(string(raw), "\n"), nil
}

func writeOutput(cmd *cobra.Command, out string) error {
	if outPath != "" {
		return errors.Wrap(os.WriteFile(outPath, []byte(out+"\n"), 0o644), "writing --out file")
	}
	cmd.Println(out)
	return nil
}

// runTransform resolves the named algorithm and applies one direction of
// it. Key and format errors abort before any output is produced.
func runTransform(cmd *cobra.Command, args []string, decrypt, encoding bool) error {
	entry, err := registry.Lookup(args[0])
	if err != nil {
		return err
	}
	if encoding != entry.Keyless {
		if entry.Keyless {
			return errors.Errorf("%s is an encoding; use encode/decode", entry.Name)
		}
		return errors.Errorf("%s is a cipher; use encrypt/decrypt", entry.Name)
	}
	if err := entry.CheckKeys(keyFlags); err != nil {
		return err
	}
	text, err := readInput(args)
	if err != nil {
		return err
	}
	fn := entry.Encrypt
	if decrypt {
		fn = entry.Decrypt
	}
	out, err := fn(text, keyFlags)
	if err != nil {
		return err
	}
	return writeOutput(cmd, out)
}

var encryptCmd = &cobra.Command{
	Use:   "encrypt NAME [TEXT]",
	Short: "Encrypt text with the named cipher",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransform(cmd, args, false, false)
	},
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt NAME [TEXT]",
	Short: "Decrypt text with the named cipher",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransform(cmd, args, true, false)
	},
}

var encodeCmd = &cobra.Command{
	Use:   "encode NAME [TEXT]",
	Short: "Encode text with the named encoding",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransform(cmd, args, false, true)
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode NAME [TEXT]",
	Short: "Decode text with the named encoding",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransform(cmd, args, true, true)
	},
}

var infoCmd = &cobra.Command{
	Use:   "info NAME",
	Short: "Describe a cipher or encoding",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, err := registry.Lookup(args[0])
		if err != nil {
			return err
		}
		cmd.Println(renderInfo(entry))
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every cipher and encoding",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.Println(renderList(registry.All()))
		return nil
	},
}
