package main

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newEncryptCommand builds `chachatool encrypt`, which XORs a variant's
// keystream against stdin and writes the result to stdout. Because XOR
// with a stream cipher is its own inverse, the same subcommand serves both
// encryption and decryption.
func newEncryptCommand(log *zap.Logger) *cobra.Command {
	var (
		variant    string
		keyHex     string
		nonceHex   string
		seekOffset uint64
		configPath string
		profile    string
	)

	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "XOR a keystream against stdin, writing the result to stdout",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var key, nonce []byte
			var err error

			if configPath != "" {
				variant, key, nonce, err = loadProfile(configPath, profile)
				if err != nil {
					return err
				}
			} else {
				key, err = hex.DecodeString(keyHex)
				if err != nil {
					return fmt.Errorf("decoding --key: %w", err)
				}
				nonce, err = hex.DecodeString(nonceHex)
				if err != nil {
					return fmt.Errorf("decoding --nonce: %w", err)
				}
			}

			cipher, err := newCipher(variant, key, nonce)
			if err != nil {
				return err
			}
			if seekOffset != 0 {
				cipher.Seek(seekOffset)
			}

			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}

			if err := cipher.TryApplyKeystream(data); err != nil {
				log.Error("keystream request exceeded the counter horizon",
					zap.String("variant", variant),
					zap.Uint64("seek_offset", seekOffset),
					zap.Int("length", len(data)),
					zap.Error(err),
				)
				return err
			}

			log.Info("applied keystream",
				zap.String("variant", variant),
				zap.Int("bytes", len(data)),
				zap.Uint64("current_pos", cipher.CurrentPos()),
			)

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&variant, "variant", "chacha20", "cipher variant: chacha20, chacha12, chacha8, ietf, xchacha20")
	flags.StringVar(&keyHex, "key", "", "hex-encoded key (ignored when --config is set)")
	flags.StringVar(&nonceHex, "nonce", "", "hex-encoded nonce (ignored when --config is set)")
	flags.Uint64Var(&seekOffset, "seek", 0, "byte offset to seek to before applying the keystream")
	flags.StringVar(&configPath, "config", "", "TOML file holding named key/nonce/variant profiles")
	flags.StringVar(&profile, "profile", "default", "profile name to load from --config")

	return cmd
}
