package main

import (
	"bytes"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pmuens/chacha-core/chacha"
)

// newBenchCommand builds `chachatool bench`, which measures keystream
// throughput for every variant over a fixed-size buffer and reports
// human-readable bytes/sec instead of raw numbers.
func newBenchCommand(log *zap.Logger) *cobra.Command {
	var sizeMB int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure keystream throughput for each cipher variant",
		RunE: func(cmd *cobra.Command, _ []string) error {
			size := sizeMB * 1024 * 1024
			buf := make([]byte, size)

			log.Info("dispatch variant resolved", zap.String("variant", string(chacha.CurrentVariant())))

			names := []string{"chacha20", "chacha12", "chacha8", "ietf", "xchacha20"}
			for _, name := range names {
				spec := variants[name]
				key := bytes.Repeat([]byte{0x11}, spec.KeySize)
				nonce := bytes.Repeat([]byte{0x22}, spec.NonceSize)

				cipher, err := newCipher(name, key, nonce)
				if err != nil {
					return err
				}

				start := time.Now()
				if err := cipher.TryApplyKeystream(buf); err != nil {
					return fmt.Errorf("variant %s: %w", name, err)
				}
				elapsed := time.Since(start)

				throughput := float64(size) / elapsed.Seconds()
				log.Info("bench result",
					zap.String("variant", name),
					zap.Duration("elapsed", elapsed),
					zap.Float64("bytes_per_sec", throughput),
				)
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %10s in %-12s (%s/s)\n",
					name,
					humanize.Bytes(uint64(size)),
					elapsed.Round(time.Microsecond),
					humanize.Bytes(uint64(throughput)),
				)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&sizeMB, "size-mb", 16, "size of the buffer to generate keystream for, in megabytes")

	return cmd
}
