// Command chachatool is a small CLI front-end over the chacha* packages:
// it XORs keystream against stdin, demonstrates seeking within a stream,
// and benchmarks the five cipher variants against each other.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "chachatool: failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := newRootCommand(logger).Execute(); err != nil {
		os.Exit(1)
	}
}
