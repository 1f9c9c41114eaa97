package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const fullDocsFooter = `chachatool wraps the chacha20, chacha12, chacha8, ietf and xchacha20
packages: a stream-cipher core with no authentication and no key
derivation beyond HChaCha20. It exists to exercise that core, not to
replace a real encryption tool.`

// newRootCommand builds the chachatool root command. Each invocation gets
// a fresh run ID (so correlating multiple runs in one session's logs is
// possible) attached to the logger passed down to every subcommand.
func newRootCommand(logger *zap.Logger) *cobra.Command {
	runID := uuid.New().String()
	log := logger.With(zap.String("run_id", runID))

	root := &cobra.Command{
		Use:   "chachatool",
		Short: "Apply, seek and benchmark ChaCha8/12/20, IETF and XChaCha20 keystreams",
		Long: `chachatool is a command-line front-end over a ChaCha8/12/20 stream
cipher core: the original Bernstein 64-bit-counter layout, the IETF
96-bit-nonce/32-bit-counter variant, and XChaCha20's 192-bit extended
nonce.`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.SetHelpTemplate(root.HelpTemplate() + "\n" + fullDocsFooter + "\n")

	root.AddCommand(newEncryptCommand(log))
	root.AddCommand(newSeekDemoCommand(log))
	root.AddCommand(newBenchCommand(log))

	return root
}
