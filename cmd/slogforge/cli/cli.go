// Package cli implements the slogforge test tool: generate, parse and
// send syslog messages from the command line, and run a throwaway debug
// receiver.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand returns the "slogforge" command with all subcommands
// wired in.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slogforge",
		Short: "Generate, parse and send RFC 3164/5424 syslog messages",
		Long:  "Test tool for the slogforge codec: build wire text from components, decode raw lines, fire messages at a collector, or listen for them.",
	}

	cmd.AddCommand(
		newGenerateCmd(),
		newParseCmd(),
		newSendCmd(),
		newListenCmd(),
	)

	return cmd
}
