package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"slogforge/formats"
)

func newParseCmd() *cobra.Command {
	var rfc string

	cmd := &cobra.Command{
		Use:   "parse <raw message>",
		Short: "Decode a raw syslog line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := formats.Parse(rfc, args[0])
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(parsed, "", "  ")
			if err != nil {
				return err
			}

			cmd.Println(string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&rfc, "rfc", "3164", "RFC version: 3164 or 5424")

	return cmd
}
