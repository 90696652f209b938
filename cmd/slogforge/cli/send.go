package cli

import (
	"github.com/spf13/cobra"

	"slogforge/sender"
)

func newSendCmd() *cobra.Command {
	var (
		host     string
		port     int
		protocol string
	)

	cmd := &cobra.Command{
		Use:   "send <raw message>",
		Short: "Send raw wire text to a collector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return sender.Send(protocol, args[0], host, port)
		},
	}

	cmd.Flags().StringVar(&host, "host", "127.0.0.1", "collector host")
	cmd.Flags().IntVar(&port, "port", 514, "collector port")
	cmd.Flags().StringVar(&protocol, "protocol", "udp", "udp or tcp")

	return cmd
}
