package cli

import (
	"github.com/spf13/cobra"

	"slogforge/formats"
	"slogforge/models"
	"slogforge/sender"
)

func newGenerateCmd() *cobra.Command {
	var (
		rfc      string
		priority int
		facility int
		severity int
		pid      int

		c models.MessageComponents

		host     string
		port     int
		protocol string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build a syslog wire line from components",
		Long:  "Build an RFC 3164 or 5424 wire line from message components, print it, and optionally send it to a collector with --host.",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Numeric flags only count when given: zero is a valid
			// priority/facility/severity.
			if cmd.Flags().Changed("priority") {
				c.Priority = &priority
			}
			if cmd.Flags().Changed("facility") {
				c.Facility = &facility
			}
			if cmd.Flags().Changed("severity") {
				c.Severity = &severity
			}
			if cmd.Flags().Changed("pid") {
				c.PID = &pid
			}
			c.RFCVersion = rfc

			message := formats.Generate(rfc, c)
			cmd.Println(message)

			if host == "" {
				return nil
			}

			return sender.Send(protocol, message, host, port)
		},
	}

	cmd.Flags().StringVar(&rfc, "rfc", "3164", "RFC version: 3164 or 5424")
	cmd.Flags().IntVar(&priority, "priority", 0, "priority (overrides facility/severity)")
	cmd.Flags().IntVar(&facility, "facility", 0, "facility 0-23")
	cmd.Flags().IntVar(&severity, "severity", 0, "severity 0-7")
	cmd.Flags().StringVar(&c.Timestamp, "timestamp", "", "pre-formatted timestamp (default: now)")
	cmd.Flags().StringVar(&c.Hostname, "hostname", "", "hostname (default: localhost)")
	cmd.Flags().StringVar(&c.Tag, "tag", "", "RFC 3164 tag (default: app)")
	cmd.Flags().IntVar(&pid, "pid", 0, "RFC 3164 pid")
	cmd.Flags().StringVar(&c.AppName, "app-name", "", "RFC 5424 app name")
	cmd.Flags().StringVar(&c.ProcID, "proc-id", "", "RFC 5424 proc id")
	cmd.Flags().StringVar(&c.MsgID, "msg-id", "", "RFC 5424 msg id")
	cmd.Flags().StringVar(&c.StructuredData, "structured-data", "", "RFC 5424 structured data")
	cmd.Flags().StringVar(&c.Message, "message", "", "message text")

	cmd.Flags().StringVar(&host, "host", "", "collector host; when set, the message is sent")
	cmd.Flags().IntVar(&port, "port", 514, "collector port")
	cmd.Flags().StringVar(&protocol, "protocol", "udp", "udp or tcp")

	return cmd
}
