package cli

import (
	"net"
	"time"

	"github.com/spf13/cobra"

	"slogforge/formats"
)

func newListenCmd() *cobra.Command {
	var (
		port  int
		count int
	)

	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Run a throwaway UDP debug receiver",
		Long:  "Bind a UDP socket and print incoming datagrams with a decoded summary. Stops after --count datagrams, or runs until interrupted with --count 0.",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := net.ListenUDP("udp", &net.UDPAddr{
				IP:   net.ParseIP("127.0.0.1"),
				Port: port,
			})
			if err != nil {
				return err
			}
			defer conn.Close()

			cmd.Printf("Listening on udp 127.0.0.1:%d\n", port)

			buffer := make([]byte, 64*1024)
			received := 0

			for count == 0 || received < count {
				n, addr, err := conn.ReadFromUDP(buffer)
				if err != nil {
					return err
				}
				received++

				line := string(buffer[:n])
				stamp := time.Now().Format("2006-01-02 15:04:05.000")
				cmd.Printf("[%s] UDP from %s:\n  -> %s\n", stamp, addr, line)

				if parsed, err := formats.Parse(formats.RFC3164, line); err == nil {
					cmd.Printf("  parsed: rfc3164 pri=%d host=%s\n", parsed.Priority, parsed.Hostname)
				} else if parsed, err := formats.Parse(formats.RFC5424, line); err == nil {
					cmd.Printf("  parsed: rfc5424 pri=%d host=%s\n", parsed.Priority, parsed.Hostname)
				}
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&port, "port", 5140, "port to bind")
	cmd.Flags().IntVar(&count, "count", 1, "datagrams to receive before exiting (0 = forever)")

	return cmd
}
