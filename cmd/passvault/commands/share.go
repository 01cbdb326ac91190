package commands

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"
)

// share <service>: send one vault entry to a listening peer.
func shareCmd() *cobra.Command {
	var (
		peerHost string
		peerPort int
	)

	cmd := &cobra.Command{
		Use:   "share <service>",
		Short: "Send a vault entry to a peer over TLS",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			notify := newNotifier()

			pass, err := readPassphrase()
			if err != nil {
				return err
			}
			vault, err := wire.Vault.Load(pass)
			if err != nil {
				return report(notify, err)
			}
			notify.VaultLoaded(vault)

			entry, ok := vault.FindService(args[0])
			if !ok {
				return fmt.Errorf("no entry for service %q", args[0])
			}

			host := peerHost
			if host == "" {
				host = wire.Config.PeerHost
			}
			port := peerPort
			if port == 0 {
				port = wire.Config.PeerPort
			}
			addr := net.JoinHostPort(host, strconv.Itoa(port))

			session, err := wire.Session()
			if err != nil {
				return report(notify, err)
			}

			// Ctrl-C closes the socket, failing any blocked I/O.
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			if err := session.Send(ctx, addr, entry); err != nil {
				return report(notify, err)
			}
			fmt.Printf("Entry for %q shared with %s.\n", entry.Service, addr)
			return nil
		},
	}
	cmd.Flags().StringVar(&peerHost, "peer", "", "peer host (default from config)")
	cmd.Flags().IntVar(&peerPort, "peer-port", 0, "peer port (default from config)")
	return cmd
}
