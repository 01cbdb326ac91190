package commands

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

// receive: wait for one entry from a peer, optionally saving it.
func receiveCmd() *cobra.Command {
	var (
		port int
		save bool
	)

	cmd := &cobra.Command{
		Use:   "receive",
		Short: "Wait for a vault entry from a peer over TLS",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			notify := newNotifier()

			if port == 0 {
				port = wire.Config.ListenPort
			}

			session, err := wire.Session()
			if err != nil {
				return report(notify, err)
			}

			// Ctrl-C closes the listener, failing a blocked accept.
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			fmt.Printf("Waiting for an entry on port %d...\n", port)
			entry, err := session.Receive(ctx, port)
			if err != nil {
				return report(notify, err)
			}
			notify.EntryReceived(entry)
			fmt.Printf("Received entry for %q (user %q).\n", entry.Service, entry.Username)

			if !save {
				return nil
			}
			pass, err := readPassphrase()
			if err != nil {
				return err
			}
			vault, err := wire.Vault.Load(pass)
			if err != nil {
				return report(notify, err)
			}
			vault.Add(entry)
			if err := wire.Vault.Save(vault, pass); err != nil {
				return report(notify, err)
			}
			fmt.Println("Entry saved to vault.")
			return nil
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "listen port (default from config)")
	cmd.Flags().BoolVar(&save, "save", false, "append the received entry to the vault")
	return cmd
}
