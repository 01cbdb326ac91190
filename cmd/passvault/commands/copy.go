package commands

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

// copy <service>: put a stored password on the system clipboard.
func copyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy <service>",
		Short: "Copy a password to the clipboard",
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
			if err := clipboard.WriteAll(entry.Password); err != nil {
				return fmt.Errorf("clipboard: %w", err)
			}
			fmt.Printf("Password for %q copied to clipboard.\n", entry.Service)
			return nil
		},
	}
}
