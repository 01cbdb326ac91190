package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// remove <service>: drop all entries for a service.
func removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <service>",
		Short: "Remove all entries for a service",
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

			removed := vault.RemoveService(args[0])
			if removed == 0 {
				return fmt.Errorf("no entries for service %q", args[0])
			}
			if err := wire.Vault.Save(vault, pass); err != nil {
				return report(notify, err)
			}
			fmt.Printf("Removed %d entr%s for %q.\n", removed, plural(removed), args[0])
			return nil
		},
	}
}

func plural(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
