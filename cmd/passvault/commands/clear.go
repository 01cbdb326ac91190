package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// clear: drop every entry, keeping the vault file and its salt.
func clearCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all entries from the vault",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return fmt.Errorf("refusing to clear the vault without --force")
			}
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

			vault.Clear()
			if err := wire.Vault.Save(vault, pass); err != nil {
				return report(notify, err)
			}
			fmt.Println("Vault cleared.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "confirm clearing the vault")
	return cmd
}
