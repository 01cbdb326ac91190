package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"passvault/internal/domain"
)

// add <service> <username> [password]: append an entry to the vault.
func addCmd() *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "add <service> <username> [password]",
		Short: "Add an entry to the vault",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			notify := newNotifier()

			pass, err := readPassphrase()
			if err != nil {
				return err
			}

			entry := domain.Entry{Service: args[0], Username: args[1]}
			if len(args) == 3 {
				entry.Password = args[2]
			} else {
				entry.Password, err = readSecret(fmt.Sprintf("Password for %q", entry.Service))
				if err != nil {
					return err
				}
			}

			vault, err := wire.Vault.Load(pass)
			if err != nil {
				return report(notify, err)
			}
			notify.VaultLoaded(vault)

			if _, exists := vault.FindService(entry.Service); exists {
				if !replace {
					return fmt.Errorf("service %q already exists (use --replace to overwrite)", entry.Service)
				}
				vault.RemoveService(entry.Service)
			}
			vault.Add(entry)

			if err := wire.Vault.Save(vault, pass); err != nil {
				return report(notify, err)
			}
			fmt.Printf("Saved entry for %q (%d entries).\n", entry.Service, vault.Len())
			return nil
		},
	}
	cmd.Flags().BoolVar(&replace, "replace", false, "overwrite existing entries for the service")
	return cmd
}
