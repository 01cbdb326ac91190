package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// list: decrypt the vault and print its entries.
func listCmd() *cobra.Command {
	var show bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List vault entries",
		Args:  cobra.NoArgs,
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

			if vault.Len() == 0 {
				fmt.Println("Vault is empty.")
				return nil
			}
			for _, e := range vault.Entries {
				if show {
					fmt.Printf("%-24s %-24s %s\n", e.Service, e.Username, e.Password)
				} else {
					fmt.Printf("%-24s %s\n", e.Service, e.Username)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&show, "show", false, "print passwords in the clear")
	return cmd
}
