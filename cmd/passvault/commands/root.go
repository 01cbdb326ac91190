package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"passvault/internal/app"
	"passvault/internal/util/memzero"
)

// minPassphraseLength mirrors the minimum the vault has always
// enforced at its UI boundary.
const minPassphraseLength = 8

var (
	home       string
	passphrase string
	verbose    bool

	wire *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:          "passvault",
		Short:        "Local encrypted password vault with peer-to-peer sharing",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".passvault")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			cfg, err := app.LoadConfig(cmd, home)
			if err != nil {
				return err
			}
			wire = app.NewWire(cfg)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.passvault)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "master passphrase (prompted if omitted)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		addCmd(),
		listCmd(),
		removeCmd(),
		clearCmd(),
		copyCmd(),
		shareCmd(),
		receiveCmd(),
	)
	return root.Execute()
}

// readPassphrase returns the master passphrase, prompting without
// echo when the flag is unset.
func readPassphrase() (string, error) {
	if passphrase != "" {
		return checkPassphrase(passphrase)
	}
	fmt.Fprint(os.Stderr, "Master passphrase: ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	pass := string(raw)
	memzero.Zero(raw)
	return checkPassphrase(pass)
}

func checkPassphrase(pass string) (string, error) {
	if utf8.RuneCountInString(pass) < minPassphraseLength {
		return "", fmt.Errorf("master passphrase must be at least %d characters", minPassphraseLength)
	}
	return pass, nil
}

// readSecret prompts for an arbitrary secret value without echo.
func readSecret(prompt string) (string, error) {
	fmt.Fprintf(os.Stderr, "%s: ", prompt)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	s := string(raw)
	memzero.Zero(raw)
	return s, nil
}
