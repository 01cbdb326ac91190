package app

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"passvault/internal/crypto"
	"passvault/internal/transfer"
)

// Config holds runtime options for building the app. The master
// passphrase is deliberately absent: it is provided per unlock and
// never persisted.
type Config struct {
	Home        string        `mapstructure:"home"`
	VaultPath   string        `mapstructure:"vault_path"`
	IdentityDir string        `mapstructure:"identity_dir"`
	ListenPort  int           `mapstructure:"listen_port"`
	PeerHost    string        `mapstructure:"peer_host"`
	PeerPort    int           `mapstructure:"peer_port"`
	Iterations  int           `mapstructure:"pbkdf2_iterations"`
	Timeout     time.Duration `mapstructure:"transfer_timeout"`
}

// LoadConfig resolves the configuration for home, merging in order:
// defaults, passvault.yaml (home dir, then cwd), environment
// variables prefixed PASSVAULT_, and the command's flags.
func LoadConfig(cmd *cobra.Command, home string) (Config, error) {
	v := viper.New()

	v.SetDefault("home", home)
	v.SetDefault("vault_path", filepath.Join(home, "vault.json"))
	v.SetDefault("identity_dir", filepath.Join(home, "identity"))
	v.SetDefault("listen_port", transfer.DefaultPort)
	v.SetDefault("peer_host", "127.0.0.1")
	v.SetDefault("peer_port", transfer.DefaultPort)
	v.SetDefault("pbkdf2_iterations", crypto.DefaultIterations)
	v.SetDefault("transfer_timeout", transfer.DefaultTimeout)

	v.SetConfigName("passvault")
	v.SetConfigType("yaml")
	v.AddConfigPath(home)
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; anything else is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	v.AutomaticEnv()
	v.SetEnvPrefix("passvault")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return Config{}, err
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}
