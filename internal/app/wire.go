package app

import (
	"passvault/internal/crypto"
	"passvault/internal/domain"
	"passvault/internal/identity"
	"passvault/internal/store"
	"passvault/internal/transfer"
)

// Wire bundles the stores and providers the CLI needs.
type Wire struct {
	Config   Config
	Vault    domain.VaultStore
	Identity *identity.Provisioner
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) *Wire {
	deriver := crypto.NewDeriver(cfg.Iterations)
	codec := crypto.NewCodec()

	return &Wire{
		Config:   cfg,
		Vault:    store.NewFileStore(cfg.VaultPath, deriver, codec),
		Identity: identity.New(cfg.IdentityDir),
	}
}

// Session provisions the local TLS identity (generating it on first
// use) and returns a transfer session bound to it.
func (w *Wire) Session() (*transfer.Session, error) {
	id, err := w.Identity.Ensure()
	if err != nil {
		return nil, err
	}
	return transfer.NewSession(id, w.Config.Timeout), nil
}
