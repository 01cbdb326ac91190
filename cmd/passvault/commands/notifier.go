package commands

import (
	"errors"

	"github.com/sirupsen/logrus"

	"passvault/internal/domain"
)

// logNotifier adapts the domain callback surface onto logrus. It
// reports counts and service names only, never credential values.
type logNotifier struct {
	log logrus.FieldLogger
}

func newNotifier() logNotifier {
	return logNotifier{log: logrus.StandardLogger()}
}

func (n logNotifier) VaultLoaded(v domain.Vault) {
	n.log.WithField("entries", v.Len()).Debug("vault loaded")
}

func (n logNotifier) EntryReceived(e domain.Entry) {
	n.log.WithField("service", e.Service).Info("entry received")
}

func (n logNotifier) Error(kind, message string) {
	n.log.WithField("kind", kind).Error(message)
}

var _ domain.Notifier = logNotifier{}

// errorKind buckets an error into the taxonomy reported to the UI.
func errorKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrVaultCorrupt), errors.Is(err, domain.ErrAuthentication):
		return "vault"
	case errors.Is(err, domain.ErrTransferTimeout):
		return "timeout"
	case errors.Is(err, domain.ErrHandshakeFailed):
		return "handshake"
	case errors.Is(err, domain.ErrProtocolViolation):
		return "protocol"
	default:
		return "io"
	}
}

// report notifies the UI surface about err and passes it through.
func report(n domain.Notifier, err error) error {
	if err != nil {
		n.Error(errorKind(err), err.Error())
	}
	return err
}
