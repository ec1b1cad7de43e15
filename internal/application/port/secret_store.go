package port

import "errors"

// ErrSecretNotFound is returned by SecretStore.Get for unknown names.
var ErrSecretNotFound = errors.New("secret not found")

// SecretStore keeps API keys outside the plain-text stores.
type SecretStore interface {
	Get(name string) (string, error)
	Set(name, value string) error
	Delete(name string) error
}
