// Package secrets stores API keys in the operating system keyring.
package secrets

import (
	"errors"
	"fmt"

	"github.com/bnema/includs/internal/application/port"
	"github.com/zalando/go-keyring"
)

// DefaultService is the keyring service name entries are filed under.
const DefaultService = "includs"

// KeyringStore is a port.SecretStore over the Secret Service, macOS
// Keychain or Windows Credential Manager.
type KeyringStore struct {
	service string
}

var _ port.SecretStore = (*KeyringStore)(nil)

func NewKeyringStore(service string) *KeyringStore {
	if service == "" {
		service = DefaultService
	}
	return &KeyringStore{service: service}
}

func (k *KeyringStore) Get(name string) (string, error) {
	v, err := keyring.Get(k.service, name)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", port.ErrSecretNotFound
	}
	if err != nil {
		return "", fmt.Errorf("keyring get %s: %w", name, err)
	}
	return v, nil
}

func (k *KeyringStore) Set(name, value string) error {
	if err := keyring.Set(k.service, name, value); err != nil {
		return fmt.Errorf("keyring set %s: %w", name, err)
	}
	return nil
}

func (k *KeyringStore) Delete(name string) error {
	err := keyring.Delete(k.service, name)
	if errors.Is(err, keyring.ErrNotFound) {
		return port.ErrSecretNotFound
	}
	if err != nil {
		return fmt.Errorf("keyring delete %s: %w", name, err)
	}
	return nil
}
