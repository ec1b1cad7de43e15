package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/bnema/includs/internal/application/port"
	"github.com/bnema/includs/internal/logging"
)

// SecretOverlay diverts a fixed set of local keys to a SecretStore. Every
// other key and scope passes through to the wrapped store.
type SecretOverlay struct {
	next    port.ConfigStore
	secrets port.SecretStore
	keys    map[string]struct{}
}

var _ port.ConfigStore = (*SecretOverlay)(nil)

// NewSecretOverlay returns next with keys stored in secrets.
func NewSecretOverlay(next port.ConfigStore, secrets port.SecretStore, keys ...string) *SecretOverlay {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return &SecretOverlay{next: next, secrets: secrets, keys: set}
}

func (o *SecretOverlay) isSecret(scope port.Scope, key string) bool {
	if scope != port.ScopeLocal {
		return false
	}
	_, ok := o.keys[key]
	return ok
}

// split separates secret keys from the rest.
func (o *SecretOverlay) split(scope port.Scope, keys []string) (secret, plain []string) {
	for _, k := range keys {
		if o.isSecret(scope, k) {
			secret = append(secret, k)
		} else {
			plain = append(plain, k)
		}
	}
	return secret, plain
}

func (o *SecretOverlay) Get(ctx context.Context, scope port.Scope, keys ...string) (map[string]json.RawMessage, error) {
	if scope != port.ScopeLocal {
		return o.next.Get(ctx, scope, keys...)
	}

	var secret, plain []string
	if len(keys) == 0 {
		secret = slices.Sorted(maps.Keys(o.keys))
	} else {
		secret, plain = o.split(scope, keys)
	}

	out := make(map[string]json.RawMessage)
	if len(keys) == 0 || len(plain) > 0 {
		entries, err := o.next.Get(ctx, scope, plain...)
		if err != nil {
			return nil, err
		}
		maps.Copy(out, entries)
	}

	if err := o.readSecrets(ctx, secret, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (o *SecretOverlay) readSecrets(ctx context.Context, names []string, out map[string]json.RawMessage) error {
	for _, name := range names {
		value, err := o.secrets.Get(name)
		if errors.Is(err, port.ErrSecretNotFound) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read secret %q: %w", name, err)
		}
		raw, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to encode secret %q: %w", name, err)
		}
		out[name] = raw
	}
	logging.FromContext(ctx).Trace().Int("secrets", len(names)).Msg("secrets read")
	return nil
}

func (o *SecretOverlay) Set(ctx context.Context, scope port.Scope, values map[string]any) error {
	plain := make(map[string]any, len(values))
	for k, v := range values {
		if !o.isSecret(scope, k) {
			plain[k] = v
			continue
		}
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("secret %q must be a string, got %T", k, v)
		}
		if err := o.secrets.Set(k, s); err != nil {
			return fmt.Errorf("failed to store secret %q: %w", k, err)
		}
		logging.FromContext(ctx).Debug().Str("key", k).Msg("secret stored")
	}

	if len(plain) == 0 {
		return nil
	}
	return o.next.Set(ctx, scope, plain)
}

func (o *SecretOverlay) Remove(ctx context.Context, scope port.Scope, keys ...string) error {
	secret, plain := o.split(scope, keys)
	for _, k := range secret {
		if err := o.secrets.Delete(k); err != nil && !errors.Is(err, port.ErrSecretNotFound) {
			return fmt.Errorf("failed to delete secret %q: %w", k, err)
		}
	}
	if len(plain) == 0 {
		return nil
	}
	return o.next.Remove(ctx, scope, plain...)
}

func (o *SecretOverlay) List(ctx context.Context, scope port.Scope, prefix string) (map[string]json.RawMessage, error) {
	out, err := o.next.List(ctx, scope, prefix)
	if err != nil {
		return nil, err
	}
	if scope != port.ScopeLocal {
		return out, nil
	}

	var names []string
	for k := range o.keys {
		if strings.HasPrefix(k, prefix) {
			names = append(names, k)
		}
	}
	if err := o.readSecrets(ctx, names, out); err != nil {
		return nil, err
	}
	return out, nil
}
