package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"freshmart-client/app/domain"
	"freshmart-client/app/port"
)

// Vault is the single owner of credential state. The session use case writes
// it through login/logout; the authorized transport writes it through the
// refresh procedure. Every change is persisted to the state store so a
// restart can rehydrate the session.
type Vault struct {
	mu     sync.RWMutex
	creds  domain.Credentials
	store  port.StateStore
	logger *slog.Logger
}

// NewVault creates a vault backed by the given state store.
func NewVault(store port.StateStore, logger *slog.Logger) *Vault {
	return &Vault{
		store:  store,
		logger: logger,
	}
}

// Hydrate loads persisted credentials into memory. A missing key is not an
// error; the vault just stays empty.
func (v *Vault) Hydrate(ctx context.Context) error {
	data, err := v.store.Get(ctx, port.StateKeyCredentials)
	if errors.Is(err, port.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load credentials: %w", err)
	}

	var creds domain.Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		// Unreadable state is dropped rather than surfaced; the user just
		// logs in again.
		v.logger.Warn("discarding unreadable credential state", "error", err)
		_ = v.store.Delete(ctx, port.StateKeyCredentials)
		return nil
	}

	v.mu.Lock()
	v.creds = creds
	v.mu.Unlock()
	return nil
}

// Current returns the credentials held in memory.
func (v *Vault) Current() domain.Credentials {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.creds
}

// Set persists the credentials and replaces the in-memory pair.
func (v *Vault) Set(ctx context.Context, creds domain.Credentials) error {
	data, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("marshal credentials: %w", err)
	}
	if err := v.store.Set(ctx, port.StateKeyCredentials, data); err != nil {
		return fmt.Errorf("persist credentials: %w", err)
	}

	v.mu.Lock()
	v.creds = creds
	v.mu.Unlock()
	return nil
}

// Clear wipes the in-memory pair and deletes the persisted state. The
// in-memory state is cleared even if the store delete fails.
func (v *Vault) Clear(ctx context.Context) error {
	v.mu.Lock()
	v.creds = domain.Credentials{}
	v.mu.Unlock()

	if err := v.store.Delete(ctx, port.StateKeyCredentials); err != nil && !errors.Is(err, port.ErrKeyNotFound) {
		return fmt.Errorf("clear persisted credentials: %w", err)
	}
	return nil
}
