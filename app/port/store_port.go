package port

//go:generate mockgen -source=store_port.go -destination=../mocks/mock_store_port.go -package=mocks

import (
	"context"
	"errors"

	"freshmart-client/app/domain"
)

// ErrKeyNotFound is returned by StateStore.Get for absent keys.
var ErrKeyNotFound = errors.New("state key not found")

// State keys. Each piece of persisted local state is independently durable
// and independently clearable.
const (
	StateKeyCredentials  = "credentials"
	StateKeyKioskSession = "kiosk_session"
	StateKeyKioskCart    = "kiosk_cart"
)

// StateStore is durable local key-value persistence that survives process
// restarts. Backed by a JSON file on desktop clients and by Redis on kiosk
// fleet terminals.
type StateStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// CredentialVault holds the in-memory credential pair and writes every
// change through to the state store. It is the single owner of credential
// writes; request code reads tokens only through it.
type CredentialVault interface {
	Hydrate(ctx context.Context) error
	Current() domain.Credentials
	Set(ctx context.Context, creds domain.Credentials) error
	Clear(ctx context.Context) error
}
