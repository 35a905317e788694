package redisstore_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freshmart-client/app/driver/redisstore"
	"freshmart-client/app/port"
)

// These tests need a running Redis; set TEST_REDIS_URL to enable them.
func testClient(t *testing.T) *redisstore.Store {
	t.Helper()

	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set; skipping redis store tests")
	}

	client, err := redisstore.NewRedis(url)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return redisstore.New(client, "freshmart-test:"+t.Name())
}

func TestStore_SetGetDelete(t *testing.T) {
	store := testClient(t)
	ctx := context.Background()

	_, err := store.Get(ctx, "credentials")
	assert.ErrorIs(t, err, port.ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, "credentials", []byte(`{"access_token":"a"}`)))

	got, err := store.Get(ctx, "credentials")
	require.NoError(t, err)
	assert.JSONEq(t, `{"access_token":"a"}`, string(got))

	require.NoError(t, store.Delete(ctx, "credentials"))
	_, err = store.Get(ctx, "credentials")
	assert.ErrorIs(t, err, port.ErrKeyNotFound)

	// Deleting an absent key is a no-op
	require.NoError(t, store.Delete(ctx, "credentials"))
}

func TestStore_PrefixIsolation(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set; skipping redis store tests")
	}

	client, err := redisstore.NewRedis(url)
	require.NoError(t, err)
	defer client.Close()

	ctx := context.Background()
	terminalA := redisstore.New(client, "terminal-a")
	terminalB := redisstore.New(client, "terminal-b")

	require.NoError(t, terminalA.Set(ctx, "kiosk_cart", []byte(`{"items":[]}`)))
	defer terminalA.Delete(ctx, "kiosk_cart")

	_, err = terminalB.Get(ctx, "kiosk_cart")
	assert.ErrorIs(t, err, port.ErrKeyNotFound, "terminals must not see each other's state")
}

func TestNewRedis_InvalidURL(t *testing.T) {
	_, err := redisstore.NewRedis("not-a-redis-url")
	assert.Error(t, err)
}
