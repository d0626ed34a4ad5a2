package repository

import (
	"context"
	"testing"
	"time"

	addrdomain "station_lookup_backend/internal/addresses/domain"
	"station_lookup_backend/internal/selection/domain"
	"station_lookup_backend/platform/apperr"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func sampleState() *domain.State {
	return &domain.State{
		Cities: []string{"Ventura"},
		City:   "Ventura",
		Street: "MAIN",
		StreetAddresses: []addrdomain.Address{
			{Station: "05", StreetKey: "MAIN", FullAddress: "100 Main St 93001 (Station 05)"},
		},
	}
}

// exerciseStore runs the behaviour shared by every Store implementation.
func exerciseStore(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	if _, err := store.Get(ctx, "missing"); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	st := sampleState()
	if err := store.Save(ctx, "abc", st); err != nil {
		t.Fatalf("save: %v", err)
	}
	st.City = "mutated"

	got, err := store.Get(ctx, "abc")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.City != "Ventura" || len(got.StreetAddresses) != 1 || got.StreetAddresses[0].Station != "05" {
		t.Fatalf("unexpected state %+v", got)
	}

	if err := store.Delete(ctx, "abc"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.Delete(ctx, "abc"); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore(time.Minute))
}

func TestMemoryStoreExpires(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore(time.Minute)
	store.now = func() time.Time { return now }

	ctx := context.Background()
	if err := store.Save(ctx, "abc", sampleState()); err != nil {
		t.Fatalf("save: %v", err)
	}

	now = now.Add(59 * time.Second)
	if _, err := store.Get(ctx, "abc"); err != nil {
		t.Fatalf("expected session alive, got %v", err)
	}

	now = now.Add(time.Second)
	if _, err := store.Get(ctx, "abc"); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected expired session, got %v", err)
	}
}

func newRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, ttl), mr
}

func TestRedisStore(t *testing.T) {
	store, _ := newRedisStore(t, time.Minute)
	exerciseStore(t, store)
}

func TestRedisStoreUsesTTLAndPrefix(t *testing.T) {
	store, mr := newRedisStore(t, 30*time.Minute)
	if err := store.Save(context.Background(), "abc", sampleState()); err != nil {
		t.Fatalf("save: %v", err)
	}

	if !mr.Exists("selection:abc") {
		t.Fatal("expected key selection:abc")
	}
	if ttl := mr.TTL("selection:abc"); ttl != 30*time.Minute {
		t.Fatalf("expected 30m ttl, got %s", ttl)
	}

	mr.FastForward(31 * time.Minute)
	if _, err := store.Get(context.Background(), "abc"); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected expired session, got %v", err)
	}
}

func TestRedisStoreUnavailable(t *testing.T) {
	store, mr := newRedisStore(t, time.Minute)
	mr.Close()

	err := store.Save(context.Background(), "abc", sampleState())
	if !apperr.Is(err, apperr.KindUnavailable) {
		t.Fatalf("expected unavailable error, got %v", err)
	}
}

type fakeSessionConfig struct{ url string }

func (c fakeSessionConfig) GetRedisURL() string          { return c.url }
func (c fakeSessionConfig) GetRedisTLSInsecure() bool    { return false }
func (c fakeSessionConfig) GetSessionTTL() time.Duration { return time.Minute }

func TestNewRedisClient(t *testing.T) {
	if _, err := NewRedisClient(fakeSessionConfig{}); err == nil {
		t.Fatal("expected error without url")
	}
	if _, err := NewRedisClient(fakeSessionConfig{url: "not a url"}); err == nil {
		t.Fatal("expected error for invalid url")
	}
	client, err := NewRedisClient(fakeSessionConfig{url: "redis://localhost:6379/2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer client.Close()
	if client.Options().DB != 2 {
		t.Fatalf("expected db 2, got %d", client.Options().DB)
	}
}
