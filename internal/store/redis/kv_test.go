package redis

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/linkhub/internal/store"
)

func setupTestStore(t *testing.T, namespace string) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewStore(client, namespace), mr
}

func TestStoreGetMissing(t *testing.T) {
	s, _ := setupTestStore(t, "")

	_, err := s.Get(context.Background(), "nope")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("Get() error = %v, want store.ErrNotFound", err)
	}
}

func TestStorePutGet(t *testing.T) {
	s, mr := setupTestStore(t, "")
	ctx := context.Background()

	if err := s.Put(ctx, store.KeyDocument, `{"categories":[]}`, store.NoExpiry); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, err := s.Get(ctx, store.KeyDocument)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != `{"categories":[]}` {
		t.Errorf("Get() = %q", got)
	}
	if ttl := mr.TTL(store.KeyDocument); ttl != 0 {
		t.Errorf("document TTL = %v, want none", ttl)
	}
}

func TestStorePutExpires(t *testing.T) {
	s, mr := setupTestStore(t, "")
	ctx := context.Background()

	if err := s.Put(ctx, store.SessionKey("tok"), "{}", time.Hour); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if ttl := mr.TTL(store.SessionKey("tok")); ttl != time.Hour {
		t.Errorf("TTL = %v, want 1h", ttl)
	}

	mr.FastForward(time.Hour + time.Second)

	if _, err := s.Get(ctx, store.SessionKey("tok")); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("Get() after expiry error = %v, want store.ErrNotFound", err)
	}
}

func TestStoreListPrefix(t *testing.T) {
	s, _ := setupTestStore(t, "nav:")
	ctx := context.Background()

	for _, k := range []string{
		store.ApplicationKey("a"),
		store.ApplicationKey("b"),
		store.SessionKey("x"),
		store.KeyDocument,
	} {
		if err := s.Put(ctx, k, "v", store.NoExpiry); err != nil {
			t.Fatalf("Put(%s) error = %v", k, err)
		}
	}

	keys, err := s.List(ctx, store.KeyPrefixApplication)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	sort.Strings(keys)

	want := []string{"link_apply:a", "link_apply:b"}
	if len(keys) != len(want) {
		t.Fatalf("List() = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("List()[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestStoreNamespaceIsolation(t *testing.T) {
	s, mr := setupTestStore(t, "nav:")
	ctx := context.Background()

	if err := s.Put(ctx, "data", "doc", store.NoExpiry); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if !mr.Exists("nav:data") {
		t.Error("expected namespaced key nav:data in redis")
	}
	if mr.Exists("data") {
		t.Error("unexpected bare key data in redis")
	}
}

func TestEscapeGlob(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{in: "link_apply:", want: "link_apply:"},
		{in: "a*b", want: `a\*b`},
		{in: "[x]?", want: `\[x\]\?`},
	}
	for _, tt := range tests {
		if got := escapeGlob(tt.in); got != tt.want {
			t.Errorf("escapeGlob(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStorePingDown(t *testing.T) {
	s, mr := setupTestStore(t, "")
	mr.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.Ping(ctx); err == nil {
		t.Error("Ping() against a stopped server should fail")
	}
}
