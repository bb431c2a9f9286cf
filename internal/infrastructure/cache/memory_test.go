package cache

import (
	"context"
	"testing"
	"time"

	"github.com/veridoc/backend/internal/domain"
)

func TestMemoryCache_SetAndGet(t *testing.T) {
	cache := NewMemoryCache(time.Minute, time.Minute)
	ctx := context.Background()

	t.Run("stores and retrieves extracted text", func(t *testing.T) {
		err := cache.Set(ctx, "sha256:abc", "asha rao roll r1123", time.Minute)
		if err != nil {
			t.Fatalf("Set() error = %v", err)
		}

		got, err := cache.Get(ctx, "sha256:abc")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got != "asha rao roll r1123" {
			t.Errorf("Get() = %q, want %q", got, "asha rao roll r1123")
		}
	})

	t.Run("stores empty text as a valid entry", func(t *testing.T) {
		err := cache.Set(ctx, "sha256:empty", "", time.Minute)
		if err != nil {
			t.Fatalf("Set() error = %v", err)
		}

		got, err := cache.Get(ctx, "sha256:empty")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got != "" {
			t.Errorf("Get() = %q, want empty", got)
		}
	})

	t.Run("expires entries after their TTL", func(t *testing.T) {
		err := cache.Set(ctx, "sha256:short", "expires-soon", time.Millisecond)
		if err != nil {
			t.Fatalf("Set() error = %v", err)
		}

		time.Sleep(10 * time.Millisecond)

		_, err = cache.Get(ctx, "sha256:short")
		if err != domain.ErrCacheMiss {
			t.Errorf("Get() after expiration error = %v, want %v", err, domain.ErrCacheMiss)
		}
	})
}

func TestMemoryCache_Get_CacheMiss(t *testing.T) {
	cache := NewMemoryCache(time.Minute, time.Minute)
	ctx := context.Background()

	_, err := cache.Get(ctx, "non-existent-key")
	if err != domain.ErrCacheMiss {
		t.Errorf("Get() error = %v, want %v", err, domain.ErrCacheMiss)
	}
}

func TestMemoryCache_Delete(t *testing.T) {
	cache := NewMemoryCache(time.Minute, time.Minute)
	ctx := context.Background()

	key := "delete-test"
	err := cache.Set(ctx, key, "value", time.Minute)
	if err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if err := cache.Delete(ctx, key); err != nil {
		t.Errorf("Delete() error = %v", err)
	}

	if _, err := cache.Get(ctx, key); err != domain.ErrCacheMiss {
		t.Errorf("Get() after delete error = %v, want %v", err, domain.ErrCacheMiss)
	}
}

func TestMemoryCache_SizeAndClear(t *testing.T) {
	cache := NewMemoryCache(time.Minute, time.Minute)
	ctx := context.Background()

	for _, key := range []string{"a", "b", "c"} {
		if err := cache.Set(ctx, key, "text", time.Minute); err != nil {
			t.Fatalf("Set(%q) error = %v", key, err)
		}
	}

	if got := cache.Size(); got != 3 {
		t.Errorf("Size() = %d, want 3", got)
	}

	cache.Clear()
	if got := cache.Size(); got != 0 {
		t.Errorf("Size() after Clear = %d, want 0", got)
	}
}
