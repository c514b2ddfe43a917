package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Irina-Na/ai-stylist/internal/domain"
)

func TestMemoryCacheSetGet(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	if err := c.Set(ctx, "key", map[string]string{"hello": "world"}, time.Minute); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	value, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	decoded, ok := value.(map[string]interface{})
	if !ok {
		t.Fatalf("stored value has type %T, want JSON-decoded map", value)
	}
	if decoded["hello"] != "world" {
		t.Errorf("decoded value = %v", decoded)
	}
}

func TestMemoryCacheJSONRoundTrip(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	look := &domain.OutfitRequest{
		Sex:  "f",
		Full: domain.ItemList{{Category: "dress", Color: "blue"}},
	}
	if err := c.Set(ctx, "look", look, time.Minute); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	// A struct goes in, a plain decoded structure comes out.
	value, err := c.Get(ctx, "look")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if _, ok := value.(*domain.OutfitRequest); ok {
		t.Error("cache returned the original pointer instead of a round-tripped value")
	}
	if _, ok := value.(map[string]interface{}); !ok {
		t.Errorf("stored value has type %T, want map", value)
	}
}

func TestMemoryCacheMiss(t *testing.T) {
	c := NewMemoryCache()

	if _, err := c.Get(context.Background(), "absent"); !errors.Is(err, domain.ErrCacheMiss) {
		t.Errorf("err = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCacheExpiration(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	if err := c.Set(ctx, "ephemeral", "value", 10*time.Millisecond); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	time.Sleep(20 * time.Millisecond)

	if _, err := c.Get(ctx, "ephemeral"); !errors.Is(err, domain.ErrCacheMiss) {
		t.Errorf("err = %v, want ErrCacheMiss after TTL", err)
	}
	if exists, _ := c.Exists(ctx, "ephemeral"); exists {
		t.Error("Exists reported an expired key")
	}
}

func TestMemoryCacheDelete(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	if err := c.Set(ctx, "key", "value", time.Minute); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if exists, _ := c.Exists(ctx, "key"); exists {
		t.Error("key still exists after Delete")
	}
}

func TestMemoryCacheSizeAndClear(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	for _, key := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, key, key, time.Minute); err != nil {
			t.Fatalf("Set error: %v", err)
		}
	}
	if c.Size() != 3 {
		t.Errorf("Size = %d, want 3", c.Size())
	}

	c.Clear()
	if c.Size() != 0 {
		t.Errorf("Size after Clear = %d, want 0", c.Size())
	}
}
