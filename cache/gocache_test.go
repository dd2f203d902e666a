package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGoCache_Basic(t *testing.T) {
	cache := NewGoCache(5*time.Minute, 10*time.Minute, 0)

	cache.Set("key1", []byte("value1"), 0)
	cache.Set("key2", []byte("value2"), 0)

	value, found := cache.Get("key1")
	assert.True(t, found)
	assert.Equal(t, []byte("value1"), value)

	value, found = cache.Get("key2")
	assert.True(t, found)
	assert.Equal(t, []byte("value2"), value)

	_, found = cache.Get("missing")
	assert.False(t, found)

	assert.Equal(t, 2, cache.ItemCount())
}

func TestGoCache_Overwrite(t *testing.T) {
	cache := NewGoCache(5*time.Minute, 10*time.Minute, 0)

	cache.Set("key1", []byte("old"), 0)
	cache.Set("key1", []byte("new"), 0)

	value, found := cache.Get("key1")
	assert.True(t, found)
	assert.Equal(t, []byte("new"), value)
	assert.Equal(t, 1, cache.ItemCount())
}

func TestGoCache_Expiration(t *testing.T) {
	cache := NewGoCache(5*time.Minute, 10*time.Minute, 0)

	cache.Set("short", []byte("value"), 30*time.Millisecond)
	cache.Set("long", []byte("value"), 5*time.Minute)

	_, found := cache.Get("short")
	assert.True(t, found)

	time.Sleep(60 * time.Millisecond)

	_, found = cache.Get("short")
	assert.False(t, found, "entry should expire after its TTL")

	_, found = cache.Get("long")
	assert.True(t, found, "unrelated entry must not be affected")
}

func TestGoCache_SetResetsExpiry(t *testing.T) {
	cache := NewGoCache(5*time.Minute, 10*time.Minute, 0)

	cache.Set("key", []byte("v1"), 40*time.Millisecond)
	time.Sleep(25 * time.Millisecond)

	// Overwrite resets the expiry clock
	cache.Set("key", []byte("v2"), 40*time.Millisecond)
	time.Sleep(25 * time.Millisecond)

	value, found := cache.Get("key")
	assert.True(t, found)
	assert.Equal(t, []byte("v2"), value)
}

func TestGoCache_Delete(t *testing.T) {
	cache := NewGoCache(5*time.Minute, 10*time.Minute, 0)

	cache.Set("key1", []byte("value1"), 0)
	cache.Set("key2", []byte("value2"), 0)

	cache.Delete("key1")

	_, found := cache.Get("key1")
	assert.False(t, found)
	_, found = cache.Get("key2")
	assert.True(t, found)
	assert.Equal(t, 1, cache.ItemCount())
}

func TestGoCache_Clear(t *testing.T) {
	cache := NewGoCache(5*time.Minute, 10*time.Minute, 0)

	cache.Set("key1", []byte("value1"), 0)
	cache.Set("key2", []byte("value2"), 0)
	assert.Equal(t, 2, cache.ItemCount())

	cache.Clear()

	_, found := cache.Get("key1")
	assert.False(t, found)
	assert.Equal(t, 0, cache.ItemCount())
}

func TestGoCache_CapacityBound(t *testing.T) {
	cache := NewGoCache(5*time.Minute, 10*time.Minute, 3)

	for i := 0; i < 3; i++ {
		cache.Set(fmt.Sprintf("key%d", i), []byte("value"), 0)
	}
	assert.Equal(t, 3, cache.ItemCount())

	// Writing a fourth entry evicts one to stay within the bound
	cache.Set("key3", []byte("value"), 0)
	assert.LessOrEqual(t, cache.ItemCount(), 3)

	value, found := cache.Get("key3")
	assert.True(t, found, "the newly written entry must survive eviction")
	assert.Equal(t, []byte("value"), value)
}

func TestGoCache_CapacityOverwriteDoesNotEvict(t *testing.T) {
	cache := NewGoCache(5*time.Minute, 10*time.Minute, 2)

	cache.Set("key1", []byte("value1"), 0)
	cache.Set("key2", []byte("value2"), 0)

	// Overwriting an existing key at capacity must not evict the other
	cache.Set("key1", []byte("updated"), 0)

	_, found := cache.Get("key2")
	assert.True(t, found)
	value, _ := cache.Get("key1")
	assert.Equal(t, []byte("updated"), value)
	assert.Equal(t, 2, cache.ItemCount())
}

func TestGoCache_CapacityPrefersExpired(t *testing.T) {
	cache := NewGoCache(5*time.Minute, 10*time.Minute, 2)

	cache.Set("stale", []byte("value"), 20*time.Millisecond)
	cache.Set("fresh", []byte("value"), 5*time.Minute)
	time.Sleep(40 * time.Millisecond)

	cache.Set("new", []byte("value"), 0)

	// The expired entry is purged; the fresh one must not be corrupted
	value, found := cache.Get("fresh")
	assert.True(t, found)
	assert.Equal(t, []byte("value"), value)
	_, found = cache.Get("new")
	assert.True(t, found)
}
