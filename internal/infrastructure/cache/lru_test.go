package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/includs/internal/application/port"
	"github.com/bnema/includs/internal/domain/entity"
)

var _ port.Cache[string, *entity.SiteOverride] = (*LRU[string, *entity.SiteOverride])(nil)

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLRU[string, int](2)
	c.Set("https://a.test", 1)
	c.Set("https://b.test", 2)

	_, _ = c.Get("https://a.test")
	c.Set("https://c.test", 3)

	_, ok := c.Get("https://b.test")
	assert.False(t, ok)

	v, ok := c.Get("https://a.test")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 2, c.Len())
}

func TestLRU_UpdateAndRemove(t *testing.T) {
	c := NewLRU[string, int](0)
	c.Set("k", 1)
	c.Set("k", 2)

	v, _ := c.Get("k")
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, c.Len())

	c.Remove("k")
	c.Remove("missing")
	assert.Equal(t, 0, c.Len())
}

func TestLRU_StoresNilOverride(t *testing.T) {
	c := NewLRU[string, *entity.SiteOverride](4)
	c.Set("https://a.test", nil)

	v, ok := c.Get("https://a.test")
	assert.True(t, ok)
	assert.Nil(t, v)

	c.Purge()
	assert.Equal(t, 0, c.Len())
}

func TestLRU_ConcurrentAccess(t *testing.T) {
	c := NewLRU[string, int](16)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("k%d", (n+j)%32)
				c.Set(key, j)
				c.Get(key)
			}
		}(i)
	}
	wg.Wait()
	assert.LessOrEqual(t, c.Len(), 16)
}
