package prompts

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheInsertAndGet(t *testing.T) {
	c := NewCache()

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Insert("greeting_latest", "Hello")
	got, ok := c.Get("greeting_latest")
	assert.True(t, ok)
	assert.Equal(t, "Hello", got)
	assert.Equal(t, 1, c.Len())
}

func TestCacheClear(t *testing.T) {
	c := NewCache()
	c.Insert("a", "1")
	c.Insert("b", "2")
	assert.Equal(t, 2, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
	_, ok := c.Get("a")
	assert.False(t, ok)
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := NewCache()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Insert("shared", "value")
			c.Get("shared")
			c.Len()
		}()
	}
	wg.Wait()

	got, ok := c.Get("shared")
	assert.True(t, ok)
	assert.Equal(t, "value", got)
}
