package internal

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIconCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewIconCacheWithSize(2)
	a := image.NewRGBA(image.Rect(0, 0, 1, 1))
	b := image.NewRGBA(image.Rect(0, 0, 2, 2))
	d := image.NewRGBA(image.Rect(0, 0, 3, 3))

	c.Set("a", a)
	c.Set("b", b)
	assert.Same(t, a, c.Get("a")) // a is now most recent

	c.Set("d", d)
	assert.Nil(t, c.Get("b"))
	assert.Same(t, a, c.Get("a"))
	assert.Same(t, d, c.Get("d"))
	assert.Equal(t, 2, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Nil(t, c.Get("a"))
}
