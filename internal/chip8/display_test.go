package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestFrameBufferFlip(t *testing.T) {
	var f frameBuffer

	assert.False(t, f.pixel(9, 1))
	assert.False(t, f.flip(9, 1)) // turning on is no collision
	assert.True(t, f.pixel(9, 1))
	assert.True(t, f.flip(9, 1)) // turning off is
	assert.False(t, f.pixel(9, 1))
}

func TestDrawSpriteSetsPixels(t *testing.T) {
	c := testMachine(t)

	c.drawSprite(8, 4, []byte{0b10100000})

	assert.True(t, c.Pixel(8, 4))
	assert.False(t, c.Pixel(9, 4))
	assert.True(t, c.Pixel(10, 4))
	assert.Equal(t, uint8(0), c.v[0xF])
	assert.True(t, c.draw)
}

func TestDrawSpriteXORSelfInverse(t *testing.T) {
	c := testMachine(t)
	sprite := fontset[:5] // the "0" glyph

	c.drawSprite(10, 5, sprite)
	assert.Equal(t, uint8(0), c.v[0xF])

	// drawing the same sprite again clears every pixel and collides
	c.drawSprite(10, 5, sprite)
	assert.Equal(t, uint8(1), c.v[0xF])

	for y := 0; y < DisplayHeight; y++ {
		for x := 0; x < DisplayWidth; x++ {
			assert.False(t, c.Pixel(x, y))
		}
	}
}

func TestDrawSpriteWrapsHorizontally(t *testing.T) {
	c := testMachine(t)

	c.drawSprite(60, 0, []byte{0xFF})

	for _, x := range []int{60, 61, 62, 63, 0, 1, 2, 3} {
		assert.True(t, c.Pixel(x, 0))
	}
	assert.False(t, c.Pixel(4, 0))
	assert.False(t, c.Pixel(59, 0))
}

func TestDrawSpriteWrapsVertically(t *testing.T) {
	c := testMachine(t)

	c.drawSprite(0, 31, []byte{0x80, 0x80})

	assert.True(t, c.Pixel(0, 31))
	assert.True(t, c.Pixel(0, 0))
	assert.False(t, c.Pixel(0, 1))
}

func TestDrawSpriteCollisionAccumulates(t *testing.T) {
	c := testMachine(t)

	c.drawSprite(0, 0, []byte{0x80})

	// second sprite collides in its first row, the second row must not
	// reset the flag
	c.drawSprite(0, 0, []byte{0x80, 0x80})
	assert.Equal(t, uint8(1), c.v[0xF])
}
