package chip8

// frameBuffer is the packed monochrome display: 64x32 pixels, row-major,
// one bit per pixel, MSB first within each byte.
type frameBuffer [DisplayWidth * DisplayHeight / 8]byte

func (f *frameBuffer) clear() {
	*f = frameBuffer{}
}

func (f *frameBuffer) pixel(x, y int) bool {
	bit := y*DisplayWidth + x
	return f[bit/8]&(0x80>>(bit%8)) != 0
}

// flip XORs a single pixel and reports whether a lit pixel was turned off.
func (f *frameBuffer) flip(x, y int) bool {
	bit := y*DisplayWidth + x
	mask := byte(0x80 >> (bit % 8))
	was := f[bit/8]&mask != 0
	f[bit/8] ^= mask
	return was
}

// drawSprite XORs an n-byte sprite onto the display at (x0, y0). Each
// sprite byte is one row of 8 pixels, MSB leftmost. Both axes wrap per
// pixel, so a sprite straddling an edge continues on the opposite side of
// the same row or column. V[0xF] is set to 1 if any lit pixel is turned
// off, accumulated across the whole sprite.
func (c *Chip8) drawSprite(x0, y0 uint8, sprite []byte) {
	c.v[0xF] = 0

	for row, line := range sprite {
		py := (int(y0) + row) % DisplayHeight

		for col := 0; col < 8; col++ {
			if line&(0x80>>col) == 0 {
				continue
			}
			px := (int(x0) + col) % DisplayWidth
			if c.display.flip(px, py) {
				c.v[0xF] = 1
			}
		}
	}

	c.draw = true
}
