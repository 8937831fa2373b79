package chip8

// Step runs exactly one fetch-decode-execute-timer cycle.
//
// The timers decrement once per cycle rather than at a wall-clock 60Hz,
// matching the reference interpreter. The driver loop compensates by
// pacing Step calls at roughly 500-700Hz.
//
// Step never fails: instruction words that match no documented instruction
// advance the program counter by 2 and do nothing else.
func (c *Chip8) Step() {
	oc := decode(c.readByte(c.pc), c.readByte(c.pc+1))
	c.trace(oc)
	c.execute(oc)

	if c.dt > 0 {
		c.dt--
	}
	if c.st > 0 {
		c.st--
	}
}

// execute dispatches on the decoded fields and performs one state
// transition. Each case manages the program counter itself.
//
// Stack over- and underflow and memory accesses past 0xFFF are not
// validated, by parity with the reference interpreter: indexes are masked
// instead, producing garbage state rather than a fault.
func (c *Chip8) execute(oc opcode) {
	switch oc.op {
	case 0x0:
		switch oc.kk {
		case 0xE0: // CLS
			c.display.clear()
			c.draw = true
			c.pc += 2
		case 0xEE: // RET
			c.sp--
			c.pc = c.stack[c.sp%stackSize]
			c.pc += 2
		default:
			c.pc += 2
		}

	case 0x1: // JP nnn
		c.pc = oc.nnn

	case 0x2: // CALL nnn
		c.stack[c.sp%stackSize] = c.pc
		c.sp++
		c.pc = oc.nnn

	case 0x3: // SE Vx, kk
		c.skipIf(c.v[oc.x] == oc.kk)

	case 0x4: // SNE Vx, kk
		c.skipIf(c.v[oc.x] != oc.kk)

	case 0x5: // SE Vx, Vy
		c.skipIf(c.v[oc.x] == c.v[oc.y])

	case 0x6: // LD Vx, kk
		c.v[oc.x] = oc.kk
		c.pc += 2

	case 0x7: // ADD Vx, kk
		c.v[oc.x] += oc.kk
		c.pc += 2

	case 0x8:
		c.executeALU(oc)

	case 0x9: // SNE Vx, Vy
		c.skipIf(c.v[oc.x] != c.v[oc.y])

	case 0xA: // LD I, nnn
		c.i = oc.nnn
		c.pc += 2

	case 0xB: // JP V0, nnn
		c.pc = oc.nnn + uint16(c.v[0])

	case 0xC: // RND Vx, kk
		c.v[oc.x] = c.randByte() & oc.kk
		c.pc += 2

	case 0xD: // DRW Vx, Vy, n
		sprite := make([]byte, oc.n)
		for row := range sprite {
			sprite[row] = c.readByte(c.i + uint16(row))
		}
		c.drawSprite(c.v[oc.x], c.v[oc.y], sprite)
		c.pc += 2

	case 0xE:
		key := c.v[oc.x] % NumKeys
		switch oc.kk {
		case 0x9E: // SKP Vx
			c.skipIf(c.keys[key])
		case 0xA1: // SKNP Vx
			c.skipIf(!c.keys[key])
		default:
			c.pc += 2
		}

	case 0xF:
		c.executeMisc(oc)
	}
}

// executeALU handles the 8xy_ register arithmetic family.
func (c *Chip8) executeALU(oc opcode) {
	x, y := oc.x, oc.y

	switch oc.n {
	case 0x0: // LD Vx, Vy
		c.v[x] = c.v[y]
	case 0x1: // OR Vx, Vy
		c.v[x] |= c.v[y]
	case 0x2: // AND Vx, Vy
		c.v[x] &= c.v[y]
	case 0x3: // XOR Vx, Vy
		c.v[x] ^= c.v[y]

	case 0x4: // ADD Vx, Vy with carry
		sum := uint16(c.v[x]) + uint16(c.v[y])
		c.setFlag(sum > 0xFF)
		c.v[x] = uint8(sum)

	case 0x5: // SUB Vx, Vy with not-borrow
		c.setFlag(c.v[x] > c.v[y])
		c.v[x] -= c.v[y]

	case 0x6: // SHR Vx - operates on Vx only, ignoring Vy
		c.v[0xF] = c.v[x] & 0x01
		c.v[x] >>= 1

	case 0x7: // SUBN Vx, Vy
		c.setFlag(c.v[y] > c.v[x])
		c.v[x] = c.v[y] - c.v[x]

	case 0xE: // SHL Vx - operates on Vx only, ignoring Vy
		c.v[0xF] = c.v[x] >> 7
		c.v[x] <<= 1
	}

	c.pc += 2
}

// executeMisc handles the Fx__ timer, keypad and memory family.
func (c *Chip8) executeMisc(oc opcode) {
	x := oc.x

	switch oc.kk {
	case 0x07: // LD Vx, DT
		c.v[x] = c.dt

	case 0x0A: // LD Vx, K
		// Latch the lowest-indexed pressed key. Without a pressed key the
		// program counter stays put and the instruction re-executes on the
		// next cycle, which is the effective blocking behavior.
		for key, pressed := range c.keys {
			if pressed {
				c.v[x] = uint8(key)
				c.pc += 2
				return
			}
		}
		return

	case 0x15: // LD DT, Vx
		c.dt = c.v[x]

	case 0x18: // LD ST, Vx
		c.st = c.v[x]

	case 0x1E: // ADD I, Vx
		sum := c.i + uint16(c.v[x])
		c.setFlag(sum > 0x0FFF)
		c.i = sum

	case 0x29: // LD F, Vx
		c.i = 5 * uint16(c.v[x])

	case 0x33: // LD B, Vx
		c.writeByte(c.i, c.v[x]/100)
		c.writeByte(c.i+1, c.v[x]/10%10)
		c.writeByte(c.i+2, c.v[x]%10)

	case 0x55: // LD [I], Vx
		for reg := uint16(0); reg <= uint16(x); reg++ {
			c.writeByte(c.i+reg, c.v[reg])
		}
		c.i += uint16(x) + 1

	case 0x65: // LD Vx, [I]
		for reg := uint16(0); reg <= uint16(x); reg++ {
			c.v[reg] = c.readByte(c.i + reg)
		}
		c.i += uint16(x) + 1
	}

	c.pc += 2
}

// skipIf advances past the next instruction when the condition holds.
func (c *Chip8) skipIf(condition bool) {
	if condition {
		c.pc += 4
	} else {
		c.pc += 2
	}
}

func (c *Chip8) setFlag(condition bool) {
	if condition {
		c.v[0xF] = 1
	} else {
		c.v[0xF] = 0
	}
}
