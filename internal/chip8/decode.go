package chip8

// opcode is a decoded 16-bit instruction word. Every bit pattern decodes
// to some set of fields, whether or not an instruction matches it.
type opcode struct {
	word uint16 // full big-endian instruction word
	op   uint8  // bits 15-12, instruction family
	x    uint8  // bits 11-8, first register selector
	y    uint8  // bits 7-4, second register selector
	n    uint8  // bits 3-0, literal nibble
	kk   uint8  // bits 7-0, literal byte
	nnn  uint16 // bits 11-0, address literal
}

// decode combines the two instruction bytes at PC and PC+1 (high byte
// first) and extracts the fixed bit fields.
func decode(hi, lo byte) opcode {
	word := uint16(hi)<<8 | uint16(lo)
	return opcode{
		word: word,
		op:   hi >> 4,
		x:    hi & 0x0F,
		y:    lo >> 4,
		n:    lo & 0x0F,
		kk:   lo,
		nnn:  word & 0x0FFF,
	}
}
