package chip8

import (
	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/log"
)

// trace logs the instruction about to execute at debug level.
func (c *Chip8) trace(oc opcode) {
	if c.logger == nil {
		return
	}
	c.logger.Debug("Executing instruction",
		log.String("name", instructionName(oc.word)),
		log.Hex("opcode", oc.word),
		log.Hex("pc", c.pc),
	)
}

// instructionName resolves the mnemonic of an instruction word using the
// opcode table, or "???" for words that match no documented instruction.
func instructionName(word uint16) string {
	firstNibble := int(word >> 12)
	for _, op := range chip8cpu.Opcodes[firstNibble] {
		if op.Instruction != nil && word&op.Info.Mask == op.Info.Value {
			return op.Instruction.Name
		}
	}
	return "???"
}
