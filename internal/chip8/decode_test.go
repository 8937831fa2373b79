package chip8

import (
	"testing"

	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		hi   byte
		lo   byte
		want opcode
	}{
		{
			name: "all fields set",
			hi:   0xAB,
			lo:   0xCD,
			want: opcode{word: 0xABCD, op: 0xA, x: 0xB, y: 0xC, n: 0xD, kk: 0xCD, nnn: 0xBCD},
		},
		{
			name: "zero word",
			hi:   0x00,
			lo:   0x00,
			want: opcode{},
		},
		{
			name: "jump",
			hi:   0x12,
			lo:   0x00,
			want: opcode{word: 0x1200, op: 0x1, x: 0x2, y: 0x0, n: 0x0, kk: 0x00, nnn: 0x200},
		},
		{
			name: "draw",
			hi:   0xD1,
			lo:   0x2F,
			want: opcode{word: 0xD12F, op: 0xD, x: 0x1, y: 0x2, n: 0xF, kk: 0x2F, nnn: 0x12F},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decode(tt.hi, tt.lo))
		})
	}
}

func TestInstructionName(t *testing.T) {
	assert.Equal(t, chip8cpu.ClsName, instructionName(0x00E0))
	assert.Equal(t, chip8cpu.JpName, instructionName(0x1200))
	assert.Equal(t, chip8cpu.RetName, instructionName(0x00EE))
	assert.Equal(t, "???", instructionName(0xFFFF))
}
