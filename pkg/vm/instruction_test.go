package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fetchFrom builds an operand fetcher over a fixed word sequence.
func fetchFrom(words ...int64) func(uint) int64 {
	return func(i uint) int64 {
		if i >= uint(len(words)) {
			return 0
		}
		//
		return words[i]
	}
}

func TestDecode_DefaultsToPositionMode(t *testing.T) {
	insn, err := decodeInstruction(1, fetchFrom(9, 10, 3))
	require.NoError(t, err)
	assert.Equal(t, OpAdd, insn.Opcode)
	require.Len(t, insn.Parameters, 3)
	//
	for i, param := range insn.Parameters {
		assert.Equal(t, Position, param.Mode, "parameter %d", i)
	}
	//
	assert.Equal(t, int64(9), insn.Parameters[0].Data)
	assert.Equal(t, int64(10), insn.Parameters[1].Data)
	assert.Equal(t, int64(3), insn.Parameters[2].Data)
}

func TestDecode_MixedModes(t *testing.T) {
	// 1002 = multiply, parameter 1 position, parameter 2 immediate,
	// parameter 3 position (leading digit absent).
	insn, err := decodeInstruction(1002, fetchFrom(4, 3, 4))
	require.NoError(t, err)
	assert.Equal(t, OpMul, insn.Opcode)
	assert.Equal(t, Position, insn.Parameters[0].Mode)
	assert.Equal(t, Immediate, insn.Parameters[1].Mode)
	assert.Equal(t, Position, insn.Parameters[2].Mode)
}

func TestDecode_RelativeMode(t *testing.T) {
	insn, err := decodeInstruction(204, fetchFrom(-1))
	require.NoError(t, err)
	assert.Equal(t, OpOutput, insn.Opcode)
	assert.Equal(t, Relative, insn.Parameters[0].Mode)
	assert.Equal(t, int64(-1), insn.Parameters[0].Data)
}

func TestDecode_ExtraModeDigitsIgnored(t *testing.T) {
	// Opcode 4 takes a single parameter; the digits beyond its arity are
	// simply discarded.
	insn, err := decodeInstruction(12104, fetchFrom(5))
	require.NoError(t, err)
	assert.Equal(t, OpOutput, insn.Opcode)
	require.Len(t, insn.Parameters, 1)
	assert.Equal(t, Immediate, insn.Parameters[0].Mode)
}

func TestDecode_Arity(t *testing.T) {
	tests := []struct {
		opcode Opcode
		arity  uint
	}{
		{OpAdd, 3}, {OpMul, 3}, {OpLessThan, 3}, {OpEquals, 3},
		{OpJumpIfTrue, 2}, {OpJumpIfFalse, 2},
		{OpInput, 1}, {OpOutput, 1}, {OpAdjustBase, 1},
		{OpHalt, 0},
	}
	//
	for _, tt := range tests {
		n, err := arity(tt.opcode)
		require.NoError(t, err)
		assert.Equal(t, tt.arity, n, "opcode %d", tt.opcode)
	}
}

func TestDecode_UnknownOpcode(t *testing.T) {
	for _, word := range []int64{0, 42, 100, 1098, -3} {
		_, err := decodeInstruction(word, fetchFrom())
		assert.ErrorIs(t, err, ErrUnknownOpcode, "word %d", word)
	}
}
