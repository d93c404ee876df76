package vm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustParse parses a program or fails the test.
func mustParse(t *testing.T, source string) *Program {
	t.Helper()
	//
	program, err := FromString(source)
	if err != nil {
		t.Fatalf("parsing %q: %v", source, err)
	}
	//
	return program
}

func TestExecute_SelfAdd(t *testing.T) {
	program := mustParse(t, "1,0,0,0,99")
	_, err := program.Execute()
	require.NoError(t, err)
	assert.Equal(t, int64(2), program.Peek(0))
	assert.Equal(t, StatusHalted, program.Status())
}

func TestExecute_EchoInput(t *testing.T) {
	program := mustParse(t, "3,0,4,0,99")
	program.SetInput(SliceInput(42))
	//
	output, err := program.Execute()
	require.NoError(t, err)
	assert.Equal(t, []int64{42}, output)
}

func TestExecute_ImmediateMultiply(t *testing.T) {
	program := mustParse(t, "1002,4,3,4,33")
	output, err := program.Execute()
	require.NoError(t, err)
	assert.Empty(t, output)
	assert.Equal(t, int64(99), program.Peek(4))
}

func TestExecute_GravityAssist(t *testing.T) {
	program := mustParse(t, "1,9,10,3,2,3,11,0,99,30,40,50")
	_, err := program.Execute()
	require.NoError(t, err)
	assert.Equal(t, int64(3500), program.Peek(0))
}

func TestExecute_NegativeImmediate(t *testing.T) {
	program := mustParse(t, "1101,100,-1,4,0")
	_, err := program.Execute()
	require.NoError(t, err)
	assert.Equal(t, int64(99), program.Peek(4))
}

func TestPatchAndPeek(t *testing.T) {
	program := mustParse(t, "1,0,0,0,99")
	program.Patch(1, 12)
	program.Patch(2, 2)
	assert.Equal(t, int64(12), program.Peek(1))
	assert.Equal(t, int64(2), program.Peek(2))
	// Patching beyond the initial image grows memory
	program.Patch(100, -5)
	assert.Equal(t, int64(-5), program.Peek(100))
	assert.Equal(t, int64(0), program.Peek(99))
}

func TestAddressingModeEquivalence(t *testing.T) {
	// The same addition expressed with immediate literals and with
	// position-mode references to dedicated memory slots must produce
	// identical output logs.
	immediate := mustParse(t, "1101,2,3,7,4,7,99,0")
	position := mustParse(t, "1,7,8,9,4,9,99,2,3,0")
	//
	a, err := immediate.Execute()
	require.NoError(t, err)
	b, err := position.Execute()
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, []int64{5}, a)
}

func TestComparisons(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		input    int64
		expected int64
	}{
		{"position equal hit", "3,9,8,9,10,9,4,9,99,-1,8", 8, 1},
		{"position equal miss", "3,9,8,9,10,9,4,9,99,-1,8", 7, 0},
		{"position less hit", "3,9,7,9,10,9,4,9,99,-1,8", 3, 1},
		{"position less miss", "3,9,7,9,10,9,4,9,99,-1,8", 9, 0},
		{"immediate equal hit", "3,3,1108,-1,8,3,4,3,99", 8, 1},
		{"immediate equal miss", "3,3,1108,-1,8,3,4,3,99", 9, 0},
		{"immediate less hit", "3,3,1107,-1,8,3,4,3,99", 1, 1},
		{"immediate less miss", "3,3,1107,-1,8,3,4,3,99", 8, 0},
	}
	//
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program := mustParse(t, tt.source)
			program.SetInput(SliceInput(tt.input))
			//
			output, err := program.Execute()
			require.NoError(t, err)
			assert.Equal(t, []int64{tt.expected}, output)
		})
	}
}

func TestJumps(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		input    int64
		expected int64
	}{
		{"position jump zero", "3,12,6,12,15,1,13,14,13,4,13,99,-1,0,1,9", 0, 0},
		{"position jump nonzero", "3,12,6,12,15,1,13,14,13,4,13,99,-1,0,1,9", 7, 1},
		{"immediate jump zero", "3,3,1105,-1,9,1101,0,0,12,4,12,99,1", 0, 0},
		{"immediate jump nonzero", "3,3,1105,-1,9,1101,0,0,12,4,12,99,1", -4, 1},
	}
	//
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program := mustParse(t, tt.source)
			program.SetInput(SliceInput(tt.input))
			//
			output, err := program.Execute()
			require.NoError(t, err)
			assert.Equal(t, []int64{tt.expected}, output)
		})
	}
}

// The classic three-way comparison against 8, exercising jumps and
// comparisons in both addressing modes at once.
func TestJumpAndCompareAroundEight(t *testing.T) {
	const source = "3,21,1008,21,8,20,1005,20,22,107,8,21,20,1006,20,31," +
		"1106,0,36,98,0,0,1002,21,125,20,4,20,1105,1,46,104," +
		"999,1105,1,46,1101,1000,1,20,4,20,1105,1,46,98,99"
	//
	tests := []struct {
		input    int64
		expected int64
	}{
		{7, 999}, {8, 1000}, {9, 1001},
	}
	//
	for _, tt := range tests {
		program := mustParse(t, source)
		program.SetInput(SliceInput(tt.input))
		//
		output, err := program.Execute()
		require.NoError(t, err)
		assert.Equal(t, []int64{tt.expected}, output, "input %d", tt.input)
	}
}

func TestRelativeBase_Quine(t *testing.T) {
	// This program outputs a copy of itself, exercising relative-mode
	// reads and writes together with memory beyond the initial image.
	const source = "109,1,204,-1,1001,100,1,100,1008,100,16,101,1006,101,0,99"
	//
	expected, err := ParseMemory(source)
	require.NoError(t, err)
	//
	program := mustParse(t, source)
	output, err := program.Execute()
	require.NoError(t, err)
	assert.Equal(t, []int64(expected), output)
}

func TestRelativeBase_LargeNumbers(t *testing.T) {
	program := mustParse(t, "1102,34915192,34915192,7,4,7,99,0")
	output, err := program.Execute()
	require.NoError(t, err)
	require.Len(t, output, 1)
	assert.Equal(t, int64(1219070632396864), output[0])
	//
	program = mustParse(t, "104,1125899906842624,99")
	output, err = program.Execute()
	require.NoError(t, err)
	assert.Equal(t, []int64{1125899906842624}, output)
}

func TestRelativeBase_RoundTrip(t *testing.T) {
	// Adjust the base by +2000, write a value through relative mode, then
	// read it back through relative mode with the same offset.
	program := mustParse(t, "109,2000,21101,7,6,1,204,1,99")
	//
	output, err := program.Execute()
	require.NoError(t, err)
	assert.Equal(t, []int64{13}, output)
	assert.Equal(t, int64(13), program.Peek(2001))
}

func TestInputOrdinals(t *testing.T) {
	// Reads two inputs, adds them, outputs the sum.  The source hands out
	// a value derived from the request ordinal, so the test fails if the
	// cursor is not advanced correctly.
	program := mustParse(t, "3,11,3,12,1,11,12,13,4,13,99,0,0,0")
	//
	var ordinals []uint
	//
	program.SetInput(func(n uint) (int64, error) {
		ordinals = append(ordinals, n)
		return int64(n*10 + 5), nil
	})
	//
	output, err := program.Execute()
	require.NoError(t, err)
	assert.Equal(t, []int64{20}, output)
	assert.Equal(t, []uint{0, 1}, ordinals)
}

func TestInputExhausted(t *testing.T) {
	program := mustParse(t, "3,0,3,1,99")
	program.SetInput(SliceInput(1))
	//
	_, err := program.Execute()
	assert.ErrorIs(t, err, ErrInputUnavailable)
	// The first input was consumed before the fault; fail-fast means it
	// is not rolled back.
	assert.Equal(t, int64(1), program.Peek(0))
}

func TestImmediateWriteTarget(t *testing.T) {
	program := mustParse(t, "11101,1,1,0,99")
	_, err := program.Execute()
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestNegativeResolvedAddress(t *testing.T) {
	// Adjust the base to -5, then read relative offset 0.
	program := mustParse(t, "109,-5,204,0,99")
	_, err := program.Execute()
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestUnknownOpcode(t *testing.T) {
	program := mustParse(t, "42,0,0,0")
	_, err := program.Execute()
	require.ErrorIs(t, err, ErrUnknownOpcode)
	assert.True(t, strings.Contains(err.Error(), "address 0"), "got %q", err.Error())
}

func TestExecuteUntilOutput_PumpsToCompletion(t *testing.T) {
	const source = "109,1,204,-1,1001,100,1,100,1008,100,16,101,1006,101,0,99"
	// Reference run
	reference := mustParse(t, source)
	expected, err := reference.Execute()
	require.NoError(t, err)
	// Pumped run: the concatenation of single outputs must equal the full
	// output log of an uninterrupted run.
	program := mustParse(t, source)
	//
	var pumped []int64
	//
	for {
		value, err := program.ExecuteUntilOutput()
		if err != nil {
			require.ErrorIs(t, err, ErrNoOutput)
			break
		}
		//
		pumped = append(pumped, value)
	}
	//
	assert.Equal(t, expected, pumped)
	assert.Equal(t, StatusHalted, program.Status())
	assert.False(t, program.IsRunning())
}

func TestExecuteUntilOutput_PausesBetweenOutputs(t *testing.T) {
	program := mustParse(t, "104,1,104,2,99")
	//
	value, err := program.ExecuteUntilOutput()
	require.NoError(t, err)
	assert.Equal(t, int64(1), value)
	assert.Equal(t, StatusPaused, program.Status())
	assert.True(t, program.IsRunning())
	//
	value, err = program.ExecuteUntilOutput()
	require.NoError(t, err)
	assert.Equal(t, int64(2), value)
	//
	_, err = program.ExecuteUntilOutput()
	assert.ErrorIs(t, err, ErrNoOutput)
	assert.Equal(t, StatusHalted, program.Status())
}

func TestExecuteUntilOutput_IdempotentAfterHalt(t *testing.T) {
	program := mustParse(t, "104,7,99")
	_, err := program.Execute()
	require.NoError(t, err)
	//
	before := program.Output()
	// Pumping a halted program reports no output, every time, without
	// mutating memory or the output log.
	for i := 0; i < 3; i++ {
		_, err := program.ExecuteUntilOutput()
		assert.ErrorIs(t, err, ErrNoOutput)
	}
	//
	assert.Equal(t, before, program.Output())
	assert.Equal(t, int64(104), program.Peek(0))
}

func TestExecute_NoOpAfterHalt(t *testing.T) {
	program := mustParse(t, "104,42,99")
	output, err := program.Execute()
	require.NoError(t, err)
	require.Equal(t, []int64{42}, output)
	// Executing again must not restart the program; the existing log is
	// simply returned.
	output, err = program.Execute()
	require.NoError(t, err)
	assert.Equal(t, []int64{42}, output)
}

func TestStatusLifecycle(t *testing.T) {
	program := mustParse(t, "99")
	assert.Equal(t, StatusIdle, program.Status())
	assert.False(t, program.IsRunning())
	//
	_, err := program.Execute()
	require.NoError(t, err)
	assert.Equal(t, StatusHalted, program.Status())
}

func TestOutputIsACopy(t *testing.T) {
	program := mustParse(t, "104,1,104,2,99")
	_, err := program.Execute()
	require.NoError(t, err)
	//
	output := program.Output()
	output[0] = 999
	assert.Equal(t, []int64{1, 2}, program.Output())
}
