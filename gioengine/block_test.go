package gioengine_test

import (
	"testing"

	"github.com/BITIW/The-Great-Giordano/gioengine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewBlock_Errors rejects unknown tokens and empty token strings.
func TestNewBlock_Errors(t *testing.T) {
	_, err := gioengine.NewBlock("КБX", 26)
	assert.ErrorIs(t, err, gioengine.ErrUnknownColor)

	_, err = gioengine.NewBlock("", 26)
	assert.ErrorIs(t, err, gioengine.ErrEmptyBlock)
}

// TestBlock_ProcessInverse checks the forward and reverse passes invert
// each other for a fixed position vector, using all ten rotor colors.
func TestBlock_ProcessInverse(t *testing.T) {
	blk, err := gioengine.NewBlock("КБЧЗРОФСГЛ", 26)
	require.NoError(t, err)
	require.NoError(t, blk.SetPositions([]int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3}))

	for idx := 0; idx < 26; idx++ {
		fwd := blk.Process(idx, false)
		assert.Equal(t, idx, blk.Process(fwd, true), "index %d", idx)
	}
}

// TestBlock_ProcessOrder pins the composition order: forward feeds rotor
// outputs left to right, reverse unwinds right to left.
func TestBlock_ProcessOrder(t *testing.T) {
	blk, err := gioengine.NewBlock("КБ", 26)
	require.NoError(t, err)

	// (0+1+0)%26 = 1, then (1+2+0)%26 = 3.
	assert.Equal(t, 3, blk.Process(0, false))
	// Unwind: (3+26-2)%26 = 1, then (1+26-1)%26 = 0.
	assert.Equal(t, 0, blk.Process(3, true))
}

// TestBlock_StepOdometer verifies the carry protocol: one lap of the
// first rotor advances the second exactly once, and the third moves only
// after a full lap of the first two.
func TestBlock_StepOdometer(t *testing.T) {
	blk, err := gioengine.NewBlock("ККК", 26)
	require.NoError(t, err)
	for i := 0; i < 26; i++ {
		blk.Step()
	}
	assert.Equal(t, []int{0, 1, 0}, blk.Positions(), "one lap carries into the second rotor")

	blk2, err := gioengine.NewBlock("ККК", 26)
	require.NoError(t, err)
	for i := 0; i < 26*26; i++ {
		blk2.Step()
	}
	assert.Equal(t, []int{0, 0, 1}, blk2.Positions(), "26*26 steps carry into the third rotor")
}

// TestBlock_StepStopsAtFirstNonWrap makes sure a single step never moves
// more than the leading rotor when no wrap happens.
func TestBlock_StepStopsAtFirstNonWrap(t *testing.T) {
	blk, err := gioengine.NewBlock("КБЧ", 26)
	require.NoError(t, err)

	blk.Step()
	assert.Equal(t, []int{1, 0, 0}, blk.Positions())
}

// TestBlock_SetPositions_Mismatch rejects vectors of the wrong length.
func TestBlock_SetPositions_Mismatch(t *testing.T) {
	blk, err := gioengine.NewBlock("КБ", 26)
	require.NoError(t, err)

	assert.ErrorIs(t, blk.SetPositions([]int{1}), gioengine.ErrPositionCount)
	assert.ErrorIs(t, blk.SetPositions([]int{1, 2, 3}), gioengine.ErrPositionCount)
}

// TestBlock_Positions reports offsets in declared order.
func TestBlock_Positions(t *testing.T) {
	blk, err := gioengine.NewBlock("КБЧ", 26)
	require.NoError(t, err)
	require.NoError(t, blk.SetPositions([]int{7, 11, 13}))

	assert.Equal(t, []int{7, 11, 13}, blk.Positions())
	assert.Equal(t, 3, blk.Rotors())
}
