package gioengine_test

import (
	"math"
	"testing"

	"github.com/BITIW/The-Great-Giordano/gioengine"
	"github.com/stretchr/testify/assert"
)

// TestKeyspaceBits_RotorTerm pins the rotor-only contribution: R rotors
// over an A-symbol alphabet contribute R*log2(A) bits.
func TestKeyspaceBits_RotorTerm(t *testing.T) {
	assert.InDelta(t, math.Log2(26), gioengine.KeyspaceBits(26, 1, 0), 1e-12)
	assert.InDelta(t, 5*math.Log2(33), gioengine.KeyspaceBits(33, 5, 0), 1e-12)
	assert.Zero(t, gioengine.KeyspaceBits(26, 0, 0))
}

// TestKeyspaceBits_PairingTerm checks the partial-pairing count against a
// hand-computed case: one pair from four symbols gives C(4,2) = 6.
func TestKeyspaceBits_PairingTerm(t *testing.T) {
	assert.InDelta(t, math.Log2(6), gioengine.KeyspaceBits(4, 0, 1), 1e-12)
}

// TestKeyspaceBits_MonotoneInRotors requires strictly growing estimates
// as rotors are added for a fixed alphabet and plugboard.
func TestKeyspaceBits_MonotoneInRotors(t *testing.T) {
	prev := gioengine.KeyspaceBits(26, 0, 3)
	for r := 1; r <= 64; r++ {
		cur := gioengine.KeyspaceBits(26, r, 3)
		assert.Greater(t, cur, prev, "R=%d", r)
		prev = cur
	}
}

// TestKeyspaceBits_DefinedAcrossPairRange keeps the estimate finite and
// non-negative for every legal pair count.
func TestKeyspaceBits_DefinedAcrossPairRange(t *testing.T) {
	for _, a := range []int{26, 33} {
		for p := 0; p <= a/2; p++ {
			bits := gioengine.KeyspaceBits(a, 3, p)
			assert.False(t, math.IsNaN(bits), "A=%d P=%d", a, p)
			assert.GreaterOrEqual(t, bits, 0.0, "A=%d P=%d", a, p)
		}
	}
}

// TestKeyspaceBits_OverfullClamps keeps the estimate defined when 2P
// exceeds the alphabet size.
func TestKeyspaceBits_OverfullClamps(t *testing.T) {
	bits := gioengine.KeyspaceBits(26, 3, 20)
	assert.False(t, math.IsNaN(bits))
	assert.False(t, math.IsInf(bits, 0))
}
