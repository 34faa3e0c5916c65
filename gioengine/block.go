package gioengine

import "fmt"

// Block is an ordered chain of rotors built from a string of color tokens,
// one token per rotor. A block composes its rotors' transforms and steps
// as an odometer; blocks never carry into each other.
type Block struct {
	rotors []*Rotor
}

// NewBlock builds a block from a color token string for an alphabet of the
// given size. The string must contain at least one token.
func NewBlock(tokens string, size int) (*Block, error) {
	b := &Block{}
	for _, tok := range tokens {
		shift, err := ColorShift(tok)
		if err != nil {
			return nil, err
		}
		b.rotors = append(b.rotors, NewRotor(shift, size))
	}
	if len(b.rotors) == 0 {
		return nil, ErrEmptyBlock
	}
	return b, nil
}

// Rotors returns the number of rotors in the block.
func (b *Block) Rotors() int { return len(b.rotors) }

// Process maps idx through every rotor. Forward composes the rotors in
// declared order; reverse composes their inverses in reverse order. The
// two directions are exact functional inverses for a fixed position
// vector.
func (b *Block) Process(idx int, reverse bool) int {
	if reverse {
		for i := len(b.rotors) - 1; i >= 0; i-- {
			idx = b.rotors[i].Backward(idx)
		}
		return idx
	}
	for _, r := range b.rotors {
		idx = r.Forward(idx)
	}
	return idx
}

// Step advances the first rotor and propagates the carry: each rotor that
// wraps advances the next one, and propagation stops at the first rotor
// that does not wrap.
func (b *Block) Step() {
	for _, r := range b.rotors {
		if !r.Step() {
			break
		}
	}
}

// Positions returns the current rotor offsets in declared order.
func (b *Block) Positions() []int {
	ps := make([]int, len(b.rotors))
	for i, r := range b.rotors {
		ps[i] = r.Position()
	}
	return ps
}

// SetPositions loads one offset per rotor.
func (b *Block) SetPositions(ps []int) error {
	if len(ps) != len(b.rotors) {
		return fmt.Errorf("%w: block has %d rotors, got %d positions",
			ErrPositionCount, len(b.rotors), len(ps))
	}
	for i, r := range b.rotors {
		r.SetPosition(ps[i])
	}
	return nil
}
