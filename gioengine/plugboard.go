package gioengine

import (
	"fmt"
	"unicode/utf8"
)

// Plugboard is a symmetric partial swap over the index space: identity
// except for the configured pairs, which map to each other. A constructed
// table is always an involution of fixed points and 2-cycles.
type Plugboard []int

// NewPlugboard builds a plugboard from character pairs. Every pair must
// name exactly two distinct in-alphabet characters, and no character may
// appear in more than one pair.
func NewPlugboard(pairs [][]string, codec *Codec) (Plugboard, error) {
	table := make(Plugboard, codec.Len())
	for i := range table {
		table[i] = i
	}
	used := make([]bool, codec.Len())
	for _, pair := range pairs {
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: %v", ErrPlugboardPair, pair)
		}
		a, err := pairRune(pair[0])
		if err != nil {
			return nil, err
		}
		b, err := pairRune(pair[1])
		if err != nil {
			return nil, err
		}
		ai, ok := codec.Index(a)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrPlugboardChar, a)
		}
		bi, ok := codec.Index(b)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrPlugboardChar, b)
		}
		if ai == bi {
			return nil, fmt.Errorf("%w: %q", ErrPlugboardSelfPair, a)
		}
		if used[ai] {
			return nil, fmt.Errorf("%w: %q", ErrPlugboardOverlap, a)
		}
		if used[bi] {
			return nil, fmt.Errorf("%w: %q", ErrPlugboardOverlap, b)
		}
		used[ai], used[bi] = true, true
		table[ai], table[bi] = bi, ai
	}
	return table, nil
}

func pairRune(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrPlugboardPair, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// Swap maps idx through the plugboard. Swap is its own inverse.
func (p Plugboard) Swap(idx int) int { return p[idx] }
