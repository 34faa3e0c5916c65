package gioengine

import "fmt"

// Built-in alphabet tags accepted in a Config.
const (
	Latin    = "latin"
	Cyrillic = "cyrillic"
)

var (
	latinAlphabet    = []rune("abcdefghijklmnopqrstuvwxyz")
	cyrillicAlphabet = []rune("абвгдеёжзийклмнопрстуфхцчшщъыьэюя")
)

// AlphabetByName returns the character sequence for one of the built-in
// alphabet tags. The returned slice is a copy and safe to modify.
func AlphabetByName(name string) ([]rune, error) {
	switch name {
	case Latin:
		return append([]rune(nil), latinAlphabet...), nil
	case Cyrillic:
		return append([]rune(nil), cyrillicAlphabet...), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlphabet, name)
}

// Codec maps characters to dense indices in [0, Len) and back. Index order
// is alphabet declaration order, not code point order. The lookup table
// spans the contiguous code point range of the alphabet, so encoding is a
// single slice access.
type Codec struct {
	alphabet []rune
	min      rune
	table    []int // index+1 per offset from min; 0 marks "not mapped"
}

// NewCodec builds a Codec from an ordered character list. The alphabet
// must be non-empty and free of duplicates.
func NewCodec(alphabet []rune) (*Codec, error) {
	if len(alphabet) == 0 {
		return nil, ErrEmptyAlphabet
	}
	min, max := alphabet[0], alphabet[0]
	for _, r := range alphabet {
		if r < min {
			min = r
		}
		if r > max {
			max = r
		}
	}
	c := &Codec{
		alphabet: append([]rune(nil), alphabet...),
		min:      min,
		table:    make([]int, max-min+1),
	}
	for i, r := range alphabet {
		if c.table[r-min] != 0 {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateChar, r)
		}
		c.table[r-min] = i + 1
	}
	return c, nil
}

// Len returns the alphabet length.
func (c *Codec) Len() int { return len(c.alphabet) }

// Alphabet returns a copy of the character sequence in index order.
func (c *Codec) Alphabet() []rune { return append([]rune(nil), c.alphabet...) }

// Index returns the dense index of r and whether r is in the alphabet.
func (c *Codec) Index(r rune) (int, bool) {
	if r < c.min || r-c.min >= rune(len(c.table)) {
		return 0, false
	}
	i := c.table[r-c.min]
	if i == 0 {
		return 0, false
	}
	return i - 1, true
}

// Rune returns the character at index i. Indices produced by Index are
// always in range.
func (c *Codec) Rune(i int) rune { return c.alphabet[i] }
