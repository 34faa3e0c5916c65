package gioengine

import "fmt"

// rotorColors lists the color tokens in canonical order. Each token is
// bound to a distinct shift value in colorShifts; the two must stay in
// sync.
var rotorColors = []rune{'К', 'Б', 'Ч', 'З', 'Р', 'О', 'Ф', 'С', 'Г', 'Л'}

var colorShifts = map[rune]int{
	'К': 1,
	'Б': 2,
	'Ч': 3,
	'З': 5,
	'Р': 4,
	'О': 6,
	'Ф': 7,
	'С': 8,
	'Г': 9,
	'Л': 10,
}

// Colors returns the color tokens in canonical order. The returned slice
// is a copy.
func Colors() []rune { return append([]rune(nil), rotorColors...) }

// ColorShift returns the shift value bound to a color token.
func ColorShift(token rune) (int, error) {
	s, ok := colorShifts[token]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownColor, token)
	}
	return s, nil
}

// Rotor is a single additive substitution unit. Its shift is fixed at
// construction; its position advances by stepping and wraps modulo the
// alphabet size.
type Rotor struct {
	shift    int
	position int
	size     int
}

// NewRotor returns a rotor with the given shift over an alphabet of the
// given size, starting at position 0.
func NewRotor(shift, size int) *Rotor {
	return &Rotor{shift: shift, size: size}
}

// Forward maps idx through the rotor in the encryption direction.
func (r *Rotor) Forward(idx int) int {
	return (idx + r.shift + r.position) % r.size
}

// Backward maps idx through the rotor in the decryption direction. For a
// fixed position, Backward is the exact modular inverse of Forward.
func (r *Rotor) Backward(idx int) int {
	return (idx + r.size - (r.shift+r.position)%r.size) % r.size
}

// Step advances the position by one and reports whether it wrapped to 0.
// The wrap signal drives the odometer carry in Block.Step.
func (r *Rotor) Step() bool {
	r.position = (r.position + 1) % r.size
	return r.position == 0
}

// Position returns the current rotational offset.
func (r *Rotor) Position() int { return r.position }

// SetPosition loads a rotational offset, normalized modulo the size.
func (r *Rotor) SetPosition(p int) {
	r.position = ((p % r.size) + r.size) % r.size
}

// Shift returns the fixed shift value.
func (r *Rotor) Shift() int { return r.shift }

// Size returns the alphabet size the rotor operates over.
func (r *Rotor) Size() int { return r.size }
