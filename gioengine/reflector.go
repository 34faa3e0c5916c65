package gioengine

// Reflector is the fixed involutive permutation table[i] = N-1-i applied
// once per symbol, between the forward and backward rotor passes.
type Reflector []int

// NewReflector builds the reflector for an alphabet of the given size.
func NewReflector(size int) Reflector {
	t := make(Reflector, size)
	for i := range t {
		t[i] = size - 1 - i
	}
	return t
}

// Reflect maps idx through the reflector. Reflect is its own inverse.
func (t Reflector) Reflect(idx int) int { return t[idx] }
