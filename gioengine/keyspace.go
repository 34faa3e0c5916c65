package gioengine

import "math"

// KeyspaceBits estimates the configuration key space in bits for a
// machine shape: alphabet size, total rotor count across all blocks, and
// plugboard pair count.
//
// The rotor term counts every offset combination, each rotor
// independently taking any of the alphabetSize positions. The plugboard
// term counts the ways to choose plugboardPairs disjoint pairs out of the
// alphabet, A!/((A-2P)!*2^P*P!), decomposed through log-factorials so
// large alphabets do not overflow. When 2P exceeds A the factorial
// argument clamps to zero.
func KeyspaceBits(alphabetSize, totalRotors, plugboardPairs int) float64 {
	positions := float64(totalRotors) * math.Log2(float64(alphabetSize))
	unpaired := alphabetSize - 2*plugboardPairs
	if unpaired < 0 {
		unpaired = 0
	}
	pairings := log2Factorial(alphabetSize) - log2Factorial(unpaired) -
		float64(plugboardPairs) - log2Factorial(plugboardPairs)
	return positions + pairings
}

// log2Factorial sums log2(i) for i in 1..n. Direct summation keeps the
// result exact for the sizes involved; no Stirling approximation.
func log2Factorial(n int) float64 {
	sum := 0.0
	for i := 2; i <= n; i++ {
		sum += math.Log2(float64(i))
	}
	return sum
}
