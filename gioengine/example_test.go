package gioengine_test

import (
	"fmt"

	"github.com/BITIW/The-Great-Giordano/gioengine"
)

// ExampleMachine_Transform encrypts one letter with a two-rotor block and
// decrypts it with a second machine built from the same Config.
func ExampleMachine_Transform() {
	cfg := &gioengine.Config{
		Alphabet: gioengine.Latin,
		Blocks:   []string{"КБ"},
	}
	enc, _ := gioengine.New(cfg)
	dec, _ := gioengine.New(cfg)

	cipher := enc.Transform("a")
	fmt.Println(cipher)
	fmt.Println(dec.Transform(cipher))
	// Output:
	// t
	// a
}

// ExampleKeyspaceBits reports the key space of a small machine shape.
func ExampleKeyspaceBits() {
	bits := gioengine.KeyspaceBits(26, 1, 0)
	fmt.Printf("%.3f\n", bits)
	// Output:
	// 4.700
}
