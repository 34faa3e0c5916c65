// Package gioengine implements the Great Giordano rotor machine: a
// polyalphabetic substitution cipher built from additive rotors grouped
// into ordered blocks, an involutive reflector, and a plugboard of
// symmetric character swaps.
//
// A Machine is built from a Config and transforms text one character at a
// time. Encryption and decryption are the same operation: two machines
// built from the same Config start from identical rotor offsets and step
// in lockstep, so transforming ciphertext reproduces the case-folded
// plaintext.
package gioengine

import (
	"fmt"
	"strings"
)

// Machine is one configured cipher instance. It owns its rotor state:
// every Transform call advances the blocks, so independent messages need
// machines built fresh from the same Config, while repeated Transform
// calls on one machine form a single continuous keystream.
type Machine struct {
	codec     *Codec
	plugboard Plugboard
	blocks    []*Block
	reflector Reflector
}

// New builds a Machine from cfg. Construction validates the whole
// configuration and is all-or-nothing; the returned error wraps one of
// the sentinel errors in this package.
func New(cfg *Config) (*Machine, error) {
	alphabet, err := AlphabetByName(cfg.Alphabet)
	if err != nil {
		return nil, err
	}
	codec, err := NewCodec(alphabet)
	if err != nil {
		return nil, err
	}
	plugboard, err := NewPlugboard(cfg.Plugboard, codec)
	if err != nil {
		return nil, err
	}
	blocks := make([]*Block, 0, len(cfg.Blocks))
	for _, tokens := range cfg.Blocks {
		blk, err := NewBlock(tokens, codec.Len())
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, blk)
	}
	if len(cfg.RotorPositions) > 0 {
		if len(cfg.RotorPositions) != len(blocks) {
			return nil, fmt.Errorf("%w: %d blocks, %d position vectors",
				ErrPositionCount, len(blocks), len(cfg.RotorPositions))
		}
		for i, blk := range blocks {
			if err := blk.SetPositions(cfg.RotorPositions[i]); err != nil {
				return nil, err
			}
		}
	}
	return &Machine{
		codec:     codec,
		plugboard: plugboard,
		blocks:    blocks,
		reflector: NewReflector(codec.Len()),
	}, nil
}

// Transform enciphers or deciphers text. The whole input is lower-cased
// first; characters outside the alphabet pass through unchanged and do
// not step the rotors. Transform never fails.
func (m *Machine) Transform(text string) string {
	var out strings.Builder
	out.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		idx, ok := m.codec.Index(r)
		if !ok {
			out.WriteRune(r)
			continue
		}
		idx = m.plugboard.Swap(idx)
		for _, blk := range m.blocks {
			idx = blk.Process(idx, false)
		}
		idx = m.reflector.Reflect(idx)
		for i := len(m.blocks) - 1; i >= 0; i-- {
			idx = m.blocks[i].Process(idx, true)
		}
		idx = m.plugboard.Swap(idx)
		out.WriteRune(m.codec.Rune(idx))
		for _, blk := range m.blocks {
			blk.Step()
		}
	}
	return out.String()
}

// AlphabetLen returns the alphabet length.
func (m *Machine) AlphabetLen() int { return m.codec.Len() }

// Codec returns the machine's character codec.
func (m *Machine) Codec() *Codec { return m.codec }

// Blocks returns the number of rotor blocks.
func (m *Machine) Blocks() int { return len(m.blocks) }

// TotalRotors returns the rotor count across all blocks.
func (m *Machine) TotalRotors() int {
	n := 0
	for _, blk := range m.blocks {
		n += blk.Rotors()
	}
	return n
}

// Positions returns a snapshot of every rotor offset, one vector per
// block.
func (m *Machine) Positions() [][]int {
	ps := make([][]int, len(m.blocks))
	for i, blk := range m.blocks {
		ps[i] = blk.Positions()
	}
	return ps
}

// SetPositions restores a snapshot taken with Positions.
func (m *Machine) SetPositions(ps [][]int) error {
	if len(ps) != len(m.blocks) {
		return fmt.Errorf("%w: %d blocks, %d position vectors",
			ErrPositionCount, len(m.blocks), len(ps))
	}
	for i, blk := range m.blocks {
		if err := blk.SetPositions(ps[i]); err != nil {
			return err
		}
	}
	return nil
}
