package presets

import (
	"math/rand"
	"unicode/utf8"

	"github.com/BITIW/The-Great-Giordano/gioengine"
)

// Rotor counts drawn for a random block stay within this range.
const (
	MinBlockRotors = 3
	MaxBlockRotors = 9
)

// DefaultPlugboardPairs is the pair count used when generating a config
// from a preset. The engine itself accepts any disjoint pair count.
const DefaultPlugboardPairs = 8

// RandomBlocks draws count block strings, each holding MinBlockRotors to
// MaxBlockRotors rotors of random colors.
func RandomBlocks(rng *rand.Rand, count int) []string {
	colors := gioengine.Colors()
	blocks := make([]string, count)
	for i := range blocks {
		k := MinBlockRotors + rng.Intn(MaxBlockRotors-MinBlockRotors+1)
		rotors := make([]rune, k)
		for j := range rotors {
			rotors[j] = colors[rng.Intn(len(colors))]
		}
		blocks[i] = string(rotors)
	}
	return blocks
}

// RandomPositions draws one starting offset in [0, alphabetLen) per rotor
// for every block.
func RandomPositions(rng *rand.Rand, blocks []string, alphabetLen int) [][]int {
	positions := make([][]int, len(blocks))
	for i, blk := range blocks {
		ps := make([]int, utf8.RuneCountInString(blk))
		for j := range ps {
			ps[j] = rng.Intn(alphabetLen)
		}
		positions[i] = ps
	}
	return positions
}

// RandomPlugboard shuffles a copy of the alphabet and takes up to pairs
// disjoint pairs from the front, so the result always satisfies the
// engine's plugboard invariant.
func RandomPlugboard(rng *rand.Rand, alphabet []rune, pairs int) [][]string {
	pool := append([]rune(nil), alphabet...)
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if max := len(pool) / 2; pairs > max {
		pairs = max
	}
	if pairs < 0 {
		pairs = 0
	}
	out := make([][]string, 0, pairs)
	for i := 0; i < pairs; i++ {
		out = append(out, []string{string(pool[2*i]), string(pool[2*i+1])})
	}
	return out
}

// Generate fills a Config from a preset: random blocks, random starting
// offsets, and a default-count random plugboard.
func Generate(rng *rand.Rand, p Preset, alphabetTag string) (*gioengine.Config, error) {
	alphabet, err := gioengine.AlphabetByName(alphabetTag)
	if err != nil {
		return nil, err
	}
	blocks := RandomBlocks(rng, p.Blocks)
	return &gioengine.Config{
		Alphabet:       alphabetTag,
		Plugboard:      RandomPlugboard(rng, alphabet, DefaultPlugboardPairs),
		Blocks:         blocks,
		RotorPositions: RandomPositions(rng, blocks, len(alphabet)),
	}, nil
}
