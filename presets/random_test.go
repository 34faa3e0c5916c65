package presets_test

import (
	"math/rand"
	"testing"
	"unicode/utf8"

	"github.com/BITIW/The-Great-Giordano/gioengine"
	"github.com/BITIW/The-Great-Giordano/presets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRandomBlocks_Shape draws blocks and checks every one stays within
// the rotor count range and uses only known color tokens.
func TestRandomBlocks_Shape(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	blocks := presets.RandomBlocks(rng, 20)
	require.Len(t, blocks, 20)

	for _, blk := range blocks {
		n := utf8.RuneCountInString(blk)
		assert.GreaterOrEqual(t, n, presets.MinBlockRotors)
		assert.LessOrEqual(t, n, presets.MaxBlockRotors)
		_, err := gioengine.NewBlock(blk, 26)
		assert.NoError(t, err, "block %q must build", blk)
	}
}

// TestRandomPositions_Shape mirrors the block layout and stays inside the
// alphabet.
func TestRandomPositions_Shape(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	blocks := presets.RandomBlocks(rng, 5)
	positions := presets.RandomPositions(rng, blocks, 26)
	require.Len(t, positions, len(blocks))

	for i, ps := range positions {
		assert.Len(t, ps, utf8.RuneCountInString(blocks[i]), "one offset per rotor")
		for _, p := range ps {
			assert.GreaterOrEqual(t, p, 0)
			assert.Less(t, p, 26)
		}
	}
}

// TestRandomPlugboard_Disjoint validates the drawn pairs against the
// engine's plugboard invariant and the requested count.
func TestRandomPlugboard_Disjoint(t *testing.T) {
	alphabet, err := gioengine.AlphabetByName(gioengine.Latin)
	require.NoError(t, err)
	codec, err := gioengine.NewCodec(alphabet)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(3))
	pairs := presets.RandomPlugboard(rng, alphabet, presets.DefaultPlugboardPairs)
	assert.Len(t, pairs, presets.DefaultPlugboardPairs)
	_, err = gioengine.NewPlugboard(pairs, codec)
	assert.NoError(t, err, "drawn pairs must be disjoint and in-alphabet")
}

// TestRandomPlugboard_Caps clamps oversized requests at half the
// alphabet and tolerates zero.
func TestRandomPlugboard_Caps(t *testing.T) {
	alphabet, err := gioengine.AlphabetByName(gioengine.Cyrillic)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(4))
	assert.Len(t, presets.RandomPlugboard(rng, alphabet, 100), len(alphabet)/2)
	assert.Empty(t, presets.RandomPlugboard(rng, alphabet, 0))
}

// TestGenerate builds a config the engine accepts and that round-trips a
// message.
func TestGenerate(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	p, ok := presets.ByName("balanced")
	require.True(t, ok)

	cfg, err := presets.Generate(rng, p, gioengine.Latin)
	require.NoError(t, err)
	assert.Len(t, cfg.Blocks, p.Blocks)
	assert.Len(t, cfg.RotorPositions, p.Blocks)
	assert.Len(t, cfg.Plugboard, presets.DefaultPlugboardPairs)

	enc, err := gioengine.New(cfg)
	require.NoError(t, err)
	dec, err := gioengine.New(cfg)
	require.NoError(t, err)
	msg := "generated machines must stay reversible"
	assert.Equal(t, msg, dec.Transform(enc.Transform(msg)))
}

// TestGenerate_UnknownAlphabet propagates the engine's tag validation.
func TestGenerate_UnknownAlphabet(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	p, ok := presets.ByName("minimal")
	require.True(t, ok)

	_, err := presets.Generate(rng, p, "klingon")
	assert.ErrorIs(t, err, gioengine.ErrUnknownAlphabet)
}

// TestGenerate_Deterministic reproduces the same config from the same
// seed.
func TestGenerate_Deterministic(t *testing.T) {
	p, ok := presets.ByName("minimal")
	require.True(t, ok)

	a, err := presets.Generate(rand.New(rand.NewSource(7)), p, gioengine.Cyrillic)
	require.NoError(t, err)
	b, err := presets.Generate(rand.New(rand.NewSource(7)), p, gioengine.Cyrillic)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
