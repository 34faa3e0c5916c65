package gioengine

import "errors"

// Configuration errors reported while building a Machine. All of them are
// fatal: construction is all-or-nothing, and Transform itself never fails.
var (
	// ErrEmptyAlphabet is returned when an alphabet has no characters.
	ErrEmptyAlphabet = errors.New("gioengine: alphabet must not be empty")

	// ErrDuplicateChar is returned when an alphabet repeats a character.
	ErrDuplicateChar = errors.New("gioengine: alphabet contains a duplicate character")

	// ErrUnknownAlphabet is returned for an alphabet tag other than the
	// built-in "latin" and "cyrillic".
	ErrUnknownAlphabet = errors.New("gioengine: unknown alphabet")

	// ErrUnknownColor is returned when a block string contains a token
	// outside the ten color tokens.
	ErrUnknownColor = errors.New("gioengine: unknown rotor color")

	// ErrEmptyBlock is returned when a block string has no tokens.
	ErrEmptyBlock = errors.New("gioengine: block must contain at least one rotor")

	// ErrPlugboardPair is returned when a pair does not name exactly two
	// single characters.
	ErrPlugboardPair = errors.New("gioengine: plugboard pair must name exactly two characters")

	// ErrPlugboardChar is returned when a paired character is not in the
	// chosen alphabet.
	ErrPlugboardChar = errors.New("gioengine: plugboard character outside alphabet")

	// ErrPlugboardSelfPair is returned when a character is paired with
	// itself.
	ErrPlugboardSelfPair = errors.New("gioengine: plugboard pairs a character with itself")

	// ErrPlugboardOverlap is returned when a character appears in more
	// than one pair.
	ErrPlugboardOverlap = errors.New("gioengine: plugboard character already paired")

	// ErrPositionCount is returned when rotor_positions does not match the
	// machine shape one-to-one.
	ErrPositionCount = errors.New("gioengine: rotor positions do not match machine shape")
)
