package gioengine

import "unicode/utf8"

// Config describes a machine. It is read at construction and never
// written back by the engine.
//
// The JSON form is the persisted wire format:
//
//	{
//	  "alphabet": "latin",
//	  "plugboard": [["a", "b"]],
//	  "blocks": ["КБЧ"],
//	  "rotor_positions": [[0, 1, 2]]
//	}
//
// RotorPositions is either empty, which means every rotor starts at
// offset 0, or holds exactly one offset vector per block with one entry
// per rotor in that block.
type Config struct {
	Alphabet       string     `json:"alphabet" mapstructure:"alphabet"`
	Plugboard      [][]string `json:"plugboard" mapstructure:"plugboard"`
	Blocks         []string   `json:"blocks" mapstructure:"blocks"`
	RotorPositions [][]int    `json:"rotor_positions" mapstructure:"rotor_positions"`
}

// TotalRotors counts the rotor tokens across all blocks.
func (c *Config) TotalRotors() int {
	n := 0
	for _, blk := range c.Blocks {
		n += utf8.RuneCountInString(blk)
	}
	return n
}

// PlugboardPairs returns the number of configured pairs.
func (c *Config) PlugboardPairs() int { return len(c.Plugboard) }
