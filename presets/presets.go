// Package presets ships the named machine shapes offered by the setup
// wizard and the random generation used to fill a Config from one of
// them.
package presets

// Preset is a named machine shape. Speed is a relative 0..10 hint shown
// in listings; bigger is faster.
type Preset struct {
	Name        string
	Description string
	Blocks      int
	Speed       int
}

// catalog order is the menu order.
var catalog = []Preset{
	{
		Name:        "minimal",
		Description: "3 blocks, short rotors. Fast, but on the weak side.",
		Blocks:      3,
		Speed:       8,
	},
	{
		Name:        "balanced",
		Description: "4 blocks, medium rotors. A good balance of speed and strength.",
		Blocks:      4,
		Speed:       7,
	},
	{
		Name:        "paranoia",
		Description: "12 blocks, long rotors. Slower, but maximum resistance.",
		Blocks:      12,
		Speed:       4,
	},
	{
		Name: "bladislav-voron",
		Description: "Little is known about Bladislav Voron: asking around earns more bruises " +
			"than facts. While one hand makes the Pacific quieter, the other guards your " +
			"mail behind 8388608 blocks. Sharing a planet with him is the real challenge.",
		Blocks: 8388608,
		Speed:  1,
	},
	{
		Name: "boronislav-vladon",
		Description: "While Bladislav was busy with matters of galactic scale, his elder cousin " +
			"Boronislav Vladon answered the call. Every record about him is sealed at every " +
			"clearance level. For his services he asked only 60 gigabytes of RAM and all the " +
			"compute you can spare: 134217728 blocks.",
		Blocks: 134217728,
		Speed:  0,
	},
	{
		Name:        "alexander-42",
		Description: "A respected figure around the neighborhood, called \"42\" after the number of blocks inside him.",
		Blocks:      42,
		Speed:       5,
	},
	{
		Name: "anatoly",
		Description: "Every company has its youngest. A single block and barely 81 bits, so he " +
			"prefers tea at home over anything stamped top secret, and for a quiet evening " +
			"that is plenty.",
		Blocks: 1,
		Speed:  10,
	},
}

// Catalog returns the presets in menu order. The returned slice is a
// copy.
func Catalog() []Preset {
	return append([]Preset(nil), catalog...)
}

// ByName finds a preset by its name.
func ByName(name string) (Preset, bool) {
	for _, p := range catalog {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
