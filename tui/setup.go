// Package tui implements the interactive setup wizard that assembles a
// machine configuration.
package tui

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/BITIW/The-Great-Giordano/gioengine"
	"github.com/BITIW/The-Great-Giordano/presets"
)

// SetupState identifies the wizard screen.
type SetupState int

const (
	StateLoadExisting SetupState = iota
	StateAlphabet
	StatePreset
	StatePlugboardMode
	StatePlugboardPairs
	StateBlockCount
	StateSave
	StateDone
)

// Setup is the wizard model. Drive it with a tea.Program; once Run
// returns, Config, ShouldSave and Aborted describe the outcome.
type Setup struct {
	rng      *rand.Rand
	existing *gioengine.Config

	state  SetupState
	input  string
	status string

	alphabetTag string
	alphabet    []rune
	codec       *gioengine.Codec
	pairs       [][]string

	cfg     *gioengine.Config
	save    bool
	loaded  bool
	aborted bool
}

// NewSetup builds the wizard. existing is the configuration already on
// disk, or nil; when present the wizard first offers to load it.
func NewSetup(existing *gioengine.Config, rng *rand.Rand) *Setup {
	s := &Setup{rng: rng, existing: existing, state: StateAlphabet}
	if existing != nil {
		s.state = StateLoadExisting
	}
	return s
}

// Config returns the assembled configuration, nil until the wizard
// reaches its final screen.
func (s *Setup) Config() *gioengine.Config { return s.cfg }

// ShouldSave reports whether the user asked to persist the result.
func (s *Setup) ShouldSave() bool { return s.save }

// LoadedExisting reports whether the wizard reused the configuration
// already on disk.
func (s *Setup) LoadedExisting() bool { return s.loaded }

// Aborted reports whether the user quit before finishing.
func (s *Setup) Aborted() bool { return s.aborted }

// State returns the current wizard screen.
func (s *Setup) State() SetupState { return s.state }

// Init implements tea.Model.
func (s *Setup) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (s *Setup) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *Setup) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		s.aborted = true
		return s, tea.Quit
	case "enter":
		line := strings.TrimSpace(s.input)
		s.input = ""
		s.status = ""
		return s.submit(line)
	case "backspace":
		if s.input != "" {
			runes := []rune(s.input)
			s.input = string(runes[:len(runes)-1])
		}
	default:
		// Single printable characters only; the plugboard screen takes
		// cyrillic input, so count runes rather than bytes.
		if utf8.RuneCountInString(msg.String()) == 1 {
			s.input += msg.String()
		}
	}
	return s, nil
}

func (s *Setup) submit(line string) (tea.Model, tea.Cmd) {
	switch s.state {
	case StateLoadExisting:
		return s.submitLoadExisting(line)
	case StateAlphabet:
		return s.submitAlphabet(line)
	case StatePreset:
		return s.submitPreset(line)
	case StatePlugboardMode:
		return s.submitPlugboardMode(line)
	case StatePlugboardPairs:
		return s.submitPlugboardPair(line)
	case StateBlockCount:
		return s.submitBlockCount(line)
	case StateSave:
		return s.submitSave(line)
	}
	return s, nil
}

func (s *Setup) submitLoadExisting(line string) (tea.Model, tea.Cmd) {
	switch strings.ToLower(line) {
	case "y", "yes":
		s.cfg = s.existing
		s.loaded = true
		s.state = StateDone
		return s, tea.Quit
	case "n", "no":
		s.state = StateAlphabet
	default:
		s.status = "answer y or n"
	}
	return s, nil
}

func (s *Setup) submitAlphabet(line string) (tea.Model, tea.Cmd) {
	var tag string
	switch line {
	case "1":
		tag = gioengine.Latin
	case "2":
		tag = gioengine.Cyrillic
	default:
		s.status = "choose 1 or 2"
		return s, nil
	}
	alphabet, err := gioengine.AlphabetByName(tag)
	if err != nil {
		s.status = err.Error()
		return s, nil
	}
	codec, err := gioengine.NewCodec(alphabet)
	if err != nil {
		s.status = err.Error()
		return s, nil
	}
	s.alphabetTag = tag
	s.alphabet = alphabet
	s.codec = codec
	s.state = StatePreset
	return s, nil
}

func (s *Setup) submitPreset(line string) (tea.Model, tea.Cmd) {
	if line == "" || line == "0" {
		s.state = StatePlugboardMode
		return s, nil
	}
	catalog := presets.Catalog()
	n, err := strconv.Atoi(line)
	if err != nil || n < 1 || n > len(catalog) {
		s.status = fmt.Sprintf("choose 0 to %d", len(catalog))
		return s, nil
	}
	cfg, err := presets.Generate(s.rng, catalog[n-1], s.alphabetTag)
	if err != nil {
		s.status = err.Error()
		return s, nil
	}
	s.cfg = cfg
	s.state = StateSave
	return s, nil
}

func (s *Setup) submitPlugboardMode(line string) (tea.Model, tea.Cmd) {
	switch line {
	case "1":
		s.pairs = nil
		s.state = StatePlugboardPairs
	case "2", "":
		s.pairs = presets.RandomPlugboard(s.rng, s.alphabet, presets.DefaultPlugboardPairs)
		s.status = fmt.Sprintf("generated %d random pairs", len(s.pairs))
		s.state = StateBlockCount
	default:
		s.status = "choose 1 or 2"
	}
	return s, nil
}

func (s *Setup) submitPlugboardPair(line string) (tea.Model, tea.Cmd) {
	if line == "" {
		s.state = StateBlockCount
		return s, nil
	}
	parts := strings.Fields(line)
	if len(parts) != 2 {
		s.status = "enter exactly two characters separated by a space"
		return s, nil
	}
	candidate := append(append([][]string{}, s.pairs...), []string{parts[0], parts[1]})
	if _, err := gioengine.NewPlugboard(candidate, s.codec); err != nil {
		s.status = err.Error()
		return s, nil
	}
	s.pairs = candidate
	s.status = fmt.Sprintf("paired %s and %s", parts[0], parts[1])
	return s, nil
}

func (s *Setup) submitBlockCount(line string) (tea.Model, tea.Cmd) {
	n, err := strconv.Atoi(line)
	if err != nil || n <= 0 {
		n = 4
	}
	blocks := presets.RandomBlocks(s.rng, n)
	s.cfg = &gioengine.Config{
		Alphabet:       s.alphabetTag,
		Plugboard:      s.pairs,
		Blocks:         blocks,
		RotorPositions: presets.RandomPositions(s.rng, blocks, len(s.alphabet)),
	}
	s.state = StateSave
	return s, nil
}

func (s *Setup) submitSave(line string) (tea.Model, tea.Cmd) {
	switch strings.ToLower(line) {
	case "y", "yes":
		s.save = true
	case "n", "no":
		s.save = false
	default:
		s.status = "answer y or n"
		return s, nil
	}
	s.state = StateDone
	return s, tea.Quit
}

// View implements tea.Model.
func (s *Setup) View() string {
	var sb strings.Builder
	sb.WriteString("The Great Giordano setup\n")
	sb.WriteString("========================\n\n")

	switch s.state {
	case StateLoadExisting:
		sb.WriteString("Found an existing configuration. Load it? (y/n)\n")
	case StateAlphabet:
		sb.WriteString("Choose an alphabet:\n")
		sb.WriteString("  1) latin\n")
		sb.WriteString("  2) cyrillic\n")
	case StatePreset:
		sb.WriteString("Configuration:\n")
		sb.WriteString("  0) configure everything myself\n")
		for i, p := range presets.Catalog() {
			fmt.Fprintf(&sb, "  %d) %s (%d blocks, speed %d/10)\n", i+1, p.Name, p.Blocks, p.Speed)
			fmt.Fprintf(&sb, "     %s\n", p.Description)
		}
	case StatePlugboardMode:
		sb.WriteString("Plugboard:\n")
		sb.WriteString("  1) enter pairs manually\n")
		sb.WriteString("  2) generate randomly\n")
	case StatePlugboardPairs:
		sb.WriteString("Enter pairs like 'a b'. An empty line finishes.\n")
		if len(s.pairs) > 0 {
			fmt.Fprintf(&sb, "pairs so far: %s\n", renderPairs(s.pairs))
		}
	case StateBlockCount:
		fmt.Fprintf(&sb, "plugboard: %d pairs\n", len(s.pairs))
		sb.WriteString("How many rotor blocks? (default 4)\n")
	case StateSave:
		sb.WriteString(s.renderSummary())
		sb.WriteString("\nSave the configuration? (y/n)\n")
	case StateDone:
		sb.WriteString(s.renderSummary())
		if s.loaded {
			sb.WriteString("\nloaded the existing configuration\n")
		} else {
			sb.WriteString("\nsetup complete\n")
		}
		return sb.String()
	}

	if s.status != "" {
		fmt.Fprintf(&sb, "\n%s\n", s.status)
	}
	fmt.Fprintf(&sb, "\n> %s█\n", s.input)
	return sb.String()
}

func (s *Setup) renderSummary() string {
	if s.cfg == nil {
		return ""
	}
	alphabet, err := gioengine.AlphabetByName(s.cfg.Alphabet)
	if err != nil {
		return ""
	}
	bits := gioengine.KeyspaceBits(len(alphabet), s.cfg.TotalRotors(), s.cfg.PlugboardPairs())
	var sb strings.Builder
	fmt.Fprintf(&sb, "alphabet:  %s (%d characters)\n", s.cfg.Alphabet, len(alphabet))
	fmt.Fprintf(&sb, "blocks:    %d (%d rotors)\n", len(s.cfg.Blocks), s.cfg.TotalRotors())
	fmt.Fprintf(&sb, "plugboard: %d pairs\n", s.cfg.PlugboardPairs())
	fmt.Fprintf(&sb, "keyspace:  %.3f bits\n", bits)
	return sb.String()
}

func renderPairs(pairs [][]string) string {
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = p[0] + p[1]
	}
	return strings.Join(parts, " ")
}
