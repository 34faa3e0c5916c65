// Package perf drives synthetic cipher workloads and captures their
// timings for the bench command.
package perf

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/BITIW/The-Great-Giordano/gioengine"
)

// WorkloadConfig describes one synthetic workload: a seeded random
// in-alphabet text of Size characters pushed through the machine.
type WorkloadConfig struct {
	Name string `json:"name"`
	Size int    `json:"size"`
	Seed int64  `json:"seed"`
}

// Validate ensures the workload configuration is well formed.
func (cfg WorkloadConfig) Validate() error {
	if strings.TrimSpace(cfg.Name) == "" {
		return errors.New("name is required")
	}
	if cfg.Size <= 0 {
		return fmt.Errorf("size must be positive (got %d)", cfg.Size)
	}
	return nil
}

// DefaultWorkloads returns the standard size ladder.
func DefaultWorkloads() []WorkloadConfig {
	sizes := []int{10, 100, 1000, 10000, 50000, 1000000}
	wls := make([]WorkloadConfig, len(sizes))
	for i, size := range sizes {
		wls[i] = WorkloadConfig{
			Name: fmt.Sprintf("size_%d", size),
			Size: size,
			Seed: int64(i + 1),
		}
	}
	return wls
}

// Metrics captures the outcome of one workload run.
type Metrics struct {
	Name           string  `json:"name"`
	Size           int     `json:"size"`
	KATPass        bool    `json:"kat_pass"`
	KATSeconds     float64 `json:"kat_seconds"`
	EncryptSeconds float64 `json:"encrypt_seconds"`
	DecryptSeconds float64 `json:"decrypt_seconds"`
	CharsPerSecond float64 `json:"chars_per_second"`
}

// Run executes one workload against cfg. A fresh machine is built for
// every pass so each starts from the configured offsets.
func Run(cfg *gioengine.Config, wl WorkloadConfig) (Metrics, error) {
	if err := wl.Validate(); err != nil {
		return Metrics{}, err
	}
	alphabet, err := gioengine.AlphabetByName(cfg.Alphabet)
	if err != nil {
		return Metrics{}, err
	}
	rng := rand.New(rand.NewSource(wl.Seed))
	var sb strings.Builder
	sb.Grow(wl.Size)
	for i := 0; i < wl.Size; i++ {
		sb.WriteRune(alphabet[rng.Intn(len(alphabet))])
	}
	text := sb.String()

	m := Metrics{Name: wl.Name, Size: wl.Size}

	// Round trip first: encrypt with one machine, decrypt with a second,
	// compare against the original text.
	katStart := time.Now()
	enc, err := gioengine.New(cfg)
	if err != nil {
		return Metrics{}, err
	}
	cipher := enc.Transform(text)
	dec, err := gioengine.New(cfg)
	if err != nil {
		return Metrics{}, err
	}
	m.KATPass = dec.Transform(cipher) == text
	m.KATSeconds = time.Since(katStart).Seconds()

	encStart := time.Now()
	e, err := gioengine.New(cfg)
	if err != nil {
		return Metrics{}, err
	}
	_ = e.Transform(text)
	m.EncryptSeconds = time.Since(encStart).Seconds()

	decStart := time.Now()
	d, err := gioengine.New(cfg)
	if err != nil {
		return Metrics{}, err
	}
	_ = d.Transform(cipher)
	m.DecryptSeconds = time.Since(decStart).Seconds()

	if m.EncryptSeconds > 0 {
		m.CharsPerSecond = float64(wl.Size) / m.EncryptSeconds
	}
	return m, nil
}
