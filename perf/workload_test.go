package perf

import (
	"strings"
	"testing"

	"github.com/BITIW/The-Great-Giordano/gioengine"
)

func testConfig() *gioengine.Config {
	return &gioengine.Config{
		Alphabet:  "latin",
		Plugboard: [][]string{{"a", "z"}},
		Blocks:    []string{"КБ", "ЧЗР"},
	}
}

func TestWorkloadConfigValidate(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		cfg     WorkloadConfig
		wantErr string
	}{
		{"valid", WorkloadConfig{Name: "small", Size: 10, Seed: 1}, ""},
		{"missing name", WorkloadConfig{Size: 10}, "name is required"},
		{"zero size", WorkloadConfig{Name: "zero", Size: 0}, "size must be positive"},
		{"negative size", WorkloadConfig{Name: "neg", Size: -5}, "size must be positive"},
	}
	for _, tc := range cases {
		err := tc.cfg.Validate()
		if tc.wantErr == "" {
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", tc.name, err)
			}
			continue
		}
		if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
			t.Fatalf("%s: expected error containing %q, got %v", tc.name, tc.wantErr, err)
		}
	}
}

func TestDefaultWorkloads(t *testing.T) {
	t.Parallel()
	wls := DefaultWorkloads()
	wantSizes := []int{10, 100, 1000, 10000, 50000, 1000000}
	if len(wls) != len(wantSizes) {
		t.Fatalf("expected %d workloads, got %d", len(wantSizes), len(wls))
	}
	for i, wl := range wls {
		if wl.Size != wantSizes[i] {
			t.Fatalf("workload %d: expected size %d, got %d", i, wantSizes[i], wl.Size)
		}
		if err := wl.Validate(); err != nil {
			t.Fatalf("workload %d failed validation: %v", i, err)
		}
	}
}

func TestRunRoundTrips(t *testing.T) {
	t.Parallel()
	m, err := Run(testConfig(), WorkloadConfig{Name: "small", Size: 200, Seed: 7})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !m.KATPass {
		t.Fatalf("round trip failed: %+v", m)
	}
	if m.Size != 200 || m.Name != "small" {
		t.Fatalf("metrics not tagged with the workload: %+v", m)
	}
	if m.EncryptSeconds <= 0 || m.DecryptSeconds <= 0 || m.KATSeconds <= 0 {
		t.Fatalf("expected positive timings: %+v", m)
	}
	if m.CharsPerSecond <= 0 {
		t.Fatalf("expected positive throughput, got %.2f", m.CharsPerSecond)
	}
}

func TestRunCyrillic(t *testing.T) {
	t.Parallel()
	cfg := &gioengine.Config{
		Alphabet: "cyrillic",
		Blocks:   []string{"КБЧ"},
	}
	m, err := Run(cfg, WorkloadConfig{Name: "cyr", Size: 150, Seed: 3})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !m.KATPass {
		t.Fatalf("round trip failed for cyrillic: %+v", m)
	}
}

func TestRunRejectsBadWorkload(t *testing.T) {
	t.Parallel()
	if _, err := Run(testConfig(), WorkloadConfig{Name: "", Size: 10}); err == nil {
		t.Fatal("expected validation error for empty name")
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	t.Parallel()
	cfg := &gioengine.Config{Alphabet: "klingon", Blocks: []string{"К"}}
	if _, err := Run(cfg, WorkloadConfig{Name: "small", Size: 10, Seed: 1}); err == nil {
		t.Fatal("expected error for unknown alphabet")
	}
}
