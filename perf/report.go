package perf

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BITIW/The-Great-Giordano/gioengine"
)

// ReportVersion identifies the report schema.
const ReportVersion = "1"

// Report captures a full bench run for one machine configuration.
type Report struct {
	Version        string    `json:"version"`
	GeneratedAt    time.Time `json:"generated_at"`
	Alphabet       string    `json:"alphabet"`
	AlphabetLen    int       `json:"alphabet_len"`
	TotalRotors    int       `json:"total_rotors"`
	PlugboardPairs int       `json:"plugboard_pairs"`
	KeyspaceBits   float64   `json:"keyspace_bits"`
	Workloads      []Metrics `json:"workloads"`
}

// BuildReport runs every workload against cfg and assembles the report.
func BuildReport(cfg *gioengine.Config, workloads []WorkloadConfig) (Report, error) {
	alphabet, err := gioengine.AlphabetByName(cfg.Alphabet)
	if err != nil {
		return Report{}, err
	}
	rep := Report{
		Version:        ReportVersion,
		GeneratedAt:    time.Now().UTC(),
		Alphabet:       cfg.Alphabet,
		AlphabetLen:    len(alphabet),
		TotalRotors:    cfg.TotalRotors(),
		PlugboardPairs: cfg.PlugboardPairs(),
		KeyspaceBits:   gioengine.KeyspaceBits(len(alphabet), cfg.TotalRotors(), cfg.PlugboardPairs()),
	}
	for _, wl := range workloads {
		m, err := Run(cfg, wl)
		if err != nil {
			return Report{}, fmt.Errorf("workload %s: %w", wl.Name, err)
		}
		rep.Workloads = append(rep.Workloads, m)
	}
	return rep, nil
}

// RenderText returns a human-readable summary of the report.
func (r Report) RenderText() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "keyspace: %.3f bits (A = %d, R = %d, P = %d)\n",
		r.KeyspaceBits, r.AlphabetLen, r.TotalRotors, r.PlugboardPairs)
	for _, wl := range r.Workloads {
		status := "pass"
		if !wl.KATPass {
			status = "FAILED"
		}
		fmt.Fprintf(&sb, "%8d chars: encrypt %.6fs, decrypt %.6fs, round trip %.6fs, KAT: %s\n",
			wl.Size, wl.EncryptSeconds, wl.DecryptSeconds, wl.KATSeconds, status)
	}
	return sb.String()
}

// MetricDelta summarises one timing change between two reports.
type MetricDelta struct {
	Workload      string  `json:"workload"`
	Metric        string  `json:"metric"`
	Baseline      float64 `json:"baseline"`
	Current       float64 `json:"current"`
	ChangePercent float64 `json:"change_percent"`
	Regression    bool    `json:"regression"`
}

// DiffResult holds the deltas between a baseline and a current run.
type DiffResult struct {
	Threshold   float64       `json:"threshold"`
	Deltas      []MetricDelta `json:"deltas"`
	Regressions []MetricDelta `json:"regressions"`
}

// HasRegressions reports whether any metric slowed past the threshold.
func (d DiffResult) HasRegressions() bool {
	return len(d.Regressions) > 0
}

// RenderText returns a human-readable summary of the diff.
func (d DiffResult) RenderText() string {
	if len(d.Deltas) == 0 {
		return "no overlapping workloads between baseline and current run\n"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "timing diff (threshold %.1f%%)\n", d.Threshold*100)
	for _, delta := range d.Deltas {
		status := "ok"
		if delta.Regression {
			status = "REGRESSION"
		}
		fmt.Fprintf(&sb, "  %s %s: %.6fs -> %.6fs (%+.2f%%) [%s]\n",
			delta.Workload, delta.Metric, delta.Baseline, delta.Current, delta.ChangePercent, status)
	}
	return sb.String()
}

// CompareReports diffs the timings of workloads present in both reports.
// The threshold is a fraction: 0.15 flags anything over 15% slower.
func CompareReports(baseline, current Report, threshold float64) DiffResult {
	baseMap := make(map[string]Metrics, len(baseline.Workloads))
	for _, wl := range baseline.Workloads {
		baseMap[wl.Name] = wl
	}

	deltas := make([]MetricDelta, 0, len(current.Workloads)*2)
	for _, curr := range current.Workloads {
		base, ok := baseMap[curr.Name]
		if !ok {
			continue
		}
		deltas = append(deltas,
			makeDelta(curr.Name, "encrypt_seconds", base.EncryptSeconds, curr.EncryptSeconds, threshold),
			makeDelta(curr.Name, "decrypt_seconds", base.DecryptSeconds, curr.DecryptSeconds, threshold),
		)
	}
	sort.Slice(deltas, func(i, j int) bool {
		if deltas[i].Workload != deltas[j].Workload {
			return deltas[i].Workload < deltas[j].Workload
		}
		return deltas[i].Metric < deltas[j].Metric
	})

	var regressions []MetricDelta
	for _, delta := range deltas {
		if delta.Regression {
			regressions = append(regressions, delta)
		}
	}
	return DiffResult{
		Threshold:   threshold,
		Deltas:      deltas,
		Regressions: regressions,
	}
}

func makeDelta(workload, metric string, base, curr, threshold float64) MetricDelta {
	delta := MetricDelta{
		Workload: workload,
		Metric:   metric,
		Baseline: base,
		Current:  curr,
	}
	if base != 0 {
		delta.ChangePercent = ((curr - base) / base) * 100
	}
	if base > 0 {
		delta.Regression = curr > base*(1+threshold)
	}
	return delta
}

// LoadReport reads a report from disk.
func LoadReport(path string) (Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Report{}, err
	}
	var rep Report
	if err := json.Unmarshal(data, &rep); err != nil {
		return Report{}, fmt.Errorf("parse report %s: %w", path, err)
	}
	return rep, nil
}

// Save persists the report as indented JSON, creating missing
// directories along the way.
func (r Report) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
