/*
Copyright © 2025 BITIW

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BITIW/The-Great-Giordano/perf"
)

var (
	benchOutput    string
	benchBaseline  string
	benchThreshold float64
)

// benchCmd represents the bench command
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark the configured machine",
	Long: `Run the standard workload ladder against the configured machine, verify
each workload round trips, and print the timings.  The report can be saved as
JSON and compared against a previously saved baseline.`,
	Run: func(cmd *cobra.Command, args []string) {
		bench()
	},
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().StringVar(&benchOutput, "output", "", "write the report as JSON to this file")
	benchCmd.Flags().StringVar(&benchBaseline, "baseline", "", "compare the run against a previously saved report")
	benchCmd.Flags().Float64Var(&benchThreshold, "threshold", 0.15, "regression threshold as a fraction of the baseline timing")
}

func bench() {
	cfg := loadMachineConfig()
	rep, err := perf.BuildReport(cfg, perf.DefaultWorkloads())
	cobra.CheckErr(err)
	fmt.Print(rep.RenderText())

	if benchOutput != "" {
		cobra.CheckErr(rep.Save(benchOutput))
		fmt.Fprintln(os.Stderr, "Report written to:", benchOutput)
	}
	if benchBaseline != "" {
		baseline, err := perf.LoadReport(benchBaseline)
		cobra.CheckErr(err)
		diff := perf.CompareReports(baseline, rep, benchThreshold)
		fmt.Print(diff.RenderText())
		if diff.HasRegressions() {
			os.Exit(1)
		}
	}
}
