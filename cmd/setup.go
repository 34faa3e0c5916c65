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
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/BITIW/The-Great-Giordano/gioengine"
	"github.com/BITIW/The-Great-Giordano/tui"
)

// setupCmd represents the setup command
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactively build a machine configuration",
	Long: `Walk through choosing an alphabet, a preset or a manual rotor and
plugboard layout, and optionally save the result as the configuration file.`,
	Run: func(cmd *cobra.Command, args []string) {
		setup()
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func setup() {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		cobra.CheckErr("setup needs an interactive terminal")
	}

	// Offer the configuration already on disk, if viper found one.
	var existing *gioengine.Config
	if viper.ConfigFileUsed() != "" {
		var cfg gioengine.Config
		if err := viper.Unmarshal(&cfg); err == nil && len(cfg.Blocks) > 0 {
			existing = &cfg
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	wizard := tui.NewSetup(existing, rng)
	final, err := tea.NewProgram(wizard).Run()
	cobra.CheckErr(err)

	result := final.(*tui.Setup)
	if result.Aborted() {
		fmt.Fprintln(os.Stderr, "setup aborted")
		return
	}
	cfg := result.Config()
	if cfg == nil || result.LoadedExisting() {
		return
	}
	if result.ShouldSave() {
		path := configFilePath()
		cobra.CheckErr(saveMachineConfig(cfg, path))
		fmt.Fprintln(os.Stderr, "Configuration saved to:", path)
	}
}
