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

	"github.com/spf13/cobra"

	"github.com/BITIW/The-Great-Giordano/presets"
)

// presetsCmd represents the presets command
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in configuration presets",
	Run: func(cmd *cobra.Command, args []string) {
		listPresets()
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}

func listPresets() {
	for i, p := range presets.Catalog() {
		fmt.Printf("%d) %s (%d blocks, speed %d/10)\n", i+1, p.Name, p.Blocks, p.Speed)
		fmt.Printf("   %s\n", p.Description)
	}
}
