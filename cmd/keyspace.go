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

	"github.com/BITIW/The-Great-Giordano/gioengine"
)

// keyspaceCmd represents the keyspace command
var keyspaceCmd = &cobra.Command{
	Use:   "keyspace",
	Short: "Show the keyspace of the configured machine",
	Long: `Show the keyspace of the configured machine in bits, computed from the
alphabet size, the total rotor count, and the plugboard pairing count.`,
	Run: func(cmd *cobra.Command, args []string) {
		keyspace()
	},
}

func init() {
	rootCmd.AddCommand(keyspaceCmd)
}

func keyspace() {
	cfg := loadMachineConfig()
	alphabet, err := gioengine.AlphabetByName(cfg.Alphabet)
	cobra.CheckErr(err)
	a := len(alphabet)
	r := cfg.TotalRotors()
	p := cfg.PlugboardPairs()
	fmt.Printf("keyspace: %.3f bits (A = %d, R = %d, P = %d)\n", gioengine.KeyspaceBits(a, r, p), a, r, p)
}
