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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bgallie/filters/ascii85"
	"github.com/bgallie/filters/flate"
	"github.com/bgallie/filters/lines"
	"github.com/bgallie/filters/pem"
	"github.com/spf13/cobra"

	"github.com/BITIW/The-Great-Giordano/gioengine"
)

// decryptCmd represents the decrypt command
var decryptCmd = &cobra.Command{
	Use:   "decrypt [message]",
	Short: "Decrypt text encrypted by the configured machine",
	Long: `Decrypt text produced by the encrypt command.  PEM armor is detected
automatically; ASCII85 armor and flate compression of unarmored input must be
named with the flags they were encrypted with.`,
	Run: func(cmd *cobra.Command, args []string) {
		decrypt(args)
	},
}

func init() {
	rootCmd.AddCommand(decryptCmd)
	decryptCmd.Flags().BoolVarP(&useASCII85, "useASCII85", "a", false, "the input is ASCII85 encoded")
	decryptCmd.Flags().BoolVarP(&compression, "compress", "c", false, "the ciphertext was compressed using flate")
	decryptCmd.Flags().StringVarP(&msgText, "text", "t", "", "the message to decrypt")
}

func decrypt(args []string) {
	cfg := loadMachineConfig()
	machine, err := gioengine.New(cfg)
	cobra.CheckErr(err)

	ciphertext, fout, lineMode := getMessage(args, false)
	defer fout.Close()

	bRdr := bufio.NewReader(strings.NewReader(ciphertext))
	var rdr io.Reader
	peeked, err := bRdr.Peek(5)
	checkError(err)
	if string(peeked) == "-----" {
		var blck pem.Block
		var pRdr *io.PipeReader
		pRdr, blck = pem.FromPem(bRdr)
		if alphabet, ok := blck.Headers["Alphabet"]; ok && alphabet != cfg.Alphabet {
			fmt.Fprintf(os.Stderr, "Warning: the message was encrypted with the %q alphabet, the machine is configured for %q.\n",
				alphabet, cfg.Alphabet)
		}
		if cmpr, ok := blck.Headers["Compression"]; ok {
			compression = cmpr == "true"
		}
		if !lineMode && len(outputFileName) == 0 {
			if fName, ok := blck.Headers["FileName"]; ok && len(fName) > 0 {
				fout, err = os.Create(fName)
				checkError(err)
			}
		}
		rdr = pRdr
	} else if useASCII85 {
		rdr = ascii85.FromASCII85(lines.CombineLines(bRdr))
	} else {
		rdr = bRdr
	}
	if compression {
		rdr = flate.FromFlate(rdr)
	}

	data, err := io.ReadAll(rdr)
	checkError(err)
	plaintext := machine.Transform(string(data))
	if lineMode {
		fmt.Fprintln(fout, plaintext)
	} else {
		_, err = io.WriteString(fout, plaintext)
		checkError(err)
	}
}
