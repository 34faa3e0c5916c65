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
	"golang.org/x/term"

	"github.com/BITIW/The-Great-Giordano/gioengine"
)

var (
	useASCII85  bool
	usePem      bool
	compression bool
	msgText     string
)

const pemMessageType = "GIORDANO MESSAGE"

// encryptCmd represents the encrypt command
var encryptCmd = &cobra.Command{
	Use:   "encrypt [message]",
	Short: "Encrypt text with the configured machine",
	Long: `Encrypt text with the configured rotor machine.  The message is taken
from the command line arguments, the --text flag, an interactive prompt, or
the input file, in that order.`,
	Run: func(cmd *cobra.Command, args []string) {
		encrypt(args)
	},
}

func init() {
	rootCmd.AddCommand(encryptCmd)
	encryptCmd.Flags().BoolVarP(&useASCII85, "useASCII85", "a", false, "use ASCII85 encoding")
	encryptCmd.Flags().BoolVarP(&usePem, "usePem", "p", false, "use PEM encoding.")
	encryptCmd.Flags().BoolVarP(&compression, "compress", "c", false, "compress the ciphertext using flate")
	encryptCmd.Flags().StringVarP(&msgText, "text", "t", "", "the message to encrypt")
}

// getMessage returns the text to transform, the destination file, and
// whether the text arrived as a single message rather than a stream.
func getMessage(args []string, encode bool) (string, *os.File, bool) {
	if len(args) > 0 {
		return strings.Join(args, " "), messageOutput(), true
	}
	if msgText != "" {
		return msgText, messageOutput(), true
	}
	if inputFileName == "-" && term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprint(os.Stderr, "Message: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		checkError(err)
		return strings.TrimRight(line, "\r\n"), messageOutput(), true
	}
	fin, fout := getInputAndOutputFiles(encode)
	data, err := io.ReadAll(fin)
	cobra.CheckErr(err)
	if fin != os.Stdin {
		fin.Close()
	}
	return string(data), fout, false
}

// messageOutput returns the destination for single-message runs: the
// named output file, or stdout.
func messageOutput() *os.File {
	if len(outputFileName) > 0 && outputFileName != "-" {
		fout, err := os.Create(outputFileName)
		cobra.CheckErr(err)
		return fout
	}
	return os.Stdout
}

func encrypt(args []string) {
	cfg := loadMachineConfig()
	machine, err := gioengine.New(cfg)
	cobra.CheckErr(err)

	plaintext, fout, lineMode := getMessage(args, true)
	defer fout.Close()
	ciphertext := machine.Transform(plaintext)

	var blck pem.Block
	if usePem {
		blck.Headers = make(map[string]string)
		blck.Type = pemMessageType
		blck.Headers["Alphabet"] = cfg.Alphabet
		blck.Headers["Compression"] = fmt.Sprintf("%v", compression)
		if !lineMode && len(inputFileName) > 0 && inputFileName != "-" {
			blck.Headers["FileName"] = inputFileName
		}
	}

	var rdr io.Reader = strings.NewReader(ciphertext)
	if compression {
		rdr = flate.ToFlate(rdr)
	}
	switch {
	case useASCII85:
		_, err = io.Copy(fout, lines.SplitToLines(ascii85.ToASCII85(rdr)))
	case usePem:
		_, err = io.Copy(fout, pem.ToPem(bufio.NewReader(rdr), blck))
	default:
		_, err = io.Copy(fout, rdr)
		if err == nil && lineMode && !compression {
			fmt.Fprintln(fout)
		}
	}
	checkError(err)
}
