// Copyright Silogic Systems Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/silogic/go-svsem/pkg/svlang/ast"
	"github.com/silogic/go-svsem/pkg/svlang/sem"
	"github.com/silogic/go-svsem/pkg/util/source"
)

// replCmd runs an interactive loop expanding format templates.
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactively expand format templates.",
	Long: "Run an interactive loop reading format templates and arguments, expanding each " +
		"line as a display call would.  Lines starting with \":display\" render their " +
		"arguments in default representation instead; \":quit\" exits.",
	Run: func(cmd *cobra.Command, args []string) {
		comp := sem.NewCompilation(readOptions(cmd))
		scope := comp.RootScope()
		//
		rl, err := readline.New("svsem> ")
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		defer rl.Close()
		// Only greet an interactive user.
		if term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Println("svsem format repl (:quit to exit)")
		}
		//
		for {
			line, err := rl.Readline()
			if err == readline.ErrInterrupt {
				continue
			} else if err == io.EOF || err != nil {
				break
			}
			//
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			} else if line == ":quit" {
				break
			}
			//
			display := false
			//
			if rest, ok := strings.CutPrefix(line, ":display"); ok {
				display = true
				line = strings.TrimSpace(rest)
			}
			//
			logrus.Debugf("input line: %q", line)
			replLine(scope, line, display)
		}
	},
}

// replLine expands one line of repl input, printing the result or its
// diagnostics.
func replLine(scope *ast.Scope, line string, display bool) {
	tokens, offsets := tokenizeLine(line)
	if len(tokens) == 0 {
		return
	}
	//
	srcfile := source.NewSourceFile("<repl>", []byte(line))
	//
	exprs, err := parseArgTokens(srcfile, tokens, offsets)
	if err != nil {
		fmt.Println(err)
		return
	}
	//
	if out, ok := runFormat(srcfile, scope, exprs, display, false); ok {
		fmt.Println(out)
	}
}

// tokenizeLine splits a repl line into tokens and their rune offsets,
// keeping double-quoted segments together.
func tokenizeLine(line string) ([]string, []int) {
	var (
		tokens  []string
		offsets []int
	)
	//
	runes := []rune(line)
	//
	for i := 0; i < len(runes); {
		if runes[i] == ' ' || runes[i] == '\t' {
			i++
			continue
		}
		//
		start := i
		quoted := false
		//
		for i < len(runes) {
			if runes[i] == '"' {
				quoted = !quoted
			} else if (runes[i] == ' ' || runes[i] == '\t') && !quoted {
				break
			}
			//
			i++
		}
		//
		tokens = append(tokens, string(runes[start:i]))
		offsets = append(offsets, start)
	}
	//
	return tokens, offsets
}

func init() {
	rootCmd.AddCommand(replCmd)
}
