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
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/silogic/go-svsem/pkg/svlang/ast"
	"github.com/silogic/go-svsem/pkg/svlang/sem"
	"github.com/silogic/go-svsem/pkg/svlang/syntax"
	"github.com/silogic/go-svsem/pkg/util/source"
)

// formatCmd expands a format template against literal arguments, exactly as a
// display system call would at compile time.
var formatCmd = &cobra.Command{
	Use:   "format [flags] template [args...]",
	Short: "Expand a display format template against literal arguments.",
	Long: "Expand a display-style format template against literal arguments, applying the " +
		"same validation and rendering rules used for compile-time display calls.  Arguments " +
		"are numbers or quoted strings.  With --display, all arguments (including the first) " +
		"render in their default per-type representation instead.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		display := GetFlag(cmd, "display")
		raw := GetFlag(cmd, "raw")
		// Span all tokens against the joined command line.
		line := strings.Join(args, " ")
		srcfile := source.NewSourceFile("<args>", []byte(line))
		//
		exprs, err := parseArgTokens(srcfile, args, tokenOffsets(args))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		comp := sem.NewCompilation(readOptions(cmd))
		scope := comp.RootScope()
		//
		out, ok := runFormat(srcfile, scope, exprs, display, raw)
		if !ok {
			os.Exit(1)
		}
		//
		fmt.Println(out)
	},
}

// runFormat binds, validates and expands one formatting request, printing any
// diagnostics against the given source text.
func runFormat(srcfile *source.File, scope *ast.Scope, exprs []syntax.Expr,
	display bool, raw bool) (string, bool) {
	var diags sem.DiagnosticList
	//
	ctx := sem.NewBindContext(scope, &diags)
	bound := make([]ast.Expr, len(exprs))
	failed := false
	//
	for i, e := range exprs {
		var ok bool
		//
		if bound[i], ok = sem.Bind(ctx, e); !ok {
			failed = true
		}
	}
	//
	if failed {
		printDiagnostics(srcfile, diags.Diagnostics())
		return "", false
	}
	// Validate before expanding, so ill-formed requests are rejected up front.
	if display {
		if !sem.CheckDisplayArgs(ctx, bound) {
			printDiagnostics(srcfile, diags.Diagnostics())
			return "", false
		}
	} else if !sem.CheckSFormatArgs(ctx, bound) {
		printDiagnostics(srcfile, diags.Diagnostics())
		return "", false
	}
	//
	logrus.Debugf("bound %d argument(s) with no diagnostics", len(bound))
	//
	ectx := sem.NewEvalContext()
	//
	var result string
	//
	if display {
		out := sem.FormatDisplay(scope, ectx, bound)
		//
		if out.IsEmpty() {
			printDiagnostics(srcfile, ectx.Diagnostics())
			return "", false
		}
		//
		result = out.Unwrap()
	} else {
		template, _ := bound[0].ConstantValue()
		// A template given as a quoted literal still carries its raw escape
		// sequences, unless the caller asked for them to be left alone.
		_, literal := exprs[0].(*syntax.StringLiteral)
		//
		out := sem.FormatArgs(template.AsString(), bound[0].Span(), scope, ectx,
			bound[1:], literal && !raw)
		//
		if out.IsEmpty() {
			printDiagnostics(srcfile, ectx.Diagnostics())
			return "", false
		}
		//
		result = out.Unwrap()
	}
	// Leftover-argument diagnostics are advisory: report them, keep the output.
	printDiagnostics(srcfile, ectx.Diagnostics())
	//
	return result, true
}

func init() {
	rootCmd.AddCommand(formatCmd)
	formatCmd.Flags().Bool("display", false, "render all arguments in their default representation")
	formatCmd.Flags().Bool("raw", false, "do not process escape sequences in the template")
}
