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
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml"
	"github.com/spf13/cobra"

	"github.com/silogic/go-svsem/pkg/svlang/ast"
	"github.com/silogic/go-svsem/pkg/svlang/sem"
	"github.com/silogic/go-svsem/pkg/svlang/syntax"
	"github.com/silogic/go-svsem/pkg/util"
	"github.com/silogic/go-svsem/pkg/util/source"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// ============================================================================
// Argument parsing
// ============================================================================

// parseArgTokens converts command-line tokens into literal expression nodes,
// spanned against the given source text (the space-joined command line).  The
// offset of each token within that text is taken from offsets.
func parseArgTokens(srcfile *source.File, tokens []string, offsets []int) ([]syntax.Expr, error) {
	exprs := make([]syntax.Expr, len(tokens))
	//
	for i, tok := range tokens {
		span := source.NewSpan(offsets[i], offsets[i]+len([]rune(tok)))
		//
		expr, err := parseArgToken(span, tok)
		if err != nil {
			return nil, err
		}
		//
		exprs[i] = expr
	}
	//
	return exprs, nil
}

// parseArgToken converts one token into a literal node: quoted tokens become
// string literals (quotes stripped, escapes left raw), tokens with a decimal
// point or exponent become real literals, and everything else must parse as
// an integer (with 0x/0o/0b prefixes accepted).
func parseArgToken(span source.Span, tok string) (syntax.Expr, error) {
	if len(tok) >= 2 && strings.HasPrefix(tok, "\"") && strings.HasSuffix(tok, "\"") {
		return syntax.NewStringLiteral(span, tok[1:len(tok)-1]), nil
	}
	//
	if strings.ContainsAny(tok, ".eE") && !strings.HasPrefix(tok, "0x") && !strings.HasPrefix(tok, "0X") {
		if val, err := strconv.ParseFloat(tok, 64); err == nil {
			return syntax.NewRealLiteral(span, val), nil
		}
	}
	//
	val, err := strconv.ParseInt(tok, 0, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid argument %q (expected a number or a quoted string)", tok)
	}
	//
	return syntax.NewIntegerLiteral(span, val), nil
}

// tokenOffsets computes the rune offset of each token within the line formed
// by joining the tokens with single spaces.
func tokenOffsets(tokens []string) []int {
	offsets := make([]int, len(tokens))
	offset := 0
	//
	for i, tok := range tokens {
		offsets[i] = offset
		offset += len([]rune(tok)) + 1
	}
	//
	return offsets
}

// ============================================================================
// Diagnostic reporting
// ============================================================================

// printDiagnostics reports accumulated diagnostics against the source text
// they were spanned over, each with a highlight of the offending range.
func printDiagnostics(srcfile *source.File, diags []sem.Diagnostic) {
	for _, d := range diags {
		printDiagnostic(srcfile, d)
	}
}

// Print a diagnostic with a highlight of the relevant source line.
func printDiagnostic(srcfile *source.File, d sem.Diagnostic) {
	span := d.Span
	line := srcfile.FindFirstEnclosingLine(span)
	lineOffset := span.Start() - line.Start()
	// Calculate length (ensures don't overflow line)
	length := min(line.Length()-lineOffset, span.Length())
	// Print error + line number
	fmt.Printf("%s:%d:%d-%d [%s] %s\n", srcfile.Filename(), line.Number(), lineOffset,
		lineOffset+length, d.Code, d.Message)
	// Print line
	fmt.Println(line.String())
	// Print indent (todo: account for tabs)
	fmt.Print(strings.Repeat(" ", lineOffset))
	// Print highlight
	fmt.Println(strings.Repeat("^", max(1, length)))
}

// ============================================================================
// Configuration
// ============================================================================

// formatConfig is the on-disk shape of the formatting defaults file.
type formatConfig struct {
	TimeUnit      string `toml:"time_unit"`
	TimePrecision string `toml:"time_precision"`
	DefaultBase   uint   `toml:"default_base"`
	Library       string `toml:"library"`
}

// timeScaleExponent maps a time unit name onto its power of ten.
func timeScaleExponent(name string) (int, error) {
	switch name {
	case "s":
		return 0, nil
	case "ms":
		return -3, nil
	case "us":
		return -6, nil
	case "ns":
		return -9, nil
	case "ps":
		return -12, nil
	case "fs":
		return -15, nil
	default:
		return 0, fmt.Errorf("unknown time unit %q", name)
	}
}

// readOptions assembles the cross-cutting option bag for a compilation,
// loading formatting defaults from the --config file when one was given.
func readOptions(cmd *cobra.Command) *util.Bag {
	options := util.NewBag()
	//
	filename := GetString(cmd, "config")
	if filename == "" {
		return options
	}
	//
	tree, err := toml.LoadFile(filename)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	var config formatConfig
	//
	if err := tree.Unmarshal(&config); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	format := ast.DefaultFormatState()
	//
	if config.TimeUnit != "" {
		if format.TimeUnit, err = timeScaleExponent(config.TimeUnit); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	}
	//
	if config.TimePrecision != "" {
		if format.TimePrecision, err = timeScaleExponent(config.TimePrecision); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	}
	//
	if config.DefaultBase != 0 {
		format.DefaultBase = config.DefaultBase
	}
	//
	if config.Library != "" {
		format.Library = config.Library
	}
	//
	util.BagPut(options, format)
	//
	return options
}
