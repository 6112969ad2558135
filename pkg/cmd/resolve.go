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
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/silogic/go-svsem/pkg/svlang/ast"
	"github.com/silogic/go-svsem/pkg/svlang/sem"
	"github.com/silogic/go-svsem/pkg/svlang/syntax"
	"github.com/silogic/go-svsem/pkg/util/source"
)

// resolveCmd elaborates a design description into its symbol graph and dumps
// the result.
var resolveCmd = &cobra.Command{
	Use:   "resolve [flags] design.toml",
	Short: "Resolve a design description into its symbol graph.",
	Long: "Read a design description (enums, typedefs, instances and generate loops, in TOML " +
		"form), resolve every declaration into its symbol and print the resulting hierarchy.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		unit := readDesignFile(args[0])
		//
		comp := sem.NewCompilation(readOptions(cmd))
		model := sem.NewSemanticModel(comp)
		//
		sym := model.CompilationUnitOf(unit)
		logrus.Debugf("resolved %d top-level member(s)", len(sym.Members))
		//
		printSymbol(sym, 0)
		// Elaboration problems are reported after the dump, since a partial
		// hierarchy is still informative.
		for _, d := range comp.Diagnostics() {
			fmt.Printf("error: [%s] %s\n", d.Code, d.Message)
		}
		//
		if len(comp.Diagnostics()) != 0 {
			os.Exit(1)
		}
	},
}

// ============================================================================
// Design description
// ============================================================================

// designConfig is the on-disk shape of a design description.
type designConfig struct {
	Name      string           `toml:"name"`
	Enums     []enumConfig     `toml:"enum"`
	Typedefs  []typedefConfig  `toml:"typedef"`
	Instances []instanceConfig `toml:"instance"`
	Generates []generateConfig `toml:"generate"`
}

type enumConfig struct {
	Name    string   `toml:"name"`
	Width   uint     `toml:"width"`
	Members []string `toml:"members"`
}

type typedefConfig struct {
	Name   string `toml:"name"`
	Type   string `toml:"type"`
	Width  uint   `toml:"width"`
	Signed bool   `toml:"signed"`
}

type instanceConfig struct {
	Module string           `toml:"module"`
	Name   string           `toml:"name"`
	Ports  map[string]int64 `toml:"ports"`
}

type generateConfig struct {
	Label  string `toml:"label"`
	GenVar string `toml:"genvar"`
	Start  int64  `toml:"start"`
	Stop   int64  `toml:"stop"`
}

// readDesignFile parses a design description into a compilation unit node.
func readDesignFile(filename string) *syntax.CompilationUnit {
	tree, err := toml.LoadFile(filename)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	var config designConfig
	//
	if err := tree.Unmarshal(&config); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	if config.Name == "" {
		config.Name = filename
	}
	// Declarations produced here carry empty spans, since they have no
	// originating source text to point into.
	span := source.NewSpan(0, 0)
	members := make([]syntax.Node, 0)
	//
	for _, e := range config.Enums {
		width := e.Width
		if width == 0 {
			width = 32
		}
		//
		base := syntax.NewDataType(span, syntax.DataTypeLogic, width, false)
		emembers := make([]syntax.EnumMember, len(e.Members))
		//
		for i, name := range e.Members {
			emembers[i] = syntax.EnumMember{Name: name}
		}
		//
		members = append(members, syntax.NewEnumType(span, e.Name, base, emembers...))
	}
	//
	for _, t := range config.Typedefs {
		kind, err := dataTypeKind(t.Type)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		target := syntax.NewDataType(span, kind, t.Width, t.Signed)
		members = append(members, syntax.NewTypedefDeclaration(span, t.Name, target))
	}
	//
	for _, inst := range config.Instances {
		// Sorted for a deterministic connection order.
		ports := make([]string, 0, len(inst.Ports))
		for port := range inst.Ports {
			ports = append(ports, port)
		}
		//
		sort.Strings(ports)
		//
		connections := make([]syntax.PortConnection, len(ports))
		for i, port := range ports {
			connections[i] = syntax.PortConnection{
				Port:  port,
				Value: syntax.NewIntegerLiteral(span, inst.Ports[port]),
			}
		}
		//
		members = append(members,
			syntax.NewHierarchyInstantiation(span, inst.Module, inst.Name, connections...))
	}
	//
	for _, g := range config.Generates {
		members = append(members, syntax.NewLoopGenerate(span, g.GenVar,
			syntax.NewIntegerLiteral(span, g.Start),
			syntax.NewIntegerLiteral(span, g.Stop), g.Label))
	}
	//
	return syntax.NewCompilationUnit(span, config.Name, members...)
}

// dataTypeKind maps a type name from a design description onto its node kind.
func dataTypeKind(name string) (syntax.DataTypeKind, error) {
	switch name {
	case "logic":
		return syntax.DataTypeLogic, nil
	case "bit":
		return syntax.DataTypeBit, nil
	case "int", "":
		return syntax.DataTypeInt, nil
	case "real":
		return syntax.DataTypeReal, nil
	case "shortreal":
		return syntax.DataTypeShortReal, nil
	case "string":
		return syntax.DataTypeString, nil
	default:
		return 0, fmt.Errorf("unknown data type %q", name)
	}
}

// ============================================================================
// Hierarchy dump
// ============================================================================

// printSymbol prints one symbol and its members, indented by depth.
func printSymbol(sym ast.Symbol, depth int) {
	indent := strings.Repeat("  ", depth)
	name := sym.Name()
	//
	if name == "" {
		name = "<anon>"
	}
	//
	switch s := sym.(type) {
	case *ast.CompilationUnitSymbol:
		fmt.Printf("%s%s %s\n", indent, s.SymbolKind(), name)
		//
		for _, m := range s.Members {
			printSymbol(m, depth+1)
		}
	case *ast.InstanceSymbol:
		fmt.Printf("%s%s %s (module %s, %d connection(s))\n", indent,
			s.SymbolKind(), name, s.Module, len(s.Connections))
	case *ast.GenerateBlockArraySymbol:
		fmt.Printf("%s%s %s [%d, %d)\n", indent, s.SymbolKind(), name, s.Lower, s.Upper)
		//
		for _, entry := range s.Entries {
			printSymbol(entry, depth+1)
		}
	case *ast.GenerateBlockSymbol:
		fmt.Printf("%s%s %s\n", indent, s.SymbolKind(), name)
		//
		for _, m := range s.Members {
			printSymbol(m, depth+1)
		}
	case *ast.EnumTypeSymbol:
		fmt.Printf("%s%s %s (%d member(s))\n", indent, s.SymbolKind(), name, len(s.Members))
		//
		for _, m := range s.Members {
			fmt.Printf("%s  %s %s = %s\n", indent, m.SymbolKind(), m.Name(), m.Value.String())
		}
	case *ast.TypeAliasSymbol:
		fmt.Printf("%s%s %s -> %s\n", indent, s.SymbolKind(), name, s.Target)
	default:
		fmt.Printf("%s%s %s\n", indent, sym.SymbolKind(), name)
	}
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
