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
package sem

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/silogic/go-svsem/pkg/svlang/ast"
	"github.com/silogic/go-svsem/pkg/svlang/syntax"
	"github.com/silogic/go-svsem/pkg/util"
)

func TestCompilationOptions(t *testing.T) {
	// Formatting defaults travel through the option bag.
	options := util.NewBag()
	//
	fs := ast.DefaultFormatState()
	fs.DefaultBase = 2
	fs.Library = "gates"
	util.BagPut(options, fs)
	//
	comp := NewCompilation(options)
	assert.Same(t, options, comp.Options())
	assert.Equal(t, uint(2), comp.RootScope().FormatState().DefaultBase)
	assert.Equal(t, "gates", comp.RootScope().FormatState().Library)
	// And absent options fall back to the defaults.
	comp = NewCompilation(nil)
	assert.Equal(t, uint(10), comp.RootScope().FormatState().DefaultBase)
}

func TestCompilationEnumSpill(t *testing.T) {
	comp := NewCompilation(nil)
	model := NewSemanticModel(comp)
	//
	unit := syntax.NewCompilationUnit(span, "test.sv",
		syntax.NewEnumType(span, "state_t", nil,
			syntax.EnumMember{Name: "IDLE"},
			syntax.EnumMember{Name: "BUSY"}))
	//
	sym := model.CompilationUnitOf(unit)
	// Enum members spill into the scope enclosing the enum declaration.
	member, ok := sym.UnitScope.Lookup("BUSY")
	assert.True(t, ok)
	assert.Equal(t, ast.SymEnumMember, member.SymbolKind())
	// As does the type itself.
	_, ok = sym.UnitScope.Lookup("state_t")
	assert.True(t, ok)
}

func TestCompilationExcessiveGenerateRange(t *testing.T) {
	comp := NewCompilation(nil)
	model := NewSemanticModel(comp)
	//
	node := syntax.NewLoopGenerate(span, "i",
		syntax.NewIntegerLiteral(span, 0),
		syntax.NewIntegerLiteral(span, 1<<20), "gs")
	//
	sym := model.GenerateArrayOf(node)
	assert.Empty(t, sym.Entries)
	//
	diags := comp.Diagnostics()
	assert.Len(t, diags, 1)
	assert.Equal(t, CodeBadGenerateBounds, diags[0].Code)
}

func TestCompilationDescendingGenerateRange(t *testing.T) {
	comp := NewCompilation(nil)
	model := NewSemanticModel(comp)
	// An upper bound below the lower bound is rejected rather than silently
	// producing nothing.
	node := syntax.NewLoopGenerate(span, "i",
		syntax.NewIntegerLiteral(span, 4),
		syntax.NewIntegerLiteral(span, 0), "gs")
	//
	sym := model.GenerateArrayOf(node)
	assert.Empty(t, sym.Entries)
	assert.Equal(t, CodeBadGenerateBounds, comp.Diagnostics()[0].Code)
}

func TestCompilationUnlabelledBlockSharesScope(t *testing.T) {
	comp := NewCompilation(nil)
	model := NewSemanticModel(comp)
	// An unlabelled block does not introduce a scope, so its enum spills all
	// the way into the unit scope.
	unit := syntax.NewCompilationUnit(span, "test.sv",
		syntax.NewBlockStatement(span, "",
			syntax.NewEnumType(span, "", nil, syntax.EnumMember{Name: "FLAG"})))
	//
	sym := model.CompilationUnitOf(unit)
	//
	_, ok := sym.UnitScope.Lookup("FLAG")
	assert.True(t, ok)
}
