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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/silogic/go-svsem/pkg/svlang/ast"
	"github.com/silogic/go-svsem/pkg/svlang/syntax"
)

func newModel() *SemanticModel {
	return NewSemanticModel(NewCompilation(nil))
}

func TestModelCompilationUnit(t *testing.T) {
	model := newModel()
	//
	unit := syntax.NewCompilationUnit(span, "test.sv",
		syntax.NewTypedefDeclaration(span, "byte_t",
			syntax.NewDataType(span, syntax.DataTypeLogic, 8, false)),
		syntax.NewHierarchyInstantiation(span, "adder", "u0",
			syntax.PortConnection{Port: "a", Value: syntax.NewIntegerLiteral(span, 1)}))
	//
	sym := model.CompilationUnitOf(unit)
	assert.Equal(t, "test.sv", sym.Name())
	assert.Len(t, sym.Members, 2)
	// Resolution is stable: asking again yields the same symbol identity.
	assert.Same(t, sym, model.CompilationUnitOf(unit))
	assert.Same(t, ast.Symbol(sym), model.GetDeclaredSymbol(unit))
}

func TestModelMemberIdentity(t *testing.T) {
	model := newModel()
	//
	inst := syntax.NewHierarchyInstantiation(span, "adder", "u0")
	unit := syntax.NewCompilationUnit(span, "test.sv", inst)
	// Resolving the unit resolves its members; a direct query for a member
	// node afterwards must return the very same symbol.
	sym := model.CompilationUnitOf(unit)
	direct := model.InstanceOf(inst)
	//
	assert.Same(t, sym.Members[0], ast.Symbol(direct))
}

func TestModelGetDeclaredSymbolKinds(t *testing.T) {
	tests := []struct {
		name string
		node syntax.Node
		kind ast.SymbolKind
	}{
		{
			"compilation unit",
			syntax.NewCompilationUnit(span, "f.sv"),
			ast.SymCompilationUnit,
		},
		{
			"instance",
			syntax.NewHierarchyInstantiation(span, "m", "u0"),
			ast.SymInstance,
		},
		{
			"statement block",
			syntax.NewBlockStatement(span, "blk"),
			ast.SymStatementBlock,
		},
		{
			"procedural block",
			syntax.NewProceduralBlock(span, syntax.ProceduralInitial,
				syntax.NewBlockStatement(span, "")),
			ast.SymProceduralBlock,
		},
		{
			"if generate",
			syntax.NewIfGenerate(span, syntax.NewIntegerLiteral(span, 1), "g"),
			ast.SymGenerateBlock,
		},
		{
			"loop generate",
			syntax.NewLoopGenerate(span, "i", syntax.NewIntegerLiteral(span, 0),
				syntax.NewIntegerLiteral(span, 2), "gs"),
			ast.SymGenerateBlockArray,
		},
		{
			"subroutine",
			syntax.NewFunctionDeclaration(span, "f", false,
				syntax.NewDataType(span, syntax.DataTypeInt, 32, true), nil, nil),
			ast.SymSubroutine,
		},
		{
			"enum type",
			syntax.NewEnumType(span, "e_t", nil, syntax.EnumMember{Name: "A"}),
			ast.SymEnumType,
		},
		{
			"typedef",
			syntax.NewTypedefDeclaration(span, "t_t",
				syntax.NewDataType(span, syntax.DataTypeInt, 32, true)),
			ast.SymTypeAlias,
		},
	}
	//
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := newModel()
			//
			sym := model.GetDeclaredSymbol(tt.node)
			assert.NotNil(t, sym)
			assert.Equal(t, tt.kind, sym.SymbolKind())
			// Identical on repeat.
			assert.Same(t, sym, model.GetDeclaredSymbol(tt.node))
		})
	}
}

func TestModelNonDeclarationIsNil(t *testing.T) {
	model := newModel()
	// Expression nodes do not declare anything.
	assert.Nil(t, model.GetDeclaredSymbol(syntax.NewIntegerLiteral(span, 1)))
}

func TestModelWithContext(t *testing.T) {
	model := newModel()
	//
	node := syntax.NewHierarchyInstantiation(span, "adder", "u0")
	seeded := ast.NewInstanceSymbol("u0", "adder", nil)
	// A seeded association wins over whatever construction would produce.
	model.WithContext(node, seeded)
	//
	assert.Same(t, seeded, model.InstanceOf(node))
	assert.Same(t, ast.Symbol(seeded), model.GetDeclaredSymbol(node))
}

func TestModelCategoryMismatchPanics(t *testing.T) {
	model := newModel()
	//
	node := syntax.NewEnumType(span, "e_t", nil, syntax.EnumMember{Name: "A"})
	// Seeding a node with a symbol of another category violates the typed
	// lookup's contract.
	model.WithContext(node, ast.NewInstanceSymbol("u0", "adder", nil))
	//
	assert.Panics(t, func() { model.EnumTypeOf(node) })
}

func TestModelEnumType(t *testing.T) {
	model := newModel()
	//
	node := syntax.NewEnumType(span, "state_t",
		syntax.NewDataType(span, syntax.DataTypeLogic, 2, false),
		syntax.EnumMember{Name: "IDLE"},
		syntax.EnumMember{Name: "BUSY"},
		syntax.EnumMember{Name: "DONE"})
	//
	sym := model.EnumTypeOf(node)
	assert.Len(t, sym.Members, 3)
	// Values count up from zero.
	for i, m := range sym.Members {
		v, _ := m.Value.AsInt64()
		assert.Equal(t, int64(i), v)
		assert.Same(t, sym, m.Parent)
	}
	//
	assert.Equal(t, uint(2), sym.BitWidth())
	assert.True(t, sym.IsIntegral())
}

func TestModelEnumExplicitValues(t *testing.T) {
	model := newModel()
	//
	node := syntax.NewEnumType(span, "e_t", nil,
		syntax.EnumMember{Name: "A"},
		syntax.EnumMember{Name: "B", Value: syntax.NewIntegerLiteral(span, 5)},
		syntax.EnumMember{Name: "C"})
	//
	sym := model.EnumTypeOf(node)
	//
	expected := []int64{0, 5, 6}
	for i, m := range sym.Members {
		v, _ := m.Value.AsInt64()
		assert.Equal(t, expected[i], v, m.Name())
	}
	// MemberByValue recovers the member from its constant.
	assert.Equal(t, "B", sym.MemberByValue(sym.Members[1].Value).Name())
}

func TestModelTypeAlias(t *testing.T) {
	model := newModel()
	//
	node := syntax.NewTypedefDeclaration(span, "byte_t",
		syntax.NewDataType(span, syntax.DataTypeLogic, 8, false))
	//
	sym := model.TypeAliasOf(node)
	assert.Equal(t, "byte_t", sym.Name())
	// The alias is itself a type, resolving to its target.
	assert.Equal(t, uint(8), sym.BitWidth())
	assert.Equal(t, ast.TypeIntegral, sym.Resolve().TypeKind())
}

func TestModelIfGenerate(t *testing.T) {
	model := newModel()
	//
	inst := syntax.NewHierarchyInstantiation(span, "ram", "mem")
	// Condition 2 < 3 holds, so the block is instantiated.
	taken := syntax.NewIfGenerate(span,
		syntax.NewBinaryExpr(span, syntax.BinaryLess,
			syntax.NewIntegerLiteral(span, 2), syntax.NewIntegerLiteral(span, 3)),
		"g0", inst)
	//
	sym := model.GenerateBlockOf(taken)
	assert.True(t, sym.Taken)
	assert.Len(t, sym.Members, 1)
	// And with a false condition, it is not.
	skipped := syntax.NewIfGenerate(span, syntax.NewIntegerLiteral(span, 0), "g1",
		syntax.NewHierarchyInstantiation(span, "ram", "mem2"))
	//
	sym = model.GenerateBlockOf(skipped)
	assert.False(t, sym.Taken)
	assert.Empty(t, sym.Members)
}

func TestModelLoopGenerate(t *testing.T) {
	model := newModel()
	// for (genvar i = 0; i < 4; i++) ram mem(.idx(i));
	inst := syntax.NewHierarchyInstantiation(span, "ram", "mem",
		syntax.PortConnection{Port: "idx", Value: syntax.NewIdentifier(span, "i")})
	//
	node := syntax.NewLoopGenerate(span, "i",
		syntax.NewIntegerLiteral(span, 0), syntax.NewIntegerLiteral(span, 4),
		"ring", inst)
	//
	sym := model.GenerateArrayOf(node)
	assert.Equal(t, int64(0), sym.Lower)
	assert.Equal(t, int64(4), sym.Upper)
	assert.Len(t, sym.Entries, 4)
	//
	for i, entry := range sym.Entries {
		assert.Equal(t, fmt.Sprintf("ring[%d]", i), entry.Name())
		assert.Equal(t, int64(i), entry.Index)
		assert.True(t, entry.Taken)
		// Each entry's instance sees its own copy of the generate variable.
		member := entry.Members[0].(*ast.InstanceSymbol)
		val, ok := member.Connections[0].Value.ConstantValue()
		assert.True(t, ok)
		//
		idx, _ := val.AsInt64()
		assert.Equal(t, int64(i), idx)
	}
}

func TestModelLoopGenerateBadBounds(t *testing.T) {
	model := newModel()
	// A non-constant bound leaves an empty array and a diagnostic.
	node := syntax.NewLoopGenerate(span, "i",
		syntax.NewIntegerLiteral(span, 0), syntax.NewIdentifier(span, "n"), "gs")
	//
	sym := model.GenerateArrayOf(node)
	assert.Empty(t, sym.Entries)
	assert.NotEmpty(t, model.comp.Diagnostics())
}

func TestModelSubroutine(t *testing.T) {
	model := newModel()
	//
	intType := syntax.NewDataType(span, syntax.DataTypeInt, 32, true)
	node := syntax.NewFunctionDeclaration(span, "inc", false, intType,
		[]syntax.FunctionArg{{Name: "n", Type: intType}},
		syntax.NewBinaryExpr(span, syntax.BinaryAdd,
			syntax.NewIdentifier(span, "n"), syntax.NewIntegerLiteral(span, 1)))
	//
	sym := model.SubroutineOf(node)
	assert.Equal(t, "inc", sym.Name())
	assert.Equal(t, uint(1), sym.Arity())
	assert.False(t, sym.IsTask)
	assert.NotNil(t, sym.Body)
	assert.True(t, sym.Return.IsIntegral())
}

func TestModelStatementBlocks(t *testing.T) {
	model := newModel()
	//
	block := syntax.NewBlockStatement(span, "init_blk",
		syntax.NewHierarchyInstantiation(span, "m", "u0"))
	proc := syntax.NewProceduralBlock(span, syntax.ProceduralInitial, block)
	//
	sym := model.ProceduralBlockOf(proc)
	assert.Equal(t, syntax.ProceduralInitial, sym.Procedure)
	assert.Equal(t, "init_blk", sym.Body.Name())
	assert.Len(t, sym.Body.Members, 1)
	// The body resolved as part of the procedural block is the same symbol a
	// direct query returns.
	assert.Same(t, sym.Body, model.StatementBlockOf(block))
}
