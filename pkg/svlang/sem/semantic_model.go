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
	"github.com/silogic/go-svsem/pkg/svlang/ast"
	"github.com/silogic/go-svsem/pkg/svlang/syntax"
)

// SemanticModel answers "which symbol does this syntax node declare",
// computing each answer lazily and caching it by node identity.  Resolution
// is referentially transparent: once populated for a node, an entry is never
// invalidated or overwritten for the lifetime of the model, so a node
// denotes exactly one symbol.
//
// A model is bound to one compilation and runs every query to completion on
// the calling thread.  Cache population is check-then-insert without
// internal locking; concurrent callers querying overlapping node sets must
// synchronise externally.
type SemanticModel struct {
	comp *Compilation
	// Identity-keyed symbol cache.
	cache map[syntax.Node]ast.Symbol
}

// NewSemanticModel constructs a model over a given compilation.
func NewSemanticModel(comp *Compilation) *SemanticModel {
	return &SemanticModel{comp, make(map[syntax.Node]ast.Symbol)}
}

// WithContext explicitly seeds the cache, associating a node with a symbol
// without going through resolution.  This is used when a caller already
// produced the association as a side effect of another operation, and
// guarantees a single canonical symbol per node: a seeded entry wins over
// whatever construction would have produced.
func (p *SemanticModel) WithContext(node syntax.Node, symbol ast.Symbol) {
	p.cache[node] = symbol
}

// GetDeclaredSymbol resolves the symbol a node declares, or returns nil when
// the node is not a declaration-introducing form recognised by the model.
// Lookups never fail for "not found"; nil is the absent result.
func (p *SemanticModel) GetDeclaredSymbol(node syntax.Node) ast.Symbol {
	if sym, ok := p.cache[node]; ok {
		return sym
	}
	//
	switch n := node.(type) {
	case *syntax.CompilationUnit:
		return p.CompilationUnitOf(n)
	case *syntax.HierarchyInstantiation:
		return p.InstanceOf(n)
	case *syntax.BlockStatement:
		return p.StatementBlockOf(n)
	case *syntax.ProceduralBlock:
		return p.ProceduralBlockOf(n)
	case *syntax.IfGenerate:
		return p.GenerateBlockOf(n)
	case *syntax.LoopGenerate:
		return p.GenerateArrayOf(n)
	case *syntax.FunctionDeclaration:
		return p.SubroutineOf(n)
	case *syntax.EnumType:
		return p.EnumTypeOf(n)
	case *syntax.TypedefDeclaration:
		return p.TypeAliasOf(n)
	default:
		return nil
	}
}

// The kind-specific lookups below mirror GetDeclaredSymbol for callers which
// statically know the node's category, returning the concrete symbol type
// directly.  Passing a node whose cached symbol is of another kind is a
// contract violation, reported by panic rather than a recoverable error.

// CompilationUnitOf resolves the symbol declared by a compilation unit node.
func (p *SemanticModel) CompilationUnitOf(node *syntax.CompilationUnit) *ast.CompilationUnitSymbol {
	if sym, ok := p.cache[node]; ok {
		return sym.(*ast.CompilationUnitSymbol)
	}
	//
	sym := p.comp.createCompilationUnit(node)
	p.cache[node] = sym
	//
	return sym
}

// InstanceOf resolves the symbol declared by a hierarchy instantiation node.
func (p *SemanticModel) InstanceOf(node *syntax.HierarchyInstantiation) *ast.InstanceSymbol {
	if sym, ok := p.cache[node]; ok {
		return sym.(*ast.InstanceSymbol)
	}
	//
	sym := p.comp.createInstance(p.comp.RootScope(), node)
	p.cache[node] = sym
	//
	return sym
}

// StatementBlockOf resolves the symbol declared by a block statement node.
func (p *SemanticModel) StatementBlockOf(node *syntax.BlockStatement) *ast.StatementBlockSymbol {
	if sym, ok := p.cache[node]; ok {
		return sym.(*ast.StatementBlockSymbol)
	}
	//
	sym := p.comp.createStatementBlock(p.comp.RootScope(), node)
	p.cache[node] = sym
	//
	return sym
}

// ProceduralBlockOf resolves the symbol declared by a procedural block node.
func (p *SemanticModel) ProceduralBlockOf(node *syntax.ProceduralBlock) *ast.ProceduralBlockSymbol {
	if sym, ok := p.cache[node]; ok {
		return sym.(*ast.ProceduralBlockSymbol)
	}
	//
	sym := p.comp.createProceduralBlock(p.comp.RootScope(), node)
	p.cache[node] = sym
	//
	return sym
}

// GenerateBlockOf resolves the symbol declared by an if-generate node.
func (p *SemanticModel) GenerateBlockOf(node *syntax.IfGenerate) *ast.GenerateBlockSymbol {
	if sym, ok := p.cache[node]; ok {
		return sym.(*ast.GenerateBlockSymbol)
	}
	//
	sym := p.comp.createIfGenerate(p.comp.RootScope(), node)
	p.cache[node] = sym
	//
	return sym
}

// GenerateArrayOf resolves the symbol declared by a loop-generate node.
// Resolving the node evaluates its constant bounds within an evaluation
// context constructed for this query; only the produced symbol is cached.
func (p *SemanticModel) GenerateArrayOf(node *syntax.LoopGenerate) *ast.GenerateBlockArraySymbol {
	if sym, ok := p.cache[node]; ok {
		return sym.(*ast.GenerateBlockArraySymbol)
	}
	//
	sym := p.comp.createLoopGenerate(p.comp.RootScope(), node)
	p.cache[node] = sym
	//
	return sym
}

// SubroutineOf resolves the symbol declared by a function declaration node.
func (p *SemanticModel) SubroutineOf(node *syntax.FunctionDeclaration) *ast.SubroutineSymbol {
	if sym, ok := p.cache[node]; ok {
		return sym.(*ast.SubroutineSymbol)
	}
	//
	sym := p.comp.createSubroutine(p.comp.RootScope(), node)
	p.cache[node] = sym
	//
	return sym
}

// EnumTypeOf resolves the symbol declared by an enum type node.
func (p *SemanticModel) EnumTypeOf(node *syntax.EnumType) *ast.EnumTypeSymbol {
	if sym, ok := p.cache[node]; ok {
		return sym.(*ast.EnumTypeSymbol)
	}
	//
	sym := p.comp.createEnumType(p.comp.RootScope(), node)
	p.cache[node] = sym
	//
	return sym
}

// TypeAliasOf resolves the symbol declared by a typedef declaration node.
func (p *SemanticModel) TypeAliasOf(node *syntax.TypedefDeclaration) *ast.TypeAliasSymbol {
	if sym, ok := p.cache[node]; ok {
		return sym.(*ast.TypeAliasSymbol)
	}
	//
	sym := p.comp.createTypedef(p.comp.RootScope(), node)
	p.cache[node] = sym
	//
	return sym
}
