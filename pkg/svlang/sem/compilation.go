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
	"math/big"

	"github.com/silogic/go-svsem/pkg/svlang/ast"
	"github.com/silogic/go-svsem/pkg/svlang/syntax"
	"github.com/silogic/go-svsem/pkg/util"
)

// maxGenerateRange bounds how many entries a loop-generate construct may
// produce, converting an absurd constant range into a diagnostic instead of
// an allocation storm.
const maxGenerateRange = 1 << 16

// Compilation owns the symbol graph produced from a set of syntax trees: it
// constructs the symbol each declaration-introducing node denotes, and owns
// the root scope those symbols live in.  Construction is idempotent per
// node: repeated queries for the same node return the same symbol identity.
// Symbols are valid for the lifetime of the compilation that produced them.
type Compilation struct {
	// Cross-cutting options supplied at construction.
	options *util.Bag
	// Root scope of the design.
	root *ast.Scope
	// Idempotence map from declaration nodes to their symbols.
	declared map[syntax.Node]ast.Symbol
	// Diagnostics produced during symbol construction.
	diags DiagnosticList
}

// NewCompilation constructs a fresh compilation.  Formatting defaults are
// taken from the option bag when present, so that unrelated subsystems can
// influence them without a compile-time dependency on this package.
func NewCompilation(options *util.Bag) *Compilation {
	if options == nil {
		options = util.NewBag()
	}
	//
	format := util.BagGet[ast.FormatState](options).UnwrapOr(ast.DefaultFormatState())
	//
	return &Compilation{
		options:  options,
		root:     ast.NewRootScope("$root", format),
		declared: make(map[syntax.Node]ast.Symbol),
	}
}

// Options returns the cross-cutting option bag of this compilation.
func (p *Compilation) Options() *util.Bag {
	return p.options
}

// RootScope returns the root scope of the design.
func (p *Compilation) RootScope() *ast.Scope {
	return p.root
}

// Diagnostics returns everything reported during symbol construction so far.
func (p *Compilation) Diagnostics() []Diagnostic {
	return p.diags.Diagnostics()
}

// ============================================================================
// Construction queries
// ============================================================================

// createCompilationUnit constructs (or fetches) the symbol for a compilation
// unit node, along with all of its members.
func (p *Compilation) createCompilationUnit(node *syntax.CompilationUnit) *ast.CompilationUnitSymbol {
	if sym, ok := p.declared[node]; ok {
		return sym.(*ast.CompilationUnitSymbol)
	}
	//
	scope := ast.NewScope(p.root, node.Name)
	unit := ast.NewCompilationUnitSymbol(node.Name, scope)
	p.declared[node] = unit
	//
	for _, m := range node.Members {
		if sym := p.createMember(scope, m); sym != nil {
			unit.Members = append(unit.Members, sym)
		}
	}
	//
	return unit
}

// createMember constructs the symbol for one declaration node within a given
// scope, returning nil for nodes which are not declaration-introducing.
func (p *Compilation) createMember(scope *ast.Scope, node syntax.Node) ast.Symbol {
	switch n := node.(type) {
	case *syntax.HierarchyInstantiation:
		return p.createInstance(scope, n)
	case *syntax.BlockStatement:
		return p.createStatementBlock(scope, n)
	case *syntax.ProceduralBlock:
		return p.createProceduralBlock(scope, n)
	case *syntax.IfGenerate:
		return p.createIfGenerate(scope, n)
	case *syntax.LoopGenerate:
		return p.createLoopGenerate(scope, n)
	case *syntax.FunctionDeclaration:
		return p.createSubroutine(scope, n)
	case *syntax.EnumType:
		return p.createEnumType(scope, n)
	case *syntax.TypedefDeclaration:
		return p.createTypedef(scope, n)
	default:
		return nil
	}
}

func (p *Compilation) createInstance(scope *ast.Scope, node *syntax.HierarchyInstantiation) *ast.InstanceSymbol {
	if sym, ok := p.declared[node]; ok {
		return sym.(*ast.InstanceSymbol)
	}
	//
	ctx := NewBindContext(scope, &p.diags)
	connections := make([]ast.InstancePortConnection, 0, len(node.Connections))
	//
	for _, conn := range node.Connections {
		var value ast.Expr
		//
		if conn.Value != nil {
			// A failed connection still records the port, so that port
			// queries see the full connection list.
			value, _ = Bind(ctx, conn.Value)
		}
		//
		connections = append(connections, ast.InstancePortConnection{Port: conn.Port, Value: value})
	}
	//
	sym := ast.NewInstanceSymbol(node.InstanceName, node.ModuleName, connections)
	p.declared[node] = sym
	scope.Define(sym)
	//
	return sym
}

func (p *Compilation) createStatementBlock(scope *ast.Scope, node *syntax.BlockStatement) *ast.StatementBlockSymbol {
	if sym, ok := p.declared[node]; ok {
		return sym.(*ast.StatementBlockSymbol)
	}
	//
	sym := ast.NewStatementBlockSymbol(node.Label)
	p.declared[node] = sym
	// Only labelled blocks introduce a scope of their own.
	inner := scope
	//
	if node.Label != "" {
		inner = ast.NewScope(scope, node.Label)
		scope.Define(sym)
	}
	//
	for _, item := range node.Items {
		if member := p.createMember(inner, item); member != nil {
			sym.Members = append(sym.Members, member)
		}
	}
	//
	return sym
}

func (p *Compilation) createProceduralBlock(scope *ast.Scope, node *syntax.ProceduralBlock) *ast.ProceduralBlockSymbol {
	if sym, ok := p.declared[node]; ok {
		return sym.(*ast.ProceduralBlockSymbol)
	}
	//
	var body *ast.StatementBlockSymbol
	//
	if node.Body != nil {
		body = p.createStatementBlock(scope, node.Body)
	}
	//
	sym := ast.NewProceduralBlockSymbol(node.Procedure, body)
	p.declared[node] = sym
	//
	return sym
}

func (p *Compilation) createIfGenerate(scope *ast.Scope, node *syntax.IfGenerate) *ast.GenerateBlockSymbol {
	if sym, ok := p.declared[node]; ok {
		return sym.(*ast.GenerateBlockSymbol)
	}
	// The condition is a constant expression resolved in the enclosing
	// scope.  Its evaluation happens within a context constructed for this
	// query and is not cached beyond the produced symbol.
	taken := false
	ctx := NewBindContext(scope, &p.diags).With(BindConstant)
	//
	if cond, ok := Bind(ctx, node.Condition); ok {
		ectx := NewEvalContext()
		//
		if val, ok := ectx.Eval(cond); ok {
			taken = val.IsTrue()
		} else {
			p.adoptDiagnostics(ectx)
		}
	}
	//
	sym := ast.NewGenerateBlockSymbol(node.Label, taken)
	p.declared[node] = sym
	//
	if node.Label != "" {
		scope.Define(sym)
	}
	//
	if taken {
		inner := scope
		if node.Label != "" {
			inner = ast.NewScope(scope, node.Label)
		}
		//
		for _, m := range node.Members {
			if member := p.createMember(inner, m); member != nil {
				sym.Members = append(sym.Members, member)
			}
		}
	}
	//
	return sym
}

func (p *Compilation) createLoopGenerate(scope *ast.Scope, node *syntax.LoopGenerate) *ast.GenerateBlockArraySymbol {
	if sym, ok := p.declared[node]; ok {
		return sym.(*ast.GenerateBlockArraySymbol)
	}
	//
	lower, lok := p.evalGenerateBound(scope, node.Start)
	upper, uok := p.evalGenerateBound(scope, node.Stop)
	//
	sym := ast.NewGenerateBlockArraySymbol(node.Label, lower, upper)
	p.declared[node] = sym
	//
	if node.Label != "" {
		scope.Define(sym)
	}
	// An unresolvable bound leaves an empty array, which is still a valid
	// symbol for downstream queries.
	if !lok || !uok {
		return sym
	}
	//
	if upper < lower || upper-lower > maxGenerateRange {
		p.diags.Report(Errorf(node.Span(), CodeBadGenerateBounds,
			"loop generate range [%d, %d) is invalid", lower, upper))
		return sym
	}
	//
	for i := lower; i < upper; i++ {
		entry := ast.NewGenerateBlockSymbol(fmt.Sprintf("%s[%d]", node.Label, i), true)
		entry.Index = i
		// Each entry scopes its own copy of the generate variable.
		inner := ast.NewScope(scope, entry.Name())
		genvar := ast.NewParameterSymbol(node.GenVar, ast.IntType(), ast.NewInt32(i))
		inner.Define(genvar)
		//
		for _, m := range node.Members {
			if member := p.createMember(inner, m); member != nil {
				entry.Members = append(entry.Members, member)
			}
		}
		//
		sym.Entries = append(sym.Entries, entry)
	}
	//
	return sym
}

// evalGenerateBound resolves and folds one constant bound of a loop-generate
// construct.
func (p *Compilation) evalGenerateBound(scope *ast.Scope, expr syntax.Expr) (int64, bool) {
	ctx := NewBindContext(scope, &p.diags).With(BindConstant)
	//
	bound, ok := Bind(ctx, expr)
	if !ok {
		return 0, false
	}
	//
	ectx := NewEvalContext()
	//
	val, ok := ectx.Eval(bound)
	if !ok {
		p.adoptDiagnostics(ectx)
		return 0, false
	}
	//
	i64, ok := val.AsInt64()
	if !ok {
		p.diags.Report(Errorf(expr.Span(), CodeBadGenerateBounds,
			"loop generate bound must be an integral constant"))
		return 0, false
	}
	//
	return i64, true
}

func (p *Compilation) createSubroutine(scope *ast.Scope, node *syntax.FunctionDeclaration) *ast.SubroutineSymbol {
	if sym, ok := p.declared[node]; ok {
		return sym.(*ast.SubroutineSymbol)
	}
	//
	ret := ast.Type(ast.NewVoidType())
	//
	if node.Return != nil {
		ret = p.typeFromSyntax(node.Return)
	}
	//
	formals := make([]*ast.FormalArgumentSymbol, len(node.Args))
	//
	for i, arg := range node.Args {
		formals[i] = ast.NewFormalArgumentSymbol(arg.Name, p.typeFromSyntax(arg.Type))
	}
	//
	sym := ast.NewSubroutineSymbol(node.Name, node.IsTask, ret, formals)
	p.declared[node] = sym
	// Define the subroutine before binding its body, so it can recurse.
	scope.Define(sym)
	//
	if node.Body != nil {
		inner := ast.NewScope(scope, node.Name)
		//
		for _, f := range formals {
			inner.Define(f)
		}
		//
		ctx := NewBindContext(inner, &p.diags).With(BindFunctionBody)
		sym.Body, _ = Bind(ctx, node.Body)
	}
	//
	return sym
}

func (p *Compilation) createEnumType(scope *ast.Scope, node *syntax.EnumType) *ast.EnumTypeSymbol {
	if sym, ok := p.declared[node]; ok {
		return sym.(*ast.EnumTypeSymbol)
	}
	//
	base := ast.Type(ast.IntType())
	//
	if node.Base != nil {
		base = p.typeFromSyntax(node.Base)
	}
	//
	sym := ast.NewEnumTypeSymbol(node.Name, base)
	p.declared[node] = sym
	//
	if node.Name != "" {
		scope.Define(sym)
	}
	// Members take the previous value plus one unless given explicitly,
	// starting from zero, wrapped into the base type's width.
	next := int64(0)
	width, signed := base.BitWidth(), base.IsSigned()
	//
	for _, m := range node.Members {
		value := ast.NewInteger(ast.WrapToWidth(big.NewInt(next), width, signed), width, signed)
		//
		if m.Value != nil {
			ctx := NewBindContext(scope, &p.diags).With(BindConstant)
			//
			if expr, ok := Bind(ctx, m.Value); ok {
				ectx := NewEvalContext()
				//
				if val, ok := ectx.Eval(expr); ok && val.IsInteger() {
					value = ast.NewInteger(ast.WrapToWidth(val.AsBigInt(), width, signed), width, signed)
				} else {
					p.adoptDiagnostics(ectx)
				}
			}
		}
		//
		member := ast.NewEnumMemberSymbol(m.Name, value, sym)
		sym.Members = append(sym.Members, member)
		// Enum members spill into the enclosing scope.
		scope.Define(member)
		//
		if i64, ok := value.AsInt64(); ok {
			next = i64 + 1
		}
	}
	//
	return sym
}

func (p *Compilation) createTypedef(scope *ast.Scope, node *syntax.TypedefDeclaration) *ast.TypeAliasSymbol {
	if sym, ok := p.declared[node]; ok {
		return sym.(*ast.TypeAliasSymbol)
	}
	//
	sym := ast.NewTypeAliasSymbol(node.Name, p.typeFromSyntax(node.Target))
	p.declared[node] = sym
	scope.Define(sym)
	//
	return sym
}

// typeFromSyntax maps a syntactic data type onto its semantic counterpart.
func (p *Compilation) typeFromSyntax(dt *syntax.DataType) ast.Type {
	switch dt.Type {
	case syntax.DataTypeLogic:
		return ast.NewIntegralType(dt.Width, dt.Signed, true)
	case syntax.DataTypeBit:
		return ast.NewIntegralType(dt.Width, dt.Signed, false)
	case syntax.DataTypeInt:
		return ast.IntType()
	case syntax.DataTypeReal:
		return ast.NewRealType()
	case syntax.DataTypeShortReal:
		return ast.NewShortRealType()
	case syntax.DataTypeString:
		return ast.NewStringType()
	case syntax.DataTypeVoid:
		return ast.NewVoidType()
	default:
		panic("unreachable")
	}
}

// adoptDiagnostics moves diagnostics accumulated in a transient evaluation
// context into the compilation's own list.
func (p *Compilation) adoptDiagnostics(ectx *EvalContext) {
	for _, d := range ectx.Diagnostics() {
		p.diags.Report(d)
	}
}
