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
package syntax

import (
	"github.com/silogic/go-svsem/pkg/util/source"
)

// ============================================================================
// Compilation Unit
// ============================================================================

// CompilationUnit is the root node covering all declarations of one source
// file.
type CompilationUnit struct {
	span source.Span
	// Name of the originating file.
	Name string
	// Top-level declarations, in source order.
	Members []Node
}

// NewCompilationUnit constructs a compilation unit node.
func NewCompilationUnit(span source.Span, name string, members ...Node) *CompilationUnit {
	return &CompilationUnit{span, name, members}
}

// Kind returns the syntactic category of this node.
func (p *CompilationUnit) Kind() Kind { return KindCompilationUnit }

// Span returns the location of this node in its originating source text.
func (p *CompilationUnit) Span() source.Span { return p.span }

// ============================================================================
// Hierarchy Instantiation
// ============================================================================

// PortConnection associates a port name with the expression connected to it.
type PortConnection struct {
	// Name of the port being connected.
	Port string
	// Connected expression (nil for an unconnected port).
	Value Expr
}

// HierarchyInstantiation is a module or interface instantiation, such as
// "adder u0 (.a(x), .b(y));".
type HierarchyInstantiation struct {
	span source.Span
	// Name of the module being instantiated.
	ModuleName string
	// Name of the instance itself.
	InstanceName string
	// Port connections, in source order.
	Connections []PortConnection
}

// NewHierarchyInstantiation constructs a hierarchy instantiation node.
func NewHierarchyInstantiation(span source.Span, module string, instance string,
	connections ...PortConnection) *HierarchyInstantiation {
	return &HierarchyInstantiation{span, module, instance, connections}
}

// Kind returns the syntactic category of this node.
func (p *HierarchyInstantiation) Kind() Kind { return KindHierarchyInstantiation }

// Span returns the location of this node in its originating source text.
func (p *HierarchyInstantiation) Span() source.Span { return p.span }

// ============================================================================
// Block Statement
// ============================================================================

// BlockStatement is a begin/end statement block, optionally labelled.  Only
// labelled blocks introduce a scope of their own, but the semantic layer
// resolves both forms to a statement block symbol.
type BlockStatement struct {
	span source.Span
	// Optional block label ("" when unlabelled).
	Label string
	// Nested statements and declarations.
	Items []Node
}

// NewBlockStatement constructs a block statement node.
func NewBlockStatement(span source.Span, label string, items ...Node) *BlockStatement {
	return &BlockStatement{span, label, items}
}

// Kind returns the syntactic category of this node.
func (p *BlockStatement) Kind() Kind { return KindBlockStatement }

// Span returns the location of this node in its originating source text.
func (p *BlockStatement) Span() source.Span { return p.span }

// ============================================================================
// Procedural Block
// ============================================================================

// ProceduralKind distinguishes the procedural block forms.
type ProceduralKind int

const (
	// ProceduralInitial is an initial block.
	ProceduralInitial ProceduralKind = iota
	// ProceduralFinal is a final block.
	ProceduralFinal
	// ProceduralAlways is a plain always block.
	ProceduralAlways
	// ProceduralAlwaysComb is an always_comb block.
	ProceduralAlwaysComb
	// ProceduralAlwaysFF is an always_ff block.
	ProceduralAlwaysFF
	// ProceduralAlwaysLatch is an always_latch block.
	ProceduralAlwaysLatch
)

func (k ProceduralKind) String() string {
	switch k {
	case ProceduralInitial:
		return "initial"
	case ProceduralFinal:
		return "final"
	case ProceduralAlways:
		return "always"
	case ProceduralAlwaysComb:
		return "always_comb"
	case ProceduralAlwaysFF:
		return "always_ff"
	case ProceduralAlwaysLatch:
		return "always_latch"
	default:
		return "unknown"
	}
}

// ProceduralBlock is an initial, final or always construct.
type ProceduralBlock struct {
	span source.Span
	// Which procedural form this is.
	Procedure ProceduralKind
	// Body of the block.
	Body *BlockStatement
}

// NewProceduralBlock constructs a procedural block node.
func NewProceduralBlock(span source.Span, procedure ProceduralKind, body *BlockStatement) *ProceduralBlock {
	return &ProceduralBlock{span, procedure, body}
}

// Kind returns the syntactic category of this node.
func (p *ProceduralBlock) Kind() Kind { return KindProceduralBlock }

// Span returns the location of this node in its originating source text.
func (p *ProceduralBlock) Span() source.Span { return p.span }

// ============================================================================
// If Generate
// ============================================================================

// IfGenerate is a conditional generate construct.  Its condition must be a
// constant expression, evaluated when the construct is resolved.
type IfGenerate struct {
	span source.Span
	// Constant condition controlling whether the block is instantiated.
	Condition Expr
	// Optional block label ("" when unlabelled).
	Label string
	// Members instantiated when the condition holds.
	Members []Node
}

// NewIfGenerate constructs an if-generate node.
func NewIfGenerate(span source.Span, condition Expr, label string, members ...Node) *IfGenerate {
	return &IfGenerate{span, condition, label, members}
}

// Kind returns the syntactic category of this node.
func (p *IfGenerate) Kind() Kind { return KindIfGenerate }

// Span returns the location of this node in its originating source text.
func (p *IfGenerate) Span() source.Span { return p.span }

// ============================================================================
// Loop Generate
// ============================================================================

// LoopGenerate is a loop generate construct, such as "for (genvar i = 0;
// i < 4; i++)".  Its bounds must be constant expressions, evaluated when the
// construct is resolved into a generate block array.
type LoopGenerate struct {
	span source.Span
	// Name of the generate variable.
	GenVar string
	// Constant lower bound (inclusive).
	Start Expr
	// Constant upper bound (exclusive).
	Stop Expr
	// Optional block label ("" when unlabelled).
	Label string
	// Members instantiated once per iteration.
	Members []Node
}

// NewLoopGenerate constructs a loop-generate node.
func NewLoopGenerate(span source.Span, genvar string, start Expr, stop Expr,
	label string, members ...Node) *LoopGenerate {
	return &LoopGenerate{span, genvar, start, stop, label, members}
}

// Kind returns the syntactic category of this node.
func (p *LoopGenerate) Kind() Kind { return KindLoopGenerate }

// Span returns the location of this node in its originating source text.
func (p *LoopGenerate) Span() source.Span { return p.span }

// ============================================================================
// Function Declaration
// ============================================================================

// FunctionArg is one formal argument of a subroutine declaration.
type FunctionArg struct {
	// Name of the formal argument.
	Name string
	// Declared type of the argument.
	Type *DataType
}

// FunctionDeclaration declares a function or task.  Functions eligible for
// constant evaluation carry a single-expression body; tasks (and functions
// with statement bodies, which can never be constant evaluated) leave Body
// nil.
type FunctionDeclaration struct {
	span source.Span
	// Name of the subroutine.
	Name string
	// Whether this declares a task rather than a function.
	IsTask bool
	// Declared return type (nil for tasks).
	Return *DataType
	// Formal arguments, in declaration order.
	Args []FunctionArg
	// Expression body, when the function has one.
	Body Expr
}

// NewFunctionDeclaration constructs a function declaration node.
func NewFunctionDeclaration(span source.Span, name string, isTask bool, ret *DataType,
	args []FunctionArg, body Expr) *FunctionDeclaration {
	return &FunctionDeclaration{span, name, isTask, ret, args, body}
}

// Kind returns the syntactic category of this node.
func (p *FunctionDeclaration) Kind() Kind { return KindFunctionDeclaration }

// Span returns the location of this node in its originating source text.
func (p *FunctionDeclaration) Span() source.Span { return p.span }

// ============================================================================
// Enum Type
// ============================================================================

// EnumMember is one named member of an enum declaration, with an optional
// explicit value expression.
type EnumMember struct {
	// Name of the member.
	Name string
	// Explicit constant value (nil to continue from the previous member).
	Value Expr
}

// EnumType declares an enumeration type, such as
// "enum logic [1:0] { IDLE, BUSY, DONE }".
type EnumType struct {
	span source.Span
	// Name of the enum type ("" for an anonymous enum).
	Name string
	// Base type of the enumeration.
	Base *DataType
	// Members, in declaration order.
	Members []EnumMember
}

// NewEnumType constructs an enum type node.
func NewEnumType(span source.Span, name string, base *DataType, members ...EnumMember) *EnumType {
	return &EnumType{span, name, base, members}
}

// Kind returns the syntactic category of this node.
func (p *EnumType) Kind() Kind { return KindEnumType }

// Span returns the location of this node in its originating source text.
func (p *EnumType) Span() source.Span { return p.span }

// ============================================================================
// Typedef Declaration
// ============================================================================

// TypedefDeclaration declares a type alias, such as "typedef logic [7:0] byte_t".
type TypedefDeclaration struct {
	span source.Span
	// Name of the alias being introduced.
	Name string
	// Target type being aliased.
	Target *DataType
}

// NewTypedefDeclaration constructs a typedef declaration node.
func NewTypedefDeclaration(span source.Span, name string, target *DataType) *TypedefDeclaration {
	return &TypedefDeclaration{span, name, target}
}

// Kind returns the syntactic category of this node.
func (p *TypedefDeclaration) Kind() Kind { return KindTypedefDeclaration }

// Span returns the location of this node in its originating source text.
func (p *TypedefDeclaration) Span() source.Span { return p.span }
