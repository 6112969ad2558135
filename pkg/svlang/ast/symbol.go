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
package ast

import (
	"github.com/silogic/go-svsem/pkg/svlang/syntax"
)

// SymbolKind identifies the variant of a resolved symbol.  The set is closed,
// so dispatch over symbols is exhaustive pattern matching rather than
// open-ended dynamic dispatch.
type SymbolKind int

const (
	// SymCompilationUnit is the root symbol of one source file.
	SymCompilationUnit SymbolKind = iota
	// SymInstance is a module or interface instance.
	SymInstance
	// SymStatementBlock is a begin/end statement block.
	SymStatementBlock
	// SymProceduralBlock is an initial/final/always construct.
	SymProceduralBlock
	// SymGenerateBlock is a single generate block.
	SymGenerateBlock
	// SymGenerateBlockArray is an array of generate blocks.
	SymGenerateBlockArray
	// SymSubroutine is a function or task.
	SymSubroutine
	// SymEnumType is an enumeration type.
	SymEnumType
	// SymTypeAlias is a type alias.
	SymTypeAlias
	// SymParameter is an elaboration-time constant.
	SymParameter
	// SymEnumMember is one member of an enumeration type.
	SymEnumMember
	// SymFormalArgument is a formal argument of a subroutine.
	SymFormalArgument
)

func (k SymbolKind) String() string {
	switch k {
	case SymCompilationUnit:
		return "compilation-unit"
	case SymInstance:
		return "instance"
	case SymStatementBlock:
		return "statement-block"
	case SymProceduralBlock:
		return "procedural-block"
	case SymGenerateBlock:
		return "generate-block"
	case SymGenerateBlockArray:
		return "generate-block-array"
	case SymSubroutine:
		return "subroutine"
	case SymEnumType:
		return "enum-type"
	case SymTypeAlias:
		return "type-alias"
	case SymParameter:
		return "parameter"
	case SymEnumMember:
		return "enum-member"
	case SymFormalArgument:
		return "formal-argument"
	default:
		return "unknown"
	}
}

// Symbol is a resolved semantic entity which some declaration denotes.
// Symbols are owned by the compilation's symbol graph; consumers hold
// non-owning references which remain valid for the lifetime of the
// compilation that produced them.
type Symbol interface {
	// Name returns the declared name of this symbol ("" where the
	// declaration form is anonymous).
	Name() string
	// SymbolKind returns the variant of this symbol.
	SymbolKind() SymbolKind
}

// ValueSymbol is a symbol which can appear in expression position, such as a
// parameter or an enum member.
type ValueSymbol interface {
	Symbol
	// Type returns the declared type of this symbol.
	Type() Type
}

// ============================================================================
// Compilation Unit
// ============================================================================

// CompilationUnitSymbol is the root symbol covering one source file's
// declarations.
type CompilationUnitSymbol struct {
	name string
	// Scope introduced by this unit.
	UnitScope *Scope
	// Resolved members, in declaration order.
	Members []Symbol
}

// NewCompilationUnitSymbol constructs a compilation unit symbol.
func NewCompilationUnitSymbol(name string, scope *Scope) *CompilationUnitSymbol {
	return &CompilationUnitSymbol{name, scope, nil}
}

// Name returns the declared name of this symbol.
func (p *CompilationUnitSymbol) Name() string { return p.name }

// SymbolKind returns the variant of this symbol.
func (p *CompilationUnitSymbol) SymbolKind() SymbolKind { return SymCompilationUnit }

// ============================================================================
// Instance
// ============================================================================

// InstancePortConnection records the binding of one port of an instance.
type InstancePortConnection struct {
	// Name of the port.
	Port string
	// Bound connection expression (nil for an unconnected port).
	Value Expr
}

// InstanceSymbol is a module or interface instance.
type InstanceSymbol struct {
	name string
	// Name of the instantiated module.
	Module string
	// Port connections, in source order.
	Connections []InstancePortConnection
}

// NewInstanceSymbol constructs an instance symbol.
func NewInstanceSymbol(name string, module string, connections []InstancePortConnection) *InstanceSymbol {
	return &InstanceSymbol{name, module, connections}
}

// Name returns the declared name of this symbol.
func (p *InstanceSymbol) Name() string { return p.name }

// SymbolKind returns the variant of this symbol.
func (p *InstanceSymbol) SymbolKind() SymbolKind { return SymInstance }

// ============================================================================
// Statement Block
// ============================================================================

// StatementBlockSymbol is a begin/end statement block.
type StatementBlockSymbol struct {
	name string
	// Resolved members, in declaration order.
	Members []Symbol
}

// NewStatementBlockSymbol constructs a statement block symbol.
func NewStatementBlockSymbol(name string) *StatementBlockSymbol {
	return &StatementBlockSymbol{name, nil}
}

// Name returns the declared label of this block ("" when unlabelled).
func (p *StatementBlockSymbol) Name() string { return p.name }

// SymbolKind returns the variant of this symbol.
func (p *StatementBlockSymbol) SymbolKind() SymbolKind { return SymStatementBlock }

// ============================================================================
// Procedural Block
// ============================================================================

// ProceduralBlockSymbol is an initial, final or always construct.
type ProceduralBlockSymbol struct {
	// Which procedural form this is.
	Procedure syntax.ProceduralKind
	// Body block of the construct.
	Body *StatementBlockSymbol
}

// NewProceduralBlockSymbol constructs a procedural block symbol.
func NewProceduralBlockSymbol(procedure syntax.ProceduralKind, body *StatementBlockSymbol) *ProceduralBlockSymbol {
	return &ProceduralBlockSymbol{procedure, body}
}

// Name returns the declared name of this symbol.  Procedural blocks are
// anonymous.
func (p *ProceduralBlockSymbol) Name() string { return "" }

// SymbolKind returns the variant of this symbol.
func (p *ProceduralBlockSymbol) SymbolKind() SymbolKind { return SymProceduralBlock }

// ============================================================================
// Generate Blocks
// ============================================================================

// GenerateBlockSymbol is a single generate block, either the body of an
// if-generate or one entry of a loop-generate array.
type GenerateBlockSymbol struct {
	name string
	// Whether this block is actually instantiated.
	Taken bool
	// Resolved members, in declaration order (empty when not taken).
	Members []Symbol
	// Value of the generate index for loop entries.
	Index int64
}

// NewGenerateBlockSymbol constructs a generate block symbol.
func NewGenerateBlockSymbol(name string, taken bool) *GenerateBlockSymbol {
	return &GenerateBlockSymbol{name, taken, nil, 0}
}

// Name returns the declared label of this block ("" when unlabelled).
func (p *GenerateBlockSymbol) Name() string { return p.name }

// SymbolKind returns the variant of this symbol.
func (p *GenerateBlockSymbol) SymbolKind() SymbolKind { return SymGenerateBlock }

// GenerateBlockArraySymbol is the array of blocks produced by a
// loop-generate construct, one entry per iteration of its constant bounds.
type GenerateBlockArraySymbol struct {
	name string
	// Entries of the array, in iteration order.
	Entries []*GenerateBlockSymbol
	// Constant lower bound (inclusive).
	Lower int64
	// Constant upper bound (exclusive).
	Upper int64
}

// NewGenerateBlockArraySymbol constructs a generate block array symbol.
func NewGenerateBlockArraySymbol(name string, lower int64, upper int64) *GenerateBlockArraySymbol {
	return &GenerateBlockArraySymbol{name, nil, lower, upper}
}

// Name returns the declared label of this array ("" when unlabelled).
func (p *GenerateBlockArraySymbol) Name() string { return p.name }

// SymbolKind returns the variant of this symbol.
func (p *GenerateBlockArraySymbol) SymbolKind() SymbolKind { return SymGenerateBlockArray }

// ============================================================================
// Subroutine
// ============================================================================

// FormalArgumentSymbol is one formal argument of a subroutine.  Its value is
// only defined within an evaluation frame for a call of the subroutine.
type FormalArgumentSymbol struct {
	name string
	typ  Type
}

// NewFormalArgumentSymbol constructs a formal argument symbol.
func NewFormalArgumentSymbol(name string, typ Type) *FormalArgumentSymbol {
	return &FormalArgumentSymbol{name, typ}
}

// Name returns the declared name of this symbol.
func (p *FormalArgumentSymbol) Name() string { return p.name }

// SymbolKind returns the variant of this symbol.
func (p *FormalArgumentSymbol) SymbolKind() SymbolKind { return SymFormalArgument }

// Type returns the declared type of this symbol.
func (p *FormalArgumentSymbol) Type() Type { return p.typ }

// SubroutineSymbol is a function or task.  Functions with expression bodies
// are eligible for constant evaluation; tasks never are.
type SubroutineSymbol struct {
	name string
	// Whether this is a task rather than a function.
	IsTask bool
	// Return type (void for tasks).
	Return Type
	// Formal arguments, in declaration order.
	Formals []*FormalArgumentSymbol
	// Bound expression body, when the function has one.
	Body Expr
}

// NewSubroutineSymbol constructs a subroutine symbol.
func NewSubroutineSymbol(name string, isTask bool, ret Type, formals []*FormalArgumentSymbol) *SubroutineSymbol {
	return &SubroutineSymbol{name, isTask, ret, formals, nil}
}

// Name returns the declared name of this symbol.
func (p *SubroutineSymbol) Name() string { return p.name }

// SymbolKind returns the variant of this symbol.
func (p *SubroutineSymbol) SymbolKind() SymbolKind { return SymSubroutine }

// Arity returns the number of formal arguments.
func (p *SubroutineSymbol) Arity() uint { return uint(len(p.Formals)) }

// ============================================================================
// Enum Type
// ============================================================================

// EnumMemberSymbol is one named member of an enumeration type.
type EnumMemberSymbol struct {
	name string
	// Constant value of this member.
	Value Value
	// Enclosing enumeration type.
	Parent *EnumTypeSymbol
}

// NewEnumMemberSymbol constructs an enum member symbol.
func NewEnumMemberSymbol(name string, value Value, parent *EnumTypeSymbol) *EnumMemberSymbol {
	return &EnumMemberSymbol{name, value, parent}
}

// Name returns the declared name of this symbol.
func (p *EnumMemberSymbol) Name() string { return p.name }

// SymbolKind returns the variant of this symbol.
func (p *EnumMemberSymbol) SymbolKind() SymbolKind { return SymEnumMember }

// Type returns the enclosing enumeration type.
func (p *EnumMemberSymbol) Type() Type { return p.Parent }

// EnumTypeSymbol is an enumeration type.  Like its counterpart in the source
// language, it is both a symbol (the declaration) and a type (usable in
// expression typing), so it implements both interfaces.
type EnumTypeSymbol struct {
	name string
	// Base type of the enumeration.
	Base Type
	// Members, in declaration order.
	Members []*EnumMemberSymbol
}

// NewEnumTypeSymbol constructs an enum type symbol over a given base type.
func NewEnumTypeSymbol(name string, base Type) *EnumTypeSymbol {
	return &EnumTypeSymbol{name, base, nil}
}

// Name returns the declared name of this symbol.
func (p *EnumTypeSymbol) Name() string { return p.name }

// SymbolKind returns the variant of this symbol.
func (p *EnumTypeSymbol) SymbolKind() SymbolKind { return SymEnumType }

// MemberByValue finds the member holding a given value, if any.
func (p *EnumTypeSymbol) MemberByValue(value Value) *EnumMemberSymbol {
	for _, m := range p.Members {
		if m.Value.Equals(value) {
			return m
		}
	}
	//
	return nil
}

// TypeKind returns the variant of this type.
func (p *EnumTypeSymbol) TypeKind() TypeKind { return TypeEnum }

// IsIntegral determines whether this type is integral.  Enums are integral
// through their base type.
func (p *EnumTypeSymbol) IsIntegral() bool { return true }

// IsFloating determines whether this type is a floating point type.
func (p *EnumTypeSymbol) IsFloating() bool { return false }

// IsString determines whether this type is the string type.
func (p *EnumTypeSymbol) IsString() bool { return false }

// IsAggregate determines whether this type is an unpacked aggregate.
func (p *EnumTypeSymbol) IsAggregate() bool { return false }

// CanBeDisplayed determines whether a value of this type has a default
// display representation.
func (p *EnumTypeSymbol) CanBeDisplayed() bool { return true }

// BitWidth returns the bit width of this type.
func (p *EnumTypeSymbol) BitWidth() uint { return p.Base.BitWidth() }

// IsSigned determines whether this type is signed.
func (p *EnumTypeSymbol) IsSigned() bool { return p.Base.IsSigned() }

// IsFourState determines whether this type can carry unknown bits.
func (p *EnumTypeSymbol) IsFourState() bool { return p.Base.IsFourState() }

// Resolve strips any alias indirection.
func (p *EnumTypeSymbol) Resolve() Type { return p }

func (p *EnumTypeSymbol) String() string {
	if p.name != "" {
		return p.name
	}
	//
	return "enum"
}

// ============================================================================
// Type Alias
// ============================================================================

// TypeAliasSymbol is a type alias introduced by a typedef.  Like the enum
// type it is both a symbol and a type; resolving it strips the alias.
type TypeAliasSymbol struct {
	name string
	// Target type being aliased.
	Target Type
}

// NewTypeAliasSymbol constructs a type alias symbol.
func NewTypeAliasSymbol(name string, target Type) *TypeAliasSymbol {
	return &TypeAliasSymbol{name, target}
}

// Name returns the declared name of this symbol.
func (p *TypeAliasSymbol) Name() string { return p.name }

// SymbolKind returns the variant of this symbol.
func (p *TypeAliasSymbol) SymbolKind() SymbolKind { return SymTypeAlias }

// TypeKind returns the variant of this type.
func (p *TypeAliasSymbol) TypeKind() TypeKind { return TypeAlias }

// IsIntegral determines whether this type is integral.
func (p *TypeAliasSymbol) IsIntegral() bool { return p.Target.IsIntegral() }

// IsFloating determines whether this type is a floating point type.
func (p *TypeAliasSymbol) IsFloating() bool { return p.Target.IsFloating() }

// IsString determines whether this type is the string type.
func (p *TypeAliasSymbol) IsString() bool { return p.Target.IsString() }

// IsAggregate determines whether this type is an unpacked aggregate.
func (p *TypeAliasSymbol) IsAggregate() bool { return p.Target.IsAggregate() }

// CanBeDisplayed determines whether a value of this type has a default
// display representation.
func (p *TypeAliasSymbol) CanBeDisplayed() bool { return p.Target.CanBeDisplayed() }

// BitWidth returns the bit width of this type.
func (p *TypeAliasSymbol) BitWidth() uint { return p.Target.BitWidth() }

// IsSigned determines whether this type is signed.
func (p *TypeAliasSymbol) IsSigned() bool { return p.Target.IsSigned() }

// IsFourState determines whether this type can carry unknown bits.
func (p *TypeAliasSymbol) IsFourState() bool { return p.Target.IsFourState() }

// Resolve strips any alias indirection.
func (p *TypeAliasSymbol) Resolve() Type { return p.Target.Resolve() }

func (p *TypeAliasSymbol) String() string { return p.name }

// ============================================================================
// Parameter
// ============================================================================

// ParameterSymbol is an elaboration-time constant.
type ParameterSymbol struct {
	name string
	typ  Type
	// Constant value of this parameter.
	Value Value
}

// NewParameterSymbol constructs a parameter symbol.
func NewParameterSymbol(name string, typ Type, value Value) *ParameterSymbol {
	return &ParameterSymbol{name, typ, value}
}

// Name returns the declared name of this symbol.
func (p *ParameterSymbol) Name() string { return p.name }

// SymbolKind returns the variant of this symbol.
func (p *ParameterSymbol) SymbolKind() SymbolKind { return SymParameter }

// Type returns the declared type of this symbol.
func (p *ParameterSymbol) Type() Type { return p.typ }
