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
	"github.com/silogic/go-svsem/pkg/util/source"
)

// Expr is a bound (i.e. resolved and typed) expression.  Bound expressions
// are produced from syntax expressions during binding and are what the
// evaluation and formatting machinery consumes.  Evaluation itself lives
// with the evaluation context, which carries the frame stack and diagnostics
// it requires; expressions only expose their structure.
type Expr interface {
	// Span returns the location of the originating syntax.
	Span() source.Span
	// Type returns the resolved type of this expression.
	Type() Type
	// ConstantValue returns the value of this expression when it is a plain
	// constant (a literal), and None otherwise.  Full constant folding is
	// the evaluation context's job.
	ConstantValue() (Value, bool)
}

// ============================================================================
// Literal
// ============================================================================

// Literal is a constant expression holding its value directly.
type Literal struct {
	span source.Span
	typ  Type
	// Constant payload.
	Value Value
}

// NewLiteral constructs a literal expression.
func NewLiteral(span source.Span, typ Type, value Value) *Literal {
	return &Literal{span, typ, value}
}

// Span returns the location of the originating syntax.
func (p *Literal) Span() source.Span { return p.span }

// Type returns the resolved type of this expression.
func (p *Literal) Type() Type { return p.typ }

// ConstantValue returns the value of this literal.
func (p *Literal) ConstantValue() (Value, bool) { return p.Value, true }

// ============================================================================
// Named Value
// ============================================================================

// NamedValue references a value symbol: a parameter, an enum member, or a
// formal argument of the subroutine being evaluated.
type NamedValue struct {
	span source.Span
	// Referenced symbol.
	Symbol ValueSymbol
}

// NewNamedValue constructs a named value expression.
func NewNamedValue(span source.Span, symbol ValueSymbol) *NamedValue {
	return &NamedValue{span, symbol}
}

// Span returns the location of the originating syntax.
func (p *NamedValue) Span() source.Span { return p.span }

// Type returns the resolved type of this expression.
func (p *NamedValue) Type() Type { return p.Symbol.Type() }

// ConstantValue returns the referenced value for parameters and enum
// members, whose values are fixed at elaboration.
func (p *NamedValue) ConstantValue() (Value, bool) {
	switch sym := p.Symbol.(type) {
	case *ParameterSymbol:
		return sym.Value, true
	case *EnumMemberSymbol:
		return sym.Value, true
	default:
		return Value{}, false
	}
}

// ============================================================================
// Operators
// ============================================================================

// UnaryExpr applies a unary operator to a bound operand.
type UnaryExpr struct {
	span source.Span
	typ  Type
	// Operator being applied.
	Op syntax.UnaryOp
	// Bound operand.
	Operand Expr
}

// NewUnaryExpr constructs a bound unary expression.
func NewUnaryExpr(span source.Span, typ Type, op syntax.UnaryOp, operand Expr) *UnaryExpr {
	return &UnaryExpr{span, typ, op, operand}
}

// Span returns the location of the originating syntax.
func (p *UnaryExpr) Span() source.Span { return p.span }

// Type returns the resolved type of this expression.
func (p *UnaryExpr) Type() Type { return p.typ }

// ConstantValue is None; operators fold through the evaluation context.
func (p *UnaryExpr) ConstantValue() (Value, bool) { return Value{}, false }

// BinaryExpr applies a binary operator to two bound operands.
type BinaryExpr struct {
	span source.Span
	typ  Type
	// Operator being applied.
	Op syntax.BinaryOp
	// Bound left operand.
	Left Expr
	// Bound right operand.
	Right Expr
}

// NewBinaryExpr constructs a bound binary expression.
func NewBinaryExpr(span source.Span, typ Type, op syntax.BinaryOp, left Expr, right Expr) *BinaryExpr {
	return &BinaryExpr{span, typ, op, left, right}
}

// Span returns the location of the originating syntax.
func (p *BinaryExpr) Span() source.Span { return p.span }

// Type returns the resolved type of this expression.
func (p *BinaryExpr) Type() Type { return p.typ }

// ConstantValue is None; operators fold through the evaluation context.
func (p *BinaryExpr) ConstantValue() (Value, bool) { return Value{}, false }

// ConditionalExpr is a bound ternary conditional.
type ConditionalExpr struct {
	span source.Span
	typ  Type
	// Bound condition.
	Condition Expr
	// Bound true branch.
	Then Expr
	// Bound false branch.
	Else Expr
}

// NewConditionalExpr constructs a bound conditional expression.
func NewConditionalExpr(span source.Span, typ Type, cond Expr, then Expr, els Expr) *ConditionalExpr {
	return &ConditionalExpr{span, typ, cond, then, els}
}

// Span returns the location of the originating syntax.
func (p *ConditionalExpr) Span() source.Span { return p.span }

// Type returns the resolved type of this expression.
func (p *ConditionalExpr) Type() Type { return p.typ }

// ConstantValue is None; conditionals fold through the evaluation context.
func (p *ConditionalExpr) ConstantValue() (Value, bool) { return Value{}, false }

// ============================================================================
// Call
// ============================================================================

// CallExpr is a bound invocation of a subroutine.
type CallExpr struct {
	span source.Span
	// Subroutine being invoked.
	Subroutine *SubroutineSymbol
	// Bound actual arguments, in call order.
	Args []Expr
}

// NewCallExpr constructs a bound call expression.
func NewCallExpr(span source.Span, subroutine *SubroutineSymbol, args []Expr) *CallExpr {
	return &CallExpr{span, subroutine, args}
}

// Span returns the location of the originating syntax.
func (p *CallExpr) Span() source.Span { return p.span }

// Type returns the resolved type of this expression.
func (p *CallExpr) Type() Type { return p.Subroutine.Return }

// ConstantValue is None; calls fold through the evaluation context.
func (p *CallExpr) ConstantValue() (Value, bool) { return Value{}, false }
