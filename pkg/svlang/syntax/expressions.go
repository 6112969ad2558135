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
	"math/big"

	"github.com/silogic/go-svsem/pkg/util/source"
)

// Expr is a syntax node which can appear in expression position.
type Expr interface {
	Node
	// isExpr distinguishes expressions from other nodes.
	isExpr()
}

// UnaryOp identifies a unary operator.
type UnaryOp int

const (
	// UnaryMinus is arithmetic negation.
	UnaryMinus UnaryOp = iota
	// UnaryPlus is the identity operator.
	UnaryPlus
	// UnaryNot is bitwise complement.
	UnaryNot
	// UnaryLogicalNot is logical negation.
	UnaryLogicalNot
)

// BinaryOp identifies a binary operator.
type BinaryOp int

const (
	// BinaryAdd is addition.
	BinaryAdd BinaryOp = iota
	// BinarySubtract is subtraction.
	BinarySubtract
	// BinaryMultiply is multiplication.
	BinaryMultiply
	// BinaryDivide is division.
	BinaryDivide
	// BinaryMod is remainder.
	BinaryMod
	// BinaryShiftLeft is a logical left shift.
	BinaryShiftLeft
	// BinaryShiftRight is a logical right shift.
	BinaryShiftRight
	// BinaryAnd is bitwise conjunction.
	BinaryAnd
	// BinaryOr is bitwise disjunction.
	BinaryOr
	// BinaryXor is bitwise exclusive disjunction.
	BinaryXor
	// BinaryLess is the less-than comparison.
	BinaryLess
	// BinaryEquals is the equality comparison.
	BinaryEquals
)

// ============================================================================
// Literals
// ============================================================================

// IntegerLiteral is an integral literal with an explicit or inferred width
// and signedness, e.g. "42" or "8'hff".
type IntegerLiteral struct {
	span source.Span
	// Literal value.
	Value *big.Int
	// Bit width of the literal.
	Width uint
	// Whether the literal is signed.
	Signed bool
}

// NewIntegerLiteral constructs an integer literal node with the default
// 32-bit signed interpretation of an unbased literal.
func NewIntegerLiteral(span source.Span, value int64) *IntegerLiteral {
	return &IntegerLiteral{span, big.NewInt(value), 32, true}
}

// NewSizedIntegerLiteral constructs an integer literal node with an explicit
// width and signedness.
func NewSizedIntegerLiteral(span source.Span, value *big.Int, width uint, signed bool) *IntegerLiteral {
	return &IntegerLiteral{span, value, width, signed}
}

// Kind returns the syntactic category of this node.
func (p *IntegerLiteral) Kind() Kind { return KindIntegerLiteral }

// Span returns the location of this node in its originating source text.
func (p *IntegerLiteral) Span() source.Span { return p.span }

func (p *IntegerLiteral) isExpr() {}

// RealLiteral is a real literal, e.g. "3.14".
type RealLiteral struct {
	span source.Span
	// Literal value.
	Value float64
}

// NewRealLiteral constructs a real literal node.
func NewRealLiteral(span source.Span, value float64) *RealLiteral {
	return &RealLiteral{span, value}
}

// Kind returns the syntactic category of this node.
func (p *RealLiteral) Kind() Kind { return KindRealLiteral }

// Span returns the location of this node in its originating source text.
func (p *RealLiteral) Span() source.Span { return p.span }

func (p *RealLiteral) isExpr() {}

// StringLiteral is a string literal.  The value holds the raw characters of
// the literal body, without surrounding quotes and without escape sequences
// having been processed.
type StringLiteral struct {
	span source.Span
	// Raw literal body.
	Value string
}

// NewStringLiteral constructs a string literal node.
func NewStringLiteral(span source.Span, value string) *StringLiteral {
	return &StringLiteral{span, value}
}

// Kind returns the syntactic category of this node.
func (p *StringLiteral) Kind() Kind { return KindStringLiteral }

// Span returns the location of this node in its originating source text.
func (p *StringLiteral) Span() source.Span { return p.span }

func (p *StringLiteral) isExpr() {}

// ============================================================================
// Names
// ============================================================================

// Identifier is a simple name expression, resolved against the enclosing
// scope chain during binding.
type Identifier struct {
	span source.Span
	// Name being referenced.
	Name string
}

// NewIdentifier constructs an identifier node.
func NewIdentifier(span source.Span, name string) *Identifier {
	return &Identifier{span, name}
}

// Kind returns the syntactic category of this node.
func (p *Identifier) Kind() Kind { return KindIdentifier }

// Span returns the location of this node in its originating source text.
func (p *Identifier) Span() source.Span { return p.span }

func (p *Identifier) isExpr() {}

// ============================================================================
// Operators
// ============================================================================

// UnaryExpr applies a unary operator to an operand.
type UnaryExpr struct {
	span source.Span
	// Operator being applied.
	Op UnaryOp
	// Operand expression.
	Operand Expr
}

// NewUnaryExpr constructs a unary operator node.
func NewUnaryExpr(span source.Span, op UnaryOp, operand Expr) *UnaryExpr {
	return &UnaryExpr{span, op, operand}
}

// Kind returns the syntactic category of this node.
func (p *UnaryExpr) Kind() Kind { return KindUnaryExpr }

// Span returns the location of this node in its originating source text.
func (p *UnaryExpr) Span() source.Span { return p.span }

func (p *UnaryExpr) isExpr() {}

// BinaryExpr applies a binary operator to two operands.
type BinaryExpr struct {
	span source.Span
	// Operator being applied.
	Op BinaryOp
	// Left operand.
	Left Expr
	// Right operand.
	Right Expr
}

// NewBinaryExpr constructs a binary operator node.
func NewBinaryExpr(span source.Span, op BinaryOp, left Expr, right Expr) *BinaryExpr {
	return &BinaryExpr{span, op, left, right}
}

// Kind returns the syntactic category of this node.
func (p *BinaryExpr) Kind() Kind { return KindBinaryExpr }

// Span returns the location of this node in its originating source text.
func (p *BinaryExpr) Span() source.Span { return p.span }

func (p *BinaryExpr) isExpr() {}

// ConditionalExpr is the ternary conditional operator.
type ConditionalExpr struct {
	span source.Span
	// Condition expression.
	Condition Expr
	// Expression selected when the condition holds.
	Then Expr
	// Expression selected otherwise.
	Else Expr
}

// NewConditionalExpr constructs a conditional operator node.
func NewConditionalExpr(span source.Span, cond Expr, then Expr, els Expr) *ConditionalExpr {
	return &ConditionalExpr{span, cond, then, els}
}

// Kind returns the syntactic category of this node.
func (p *ConditionalExpr) Kind() Kind { return KindConditionalExpr }

// Span returns the location of this node in its originating source text.
func (p *ConditionalExpr) Span() source.Span { return p.span }

func (p *ConditionalExpr) isExpr() {}

// CallExpr invokes a subroutine by name.
type CallExpr struct {
	span source.Span
	// Name of the subroutine being invoked.
	Name string
	// Actual arguments, in call order.
	Args []Expr
}

// NewCallExpr constructs a call node.
func NewCallExpr(span source.Span, name string, args ...Expr) *CallExpr {
	return &CallExpr{span, name, args}
}

// Kind returns the syntactic category of this node.
func (p *CallExpr) Kind() Kind { return KindCallExpr }

// Span returns the location of this node in its originating source text.
func (p *CallExpr) Span() source.Span { return p.span }

func (p *CallExpr) isExpr() {}
