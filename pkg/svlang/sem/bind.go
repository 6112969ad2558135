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

// Bind resolves a syntax expression against a context, producing a typed
// bound expression.  Failures report through the context's sink and return
// false; in that case the expression result is nil.
func Bind(ctx BindContext, expr syntax.Expr) (ast.Expr, bool) {
	switch e := expr.(type) {
	case *syntax.IntegerLiteral:
		typ := ast.NewIntegralType(e.Width, e.Signed, false)
		return ast.NewLiteral(e.Span(), typ, ast.NewInteger(e.Value, e.Width, e.Signed)), true
	case *syntax.RealLiteral:
		return ast.NewLiteral(e.Span(), ast.NewRealType(), ast.NewReal(e.Value)), true
	case *syntax.StringLiteral:
		return ast.NewLiteral(e.Span(), ast.NewStringType(), ast.NewString(e.Value)), true
	case *syntax.Identifier:
		return bindIdentifier(ctx, e)
	case *syntax.UnaryExpr:
		return bindUnary(ctx, e)
	case *syntax.BinaryExpr:
		return bindBinary(ctx, e)
	case *syntax.ConditionalExpr:
		return bindConditional(ctx, e)
	case *syntax.CallExpr:
		return bindCall(ctx, e)
	default:
		panic("unreachable")
	}
}

func bindIdentifier(ctx BindContext, e *syntax.Identifier) (ast.Expr, bool) {
	sym, ok := ctx.Scope.Lookup(e.Name)
	if !ok {
		ctx.ReportError(e.Span(), CodeUndefinedName, "use of undefined name '%s'", e.Name)
		return nil, false
	}
	// Only value symbols can appear in expression position.
	vsym, ok := sym.(ast.ValueSymbol)
	if !ok {
		ctx.ReportError(e.Span(), CodeNotAValue, "'%s' is a %s, not a value", e.Name, sym.SymbolKind())
		return nil, false
	}
	// Formal arguments are only meaningful inside a subroutine body.
	if _, formal := vsym.(*ast.FormalArgumentSymbol); formal && !ctx.InFunctionBody() {
		ctx.ReportError(e.Span(), CodeNotConstant, "'%s' is not usable outside its subroutine", e.Name)
		return nil, false
	}
	//
	return ast.NewNamedValue(e.Span(), vsym), true
}

func bindUnary(ctx BindContext, e *syntax.UnaryExpr) (ast.Expr, bool) {
	operand, ok := Bind(ctx, e.Operand)
	if !ok {
		return nil, false
	}
	//
	typ := operand.Type()
	//
	switch e.Op {
	case syntax.UnaryMinus, syntax.UnaryPlus:
		if !typ.IsIntegral() && !typ.IsFloating() {
			ctx.ReportError(e.Span(), CodeBadOperandType, "arithmetic operator requires a numeric operand, not %s", typ)
			return nil, false
		}
	case syntax.UnaryNot:
		if !typ.IsIntegral() {
			ctx.ReportError(e.Span(), CodeBadOperandType, "bitwise operator requires an integral operand, not %s", typ)
			return nil, false
		}
	case syntax.UnaryLogicalNot:
		if !typ.IsIntegral() && !typ.IsFloating() {
			ctx.ReportError(e.Span(), CodeBadOperandType, "logical operator requires a numeric operand, not %s", typ)
			return nil, false
		}
		// Logical operators self-determine to a single bit.
		typ = ast.BitType(1)
	}
	//
	return ast.NewUnaryExpr(e.Span(), typ, e.Op, operand), true
}

func bindBinary(ctx BindContext, e *syntax.BinaryExpr) (ast.Expr, bool) {
	left, lok := Bind(ctx, e.Left)
	right, rok := Bind(ctx, e.Right)
	// Bind both sides before bailing, so one pass reports both failures.
	if !lok || !rok {
		return nil, false
	}
	//
	lt, rt := left.Type(), right.Type()
	//
	var typ ast.Type
	//
	switch e.Op {
	case syntax.BinaryAdd, syntax.BinarySubtract, syntax.BinaryMultiply, syntax.BinaryDivide:
		if !isNumeric(lt) || !isNumeric(rt) {
			ctx.ReportError(e.Span(), CodeBadOperandType, "arithmetic operator requires numeric operands, not %s and %s", lt, rt)
			return nil, false
		}
		typ = commonArithmeticType(lt, rt)
	case syntax.BinaryMod, syntax.BinaryShiftLeft, syntax.BinaryShiftRight,
		syntax.BinaryAnd, syntax.BinaryOr, syntax.BinaryXor:
		if !lt.IsIntegral() || !rt.IsIntegral() {
			ctx.ReportError(e.Span(), CodeBadOperandType, "bitwise operator requires integral operands, not %s and %s", lt, rt)
			return nil, false
		}
		typ = commonArithmeticType(lt, rt)
	case syntax.BinaryLess, syntax.BinaryEquals:
		numeric := isNumeric(lt) && isNumeric(rt)
		strings := lt.IsString() && rt.IsString()
		//
		if !numeric && !strings {
			ctx.ReportError(e.Span(), CodeBadOperandType, "cannot compare %s with %s", lt, rt)
			return nil, false
		}
		// Comparisons self-determine to a single bit.
		typ = ast.BitType(1)
	default:
		panic("unreachable")
	}
	//
	return ast.NewBinaryExpr(e.Span(), typ, e.Op, left, right), true
}

func bindConditional(ctx BindContext, e *syntax.ConditionalExpr) (ast.Expr, bool) {
	cond, cok := Bind(ctx, e.Condition)
	then, tok := Bind(ctx, e.Then)
	els, eok := Bind(ctx, e.Else)
	//
	if !cok || !tok || !eok {
		return nil, false
	}
	//
	if !isNumeric(cond.Type()) {
		ctx.ReportError(e.Span(), CodeBadOperandType, "condition must be numeric, not %s", cond.Type())
		return nil, false
	}
	// The branches determine the result type together.
	tt, et := then.Type(), els.Type()
	//
	var typ ast.Type
	//
	switch {
	case tt.IsString() && et.IsString():
		typ = tt
	case isNumeric(tt) && isNumeric(et):
		typ = commonArithmeticType(tt, et)
	default:
		ctx.ReportError(e.Span(), CodeBadOperandType, "conditional branches have incompatible types %s and %s", tt, et)
		return nil, false
	}
	//
	return ast.NewConditionalExpr(e.Span(), typ, cond, then, els), true
}

func bindCall(ctx BindContext, e *syntax.CallExpr) (ast.Expr, bool) {
	sym, ok := ctx.Scope.Lookup(e.Name)
	if !ok {
		ctx.ReportError(e.Span(), CodeUndefinedName, "use of undefined name '%s'", e.Name)
		return nil, false
	}
	//
	sub, ok := sym.(*ast.SubroutineSymbol)
	if !ok {
		ctx.ReportError(e.Span(), CodeNotASubroutine, "'%s' is a %s and cannot be called", e.Name, sym.SymbolKind())
		return nil, false
	}
	//
	if uint(len(e.Args)) != sub.Arity() {
		ctx.ReportError(e.Span(), CodeWrongArgCount,
			"'%s' expects %d arguments, got %d", e.Name, sub.Arity(), len(e.Args))
		return nil, false
	}
	//
	args := make([]ast.Expr, len(e.Args))
	//
	for i, a := range e.Args {
		arg, ok := Bind(ctx, a)
		if !ok {
			return nil, false
		}
		//
		args[i] = arg
	}
	//
	return ast.NewCallExpr(e.Span(), sub, args), true
}

// isNumeric determines whether a type participates in arithmetic.
func isNumeric(t ast.Type) bool {
	return t.IsIntegral() || t.IsFloating()
}

// commonArithmeticType determines the result type of a binary arithmetic
// operation: real if either side is real, otherwise an integral of the
// larger width, signed only when both sides are signed.
func commonArithmeticType(lt ast.Type, rt ast.Type) ast.Type {
	if lt.IsFloating() || rt.IsFloating() {
		return ast.NewRealType()
	}
	//
	width := max(lt.BitWidth(), rt.BitWidth())
	signed := lt.IsSigned() && rt.IsSigned()
	fourState := lt.IsFourState() || rt.IsFourState()
	//
	return ast.NewIntegralType(width, signed, fourState)
}
