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
	"math/big"

	"github.com/silogic/go-svsem/pkg/svlang/ast"
	"github.com/silogic/go-svsem/pkg/svlang/syntax"
)

// Eval reduces a bound expression to a constant value.  Failures (division
// by zero, runaway recursion, a value only defined at runtime) report
// through the context's diagnostics and return false.  Results of top-level
// sub-expressions are cached within the context; results computed inside a
// subroutine frame are not, since they depend on the frame's arguments.
func (p *EvalContext) Eval(expr ast.Expr) (ast.Value, bool) {
	// Literals carry their value directly.
	if val, ok := expr.ConstantValue(); ok {
		return val, true
	}
	//
	cacheable := len(p.frames) == 0
	//
	if cacheable {
		if val, ok := p.cache[expr]; ok {
			return val, true
		}
	}
	//
	val, ok := p.evalDispatch(expr)
	//
	if ok && cacheable {
		p.cache[expr] = val
	}
	//
	return val, ok
}

func (p *EvalContext) evalDispatch(expr ast.Expr) (ast.Value, bool) {
	switch e := expr.(type) {
	case *ast.NamedValue:
		return p.evalNamedValue(e)
	case *ast.UnaryExpr:
		return p.evalUnary(e)
	case *ast.BinaryExpr:
		return p.evalBinary(e)
	case *ast.ConditionalExpr:
		return p.evalConditional(e)
	case *ast.CallExpr:
		return p.evalCall(e)
	default:
		panic("unreachable")
	}
}

func (p *EvalContext) evalNamedValue(e *ast.NamedValue) (ast.Value, bool) {
	// Parameters and enum members were handled by ConstantValue already, so
	// only formal arguments reach this point.
	if val, ok := p.lookupLocal(e.Symbol.Name()); ok {
		return val, true
	}
	//
	p.Report(Errorf(e.Span(), CodeNotConstant,
		"'%s' does not have a value at compile time", e.Symbol.Name()))
	//
	return ast.Value{}, false
}

func (p *EvalContext) evalUnary(e *ast.UnaryExpr) (ast.Value, bool) {
	val, ok := p.Eval(e.Operand)
	if !ok {
		return ast.Value{}, false
	}
	//
	typ := e.Type().Resolve()
	//
	switch e.Op {
	case syntax.UnaryPlus:
		return val, true
	case syntax.UnaryMinus:
		if val.IsReal() {
			return ast.NewReal(-val.AsReal()), true
		}
		//
		result := new(big.Int).Neg(val.AsBigInt())
		return p.makeIntegral(result, typ), true
	case syntax.UnaryNot:
		result := new(big.Int).Not(val.AsBigInt())
		return p.makeIntegral(result, typ), true
	case syntax.UnaryLogicalNot:
		return boolValue(!val.IsTrue()), true
	default:
		panic("unreachable")
	}
}

func (p *EvalContext) evalBinary(e *ast.BinaryExpr) (ast.Value, bool) {
	left, lok := p.Eval(e.Left)
	right, rok := p.Eval(e.Right)
	//
	if !lok || !rok {
		return ast.Value{}, false
	}
	//
	typ := e.Type().Resolve()
	// Real arithmetic applies whenever the result type is real.
	if typ.IsFloating() {
		return evalRealBinary(e.Op, left.AsReal(), right.AsReal()), true
	}
	//
	switch e.Op {
	case syntax.BinaryLess:
		return evalComparison(e.Op, left, right), true
	case syntax.BinaryEquals:
		return evalComparison(e.Op, left, right), true
	}
	//
	lhs, rhs := left.AsBigInt(), right.AsBigInt()
	result := new(big.Int)
	//
	switch e.Op {
	case syntax.BinaryAdd:
		result.Add(lhs, rhs)
	case syntax.BinarySubtract:
		result.Sub(lhs, rhs)
	case syntax.BinaryMultiply:
		result.Mul(lhs, rhs)
	case syntax.BinaryDivide:
		if rhs.Sign() == 0 {
			p.Report(Errorf(e.Span(), CodeDivisionByZero, "division by zero in constant expression"))
			return ast.Value{}, false
		}
		//
		result.Quo(lhs, rhs)
	case syntax.BinaryMod:
		if rhs.Sign() == 0 {
			p.Report(Errorf(e.Span(), CodeDivisionByZero, "division by zero in constant expression"))
			return ast.Value{}, false
		}
		//
		result.Rem(lhs, rhs)
	case syntax.BinaryShiftLeft:
		result.Lsh(lhs, shiftAmount(rhs))
	case syntax.BinaryShiftRight:
		result.Rsh(lhs, shiftAmount(rhs))
	case syntax.BinaryAnd:
		result.And(lhs, rhs)
	case syntax.BinaryOr:
		result.Or(lhs, rhs)
	case syntax.BinaryXor:
		result.Xor(lhs, rhs)
	default:
		panic("unreachable")
	}
	//
	return p.makeIntegral(result, typ), true
}

func (p *EvalContext) evalConditional(e *ast.ConditionalExpr) (ast.Value, bool) {
	cond, ok := p.Eval(e.Condition)
	if !ok {
		return ast.Value{}, false
	}
	//
	if cond.IsTrue() {
		return p.Eval(e.Then)
	}
	//
	return p.Eval(e.Else)
}

func (p *EvalContext) evalCall(e *ast.CallExpr) (ast.Value, bool) {
	sub := e.Subroutine
	//
	if sub.IsTask {
		p.Report(Errorf(e.Span(), CodeNotConstant, "task '%s' cannot be constant evaluated", sub.Name()))
		return ast.Value{}, false
	}
	//
	if sub.Body == nil {
		p.Report(Errorf(e.Span(), CodeNotConstant, "'%s' has no constant-evaluable body", sub.Name()))
		return ast.Value{}, false
	}
	// Evaluate actuals in the calling frame.
	locals := make(map[string]ast.Value, len(e.Args))
	//
	for i, arg := range e.Args {
		val, ok := p.Eval(arg)
		if !ok {
			return ast.Value{}, false
		}
		//
		locals[sub.Formals[i].Name()] = val
	}
	//
	if !p.pushFrame(e.Span(), sub, locals) {
		return ast.Value{}, false
	}
	//
	defer p.popFrame()
	//
	return p.Eval(sub.Body)
}

// makeIntegral wraps an arbitrary-precision result into the two's complement
// range of the result type.
func (p *EvalContext) makeIntegral(val *big.Int, typ ast.Type) ast.Value {
	width, signed := typ.BitWidth(), typ.IsSigned()
	//
	return ast.NewInteger(ast.WrapToWidth(val, width, signed), width, signed)
}

func evalRealBinary(op syntax.BinaryOp, lhs float64, rhs float64) ast.Value {
	switch op {
	case syntax.BinaryAdd:
		return ast.NewReal(lhs + rhs)
	case syntax.BinarySubtract:
		return ast.NewReal(lhs - rhs)
	case syntax.BinaryMultiply:
		return ast.NewReal(lhs * rhs)
	case syntax.BinaryDivide:
		// Real division follows IEEE semantics, including infinities.
		return ast.NewReal(lhs / rhs)
	default:
		panic("unreachable")
	}
}

func evalComparison(op syntax.BinaryOp, left ast.Value, right ast.Value) ast.Value {
	var result bool
	//
	switch {
	case left.IsString() && right.IsString():
		if op == syntax.BinaryLess {
			result = left.AsString() < right.AsString()
		} else {
			result = left.AsString() == right.AsString()
		}
	case left.IsReal() || right.IsReal():
		if op == syntax.BinaryLess {
			result = left.AsReal() < right.AsReal()
		} else {
			result = left.AsReal() == right.AsReal()
		}
	default:
		cmp := left.AsBigInt().Cmp(right.AsBigInt())
		if op == syntax.BinaryLess {
			result = cmp < 0
		} else {
			result = cmp == 0
		}
	}
	//
	return boolValue(result)
}

func boolValue(b bool) ast.Value {
	if b {
		return ast.NewInteger(big.NewInt(1), 1, false)
	}
	//
	return ast.NewInteger(big.NewInt(0), 1, false)
}

// shiftAmount clamps a shift distance to something sane; anything beyond the
// widest representable vector shifts everything out anyway.
func shiftAmount(val *big.Int) uint {
	if !val.IsUint64() || val.Uint64() > 1<<20 {
		return 1 << 20
	}
	//
	return uint(val.Uint64())
}
