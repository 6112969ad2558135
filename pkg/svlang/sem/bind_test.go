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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/silogic/go-svsem/pkg/svlang/ast"
	"github.com/silogic/go-svsem/pkg/svlang/syntax"
	"github.com/silogic/go-svsem/pkg/util/source"
)

var span = source.NewSpan(0, 0)

// testContext constructs a root scope and a bind context over it, with a fresh
// diagnostic list.
func testContext() (BindContext, *DiagnosticList) {
	scope := ast.NewRootScope("$root", ast.DefaultFormatState())
	diags := &DiagnosticList{}
	//
	return NewBindContext(scope, diags), diags
}

// codes projects diagnostics onto their stable codes.
func codes(diags *DiagnosticList) []string {
	var cs []string
	//
	for _, d := range diags.Diagnostics() {
		cs = append(cs, d.Code)
	}
	//
	return cs
}

func TestBindLiterals(t *testing.T) {
	ctx, diags := testContext()
	//
	ie, ok := Bind(ctx, syntax.NewIntegerLiteral(span, 42))
	assert.True(t, ok)
	assert.True(t, ie.Type().IsIntegral())
	assert.Equal(t, uint(32), ie.Type().BitWidth())
	//
	re, ok := Bind(ctx, syntax.NewRealLiteral(span, 3.5))
	assert.True(t, ok)
	assert.True(t, re.Type().IsFloating())
	//
	se, ok := Bind(ctx, syntax.NewStringLiteral(span, "hi"))
	assert.True(t, ok)
	assert.True(t, se.Type().IsString())
	//
	assert.True(t, diags.Empty())
}

func TestBindUndefinedName(t *testing.T) {
	ctx, diags := testContext()
	//
	_, ok := Bind(ctx, syntax.NewIdentifier(span, "nothing"))
	assert.False(t, ok)
	assert.Equal(t, []string{CodeUndefinedName}, codes(diags))
}

func TestBindNotAValue(t *testing.T) {
	ctx, diags := testContext()
	// A type alias resolves, but cannot appear in expression position.
	ctx.Scope.Define(ast.NewTypeAliasSymbol("byte_t", ast.LogicType(8)))
	//
	_, ok := Bind(ctx, syntax.NewIdentifier(span, "byte_t"))
	assert.False(t, ok)
	assert.Equal(t, []string{CodeNotAValue}, codes(diags))
}

func TestBindParameter(t *testing.T) {
	ctx, diags := testContext()
	ctx.Scope.Define(ast.NewParameterSymbol("WIDTH", ast.IntType(), ast.NewInt32(8)))
	//
	expr, ok := Bind(ctx, syntax.NewIdentifier(span, "WIDTH"))
	assert.True(t, ok)
	assert.True(t, diags.Empty())
	//
	val, ok := expr.ConstantValue()
	assert.True(t, ok)
	assert.Equal(t, "8", val.String())
}

func TestBindFormalOutsideBody(t *testing.T) {
	ctx, diags := testContext()
	ctx.Scope.Define(ast.NewFormalArgumentSymbol("n", ast.IntType()))
	// Outside a function body a formal has no value.
	_, ok := Bind(ctx, syntax.NewIdentifier(span, "n"))
	assert.False(t, ok)
	assert.Equal(t, []string{CodeNotConstant}, codes(diags))
	// Inside one it binds fine.
	inner := ctx.With(BindFunctionBody)
	_, ok = Bind(inner, syntax.NewIdentifier(span, "n"))
	assert.True(t, ok)
}

func TestBindArithmeticTypes(t *testing.T) {
	ctx, _ := testContext()
	//
	tests := []struct {
		name     string
		expr     syntax.Expr
		floating bool
		width    uint
	}{
		{
			"int plus int",
			syntax.NewBinaryExpr(span, syntax.BinaryAdd,
				syntax.NewIntegerLiteral(span, 1), syntax.NewIntegerLiteral(span, 2)),
			false, 32,
		},
		{
			"int plus real",
			syntax.NewBinaryExpr(span, syntax.BinaryAdd,
				syntax.NewIntegerLiteral(span, 1), syntax.NewRealLiteral(span, 2.0)),
			true, 0,
		},
		{
			"mixed widths",
			syntax.NewBinaryExpr(span, syntax.BinaryAdd,
				syntax.NewSizedIntegerLiteral(span, big.NewInt(1), 8, false),
				syntax.NewSizedIntegerLiteral(span, big.NewInt(2), 16, false)),
			false, 16,
		},
	}
	//
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, ok := Bind(ctx, tt.expr)
			assert.True(t, ok)
			assert.Equal(t, tt.floating, expr.Type().IsFloating())
			//
			if !tt.floating {
				assert.Equal(t, tt.width, expr.Type().BitWidth())
			}
		})
	}
}

func TestBindBadOperands(t *testing.T) {
	ctx, diags := testContext()
	// A string cannot participate in arithmetic.
	_, ok := Bind(ctx, syntax.NewBinaryExpr(span, syntax.BinaryAdd,
		syntax.NewStringLiteral(span, "x"), syntax.NewIntegerLiteral(span, 1)))
	assert.False(t, ok)
	assert.Equal(t, []string{CodeBadOperandType}, codes(diags))
	// Nor in bitwise operations.
	_, ok = Bind(ctx, syntax.NewUnaryExpr(span, syntax.UnaryNot,
		syntax.NewRealLiteral(span, 1.0)))
	assert.False(t, ok)
}

func TestBindReportsBothSides(t *testing.T) {
	ctx, diags := testContext()
	// Both operands fail to resolve; both failures must be reported in one
	// pass.
	_, ok := Bind(ctx, syntax.NewBinaryExpr(span, syntax.BinaryAdd,
		syntax.NewIdentifier(span, "a"), syntax.NewIdentifier(span, "b")))
	assert.False(t, ok)
	assert.Equal(t, []string{CodeUndefinedName, CodeUndefinedName}, codes(diags))
}

func TestBindComparisonType(t *testing.T) {
	ctx, _ := testContext()
	//
	expr, ok := Bind(ctx, syntax.NewBinaryExpr(span, syntax.BinaryLess,
		syntax.NewIntegerLiteral(span, 1), syntax.NewIntegerLiteral(span, 2)))
	assert.True(t, ok)
	// Comparisons self-determine to a single bit.
	assert.Equal(t, uint(1), expr.Type().BitWidth())
	// Strings compare with strings, but not with numbers.
	_, ok = Bind(ctx, syntax.NewBinaryExpr(span, syntax.BinaryEquals,
		syntax.NewStringLiteral(span, "a"), syntax.NewStringLiteral(span, "b")))
	assert.True(t, ok)
	//
	_, ok = Bind(ctx, syntax.NewBinaryExpr(span, syntax.BinaryEquals,
		syntax.NewStringLiteral(span, "a"), syntax.NewIntegerLiteral(span, 1)))
	assert.False(t, ok)
}

func TestBindCallErrors(t *testing.T) {
	ctx, diags := testContext()
	//
	sub := ast.NewSubroutineSymbol("double", false, ast.IntType(),
		[]*ast.FormalArgumentSymbol{ast.NewFormalArgumentSymbol("n", ast.IntType())})
	ctx.Scope.Define(sub)
	ctx.Scope.Define(ast.NewParameterSymbol("P", ast.IntType(), ast.NewInt32(0)))
	// Wrong arity.
	_, ok := Bind(ctx, syntax.NewCallExpr(span, "double"))
	assert.False(t, ok)
	// Calling a non-subroutine.
	_, ok = Bind(ctx, syntax.NewCallExpr(span, "P", syntax.NewIntegerLiteral(span, 1)))
	assert.False(t, ok)
	// Calling an unknown name.
	_, ok = Bind(ctx, syntax.NewCallExpr(span, "nope"))
	assert.False(t, ok)
	//
	assert.Equal(t, []string{CodeWrongArgCount, CodeNotASubroutine, CodeUndefinedName}, codes(diags))
}

func TestBindConditional(t *testing.T) {
	ctx, _ := testContext()
	//
	expr, ok := Bind(ctx, syntax.NewConditionalExpr(span,
		syntax.NewIntegerLiteral(span, 1),
		syntax.NewIntegerLiteral(span, 2),
		syntax.NewRealLiteral(span, 3.0)))
	assert.True(t, ok)
	// A real branch makes the whole conditional real.
	assert.True(t, expr.Type().IsFloating())
	// Incompatible branches are rejected.
	_, ok = Bind(ctx, syntax.NewConditionalExpr(span,
		syntax.NewIntegerLiteral(span, 1),
		syntax.NewStringLiteral(span, "x"),
		syntax.NewIntegerLiteral(span, 2)))
	assert.False(t, ok)
}
