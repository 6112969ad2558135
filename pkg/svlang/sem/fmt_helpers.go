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
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/silogic/go-svsem/pkg/svlang/ast"
	"github.com/silogic/go-svsem/pkg/util"
	"github.com/silogic/go-svsem/pkg/util/source"
)

// This file implements the display/write/format family of system calls:
// bind-time validation of their argument lists, and expansion of format
// strings against evaluated arguments.  Validation is separated from
// evaluation so that ill-typed calls are rejected as compile errors rather
// than deferred to evaluation failures; the expansion machinery assumes its
// argument list already passed validation.

// CheckDisplayArgs validates that every argument of a display-style call has
// a type with a default display representation.  The first disallowed type
// reports through the context's sink and fails the check.
func CheckDisplayArgs(ctx BindContext, args []ast.Expr) bool {
	for _, arg := range args {
		typ := arg.Type()
		// An error type was already diagnosed during binding.
		if typ.TypeKind() == ast.TypeError {
			return false
		}
		//
		if !typ.CanBeDisplayed() {
			ctx.ReportError(arg.Span(), CodeWrongDisplayType,
				"type %s has no default display representation", typ)
			return false
		}
	}
	//
	return true
}

// CheckSFormatArgs validates an sformat-style call: the first argument is a
// string-valued format template (not itself a value to be formatted), the
// rest are display arguments.  When the template is a compile-time literal,
// its specifiers are additionally checked against the remaining arguments
// here, at bind time.
func CheckSFormatArgs(ctx BindContext, args []ast.Expr) bool {
	if len(args) == 0 {
		ctx.ReportError(source.NewSpan(0, 0), CodeFormatNotString,
			"expected a format string argument")
		return false
	}
	//
	first := args[0]
	//
	if !first.Type().IsString() {
		ctx.ReportError(first.Span(), CodeFormatNotString,
			"format template must be a string, not %s", first.Type())
		return false
	}
	//
	if !CheckDisplayArgs(ctx, args[1:]) {
		return false
	}
	// Statically check a literal template against the argument list.
	if val, ok := first.ConstantValue(); ok && val.IsString() {
		return checkFormatString(ctx, val.AsString(), first.Span(), args[1:])
	}
	//
	return true
}

// CheckFinishNum validates the argument of a finish/stop-style call: it must
// be integral and, where constant, drawn from the accepted set {0, 1, 2}.
func CheckFinishNum(ctx BindContext, arg ast.Expr) bool {
	if !arg.Type().IsIntegral() {
		ctx.ReportError(arg.Span(), CodeBadFinishNum,
			"finish argument must be integral, not %s", arg.Type())
		return false
	}
	//
	if val, ok := arg.ConstantValue(); ok && val.IsInteger() {
		if n, ok := val.AsInt64(); !ok || n < 0 || n > 2 {
			ctx.ReportError(arg.Span(), CodeBadFinishNum,
				"finish argument must be 0, 1, or 2")
			return false
		}
	}
	//
	return true
}

// checkFormatString walks a literal format template, checking specifier
// arity and argument compatibility without evaluating anything.
func checkFormatString(ctx BindContext, format string, loc source.Span, args []ast.Expr) bool {
	runes := []rune(format)
	argIdx := 0
	//
	for i := 0; i < len(runes); {
		if runes[i] != '%' {
			i++
			continue
		}
		//
		spec, next, ok := scanSpecifier(runes, i+1)
		if !ok {
			ctx.ReportError(loc, CodeUnknownSpecifier,
				"unknown format specifier '%%%c'", badSpecifierChar(runes, i+1))
			return false
		}
		//
		i = next
		//
		if !spec.consumesArg() {
			continue
		}
		//
		if argIdx >= len(args) {
			ctx.ReportError(loc, CodeMissingFormatArg,
				"no argument for '%%%c' specifier", spec.verb)
			return false
		}
		//
		arg := args[argIdx]
		argIdx++
		//
		if !spec.validForType(arg.Type()) {
			ctx.ReportError(arg.Span(), CodeBadFormatArgType,
				"argument of type %s is not valid for '%%%c'", arg.Type(), spec.verb)
			return false
		}
	}
	//
	if argIdx < len(args) {
		ctx.ReportError(args[argIdx].Span(), CodeExtraFormatArgs,
			"%d argument(s) not consumed by format string", len(args)-argIdx)
		return false
	}
	//
	return true
}

// FormatArgs expands a format string against an already-validated argument
// list, evaluating each consumed argument in the given context.  When
// isStringLiteral is set, escape sequences in literal segments are
// additionally processed (the template came straight from a string literal
// rather than an already-unescaped string value).  Unrecoverable failures
// return None; diagnostics queued before the failure remain visible in the
// evaluation context.
func FormatArgs(format string, loc source.Span, scope *ast.Scope, ectx *EvalContext,
	args []ast.Expr, isStringLiteral bool) util.Option[string] {
	var out strings.Builder
	//
	runes := []rune(format)
	argIdx := 0
	//
	for i := 0; i < len(runes); {
		c := runes[i]
		//
		switch {
		case c == '%':
			spec, next, ok := scanSpecifier(runes, i+1)
			if !ok {
				ectx.Report(Errorf(loc, CodeUnknownSpecifier,
					"unknown format specifier '%%%c'", badSpecifierChar(runes, i+1)))
				return util.None[string]()
			}
			//
			i = next
			//
			if ok := expandSpecifier(&out, spec, loc, scope, ectx, args, &argIdx); !ok {
				return util.None[string]()
			}
		case c == '\\' && isStringLiteral:
			text, next := unescape(runes, i)
			out.WriteString(text)
			i = next
		default:
			out.WriteRune(c)
			i++
		}
	}
	// Leftover arguments are a diagnostic, but the output itself is sound.
	if argIdx < len(args) {
		ectx.Report(Errorf(args[argIdx].Span(), CodeExtraFormatArgs,
			"%d argument(s) not consumed by format string", len(args)-argIdx))
	}
	//
	return util.Some(out.String())
}

// FormatDisplay renders an argument list with no explicit format string,
// applying each argument's default per-type representation, space-joined.
func FormatDisplay(scope *ast.Scope, ectx *EvalContext, args []ast.Expr) util.Option[string] {
	parts := make([]string, 0, len(args))
	//
	for _, arg := range args {
		val, ok := ectx.Eval(arg)
		if !ok {
			return util.None[string]()
		}
		//
		parts = append(parts, defaultRender(scope, arg.Type(), val))
	}
	//
	return util.Some(strings.Join(parts, " "))
}

// ============================================================================
// Specifier scanning
// ============================================================================

// specifier is one parsed %-directive: optional flags and width/precision
// modifiers followed by a verb character.
type specifier struct {
	verb         rune
	leftJustify  bool
	zeroPad      bool
	width        int
	precision    int
	hasPrecision bool
}

// scanSpecifier parses a specifier body starting just after the '%'.  The
// scanner is a simple left-to-right cursor: flags, then width digits, then
// an optional '.' precision, then the verb.  Returns false on an unknown
// verb or a truncated specifier.
func scanSpecifier(runes []rune, i int) (specifier, int, bool) {
	spec := specifier{width: -1, precision: -1}
	// Flags
	for i < len(runes) {
		if runes[i] == '-' {
			spec.leftJustify = true
		} else if runes[i] == '0' {
			spec.zeroPad = true
		} else {
			break
		}
		//
		i++
	}
	// Width
	for i < len(runes) && runes[i] >= '0' && runes[i] <= '9' {
		if spec.width < 0 {
			spec.width = 0
		}
		//
		spec.width = spec.width*10 + int(runes[i]-'0')
		i++
	}
	// Precision
	if i < len(runes) && runes[i] == '.' {
		i++
		spec.hasPrecision = true
		spec.precision = 0
		//
		for i < len(runes) && runes[i] >= '0' && runes[i] <= '9' {
			spec.precision = spec.precision*10 + int(runes[i]-'0')
			i++
		}
	}
	//
	if i >= len(runes) {
		return spec, i, false
	}
	// Verb characters are accepted case-insensitively.
	spec.verb = lowerRune(runes[i])
	i++
	//
	switch spec.verb {
	case '%', 'm', 'l', 'b', 'o', 'd', 'h', 'x', 'c', 's', 'e', 'f', 'g', 't':
		return spec, i, true
	default:
		return spec, i, false
	}
}

// consumesArg determines whether this specifier consumes one positional
// argument.
func (p specifier) consumesArg() bool {
	switch p.verb {
	case '%', 'm', 'l':
		return false
	default:
		return true
	}
}

// validForType determines whether an argument of the given type can satisfy
// this specifier.  This is a specifier-level check distinct from the blanket
// display validation: a format string can demand a stricter interpretation
// than the default.
func (p specifier) validForType(typ ast.Type) bool {
	t := typ.Resolve()
	//
	switch p.verb {
	case 'b', 'o', 'd', 'h', 'x', 'c':
		return t.IsIntegral()
	case 's':
		return t.IsString() || t.IsIntegral()
	case 'e', 'f', 'g':
		return t.IsFloating() || t.IsIntegral()
	case 't':
		return t.IsIntegral() || t.IsFloating()
	default:
		return true
	}
}

// badSpecifierChar extracts the offending verb character for an
// unknown-specifier diagnostic, tolerating a truncated specifier.
func badSpecifierChar(runes []rune, i int) rune {
	for ; i < len(runes); i++ {
		c := runes[i]
		//
		if c == '-' || c == '.' || (c >= '0' && c <= '9') {
			continue
		}
		//
		return c
	}
	//
	return '%'
}

// ============================================================================
// Expansion
// ============================================================================

// expandSpecifier renders one parsed specifier into the output, consuming
// and evaluating an argument where required.
func expandSpecifier(out *strings.Builder, spec specifier, loc source.Span, scope *ast.Scope,
	ectx *EvalContext, args []ast.Expr, argIdx *int) bool {
	switch spec.verb {
	case '%':
		out.WriteRune('%')
		return true
	case 'm':
		path := scope.Path()
		out.WriteString(pad(path.String(), spec))
		return true
	case 'l':
		fs := scope.FormatState()
		path := scope.Path()
		out.WriteString(pad(fs.Library+"."+path.Head(), spec))
		return true
	}
	//
	if *argIdx >= len(args) {
		ectx.Report(Errorf(loc, CodeMissingFormatArg,
			"no argument for '%%%c' specifier", spec.verb))
		return false
	}
	//
	arg := args[*argIdx]
	*argIdx = *argIdx + 1
	//
	if !spec.validForType(arg.Type()) {
		ectx.Report(Errorf(arg.Span(), CodeBadFormatArgType,
			"argument of type %s is not valid for '%%%c'", arg.Type(), spec.verb))
		return false
	}
	//
	val, ok := ectx.Eval(arg)
	if !ok {
		return false
	}
	//
	out.WriteString(pad(renderValue(spec, scope, arg.Type(), val), spec))
	//
	return true
}

// renderValue produces the unpadded text of one evaluated argument under a
// given specifier.
func renderValue(spec specifier, scope *ast.Scope, typ ast.Type, val ast.Value) string {
	switch spec.verb {
	case 'b':
		return val.FormatRadix(2)
	case 'o':
		return val.FormatRadix(8)
	case 'd':
		return val.FormatDecimal()
	case 'h', 'x':
		return val.FormatRadix(16)
	case 'c':
		n := new(big.Int).And(valBits(val), big.NewInt(0xff)).Uint64()
		return string(rune(n))
	case 's':
		if val.IsString() {
			return val.AsString()
		}
		// An integral renders as its character bytes, high byte first.
		return string(valBits(val).Bytes())
	case 'e', 'f':
		precision := 6
		if spec.hasPrecision {
			precision = spec.precision
		}
		//
		return val.FormatReal(byte(spec.verb), precision)
	case 'g':
		precision := -1
		if spec.hasPrecision {
			precision = spec.precision
		}
		//
		return val.FormatReal('g', precision)
	case 't':
		return renderTime(scope, val)
	default:
		panic("unreachable")
	}
}

// renderTime scales a time value from the scope's active time unit to its
// precision, the resolution in which time values display.
func renderTime(scope *ast.Scope, val ast.Value) string {
	fs := scope.FormatState()
	scale := fs.TimeUnit - fs.TimePrecision
	//
	if val.IsReal() {
		scaled := val.AsReal() * math.Pow10(scale)
		return strconv.FormatFloat(math.Round(scaled), 'f', 0, 64)
	}
	//
	factor := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(scale)), nil)
	scaled := new(big.Int).Mul(val.AsBigInt(), factor)
	//
	return scaled.Text(10)
}

// defaultRender produces the default per-type representation of a value:
// integrals in the scope's default base, reals in shortest scientific form,
// strings verbatim, enums by member name where one matches.
func defaultRender(scope *ast.Scope, typ ast.Type, val ast.Value) string {
	if enum, ok := typ.Resolve().(*ast.EnumTypeSymbol); ok && val.IsInteger() {
		if member := enum.MemberByValue(val); member != nil {
			return member.Name()
		}
	}
	//
	if val.IsInteger() {
		base := scope.FormatState().DefaultBase
		//
		if base != 10 {
			return val.FormatRadix(base)
		}
	}
	//
	return val.String()
}

// valBits returns the raw bit pattern of an integral value, wrapping
// negatives into their two's complement representation.
func valBits(val ast.Value) *big.Int {
	v := val.AsBigInt()
	//
	if v.Sign() < 0 {
		return ast.WrapToWidth(v, val.Width(), false)
	}
	//
	return v
}

// pad applies the width, justification and zero-pad modifiers.
func pad(text string, spec specifier) string {
	if spec.width < 0 || len(text) >= spec.width {
		return text
	}
	//
	gap := spec.width - len(text)
	//
	if spec.leftJustify {
		return text + strings.Repeat(" ", gap)
	}
	//
	if spec.zeroPad {
		// Keep a leading sign ahead of the zeros.
		if strings.HasPrefix(text, "-") {
			return "-" + strings.Repeat("0", gap) + text[1:]
		}
		//
		return strings.Repeat("0", gap) + text
	}
	//
	return strings.Repeat(" ", gap) + text
}

// ============================================================================
// Escapes
// ============================================================================

// unescape processes one escape sequence starting at a backslash, returning
// the replacement text and the index just past the sequence.  Unknown
// escapes pass through unconverted.
func unescape(runes []rune, i int) (string, int) {
	if i+1 >= len(runes) {
		return "\\", i + 1
	}
	//
	c := runes[i+1]
	//
	switch c {
	case 'n':
		return "\n", i + 2
	case 't':
		return "\t", i + 2
	case 'v':
		return "\v", i + 2
	case 'f':
		return "\f", i + 2
	case 'a':
		return "\a", i + 2
	case '\\':
		return "\\", i + 2
	case '"':
		return "\"", i + 2
	case 'x':
		return unescapeHex(runes, i+2)
	}
	// Octal escapes run up to three digits.
	if c >= '0' && c <= '7' {
		value, j := 0, i+1
		//
		for j < len(runes) && j < i+4 && runes[j] >= '0' && runes[j] <= '7' {
			value = value*8 + int(runes[j]-'0')
			j++
		}
		//
		return string(rune(value)), j
	}
	// Not a recognised escape: pass both characters through.
	return string([]rune{'\\', c}), i + 2
}

// unescapeHex processes the digits of a \xHH escape.
func unescapeHex(runes []rune, i int) (string, int) {
	value, j := 0, i
	//
	for j < len(runes) && j < i+2 {
		d, ok := hexDigit(runes[j])
		if !ok {
			break
		}
		//
		value = value*16 + d
		j++
	}
	//
	if j == i {
		// No digits: pass the escape through unconverted.
		return "\\x", i
	}
	//
	return string(rune(value)), j
}

func hexDigit(c rune) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}

func lowerRune(c rune) rune {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	//
	return c
}
