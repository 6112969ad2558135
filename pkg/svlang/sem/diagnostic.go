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

	"github.com/silogic/go-svsem/pkg/util/source"
)

// Diagnostic codes reported by this layer.  Codes are stable strings so that
// callers (and tests) can match on them without parsing messages.
const (
	// CodeUndefinedName reports a name with no visible declaration.
	CodeUndefinedName = "undefined-name"
	// CodeNotAValue reports a name which resolves to something that cannot
	// appear in expression position.
	CodeNotAValue = "not-a-value"
	// CodeNotASubroutine reports a call of something that is not callable.
	CodeNotASubroutine = "not-a-subroutine"
	// CodeWrongArgCount reports a call with the wrong number of arguments.
	CodeWrongArgCount = "wrong-argument-count"
	// CodeBadOperandType reports an operator applied to an unsupported type.
	CodeBadOperandType = "bad-operand-type"
	// CodeDivisionByZero reports integer division by zero during constant
	// evaluation.
	CodeDivisionByZero = "division-by-zero"
	// CodeRecursionLimit reports that constant evaluation exceeded the frame
	// depth limit.
	CodeRecursionLimit = "recursion-limit"
	// CodeNotConstant reports an expression which cannot be reduced to a
	// constant in a constant context.
	CodeNotConstant = "not-constant"
	// CodeWrongDisplayType reports a display argument whose type has no
	// default display representation.
	CodeWrongDisplayType = "wrong-display-type"
	// CodeFormatNotString reports an sformat call whose first argument is
	// not a string.
	CodeFormatNotString = "format-not-string"
	// CodeMissingFormatArg reports a format specifier with no argument left
	// to consume.
	CodeMissingFormatArg = "format-missing-arg"
	// CodeExtraFormatArgs reports arguments left over after all specifiers
	// were matched.
	CodeExtraFormatArgs = "format-too-many-args"
	// CodeUnknownSpecifier reports an unrecognised format specifier.
	CodeUnknownSpecifier = "format-unknown-specifier"
	// CodeBadFormatArgType reports an argument incompatible with the
	// specifier that would consume it.
	CodeBadFormatArgType = "format-wrong-arg-type"
	// CodeBadFinishNum reports a finish/stop argument outside {0, 1, 2}.
	CodeBadFinishNum = "bad-finish-num"
	// CodeBadGenerateBounds reports loop-generate bounds which are not
	// constant, or describe an empty or excessive range.
	CodeBadGenerateBounds = "bad-generate-bounds"
)

// Diagnostic is one structured problem report.  Diagnostics are accumulated
// out-of-band rather than thrown: every fallible operation in this layer
// returns an explicit success indicator and appends diagnostics to a sink,
// so callers can batch multiple failures before deciding whether to abort
// the surrounding phase.
type Diagnostic struct {
	// Location of the offending construct.
	Span source.Span
	// Stable code identifying the class of problem.
	Code string
	// Human-readable description.
	Message string
}

func (p Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", p.Code, p.Message)
}

// Errorf constructs a diagnostic at a given location.
func Errorf(span source.Span, code string, format string, args ...any) Diagnostic {
	return Diagnostic{span, code, fmt.Sprintf(format, args...)}
}

// Sink accepts diagnostic reports.  Implementations never fail and always
// return control to the caller.
type Sink interface {
	// Report records one diagnostic.
	Report(d Diagnostic)
}

// DiagnosticList is the standard sink: an accumulating list.
type DiagnosticList struct {
	diags []Diagnostic
}

// Report records one diagnostic.
func (p *DiagnosticList) Report(d Diagnostic) {
	p.diags = append(p.diags, d)
}

// Diagnostics returns everything reported so far, in report order.
func (p *DiagnosticList) Diagnostics() []Diagnostic {
	return p.diags
}

// Empty determines whether anything has been reported.
func (p *DiagnosticList) Empty() bool {
	return len(p.diags) == 0
}

// Len returns the number of diagnostics reported so far.
func (p *DiagnosticList) Len() int {
	return len(p.diags)
}
