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
	"github.com/silogic/go-svsem/pkg/util/source"
)

// BindFlags are the mode flags under which a sub-expression or declaration
// is being resolved.
type BindFlags uint

const (
	// BindConstant indicates resolution inside a constant-expression
	// context, where every name must reduce to a compile-time value.
	BindConstant BindFlags = 1 << iota
	// BindAssignmentTarget indicates the expression is the target of an
	// assignment.
	BindAssignmentTarget
	// BindFunctionBody indicates resolution inside a subroutine body, where
	// formal arguments are in scope.
	BindFunctionBody
)

// BindContext describes the scope, diagnostic sink and mode flags under
// which resolution takes place.  It has value semantics: the resolver only
// reads it, and derived contexts are fresh copies.  The engine never stores
// a context beyond the query it was supplied for.
type BindContext struct {
	// Scope against which names resolve.
	Scope *ast.Scope
	// Sink receiving diagnostics.
	Sink Sink
	// Mode flags.
	Flags BindFlags
}

// NewBindContext constructs a resolution context over a given scope and
// sink, with no flags set.
func NewBindContext(scope *ast.Scope, sink Sink) BindContext {
	return BindContext{scope, sink, 0}
}

// With derives a context carrying additional flags.
func (p BindContext) With(flags BindFlags) BindContext {
	p.Flags |= flags
	return p
}

// InConstantContext determines whether resolution is happening inside a
// constant-expression context.
func (p BindContext) InConstantContext() bool {
	return p.Flags&BindConstant != 0
}

// InFunctionBody determines whether resolution is happening inside a
// subroutine body.
func (p BindContext) InFunctionBody() bool {
	return p.Flags&BindFunctionBody != 0
}

// ReportError constructs a diagnostic at the given location and hands it to
// the sink.
func (p BindContext) ReportError(span source.Span, code string, format string, args ...any) {
	p.Sink.Report(Errorf(span, code, format, args...))
}
