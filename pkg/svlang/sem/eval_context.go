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

// DefaultMaxCallDepth bounds the evaluation frame stack.  Runaway recursion
// in a constant function converts into a diagnostic at this depth rather
// than unbounded stack growth.
const DefaultMaxCallDepth = 128

// frame is one subroutine invocation on the evaluation stack.
type frame struct {
	// Subroutine being evaluated.
	subroutine *ast.SubroutineSymbol
	// Formal argument values for this invocation.
	locals map[string]ast.Value
}

// EvalContext is the mutable state of one compile-time evaluation request: a
// call-frame stack for subroutine invocation during constant folding, a
// result cache for top-level sub-expressions, and accumulated diagnostics.
// A context is owned by its caller for the duration of one request and must
// not be shared across concurrent evaluations.
type EvalContext struct {
	// Frame stack, innermost last.
	frames []frame
	// Result cache for frame-independent (top-level) expressions.
	cache map[ast.Expr]ast.Value
	// Depth limit for the frame stack.
	maxDepth uint
	// Accumulated diagnostics.
	diags DiagnosticList
}

// NewEvalContext constructs a fresh evaluation context with the default
// frame depth limit.
func NewEvalContext() *EvalContext {
	return &EvalContext{
		cache:    make(map[ast.Expr]ast.Value),
		maxDepth: DefaultMaxCallDepth,
	}
}

// WithMaxCallDepth overrides the frame depth limit, returning the context
// for chaining during construction.
func (p *EvalContext) WithMaxCallDepth(depth uint) *EvalContext {
	p.maxDepth = depth
	return p
}

// Depth returns the current frame stack depth.
func (p *EvalContext) Depth() uint {
	return uint(len(p.frames))
}

// Report records one diagnostic against this evaluation.
func (p *EvalContext) Report(d Diagnostic) {
	p.diags.Report(d)
}

// Diagnostics returns everything reported during this evaluation, in report
// order.  Diagnostics queued before a failing sub-evaluation remain visible.
func (p *EvalContext) Diagnostics() []Diagnostic {
	return p.diags.Diagnostics()
}

// pushFrame enters a new invocation of the given subroutine, or reports a
// recursion-limit diagnostic and returns false if the stack is full.
func (p *EvalContext) pushFrame(span source.Span, sub *ast.SubroutineSymbol, locals map[string]ast.Value) bool {
	if uint(len(p.frames)) >= p.maxDepth {
		p.Report(Errorf(span, CodeRecursionLimit,
			"constant evaluation of '%s' exceeded maximum call depth of %d", sub.Name(), p.maxDepth))
		return false
	}
	//
	p.frames = append(p.frames, frame{sub, locals})
	//
	return true
}

// popFrame leaves the innermost invocation.
func (p *EvalContext) popFrame() {
	p.frames = p.frames[:len(p.frames)-1]
}

// lookupLocal resolves a formal argument name against the innermost frame.
func (p *EvalContext) lookupLocal(name string) (ast.Value, bool) {
	if len(p.frames) == 0 {
		return ast.Value{}, false
	}
	//
	val, ok := p.frames[len(p.frames)-1].locals[name]
	//
	return val, ok
}
