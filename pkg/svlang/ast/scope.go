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
	"github.com/silogic/go-svsem/pkg/util"
)

// FormatState carries the ambient formatting defaults of a scope: the active
// time unit and precision (as powers of ten, e.g. -9 for nanoseconds) used
// by the %t specifier, the default numeric base, and the library a design
// element is bound into.
type FormatState struct {
	// Active time unit, as a power of ten.
	TimeUnit int
	// Active time precision, as a power of ten.
	TimePrecision int
	// Default numeric base for unadorned display.
	DefaultBase uint
	// Library this scope's design element is bound into.
	Library string
}

// DefaultFormatState returns the formatting defaults mandated in the absence
// of any explicit directive: nanosecond unit and precision, decimal base,
// the "work" library.
func DefaultFormatState() FormatState {
	return FormatState{TimeUnit: -9, TimePrecision: -9, DefaultBase: 10, Library: "work"}
}

// Scope is a symbol capable of containing nested declarations.  Scopes form
// a lexical chain: name lookup walks outwards until a binding is found, and
// ambient formatting state is inherited from the root unless overridden.
type Scope struct {
	// Enclosing scope (nil at the root).
	parent *Scope
	// Hierarchical path of this scope.
	path util.Path
	// Declarations made directly in this scope.
	symbols map[string]Symbol
	// Declaration names, in order of definition (for deterministic walks).
	names []string
	// Formatting defaults (nil to inherit from the enclosing scope).
	format *FormatState
}

// NewRootScope constructs a top-level scope with a given hierarchical name
// and formatting defaults.
func NewRootScope(name string, format FormatState) *Scope {
	return &Scope{
		parent:  nil,
		path:    util.NewPath(name),
		symbols: make(map[string]Symbol),
		format:  &format,
	}
}

// NewScope constructs a scope nested within a given parent.
func NewScope(parent *Scope, name string) *Scope {
	return &Scope{
		parent:  parent,
		path:    *parent.path.Extend(name),
		symbols: make(map[string]Symbol),
	}
}

// Parent returns the enclosing scope, or nil at the root.
func (p *Scope) Parent() *Scope {
	return p.parent
}

// Path returns the hierarchical path of this scope.
func (p *Scope) Path() util.Path {
	return p.path
}

// Define adds a declaration to this scope, returning false if the name is
// already bound here (shadowing an outer scope is permitted).
func (p *Scope) Define(sym Symbol) bool {
	name := sym.Name()
	//
	if _, ok := p.symbols[name]; ok {
		return false
	}
	//
	p.symbols[name] = sym
	p.names = append(p.names, name)
	//
	return true
}

// Lookup resolves a name against this scope and its enclosing chain.
func (p *Scope) Lookup(name string) (Symbol, bool) {
	for s := p; s != nil; s = s.parent {
		if sym, ok := s.symbols[name]; ok {
			return sym, true
		}
	}
	//
	return nil, false
}

// LookupLocal resolves a name against this scope only.
func (p *Scope) LookupLocal(name string) (Symbol, bool) {
	sym, ok := p.symbols[name]
	return sym, ok
}

// Symbols walks the declarations of this scope in definition order.
func (p *Scope) Symbols(fn func(Symbol)) {
	for _, name := range p.names {
		fn(p.symbols[name])
	}
}

// SetFormatState overrides the formatting defaults for this scope and its
// children.
func (p *Scope) SetFormatState(format FormatState) {
	p.format = &format
}

// FormatState returns the formatting defaults in effect for this scope,
// inherited from the enclosing chain where not set locally.
func (p *Scope) FormatState() FormatState {
	for s := p; s != nil; s = s.parent {
		if s.format != nil {
			return *s.format
		}
	}
	// Unreachable provided the root scope was constructed with defaults,
	// but fall back rather than crash on a detached scope.
	return DefaultFormatState()
}
