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
	"github.com/silogic/go-svsem/pkg/util/source"
)

// Node represents an immutable element of a parsed syntax tree.  Nodes are
// identity stable: two structurally identical declarations at different
// source locations are different nodes, and the semantic layer keys its
// caches on node identity (i.e. pointer equality) rather than structural
// equality.  Nodes are never mutated after construction.
type Node interface {
	// Kind returns the syntactic category of this node.
	Kind() Kind
	// Span returns the location of this node in its originating source text.
	Span() source.Span
}

// Kind identifies the syntactic category of a node.
type Kind int

const (
	// KindCompilationUnit is the root of one source file's declarations.
	KindCompilationUnit Kind = iota
	// KindHierarchyInstantiation is a module or interface instantiation.
	KindHierarchyInstantiation
	// KindBlockStatement is a (possibly labelled) begin/end statement block.
	KindBlockStatement
	// KindProceduralBlock is an initial/final/always construct.
	KindProceduralBlock
	// KindIfGenerate is a conditional generate construct.
	KindIfGenerate
	// KindLoopGenerate is a loop generate construct.
	KindLoopGenerate
	// KindFunctionDeclaration is a function or task declaration.
	KindFunctionDeclaration
	// KindEnumType is an enumeration type declaration.
	KindEnumType
	// KindTypedefDeclaration is a type alias declaration.
	KindTypedefDeclaration
	// KindIntegerLiteral is an integral literal expression.
	KindIntegerLiteral
	// KindRealLiteral is a real literal expression.
	KindRealLiteral
	// KindStringLiteral is a string literal expression.
	KindStringLiteral
	// KindIdentifier is a simple name expression.
	KindIdentifier
	// KindUnaryExpr is a unary operator expression.
	KindUnaryExpr
	// KindBinaryExpr is a binary operator expression.
	KindBinaryExpr
	// KindConditionalExpr is a ternary conditional expression.
	KindConditionalExpr
	// KindCallExpr is a subroutine invocation expression.
	KindCallExpr
)

func (k Kind) String() string {
	switch k {
	case KindCompilationUnit:
		return "compilation-unit"
	case KindHierarchyInstantiation:
		return "hierarchy-instantiation"
	case KindBlockStatement:
		return "block-statement"
	case KindProceduralBlock:
		return "procedural-block"
	case KindIfGenerate:
		return "if-generate"
	case KindLoopGenerate:
		return "loop-generate"
	case KindFunctionDeclaration:
		return "function-declaration"
	case KindEnumType:
		return "enum-type"
	case KindTypedefDeclaration:
		return "typedef-declaration"
	case KindIntegerLiteral:
		return "integer-literal"
	case KindRealLiteral:
		return "real-literal"
	case KindStringLiteral:
		return "string-literal"
	case KindIdentifier:
		return "identifier"
	case KindUnaryExpr:
		return "unary-expr"
	case KindBinaryExpr:
		return "binary-expr"
	case KindConditionalExpr:
		return "conditional-expr"
	case KindCallExpr:
		return "call-expr"
	default:
		return "unknown"
	}
}

// DataTypeKind identifies the builtin data type named by a DataType node.
type DataTypeKind int

const (
	// DataTypeLogic is a four-state packed vector.
	DataTypeLogic DataTypeKind = iota
	// DataTypeBit is a two-state packed vector.
	DataTypeBit
	// DataTypeInt is a signed 32-bit two-state integer.
	DataTypeInt
	// DataTypeReal is a double-precision real.
	DataTypeReal
	// DataTypeShortReal is a single-precision real.
	DataTypeShortReal
	// DataTypeString is a dynamic string.
	DataTypeString
	// DataTypeVoid is the void type.
	DataTypeVoid
)

// DataType is the syntactic description of a builtin data type, as written
// after a typedef or in a subroutine signature.  It is deliberately minimal:
// the semantic layer consumes types through the ast package, and this node
// only carries what is needed to construct one.
type DataType struct {
	span source.Span
	// Builtin type being named.
	Type DataTypeKind
	// Packed width, for vector types.
	Width uint
	// Signedness, for vector types.
	Signed bool
}

// NewDataType constructs a data type node.
func NewDataType(span source.Span, kind DataTypeKind, width uint, signed bool) *DataType {
	return &DataType{span, kind, width, signed}
}

// Span returns the location of this node in its originating source text.
func (p *DataType) Span() source.Span {
	return p.span
}
