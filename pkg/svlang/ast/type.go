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
	"fmt"
)

// TypeKind identifies the variant of a semantic type.  The set is closed:
// every consumer of types dispatches exhaustively over these kinds, so adding
// a new kind forces every switch to be revisited.
type TypeKind int

const (
	// TypeIntegral is a packed vector type (bit, logic, int, and friends).
	TypeIntegral TypeKind = iota
	// TypeReal is a floating point type.
	TypeReal
	// TypeString is the dynamic string type.
	TypeString
	// TypeEnum is an enumeration type.
	TypeEnum
	// TypeAlias is a named alias of another type.
	TypeAlias
	// TypeUnpackedArray is a fixed-size unpacked array.
	TypeUnpackedArray
	// TypeVoid is the void type.
	TypeVoid
	// TypeError is the error type, produced when binding fails.
	TypeError
)

// Type embodies a resolved semantic type.  Types are immutable and are
// queried (rather than pattern matched) by most consumers, since the
// interesting distinctions for display and formatting are property-level:
// integral or not, floating or not, displayable or not.
type Type interface {
	// TypeKind returns the variant of this type.
	TypeKind() TypeKind
	// IsIntegral determines whether this type is integral (packed vectors and
	// enums included).
	IsIntegral() bool
	// IsFloating determines whether this type is a floating point type.
	IsFloating() bool
	// IsString determines whether this type is the string type.
	IsString() bool
	// IsAggregate determines whether this type is an unpacked aggregate.
	IsAggregate() bool
	// CanBeDisplayed determines whether a value of this type has a default
	// display representation.
	CanBeDisplayed() bool
	// BitWidth returns the bit width of this type (zero for non-integral
	// types).
	BitWidth() uint
	// IsSigned determines whether this type is signed (false for
	// non-integral types).
	IsSigned() bool
	// IsFourState determines whether this type can carry unknown (x/z) bits.
	IsFourState() bool
	// Resolve strips any alias indirection, returning the underlying type.
	Resolve() Type
	// Produce a string representation of this type.
	String() string
}

// ============================================================================
// Integral
// ============================================================================

// IntegralType is a packed vector type with a width, signedness and two or
// four state semantics.
type IntegralType struct {
	width     uint
	signed    bool
	fourState bool
}

// NewIntegralType constructs an integral type of the given shape.
func NewIntegralType(width uint, signed bool, fourState bool) *IntegralType {
	return &IntegralType{width, signed, fourState}
}

// IntType is the predefined 32-bit signed two-state integer type.
func IntType() *IntegralType {
	return &IntegralType{32, true, false}
}

// BitType is the predefined two-state unsigned vector type of a given width.
func BitType(width uint) *IntegralType {
	return &IntegralType{width, false, false}
}

// LogicType is the predefined four-state unsigned vector type of a given
// width.
func LogicType(width uint) *IntegralType {
	return &IntegralType{width, false, true}
}

// TypeKind returns the variant of this type.
func (p *IntegralType) TypeKind() TypeKind { return TypeIntegral }

// IsIntegral determines whether this type is integral.
func (p *IntegralType) IsIntegral() bool { return true }

// IsFloating determines whether this type is a floating point type.
func (p *IntegralType) IsFloating() bool { return false }

// IsString determines whether this type is the string type.
func (p *IntegralType) IsString() bool { return false }

// IsAggregate determines whether this type is an unpacked aggregate.
func (p *IntegralType) IsAggregate() bool { return false }

// CanBeDisplayed determines whether a value of this type has a default
// display representation.
func (p *IntegralType) CanBeDisplayed() bool { return true }

// BitWidth returns the bit width of this type.
func (p *IntegralType) BitWidth() uint { return p.width }

// IsSigned determines whether this type is signed.
func (p *IntegralType) IsSigned() bool { return p.signed }

// IsFourState determines whether this type can carry unknown bits.
func (p *IntegralType) IsFourState() bool { return p.fourState }

// Resolve strips any alias indirection.
func (p *IntegralType) Resolve() Type { return p }

func (p *IntegralType) String() string {
	base := "bit"
	if p.fourState {
		base = "logic"
	}
	//
	if p.signed {
		base = base + " signed"
	}
	//
	return fmt.Sprintf("%s[%d:0]", base, p.width-1)
}

// ============================================================================
// Real
// ============================================================================

// RealType is a floating point type (real or shortreal).
type RealType struct {
	shortReal bool
}

// NewRealType constructs the double-precision real type.
func NewRealType() *RealType {
	return &RealType{false}
}

// NewShortRealType constructs the single-precision real type.
func NewShortRealType() *RealType {
	return &RealType{true}
}

// TypeKind returns the variant of this type.
func (p *RealType) TypeKind() TypeKind { return TypeReal }

// IsIntegral determines whether this type is integral.
func (p *RealType) IsIntegral() bool { return false }

// IsFloating determines whether this type is a floating point type.
func (p *RealType) IsFloating() bool { return true }

// IsString determines whether this type is the string type.
func (p *RealType) IsString() bool { return false }

// IsAggregate determines whether this type is an unpacked aggregate.
func (p *RealType) IsAggregate() bool { return false }

// CanBeDisplayed determines whether a value of this type has a default
// display representation.
func (p *RealType) CanBeDisplayed() bool { return true }

// BitWidth returns the bit width of this type.
func (p *RealType) BitWidth() uint {
	if p.shortReal {
		return 32
	}
	//
	return 64
}

// IsSigned determines whether this type is signed.
func (p *RealType) IsSigned() bool { return false }

// IsFourState determines whether this type can carry unknown bits.
func (p *RealType) IsFourState() bool { return false }

// Resolve strips any alias indirection.
func (p *RealType) Resolve() Type { return p }

func (p *RealType) String() string {
	if p.shortReal {
		return "shortreal"
	}
	//
	return "real"
}

// ============================================================================
// String
// ============================================================================

// StringType is the dynamic string type.
type StringType struct{}

// NewStringType constructs the string type.
func NewStringType() *StringType {
	return &StringType{}
}

// TypeKind returns the variant of this type.
func (p *StringType) TypeKind() TypeKind { return TypeString }

// IsIntegral determines whether this type is integral.
func (p *StringType) IsIntegral() bool { return false }

// IsFloating determines whether this type is a floating point type.
func (p *StringType) IsFloating() bool { return false }

// IsString determines whether this type is the string type.
func (p *StringType) IsString() bool { return true }

// IsAggregate determines whether this type is an unpacked aggregate.
func (p *StringType) IsAggregate() bool { return false }

// CanBeDisplayed determines whether a value of this type has a default
// display representation.
func (p *StringType) CanBeDisplayed() bool { return true }

// BitWidth returns the bit width of this type.
func (p *StringType) BitWidth() uint { return 0 }

// IsSigned determines whether this type is signed.
func (p *StringType) IsSigned() bool { return false }

// IsFourState determines whether this type can carry unknown bits.
func (p *StringType) IsFourState() bool { return false }

// Resolve strips any alias indirection.
func (p *StringType) Resolve() Type { return p }

func (p *StringType) String() string { return "string" }

// ============================================================================
// Unpacked Array
// ============================================================================

// UnpackedArrayType is a fixed-size unpacked array of some element type.
type UnpackedArrayType struct {
	element Type
	size    uint
}

// NewUnpackedArrayType constructs an unpacked array type.
func NewUnpackedArrayType(element Type, size uint) *UnpackedArrayType {
	return &UnpackedArrayType{element, size}
}

// Element returns the element type of this array.
func (p *UnpackedArrayType) Element() Type { return p.element }

// Size returns the number of elements in this array.
func (p *UnpackedArrayType) Size() uint { return p.size }

// TypeKind returns the variant of this type.
func (p *UnpackedArrayType) TypeKind() TypeKind { return TypeUnpackedArray }

// IsIntegral determines whether this type is integral.
func (p *UnpackedArrayType) IsIntegral() bool { return false }

// IsFloating determines whether this type is a floating point type.
func (p *UnpackedArrayType) IsFloating() bool { return false }

// IsString determines whether this type is the string type.
func (p *UnpackedArrayType) IsString() bool { return false }

// IsAggregate determines whether this type is an unpacked aggregate.
func (p *UnpackedArrayType) IsAggregate() bool { return true }

// CanBeDisplayed determines whether a value of this type has a default
// display representation.  An aggregate is displayable whenever its elements
// are, using the default conversion rule.
func (p *UnpackedArrayType) CanBeDisplayed() bool {
	return p.element.CanBeDisplayed()
}

// BitWidth returns the bit width of this type.
func (p *UnpackedArrayType) BitWidth() uint { return 0 }

// IsSigned determines whether this type is signed.
func (p *UnpackedArrayType) IsSigned() bool { return false }

// IsFourState determines whether this type can carry unknown bits.
func (p *UnpackedArrayType) IsFourState() bool { return p.element.IsFourState() }

// Resolve strips any alias indirection.
func (p *UnpackedArrayType) Resolve() Type { return p }

func (p *UnpackedArrayType) String() string {
	return fmt.Sprintf("%s[%d]", p.element.String(), p.size)
}

// ============================================================================
// Void / Error
// ============================================================================

// VoidType is the void type.
type VoidType struct{}

// NewVoidType constructs the void type.
func NewVoidType() *VoidType {
	return &VoidType{}
}

// TypeKind returns the variant of this type.
func (p *VoidType) TypeKind() TypeKind { return TypeVoid }

// IsIntegral determines whether this type is integral.
func (p *VoidType) IsIntegral() bool { return false }

// IsFloating determines whether this type is a floating point type.
func (p *VoidType) IsFloating() bool { return false }

// IsString determines whether this type is the string type.
func (p *VoidType) IsString() bool { return false }

// IsAggregate determines whether this type is an unpacked aggregate.
func (p *VoidType) IsAggregate() bool { return false }

// CanBeDisplayed determines whether a value of this type has a default
// display representation.
func (p *VoidType) CanBeDisplayed() bool { return false }

// BitWidth returns the bit width of this type.
func (p *VoidType) BitWidth() uint { return 0 }

// IsSigned determines whether this type is signed.
func (p *VoidType) IsSigned() bool { return false }

// IsFourState determines whether this type can carry unknown bits.
func (p *VoidType) IsFourState() bool { return false }

// Resolve strips any alias indirection.
func (p *VoidType) Resolve() Type { return p }

func (p *VoidType) String() string { return "void" }

// ErrorType is produced when binding an expression fails, so that downstream
// queries can proceed without nil checks whilst never reporting cascading
// diagnostics on an already-failed expression.
type ErrorType struct{}

// NewErrorType constructs the error type.
func NewErrorType() *ErrorType {
	return &ErrorType{}
}

// TypeKind returns the variant of this type.
func (p *ErrorType) TypeKind() TypeKind { return TypeError }

// IsIntegral determines whether this type is integral.
func (p *ErrorType) IsIntegral() bool { return false }

// IsFloating determines whether this type is a floating point type.
func (p *ErrorType) IsFloating() bool { return false }

// IsString determines whether this type is the string type.
func (p *ErrorType) IsString() bool { return false }

// IsAggregate determines whether this type is an unpacked aggregate.
func (p *ErrorType) IsAggregate() bool { return false }

// CanBeDisplayed determines whether a value of this type has a default
// display representation.
func (p *ErrorType) CanBeDisplayed() bool { return false }

// BitWidth returns the bit width of this type.
func (p *ErrorType) BitWidth() uint { return 0 }

// IsSigned determines whether this type is signed.
func (p *ErrorType) IsSigned() bool { return false }

// IsFourState determines whether this type can carry unknown bits.
func (p *ErrorType) IsFourState() bool { return false }

// Resolve strips any alias indirection.
func (p *ErrorType) Resolve() Type { return p }

func (p *ErrorType) String() string { return "<error>" }
