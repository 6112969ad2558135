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
	"math/big"
	"strconv"
)

// ValueKind identifies the variant of a constant value.
type ValueKind int

const (
	// IntegerValue is an integral constant.
	IntegerValue ValueKind = iota
	// RealValue is a floating point constant.
	RealValue
	// StringValue is a string constant.
	StringValue
)

// Value is a constant value produced by compile-time evaluation.  Integral
// values retain the width and signedness of their producing type, since both
// affect how the value renders in non-decimal radices (two's complement
// within the declared width).
type Value struct {
	kind ValueKind
	// Integral payload.
	integer *big.Int
	width   uint
	signed  bool
	// Real payload.
	real float64
	// String payload.
	str string
}

// NewInteger constructs an integral value of a given width and signedness.
func NewInteger(val *big.Int, width uint, signed bool) Value {
	return Value{kind: IntegerValue, integer: val, width: width, signed: signed}
}

// NewInt32 constructs a 32-bit signed integral value, the default shape of an
// unbased literal.
func NewInt32(val int64) Value {
	return NewInteger(big.NewInt(val), 32, true)
}

// NewReal constructs a real value.
func NewReal(val float64) Value {
	return Value{kind: RealValue, real: val}
}

// NewString constructs a string value.
func NewString(val string) Value {
	return Value{kind: StringValue, str: val}
}

// Kind returns the variant of this value.
func (p Value) Kind() ValueKind {
	return p.kind
}

// IsInteger determines whether this is an integral value.
func (p Value) IsInteger() bool {
	return p.kind == IntegerValue
}

// IsReal determines whether this is a real value.
func (p Value) IsReal() bool {
	return p.kind == RealValue
}

// IsString determines whether this is a string value.
func (p Value) IsString() bool {
	return p.kind == StringValue
}

// Width returns the bit width of an integral value (zero otherwise).
func (p Value) Width() uint {
	return p.width
}

// AsBigInt returns the integral payload, or panics if this is not an
// integral value.
func (p Value) AsBigInt() *big.Int {
	if p.kind != IntegerValue {
		panic("value is not integral")
	}
	//
	return p.integer
}

// AsInt64 returns the integral payload as an int64, along with a flag
// indicating whether it was representable.
func (p Value) AsInt64() (int64, bool) {
	if p.kind != IntegerValue || !p.integer.IsInt64() {
		return 0, false
	}
	//
	return p.integer.Int64(), true
}

// AsReal returns this value as a float, converting an integral payload where
// necessary.
func (p Value) AsReal() float64 {
	if p.kind == IntegerValue {
		f, _ := new(big.Float).SetInt(p.integer).Float64()
		return f
	}
	//
	return p.real
}

// AsString returns the string payload, or panics if this is not a string
// value.
func (p Value) AsString() string {
	if p.kind != StringValue {
		panic("value is not a string")
	}
	//
	return p.str
}

// IsTrue applies the language truthiness rule: an integral value is true when
// non-zero, a real when non-zero, a string when non-empty.
func (p Value) IsTrue() bool {
	switch p.kind {
	case IntegerValue:
		return p.integer.Sign() != 0
	case RealValue:
		return p.real != 0
	default:
		return p.str != ""
	}
}

// Equals determines whether two values are identical constants.
func (p Value) Equals(other Value) bool {
	if p.kind != other.kind {
		return false
	}
	//
	switch p.kind {
	case IntegerValue:
		return p.integer.Cmp(other.integer) == 0
	case RealValue:
		return p.real == other.real
	default:
		return p.str == other.str
	}
}

// FormatDecimal renders an integral value in (signed-aware) decimal.
func (p Value) FormatDecimal() string {
	return p.integer.Text(10)
}

// FormatRadix renders an integral value in a given radix (2, 8 or 16).
// Negative values render as the two's complement bit pattern of the declared
// width, matching how a packed vector holds them.
func (p Value) FormatRadix(radix uint) string {
	val := p.integer
	//
	if val.Sign() < 0 {
		// Wrap into the declared width.  Note, big.Int bitwise operations
		// already treat negative values as infinite two's complement.
		mask := new(big.Int).Lsh(big.NewInt(1), p.width)
		mask.Sub(mask, big.NewInt(1))
		val = new(big.Int).And(val, mask)
	}
	//
	return val.Text(int(radix))
}

// FormatReal renders a real value using a printf-style verb ('e', 'f' or
// 'g') and precision.
func (p Value) FormatReal(verb byte, precision int) string {
	return strconv.FormatFloat(p.AsReal(), verb, precision, 64)
}

// String produces the default display representation of this value: decimal
// for integrals, shortest-form scientific for reals, and the raw characters
// for strings.
func (p Value) String() string {
	switch p.kind {
	case IntegerValue:
		return p.FormatDecimal()
	case RealValue:
		return strconv.FormatFloat(p.real, 'g', -1, 64)
	default:
		return p.str
	}
}

// WrapToWidth reduces an arbitrary-precision integer into the two's
// complement range of a given width and signedness, matching how a packed
// vector of that shape would hold it.
func WrapToWidth(val *big.Int, width uint, signed bool) *big.Int {
	mask := new(big.Int).Lsh(big.NewInt(1), width)
	mask.Sub(mask, big.NewInt(1))
	// Note, big.Int bitwise operations treat negative values as infinite
	// two's complement, so this wraps negatives correctly too.
	wrapped := new(big.Int).And(val, mask)
	//
	if signed && wrapped.Bit(int(width-1)) == 1 {
		modulus := new(big.Int).Lsh(big.NewInt(1), width)
		wrapped.Sub(wrapped, modulus)
	}
	//
	return wrapped
}

// GoString renders this value with its kind, for debugging.
func (p Value) GoString() string {
	switch p.kind {
	case IntegerValue:
		return fmt.Sprintf("int(%s)", p.FormatDecimal())
	case RealValue:
		return fmt.Sprintf("real(%g)", p.real)
	default:
		return fmt.Sprintf("string(%q)", p.str)
	}
}
