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
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueKinds(t *testing.T) {
	ival := NewInt32(42)
	rval := NewReal(3.5)
	sval := NewString("hi")
	//
	assert.True(t, ival.IsInteger())
	assert.True(t, rval.IsReal())
	assert.True(t, sval.IsString())
	//
	assert.Equal(t, uint(32), ival.Width())
	assert.Equal(t, 3.5, rval.AsReal())
	assert.Equal(t, "hi", sval.AsString())
	// Integrals convert on demand.
	assert.Equal(t, 42.0, ival.AsReal())
	// Cross-kind accessors panic.
	assert.Panics(t, func() { rval.AsBigInt() })
	assert.Panics(t, func() { ival.AsString() })
}

func TestValueTruthiness(t *testing.T) {
	assert.True(t, NewInt32(1).IsTrue())
	assert.False(t, NewInt32(0).IsTrue())
	assert.True(t, NewReal(0.5).IsTrue())
	assert.False(t, NewReal(0).IsTrue())
	assert.True(t, NewString("x").IsTrue())
	assert.False(t, NewString("").IsTrue())
}

func TestFormatRadix(t *testing.T) {
	tests := []struct {
		name     string
		value    int64
		width    uint
		radix    uint
		expected string
	}{
		{"binary", 5, 8, 2, "101"},
		{"octal", 64, 8, 8, "100"},
		{"hex", 255, 8, 16, "ff"},
		{"negative hex wraps", -1, 8, 16, "ff"},
		{"negative binary wraps", -2, 4, 2, "1110"},
		{"negative wide hex", -1, 32, 16, "ffffffff"},
	}
	//
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			val := NewInteger(big.NewInt(tt.value), tt.width, true)
			assert.Equal(t, tt.expected, val.FormatRadix(tt.radix))
		})
	}
}

func TestFormatDecimal(t *testing.T) {
	assert.Equal(t, "-7", NewInt32(-7).FormatDecimal())
	assert.Equal(t, "42", NewInt32(42).FormatDecimal())
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "42", NewInt32(42).String())
	assert.Equal(t, "2.5", NewReal(2.5).String())
	assert.Equal(t, "hi", NewString("hi").String())
}

func TestWrapToWidth(t *testing.T) {
	tests := []struct {
		name     string
		value    int64
		width    uint
		signed   bool
		expected int64
	}{
		{"in range unsigned", 5, 8, false, 5},
		{"overflow unsigned", 256, 8, false, 0},
		{"overflow unsigned 2", 257, 8, false, 1},
		{"negative unsigned", -1, 8, false, 255},
		{"in range signed", 100, 8, true, 100},
		{"overflow signed", 128, 8, true, -128},
		{"negative signed", -1, 8, true, -1},
		{"wrap signed", 255, 8, true, -1},
	}
	//
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := WrapToWidth(big.NewInt(tt.value), tt.width, tt.signed)
			assert.Equal(t, tt.expected, wrapped.Int64())
		})
	}
}

func TestValueEquals(t *testing.T) {
	assert.True(t, NewInt32(5).Equals(NewInt32(5)))
	assert.False(t, NewInt32(5).Equals(NewInt32(6)))
	assert.False(t, NewInt32(5).Equals(NewReal(5)))
	assert.True(t, NewString("a").Equals(NewString("a")))
}
