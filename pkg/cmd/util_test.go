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
package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/silogic/go-svsem/pkg/svlang/syntax"
	"github.com/silogic/go-svsem/pkg/util/source"
)

func TestParseArgToken(t *testing.T) {
	span := source.NewSpan(0, 0)
	//
	tests := []struct {
		name string
		tok  string
		kind syntax.Kind
	}{
		{"decimal", "42", syntax.KindIntegerLiteral},
		{"negative", "-7", syntax.KindIntegerLiteral},
		{"hex", "0xff", syntax.KindIntegerLiteral},
		{"binary", "0b101", syntax.KindIntegerLiteral},
		{"real", "3.5", syntax.KindRealLiteral},
		{"exponent", "1e3", syntax.KindRealLiteral},
		{"string", `"hello"`, syntax.KindStringLiteral},
		{"empty string", `""`, syntax.KindStringLiteral},
	}
	//
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := parseArgToken(span, tt.tok)
			assert.NoError(t, err)
			assert.Equal(t, tt.kind, expr.Kind())
		})
	}
	//
	_, err := parseArgToken(span, "banana")
	assert.Error(t, err)
}

func TestParseArgTokenValues(t *testing.T) {
	span := source.NewSpan(0, 0)
	//
	expr, _ := parseArgToken(span, "0xff")
	assert.Equal(t, int64(255), expr.(*syntax.IntegerLiteral).Value.Int64())
	// Quotes strip; the body stays raw.
	expr, _ = parseArgToken(span, `"a\tb"`)
	assert.Equal(t, `a\tb`, expr.(*syntax.StringLiteral).Value)
}

func TestTokenizeLine(t *testing.T) {
	tokens, offsets := tokenizeLine(`"%d and %s"  42 "hi there"`)
	//
	assert.Equal(t, []string{`"%d and %s"`, "42", `"hi there"`}, tokens)
	assert.Equal(t, []int{0, 13, 16}, offsets)
	//
	tokens, _ = tokenizeLine("   ")
	assert.Empty(t, tokens)
}

func TestTokenOffsets(t *testing.T) {
	offsets := tokenOffsets([]string{"%d", "42", "xyz"})
	assert.Equal(t, []int{0, 3, 6}, offsets)
}
