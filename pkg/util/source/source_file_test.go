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
package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpan(t *testing.T) {
	span := NewSpan(3, 8)
	//
	assert.Equal(t, 3, span.Start())
	assert.Equal(t, 8, span.End())
	assert.Equal(t, 5, span.Length())
	//
	assert.Panics(t, func() { NewSpan(2, 1) })
}

func TestFindFirstEnclosingLine(t *testing.T) {
	srcfile := NewSourceFile("test", []byte("first\nsecond\nthird"))
	//
	tests := []struct {
		name   string
		span   Span
		number int
		text   string
	}{
		{"first line", NewSpan(0, 5), 1, "first"},
		{"second line", NewSpan(6, 12), 2, "second"},
		{"mid second line", NewSpan(8, 10), 2, "second"},
		{"third line", NewSpan(13, 18), 3, "third"},
		{"beyond end", NewSpan(100, 101), 3, "third"},
	}
	//
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := srcfile.FindFirstEnclosingLine(tt.span)
			assert.Equal(t, tt.number, line.Number())
			assert.Equal(t, tt.text, line.String())
		})
	}
}

func TestSyntaxError(t *testing.T) {
	srcfile := NewSourceFile("test", []byte("hello\nworld"))
	err := srcfile.SyntaxError(NewSpan(6, 11), "bad thing")
	//
	assert.Equal(t, "bad thing", err.Message())
	assert.Equal(t, "6:11:bad thing", err.Error())
	line := err.FirstEnclosingLine()
	assert.Equal(t, 2, line.Number())
	assert.Same(t, srcfile, err.SourceFile())
}
