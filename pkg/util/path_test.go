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
package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathBasics(t *testing.T) {
	path := NewPath("top", "u0", "blk")
	//
	assert.Equal(t, uint(3), path.Depth())
	assert.Equal(t, "top", path.Head())
	assert.Equal(t, "blk", path.Tail())
	assert.Equal(t, "u0", path.Get(1))
	assert.Equal(t, "top.u0.blk", path.String())
}

func TestPathExtendParent(t *testing.T) {
	path := NewPath("top")
	child := path.Extend("u0")
	//
	assert.Equal(t, "top.u0", child.String())
	// Extending must not alias the original path's segments.
	assert.Equal(t, "top", path.String())
	//
	parent := child.Parent()
	assert.True(t, parent.Equals(path))
}

func TestPathPrefixOf(t *testing.T) {
	top := NewPath("top")
	inner := NewPath("top", "u0")
	other := NewPath("bot", "u0")
	//
	assert.True(t, top.PrefixOf(inner))
	assert.False(t, inner.PrefixOf(top))
	assert.False(t, other.PrefixOf(inner))
	assert.True(t, inner.PrefixOf(inner))
}
