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

type bagOptionA struct {
	Limit int
}

type bagOptionB struct {
	Name string
}

func TestBagPutGet(t *testing.T) {
	bag := NewBag()
	//
	assert.Equal(t, 0, bag.Len())
	assert.True(t, BagGet[bagOptionA](bag).IsEmpty())
	//
	BagPut(bag, bagOptionA{Limit: 10})
	BagPut(bag, bagOptionB{Name: "x"})
	//
	assert.Equal(t, 2, bag.Len())
	assert.Equal(t, bagOptionA{Limit: 10}, BagGet[bagOptionA](bag).Unwrap())
	assert.Equal(t, bagOptionB{Name: "x"}, BagGet[bagOptionB](bag).Unwrap())
}

func TestBagReplace(t *testing.T) {
	bag := NewBag()
	//
	BagPut(bag, bagOptionA{Limit: 1})
	BagPut(bag, bagOptionA{Limit: 2})
	// One value per type: the later put wins.
	assert.Equal(t, 1, bag.Len())
	assert.Equal(t, 2, BagGet[bagOptionA](bag).Unwrap().Limit)
}

func TestBagGetOrDefault(t *testing.T) {
	bag := NewBag()
	//
	assert.Equal(t, bagOptionA{}, BagGetOrDefault[bagOptionA](bag))
	//
	BagPut(bag, bagOptionA{Limit: 7})
	assert.Equal(t, 7, BagGetOrDefault[bagOptionA](bag).Limit)
}

func TestBagInsertOrGet(t *testing.T) {
	bag := NewBag()
	// First access inserts the zero value...
	assert.Equal(t, bagOptionA{}, BagInsertOrGet[bagOptionA](bag))
	assert.Equal(t, 1, bag.Len())
	// ...and an existing value is never overwritten.
	BagPut(bag, bagOptionA{Limit: 3})
	assert.Equal(t, 3, BagInsertOrGet[bagOptionA](bag).Limit)
}

func TestOption(t *testing.T) {
	some := Some(42)
	none := None[int]()
	//
	assert.True(t, some.HasValue())
	assert.False(t, some.IsEmpty())
	assert.Equal(t, 42, some.Unwrap())
	assert.Equal(t, 42, some.UnwrapOr(0))
	//
	assert.True(t, none.IsEmpty())
	assert.Equal(t, 99, none.UnwrapOr(99))
	assert.Panics(t, func() { none.Unwrap() })
}
