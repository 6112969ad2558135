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
	"reflect"
)

// Bag is a general container of arbitrary objects, keyed by their static
// type, with at most one value per type.  This is useful for passing around a
// collection of options to different subsystems without needing to have cross
// dependencies between them.  Since Go does not permit generic methods, the
// typed accessors are package-level functions taking the bag as their first
// argument.
type Bag struct {
	items map[reflect.Type]any
}

// NewBag constructs an (initially empty) bag.
func NewBag() *Bag {
	return &Bag{items: make(map[reflect.Type]any)}
}

// Len returns the number of values currently held in this bag.
func (p *Bag) Len() int {
	return len(p.items)
}

// BagPut stores the given value in the bag, replacing any value of the same
// type stored previously.
func BagPut[T any](bag *Bag, item T) {
	bag.items[reflect.TypeOf(item)] = item
}

// BagGet retrieves the value of the given type from the bag, returning an
// empty option if no such value has been set.
func BagGet[T any](bag *Bag) Option[T] {
	var key T
	//
	if item, ok := bag.items[reflect.TypeOf(key)]; ok {
		return Some(item.(T))
	}
	//
	return None[T]()
}

// BagGetOrDefault retrieves the value of the given type from the bag,
// returning the zero value of that type if no such value has been set.
func BagGetOrDefault[T any](bag *Bag) T {
	return BagGet[T](bag).UnwrapOr(*new(T))
}

// BagInsertOrGet retrieves the value of the given type from the bag,
// inserting (and returning) the zero value if no such value has been set.
func BagInsertOrGet[T any](bag *Bag) T {
	var key T
	//
	if item, ok := bag.items[reflect.TypeOf(key)]; ok {
		return item.(T)
	}
	//
	bag.items[reflect.TypeOf(key)] = key
	//
	return key
}
