//  Copyright (c) 2018 Couchbase, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// 		http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package utf8dfa

import "fmt"

// Distance is the edit-distance label carried by a DFA state.  It is
// either an exact distance, meaning the input consumed so far is within
// bounds and ends at that distance, or a lower bound, meaning the input
// has already exceeded the automaton's limit and the true distance is at
// least the recorded value.
type Distance struct {
	d       uint8
	atLeast bool
}

// Exact returns a Distance representing an exact edit distance of d.
func Exact(d uint8) Distance {
	return Distance{d: d}
}

// AtLeast returns a Distance representing an edit distance of at
// least d, typically signaling rejection.
func AtLeast(d uint8) Distance {
	return Distance{d: d, atLeast: true}
}

// IsExact returns true if this is an exact distance, false if it is
// only a lower bound.
func (d Distance) IsExact() bool {
	return !d.atLeast
}

// Distance returns the numeric distance value, exact or lower bound.
func (d Distance) Distance() uint8 {
	return d.d
}

func (d Distance) String() string {
	if d.atLeast {
		return fmt.Sprintf("AtLeast(%d)", d.d)
	}
	return fmt.Sprintf("Exact(%d)", d.d)
}

// states allocated before their registration keep this sentinel
var uninitializedDistance = AtLeast(255)
