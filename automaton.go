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

// DFA implements the vellum.Automaton interface, so a built DFA can be
// intersected with an FST for fuzzy term lookup.  A state is a match
// when its distance is exact, meaning the bytes consumed so far stayed
// within the caller's edit-distance bound.

// Start returns the start state of this automaton.
func (d *DFA) Start() int {
	return int(d.initialState)
}

// IsMatch returns if the specified state is a matching state.
func (d *DFA) IsMatch(state int) bool {
	if state >= 0 && state < len(d.distances) {
		return d.distances[state].IsExact()
	}
	return false
}

// CanMatch returns if the specified state can ever transition to a
// matching state.  Every state of a built DFA can, the transition
// function is total.
func (d *DFA) CanMatch(state int) bool {
	if state >= 0 && state < len(d.distances) {
		return true
	}
	return false
}

// WillAlwaysMatch returns if the specified state will always end in a
// matching state.
func (d *DFA) WillAlwaysMatch(state int) bool {
	return false
}

// Accept returns the new state, resulting from the transition byte b
// when currently in the state s.
func (d *DFA) Accept(state int, b byte) int {
	return int(d.transitions[state][b])
}
