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

// DFA is a deterministic finite automaton over raw bytes, built from a
// character-level automaton by DFABuilder.  Every state has a defined
// successor for all 256 byte values, so evaluation never branches on
// validity and never fails.  A DFA is immutable once built and safe for
// concurrent use without locking.
type DFA struct {
	transitions  [][256]uint32
	distances    []Distance
	initialState uint32
}

// InitialState returns the state evaluation starts from.
func (d *DFA) InitialState() uint32 {
	return d.initialState
}

// Transition returns the state reached from the given state after
// consuming one byte.  It is defined for every byte value.
func (d *DFA) Transition(from uint32, b byte) uint32 {
	return d.transitions[from][b]
}

// Distance returns the edit distance recorded for the given state.
func (d *DFA) Distance(state uint32) Distance {
	return d.distances[state]
}

// NumStates returns the number of states in the DFA.
func (d *DFA) NumStates() int {
	return len(d.transitions)
}

// Eval feeds every byte of text through the DFA, starting from the
// initial state, and returns the distance of the state it ends on.
func (d *DFA) Eval(text []byte) Distance {
	state := d.initialState
	for _, b := range text {
		state = d.transitions[state][b]
	}
	return d.distances[state]
}

// EvalString is Eval over the bytes of a string.
func (d *DFA) EvalString(text string) Distance {
	state := d.initialState
	for i := 0; i < len(text); i++ {
		state = d.transitions[state][text[i]]
	}
	return d.distances[state]
}
