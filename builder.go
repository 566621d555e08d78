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

import "unicode/utf8"

// stateKey identifies a builder state for interning.  remaining == 0
// means the state corresponds 1:1 to the caller's original state id.
// remaining 1..3 means a synthesized predecessor state sitting that many
// continuation bytes before the default target id, mid-way through a
// multi-byte UTF-8 sequence on the default path.
type stateKey struct {
	id        uint32
	remaining uint8
}

func originalKey(id uint32) stateKey {
	return stateKey{id: id}
}

func predecessorKey(target uint32, remaining uint8) stateKey {
	return stateKey{id: target, remaining: remaining}
}

// A DFABuilder builds a byte-level DFA from a character-level automaton
// supplied by the caller as state registrations and explicit rune
// transitions.  Construction is single-threaded; Build freezes the
// result into an immutable DFA.
type DFABuilder struct {
	index        map[stateKey]uint32
	distances    []Distance
	transitions  [][256]uint32
	initialState uint32
}

// NewDFABuilder returns a DFABuilder with storage preallocated for the
// given number of states.
func NewDFABuilder(capacity int) *DFABuilder {
	return &DFABuilder{
		index:       make(map[stateKey]uint32, capacity),
		distances:   make([]Distance, 0, capacity),
		transitions: make([][256]uint32, 0, capacity),
	}
}

// allocate appends a fresh state.  Its distance is the uninitialized
// sentinel and its transition row is all zeros, both overwritten before
// the DFA is usable in any correct construction.
func (b *DFABuilder) allocate() uint32 {
	newState := uint32(len(b.transitions))
	b.distances = append(b.distances, uninitializedDistance)
	b.transitions = append(b.transitions, [256]uint32{})
	return newState
}

// getOrAllocate is the single deduplication point: every lookup of the
// same key yields the same dense state id.
func (b *DFABuilder) getOrAllocate(key stateKey) uint32 {
	if stateID, ok := b.index[key]; ok {
		return stateID
	}
	newState := b.allocate()
	b.index[key] = newState
	return newState
}

// SetInitialState records which of the caller's states evaluation starts
// from.  It may be called before or after the AddState for that id.
func (b *DFABuilder) SetInitialState(originalID uint32) {
	b.initialState = b.getOrAllocate(originalKey(originalID))
}

// AddState registers one of the caller's states, along with its distance
// and the state any character without an explicit transition leads to.
// It gives the state a total transition function: a chain of interned
// predecessor states routes multi-byte sequences to the default
// successor one continuation byte at a time, and the state's own row is
// filled by UTF-8 lead-byte class.  The returned StateBuilder adds
// explicit transitions that override this default path.
func (b *DFABuilder) AddState(originalID uint32, distance Distance,
	defaultSuccessorID uint32) *StateBuilder {
	stateID := b.getOrAllocate(originalKey(originalID))
	b.distances[stateID] = distance

	defaultSuccessor := b.getOrAllocate(originalKey(defaultSuccessorID))
	var predecessors [4]uint32
	predecessors[0] = defaultSuccessor
	for numBytes := uint8(1); numBytes < 4; numBytes++ {
		predecessorID := b.getOrAllocate(predecessorKey(defaultSuccessor, numBytes))
		predecessors[numBytes] = predecessorID
		succ := predecessors[numBytes-1]
		row := &b.transitions[predecessorID]
		for i := range row {
			row[i] = succ
		}
	}

	// lead-byte classes: 1-byte characters (and stray continuation
	// bytes) go straight to the default successor, 2/3/4-byte lead
	// bytes enter the predecessor chain with 1/2/3 bytes remaining
	row := &b.transitions[stateID]
	for i := 0; i < 0xc0; i++ {
		row[i] = predecessors[0]
	}
	for i := 0xc0; i < 0xe0; i++ {
		row[i] = predecessors[1]
	}
	for i := 0xe0; i < 0xf0; i++ {
		row[i] = predecessors[2]
	}
	for i := 0xf0; i < 0x100; i++ {
		row[i] = predecessors[3]
	}

	return &StateBuilder{
		builder:           b,
		stateID:           stateID,
		defaultSuccessors: predecessors,
	}
}

// Build freezes the builder into an immutable DFA.  One-shot: the
// builder's storage is handed off and the builder must not be used
// afterward.
func (b *DFABuilder) Build() *DFA {
	rv := &DFA{
		transitions:  b.transitions,
		distances:    b.distances,
		initialState: b.initialState,
	}
	b.index = nil
	b.transitions = nil
	b.distances = nil
	return rv
}

// A StateBuilder adds explicit character transitions to one state
// registered with AddState.  It is only valid until the next AddState or
// Build call on the parent builder.
type StateBuilder struct {
	builder           *DFABuilder
	stateID           uint32
	defaultSuccessors [4]uint32
}

// AddTransition installs an explicit edge for one rune, overriding the
// default path.  Multi-byte encodings are split into per-byte hops:
// leading bytes shared with previously added runes reuse the
// intermediate states those runes created, so explicit transitions with
// a common byte prefix share structure, while bytes not claimed by any
// explicit rune still fall through to the default chain.
func (s *StateBuilder) AddTransition(r rune, toOriginalID uint32) {
	var buf [4]byte
	n := utf8.EncodeRune(buf[:], r)
	bytes := buf[:n]

	from := s.stateID
	for i, b := range bytes[:n-1] {
		remaining := n - i - 1
		defaultSuccessor := s.defaultSuccessors[remaining]
		intermediary := s.builder.transitions[from][b]
		if intermediary == defaultSuccessor {
			// first explicit rune to diverge through this byte
			// here: branch off the default path with a fresh,
			// unshared state whose unclaimed bytes keep
			// defaulting
			intermediary = s.builder.allocate()
			row := &s.builder.transitions[intermediary]
			for j := range row {
				row[j] = defaultSuccessor
			}
			s.builder.transitions[from][b] = intermediary
		}
		from = intermediary
	}

	to := s.builder.getOrAllocate(originalKey(toOriginalID))
	s.builder.transitions[from][bytes[n-1]] = to
}
