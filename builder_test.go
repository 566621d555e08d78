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

import "testing"

// buildParityDFA builds a two state automaton tracking the parity of
// the number of characters consumed, regardless of how many bytes each
// character takes.  Distance Exact(0) on even counts, Exact(1) on odd.
func buildParityDFA() *DFA {
	builder := NewDFABuilder(2)
	builder.AddState(0, Exact(1), 1)
	builder.AddState(1, Exact(0), 0)
	builder.SetInitialState(1)
	return builder.Build()
}

func TestParityOfCharCount(t *testing.T) {
	dfa := buildParityDFA()

	tests := []struct {
		desc string
		text string
		want uint8
	}{
		{"empty", "", 0},
		{"six ascii", "abcdef", 0},
		{"one ascii", "a", 1},
		{"ascii then 3-byte", "aあ", 0},
		{"one 3-byte", "❤", 1},
		{"two 3-byte", "❤❤", 0},
		{"3-byte then ascii", "❤a", 0},
		{"one 3-byte hiragana", "あ", 1},
		{"two 3-byte hiragana", "ああ", 0},
		{"one 2-byte", "é", 1},
		{"two 2-byte", "éé", 0},
		{"one 4-byte", "😂", 1},
		{"4-byte then ascii", "😂a", 0},
	}

	for _, test := range tests {
		got := dfa.EvalString(test.text)
		if !got.IsExact() || got.Distance() != test.want {
			t.Errorf("%s: eval(%q) got %s, want Exact(%d)",
				test.desc, test.text, got, test.want)
		}
		gotBytes := dfa.Eval([]byte(test.text))
		if gotBytes != got {
			t.Errorf("%s: Eval/EvalString disagree: %s vs %s",
				test.desc, gotBytes, got)
		}
	}
}

func TestSetInitialStateOrder(t *testing.T) {
	// initial state registered before its AddState
	before := NewDFABuilder(2)
	before.SetInitialState(1)
	before.AddState(0, Exact(1), 1)
	before.AddState(1, Exact(0), 0)
	dfaBefore := before.Build()

	// and after
	after := NewDFABuilder(2)
	after.AddState(0, Exact(1), 1)
	after.AddState(1, Exact(0), 0)
	after.SetInitialState(1)
	dfaAfter := after.Build()

	for _, text := range []string{"", "a", "ab", "あ", "aあ"} {
		gb := dfaBefore.EvalString(text)
		ga := dfaAfter.EvalString(text)
		if gb != ga {
			t.Errorf("eval(%q): initial-first got %s, initial-last got %s",
				text, gb, ga)
		}
	}
}

// buildChainDFA registers numStates states all sharing the same default
// successor.
func buildChainDFA(numStates int) *DFA {
	builder := NewDFABuilder(numStates)
	for i := 0; i < numStates; i++ {
		builder.AddState(uint32(i), Exact(0), 99)
	}
	builder.AddState(99, AtLeast(1), 99)
	builder.SetInitialState(0)
	return builder.Build()
}

func TestPredecessorStatesShared(t *testing.T) {
	// the three synthesized predecessor states for a given default
	// successor are interned, so registering more states against the
	// same successor grows the DFA by exactly one state each
	small := buildChainDFA(5)
	large := buildChainDFA(10)
	if got := large.NumStates() - small.NumStates(); got != 5 {
		t.Errorf("5 extra states with a shared default successor grew "+
			"the dfa by %d states, want 5", got)
	}
}

func TestTotality(t *testing.T) {
	dfas := []*DFA{
		buildParityDFA(),
		buildChainDFA(3),
		buildHeartDFA(),
	}
	for _, dfa := range dfas {
		numStates := uint32(dfa.NumStates())
		for state := uint32(0); state < numStates; state++ {
			for b := 0; b < 256; b++ {
				next := dfa.Transition(state, byte(b))
				if next >= numStates {
					t.Fatalf("transition %d/%x -> %d out of range, %d states",
						state, b, next, numStates)
				}
			}
		}
	}
}

// buildHeartDFA is the parity automaton with an explicit transition for
// '❤' out of state 1, landing on a third state instead of the default
// path.
func buildHeartDFA() *DFA {
	builder := NewDFABuilder(4)
	builder.AddState(0, Exact(1), 1)
	sb := builder.AddState(1, Exact(0), 0)
	sb.AddTransition('❤', 2)
	builder.AddState(2, Exact(2), 2)
	builder.SetInitialState(1)
	return builder.Build()
}

func TestExplicitTransitionOverridesDefault(t *testing.T) {
	dfa := buildHeartDFA()

	tests := []struct {
		desc string
		text string
		want Distance
	}{
		{"explicit 3-byte char", "❤", Exact(2)},
		{"explicit char self-loops via default", "❤❤", Exact(2)},
		{"default ascii unaffected", "a", Exact(1)},
		{"default 3-byte unaffected", "あ", Exact(1)},
		{"explicit only from state 1", "a❤", Exact(0)},
	}

	for _, test := range tests {
		got := dfa.EvalString(test.text)
		if got != test.want {
			t.Errorf("%s: eval(%q) got %s, want %s",
				test.desc, test.text, got, test.want)
		}
	}
}

func TestExplicitTransitionPrefixSharing(t *testing.T) {
	build := func(second bool) *DFA {
		builder := NewDFABuilder(4)
		builder.AddState(0, Exact(1), 1)
		sb := builder.AddState(1, Exact(0), 0)
		// U+2764 and U+2765 share their first two encoded bytes
		sb.AddTransition('❤', 2)
		if second {
			sb.AddTransition('❥', 3)
			builder.AddState(3, Exact(3), 2)
		}
		builder.AddState(2, Exact(2), 2)
		builder.SetInitialState(1)
		return builder.Build()
	}

	one := build(false)
	two := build(true)

	if got := two.EvalString("❤"); got != Exact(2) {
		t.Errorf("eval(%q) got %s, want Exact(2)", "❤", got)
	}
	if got := two.EvalString("❥"); got != Exact(3) {
		t.Errorf("eval(%q) got %s, want Exact(3)", "❥", got)
	}

	// the second rune reuses the first rune's intermediate states, so
	// it only adds its destination
	if got := two.NumStates() - one.NumStates(); got != 1 {
		t.Errorf("shared-prefix transition added %d states, want 1", got)
	}
}

func TestBuildIsOneShot(t *testing.T) {
	builder := NewDFABuilder(2)
	builder.AddState(0, Exact(1), 1)
	builder.AddState(1, Exact(0), 0)
	builder.SetInitialState(1)
	dfa := builder.Build()
	numStates := dfa.NumStates()

	// the builder hands its storage to the DFA, further use fails
	// fast instead of mutating the frozen tables
	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("expected AddState after Build to panic")
			}
		}()
		builder.AddState(2, Exact(0), 0)
	}()

	if got := dfa.NumStates(); got != numStates {
		t.Errorf("frozen dfa grew from %d to %d states", numStates, got)
	}
	if got := dfa.EvalString("a"); got != Exact(1) {
		t.Errorf("frozen dfa eval(%q) got %s, want Exact(1)", "a", got)
	}
}

func TestIdempotentReads(t *testing.T) {
	dfa := buildParityDFA()

	numStates := dfa.NumStates()
	initial := dfa.InitialState()
	dist := dfa.Distance(initial)
	next := dfa.Transition(initial, 'a')

	for i := 0; i < 10; i++ {
		_ = dfa.EvalString("aあ❤")
		if got := dfa.NumStates(); got != numStates {
			t.Fatalf("NumStates changed from %d to %d", numStates, got)
		}
		if got := dfa.InitialState(); got != initial {
			t.Fatalf("InitialState changed from %d to %d", initial, got)
		}
		if got := dfa.Distance(initial); got != dist {
			t.Fatalf("Distance changed from %s to %s", dist, got)
		}
		if got := dfa.Transition(initial, 'a'); got != next {
			t.Fatalf("Transition changed from %d to %d", next, got)
		}
	}
}
