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

import (
	"sync"
	"testing"
)

func TestEvalDeterminism(t *testing.T) {
	dfa := buildParityDFA()
	first := dfa.EvalString("aあ❤😂")
	for i := 0; i < 100; i++ {
		if got := dfa.EvalString("aあ❤😂"); got != first {
			t.Fatalf("eval #%d got %s, first got %s", i, got, first)
		}
	}
}

func TestEvalMatchesIncrementalDriving(t *testing.T) {
	dfa := buildHeartDFA()
	for _, text := range []string{"", "a", "abcdef", "あ", "❤", "❤❤", "a❤"} {
		state := dfa.InitialState()
		for i := 0; i < len(text); i++ {
			state = dfa.Transition(state, text[i])
		}
		manual := dfa.Distance(state)
		if got := dfa.EvalString(text); got != manual {
			t.Errorf("eval(%q) got %s, incremental driving got %s",
				text, got, manual)
		}
	}
}

func TestConcurrentEval(t *testing.T) {
	dfa := buildParityDFA()
	texts := []string{"", "a", "ab", "あ", "aあ", "❤", "❤❤", "😂a"}
	expected := make([]Distance, len(texts))
	for i, text := range texts {
		expected[i] = dfa.EvalString(text)
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				j := i % len(texts)
				if got := dfa.EvalString(texts[j]); got != expected[j] {
					t.Errorf("concurrent eval(%q) got %s, want %s",
						texts[j], got, expected[j])
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestUnregisteredStateSentinel(t *testing.T) {
	// state 7 is referenced as a default successor but never
	// registered, a caller bug that surfaces as the sentinel distance
	builder := NewDFABuilder(2)
	builder.AddState(0, Exact(0), 7)
	builder.SetInitialState(0)
	dfa := builder.Build()

	if got := dfa.EvalString("a"); got != AtLeast(255) {
		t.Errorf("eval landing on unregistered state got %s, want AtLeast(255)", got)
	}
}
