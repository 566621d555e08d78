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
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/willf/bitset"
)

var dotHeader = `digraph g {
rankdir=LR
`

var dotFooter = `}
`

// ExportDFADot will export the states reachable from the DFA's initial
// state into the GraphViz (dot) file format.  Contiguous byte values
// leading to the same successor are collapsed into a single edge.
func ExportDFADot(d *DFA, w io.Writer) error {
	bw := bufio.NewWriter(w)

	_, err := bw.WriteString(dotHeader)
	if err != nil {
		return err
	}

	seen := bitset.New(uint(d.NumStates()))
	seen.Set(uint(d.InitialState()))
	queue := []uint32{d.InitialState()}
	for len(queue) > 0 {
		state := queue[0]
		queue = queue[1:]
		queue = append(queue, exportDFAStateDot(d, state, bw, seen)...)
	}

	_, err = bw.WriteString(dotFooter)
	if err != nil {
		return err
	}

	return bw.Flush()
}

func exportDFAStateDot(d *DFA, state uint32, bw *bufio.Writer,
	seen *bitset.BitSet) []uint32 {
	var discovered []uint32

	var buf bytes.Buffer
	dist := d.Distance(state)
	_, _ = buf.WriteString(fmt.Sprintf("%d [label=\"%d %s\"]\n", state, state, dist))
	if dist.IsExact() {
		_, _ = buf.WriteString(fmt.Sprintf("%d [shape=doublecircle]\n", state))
	}

	start := 0
	for b := 1; b <= 256; b++ {
		if b < 256 && d.Transition(state, byte(b)) == d.Transition(state, byte(start)) {
			continue
		}
		next := d.Transition(state, byte(start))
		if start == b-1 {
			_, _ = buf.WriteString(fmt.Sprintf("%d -> %d [label=\"%02x\"]\n",
				state, next, start))
		} else {
			_, _ = buf.WriteString(fmt.Sprintf("%d -> %d [label=\"%02x-%02x\"]\n",
				state, next, start, b-1))
		}
		if !seen.Test(uint(next)) {
			seen.Set(uint(next))
			discovered = append(discovered, next)
		}
		start = b
	}
	_, _ = buf.WriteString("\n\n")

	_, _ = bw.Write(buf.Bytes())

	return discovered
}
