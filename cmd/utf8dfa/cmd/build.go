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

package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/couchbase/utf8dfa"
	"github.com/spf13/cobra"
)

type stateRecord struct {
	id          uint32
	distance    utf8dfa.Distance
	defaultSucc uint32
}

type transRecord struct {
	char rune
	to   uint32
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Builds a utf8dfa DFA file from a CSV automaton description.",
	Long: `Builds a utf8dfa DFA file from a CSV automaton description.

The CSV file contains one record per line, of three kinds:

  initial,<id>                          the initial state
  state,<id>,<exact|atleast>,<n>,<did>  a state with distance n and
                                        default successor did
  trans,<id>,<char>,<to>                an explicit transition for one
                                        character`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return fmt.Errorf("paths required")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		inFile, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer func() {
			_ = inFile.Close()
		}()

		var states []stateRecord
		trans := map[uint32][]transRecord{}
		var initial uint32
		var sawInitial bool

		r := csv.NewReader(inFile)
		r.FieldsPerRecord = -1
		for {
			record, err := r.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				return err
			}
			switch record[0] {
			case "initial":
				if len(record) != 2 {
					return fmt.Errorf("incorrect number of fields: %v", record)
				}
				id, err := parseID(record[1])
				if err != nil {
					return err
				}
				initial = id
				sawInitial = true
			case "state":
				if len(record) != 5 {
					return fmt.Errorf("incorrect number of fields: %v", record)
				}
				id, err := parseID(record[1])
				if err != nil {
					return err
				}
				n, err := strconv.ParseUint(record[3], 10, 8)
				if err != nil {
					return err
				}
				var distance utf8dfa.Distance
				switch record[2] {
				case "exact":
					distance = utf8dfa.Exact(uint8(n))
				case "atleast":
					distance = utf8dfa.AtLeast(uint8(n))
				default:
					return fmt.Errorf("unknown distance kind %q", record[2])
				}
				defaultSucc, err := parseID(record[4])
				if err != nil {
					return err
				}
				states = append(states, stateRecord{
					id:          id,
					distance:    distance,
					defaultSucc: defaultSucc,
				})
			case "trans":
				if len(record) != 4 {
					return fmt.Errorf("incorrect number of fields: %v", record)
				}
				id, err := parseID(record[1])
				if err != nil {
					return err
				}
				chars := []rune(record[2])
				if len(chars) != 1 {
					return fmt.Errorf("expected a single character: %q", record[2])
				}
				to, err := parseID(record[3])
				if err != nil {
					return err
				}
				trans[id] = append(trans[id], transRecord{char: chars[0], to: to})
			default:
				return fmt.Errorf("unknown record kind %q", record[0])
			}
		}
		if !sawInitial {
			return fmt.Errorf("no initial record found")
		}

		builder := utf8dfa.NewDFABuilder(len(states))
		builder.SetInitialState(initial)
		for _, s := range states {
			sb := builder.AddState(s.id, s.distance, s.defaultSucc)
			for _, t := range trans[s.id] {
				sb.AddTransition(t.char, t.to)
			}
			delete(trans, s.id)
		}
		if len(trans) > 0 {
			var leftover uint32
			for id := range trans {
				leftover = id
				break
			}
			return fmt.Errorf("trans record for state %d with no state record", leftover)
		}
		dfa := builder.Build()

		err = utf8dfa.SaveFile(dfa, args[1])
		if err != nil {
			return err
		}
		fmt.Printf("built dfa with %d states\n", dfa.NumStates())
		return nil
	},
}

func parseID(s string) (uint32, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(id), nil
}

func init() {
	RootCmd.AddCommand(buildCmd)
}
