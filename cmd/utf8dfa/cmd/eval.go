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
	"fmt"

	"github.com/couchbase/utf8dfa"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Eval runs texts through a utf8dfa DFA file.",
	Long:  `Eval runs each text argument through the DFA in the file and prints the resulting distance.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return fmt.Errorf("path and text required")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		dfa, err := utf8dfa.Open(args[0])
		if err != nil {
			return err
		}
		for _, text := range args[1:] {
			fmt.Printf("%s - %s\n", text, dfa.EvalString(text))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(evalCmd)
}
