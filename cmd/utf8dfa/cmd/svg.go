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

var svgCmd = &cobra.Command{
	Use:   "svg",
	Short: "Svg renders the contents of this utf8dfa DFA file as an SVG.",
	Long:  `Svg renders the contents of this utf8dfa DFA file as an SVG, it requires graphviz.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return fmt.Errorf("input and output paths required")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		dfa, err := utf8dfa.Open(args[0])
		if err != nil {
			return err
		}
		return utf8dfa.ExportDFASVGFile(dfa, args[1])
	},
}

func init() {
	RootCmd.AddCommand(svgCmd)
}
