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
	"github.com/spf13/cobra"
)

// RootCmd is the root of the utf8dfa command tree.
var RootCmd = &cobra.Command{
	Use:   "utf8dfa",
	Short: "Utf8dfa builds and evaluates byte-level UTF-8 DFA files.",
	Long:  `Utf8dfa builds and evaluates byte-level UTF-8 DFA files.`,
}
