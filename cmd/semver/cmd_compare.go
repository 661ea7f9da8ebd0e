// Copyright 2025 The Mixtools Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mixtools/semver"
)

func init() {
	cmd := &cobra.Command{
		Use:   "compare A B",
		Short: "Compare two versions by precedence",
		Long: "Compare two versions by semantic version precedence and print -1, 0 or 1\n" +
			"as A is earlier than, equal to, or later than B. Build metadata is ignored.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := semver.Parse(args[0])
			if err != nil {
				return err
			}
			b, err := semver.Parse(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), semver.Compare(a, b))
			return nil
		},
	}
	argparser.AddCommand(cmd)
}
