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
		Use:   "diff A B",
		Short: "Report the most significant difference between two versions",
		Long: "Report the most significant level at which two versions differ:\n" +
			"Major, Minor, Patch, Prerelease, Build, or Same.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, d, err := semver.Difference(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), d)
			return nil
		},
	}
	argparser.AddCommand(cmd)
}
