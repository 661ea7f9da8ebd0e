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
	var allowPre bool
	cmd := &cobra.Command{
		Use:   "match REQUIREMENT VERSION...",
		Short: "Report whether versions satisfy a requirement",
		Long: "Evaluate each VERSION against REQUIREMENT and print one line per version\n" +
			"with the result. The exit status is nonzero if any version did not match.",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := semver.ParseRequirement(args[0])
			if err != nil {
				return err
			}
			compiled := req.Compile()
			opts := semver.MatchOptions{AllowPrerelease: allowPre}
			misses := 0
			for _, arg := range args[1:] {
				v, err := semver.Parse(arg)
				if err != nil {
					return err
				}
				ok := compiled.MatchWith(v, opts)
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%t\n", arg, ok)
				if !ok {
					misses++
				}
			}
			if misses > 0 {
				return fmt.Errorf("%d of %d versions do not match %q", misses, len(args)-1, req)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&allowPre, "pre", true, "allow pre-release versions to match")
	argparser.AddCommand(cmd)
}
