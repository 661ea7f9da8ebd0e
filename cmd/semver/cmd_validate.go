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
	var requirement bool
	cmd := &cobra.Command{
		Use:   "validate STRING...",
		Short: "Check version or requirement syntax",
		Long: "Parse each argument as a version, or as a requirement with --requirement,\n" +
			"and print its canonical form. The first invalid argument stops the run\n" +
			"with a nonzero exit status.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				if requirement {
					r, err := semver.ParseRequirement(arg)
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), r)
					continue
				}
				v, err := semver.Parse(arg)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), v.Canon(true))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&requirement, "requirement", false, "parse arguments as requirements instead of versions")
	argparser.AddCommand(cmd)
}
