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
	"bufio"
	"fmt"
	"strings"

	"github.com/datawire/dlib/dlog"
	"github.com/spf13/cobra"

	"github.com/mixtools/semver"
)

func init() {
	cmd := &cobra.Command{
		Use:   "sort [VERSION...]",
		Short: "Sort versions in increasing precedence order",
		Long: "Sort the argument versions, or one version per line from standard input\n" +
			"if no arguments are given, in increasing precedence order. Strings that\n" +
			"are not valid versions are skipped with a warning.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if len(args) == 0 {
				scanner := bufio.NewScanner(cmd.InOrStdin())
				for scanner.Scan() {
					if line := strings.TrimSpace(scanner.Text()); line != "" {
						args = append(args, line)
					}
				}
				if err := scanner.Err(); err != nil {
					return err
				}
			}
			list := make([]*semver.Version, 0, len(args))
			for _, arg := range args {
				v, err := semver.Parse(arg)
				if err != nil {
					dlog.Warnf(ctx, "skipping %q: %v", arg, err)
					continue
				}
				list = append(list, v)
			}
			semver.Sort(list)
			for _, v := range list {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			return nil
		},
	}
	argparser.AddCommand(cmd)
}
