/*
Copyright © 2024 Mars Galactic <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/xoviat/symgen/lib"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [csv...]",
	Short: "Check that datasheet links in part lists still resolve.",
	Long: `Check that datasheet links in part lists still resolve.

		Reads part-number CSVs and issues one rate-limited request per
		distinct datasheet URL. Exits non-zero if any link is dead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		checker := lib.NewURLChecker()

		dead := 0
		for _, arg := range args {
			parts, err := lib.ReadParts(arg)
			if err != nil {
				return err
			}

			for url, err := range checker.CheckParts(parts) {
				log.Error("dead datasheet link", "file", arg, "url", url, "err", err)
				dead++
			}
		}

		if dead > 0 {
			return fmt.Errorf("%d dead datasheet links", dead)
		}

		log.Info("all datasheet links resolve")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	// Here you will define your flags and configuration settings.

	// Cobra supports Persistent Flags which will work for this command
	// and all subcommands, e.g.:
	// checkCmd.PersistentFlags().String("foo", "", "A help for foo")

	// Cobra supports local flags which will only run when this command
	// is called directly, e.g.:
	// checkCmd.Flags().BoolP("toggle", "t", false, "Help message for toggle")
}
