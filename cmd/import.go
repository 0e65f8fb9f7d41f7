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

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import [csv...]",
	Short: "Import part-number CSV files into the part database.",
	Long: `Import part-number CSV files into the part database.

		Accepts the CSVs written by the expand command. Parts are keyed
		by MPN; importing a regenerated file refreshes existing entries.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := lib.NewPartDB(dataDir())
		if err != nil {
			return fmt.Errorf("failed to open part database: %w", err)
		}
		defer db.Close()

		for _, arg := range args {
			src, err := lib.Normalize(arg)
			if err != nil {
				return err
			}

			parts, err := lib.ReadParts(src)
			if err != nil {
				return err
			}

			if err := db.Import(parts); err != nil {
				return fmt.Errorf("failed to import %s: %w", src, err)
			}

			log.Info("imported parts", "file", arg, "parts", len(parts))
		}

		count, err := db.Count()
		if err != nil {
			return err
		}
		log.Info("part database", "total", count)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	// Here you will define your flags and configuration settings.

	// Cobra supports Persistent Flags which will work for this command
	// and all subcommands, e.g.:
	// importCmd.PersistentFlags().String("foo", "", "A help for foo")

	// Cobra supports local flags which will only run when this command
	// is called directly, e.g.:
	// importCmd.Flags().BoolP("toggle", "t", false, "Help message for toggle")
}
