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
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/xoviat/symgen/lib"
)

func printParts(parts []*lib.PartInfo) {
	for _, part := range parts {
		fmt.Printf("%s\t%s\t%s\n", part.MPN, part.Value, part.Description)
	}
}

func seriesCompleter(d prompt.Document) []prompt.Suggest {
	suggestions := []prompt.Suggest{}
	for _, series := range lib.ResistorSeriesSpecs {
		suggestions = append(suggestions, prompt.Suggest{
			Text: series.BaseSeries, Description: "resistor series",
		})
	}
	for _, series := range lib.CapacitorSeriesSpecs {
		suggestions = append(suggestions, prompt.Suggest{
			Text: series.BaseSeries, Description: "capacitor series",
		})
	}

	return prompt.FilterHasPrefix(suggestions, d.GetWordBeforeCursor(), true)
}

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the part database.",
	Long: `Search the part database.

		With a query argument, prints matching parts and exits. Without
		one, drops into an interactive prompt.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := lib.NewPartDB(dataDir())
		if err != nil {
			return fmt.Errorf("failed to open part database: %w", err)
		}
		defer db.Close()

		if len(args) > 0 {
			parts, err := db.Find(strings.Join(args, " "))
			if err != nil {
				return err
			}

			printParts(parts)
			return nil
		}

		for {
			query := prompt.Input("> ", seriesCompleter)
			if query == "" {
				return nil
			}

			parts, err := db.Find(query)
			if err != nil {
				log.Error("search failed", "err", err)
				continue
			}

			printParts(parts)
		}
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)

	// Here you will define your flags and configuration settings.

	// Cobra supports Persistent Flags which will work for this command
	// and all subcommands, e.g.:
	// searchCmd.PersistentFlags().String("foo", "", "A help for foo")

	// Cobra supports local flags which will only run when this command
	// is called directly, e.g.:
	// searchCmd.Flags().BoolP("toggle", "t", false, "Help message for toggle")
}
