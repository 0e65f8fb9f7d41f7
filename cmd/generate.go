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
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/xoviat/symgen/lib"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate [src] [dst]",
	Short: "Generate a .kicad_sym library from component CSV data.",
	Long: `Generate a .kicad_sym library from component CSV data.

		Without arguments, reads the conventional input for the selected
		family (resistor.csv or capacitor.csv) from the working directory
		and writes the conventional output next to it.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		family, err := lib.FamilyByName(viper.GetString("family"))
		if err != nil {
			return err
		}

		src := family.InputFile
		dst := family.OutputFile
		if len(args) >= 1 {
			src = args[0]
		}
		if len(args) == 2 {
			dst = args[1]
		}

		records, err := lib.ReadRecords(src)
		if err != nil {
			return err
		}

		text, err := lib.RenderLibrary(family, records)
		if err != nil {
			return err
		}

		if err := os.WriteFile(dst, []byte(text), 0666); err != nil {
			return fmt.Errorf("failed to write %s: %w", dst, err)
		}

		log.Info("generated symbol library", "family", family.Name,
			"symbols", len(records), "file", dst)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	// Here you will define your flags and configuration settings.

	// Cobra supports Persistent Flags which will work for this command
	// and all subcommands, e.g.:
	// generateCmd.PersistentFlags().String("foo", "", "A help for foo")

	// Cobra supports local flags which will only run when this command
	// is called directly, e.g.:
	// generateCmd.Flags().BoolP("toggle", "t", false, "Help message for toggle")
}
