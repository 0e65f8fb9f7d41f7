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
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/xoviat/symgen/lib"
)

/*
	expansion of one manufacturer series into parts plus symbol rendering
*/
type expandedSeries struct {
	name  string
	parts []*lib.PartInfo
}

func expandResistors(names []string) ([]*expandedSeries, error) {
	expanded := []*expandedSeries{}
	for _, series := range lib.ResistorSeriesSpecs {
		if len(names) > 0 && !contains(names, series.BaseSeries) {
			continue
		}

		parts, err := series.Expand()
		if err != nil {
			return nil, err
		}

		expanded = append(expanded, &expandedSeries{series.BaseSeries, parts})
	}

	return expanded, nil
}

func expandCapacitors(names []string) ([]*expandedSeries, error) {
	expanded := []*expandedSeries{}
	for _, series := range lib.CapacitorSeriesSpecs {
		if len(names) > 0 && !contains(names, series.BaseSeries) {
			continue
		}

		parts, err := series.Expand()
		if err != nil {
			return nil, err
		}

		expanded = append(expanded, &expandedSeries{series.BaseSeries, parts})
	}

	return expanded, nil
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}

	return false
}

func writeSeriesFiles(family *lib.Family, prefix string, series *expandedSeries) error {
	code := strings.ReplaceAll(series.name, "-", "")
	csvFile := filepath.Join("data", code+"_part_numbers.csv")
	symbolFile := filepath.Join("series_kicad_sym",
		fmt.Sprintf("%s_%s_DATA_BASE.kicad_sym", prefix, code))

	if err := lib.WriteParts(csvFile, series.parts); err != nil {
		return err
	}

	text, err := lib.RenderLibrary(family, lib.Records(series.parts))
	if err != nil {
		return err
	}
	if err := os.WriteFile(symbolFile, []byte(text), 0666); err != nil {
		return fmt.Errorf("failed to write %s: %w", symbolFile, err)
	}

	log.Info("expanded series", "series", series.name,
		"parts", len(series.parts), "csv", csvFile, "symbols", symbolFile)
	return nil
}

func writeUnifiedFiles(family *lib.Family, prefix string, all []*lib.PartInfo) error {
	csvFile := filepath.Join("data",
		fmt.Sprintf("UNITED_%s_DATA_BASE.csv", prefix))
	symbolFile := fmt.Sprintf("UNITED_%s_DATA_BASE.kicad_sym", prefix)

	if err := lib.WriteParts(csvFile, all); err != nil {
		return err
	}

	text, err := lib.RenderLibrary(family, lib.Records(all))
	if err != nil {
		return err
	}
	if err := os.WriteFile(symbolFile, []byte(text), 0666); err != nil {
		return fmt.Errorf("failed to write %s: %w", symbolFile, err)
	}

	log.Info("generated unified files", "parts", len(all),
		"csv", csvFile, "symbols", symbolFile)
	return nil
}

// expandCmd represents the expand command
var expandCmd = &cobra.Command{
	Use:   "expand [series...]",
	Short: "Expand manufacturer series into part numbers and symbols.",
	Long: `Expand manufacturer series into part numbers and symbols.

		For each series of the selected family (or only the named ones),
		writes a part-number CSV under data/ and a symbol library under
		series_kicad_sym/, then unified files covering every series.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		family, err := lib.FamilyByName(viper.GetString("family"))
		if err != nil {
			return err
		}

		prefix := "RESISTORS"
		var expanded []*expandedSeries
		if family == lib.Capacitor {
			prefix = "CAPACITORS"
			expanded, err = expandCapacitors(args)
		} else {
			expanded, err = expandResistors(args)
		}
		if err != nil {
			return err
		}

		if len(expanded) == 0 {
			return fmt.Errorf("no matching series: %s", strings.Join(args, ", "))
		}

		for _, dir := range []string{"data", "series_kicad_sym"} {
			if err := os.MkdirAll(dir, 0777); err != nil {
				return err
			}
		}

		all := []*lib.PartInfo{}
		for _, series := range expanded {
			if err := writeSeriesFiles(family, prefix, series); err != nil {
				return err
			}

			all = append(all, series.parts...)
		}

		return writeUnifiedFiles(family, prefix, all)
	},
}

func init() {
	rootCmd.AddCommand(expandCmd)

	// Here you will define your flags and configuration settings.

	// Cobra supports Persistent Flags which will work for this command
	// and all subcommands, e.g.:
	// expandCmd.PersistentFlags().String("foo", "", "A help for foo")

	// Cobra supports local flags which will only run when this command
	// is called directly, e.g.:
	// expandCmd.Flags().BoolP("toggle", "t", false, "Help message for toggle")
}
