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

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/xoviat/symgen/lib"
	"github.com/xuri/excelize/v2"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export [dst.xlsx]",
	Short: "Export a part list to a spreadsheet.",
	Long: `Export a part list to a spreadsheet.

		Exports the parts matching a query (or every part, with --all)
		from the part database in the xlsx format.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dst := args[0]
		if !strings.HasSuffix(dst, ".xlsx") && !strings.HasSuffix(dst, ".xls") {
			return fmt.Errorf("export file name must be an excel file: %s", dst)
		}

		db, err := lib.NewPartDB(dataDir())
		if err != nil {
			return fmt.Errorf("failed to open part database: %w", err)
		}
		defer db.Close()

		var parts []*lib.PartInfo
		switch {
		case exportAll:
			parts, err = db.All()
		case exportQuery != "":
			parts, err = db.Find(exportQuery)
		default:
			return fmt.Errorf("either --query or --all is required")
		}
		if err != nil {
			return err
		}

		f := excelize.NewFile()
		sheet := "parts"
		f.NewSheet(sheet)
		f.DeleteSheet("Sheet1")

		header := make([]interface{}, 0, len(lib.PartColumns))
		for _, column := range lib.PartColumns {
			header = append(header, column)
		}
		f.SetSheetRow(sheet, "A1", &header)

		for i, part := range parts {
			row := []interface{}{
				part.SymbolName, part.Reference, part.Value, part.Footprint,
				part.Datasheet, part.Description, part.Manufacturer, part.MPN,
				part.Tolerance, part.VoltageRating,
				part.CaseCodeIn, part.CaseCodeMM, part.Series, part.Trustedparts,
			}
			f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &row)
		}

		if err := f.SaveAs(dst); err != nil {
			return fmt.Errorf("failed to save %s: %w", dst, err)
		}

		log.Info("exported parts", "file", dst, "parts", len(parts))
		return nil
	},
}

var (
	exportQuery string
	exportAll   bool
)

func init() {
	rootCmd.AddCommand(exportCmd)

	// Here you will define your flags and configuration settings.

	// Cobra supports Persistent Flags which will work for this command
	// and all subcommands, e.g.:
	// exportCmd.PersistentFlags().String("foo", "", "A help for foo")

	// Cobra supports local flags which will only run when this command
	// is called directly, e.g.:
	exportCmd.Flags().StringVarP(&exportQuery, "query", "q", "", "export only parts matching this query")
	exportCmd.Flags().BoolVar(&exportAll, "all", false, "export every part in the database")
}
