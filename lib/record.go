package lib

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

/*
	Symbol Name	Reference	Value	Footprint	Datasheet	Description	Manufacturer	MPN	Tolerance	Voltage Rating
	R_ERJ-3EKF1002V	R	10 kΩ	footprints:R_0603_1608Metric	https://...	RES SMD 10 kΩ 1% 0603 75V	Panasonic	ERJ-3EKF1002V	1%	75V
*/

var RecordColumns = []string{
	"Symbol Name",
	"Reference",
	"Value",
	"Footprint",
	"Datasheet",
	"Description",
	"Manufacturer",
	"MPN",
	"Tolerance",
	"Voltage Rating",
}

func cell(line []string, index int) string {
	if index < len(line) {
		return line[index]
	}

	return ""
}

/*
	Read component records from a CSV file. The header row must carry
	every record column; extra columns are ignored. A missing file, a
	missing column, or a file with no data rows is an error, raised
	before any output is written.
*/
func ReadRecords(src string) ([]*ComponentRecord, error) {
	fp, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer fp.Close()

	reader := csv.NewReader(fp)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty input file: %s", src)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	index := make(map[string]int)
	for i, column := range header {
		index[column] = i
	}

	for _, column := range RecordColumns {
		if _, ok := index[column]; !ok {
			return nil, fmt.Errorf("missing required column: %s", column)
		}
	}

	records := []*ComponentRecord{}
	for {
		line, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		records = append(records, &ComponentRecord{
			SymbolName:    cell(line, index["Symbol Name"]),
			Reference:     cell(line, index["Reference"]),
			Value:         cell(line, index["Value"]),
			Footprint:     cell(line, index["Footprint"]),
			Datasheet:     cell(line, index["Datasheet"]),
			Description:   cell(line, index["Description"]),
			Manufacturer:  cell(line, index["Manufacturer"]),
			MPN:           cell(line, index["MPN"]),
			Tolerance:     cell(line, index["Tolerance"]),
			VoltageRating: cell(line, index["Voltage Rating"]),
		})
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no component rows in %s", src)
	}

	return records, nil
}

func WriteRecords(dst string, records []*ComponentRecord) error {
	fp, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	defer fp.Close()

	writer := csv.NewWriter(fp)
	writer.Write(RecordColumns)
	for _, record := range records {
		line := make([]string, 0, len(RecordColumns))
		for _, column := range RecordColumns {
			line = append(line, record.field(column))
		}
		writer.Write(line)
	}

	writer.Flush()
	return writer.Error()
}
