package lib

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

/*
	Standard value series. Resistors expand E96 and E24, capacitors E12.
*/
var (
	E96Values = []float64{
		10.0, 10.2, 10.5, 10.7, 11.0, 11.3, 11.5, 11.8, 12.1, 12.4, 12.7, 13.0,
		13.3, 13.7, 14.0, 14.3, 14.7, 15.0, 15.4, 15.8, 16.2, 16.5, 16.9, 17.4,
		17.8, 18.2, 18.7, 19.1, 19.6, 20.0, 20.5, 21.0, 21.5, 22.1, 22.6, 23.2,
		23.7, 24.3, 24.9, 25.5, 26.1, 26.7, 27.4, 28.0, 28.7, 29.4, 30.1, 30.9,
		31.6, 32.4, 33.2, 34.0, 34.8, 35.7, 36.5, 37.4, 38.3, 39.2, 40.2, 41.2,
		42.2, 43.2, 44.2, 45.3, 46.4, 47.5, 48.7, 49.9, 51.1, 52.3, 53.6, 54.9,
		56.2, 57.6, 59.0, 60.4, 61.9, 63.4, 64.9, 66.5, 68.1, 69.8, 71.5, 73.2,
		75.0, 76.8, 78.7, 80.6, 82.5, 84.5, 86.6, 88.7, 90.9, 93.1, 95.3, 97.6,
	}

	E24Values = []float64{
		10.0, 11.0, 12.0, 13.0, 15.0, 16.0, 18.0, 20.0, 22.0, 24.0, 27.0, 30.0,
		33.0, 36.0, 39.0, 43.0, 47.0, 51.0, 56.0, 62.0, 68.0, 75.0, 82.0, 91.0,
	}

	E12Multipliers = []float64{1.0, 1.2, 1.5, 1.8, 2.2, 2.7, 3.3, 3.9, 4.7, 5.6, 6.8, 8.2}
)

/*
	Tolerance options carry explicit order so that repeated runs expand
	parts in the same sequence. A map here would shuffle the output.
*/
type ToleranceOption struct {
	Code  string
	Value string
}

/*
	One generated part: a component record plus the catalog columns the
	part-number CSV carries beyond the symbol schema.
*/
type PartInfo struct {
	ComponentRecord

	CaseCodeIn   string
	CaseCodeMM   string
	Series       string
	Trustedparts string
}

var PartColumns = append(append([]string{}, RecordColumns...),
	"Case Code - in", "Case Code - mm", "Series", "Trustedparts Search")

func (p *PartInfo) row() []string {
	line := make([]string, 0, len(PartColumns))
	for _, column := range RecordColumns {
		line = append(line, p.field(column))
	}

	return append(line, p.CaseCodeIn, p.CaseCodeMM, p.Series, p.Trustedparts)
}

/*
	Write a part list to CSV, component columns first, catalog columns
	after. ReadRecords accepts these files and ignores the extras.
*/
func WriteParts(dst string, parts []*PartInfo) error {
	fp, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	defer fp.Close()

	writer := csv.NewWriter(fp)
	writer.Write(PartColumns)
	for _, part := range parts {
		writer.Write(part.row())
	}

	writer.Flush()
	return writer.Error()
}

/*
	Read a part list back from CSV. Catalog columns are optional so the
	plain component schema imports too.
*/
func ReadParts(src string) ([]*PartInfo, error) {
	records, err := ReadRecords(src)
	if err != nil {
		return nil, err
	}

	fp, err := os.Open(src)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	reader := csv.NewReader(fp)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	for i, column := range header {
		index[column] = i
	}

	optional := func(line []string, column string) string {
		i, ok := index[column]
		if !ok {
			return ""
		}
		return cell(line, i)
	}

	parts := make([]*PartInfo, 0, len(records))
	for _, record := range records {
		line, err := reader.Read()
		if err != nil {
			return nil, err
		}

		parts = append(parts, &PartInfo{
			ComponentRecord: *record,
			CaseCodeIn:      optional(line, "Case Code - in"),
			CaseCodeMM:      optional(line, "Case Code - mm"),
			Series:          optional(line, "Series"),
			Trustedparts:    optional(line, "Trustedparts Search"),
		})
	}

	return parts, nil
}

func Records(parts []*PartInfo) []*ComponentRecord {
	records := make([]*ComponentRecord, 0, len(parts))
	for _, part := range parts {
		record := part.ComponentRecord
		records = append(records, &record)
	}

	return records
}

/*
	six significant digits, trailing zeros removed, so decade products
	like 97.6*10 print as 976 and not a fifteen-digit float tail
*/
func clean(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

/*
	Human-readable resistance: 10 Ω, 97.6 kΩ, 2.2 MΩ
*/
func FormatResistance(ohms float64) string {
	switch {
	case ohms >= 1e6:
		return clean(ohms/1e6) + " MΩ"
	case ohms >= 1e3:
		return clean(ohms/1e3) + " kΩ"
	default:
		return clean(ohms) + " Ω"
	}
}

/*
	Panasonic resistance code: R notation below 100Ω (10R0 for 10Ω),
	three significant digits plus a decade multiplier above (1002 for
	10kΩ).
*/
func ResistanceCode(ohms float64, maxOhms int) (string, error) {
	if ohms < 10 || ohms > float64(maxOhms) {
		return "", fmt.Errorf("resistance %s out of range (10Ω to %dΩ)",
			clean(ohms), maxOhms)
	}

	if ohms < 100 {
		whole := int(ohms)
		decimal := int(math.Round((ohms - float64(whole)) * 10))
		return fmt.Sprintf("%02dR%d", whole, decimal), nil
	}

	multiplier := 0
	for ohms >= 1000 {
		ohms /= 10
		multiplier++
	}

	return fmt.Sprintf("%03d%d", int(math.Round(ohms)), multiplier), nil
}

/*
	All values of a base series expanded by decade up to the limit
*/
func expandDecades(baseValues []float64, maxOhms int) []float64 {
	values := []float64{}
	for _, base := range baseValues {
		for current := base; current <= float64(maxOhms); current *= 10 {
			if current >= 10 {
				values = append(values, current)
			}
		}
	}

	return values
}

type SeriesType string

const (
	E96 SeriesType = "E96"
	E24 SeriesType = "E24"
)

type ResistorSeries struct {
	BaseSeries    string
	Footprint     string
	VoltageRating string
	CaseCodeIn    string
	CaseCodeMM    string
	PowerRating   string
	MaxResistance int
	Packaging     []string
	E96Tolerance  []ToleranceOption
	E24Tolerance  []ToleranceOption

	/*
		some series only ship tighter tolerances above 1MΩ
	*/
	HighResistanceTolerance []ToleranceOption

	Datasheet       string
	Manufacturer    string
	TrustedpartsURL string
}

func (s *ResistorSeries) tolerances(seriesType SeriesType, ohms float64) []ToleranceOption {
	if ohms > 1e6 && s.HighResistanceTolerance != nil {
		return s.HighResistanceTolerance
	}

	if seriesType == E96 {
		return s.E96Tolerance
	}
	return s.E24Tolerance
}

func (s *ResistorSeries) part(ohms float64, tolerance ToleranceOption, packaging string) (*PartInfo, error) {
	code, err := ResistanceCode(ohms, s.MaxResistance)
	if err != nil {
		return nil, err
	}

	mpn := s.BaseSeries + tolerance.Code + code + packaging
	value := FormatResistance(ohms)

	return &PartInfo{
		ComponentRecord: ComponentRecord{
			SymbolName: "R_" + mpn,
			Reference:  "R",
			Value:      value,
			Footprint:  s.Footprint,
			Datasheet:  s.Datasheet,
			Description: fmt.Sprintf("RES SMD %s %s %s %s",
				value, tolerance.Value, s.CaseCodeIn, s.VoltageRating),
			Manufacturer:  s.Manufacturer,
			MPN:           mpn,
			Tolerance:     tolerance.Value,
			VoltageRating: s.VoltageRating,
		},
		CaseCodeIn:   s.CaseCodeIn,
		CaseCodeMM:   s.CaseCodeMM,
		Series:       s.BaseSeries,
		Trustedparts: s.TrustedpartsURL + mpn,
	}, nil
}

/*
	Expand every part number of the series: E96 values then E24 values,
	each with every tolerance and packaging option. Series that offer
	the same tolerance code on both value lists would mint the same MPN
	twice for shared values like 10.0; duplicates are skipped so every
	expansion renders into one library cleanly.
*/
func (s *ResistorSeries) Expand() ([]*PartInfo, error) {
	parts := []*PartInfo{}
	seen := make(map[string]bool)

	for _, seriesType := range []SeriesType{E96, E24} {
		baseValues := E96Values
		if seriesType == E24 {
			baseValues = E24Values
		}

		for _, ohms := range expandDecades(baseValues, s.MaxResistance) {
			for _, tolerance := range s.tolerances(seriesType, ohms) {
				for _, packaging := range s.Packaging {
					part, err := s.part(ohms, tolerance, packaging)
					if err != nil {
						return nil, err
					}

					if seen[part.MPN] {
						continue
					}
					seen[part.MPN] = true

					parts = append(parts, part)
				}
			}
		}
	}

	return parts, nil
}

/*
	Human-readable capacitance: 220 pF, 4.7 nF, 1 µF
*/
func FormatCapacitance(farads float64) string {
	pf := farads * 1e12

	value := pf
	unit := "pF"
	switch {
	case farads >= 1e-6:
		value = farads / 1e-6
		unit = "µF"
	case pf >= 1000:
		value = pf / 1000
		unit = "nF"
	}

	if value == math.Trunc(value) {
		return fmt.Sprintf("%d %s", int(value), unit)
	}

	return fmt.Sprintf("%.3g %s", value, unit)
}

/*
	Murata capacitance code: R notation below 10pF (8R2 for 8.2pF), two
	significant digits plus a zero count above (221 for 220pF, 104 for
	0.1µF).
*/
func CapacitanceCode(farads float64) string {
	/*
		rounded to millipicofarads so threshold checks below never see
		a value sitting a few ulps under a power of ten
	*/
	pf := math.Round(farads*1e15) / 1e3

	if pf < 10 {
		whole := int(pf)
		decimal := int(math.Round((pf - float64(whole)) * 10))
		return fmt.Sprintf("%dR%d", whole, decimal)
	}

	zeros := 0
	for pf >= 100 {
		pf /= 10
		zeros++
	}

	return fmt.Sprintf("%02d%d", int(math.Round(pf)), zeros)
}

/*
	Round to one decimal of scientific notation. E12 decade expansion
	multiplies floats; without this, 0.1µF lands a few femtofarads off
	and range and exclusion checks miss.
*/
func normalizeValue(farads float64) float64 {
	normalized, _ := strconv.ParseFloat(strconv.FormatFloat(farads, 'e', 1, 64), 64)
	return normalized
}

func e12Values(minValue, maxValue float64, excluded []float64) []float64 {
	skip := make(map[float64]bool)
	for _, value := range excluded {
		skip[normalizeValue(value)] = true
	}

	values := []float64{}
	for decade := 1.0e-12; decade <= maxValue; decade = normalizeValue(decade * 10) {
		for _, multiplier := range E12Multipliers {
			value := normalizeValue(decade * multiplier)
			if value >= minValue && value <= maxValue && !skip[value] {
				values = append(values, value)
			}
		}
	}

	return values
}

/*
	Characteristic codes step with capacitance; thresholds are ordered
	largest first and the first one exceeded wins.
*/
type CharacteristicThreshold struct {
	Threshold float64
	Code      string
}

type CapacitorSeries struct {
	BaseSeries      string
	Manufacturer    string
	Footprint       string
	VoltageRating   string
	CaseCodeIn      string
	CaseCodeMM      string
	Packaging       []string
	Tolerance       []ToleranceOption
	Dielectric      string
	DielectricCode  string
	VoltageCode     string
	MinValue        float64
	MaxValue        float64
	Excluded        []float64
	Characteristics []CharacteristicThreshold
	DatasheetURL    string
	TrustedpartsURL string
}

func (s *CapacitorSeries) characteristicCode(farads float64) string {
	for _, threshold := range s.Characteristics {
		if farads > threshold.Threshold {
			return threshold.Code
		}
	}

	return s.Characteristics[len(s.Characteristics)-1].Code
}

/*
	Murata publishes one datasheet per voltage/capacitance/characteristic
	variant: base URL plus the MPN minus series prefix and packaging code
*/
func (s *CapacitorSeries) datasheetURL(mpn string) string {
	specific := strings.TrimPrefix(mpn[:len(mpn)-1], s.BaseSeries)
	return s.DatasheetURL + specific + "-01.pdf"
}

func (s *CapacitorSeries) part(farads float64, tolerance ToleranceOption, packaging string) *PartInfo {
	mpn := s.BaseSeries + s.DielectricCode + s.VoltageCode +
		CapacitanceCode(farads) + tolerance.Code +
		s.characteristicCode(farads) + packaging
	value := FormatCapacitance(farads)

	return &PartInfo{
		ComponentRecord: ComponentRecord{
			SymbolName: "C_" + mpn,
			Reference:  "C",
			Value:      value,
			Footprint:  s.Footprint,
			Datasheet:  s.datasheetURL(mpn),
			Description: fmt.Sprintf("CAP SMD %s %s %s %s %s",
				value, s.Dielectric, tolerance.Value, s.CaseCodeIn, s.VoltageRating),
			Manufacturer:  s.Manufacturer,
			MPN:           mpn,
			Tolerance:     tolerance.Value,
			VoltageRating: s.VoltageRating,
		},
		CaseCodeIn:   s.CaseCodeIn,
		CaseCodeMM:   s.CaseCodeMM,
		Series:       s.BaseSeries,
		Trustedparts: s.TrustedpartsURL + "/" + mpn,
	}
}

/*
	Expand every part number of the series: E12 values within the range,
	minus the exclusions, with every tolerance and packaging option.
*/
func (s *CapacitorSeries) Expand() ([]*PartInfo, error) {
	parts := []*PartInfo{}
	for _, farads := range e12Values(s.MinValue, s.MaxValue, s.Excluded) {
		for _, tolerance := range s.Tolerance {
			for _, packaging := range s.Packaging {
				parts = append(parts, s.part(farads, tolerance, packaging))
			}
		}
	}

	return parts, nil
}
