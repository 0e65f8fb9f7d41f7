package lib

/*
	Panasonic ERJ thick-film chip resistor series. Values mirror the
	manufacturer catalog: case size, power and voltage rating, maximum
	resistance, packaging suffixes, and the tolerance codes offered per
	value series.
*/
var ResistorSeriesSpecs = []*ResistorSeries{
	{
		BaseSeries:    "ERJ-2RK",
		Footprint:     "footprints:R_0402_1005Metric",
		VoltageRating: "50V",
		CaseCodeIn:    "0402",
		CaseCodeMM:    "1005",
		PowerRating:   "0.1W",
		MaxResistance: 1_000_000,
		Packaging:     []string{"X"},
		E96Tolerance:  []ToleranceOption{{"F", "1%"}},
		E24Tolerance:  []ToleranceOption{{"J", "5%"}},
		Datasheet: "https://industrial.panasonic.com/cdbs/www-data/pdf/" +
			"RDA0000/AOA0000C304.pdf",
		Manufacturer:    "Panasonic",
		TrustedpartsURL: "https://www.trustedparts.com/en/search/",
	},
	{
		BaseSeries:    "ERJ-3EK",
		Footprint:     "footprints:R_0603_1608Metric",
		VoltageRating: "75V",
		CaseCodeIn:    "0603",
		CaseCodeMM:    "1608",
		PowerRating:   "0.1W",
		MaxResistance: 1_000_000,
		Packaging:     []string{"V"},
		E96Tolerance:  []ToleranceOption{{"F", "1%"}},
		E24Tolerance:  []ToleranceOption{{"J", "5%"}},
		Datasheet: "https://industrial.panasonic.com/cdbs/www-data/pdf/" +
			"RDA0000/AOA0000C304.pdf",
		Manufacturer:    "Panasonic",
		TrustedpartsURL: "https://www.trustedparts.com/en/search/",
	},
	{
		BaseSeries:              "ERJ-6EN",
		Footprint:               "footprints:R_0805_2012Metric",
		VoltageRating:           "150V",
		CaseCodeIn:              "0805",
		CaseCodeMM:              "2012",
		PowerRating:             "0.125W",
		MaxResistance:           2_200_000,
		Packaging:               []string{"V"},
		E96Tolerance:            []ToleranceOption{{"F", "1%"}},
		E24Tolerance:            []ToleranceOption{{"J", "5%"}},
		HighResistanceTolerance: []ToleranceOption{{"F", "1%"}},
		Datasheet: "https://industrial.panasonic.com/cdbs/www-data/pdf/" +
			"RDA0000/AOA0000C304.pdf",
		Manufacturer:    "Panasonic",
		TrustedpartsURL: "https://www.trustedparts.com/en/search/",
	},
	{
		BaseSeries:    "ERJ-P08",
		Footprint:     "footprints:R_1206_3216Metric",
		VoltageRating: "500V",
		CaseCodeIn:    "1206",
		CaseCodeMM:    "3216",
		PowerRating:   "0.66W",
		MaxResistance: 1_000_000,
		Packaging:     []string{"V"},
		E96Tolerance:  []ToleranceOption{{"F", "1%"}},
		E24Tolerance:  []ToleranceOption{{"F", "1%"}},
		Datasheet: "https://industrial.panasonic.com/cdbs/www-data/pdf/" +
			"RDO0000/AOA0000C331.pdf",
		Manufacturer:    "Panasonic",
		TrustedpartsURL: "https://www.trustedparts.com/en/search/",
	},
	{
		BaseSeries:    "ERJ-P06",
		Footprint:     "footprints:R_0805_2012Metric",
		VoltageRating: "400V",
		CaseCodeIn:    "0805",
		CaseCodeMM:    "2012",
		PowerRating:   "0.5W",
		MaxResistance: 1_000_000,
		Packaging:     []string{"V"},
		E96Tolerance:  []ToleranceOption{{"F", "1%"}},
		E24Tolerance:  []ToleranceOption{{"F", "1%"}},
		Datasheet: "https://industrial.panasonic.com/cdbs/www-data/pdf/" +
			"RDO0000/AOA0000C331.pdf",
		Manufacturer:    "Panasonic",
		TrustedpartsURL: "https://www.trustedparts.com/en/search/",
	},
	{
		BaseSeries:    "ERJ-P03",
		Footprint:     "footprints:R_0603_1608Metric",
		VoltageRating: "150V",
		CaseCodeIn:    "0603",
		CaseCodeMM:    "1608",
		PowerRating:   "0.25W",
		MaxResistance: 1_000_000,
		Packaging:     []string{"V"},
		E96Tolerance:  []ToleranceOption{{"F", "1%"}},
		E24Tolerance:  []ToleranceOption{{"F", "1%"}},
		Datasheet: "https://industrial.panasonic.com/cdbs/www-data/pdf/" +
			"RDO0000/AOA0000C331.pdf",
		Manufacturer:    "Panasonic",
		TrustedpartsURL: "https://www.trustedparts.com/en/search/",
	},
}

/*
	Murata GCM automotive X7R MLCC series. Characteristic thresholds are
	ordered largest first; the first threshold a value exceeds selects
	the code.
*/
var CapacitorSeriesSpecs = []*CapacitorSeries{
	{
		BaseSeries:     "GCM155",
		Manufacturer:   "Murata Electronics",
		Footprint:      "footprints:C_0402_1005Metric",
		VoltageRating:  "50V",
		CaseCodeIn:     "0402",
		CaseCodeMM:     "1005",
		Packaging:      []string{"D", "J"},
		Tolerance:      []ToleranceOption{{"K", "10%"}},
		Dielectric:     "X7R",
		DielectricCode: "R7",
		VoltageCode:    "1H",
		MinValue:       220e-12,
		MaxValue:       0.1e-6,
		Excluded:       []float64{27e-9, 39e-9, 56e-9, 82e-9},
		Characteristics: []CharacteristicThreshold{
			{22e-9, "E02"},
			{4.7e-9, "A55"},
			{0, "A37"},
		},
		DatasheetURL: "https://search.murata.co.jp/Ceramy/" +
			"image/img/A01X/G101/ENG/GCM155",
		TrustedpartsURL: "https://www.trustedparts.com/en/search",
	},
	{
		BaseSeries:     "GCM188",
		Manufacturer:   "Murata Electronics",
		Footprint:      "footprints:C_0603_1608Metric",
		VoltageRating:  "50V",
		CaseCodeIn:     "0603",
		CaseCodeMM:     "1608",
		Packaging:      []string{"D", "J"},
		Tolerance:      []ToleranceOption{{"K", "10%"}},
		Dielectric:     "X7R",
		DielectricCode: "R7",
		VoltageCode:    "1H",
		MinValue:       1e-9,
		MaxValue:       220e-9,
		Excluded:       []float64{120e-9, 180e-9},
		Characteristics: []CharacteristicThreshold{
			{100e-9, "A64"},
			{47e-9, "A57"},
			{22e-9, "A55"},
			{0, "A37"},
		},
		DatasheetURL: "https://search.murata.co.jp/Ceramy/" +
			"image/img/A01X/G101/ENG/GCM188",
		TrustedpartsURL: "https://www.trustedparts.com/en/search",
	},
	{
		BaseSeries:     "GCM216",
		Manufacturer:   "Murata Electronics",
		Footprint:      "footprints:C_0805_2012Metric",
		VoltageRating:  "50V",
		CaseCodeIn:     "0805",
		CaseCodeMM:     "2012",
		Packaging:      []string{"D", "J"},
		Tolerance:      []ToleranceOption{{"K", "10%"}},
		Dielectric:     "X7R",
		DielectricCode: "R7",
		VoltageCode:    "1H",
		MinValue:       1e-9,
		MaxValue:       22e-9,
		Characteristics: []CharacteristicThreshold{
			{22e-9, "A55"},
			{0, "A37"},
		},
		DatasheetURL: "https://search.murata.co.jp/Ceramy/" +
			"image/img/A01X/G101/ENG/GCM216",
		TrustedpartsURL: "https://www.trustedparts.com/en/search",
	},
	{
		BaseSeries:     "GCM31M",
		Manufacturer:   "Murata Electronics",
		Footprint:      "footprints:C_1206_3216Metric",
		VoltageRating:  "50V",
		CaseCodeIn:     "1206",
		CaseCodeMM:     "3216",
		Packaging:      []string{"K", "L"},
		Tolerance:      []ToleranceOption{{"K", "10%"}},
		Dielectric:     "X7R",
		DielectricCode: "R7",
		VoltageCode:    "1H",
		MinValue:       100e-9,
		MaxValue:       1e-6,
		Excluded:       []float64{180e-9, 560e-9},
		Characteristics: []CharacteristicThreshold{
			{560e-9, "A55"},
			{100e-9, "A37"},
			{0, "A37"},
		},
		DatasheetURL: "https://search.murata.co.jp/Ceramy/" +
			"image/img/A01X/G101/ENG/GCM31M",
		TrustedpartsURL: "https://www.trustedparts.com/en/search",
	},
	{
		BaseSeries:     "GCM31C",
		Manufacturer:   "Murata Electronics",
		Footprint:      "footprints:C_1206_3216Metric",
		VoltageRating:  "25V",
		CaseCodeIn:     "1206",
		CaseCodeMM:     "3216",
		Packaging:      []string{"K", "L"},
		Tolerance:      []ToleranceOption{{"K", "10%"}},
		Dielectric:     "X7R",
		DielectricCode: "R7",
		VoltageCode:    "1E",
		MinValue:       4.7e-6,
		MaxValue:       4.7e-6,
		Characteristics: []CharacteristicThreshold{
			{4.7e-6, "A55"},
			{0, "A55"},
		},
		DatasheetURL: "https://search.murata.co.jp/Ceramy/" +
			"image/img/A01X/G101/ENG/GCM31C",
		TrustedpartsURL: "https://www.trustedparts.com/en/search",
	},
}

func ResistorSeriesByName(name string) *ResistorSeries {
	for _, series := range ResistorSeriesSpecs {
		if series.BaseSeries == name {
			return series
		}
	}

	return nil
}

func CapacitorSeriesByName(name string) *CapacitorSeries {
	for _, series := range CapacitorSeriesSpecs {
		if series.BaseSeries == name {
			return series
		}
	}

	return nil
}
