package lib

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatResistance(t *testing.T) {
	cases := []struct {
		ohms float64
		want string
	}{
		{10, "10 Ω"},
		{97.6, "97.6 Ω"},
		{976, "976 Ω"},
		{10_000, "10 kΩ"},
		{97_600, "97.6 kΩ"},
		{1_000_000, "1 MΩ"},
		{2_200_000, "2.2 MΩ"},
	}

	for _, c := range cases {
		require.Equal(t, c.want, FormatResistance(c.ohms))
	}
}

func TestResistanceCode(t *testing.T) {
	cases := []struct {
		ohms float64
		want string
	}{
		{10, "10R0"},
		{97.6, "97R6"},
		{100, "1000"},
		{102, "1020"},
		{976, "9760"},
		{1_000, "1001"},
		{10_000, "1002"},
		{97_600, "9762"},
		{100_000, "1003"},
		{1_000_000, "1004"},
	}

	for _, c := range cases {
		code, err := ResistanceCode(c.ohms, 2_200_000)
		require.NoError(t, err)
		require.Equal(t, c.want, code, "resistance %v", c.ohms)
	}
}

func TestResistanceCodeOutOfRange(t *testing.T) {
	_, err := ResistanceCode(1, 1_000_000)
	require.Error(t, err)

	_, err = ResistanceCode(2_000_000, 1_000_000)
	require.Error(t, err)
}

func TestFormatCapacitance(t *testing.T) {
	cases := []struct {
		farads float64
		want   string
	}{
		{220e-12, "220 pF"},
		{1e-9, "1 nF"},
		{4.7e-9, "4.7 nF"},
		{100e-9, "100 nF"},
		{1e-6, "1 µF"},
		{4.7e-6, "4.7 µF"},
	}

	for _, c := range cases {
		require.Equal(t, c.want, FormatCapacitance(c.farads))
	}
}

func TestCapacitanceCode(t *testing.T) {
	cases := []struct {
		farads float64
		want   string
	}{
		{8.2e-12, "8R2"},
		{220e-12, "221"},
		{470e-12, "471"},
		{1e-9, "102"},
		{4.7e-9, "472"},
		{100e-9, "104"},
		{1e-6, "105"},
		{4.7e-6, "475"},
	}

	for _, c := range cases {
		require.Equal(t, c.want, CapacitanceCode(c.farads), "capacitance %v", c.farads)
	}
}

func TestExpandResistorSeries(t *testing.T) {
	series := ResistorSeriesByName("ERJ-2RK")
	require.NotNil(t, series)

	parts, err := series.Expand()
	require.NoError(t, err)
	require.NotEmpty(t, parts)

	/*
		first part: lowest E96 value, 1% tolerance, X packaging
	*/
	first := parts[0]
	require.Equal(t, "ERJ-2RKF10R0X", first.MPN)
	require.Equal(t, "R_ERJ-2RKF10R0X", first.SymbolName)
	require.Equal(t, "R", first.Reference)
	require.Equal(t, "10 Ω", first.Value)
	require.Equal(t, "RES SMD 10 Ω 1% 0402 50V", first.Description)
	require.Equal(t, "footprints:R_0402_1005Metric", first.Footprint)
	require.Equal(t, "https://www.trustedparts.com/en/search/ERJ-2RKF10R0X", first.Trustedparts)

	seen := make(map[string]bool)
	for _, part := range parts {
		require.False(t, seen[part.MPN], "duplicate MPN %s", part.MPN)
		seen[part.MPN] = true
		require.True(t, strings.HasPrefix(part.MPN, "ERJ-2RK"))
	}
}

func TestExpandResistorSeriesDeduplicates(t *testing.T) {
	/*
		ERJ-P08 offers 1% on both E96 and E24, so shared values like
		10.0 would mint the same MPN from both lists
	*/
	series := ResistorSeriesByName("ERJ-P08")
	require.NotNil(t, series)

	parts, err := series.Expand()
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, part := range parts {
		require.False(t, seen[part.MPN], "duplicate MPN %s", part.MPN)
		seen[part.MPN] = true
	}
}

func TestExpandHighResistanceTolerance(t *testing.T) {
	series := ResistorSeriesByName("ERJ-6EN")
	require.NotNil(t, series)

	parts, err := series.Expand()
	require.NoError(t, err)

	for _, part := range parts {
		if part.Value == "2.2 MΩ" {
			require.Equal(t, "1%", part.Tolerance,
				"values above 1MΩ only ship in 1%%")
		}
	}
}

func TestExpandCapacitorSeries(t *testing.T) {
	series := CapacitorSeriesByName("GCM155")
	require.NotNil(t, series)

	parts, err := series.Expand()
	require.NoError(t, err)
	require.NotEmpty(t, parts)

	first := parts[0]
	require.Equal(t, "GCM155R71H221KA37D", first.MPN)
	require.Equal(t, "C_GCM155R71H221KA37D", first.SymbolName)
	require.Equal(t, "C", first.Reference)
	require.Equal(t, "220 pF", first.Value)
	require.Equal(t, "CAP SMD 220 pF X7R 10% 0402 50V", first.Description)
	require.Equal(t,
		"https://search.murata.co.jp/Ceramy/image/img/A01X/G101/ENG/GCM155R71H221KA37-01.pdf",
		first.Datasheet)

	/*
		excluded values must not expand
	*/
	for _, part := range parts {
		require.NotEqual(t, "27 nF", part.Value)
		require.NotEqual(t, "82 nF", part.Value)
	}
}

func TestExpandCapacitorCharacteristicCodes(t *testing.T) {
	series := CapacitorSeriesByName("GCM155")
	require.NotNil(t, series)

	require.Equal(t, "A37", series.characteristicCode(220e-12))
	require.Equal(t, "A55", series.characteristicCode(10e-9))
	require.Equal(t, "E02", series.characteristicCode(100e-9))
}

func TestE12ValuesNormalized(t *testing.T) {
	values := e12Values(220e-12, 0.1e-6, []float64{27e-9})

	require.Contains(t, values, 220e-12)
	require.Contains(t, values, 1e-7)
	require.NotContains(t, values, 2.7e-8)
	for i := 1; i < len(values); i++ {
		require.Greater(t, values[i], values[i-1], "values must ascend")
	}
}

func TestRecordsConversion(t *testing.T) {
	series := CapacitorSeriesByName("GCM216")
	require.NotNil(t, series)

	parts, err := series.Expand()
	require.NoError(t, err)

	records := Records(parts)
	require.Equal(t, len(parts), len(records))
	require.Equal(t, parts[0].SymbolName, records[0].SymbolName)

	/*
		every expansion renders into one library without collisions
	*/
	text, err := RenderLibrary(Capacitor, records)
	require.NoError(t, err)
	require.True(t, balanced(text))
}
