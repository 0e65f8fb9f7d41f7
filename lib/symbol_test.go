package lib

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func testRecord(name string) *ComponentRecord {
	return &ComponentRecord{
		SymbolName:    name,
		Reference:     "C",
		Value:         "0.1uF",
		Footprint:     "footprints:C_0402_1005Metric",
		Datasheet:     "https://example.com/datasheet.pdf",
		Description:   "CAP SMD 0.1uF X7R 10% 0402 50V",
		Manufacturer:  "Murata Electronics",
		MPN:           "GCM155R71H104KE02D",
		Tolerance:     "10%",
		VoltageRating: "50V",
	}
}

func TestRenderSymbolStructure(t *testing.T) {
	for _, family := range Families {
		text, err := RenderSymbol(family, testRecord("C_000001"))
		require.NoError(t, err, family.Name)

		require.True(t, balanced(text), "unbalanced output for %s", family.Name)
		require.Equal(t, 9, strings.Count(text, `(property "`), family.Name)
		require.Equal(t, 2, strings.Count(text, "(pin passive line"), family.Name)
		require.Contains(t, text, `(symbol "C_000001"`, family.Name)
		require.Contains(t, text, `(symbol "C_000001_0_1"`, family.Name)
		require.Contains(t, text, `(symbol "C_000001_1_1"`, family.Name)
		require.Contains(t, text, `(number "1"`, family.Name)
		require.Contains(t, text, `(number "2"`, family.Name)
		require.Contains(t, text, "(at 0 3.81 270)", family.Name)
		require.Contains(t, text, "(at 0 -3.81 90)", family.Name)
	}
}

func TestRenderSymbolValuePlacement(t *testing.T) {
	text, err := RenderSymbol(Capacitor, testRecord("C_000001"))
	require.NoError(t, err)

	require.Contains(t, text, `(property "Value" "0.1uF"`)
	require.Contains(t, text, "(at 2.54 -1.27 0)")
	require.Contains(t, text, `(property "Footprint" "footprints:C_0402_1005Metric"`)
}

func TestRenderSymbolHiddenProperties(t *testing.T) {
	text, err := RenderSymbol(Resistor, testRecord("R_000001"))
	require.NoError(t, err)

	require.Equal(t, 7, strings.Count(text, "(show_name)"))
	require.Equal(t, 7, strings.Count(text, "(hide yes)"))
}

func TestRenderSymbolEmptyFields(t *testing.T) {
	record := testRecord("C_000002")
	record.Description = ""

	text, err := RenderSymbol(Capacitor, record)
	require.NoError(t, err)

	/*
		the property set is fixed; empty values still render
	*/
	require.Contains(t, text, `(property "Description" ""`)
}

func TestRenderSymbolFamilyGeometry(t *testing.T) {
	capText, err := RenderSymbol(Capacitor, testRecord("C_000003"))
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(capText, "(polyline"))
	require.Contains(t, capText, "(width 0.508)")
	require.Contains(t, capText, "(length 2.794)")

	resText, err := RenderSymbol(Resistor, testRecord("R_000003"))
	require.NoError(t, err)
	require.Equal(t, 1, strings.Count(resText, "(rectangle"))
	require.Equal(t, 2, strings.Count(resText, "(polyline"))
	require.Contains(t, resText, "(length 1.27)")
}

func TestRenderLibraryHeaderOnly(t *testing.T) {
	text, err := RenderLibrary(Resistor, nil)
	require.NoError(t, err)

	require.True(t, balanced(text))
	require.Contains(t, text, "(kicad_symbol_lib")
	require.Contains(t, text, "(version 20231120)")
	require.Contains(t, text, `(generator "kicad_symbol_editor")`)
	require.Contains(t, text, `(generator_version "8.0")`)
	require.NotContains(t, text, `(symbol "`)
}

func TestRenderLibraryPreservesOrder(t *testing.T) {
	records := []*ComponentRecord{}
	for i := 0; i < 5; i++ {
		records = append(records, testRecord(fmt.Sprintf("C_%06d", i)))
	}

	text, err := RenderLibrary(Capacitor, records)
	require.NoError(t, err)

	last := -1
	for _, record := range records {
		at := strings.Index(text, fmt.Sprintf("(symbol %q", record.SymbolName))
		require.Greater(t, at, last, "block for %s out of order", record.SymbolName)
		last = at
	}
}

func TestRenderLibraryRejectsDuplicateNames(t *testing.T) {
	records := []*ComponentRecord{testRecord("C_000001"), testRecord("C_000001")}

	_, err := RenderLibrary(Capacitor, records)
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate symbol name")
}

func TestRenderLibraryDeterministic(t *testing.T) {
	records := []*ComponentRecord{testRecord("C_000001"), testRecord("C_000002")}

	first, err := RenderLibrary(Capacitor, records)
	require.NoError(t, err)
	second, err := RenderLibrary(Capacitor, records)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestRenderLibraryEscapesFieldValues(t *testing.T) {
	record := testRecord("C_000001")
	record.Description = `CAP "X7R" (automotive)`

	text, err := RenderLibrary(Capacitor, []*ComponentRecord{record})
	require.NoError(t, err)
	require.True(t, balanced(text))
	require.Contains(t, text, `\"X7R\"`)
}

func TestFamilyByName(t *testing.T) {
	family, err := FamilyByName("capacitor")
	require.NoError(t, err)
	require.Equal(t, Capacitor, family)

	_, err = FamilyByName("inductor")
	require.Error(t, err)
}
