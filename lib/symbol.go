package lib

import (
	"fmt"
)

/*
	One input row: the attributes of a single two-pin component. All
	fields are free-form text; identity is the symbol name.
*/
type ComponentRecord struct {
	SymbolName    string
	Reference     string
	Value         string
	Footprint     string
	Datasheet     string
	Description   string
	Manufacturer  string
	MPN           string
	Tolerance     string
	VoltageRating string
}

func (r *ComponentRecord) field(column string) string {
	switch column {
	case "Symbol Name":
		return r.SymbolName
	case "Reference":
		return r.Reference
	case "Value":
		return r.Value
	case "Footprint":
		return r.Footprint
	case "Datasheet":
		return r.Datasheet
	case "Description":
		return r.Description
	case "Manufacturer":
		return r.Manufacturer
	case "MPN":
		return r.MPN
	case "Tolerance":
		return r.Tolerance
	case "Voltage Rating":
		return r.VoltageRating
	}

	return ""
}

/*
	Placement and visibility of one symbol property. Hidden properties
	carry (show_name) and (hide yes); Reference and Value stay visible.
*/
type PropertySpec struct {
	Column   string
	X, Y     float64
	FontSize float64
	Hidden   bool
}

type Primitive interface {
	sexp() Sexp
}

type Polyline struct {
	Points [][2]float64
	Width  float64
}

type Rectangle struct {
	Start [2]float64
	End   [2]float64
	Width float64
}

/*
	A component family: the fixed geometry, pin layout, and property
	placement shared by every symbol of that family. Adding a property
	or reshaping the body is a change here, not in the renderer.
*/
type Family struct {
	Name       string
	InputFile  string
	OutputFile string
	PinLength  float64
	Properties []PropertySpec
	Primitives []Primitive
}

func passiveProperties() []PropertySpec {
	return []PropertySpec{
		{Column: "Reference", X: 2.54, Y: 1.27, FontSize: 1.27},
		{Column: "Value", X: 2.54, Y: -1.27, FontSize: 1.27},
		{Column: "Datasheet", X: 2.54, Y: -3.81, FontSize: 1.27, Hidden: true},
		{Column: "Description", X: 2.54, Y: -6.35, FontSize: 1.27, Hidden: true},
		{Column: "Footprint", X: 2.54, Y: -8.89, FontSize: 1.27, Hidden: true},
		{Column: "Manufacturer", X: 2.54, Y: -11.43, FontSize: 1.27, Hidden: true},
		{Column: "MPN", X: 2.54, Y: -13.97, FontSize: 1.27, Hidden: true},
		{Column: "Tolerance", X: 2.54, Y: -16.51, FontSize: 1.27, Hidden: true},
		{Column: "Voltage Rating", X: 2.54, Y: -19.05, FontSize: 1.27, Hidden: true},
	}
}

var Resistor = &Family{
	Name:       "resistor",
	InputFile:  "resistor.csv",
	OutputFile: "RESISTORS_DATA_BASE.kicad_sym",
	PinLength:  1.27,
	Properties: passiveProperties(),
	Primitives: []Primitive{
		/*
			IEC body outline plus the stubs joining it to the pins
		*/
		&Rectangle{Start: [2]float64{-1.016, 2.286}, End: [2]float64{1.016, -2.286}},
		&Polyline{Points: [][2]float64{{0, 2.286}, {0, 2.54}}},
		&Polyline{Points: [][2]float64{{0, -2.286}, {0, -2.54}}},
	},
}

var Capacitor = &Family{
	Name:       "capacitor",
	InputFile:  "capacitor.csv",
	OutputFile: "CAPACITORS_DATA_BASE.kicad_sym",
	PinLength:  2.794,
	Properties: passiveProperties(),
	Primitives: []Primitive{
		/*
			the two plates
		*/
		&Polyline{Points: [][2]float64{{-2.032, -0.762}, {2.032, -0.762}}, Width: 0.508},
		&Polyline{Points: [][2]float64{{-2.032, 0.762}, {2.032, 0.762}}, Width: 0.508},
	},
}

var Families = []*Family{Resistor, Capacitor}

func FamilyByName(name string) (*Family, error) {
	for _, family := range Families {
		if family.Name == name {
			return family, nil
		}
	}

	return nil, fmt.Errorf("unknown component family: %s", name)
}

func stroke(width float64) List {
	return List{Atom("stroke"),
		List{Atom("width"), Num(width)},
		List{Atom("type"), Atom("default")},
	}
}

func fillNone() List {
	return List{Atom("fill"), List{Atom("type"), Atom("none")}}
}

func (p *Polyline) sexp() Sexp {
	pts := List{Atom("pts")}
	for _, pt := range p.Points {
		pts = append(pts, List{Atom("xy"), Num(pt[0]), Num(pt[1])})
	}

	return List{Atom("polyline"), pts, stroke(p.Width), fillNone()}
}

func (r *Rectangle) sexp() Sexp {
	return List{Atom("rectangle"),
		List{Atom("start"), Num(r.Start[0]), Num(r.Start[1])},
		List{Atom("end"), Num(r.End[0]), Num(r.End[1])},
		stroke(r.Width),
		fillNone(),
	}
}

func fontEffects(size float64) List {
	return List{Atom("effects"),
		List{Atom("font"), List{Atom("size"), Num(size), Num(size)}},
	}
}

func propertySexp(spec PropertySpec, value string) List {
	effects := List{Atom("effects"),
		List{Atom("font"), List{Atom("size"), Num(spec.FontSize), Num(spec.FontSize)}},
		List{Atom("justify"), Atom("left")},
	}
	if spec.Hidden {
		effects = append(effects, List{Atom("hide"), Atom("yes")})
	}

	prop := List{Atom("property"), Quoted(spec.Column), Quoted(value),
		List{Atom("at"), Num(spec.X), Num(spec.Y), Atom("0")},
	}
	if spec.Hidden {
		prop = append(prop, List{Atom("show_name")})
	}

	return append(prop, effects)
}

func pinSexp(y float64, angle int, number string, length float64) List {
	return List{Atom("pin"), Atom("passive"), Atom("line"),
		List{Atom("at"), Atom("0"), Num(y), Int(angle)},
		List{Atom("length"), Num(length)},
		List{Atom("name"), Quoted("~"), fontEffects(1.27)},
		List{Atom("number"), Quoted(number), fontEffects(1.27)},
	}
}

func symbolSexp(family *Family, record *ComponentRecord) List {
	sym := List{Atom("symbol"), Quoted(record.SymbolName),
		List{Atom("pin_numbers"), Atom("hide")},
		List{Atom("pin_names"), List{Atom("offset"), Num(0.254)}},
		List{Atom("exclude_from_sim"), Atom("no")},
		List{Atom("in_bom"), Atom("yes")},
		List{Atom("on_board"), Atom("yes")},
	}

	for _, spec := range family.Properties {
		sym = append(sym, propertySexp(spec, record.field(spec.Column)))
	}

	drawing := List{Atom("symbol"), Quoted(record.SymbolName + "_0_1")}
	for _, primitive := range family.Primitives {
		drawing = append(drawing, primitive.sexp())
	}
	sym = append(sym, drawing)

	sym = append(sym, List{Atom("symbol"), Quoted(record.SymbolName + "_1_1"),
		pinSexp(3.81, 270, "1", family.PinLength),
		pinSexp(-3.81, 90, "2", family.PinLength),
	})

	return sym
}

/*
	Render one symbol block. Pure: same record and family, same text.
*/
func RenderSymbol(family *Family, record *ComponentRecord) (string, error) {
	return Render(symbolSexp(family, record))
}

/*
	Render a complete symbol library: fixed header, then one block per
	record in input order. Duplicate symbol names collide inside a
	library and most EDA tools reject the file, so they are an error
	here rather than in the schematic editor later.
*/
func RenderLibrary(family *Family, records []*ComponentRecord) (string, error) {
	library := List{Atom("kicad_symbol_lib"),
		List{Atom("version"), Atom("20231120")},
		List{Atom("generator"), Quoted("kicad_symbol_editor")},
		List{Atom("generator_version"), Quoted("8.0")},
	}

	seen := make(map[string]bool)
	for _, record := range records {
		if seen[record.SymbolName] {
			return "", fmt.Errorf("duplicate symbol name: %s", record.SymbolName)
		}
		seen[record.SymbolName] = true

		library = append(library, symbolSexp(family, record))
	}

	return Render(library)
}
