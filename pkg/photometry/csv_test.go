package photometry

import (
	"strings"
	"testing"

	"github.com/voltexlighting/lumenplan/pkg/errors"
)

const sampleCSV = `Fixture Name,Voltex HB 150
Luminous Flux,16000
Wattage,150W
SHRNOM,1.2
Manufacturer,Voltex
Distribution,Wide beam
Revision,0.94
K,Rc50_Rw30_Rf10,Rc70_Rw50_Rf20
0.75,0.40,0.45
1.00,0.50,0.55
,,
2.00,0.65,0.70
n/a,0.99,0.99
5.00,0.75,0.80
`

func TestLoad(t *testing.T) {
	ds, err := Load(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	f := ds.Fixture
	if f.Name != "Voltex HB 150" {
		t.Errorf("Name = %q", f.Name)
	}
	if f.LuminousFlux != 16000 {
		t.Errorf("LuminousFlux = %g", f.LuminousFlux)
	}
	if f.Wattage != 150 {
		t.Errorf("Wattage = %g (trailing W should be stripped)", f.Wattage)
	}
	if f.NominalSHR != 1.2 {
		t.Errorf("NominalSHR = %g", f.NominalSHR)
	}
	if got := f.ModifiedSHR(1.5); got != 1.8 {
		t.Errorf("ModifiedSHR(1.5) = %g, want 1.8", got)
	}

	// Empty row and the non-numeric "n/a" key row are dropped.
	if ds.Table.Rows() != 4 {
		t.Errorf("Rows = %d, want 4", ds.Table.Rows())
	}
	minK, maxK := ds.Table.KRange()
	if minK != 0.75 || maxK != 5.0 {
		t.Errorf("KRange = [%g, %g], want [0.75, 5]", minK, maxK)
	}
	cols := ds.Table.Columns()
	if len(cols) != 2 {
		t.Fatalf("Columns = %d, want 2", len(cols))
	}
	if cols[0].Combo != (Combination{50, 30, 10}) || cols[1].Combo != (Combination{70, 50, 20}) {
		t.Errorf("column combos = %v, %v", cols[0].Combo, cols[1].Combo)
	}
}

func TestLoadIgnoresUntaggedColumns(t *testing.T) {
	csv := `Fixture Name,HB
Luminous Flux,10000
Wattage,100
SHRNOM,1.0
x,
y,
z,
K,Notes,Rc50_Rw30_Rf10,Rc30_Rw10_Rf0
1.0,freeform,0.5,0.3
2.0,text,0.6,0.4
`
	ds, err := Load(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(ds.Table.Columns()) != 2 {
		t.Errorf("Columns = %d, want 2 (Notes column ignored)", len(ds.Table.Columns()))
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		code errors.Code
	}{
		{
			name: "too short",
			csv:  "Fixture Name,HB\nLuminous Flux,10000\n",
			code: errors.ErrCodeMalformedTable,
		},
		{
			name: "missing metadata key",
			csv: `Fixture Name,HB
Luminous Flux,10000
Wattage,100
a,
b,
c,
d,
K,Rc50_Rw30_Rf10,Rc30_Rw10_Rf0
1.0,0.5,0.3
`,
			code: errors.ErrCodeMalformedTable,
		},
		{
			name: "non-numeric flux",
			csv: `Fixture Name,HB
Luminous Flux,lots
Wattage,100
SHRNOM,1.0
a,
b,
c,
K,Rc50_Rw30_Rf10,Rc30_Rw10_Rf0
1.0,0.5,0.3
`,
			code: errors.ErrCodeMalformedTable,
		},
		{
			name: "negative flux fails photometry validation",
			csv: `Fixture Name,HB
Luminous Flux,-5
Wattage,100
SHRNOM,1.0
a,
b,
c,
K,Rc50_Rw30_Rf10,Rc30_Rw10_Rf0
1.0,0.5,0.3
`,
			code: errors.ErrCodeInvalidPhotometry,
		},
		{
			name: "single combination column",
			csv: `Fixture Name,HB
Luminous Flux,10000
Wattage,100
SHRNOM,1.0
a,
b,
c,
K,Rc50_Rw30_Rf10
1.0,0.5
`,
			code: errors.ErrCodeMalformedTable,
		},
		{
			name: "all keys non-numeric",
			csv: `Fixture Name,HB
Luminous Flux,10000
Wattage,100
SHRNOM,1.0
a,
b,
c,
K,Rc50_Rw30_Rf10,Rc30_Rw10_Rf0
low,0.5,0.3
high,0.6,0.4
`,
			code: errors.ErrCodeMalformedTable,
		},
		{
			name: "non-numeric utilization value",
			csv: `Fixture Name,HB
Luminous Flux,10000
Wattage,100
SHRNOM,1.0
a,
b,
c,
K,Rc50_Rw30_Rf10,Rc30_Rw10_Rf0
1.0,oops,0.3
`,
			code: errors.ErrCodeMalformedTable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.csv))
			if !errors.Is(err, tt.code) {
				t.Errorf("Load error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("testdata/does-not-exist.csv")
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("want FILE_NOT_FOUND, got %v", err)
	}
}
