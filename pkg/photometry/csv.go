package photometry

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/voltexlighting/lumenplan/pkg/errors"
)

// metadataLines is the number of leading CSV records that form the fixture
// metadata block. The table header row follows immediately after.
const metadataLines = 7

// Metadata block keys recognized in the leading records.
const (
	keyFixtureName  = "Fixture Name"
	keyLuminousFlux = "Luminous Flux"
	keyWattage      = "Wattage"
	keySHRNom       = "SHRNOM"
)

// Dataset is the parsed content of a photometric data file: the fixture
// metadata block plus its utilization-factor table.
type Dataset struct {
	Fixture Fixture
	Table   *Table
}

// LoadFile reads and parses a photometric CSV file.
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "photometric data file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeMalformedTable, err, "open photometric data file %s", path)
	}
	defer f.Close()
	return Load(f)
}

// Load parses a photometric data stream. The expected layout is the
// manufacturer export format: a 7-record metadata block (Fixture Name,
// Luminous Flux, Wattage, SHRNOM among free-form lines), then a header row
// with the cavity-index column followed by Rc/Rw/Rf-tagged combination
// columns, then data rows.
//
// Cleaning rules: fully-empty rows are dropped, data rows whose cavity-index
// cell is non-numeric are dropped, duplicate cavity-index keys are dropped
// (first occurrence wins), and surrounding whitespace is trimmed everywhere.
func Load(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedTable, err, "reading CSV")
	}
	if len(records) <= metadataLines {
		return nil, errors.New(errors.ErrCodeMalformedTable,
			"file too short: need a %d-line metadata block plus a table, got %d lines", metadataLines, len(records))
	}

	fixture, err := parseMetadata(records[:metadataLines])
	if err != nil {
		return nil, err
	}

	table, err := parseTable(records[metadataLines:])
	if err != nil {
		return nil, err
	}

	return &Dataset{Fixture: fixture, Table: table}, nil
}

// parseMetadata extracts the fixture fields from the leading records.
// Unrecognized lines are ignored; all four known keys are required.
func parseMetadata(records [][]string) (Fixture, error) {
	var f Fixture
	var haveFlux, haveWattage, haveSHR bool

	for _, rec := range records {
		if len(rec) < 2 {
			continue
		}
		key := strings.TrimSpace(rec[0])
		value := strings.TrimSpace(rec[1])
		switch key {
		case keyFixtureName:
			f.Name = value
		case keyLuminousFlux:
			flux, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return f, errors.Wrap(errors.ErrCodeMalformedTable, err, "metadata %q", keyLuminousFlux)
			}
			f.LuminousFlux = flux
			haveFlux = true
		case keyWattage:
			w, err := strconv.ParseFloat(strings.TrimSuffix(value, "W"), 64)
			if err != nil {
				return f, errors.Wrap(errors.ErrCodeMalformedTable, err, "metadata %q", keyWattage)
			}
			f.Wattage = w
			haveWattage = true
		case keySHRNom:
			shr, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return f, errors.Wrap(errors.ErrCodeMalformedTable, err, "metadata %q", keySHRNom)
			}
			f.NominalSHR = shr
			haveSHR = true
		}
	}

	if f.Name == "" || !haveFlux || !haveWattage || !haveSHR {
		return f, errors.New(errors.ErrCodeMalformedTable,
			"metadata block missing required keys (need %q, %q, %q, %q)",
			keyFixtureName, keyLuminousFlux, keyWattage, keySHRNom)
	}
	if err := f.Validate(); err != nil {
		return f, err
	}
	return f, nil
}

// parseTable builds the utilization-factor table from the header row and the
// data rows that follow it.
func parseTable(records [][]string) (*Table, error) {
	header := records[0]
	if len(header) < 2 {
		return nil, errors.New(errors.ErrCodeMalformedTable,
			"table header needs a cavity-index column plus at least two data columns")
	}

	// Map tagged combination columns to their CSV position. Untagged columns
	// are ignored, matching the tolerance of the loader contract.
	type taggedColumn struct {
		csvIndex int
		label    string
		combo    Combination
	}
	var tagged []taggedColumn
	for i, label := range header[1:] {
		combo, ok := ParseCombination(label)
		if !ok {
			continue
		}
		tagged = append(tagged, taggedColumn{csvIndex: i + 1, label: strings.TrimSpace(label), combo: combo})
	}
	if len(tagged) < 2 {
		return nil, errors.New(errors.ErrCodeMalformedTable,
			"need at least two reflectance-combination columns, found %d", len(tagged))
	}

	var keys []float64
	values := make([][]float64, len(tagged))

	for _, rec := range records[1:] {
		if rowEmpty(rec) {
			continue
		}
		k, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		if err != nil {
			// Non-numeric cavity-index key: tolerated and discarded.
			continue
		}
		row := make([]float64, len(tagged))
		for i, col := range tagged {
			if col.csvIndex >= len(rec) {
				return nil, errors.New(errors.ErrCodeMalformedTable,
					"row with cavity index %g has no value for column %q", k, col.label)
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(rec[col.csvIndex]), 64)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeMalformedTable, err,
					"row with cavity index %g, column %q", k, col.label)
			}
			row[i] = v
		}
		keys = append(keys, k)
		for i, v := range row {
			values[i] = append(values[i], v)
		}
	}

	if len(keys) == 0 {
		return nil, errors.New(errors.ErrCodeMalformedTable,
			"no rows with numeric cavity-index keys remain after cleaning")
	}

	cols := make([]Column, len(tagged))
	for i, col := range tagged {
		cols[i] = Column{Label: col.label, Combo: col.combo, Values: values[i]}
	}
	return NewTable(keys, cols)
}

func rowEmpty(rec []string) bool {
	for _, cell := range rec {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
