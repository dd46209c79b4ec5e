package render

import (
	"reflect"
	"strings"
	"testing"

	"github.com/voltexlighting/lumenplan/pkg/errors"
	"github.com/voltexlighting/lumenplan/pkg/lumen"
	"github.com/voltexlighting/lumenplan/pkg/pipeline"
)

func sampleResult() *pipeline.Result {
	return &pipeline.Result{
		Room:              lumen.Room{Length: 20, Width: 10, Height: 4, WorkingPlaneHeight: 0.8},
		Reflectances:      lumen.Reflectances{Ceiling: 70, Walls: 50, Floor: 20},
		Illuminance:       300,
		Maintenance:       0.8,
		FixtureName:       "Voltex HB 150",
		LuminousFlux:      16000,
		Wattage:           150,
		NominalSHR:        1.2,
		SHRLimit:          1.8,
		MinSpacing:        3.0,
		MountingHeight:    3.2,
		CavityIndex:       2.083,
		UtilizationFactor: 0.75,
		RequiredFixtures:  7,
		Even: &pipeline.Placement{
			Candidate:           *warehouseCandidate(),
			AdjustedIlluminance: 342.86,
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"svg", FormatSVG},
		{"JSON", FormatJSON},
		{" yaml ", FormatYAML},
		{"yml", FormatYAML},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil {
			t.Errorf("ParseFormat(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if _, err := ParseFormat("pdf"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("expected INVALID_FORMAT for pdf, got %v", err)
	}
}

func TestParseFormats(t *testing.T) {
	got, err := ParseFormats("svg, json,svg,yml")
	if err != nil {
		t.Fatalf("ParseFormats: %v", err)
	}
	want := []Format{FormatSVG, FormatJSON, FormatYAML}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseFormats = %v, want %v", got, want)
	}

	if _, err := ParseFormats("json,tiff"); err == nil {
		t.Error("expected error for unknown format in list")
	}
}

func TestResultJSONRoundTrip(t *testing.T) {
	res := sampleResult()
	data, err := MarshalResultJSON(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	got, err := UnmarshalResultJSON(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.RequiredFixtures != 7 || got.FixtureName != "Voltex HB 150" {
		t.Errorf("round trip lost fields: %+v", got)
	}
	if got.Even == nil || got.Even.Fixtures != 8 {
		t.Errorf("round trip lost even placement: %+v", got.Even)
	}
	if got.Odd != nil {
		t.Error("odd placement should stay nil")
	}
}

func TestResultYAMLKeys(t *testing.T) {
	data, err := MarshalResultYAML(sampleResult())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out := string(data)
	for _, key := range []string{"required_fixtures: 7", "utilization_factor: 0.75", "fixture_name: Voltex HB 150", "adjusted_illuminance:"} {
		if !strings.Contains(out, key) {
			t.Errorf("YAML missing %q:\n%s", key, out)
		}
	}
	if strings.Contains(out, "odd:") {
		t.Error("omitted placement leaked into YAML")
	}
}

func TestUnmarshalResultJSONInvalid(t *testing.T) {
	if _, err := UnmarshalResultJSON([]byte("{not json")); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("expected INVALID_FORMAT, got %v", err)
	}
}
