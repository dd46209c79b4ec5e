package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/voltexlighting/lumenplan/pkg/lumen"
	"github.com/voltexlighting/lumenplan/pkg/pipeline"
)

func newTestCLI() *CLI {
	return &CLI{
		Logger: newLogger(io.Discard, LogInfo),
		Config: DefaultConfig(),
	}
}

func writeTestTable(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hb150.csv")
	if err := os.WriteFile(path, []byte(serveTestCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunCalcWritesArtifacts(t *testing.T) {
	c := newTestCLI()
	tablePath := writeTestTable(t)
	base := filepath.Join(t.TempDir(), "out")

	req := pipeline.Request{
		Room:         lumen.Room{Length: 20, Width: 10, Height: 4, WorkingPlaneHeight: 0.8},
		Reflectances: lumen.Reflectances{Ceiling: 50, Walls: 30, Floor: 10},
		Illuminance:  300,
	}
	if err := c.runCalc(context.Background(), tablePath, req, base, "svg,json,yaml"); err != nil {
		t.Fatalf("runCalc: %v", err)
	}

	for _, name := range []string{"out-even.svg", "out-odd.svg", "out.json", "out.yaml"} {
		path := filepath.Join(filepath.Dir(base), name)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected artifact %s: %v", name, err)
		}
	}

	data, err := os.ReadFile(base + ".json")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"required_fixtures": 7`) {
		t.Errorf("JSON artifact missing fixture count:\n%s", data)
	}
}

func TestRunCalcDefaultsBaseToTablePath(t *testing.T) {
	c := newTestCLI()
	tablePath := writeTestTable(t)

	req := pipeline.Request{
		Room:         lumen.Room{Length: 20, Width: 10, Height: 4, WorkingPlaneHeight: 0.8},
		Reflectances: lumen.Reflectances{Ceiling: 50, Walls: 30, Floor: 10},
		Illuminance:  300,
	}
	if err := c.runCalc(context.Background(), tablePath, req, "", "json"); err != nil {
		t.Fatalf("runCalc: %v", err)
	}

	want := strings.TrimSuffix(tablePath, ".csv") + ".json"
	if _, err := os.Stat(want); err != nil {
		t.Errorf("expected artifact next to table: %v", err)
	}
}

func TestRunCalcMissingTable(t *testing.T) {
	c := newTestCLI()
	req := pipeline.Request{
		Room:         lumen.Room{Length: 20, Width: 10, Height: 4, WorkingPlaneHeight: 0.8},
		Reflectances: lumen.Reflectances{Ceiling: 50, Walls: 30, Floor: 10},
		Illuminance:  300,
	}
	err := c.runCalc(context.Background(), filepath.Join(t.TempDir(), "nope.csv"), req, "", "")
	if err == nil {
		t.Fatal("expected error for missing table file")
	}
}

func TestRunCalcUnknownFormat(t *testing.T) {
	c := newTestCLI()
	tablePath := writeTestTable(t)
	req := pipeline.Request{
		Room:         lumen.Room{Length: 20, Width: 10, Height: 4, WorkingPlaneHeight: 0.8},
		Reflectances: lumen.Reflectances{Ceiling: 50, Walls: 30, Floor: 10},
		Illuminance:  300,
	}
	if err := c.runCalc(context.Background(), tablePath, req, "", "pdf"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newTestCLI().RootCommand()

	want := map[string]bool{"calc": false, "table": false, "serve": false, "completion": false}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}
