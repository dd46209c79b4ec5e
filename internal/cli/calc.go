package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/voltexlighting/lumenplan/pkg/lumen"
	"github.com/voltexlighting/lumenplan/pkg/photometry"
	"github.com/voltexlighting/lumenplan/pkg/pipeline"
	"github.com/voltexlighting/lumenplan/pkg/render"
)

// calcCommand creates the calc command for running a full calculation.
func (c *CLI) calcCommand() *cobra.Command {
	var (
		room       lumen.Room
		refl       lumen.Reflectances
		illum      float64
		mf         float64
		shrFactor  float64
		minSpacing float64
		output     string
		formatsStr string
	)

	cmd := &cobra.Command{
		Use:   "calc [table.csv]",
		Short: "Run a lumen-method calculation from a utilization-factor table",
		Long: `Run a lumen-method calculation from a utilization-factor table.

The calc command loads fixture metadata and the utilization-factor table
from a manufacturer CSV file, computes the required fixture count for the
room and target illuminance, and searches for the best even- and odd-width
ceiling arrangements.

Results are printed as a table on stdout. With --format, schematic or
machine-readable artifacts are additionally written next to the table file
or to the --output base path.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := pipeline.Request{
				Room:              room,
				Reflectances:      refl,
				Illuminance:       illum,
				MaintenanceFactor: mf,
				SHRFactor:         shrFactor,
				MinSpacing:        minSpacing,
			}
			return c.runCalc(cmd.Context(), args[0], req, output, formatsStr)
		},
	}

	cfg := c.Config
	cmd.Flags().Float64VarP(&room.Length, "length", "l", 0, "room length in meters (required)")
	cmd.Flags().Float64VarP(&room.Width, "width", "w", 0, "room width in meters (required)")
	cmd.Flags().Float64VarP(&room.Height, "height", "H", 0, "ceiling height in meters (required)")
	cmd.Flags().Float64Var(&room.WorkingPlaneHeight, "working-plane", 0.85, "working plane height in meters")
	cmd.Flags().Float64Var(&room.SuspensionDistance, "suspension", 0, "fixture suspension distance in meters")
	cmd.Flags().Float64VarP(&illum, "illuminance", "E", 0, "required maintained illuminance in lux (required)")
	cmd.Flags().Float64Var(&mf, "maintenance", cfg.MaintenanceFactor, "maintenance factor in (0, 1]")
	cmd.Flags().Float64Var(&refl.Ceiling, "ceiling", cfg.Reflectances.Ceiling, "ceiling reflectance in percent")
	cmd.Flags().Float64Var(&refl.Walls, "walls", cfg.Reflectances.Walls, "wall reflectance in percent")
	cmd.Flags().Float64Var(&refl.Floor, "floor", cfg.Reflectances.Floor, "floor reflectance in percent")
	cmd.Flags().Float64Var(&shrFactor, "shr-factor", cfg.SHRFactor, "multiplier applied to the nominal spacing-to-height ratio")
	cmd.Flags().Float64Var(&minSpacing, "min-spacing", cfg.MinSpacing, "minimum fixture spacing in meters")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output base path for artifacts (default: table path)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "artifact format(s): svg, json, yaml (comma-separated)")

	for _, flag := range []string{"length", "width", "height", "illuminance"} {
		_ = cmd.MarkFlagRequired(flag)
	}

	return cmd
}

// runCalc loads the dataset, executes the pipeline, prints the results, and
// writes any requested artifacts.
func (c *CLI) runCalc(ctx context.Context, tablePath string, req pipeline.Request, output, formatsStr string) error {
	formats, err := render.ParseFormats(formatsStr)
	if err != nil {
		return err
	}

	dataset, err := photometry.LoadFile(tablePath)
	if err != nil {
		return fmt.Errorf("load table %s: %w", tablePath, err)
	}
	req.Fixture = dataset.Fixture
	req.Table = dataset.Table

	prog := newProgress(c.Logger)
	res, err := c.newRunner().Calculate(ctx, req)
	if err != nil {
		return fmt.Errorf("calculate: %w", err)
	}
	prog.done(fmt.Sprintf("Calculated layout for %s", dataset.Fixture.Name))

	printResult(res)

	if len(formats) == 0 {
		return nil
	}
	base := output
	if base == "" {
		base = strings.TrimSuffix(tablePath, filepath.Ext(tablePath))
	}
	if err := writeArtifacts(res, base, formats); err != nil {
		return err
	}
	printSuccess("Wrote %s artifacts", formatList(formats))
	return nil
}

// writeArtifacts writes one file per requested format. SVG produces one file
// per selected parity since each schematic draws a single arrangement.
func writeArtifacts(res *pipeline.Result, base string, formats []render.Format) error {
	for _, f := range formats {
		switch f {
		case render.FormatSVG:
			if err := writeSchematics(res, base); err != nil {
				return err
			}
		case render.FormatJSON:
			data, err := render.MarshalResultJSON(res)
			if err != nil {
				return err
			}
			if err := writeFile(base+".json", data); err != nil {
				return err
			}
		case render.FormatYAML:
			data, err := render.MarshalResultYAML(res)
			if err != nil {
				return err
			}
			if err := writeFile(base+".yaml", data); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeSchematics(res *pipeline.Result, base string) error {
	for _, s := range []struct {
		suffix    string
		title     string
		placement *pipeline.Placement
	}{
		{"even", "Even Layout", res.Even},
		{"odd", "Odd Layout", res.Odd},
	} {
		plan := render.Plan{
			RoomLength: res.Room.Length,
			RoomWidth:  res.Room.Width,
		}
		title := s.title
		if s.placement != nil {
			candidate := s.placement.Candidate
			plan.Candidate = &candidate
			title = fmt.Sprintf("%s (%d fixtures)", s.title, candidate.Fixtures)
		}
		svg := render.RenderSVG(plan, render.WithTitle(title))
		if err := writeFile(fmt.Sprintf("%s-%s.svg", base, s.suffix), svg); err != nil {
			return err
		}
	}
	return nil
}

func formatList(formats []render.Format) string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	printFile(path)
	return nil
}
