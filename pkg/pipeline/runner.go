package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/voltexlighting/lumenplan/pkg/grid"
	"github.com/voltexlighting/lumenplan/pkg/lumen"
)

// Runner executes calculations. It is stateless except for the logger, so a
// single Runner can serve concurrent calculations with different requests.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger discards all output.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{Logger: logger}
}

// Calculate runs the complete cavity index → utilization factor → fixture
// count → layout search pipeline.
//
// The context is consulted between stages; each stage itself is a bounded
// in-memory computation. Any returned error carries one of the structured
// codes from the errors package and aborts this calculation only.
func (r *Runner) Calculate(ctx context.Context, req Request) (*Result, error) {
	if err := req.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	k, err := req.Room.CavityIndex()
	if err != nil {
		return nil, fmt.Errorf("cavity index: %w", err)
	}
	r.Logger.Debug("computed room cavity index", "k", k, "mounting_height", req.Room.MountingHeight())

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	uf, err := req.Table.Interpolate(k, req.Reflectances)
	if err != nil {
		return nil, fmt.Errorf("utilization factor: %w", err)
	}
	r.Logger.Debug("interpolated utilization factor", "uf", uf,
		"ceiling", req.Reflectances.Ceiling, "walls", req.Reflectances.Walls, "floor", req.Reflectances.Floor)

	required, err := lumen.FixtureCount(req.Illuminance, req.Room.Length, req.Room.Width,
		req.Fixture.LuminousFlux, uf, req.MaintenanceFactor)
	if err != nil {
		return nil, fmt.Errorf("fixture count: %w", err)
	}
	r.Logger.Info("estimated fixture count", "required", required,
		"illuminance", req.Illuminance, "uf", uf, "mf", req.MaintenanceFactor)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	search := grid.Search(grid.Params{
		Required:       required,
		RoomLength:     req.Room.Length,
		RoomWidth:      req.Room.Width,
		MountingHeight: req.Room.MountingHeight(),
		SHRLimit:       req.SHRLimit(),
		MinSpacing:     req.MinSpacing,
	})
	r.Logger.Info("searched fixture arrangements",
		"even", describe(search.Even), "odd", describe(search.Odd))

	return assemble(req, k, uf, required, search), nil
}

// assemble packages the stage outputs into a Result.
func assemble(req Request, k, uf float64, required int, search grid.Result) *Result {
	return &Result{
		Room:         req.Room,
		Reflectances: req.Reflectances,
		Illuminance:  req.Illuminance,
		Maintenance:  req.MaintenanceFactor,
		FixtureName:  req.Fixture.Name,
		LuminousFlux: req.Fixture.LuminousFlux,
		Wattage:      req.Fixture.Wattage,
		NominalSHR:   req.Fixture.NominalSHR,
		SHRLimit:     req.SHRLimit(),
		MinSpacing:   req.MinSpacing,

		MountingHeight:    req.Room.MountingHeight(),
		CavityIndex:       k,
		UtilizationFactor: uf,
		RequiredFixtures:  required,

		Even: newPlacement(search.Even, req.Illuminance, required),
		Odd:  newPlacement(search.Odd, req.Illuminance, required),
	}
}

func describe(c *grid.Candidate) string {
	if c == nil {
		return "none"
	}
	return fmt.Sprintf("%dx%d", c.AlongLength, c.AcrossWidth)
}
