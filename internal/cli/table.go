package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voltexlighting/lumenplan/pkg/photometry"
)

// tableCommand creates the table command for inspecting a CSV dataset.
func (c *CLI) tableCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "table [table.csv]",
		Short: "Inspect a utilization-factor table file",
		Long: `Inspect a utilization-factor table file.

Prints the fixture metadata, the covered room cavity index range, and the
reflectance combinations the table provides. Useful to verify a manufacturer
CSV before running a calculation against it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTable(args[0])
		},
	}
}

func (c *CLI) runTable(path string) error {
	dataset, err := photometry.LoadFile(path)
	if err != nil {
		return fmt.Errorf("load table %s: %w", path, err)
	}

	fixture := dataset.Fixture
	table := dataset.Table
	minK, maxK := table.KRange()

	fmt.Println(StyleTitle.Render("Utilization-Factor Table"))
	printNewline()

	printSection("Fixture")
	printKeyValue("Name", fixture.Name)
	printKeyValue("Luminous Flux", fmt.Sprintf("%.0f lm", fixture.LuminousFlux))
	printKeyValue("Wattage", fmt.Sprintf("%.0f W", fixture.Wattage))
	printKeyValue("Nominal SHR", fmt.Sprintf("%.2f", fixture.NominalSHR))
	printNewline()

	printSection("Table")
	printKeyValue("Cavity Index Range", fmt.Sprintf("%.2f – %.2f", minK, maxK))
	printKeyValue("Rows", fmt.Sprintf("%d", table.Rows()))
	printKeyValue("Combinations", fmt.Sprintf("%d", len(table.Columns())))
	printNewline()

	printSection("Reflectance Combinations (C/W/F %)")
	labels := make([]string, 0, len(table.Columns()))
	for _, col := range table.Columns() {
		labels = append(labels, fmt.Sprintf("%d/%d/%d", col.Combo.Ceiling, col.Combo.Walls, col.Combo.Floor))
	}
	printCombinations(labels)

	return nil
}
