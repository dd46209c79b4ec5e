package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/voltexlighting/lumenplan/pkg/pipeline"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleSection     = lipgloss.NewStyle().Bold(true).Foreground(colorGray)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(26)
	fmt.Println("  " + keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// printSection prints a section heading.
func printSection(title string) {
	fmt.Println(styleSection.Render(title))
}

func printNewline() {
	fmt.Println()
}

// =============================================================================
// Results Display
// =============================================================================

// printResult prints the full calculation result as labeled parameter/value
// rows, one section per concern.
func printResult(res *pipeline.Result) {
	fmt.Println(StyleTitle.Render("Calculation Results"))
	printNewline()

	printSection("Inputs")
	printKeyValue("Room (L x W x H)", fmt.Sprintf("%.2f x %.2f x %.2f m",
		res.Room.Length, res.Room.Width, res.Room.Height))
	printKeyValue("Working Plane Height", fmt.Sprintf("%.2f m", res.Room.WorkingPlaneHeight))
	if res.Room.SuspensionDistance > 0 {
		printKeyValue("Suspension Distance", fmt.Sprintf("%.2f m", res.Room.SuspensionDistance))
	}
	printKeyValue("Reflectances (C/W/F)", fmt.Sprintf("%.0f / %.0f / %.0f %%",
		res.Reflectances.Ceiling, res.Reflectances.Walls, res.Reflectances.Floor))
	printKeyValue("Required Illuminance", fmt.Sprintf("%.0f lux", res.Illuminance))
	printKeyValue("Maintenance Factor", fmt.Sprintf("%.2f", res.Maintenance))
	printKeyValue("Fixture", fmt.Sprintf("%s (%.0f lm, %.0f W)",
		res.FixtureName, res.LuminousFlux, res.Wattage))
	printNewline()

	printSection("Derived")
	printKeyValue("Mounting Height", fmt.Sprintf("%.2f m", res.MountingHeight))
	printKeyValue("Room Cavity Index", fmt.Sprintf("%.3f", res.CavityIndex))
	printKeyValue("Utilization Factor", fmt.Sprintf("%.3f", res.UtilizationFactor))
	printKeyValue("Required Fixtures", fmt.Sprintf("%d", res.RequiredFixtures))
	printKeyValue("SHR Limit", fmt.Sprintf("%.2f", res.SHRLimit))
	printNewline()

	printPlacement(res, "Even Layout", res.Even)
	printPlacement(res, "Odd Layout", res.Odd)

	if !res.HasLayout() {
		printWarning("No valid layout satisfies the spacing constraints.")
	}
}

// printPlacement prints one selected arrangement, or a dim placeholder when
// the parity has no qualifying candidate.
func printPlacement(res *pipeline.Result, title string, p *pipeline.Placement) {
	printSection(title)
	if p == nil {
		fmt.Println("  " + StyleDim.Render("no qualifying arrangement"))
		printNewline()
		return
	}

	printKeyValue("Arrangement", fmt.Sprintf("%d x %d (%d fixtures)",
		p.AlongLength, p.AcrossWidth, p.Fixtures))
	printKeyValue("Spacing (L x W)", fmt.Sprintf("%.2f x %.2f m", p.SpacingLength, p.SpacingWidth))
	printKeyValue("SHR (L / W)", formatSHRPair(p.SHRLength, p.SHRWidth))
	printKeyValue("Adjusted Illuminance", fmt.Sprintf("%.1f lux", p.AdjustedIlluminance))
	printKeyValue("Connected Load", fmt.Sprintf("%.0f W", res.TotalWattage(p)))
	printNewline()
}

func formatSHRPair(l, w float64) string {
	return formatSHR(l) + " / " + formatSHR(w)
}

func formatSHR(v float64) string {
	if math.IsInf(v, 1) {
		return "∞"
	}
	return fmt.Sprintf("%.2f", v)
}

// printCombinations prints reflectance combinations as compact C/W/F triples.
func printCombinations(labels []string) {
	fmt.Println("  " + StyleDim.Render(strings.Join(labels, "  ")))
}
