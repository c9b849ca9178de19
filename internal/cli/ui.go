package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/phipebble/pkg/pipeline"
	"github.com/matzehuels/phipebble/pkg/sufficiency"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - commands
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	// StyleFailure for negative verdicts.
	StyleFailure = lipgloss.NewStyle().Foreground(colorRed)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)

	styleTableHeader = lipgloss.NewStyle().Bold(true).Foreground(colorGray).Padding(0, 1)
	styleTableCell   = lipgloss.NewStyle().Padding(0, 1)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

// =============================================================================
// Graph and Verdict Display
// =============================================================================

// printGraph prints the graph header line: name, size and cache status.
func printGraph(g pipeline.GraphInfo, cached bool) {
	status := iconFresh
	statusStyle := styleComputed
	if cached {
		status = iconCached
		statusStyle = styleCached
	}

	line := StyleTitle.Render(g.Name) + "  " +
		StyleDim.Render(fmt.Sprintf("%d vertices · %d edges · ", g.Vertices, g.Edges)) +
		statusStyle.Render(status)
	fmt.Println(line)
}

// printVerdict prints one pebble-count verdict with its failing pair.
func printVerdict(v sufficiency.Verdict) {
	if v.Sufficient {
		printSuccess("%s pebbles suffice", StyleNumber.Render(strconv.Itoa(v.Pebbles)))
		printDetail("%d (target, distribution) pairs checked", v.Pairs)
		return
	}

	printError("%s pebbles do not suffice", StyleNumber.Render(strconv.Itoa(v.Pebbles)))
	if f := v.Failure; f != nil {
		printKeyValue("target", strconv.Itoa(f.Target))
		printKeyValue("start", f.Distribution.String())
	}
	if v.Bounded() {
		printWarning("the failing search hit a bound; the verdict may be a false negative")
	}
}

// printSweep prints a sweep as a table followed by the estimate.
func printSweep(s sufficiency.SweepResult) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(StyleDim).
		Headers("PEBBLES", "VERDICT", "PAIRS", "FAILING TARGET", "FROM").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleTableHeader
			}
			return styleTableCell
		})

	for _, v := range s.Verdicts {
		t.Row(sweepRow(v)...)
	}
	fmt.Println(t.Render())

	if s.Found() {
		printSuccess("estimated phi-pebbling number: %s", StyleNumber.Render(strconv.Itoa(s.Estimate)))
	} else {
		printWarning("no sufficient pebble count in range")
	}
	if len(s.NonMonotonic) > 0 {
		printWarning("verdicts flip back to insufficient at %v", s.NonMonotonic)
	}
}

func sweepRow(v sufficiency.Verdict) []string {
	verdict := StyleSuccess.Render("sufficient")
	target, from := "", ""
	if !v.Sufficient {
		verdict = StyleFailure.Render("insufficient")
		if v.Bounded() {
			verdict += StyleWarning.Render(" (bounded)")
		}
		if f := v.Failure; f != nil {
			target = strconv.Itoa(f.Target)
			from = f.Distribution.String()
		}
	}
	return []string{strconv.Itoa(v.Pebbles), verdict, strconv.Itoa(v.Pairs), target, from}
}
