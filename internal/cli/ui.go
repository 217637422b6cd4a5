package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/slicetree/pkg/floorplan"
	"github.com/matzehuels/slicetree/pkg/pipeline"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - swapped nodes
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
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)

	styleHeader  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleCell    = lipgloss.NewStyle().Padding(0, 1)
	stylePending = lipgloss.NewStyle().Foreground(colorYellow).Padding(0, 1)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconArrow   = "→"
	pending     = "pending"
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

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

// =============================================================================
// Stats Display
// =============================================================================

// printStats prints tree statistics on a single line.
func printStats(s pipeline.Stats) {
	parts := []string{
		fmt.Sprintf("%d leaves", s.Leaves),
		fmt.Sprintf("%d splits", s.Internal),
	}
	if s.Swaps > 0 {
		parts = append(parts, fmt.Sprintf("%d swaps", s.Swaps))
	}
	if s.Finalized {
		parts = append(parts, "finalized")
	} else {
		parts = append(parts, "mass "+pending)
	}

	line := "  "
	for i, part := range parts {
		if i > 0 {
			line += StyleDim.Render(" · ")
		}
		line += StyleDim.Render(part)
	}
	fmt.Println(line)
}

// =============================================================================
// Leaf Table
// =============================================================================

// leafRows returns one row per leaf: path, module, rectangle, weight and
// centroid.
func leafRows(root floorplan.Node) ([][]string, error) {
	var rows [][]string
	err := floorplan.Walk(root, func(n floorplan.Node, path string) error {
		l, ok := floorplan.AsLeaf(n)
		if !ok {
			return nil
		}
		r := l.Rect()
		centroid := pending
		if p, err := l.Centroid(); err == nil {
			centroid = p.String()
		}
		if path == "" {
			path = "root"
		}
		rows = append(rows, []string{
			path, l.Name(),
			num(r.X), num(r.Y), num(r.W), num(r.H),
			num(l.Weight()), centroid,
		})
		return nil
	})
	return rows, err
}

func num(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

// printLeafTable prints the placement of every leaf under root.
func printLeafTable(root floorplan.Node) error {
	rows, err := leafRows(root)
	if err != nil {
		return err
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Path", "Module", "X", "Y", "W", "H", "Weight", "Centroid").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader.Padding(0, 1)
			}
			if col == 7 && rows[row][col] == pending {
				return stylePending
			}
			return styleCell
		})
	fmt.Println(t)
	return nil
}
