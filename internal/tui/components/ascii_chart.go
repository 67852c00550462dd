package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/taxgo/regime-calculator/internal/tui/tuistyles"
)

// DataSeries represents a single line in a chart.
type DataSeries struct {
	Name   string
	Points []float64
	Color  lipgloss.Color
}

// ASCIIChart plots one or more series as a terminal line chart.
type ASCIIChart struct {
	Title       string
	Series      []*DataSeries
	Labels      []string // X-axis labels
	Width       int
	Height      int
	ShowLegend  bool
	XAxisLabel  string
	MarkerIndex int // point index for a vertical marker, -1 for none
	MarkerLabel string
}

// NewASCIIChart creates a new chart.
func NewASCIIChart(title string) *ASCIIChart {
	return &ASCIIChart{
		Title:       title,
		Width:       64,
		Height:      14,
		ShowLegend:  true,
		MarkerIndex: -1,
	}
}

// AddSeries adds a data series to the chart.
func (c *ASCIIChart) AddSeries(name string, points []float64, color lipgloss.Color) *ASCIIChart {
	c.Series = append(c.Series, &DataSeries{
		Name:   name,
		Points: points,
		Color:  color,
	})
	return c
}

// WithLabels sets the X-axis labels.
func (c *ASCIIChart) WithLabels(labels []string) *ASCIIChart {
	c.Labels = labels
	return c
}

// WithSize sets the chart dimensions.
func (c *ASCIIChart) WithSize(width, height int) *ASCIIChart {
	c.Width = width
	c.Height = height
	return c
}

// WithAxisLabel sets the X-axis caption.
func (c *ASCIIChart) WithAxisLabel(label string) *ASCIIChart {
	c.XAxisLabel = label
	return c
}

// WithMarker draws a vertical marker at the given point index.
func (c *ASCIIChart) WithMarker(index int, label string) *ASCIIChart {
	c.MarkerIndex = index
	c.MarkerLabel = label
	return c
}

// Render returns the styled chart.
func (c *ASCIIChart) Render() string {
	if len(c.Series) == 0 {
		return tuistyles.InfoStyle.Render("No data to display")
	}

	var content strings.Builder

	if c.Title != "" {
		titleStyle := lipgloss.NewStyle().
			Bold(true).
			Foreground(tuistyles.ColorPrimary)
		content.WriteString(titleStyle.Render(c.Title))
		content.WriteString("\n\n")
	}

	globalMin, globalMax := c.getGlobalMinMax()
	content.WriteString(c.renderGrid(globalMin, globalMax))

	if c.XAxisLabel != "" {
		content.WriteString("\n")
		labelStyle := lipgloss.NewStyle().
			Foreground(tuistyles.ColorMuted).
			Italic(true)
		content.WriteString(labelStyle.Render(c.XAxisLabel))
	}

	if c.MarkerIndex >= 0 && c.MarkerLabel != "" {
		content.WriteString("\n")
		markerStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorAccent)
		content.WriteString(markerStyle.Render("┊ " + c.MarkerLabel))
	}

	if c.ShowLegend && len(c.Series) > 1 {
		content.WriteString("\n\n")
		content.WriteString(c.renderLegend())
	}

	return content.String()
}

// getGlobalMinMax finds the value range across all series, padded 10%.
func (c *ASCIIChart) getGlobalMinMax() (float64, float64) {
	globalMin := math.Inf(1)
	globalMax := math.Inf(-1)

	for _, series := range c.Series {
		for _, point := range series.Points {
			if point < globalMin {
				globalMin = point
			}
			if point > globalMax {
				globalMax = point
			}
		}
	}

	padding := (globalMax - globalMin) * 0.1
	if padding == 0 {
		padding = 1
	}
	return globalMin - padding, globalMax + padding
}

// renderGrid renders the plot area with the Y-axis.
func (c *ASCIIChart) renderGrid(minVal, maxVal float64) string {
	yAxisWidth := 10
	chartWidth := c.Width - yAxisWidth
	if chartWidth < 10 {
		chartWidth = 10
	}

	grid := make([][]rune, c.Height)
	for i := range grid {
		grid[i] = make([]rune, chartWidth)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	pointCount := 0
	for _, series := range c.Series {
		if len(series.Points) > pointCount {
			pointCount = len(series.Points)
		}
	}

	// Vertical marker underneath the series
	if c.MarkerIndex >= 0 && pointCount > 1 {
		x := c.xPosition(c.MarkerIndex, pointCount, chartWidth)
		if x >= 0 && x < chartWidth {
			for y := 0; y < c.Height; y++ {
				grid[y][x] = '┊'
			}
		}
	}

	for seriesIdx, series := range c.Series {
		if len(series.Points) == 0 {
			continue
		}

		pointChar := c.getSeriesChar(seriesIdx)

		for i, point := range series.Points {
			x := c.xPosition(i, len(series.Points), chartWidth)
			y := c.yPosition(point, minVal, maxVal)

			if x >= 0 && x < chartWidth && y >= 0 && y < c.Height {
				grid[y][x] = pointChar
			}

			if i > 0 {
				prevX := c.xPosition(i-1, len(series.Points), chartWidth)
				prevY := c.yPosition(series.Points[i-1], minVal, maxVal)
				c.drawLine(grid, prevX, prevY, x, y, pointChar)
			}
		}
	}

	var output strings.Builder
	valueRange := maxVal - minVal

	for i, row := range grid {
		yValue := maxVal - (float64(i)/float64(c.Height-1))*valueRange
		yAxisStyle := lipgloss.NewStyle().
			Foreground(tuistyles.ColorMuted).
			Width(yAxisWidth).
			Align(lipgloss.Right)

		output.WriteString(yAxisStyle.Render(formatChartValue(yValue)))
		output.WriteString(" │ ")
		output.WriteString(string(row))
		output.WriteString("\n")
	}

	output.WriteString(strings.Repeat(" ", yAxisWidth))
	output.WriteString(" └")
	output.WriteString(strings.Repeat("─", chartWidth))
	output.WriteString("\n")

	if len(c.Labels) > 0 {
		output.WriteString(c.renderXAxisLabels(yAxisWidth, chartWidth))
	}

	return output.String()
}

// xPosition maps a point index onto a grid column.
func (c *ASCIIChart) xPosition(index, pointCount, chartWidth int) int {
	if pointCount <= 1 {
		return 0
	}
	return int(float64(index) / float64(pointCount-1) * float64(chartWidth-1))
}

// yPosition maps a value onto a grid row.
func (c *ASCIIChart) yPosition(value, minVal, maxVal float64) int {
	if maxVal == minVal {
		return c.Height - 1
	}
	return c.Height - 1 - int((value-minVal)/(maxVal-minVal)*float64(c.Height-1))
}

// getSeriesChar returns the plot character for a series.
func (c *ASCIIChart) getSeriesChar(index int) rune {
	chars := []rune{'●', '■', '▲', '♦'}
	return chars[index%len(chars)]
}

// drawLine connects two grid points using Bresenham's algorithm, never
// overwriting an already-plotted cell.
func (c *ASCIIChart) drawLine(grid [][]rune, x0, y0, x1, y1 int, char rune) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)

	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}

	err := dx - dy
	x, y := x0, y0

	for {
		if x >= 0 && x < len(grid[0]) && y >= 0 && y < len(grid) {
			if grid[y][x] == ' ' || grid[y][x] == '┊' {
				grid[y][x] = char
			}
		}

		if x == x1 && y == y1 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// renderXAxisLabels spreads up to five labels under the axis.
func (c *ASCIIChart) renderXAxisLabels(yAxisWidth, chartWidth int) string {
	maxLabels := 5
	step := len(c.Labels) / maxLabels
	if step == 0 {
		step = 1
	}

	labelStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	var output strings.Builder

	output.WriteString(strings.Repeat(" ", yAxisWidth+3))

	for i := 0; i < len(c.Labels); i += step {
		if i > 0 {
			spacing := chartWidth/maxLabels - len(c.Labels[i-step])
			if spacing > 0 {
				output.WriteString(strings.Repeat(" ", spacing))
			}
		}
		output.WriteString(labelStyle.Render(c.Labels[i]))
	}

	return output.String()
}

// renderLegend renders the series legend.
func (c *ASCIIChart) renderLegend() string {
	var items []string

	for i, series := range c.Series {
		symbol := lipgloss.NewStyle().Foreground(series.Color).Render(string(c.getSeriesChar(i)))
		name := lipgloss.NewStyle().Foreground(tuistyles.ColorForeground).Render(series.Name)
		items = append(items, fmt.Sprintf("%s %s", symbol, name))
	}

	legendStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	return legendStyle.Render("Legend: " + strings.Join(items, "  "))
}

// formatChartValue formats a rupee value for the Y-axis in lakh/crore
// shorthand.
func formatChartValue(value float64) string {
	abs := math.Abs(value)
	switch {
	case abs >= 10000000:
		return fmt.Sprintf("%.1fCr", value/10000000)
	case abs >= 100000:
		return fmt.Sprintf("%.1fL", value/100000)
	case abs >= 1000:
		return fmt.Sprintf("%.0fK", value/1000)
	default:
		return fmt.Sprintf("%.0f", value)
	}
}

// abs returns the absolute value of an integer.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
