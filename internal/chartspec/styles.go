package chartspec

import "strings"

const (
	bullColor = "#14b143"
	bearColor = "#ef232a"

	bullVolumeColor = "rgba(20, 177, 67, 0.3)"
	bearVolumeColor = "rgba(239, 35, 42, 0.3)"
)

// Round-robin palette keyed by indicator insertion order, not by field, so
// every field of one indicator shares a base hue.
var seriesPalette = []string{
	"#1f77b4", // blue
	"#ff7f0e", // orange
	"#2ca02c", // green
	"#d62728", // red
	"#9467bd", // purple
	"#8c564b", // brown
	"#e377c2", // pink
	"#7f7f7f", // gray
	"#bcbd22", // yellow-green
	"#17becf", // cyan
}

// Band indicators get fixed per-field colors instead of the palette.
var bandColors = map[string]map[string]string{
	"bollinger_band": {
		"upper_band":  "#2196F3",
		"middle_band": "#FFC107",
		"lower_band":  "#4CAF50",
	},
	"donchian_channel": {
		"upper_band":  "#E91E63",
		"middle_band": "#9C27B0",
		"lower_band":  "#673AB7",
	},
	"keltner_channel": {
		"upper_band":  "#FF5722",
		"middle_band": "#795548",
		"lower_band":  "#607D8B",
	},
}

func isBandIndicator(id string) bool {
	_, ok := bandColors[id]
	return ok
}

func isBandField(field string) bool {
	return strings.Contains(field, "upper_band") ||
		strings.Contains(field, "middle_band") ||
		strings.Contains(field, "lower_band")
}

// referenceLines returns the fixed guide values drawn in a below pane for
// indicators with a known convention.
func referenceLines(indicatorID string) []MarkLine {
	id := strings.ToLower(indicatorID)
	switch {
	case strings.Contains(id, "stochastic"):
		return []MarkLine{{Value: 80}, {Value: 20}}
	case strings.Contains(id, "rsi"):
		return []MarkLine{{Value: 70}, {Value: 50}, {Value: 30}}
	case strings.Contains(id, "macd"), strings.Contains(id, "histogram"):
		return []MarkLine{{Value: 0}}
	}
	return nil
}

// histogramField reports whether the field renders as bars around zero
// rather than a line.
func histogramField(indicatorID, field string) bool {
	return strings.Contains(field, "histogram") ||
		(strings.Contains(strings.ToLower(indicatorID), "macd") && field == "histogram")
}

type themeColors struct {
	text              string
	splitLine         string
	tooltipBackground string
	tooltipBorder     string
}

func colorsFor(dark bool) themeColors {
	if dark {
		return themeColors{
			text:              "#ddd",
			splitLine:         "#333",
			tooltipBackground: "rgba(50,50,50,0.7)",
			tooltipBorder:     "#555",
		}
	}
	return themeColors{
		text:              "#333",
		splitLine:         "#eee",
		tooltipBackground: "rgba(255,255,255,0.7)",
		tooltipBorder:     "#ddd",
	}
}
