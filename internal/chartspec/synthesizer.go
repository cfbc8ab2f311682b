package chartspec

import (
	"math"
	"strconv"

	"chart-composer/internal/domain"
)

const (
	defaultTitle     = "Price"
	defaultZoomStart = 60.0
	defaultZoomEnd   = 100.0

	pricePaddingRatio = 0.005
	belowPaddingRatio = 0.05
	volumeAxisStretch = 5.0
)

// activeResult pairs a normalized result with its catalog-resolved
// placement and the surfaced field list.
type activeResult struct {
	result    domain.IndicatorResult
	placement domain.Placement
	label     string
	fields    []string
	color     string
}

// Synthesize derives the full chart option from the bar sequence, the
// active indicator results and the view snapshot. Pure: no I/O, inputs are
// never mutated, identical inputs produce a structurally identical spec.
//
// Placement comes from the catalog descriptor when one exists; a result's
// self-reported placement only applies for indicators the catalog does not
// know.
func Synthesize(bars []domain.Bar, results []domain.IndicatorResult, catalog domain.Catalog, view domain.ViewSnapshot) ChartSpec {
	if len(bars) == 0 {
		return ChartSpec{Replace: true, Empty: true}
	}

	title := view.Title
	if title == "" {
		title = defaultTitle
	}
	tc := colorsFor(view.Theme == domain.ThemeDark)

	active := collectActive(results, catalog, view)

	var below []activeResult
	for _, ar := range active {
		if ar.placement == domain.PlacementBelow && len(ar.fields) > 0 {
			below = append(below, ar)
		}
	}

	belowIDs := make([]string, len(below))
	for i, ar := range below {
		belowIDs[i] = ar.result.ID
	}
	layout := ComputeLayout(belowIDs, view.ManualPaneHeights)

	spec := ChartSpec{
		Replace: true,
		Title:   TitleSpec{Text: title, Left: "center", TextColor: tc.text},
		Dataset: DatasetSpec{Source: buildRows(bars, active)},
	}

	spec.Grids = buildGrids(layout)
	spec.XAxes = buildXAxes(len(below))
	spec.YAxes = buildYAxes(below)
	spec.DataZooms = buildDataZooms(view.Zoom, len(spec.XAxes))
	spec.Series = buildSeries(title, bars, active, below, view)
	spec.Legend = buildLegend(title, active, view.ShowVolume, tc)
	spec.Tooltip = buildTooltip(active, view.ShowVolume, tc)

	return spec
}

func collectActive(results []domain.IndicatorResult, catalog domain.Catalog, view domain.ViewSnapshot) []activeResult {
	byID := make(map[string]domain.IndicatorResult, len(results))
	for _, r := range results {
		byID[r.ID] = r
	}

	var active []activeResult
	colorIndex := 0
	for _, sel := range view.Selected {
		if !sel.Enabled {
			continue
		}
		res, ok := byID[sel.ID]
		if !ok {
			continue
		}

		placement := res.Placement
		if desc, ok := catalog[sel.ID]; ok {
			placement = desc.Placement
		}

		label := sel.DisplayName
		if label == "" {
			label = sel.ID
		}

		active = append(active, activeResult{
			result:    res,
			placement: placement,
			label:     label,
			fields:    res.FieldsWithData(),
			color:     seriesPalette[colorIndex%len(seriesPalette)],
		})
		colorIndex++
	}
	return active
}

// buildRows produces the data table: one row per bar, indicator columns
// only for surfaced fields, NaN as null. Field arrays are bar-aligned at
// calculation time, but bars are refetched on every build and can have
// grown since; positions past a series end render as null.
func buildRows(bars []domain.Bar, active []activeResult) []map[string]any {
	rows := make([]map[string]any, len(bars))
	for i, bar := range bars {
		row := map[string]any{
			"time":   bar.Label(),
			"open":   bar.Open,
			"close":  bar.Close,
			"low":    bar.Low,
			"high":   bar.High,
			"volume": bar.Volume,
		}
		for _, ar := range active {
			for _, field := range ar.fields {
				col := domain.SeriesColumn(ar.result.ID, field)
				series := ar.result.Series[field]
				if i >= len(series) {
					row[col] = nil
					continue
				}
				v := series[i]
				if math.IsNaN(v) || math.IsInf(v, 0) {
					row[col] = nil
				} else {
					row[col] = v
				}
			}
		}
		rows[i] = row
	}
	return rows
}

func buildGrids(layout PaneLayout) []GridSpec {
	grids := []GridSpec{{
		Left:         "0%",
		Right:        "2%",
		Top:          pct(layout.PrimaryTop),
		Height:       pct(layout.PrimaryHeight),
		ContainLabel: true,
	}}
	for _, pane := range layout.Below {
		grids = append(grids, GridSpec{
			Left:         "0%",
			Right:        "2%",
			Top:          pct(pane.Top),
			Height:       pct(pane.Height),
			ContainLabel: true,
		})
	}
	return grids
}

// buildXAxes emits one category axis per pane. All panes share the zoom
// window; only the bottom pane shows time labels once below panes exist.
func buildXAxes(belowCount int) []AxisSpec {
	axes := []AxisSpec{{
		Type:        "category",
		GridIndex:   0,
		Show:        true,
		ShowLabels:  belowCount == 0,
		LabelFormat: "time-or-date",
		BoundaryGap: false,
	}}
	for i := 0; i < belowCount; i++ {
		axes = append(axes, AxisSpec{
			Type:        "category",
			GridIndex:   i + 1,
			Show:        i == belowCount-1,
			ShowLabels:  i == belowCount-1,
			LabelFormat: "time-or-date",
			BoundaryGap: false,
		})
	}
	return axes
}

// buildYAxes emits the price axis, the hidden volume axis, then one value
// axis per below pane. The volume axis is always present so below-pane axis
// indices stay stable at 2+i.
func buildYAxes(below []activeResult) []AxisSpec {
	axes := []AxisSpec{
		{
			Type:         "value",
			Name:         "Price",
			GridIndex:    0,
			Position:     "right",
			Show:         true,
			ShowLabels:   true,
			Scale:        true,
			SplitNumber:  5,
			SplitLine:    true,
			PaddingRatio: pricePaddingRatio,
		},
		{
			Type:          "value",
			Name:          "Volume",
			GridIndex:     0,
			Show:          false,
			Scale:         true,
			MaxMultiplier: volumeAxisStretch,
		},
	}
	for i, ar := range below {
		axes = append(axes, AxisSpec{
			Type:         "value",
			Name:         ar.label,
			GridIndex:    i + 1,
			Position:     "right",
			Show:         true,
			ShowLabels:   true,
			Scale:        true,
			SplitNumber:  3,
			SplitLine:    true,
			PaddingRatio: belowPaddingRatio,
		})
	}
	return axes
}

func buildDataZooms(zoom *domain.ZoomWindow, xAxisCount int) []DataZoomSpec {
	start, end := defaultZoomStart, defaultZoomEnd
	if zoom != nil {
		start, end = zoom.Start, zoom.End
	}
	indexes := make([]int, xAxisCount)
	for i := range indexes {
		indexes[i] = i
	}
	return []DataZoomSpec{
		{Type: "inside", XAxisIndex: indexes, Start: start, End: end},
		{Type: "slider", Show: true, Realtime: true, XAxisIndex: indexes, Start: start, End: end, Bottom: 10, Height: 40},
	}
}

func buildSeries(title string, bars []domain.Bar, active, below []activeResult, view domain.ViewSnapshot) []SeriesSpec {
	series := []SeriesSpec{{
		Name: title,
		Type: "candlestick",
		Encode: EncodeSpec{
			X: "time",
			Y: []string{"open", "close", "low", "high"},
		},
		XAxisIndex: 0,
		YAxisIndex: 0,
		Z:          10,
		ItemStyle: &ItemStyleSpec{
			Color:        bearColor,
			Color0:       bullColor,
			BorderColor:  bearColor,
			BorderColor0: bullColor,
		},
	}}

	if view.ShowVolume {
		series = append(series, SeriesSpec{
			Name:       "Volume",
			Type:       "bar",
			Encode:     EncodeSpec{X: "time", Y: []string{"volume"}},
			XAxisIndex: 0,
			YAxisIndex: 1,
			Z:          1,
			BarWidth:   "70%",
			ItemStyle: &ItemStyleSpec{
				ColorBy:   "bar-direction",
				BullColor: bullVolumeColor,
				BearColor: bearVolumeColor,
			},
		})
	}

	paneIndex := make(map[string]int, len(below))
	for i, ar := range below {
		paneIndex[ar.result.ID] = i
	}

	for _, ar := range active {
		xIdx, yIdx := 0, 0
		if ar.placement == domain.PlacementBelow {
			i, ok := paneIndex[ar.result.ID]
			if !ok {
				continue
			}
			xIdx, yIdx = i+1, i+2
		}

		marks := referenceLines(ar.result.ID)
		for _, field := range ar.fields {
			s := fieldSeries(ar, field, xIdx, yIdx, view.Theme == domain.ThemeDark)
			if ar.placement == domain.PlacementBelow && marks != nil {
				s.MarkLines = marks
				marks = nil
			}
			series = append(series, s)
		}
	}
	return series
}

func fieldSeries(ar activeResult, field string, xIdx, yIdx int, dark bool) SeriesSpec {
	column := domain.SeriesColumn(ar.result.ID, field)
	s := SeriesSpec{
		Name:       column,
		Type:       "line",
		Encode:     EncodeSpec{X: "time", Y: []string{column}},
		XAxisIndex: xIdx,
		YAxisIndex: yIdx,
		Z:          1,
		Smooth:     true,
		Symbol:     "none",
		LineStyle:  &LineStyleSpec{Color: ar.color, Width: 2},
	}

	if histogramField(ar.result.ID, field) {
		s.Type = "bar"
		s.Smooth = false
		s.Symbol = ""
		s.LineStyle = nil
		s.ItemStyle = &ItemStyleSpec{Color: ar.color, Opacity: 0.6}
		return s
	}

	if isBandIndicator(ar.result.ID) && isBandField(field) {
		color := ar.color
		if c, ok := bandColors[ar.result.ID][field]; ok {
			color = c
		}
		s.LineStyle = &LineStyleSpec{Color: color, Width: 1}
		switch {
		case field == "middle_band":
			// Drawn last and raised so it sits on top of the outer bands.
			s.Z = 2
		default:
			s.LineStyle.Type = "dashed"
			if field == "upper_band" {
				alpha := 0.05
				if dark {
					alpha = 0.1
				}
				s.AreaStyle = &AreaStyleSpec{Color: color, Opacity: alpha, Origin: "auto"}
			}
		}
	}
	return s
}

func buildLegend(title string, active []activeResult, showVolume bool, tc themeColors) LegendSpec {
	legend := LegendSpec{Top: 30, TextColor: tc.text}
	legend.Entries = append(legend.Entries, LegendEntry{Name: title, Label: title})
	if showVolume {
		legend.Entries = append(legend.Entries, LegendEntry{Name: "Volume", Label: "Volume"})
	}
	for _, ar := range active {
		for _, field := range ar.fields {
			label := ar.label
			if field != "value" {
				label = ar.label + " (" + field + ")"
			}
			legend.Entries = append(legend.Entries, LegendEntry{
				Name:  domain.SeriesColumn(ar.result.ID, field),
				Label: label,
			})
		}
	}
	return legend
}

func buildTooltip(active []activeResult, showVolume bool, tc themeColors) TooltipSpec {
	tooltip := TooltipSpec{
		Trigger:         "axis",
		AxisPointer:     "cross",
		BackgroundColor: tc.tooltipBackground,
		BorderColor:     tc.tooltipBorder,
		TextColor:       tc.text,
		ShowVolume:      showVolume,
		PricePrecision:  2,
	}
	for _, ar := range active {
		if len(ar.fields) == 0 {
			continue
		}
		group := TooltipGroup{Indicator: ar.label}
		for _, field := range ar.fields {
			group.Fields = append(group.Fields, TooltipField{
				Column: domain.SeriesColumn(ar.result.ID, field),
				Label:  domain.FieldDisplayName(field),
			})
		}
		tooltip.Groups = append(tooltip.Groups, group)
	}
	return tooltip
}

func pct(v float64) string {
	// Two decimals keep layout output stable across runs.
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64) + "%"
}
