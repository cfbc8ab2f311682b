package chartspec

// Declarative chart option types. The whole ChartSpec is derived state:
// rebuilt from scratch on every bars/results/view change and handed to the
// rendering library as-is. Replace carries the notMerge contract so a
// renderer never keeps series from a previous indicator set.

type ChartSpec struct {
	// Replace tells the renderer to drop any previously drawn option
	// instead of merging into it.
	Replace bool `json:"replace"`

	// Empty marks the well-defined no-data spec: the caller shows a
	// placeholder instead of invoking the renderer.
	Empty bool `json:"empty,omitempty"`

	Title     TitleSpec      `json:"title"`
	Dataset   DatasetSpec    `json:"dataset"`
	Tooltip   TooltipSpec    `json:"tooltip"`
	Legend    LegendSpec     `json:"legend"`
	Grids     []GridSpec     `json:"grid"`
	XAxes     []AxisSpec     `json:"xAxis"`
	YAxes     []AxisSpec     `json:"yAxis"`
	DataZooms []DataZoomSpec `json:"dataZoom"`
	Series    []SeriesSpec   `json:"series"`
}

type TitleSpec struct {
	Text      string `json:"text"`
	Left      string `json:"left"`
	TextColor string `json:"textColor"`
}

// DatasetSpec holds the single data table: one row per bar, columns "time",
// OHLCV, plus one column per surfaced indicator field. Gaps are null.
type DatasetSpec struct {
	Source []map[string]any `json:"source"`
}

type GridSpec struct {
	Left         string `json:"left"`
	Right        string `json:"right"`
	Top          string `json:"top"`
	Height       string `json:"height"`
	ContainLabel bool   `json:"containLabel"`
}

// AxisSpec covers both category x-axes and value y-axes. LabelFormat is a
// declarative hint ("time-or-date" renders HH:MM for intraday rows and
// MM/DD for daily rows) since formatter closures cannot cross the wire.
type AxisSpec struct {
	Type        string  `json:"type"`
	Name        string  `json:"name,omitempty"`
	GridIndex   int     `json:"gridIndex"`
	Position    string  `json:"position,omitempty"`
	Show        bool    `json:"show"`
	ShowLabels  bool    `json:"showLabels"`
	LabelFormat string  `json:"labelFormat,omitempty"`
	BoundaryGap bool    `json:"boundaryGap"`
	Scale       bool    `json:"scale,omitempty"`
	SplitNumber int     `json:"splitNumber,omitempty"`
	SplitLine   bool    `json:"splitLine"`
	// Headroom padding applied to the data extent, as a fraction
	// (0.005 = 0.5%).
	PaddingRatio float64 `json:"paddingRatio,omitempty"`
	// MaxMultiplier inflates the axis max relative to the data max; the
	// hidden volume axis uses it to pin bars to the bottom of the pane.
	MaxMultiplier float64 `json:"maxMultiplier,omitempty"`
}

type DataZoomSpec struct {
	Type        string  `json:"type"`
	Show        bool    `json:"show"`
	Realtime    bool    `json:"realtime,omitempty"`
	XAxisIndex  []int   `json:"xAxisIndex"`
	Start       float64 `json:"start"`
	End         float64 `json:"end"`
	Bottom      int     `json:"bottom,omitempty"`
	Height      int     `json:"height,omitempty"`
	BrushSelect bool    `json:"brushSelect,omitempty"`
}

type EncodeSpec struct {
	X string   `json:"x"`
	Y []string `json:"y"`
}

type ItemStyleSpec struct {
	Color        string `json:"color,omitempty"`
	Color0       string `json:"color0,omitempty"`
	BorderColor  string `json:"borderColor,omitempty"`
	BorderColor0 string `json:"borderColor0,omitempty"`
	// ColorBy "bar-direction" asks the renderer to color each bar by the
	// bull/bear direction of the bar at the same index.
	ColorBy      string  `json:"colorBy,omitempty"`
	BullColor    string  `json:"bullColor,omitempty"`
	BearColor    string  `json:"bearColor,omitempty"`
	Opacity      float64 `json:"opacity,omitempty"`
}

type LineStyleSpec struct {
	Color string  `json:"color"`
	Width float64 `json:"width"`
	Type  string  `json:"type,omitempty"`
}

type AreaStyleSpec struct {
	Color   string  `json:"color"`
	Opacity float64 `json:"opacity"`
	Origin  string  `json:"origin"`
}

// MarkLine is a fixed-value visual guide (RSI 70/30, MACD zero). Guides
// never enter the legend and never widen the axis beyond the data extent.
type MarkLine struct {
	Value float64 `json:"value"`
}

type SeriesSpec struct {
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	Encode     EncodeSpec     `json:"encode"`
	XAxisIndex int            `json:"xAxisIndex"`
	YAxisIndex int            `json:"yAxisIndex"`
	Z          int            `json:"z"`
	Smooth     bool           `json:"smooth,omitempty"`
	Symbol     string         `json:"symbol,omitempty"`
	BarWidth   string         `json:"barWidth,omitempty"`
	ItemStyle  *ItemStyleSpec `json:"itemStyle,omitempty"`
	LineStyle  *LineStyleSpec `json:"lineStyle,omitempty"`
	AreaStyle  *AreaStyleSpec `json:"areaStyle,omitempty"`
	MarkLines  []MarkLine     `json:"markLines,omitempty"`
}

type LegendEntry struct {
	// Name is the series name ("rsi_value"); Label what the user reads
	// ("Relative Strength Index").
	Name  string `json:"name"`
	Label string `json:"label"`
}

type LegendSpec struct {
	Entries   []LegendEntry `json:"entries"`
	Top       int           `json:"top"`
	TextColor string        `json:"textColor"`
}

// Labels returns legend labels in display order.
func (l LegendSpec) Labels() []string {
	out := make([]string, len(l.Entries))
	for i, e := range l.Entries {
		out[i] = e.Label
	}
	return out
}

type TooltipField struct {
	Column string `json:"column"`
	Label  string `json:"label"`
}

// TooltipGroup groups the hovered bar's indicator values under one heading,
// fields already in band order (lower, middle, upper, value).
type TooltipGroup struct {
	Indicator string         `json:"indicator"`
	Fields    []TooltipField `json:"fields"`
}

type TooltipSpec struct {
	Trigger         string         `json:"trigger"`
	AxisPointer     string         `json:"axisPointer"`
	BackgroundColor string         `json:"backgroundColor"`
	BorderColor     string         `json:"borderColor"`
	TextColor       string         `json:"textColor"`
	ShowVolume      bool           `json:"showVolume"`
	// PricePrecision applies to OHLC and indicator values; volume is
	// rendered as a locale-grouped integer.
	PricePrecision  int            `json:"pricePrecision"`
	Groups          []TooltipGroup `json:"groups"`
}
