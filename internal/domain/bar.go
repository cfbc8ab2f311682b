package domain

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark
}

var SupportedTimeframes = []string{"1m", "5m", "15m", "1h", "1d"}

func IsSupportedTimeframe(tf string) bool {
	for _, t := range SupportedTimeframes {
		if t == tf {
			return true
		}
	}
	return false
}

// Bar is one OHLCV observation. Date is "YYYY-MM-DD"; Time is "HH:MM" and
// empty for daily bars. Bars are chronological and replaced wholesale on
// refetch, never patched in place.
type Bar struct {
	Date   string  `json:"date"`
	Time   string  `json:"time,omitempty"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// Label is the category-axis value for the bar.
func (b Bar) Label() string {
	if b.Time != "" {
		return b.Date + " " + b.Time
	}
	return b.Date
}

func (b Bar) Bullish() bool {
	return b.Close >= b.Open
}

// ZoomWindow is a percentage window over the category axis, as emitted by
// the renderer's pan/zoom callback. Both ends are in [0,100].
type ZoomWindow struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

func (z ZoomWindow) IsValid() bool {
	return z.Start >= 0 && z.End <= 100 && z.Start < z.End
}
