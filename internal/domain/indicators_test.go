package domain

import (
	"math"
	"reflect"
	"testing"
)

func TestSortFieldsBandOrder(t *testing.T) {
	fields := []string{"value", "upper_band", "signal", "lower_band", "histogram", "middle_band"}
	SortFields(fields)

	want := []string{"lower_band", "middle_band", "upper_band", "value", "histogram", "signal"}
	if !reflect.DeepEqual(fields, want) {
		t.Fatalf("expected %v, got %v", want, fields)
	}
}

func TestFieldsWithData(t *testing.T) {
	r := IndicatorResult{
		ID: "bollinger_band",
		Series: map[string][]float64{
			"upper_band":  {math.NaN(), 1},
			"middle_band": {math.NaN(), math.NaN()},
			"lower_band":  {0.5, 0.6},
		},
	}

	want := []string{"lower_band", "upper_band"}
	if got := r.FieldsWithData(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFieldDisplayName(t *testing.T) {
	cases := map[string]string{
		"value":          "Value",
		"upper_band":     "Upper Band",
		"middle_band":    "Middle Band",
		"lower_band":     "Lower Band",
		"signal":         "Signal",
		"slow_histogram": "Slow Histogram",
	}
	for in, want := range cases {
		if got := FieldDisplayName(in); got != want {
			t.Fatalf("FieldDisplayName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBarLabel(t *testing.T) {
	intraday := Bar{Date: "2024-01-12", Time: "09:15"}
	if intraday.Label() != "2024-01-12 09:15" {
		t.Fatalf("unexpected intraday label %q", intraday.Label())
	}
	daily := Bar{Date: "2024-01-12"}
	if daily.Label() != "2024-01-12" {
		t.Fatalf("unexpected daily label %q", daily.Label())
	}
}

func TestZoomWindowIsValid(t *testing.T) {
	valid := []ZoomWindow{{0, 100}, {60, 100}, {0, 0.1}}
	for _, z := range valid {
		if !z.IsValid() {
			t.Fatalf("expected %+v valid", z)
		}
	}
	invalid := []ZoomWindow{{-1, 50}, {50, 101}, {70, 70}, {80, 20}}
	for _, z := range invalid {
		if z.IsValid() {
			t.Fatalf("expected %+v invalid", z)
		}
	}
}
