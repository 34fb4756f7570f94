package frame

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestDisplayOrder(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Merry Xmas", "SAMX YRREM"},
		{"abc", "CBA"},
		{"héllo", "OLLÉH"},
		{"2025!", "!5202"},
	}
	for _, tt := range tests {
		if got := DisplayOrder(tt.in); got != tt.want {
			t.Errorf("DisplayOrder(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTextAngle(t *testing.T) {
	got := TextAngle("ABC", FixedMetrics(12), 100, 0.01)
	want := 3*0.12 + 2*0.01
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Fatalf("TextAngle mismatch (-want +got):\n%s", diff)
	}
	if got := TextAngle("ABC", FixedMetrics(12), 0, 0.01); got != 0 {
		t.Fatalf("zero radius should measure 0, got %v", got)
	}
}

func TestComputeSpanKeepsDefault(t *testing.T) {
	l := DefaultLayout()
	got := ComputeSpan(DisplayOrder("Merry Xmas"), FixedMetrics(12), l.Radius(), l.Spacing(), 160, 300, 25)
	if diff := cmp.Diff(Span{Start: 160, End: 300}, got, approx); diff != "" {
		t.Fatalf("span mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeSpanRecentres(t *testing.T) {
	l := DefaultLayout()
	msg := DisplayOrder("MERRY XMAS")
	m := FixedMetrics(40)
	radius := l.Radius()
	spacing := l.Spacing()
	required := degrees(10*40/radius+9*spacing) + 25
	if required <= 140 {
		t.Fatalf("test setup: required span %v does not exceed default", required)
	}
	got := ComputeSpan(msg, m, radius, spacing, 160, 300, 25)
	want := Span{Start: 230 - required/2, End: 230 + required/2}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Fatalf("span mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeSpanLowerBound(t *testing.T) {
	const radius = 172.0
	spacing := radians(1)
	messages := []string{"", "A", "HELLO", "MERRY CHRISTMAS", "HAPPY HOLIDAYS FROM ALL OF US", "X"}
	widths := []float64{0, 5, 12, 24, 40}
	for _, msg := range messages {
		for _, w := range widths {
			m := FixedMetrics(w)
			got := ComputeSpan(msg, m, radius, spacing, 160, 300, 25)
			measured := msg
			if measured == "" {
				measured = " "
			}
			required := degrees(TextAngle(measured, m, radius, spacing)) + 25
			if got.Width() < 140-1e-9 {
				t.Errorf("%q/%v: span %v narrower than default", msg, w, got)
			}
			if math.Abs(got.Center()-230) > 1e-9 {
				t.Errorf("%q/%v: span %v not centred on 230", msg, w, got)
			}
			if required <= 140 && got != (Span{Start: 160, End: 300}) {
				t.Errorf("%q/%v: required %v fits but span is %v", msg, w, required, got)
			}
			if required > 140 && math.Abs(got.Width()-required) > 1e-9 {
				t.Errorf("%q/%v: span width %v, want %v", msg, w, got.Width(), required)
			}
		}
	}
}

func TestComputeSpanEmptyMessageReservesBlank(t *testing.T) {
	got := ComputeSpan("", FixedMetrics(1000), 100, 0, 160, 300, 25)
	if got.Width() <= 140 {
		t.Fatalf("empty message should be measured as a blank, got %v", got)
	}
}

func TestComputeSpanNonPositiveRadius(t *testing.T) {
	got := ComputeSpan("HELLO", FixedMetrics(10), 0, 0, 160, 300, 25)
	if got != (Span{Start: 160, End: 300}) {
		t.Fatalf("expected default span, got %v", got)
	}
}

func TestSpanHelpers(t *testing.T) {
	s := Span{Start: 160, End: 340}
	if s.Width() != 180 || s.Center() != 250 || s.Ratio() != 0.5 {
		t.Fatalf("unexpected helpers for %v: %v %v %v", s, s.Width(), s.Center(), s.Ratio())
	}
}
