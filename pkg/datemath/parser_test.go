package datemath_test

import (
	"errors"
	"testing"
	"time"

	"todo-summary-assistant/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday

	tests := []struct {
		relative string
		want     string
		wantErr  bool
	}{
		{relative: "today", want: "2024-05-01"},
		{relative: "Tomorrow", want: "2024-05-02"},
		{relative: "yesterday", want: "2024-04-30"},
		{relative: "in 1 day", want: "2024-05-02"},
		{relative: "in  3   days", want: "2024-05-04"},
		{relative: "in 2 weeks", want: "2024-05-15"},
		{relative: "in 1 month", want: "2024-06-01"},
		{relative: "next monday", want: "2024-05-06"},
		{relative: "next wednesday", want: "2024-05-08"},
		{relative: "next sunday", want: "2024-05-05"},
		{relative: "in a few days", wantErr: true},
		{relative: "in 3 years", wantErr: true},
		{relative: "next funday", wantErr: true},
		{relative: "someday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.relative, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, base)
			if tt.wantErr {
				if !errors.Is(err, datemath.ErrUnrecognized) {
					t.Fatalf("Parse() error = %v, want ErrUnrecognized", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			if got.Format(datemath.DateLayout) != tt.want {
				t.Errorf("Parse() = %s, want %s", got.Format(datemath.DateLayout), tt.want)
			}
			if got.Hour() != 0 || got.Minute() != 0 {
				t.Errorf("Parse() should return midnight, got %v", got)
			}
		})
	}
}

func TestParse_UsesParserTimezone(t *testing.T) {
	parser, _ := datemath.NewParser("Asia/Ho_Chi_Minh")
	// Already Thursday 2024-05-02 in Ho Chi Minh City.
	base := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)

	got, err := parser.Parse("tomorrow", base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Format(datemath.DateLayout) != "2024-05-03" {
		t.Errorf("tomorrow = %s, want 2024-05-03", got.Format(datemath.DateLayout))
	}

	got, _ = parser.Parse("next thursday", base)
	if got.Format(datemath.DateLayout) != "2024-05-09" {
		t.Errorf("next thursday = %s, want 2024-05-09", got.Format(datemath.DateLayout))
	}
}

func TestParseDate(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")

	got, err := parser.ParseDate("2025-05-30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2025, 5, 30, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDate() got = %v, want %v", got, want)
	}

	for _, bad := range []string{"", "30/05/2025", "2025-13-01", "tomorrow"} {
		if _, err := parser.ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) expected error", bad)
		}
	}
}

func TestNormalize(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2024-06-10", want: "2024-06-10"},
		{in: " 2024-06-10 ", want: "2024-06-10"},
		{in: "tomorrow", want: "2024-05-02"},
		{in: "in 2 weeks", want: "2024-05-15"},
		{in: "next friday", want: "2024-05-03"},
		{in: "whenever", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			res, err := parser.Normalize(tt.in, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Normalize() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && res.Date() != tt.want {
				t.Errorf("Normalize() got = %s, want %s", res.Date(), tt.want)
			}
		})
	}
}

func TestIsOnOrBefore(t *testing.T) {
	parser, _ := datemath.NewParser("Asia/Ho_Chi_Minh")
	// 2024-05-01 20:00 UTC is already 2024-05-02 in Ho Chi Minh City.
	now := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		due  string
		want bool
	}{
		{due: "2024-04-30", want: true},
		{due: "2024-05-01", want: true},
		{due: "2024-05-02", want: true},
		{due: "2024-05-03", want: false},
	}

	for _, tt := range tests {
		got, err := parser.IsOnOrBefore(tt.due, now)
		if err != nil {
			t.Fatalf("IsOnOrBefore(%s) unexpected error: %v", tt.due, err)
		}
		if got != tt.want {
			t.Errorf("IsOnOrBefore(%s) = %v, want %v", tt.due, got, tt.want)
		}
	}

	if _, err := parser.IsOnOrBefore("soon", now); err == nil {
		t.Errorf("expected error for unparseable date")
	}
}
