package models

import (
	"errors"
	"math"
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{raw: "12.50", want: 12.5},
		{raw: "7", want: 7},
		{raw: " 3.25 ", want: 3.25},
		{raw: `"42.1"`, want: 42.1},
		{raw: "1e2", want: 100},
		{raw: "abc", wantErr: true},
		{raw: "", wantErr: true},
		{raw: "NaN", wantErr: true},
		{raw: "12,50", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseAmount(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAmount) {
					t.Errorf("ParseAmount(%q) error = %v, want ErrInvalidAmount", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q) unexpected error: %v", tt.raw, err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ParseAmount(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	if _, err := ParseDate("2024-01-31"); err != nil {
		t.Errorf("expected valid date, got %v", err)
	}
	for _, bad := range []string{"2024-1-5", "31/01/2024", "", "2024-02-30"} {
		if _, err := ParseDate(bad); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("ParseDate(%q) error = %v, want ErrInvalidDate", bad, err)
		}
	}
}
