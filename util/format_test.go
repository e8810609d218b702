package util

import "testing"

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		price float64
		want  string
	}{
		{19.99, "19,99 €"},
		{5, "5,00 €"},
		{0, "0,00 €"},
		{100.5, "100,50 €"},
	}
	for _, tt := range tests {
		if got := FormatPrice(tt.price); got != tt.want {
			t.Errorf("FormatPrice(%v) = %q, want %q", tt.price, got, tt.want)
		}
	}
}
