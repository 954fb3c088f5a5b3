package util

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatKRW(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		want   string
	}{
		{"zero", decimal.Zero, "₩0"},
		{"small", decimal.NewFromInt(500), "₩500"},
		{"thousands", decimal.NewFromInt(45500), "₩45,500"},
		{"millions", decimal.NewFromInt(2327250), "₩2,327,250"},
		{"ten millions", decimal.NewFromInt(10000000), "₩10,000,000"},
		{"negative", decimal.NewFromInt(-45500), "₩-45,500"},
		{"fraction rounds", decimal.NewFromFloat(1234.6), "₩1,235"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatKRW(tt.amount); got != tt.want {
				t.Errorf("FormatKRW(%s) = %s, want %s", tt.amount.String(), got, tt.want)
			}
		})
	}
}

func TestFormatKRWWithSuffix(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		want   string
	}{
		{"zero", decimal.Zero, "0원"},
		{"thousands", decimal.NewFromInt(45500), "45,500원"},
		{"millions", decimal.NewFromInt(10000000), "10,000,000원"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatKRWWithSuffix(tt.amount); got != tt.want {
				t.Errorf("FormatKRWWithSuffix(%s) = %s, want %s", tt.amount.String(), got, tt.want)
			}
		})
	}
}
