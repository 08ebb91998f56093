package engine

import "testing"

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "R$ 0,00"},
		{"12.5", "R$ 12,50"},
		{"999.99", "R$ 999,99"},
		{"1234.5", "R$ 1.234,50"},
		{"1234567.89", "R$ 1.234.567,89"},
		{"-1234.5", "R$ -1.234,50"},
	}

	for _, tt := range tests {
		if got := FormatBRL(dec(tt.in)); got != tt.want {
			t.Fatalf("FormatBRL(%s): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestAbbreviateBRL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1000000", "R$ 1.00M"},
		{"1234567.89", "R$ 1.23M"},
		{"1500", "R$ 1.50K"},
		{"12345", "R$ 12.35K"},
		{"999.99", "R$ 999,99"},
		{"0", "R$ 0,00"},
	}

	for _, tt := range tests {
		if got := AbbreviateBRL(dec(tt.in)); got != tt.want {
			t.Fatalf("AbbreviateBRL(%s): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
