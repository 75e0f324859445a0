package service

import "testing"

func TestFormatINR(t *testing.T) {
	tests := []struct {
		name   string
		input  float64
		expect string
	}{
		{"zero", 0, "₹0.00"},
		{"with decimals", 42.50, "₹42.50"},
		{"hundreds", 999.99, "₹999.99"},
		{"thousands", 1234.56, "₹1,234.56"},
		{"window total", 12935, "₹12,935.00"},
		{"lakhs", 123456.78, "₹1,23,456.78"},
		{"crores", 12345678.90, "₹1,23,45,678.90"},
		{"negative", -250000.50, "-₹2,50,000.50"},
		{"exact lakh boundary", 100000, "₹1,00,000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatINR(tt.input)
			if got != tt.expect {
				t.Errorf("FormatINR(%v) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestApplyIndianGrouping(t *testing.T) {
	tests := []struct {
		input  string
		expect string
	}{
		{"5", "5"},
		{"999", "999"},
		{"1234", "1,234"},
		{"123456", "1,23,456"},
		{"12345678", "1,23,45,678"},
		{"1234567890", "1,23,45,67,890"},
	}

	for _, tt := range tests {
		got := applyIndianGrouping(tt.input)
		if got != tt.expect {
			t.Errorf("applyIndianGrouping(%q) = %q, want %q", tt.input, got, tt.expect)
		}
	}
}
