package format

import "testing"

func TestParseCount(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"1.2K", 1200},
		{"1.5M", 1500000},
		{"123", 123},
		{"12,345", 12345},
		{"87K", 87000},
		{"5.6K reach", 5600},
		{"0", 0},
		{"", 0},
		{"no number", 0},
		{"42k", 42000},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ParseCount(tt.input)
			if result != tt.expected {
				t.Errorf("ParseCount(%q) = %d, want %d", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		input    int
		expected string
	}{
		{87000, "87K"},
		{1200, "1.2K"},
		{1500000, "1.5M"},
		{999, "999"},
		{0, "0"},
		{50000, "50K"},
		{149000, "149K"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := FormatCount(tt.input)
			if result != tt.expected {
				t.Errorf("FormatCount(%d) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"10000", 10000},
		{"10,000", 10000},
		{"$5000", 5000},
		{"1234.56", 1234.56},
		{"", 0},
		{"abc", 0},
		{"  250 ", 250},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ParseAmount(tt.input)
			if result != tt.expected {
				t.Errorf("ParseAmount(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{10000, "$10,000"},
		{0, "$0"},
		{1234567.5, "$1,234,567.5"},
		{999, "$999"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := FormatCurrency(tt.input)
			if result != tt.expected {
				t.Errorf("FormatCurrency(%v) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
