package numtext

import "testing"

func TestNumberAsText(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"0", "Zero"},
		{"1", "One"},
		{"9", "Nine"},
		{"13", "Thirteen"},
		{"20", "Twenty"},
		{"21", "Twenty One"},
		{"42", "Forty Two"},
		{"99", "Ninety Nine"},
		{"100", "One Hundred"},
		{"123", "One Hundred and Twenty Three"},
		{"1000", "One Thousand"},
		{"1994", "One Thousand Nine Hundred and Ninety Four"},
		{"1000000", "One Million"},
		{"2500000", "Two Million Five Hundred Thousand"},
		{"1000000000", "One Billion"},
		{"-42", "Minus Forty Two"},
		{"+7", "Plus Seven"},
		{"3.14", "Three Point One Four"},
		{"0.5", "Zero Point Five"},
		{"1,234", "One Thousand Two Hundred and Thirty Four"},
		{"  17 ", "Seventeen"},
		{"abc", "Error - Number improperly formed"},
		{"12345678901234567890", "Error - Number too large"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NumberAsText(tt.input); got != tt.expected {
				t.Errorf("NumberAsText(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
