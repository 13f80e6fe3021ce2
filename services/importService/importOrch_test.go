package importService

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseBetString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantTeam string
		wantLine string
		wantErr  bool
	}{
		{"underdog", "Miami +7.5", "Miami", "7.5", false},
		{"favorite", "OSU -7.5", "OSU", "-7.5", false},
		{"multi-word team", "Ole Miss Rebels +6.0", "Ole Miss Rebels", "6", false},
		{"whole number line", "Navy -3", "Navy", "-3", false},
		{"padded", "  Miami +7.5  ", "Miami", "7.5", false},
		{"no line", "Miami", "", "", true},
		{"empty", "", "", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			team, line, err := ParseBetString(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseBetString(%q) succeeded, want error", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseBetString(%q) returned error: %v", tc.input, err)
			}
			if team != tc.wantTeam {
				t.Errorf("team = %q, want %q", team, tc.wantTeam)
			}
			if !line.Equal(decimal.RequireFromString(tc.wantLine)) {
				t.Errorf("line = %s, want %s", line, tc.wantLine)
			}
		})
	}
}

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"positive with sign", "+$50.00", "50", false},
		{"negative after dollar", "$-55.00", "-55", false},
		{"plain", "$50.00", "50", false},
		{"bare number", "12.34", "12.34", false},
		{"empty means zero", "", "0", false},
		{"garbage", "fifty", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseCurrency(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseCurrency(%q) succeeded, want error", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCurrency(%q) returned error: %v", tc.input, err)
			}
			if !got.Equal(decimal.RequireFromString(tc.want)) {
				t.Errorf("ParseCurrency(%q) = %s, want %s", tc.input, got, tc.want)
			}
		})
	}
}
