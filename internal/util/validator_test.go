package util

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"plain integer", "1200", "1200", false},
		{"two decimals", "99.99", "99.99", false},
		{"rounds to two decimals", "10.005", "10.01", false},
		{"empty", "", "", true},
		{"not a number", "abc", "", true},
		{"zero", "0", "", true},
		{"negative", "-5", "", true},
		{"at ceiling", "10000000", "", true},
		{"just below ceiling", "9999999.99", "9999999.99", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAmount(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			want, _ := decimal.NewFromString(tt.want)
			if !got.Equal(want) {
				t.Errorf("ParseAmount(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "2025-03-15", false},
		{"empty", "", true},
		{"wrong order", "15-03-2025", true},
		{"not a date", "yesterday", true},
		{"impossible day", "2025-02-30", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr {
				want := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
				if !got.Equal(want) {
					t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, want)
				}
			}
		})
	}
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "alice", false},
		{"with digits and underscore", "user_01", false},
		{"minimum length", "abc", false},
		{"maximum length", "a1234567890123456789", false},
		{"too short", "ab", true},
		{"too long", "a12345678901234567890", true},
		{"space", "ali ce", true},
		{"hyphen", "ali-ce", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUsername(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateType(t *testing.T) {
	for _, valid := range []string{"income", "expense"} {
		if err := ValidateType(valid); err != nil {
			t.Errorf("ValidateType(%q) = %v, want nil", valid, err)
		}
	}
	for _, invalid := range []string{"", "Income", "transfer", "both"} {
		if err := ValidateType(invalid); err == nil {
			t.Errorf("ValidateType(%q) = nil, want error", invalid)
		}
	}
}

func TestValidateCategoryName(t *testing.T) {
	if err := ValidateCategoryName("Groceries"); err != nil {
		t.Errorf("ValidateCategoryName(Groceries) = %v, want nil", err)
	}
	if err := ValidateCategoryName(""); err == nil {
		t.Error("ValidateCategoryName(\"\") = nil, want error")
	}
	long := make([]byte, 101)
	for i := range long {
		long[i] = 'x'
	}
	if err := ValidateCategoryName(string(long)); err == nil {
		t.Error("ValidateCategoryName(101 chars) = nil, want error")
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		symbol string
		amount string
		want   string
	}{
		{"₹", "1200.5", "₹1200.50"},
		{"$", "0", "$0.00"},
		{"₹", "-200", "-₹200.00"},
		{"EUR", "42", "EUR42.00"},
	}

	for _, tt := range tests {
		amount, _ := decimal.NewFromString(tt.amount)
		if got := FormatMoney(tt.symbol, amount); got != tt.want {
			t.Errorf("FormatMoney(%q, %s) = %q, want %q", tt.symbol, tt.amount, got, tt.want)
		}
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct{ in, want string }{
		{"income", "Income"},
		{"expense", "Expense"},
		{"Already", "Already"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Capitalize(tt.in); got != tt.want {
			t.Errorf("Capitalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
