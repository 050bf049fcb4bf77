package cli

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"7", "7"},
		{"1234", "1,234"},
		{"1234567", "1,234,567"},
		{"12.5", "12.50"},
		{"1000.256", "1,000.26"},
		{"-42", "-42"},
		{"-1500.5", "-1,500.50"},
	}

	for _, tt := range tests {
		if got := FormatMoney(decimal.RequireFromString(tt.in)); got != tt.want {
			t.Fatalf("FormatMoney(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatOptionalMoney(t *testing.T) {
	if got := FormatOptionalMoney(decimal.NullDecimal{}); got != "-" {
		t.Fatalf("unset = %q, want -", got)
	}
	if got := FormatOptionalMoney(decimal.NewNullDecimal(decimal.NewFromInt(12))); got != "12" {
		t.Fatalf("set = %q, want 12", got)
	}
}

func TestFormatRate(t *testing.T) {
	if got := FormatRate(decimal.RequireFromString("0.07")); got != "7%" {
		t.Fatalf("FormatRate(0.07) = %q, want 7%%", got)
	}
	if got := FormatRate(decimal.RequireFromString("0.125")); got != "12.5%" {
		t.Fatalf("FormatRate(0.125) = %q, want 12.5%%", got)
	}
}

func TestFormatNumber(t *testing.T) {
	if got := FormatNumber(-1234); got != "-1,234" {
		t.Fatalf("FormatNumber(-1234) = %q", got)
	}
	if got := FormatNumber(999); got != "999" {
		t.Fatalf("FormatNumber(999) = %q", got)
	}
}

func TestShortID(t *testing.T) {
	if got := ShortID("0123456789abcdef"); got != "01234567" {
		t.Fatalf("ShortID = %q", got)
	}
	if got := ShortID("abc"); got != "abc" {
		t.Fatalf("ShortID = %q", got)
	}
}
