package money

import (
	"errors"
	"testing"
)

func TestExponent(t *testing.T) {
	tests := []struct {
		code    string
		want    int
		wantErr bool
	}{
		{"USD", 2, false},
		{"inr", 2, false},
		{"JPY", 0, false},
		{"EUR", 2, false},
		{"", 0, true},
		{"DOLLARS", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := Exponent(tt.code)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Exponent(%q) error = %v, wantErr %v", tt.code, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownCurrency) {
					t.Errorf("Exponent(%q) error = %v, want ErrUnknownCurrency", tt.code, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("Exponent(%q) = %d, want %d", tt.code, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		exp     int
		want    Amount
		wantErr error
	}{
		{name: "whole", in: "100", exp: 2, want: 10000},
		{name: "cents", in: "12.5", exp: 2, want: 1250},
		{name: "trailing zeros allowed", in: "3.1000", exp: 2, want: 310},
		{name: "negative", in: "-0.01", exp: 2, want: -1},
		{name: "whitespace", in: " 7.25 ", exp: 2, want: 725},
		{name: "yen", in: "500", exp: 0, want: 500},
		{name: "sub-cent rejected", in: "1.005", exp: 2, wantErr: ErrTooPrecise},
		{name: "fractional yen rejected", in: "1.5", exp: 0, wantErr: ErrTooPrecise},
		{name: "garbage", in: "abc", exp: 2, wantErr: ErrInvalidAmount},
		{name: "overflow", in: "999999999999999999999", exp: 2, wantErr: ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in, tt.exp)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse(%q) error = %v, want %v", tt.in, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		amount Amount
		exp    int
		want   string
	}{
		{10000, 2, "100.00"},
		{1, 2, "0.01"},
		{-1250, 2, "-12.50"},
		{0, 2, "0.00"},
		{500, 0, "500"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.amount.Format(tt.exp); got != tt.want {
				t.Errorf("Amount(%d).Format(%d) = %q, want %q", tt.amount, tt.exp, got, tt.want)
			}
		})
	}
}

func TestFromFloat(t *testing.T) {
	got, err := FromFloat(33.333, 2)
	if err != nil {
		t.Fatalf("FromFloat failed: %v", err)
	}
	if got != 3333 {
		t.Errorf("FromFloat(33.333) = %d, want 3333", got)
	}
}
