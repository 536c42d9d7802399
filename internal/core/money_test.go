package core

import (
	"errors"
	"testing"
)

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"12.34", 1234, true},
		{"12,34", 1234, true},
		{"12", 1200, true},
		{"0.01", 1, true},
		{".5", 50, true},
		{"12.345", 1235, true}, // half-up on third decimal
		{"12.344", 1234, true},
		{"", 0, false},
		{"0", 0, false},
		{"0.00", 0, false},
		{"-1", 0, false},
		{"+1", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"1a.00", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToCents(tc.in)
		if tc.ok && err != nil {
			t.Fatalf("ParseDecimalToCents(%q) unexpected error: %v", tc.in, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("ParseDecimalToCents(%q) expected error, got %d", tc.in, got)
		}
		if tc.ok && got != tc.want {
			t.Fatalf("ParseDecimalToCents(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseAmountCarriesField(t *testing.T) {
	_, err := ParseAmount("amount", "nope")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "amount" {
		t.Fatalf("field = %q, want amount", verr.Field)
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := Money{Cents: 150}
	b := Money{Cents: 70}
	if got := a.Add(b).Cents; got != 220 {
		t.Fatalf("Add = %d", got)
	}
	if got := b.Sub(a).Cents; got != -80 {
		t.Fatalf("Sub = %d", got)
	}
	if !a.GreaterThan(b) || b.GreaterThan(a) {
		t.Fatalf("GreaterThan inconsistent")
	}
	if !b.Sub(a).IsNegative() {
		t.Fatalf("expected negative")
	}
}

func TestMoneyString(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{1234, "12.34"},
		{5, "0.05"},
		{-7550, "-75.50"},
		{0, "0.00"},
	}
	for _, tc := range cases {
		if got := (Money{Cents: tc.cents}).String(); got != tc.want {
			t.Fatalf("Money{%d}.String() = %q, want %q", tc.cents, got, tc.want)
		}
	}
}
