package money

import "testing"

func TestFormatINR(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{5, "5"},
		{999, "999"},
		{1000, "1,000"},
		{99999, "99,999"},
		{100000, "1,00,000"},
		{1234567, "12,34,567"},
		{12345678, "1,23,45,678"},
		{1000000000, "1,00,00,00,000"},
		{-1234567, "-12,34,567"},
	}

	for _, tc := range cases {
		if got := FormatINR(tc.in); got != tc.want {
			t.Errorf("FormatINR(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRupees(t *testing.T) {
	if got := Rupees(1234567.4); got != "₹12,34,567" {
		t.Errorf("Rupees = %q", got)
	}
	if got := Rupees(999.6); got != "₹1,000" {
		t.Errorf("Rupees rounding = %q", got)
	}
}

func TestRupeeRange(t *testing.T) {
	got := RupeeRange(500000, 750000)
	want := "₹5,00,000 - ₹7,50,000"
	if got != want {
		t.Errorf("RupeeRange = %q, want %q", got, want)
	}
}
