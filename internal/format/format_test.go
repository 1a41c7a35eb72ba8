package format

import "testing"

func TestUSD(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{50, "$50.00"},
		{50.0, "$50.00"},
		{19.9, "$19.90"},
		{0, "$0.00"},
		{0.005, "$0.01"},
		{1234.5, "$1,234.50"},
		{1000000, "$1,000,000.00"},
		{-12.34, "-$12.34"},
	}
	for _, c := range cases {
		if got := USD(c.in); got != c.want {
			t.Fatalf("USD(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestPercent(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{1.0 / 3.0, 33},
		{2.0 / 3.0, 67},
		{1, 100},
		{-0.5, 0},
		{1.7, 100},
	}
	for _, c := range cases {
		if got := Percent(c.in); got != c.want {
			t.Fatalf("Percent(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestCollapseSpace(t *testing.T) {
	if got := CollapseSpace("  a \n\t b   c "); got != "a b c" {
		t.Fatalf("unexpected collapse result %q", got)
	}
	if got := CollapseSpace("\n \t"); got != "" {
		t.Fatalf("whitespace-only input should collapse to empty, got %q", got)
	}
}
