package utils

import "testing"

func TestSanitizeText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Jane Doe  ", "Jane Doe"},
		{"Tom & Jerry", "Tom &amp; Jerry"},
		{"<script>alert(1)</script>", "&lt;script&gt;alert(1)&lt;/script&gt;"},
		{"   ", ""},
		{"plain", "plain"},
	}
	for _, tc := range cases {
		if got := SanitizeText(tc.in); got != tc.want {
			t.Errorf("SanitizeText(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitizeEmail(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  jane@example.com  ", "jane@example.com"},
		{"ja ne@example.com", "jane@example.com"},
		{"jane<script>@example.com", "janescript@example.com"},
		{"o'connor@example.com", "o'connor@example.com"},
	}
	for _, tc := range cases {
		if got := SanitizeEmail(tc.in); got != tc.want {
			t.Errorf("SanitizeEmail(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestValidEmail(t *testing.T) {
	valid := []string{"jane@example.com", "a.b+c@sub.domain.co", "x_1@e.org"}
	for _, e := range valid {
		if !ValidEmail(e) {
			t.Errorf("ValidEmail(%q) = false, want true", e)
		}
	}
	invalid := []string{"", "not-an-email", "jane@", "@example.com", "jane@example", "jane@exam ple.com"}
	for _, e := range invalid {
		if ValidEmail(e) {
			t.Errorf("ValidEmail(%q) = true, want false", e)
		}
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"5000", 5000},
		{"5000.50", 5000.5},
		{" 42 ", 42},
		{"abc", 0},
		{"", 0},
	}
	for _, tc := range cases {
		if got := ParseAmount(tc.in); got != tc.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseIntDefault(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"8", 8},
		{"7", 7},
		{"8.9", 8},
		{" 8 ", 8},
		{"abc", 0},
		{"", 0},
	}
	for _, tc := range cases {
		if got := ParseIntDefault(tc.in); got != tc.want {
			t.Errorf("ParseIntDefault(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
