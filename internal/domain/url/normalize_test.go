package url

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"https://example.com", "https://example.com"},
		{"http://example.com/path?q=1", "http://example.com/path?q=1"},
		{"example.com", "https://example.com"},
		{"sub.example.dev/docs", "https://sub.example.dev/docs"},
		// Non-URL text still gets the scheme: unknown input is treated as
		// a navigable guess rather than rejected.
		{"not a url", "https://not a url"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Normalize(tc.input); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestLooksLikeDomain(t *testing.T) {
	yes := []string{
		"example.com",
		"sub.example.io",
		"my-site.dev",
		"example.co/path/deep",
		"EXAMPLE.COM",
	}
	for _, in := range yes {
		if !LooksLikeDomain(in) {
			t.Errorf("LooksLikeDomain(%q) = false, want true", in)
		}
	}

	no := []string{
		"",
		"example",
		"example.unknowntld",
		"has space.com",
		"-bad.com",
		"bad-.com",
		"exa_mple.com",
		".com",
	}
	for _, in := range no {
		if LooksLikeDomain(in) {
			t.Errorf("LooksLikeDomain(%q) = true, want false", in)
		}
	}
}
