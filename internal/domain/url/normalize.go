// Package url provides URL normalization for web tabs.
package url

import "strings"

// commonTLDs is the fixed set of top-level domains used to decide whether
// scheme-less input looks like a bare domain.
var commonTLDs = map[string]bool{
	"com": true, "org": true, "net": true, "io": true, "app": true,
	"dev": true, "ai": true, "co": true, "edu": true, "gov": true,
	"biz": true, "info": true, "me": true, "us": true, "uk": true,
	"de": true, "jp": true, "fr": true, "au": true, "ca": true,
	"es": true, "it": true, "nl": true, "se": true, "no": true,
	"fi": true, "cz": true, "pl": true, "br": true, "ru": true,
	"in": true,
}

// Normalize prepares user input for a web tab. Input with an explicit
// http/https scheme passes through unchanged. Scheme-less input that looks
// like a bare domain gets https:// prepended; anything else still gets
// https:// prepended as a best-effort fallback, treating unknown input as
// a navigable guess.
func Normalize(input string) string {
	switch {
	case input == "":
		return ""
	case strings.HasPrefix(input, "http://"), strings.HasPrefix(input, "https://"):
		return input
	case LooksLikeDomain(input):
		return "https://" + input
	default:
		// Not recognizably a domain, but still worth a navigation attempt.
		return "https://" + input
	}
}

// LooksLikeDomain reports whether the input (optionally followed by a
// path) is a bare domain: dot-separated alphanumeric/hyphen labels ending
// in one of the common TLDs.
func LooksLikeDomain(input string) bool {
	host := input
	if i := strings.Index(host, "/"); i >= 0 {
		host = host[:i]
	}
	if host == "" || strings.Contains(host, " ") {
		return false
	}

	labels := strings.Split(host, ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if !validLabel(label) {
			return false
		}
	}

	tld := strings.ToLower(labels[len(labels)-1])
	return commonTLDs[tld]
}

// validLabel checks a single domain label: non-empty, alphanumeric or
// hyphen, starting and ending alphanumeric.
func validLabel(label string) bool {
	if label == "" || len(label) > 63 {
		return false
	}
	for i := 0; i < len(label); i++ {
		c := label[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-':
			if i == 0 || i == len(label)-1 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
