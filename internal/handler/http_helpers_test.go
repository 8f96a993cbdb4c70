package handler

import (
	"strings"
	"testing"
	"time"
)

func TestParsePositiveInt(t *testing.T) {
	cases := map[string]int{
		"":      7,
		"3":     3,
		" 12 ":  12,
		"0":     7,
		"-2":    7,
		"abc":   7,
		"1.5":   7,
		"99999": 99999,
	}
	for input, want := range cases {
		if got := parsePositiveInt(input, 7); got != want {
			t.Fatalf("parsePositiveInt(%q) = %d, want %d", input, got, want)
		}
	}
}

func TestIsoTimeUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	ts := time.Date(2024, time.June, 1, 8, 0, 0, 0, loc)

	if got := isoTime(ts); got != "2024-06-01T00:00:00Z" {
		t.Fatalf("unexpected iso time %q", got)
	}
	if isoTimePtr(nil) != nil {
		t.Fatal("expected nil for missing timestamp")
	}
}

func TestRenderMarkdownSanitizes(t *testing.T) {
	html, err := renderMarkdown("**bold** <img src=x onerror=alert(1)>\n\n| a | b |\n|---|---|\n| 1 | 2 |")
	if err != nil {
		t.Fatalf("render markdown: %v", err)
	}
	if !strings.Contains(html, "<strong>bold</strong>") {
		t.Fatalf("expected bold markup, got %q", html)
	}
	if strings.Contains(html, "onerror") {
		t.Fatalf("expected event handler to be stripped, got %q", html)
	}
	if !strings.Contains(html, "<table>") {
		t.Fatalf("expected table markup, got %q", html)
	}
}
