package main

import (
	"testing"
	"time"

	pxshot "github.com/pxshot/pxshot-go"
)

func TestOutputNameAt(t *testing.T) {
	now := time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		name   string
		url    string
		format pxshot.Format
		want   string
	}{
		{
			name: "bare domain defaults to png",
			url:  "https://example.com",
			want: "example.com-20250102-150405.png",
		},
		{
			name: "subdomain collapses to registered domain",
			url:  "https://playground.bfl.ai/some/page",
			want: "bfl.ai-20250102-150405.png",
		},
		{
			name:   "jpeg uses jpg extension",
			url:    "https://news.ycombinator.com",
			format: pxshot.FormatJPEG,
			want:   "ycombinator.com-20250102-150405.jpg",
		},
		{
			name:   "webp extension",
			url:    "https://example.org",
			format: pxshot.FormatWEBP,
			want:   "example.org-20250102-150405.webp",
		},
		{
			name: "unparseable url falls back to screenshot",
			url:  "://not a url",
			want: "screenshot-20250102-150405.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outputNameAt(tt.url, tt.format, now)
			if got != tt.want {
				t.Errorf("outputNameAt(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}
