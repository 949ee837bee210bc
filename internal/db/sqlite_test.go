package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/pxshot/pxshot-go/internal/models"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	database, err := New(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func TestInsertAndListCaptures(t *testing.T) {
	database := newTestDB(t)

	captures := []models.Capture{
		{
			URL:        "https://example.com",
			OutputPath: "example.com-20250101.png",
			Width:      1280,
			Height:     720,
			SizeBytes:  54321,
			Format:     "png",
			CreatedAt:  time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			URL:       "https://news.ycombinator.com",
			StoredURL: "https://cdn.example/s/abc.png",
			ExpiresAt: "2025-02-01T00:00:00Z",
			Width:     1920,
			Height:    1080,
			SizeBytes: 99999,
			Format:    "jpeg",
			CreatedAt: time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC),
		},
	}

	for _, c := range captures {
		if _, err := database.InsertCapture(c); err != nil {
			t.Fatalf("InsertCapture() error = %v", err)
		}
	}

	got, err := database.ListCaptures(models.CaptureFilter{})
	if err != nil {
		t.Fatalf("ListCaptures() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListCaptures() returned %d captures, want 2", len(got))
	}

	// Newest first
	if got[0].URL != "https://news.ycombinator.com" {
		t.Errorf("first capture URL = %q, want newest", got[0].URL)
	}
	if got[0].StoredURL != "https://cdn.example/s/abc.png" {
		t.Errorf("StoredURL = %q", got[0].StoredURL)
	}
	if got[1].OutputPath != "example.com-20250101.png" {
		t.Errorf("OutputPath = %q", got[1].OutputPath)
	}
	if got[1].SizeBytes != 54321 {
		t.Errorf("SizeBytes = %d, want 54321", got[1].SizeBytes)
	}
}

func TestListCapturesFiltered(t *testing.T) {
	database := newTestDB(t)

	urls := []string{"https://example.com", "https://example.org", "https://golang.org"}
	for _, u := range urls {
		c := models.Capture{URL: u, Format: "png"}
		if u == "https://golang.org" {
			c.StoredURL = "https://cdn.example/s/go.png"
		}
		if _, err := database.InsertCapture(c); err != nil {
			t.Fatalf("InsertCapture() error = %v", err)
		}
	}

	tests := []struct {
		name   string
		filter models.CaptureFilter
		want   int
	}{
		{"no filter", models.CaptureFilter{}, 3},
		{"url substring", models.CaptureFilter{SearchText: "example"}, 2},
		{"stored only", models.CaptureFilter{StoredOnly: true}, 1},
		{"limit", models.CaptureFilter{Limit: 1}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := database.ListCaptures(tt.filter)
			if err != nil {
				t.Fatalf("ListCaptures() error = %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("ListCaptures() returned %d captures, want %d", len(got), tt.want)
			}
		})
	}

	count, err := database.CaptureCount()
	if err != nil {
		t.Fatalf("CaptureCount() error = %v", err)
	}
	if count != 3 {
		t.Errorf("CaptureCount() = %d, want 3", count)
	}
}
