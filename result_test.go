package pxshot

import (
	"strings"
	"testing"
)

// TestResultVariantExclusivity verifies IsBytes and IsStored never agree and
// that reading the wrong variant fails with a message naming the other one.
func TestResultVariantExclusivity(t *testing.T) {
	bytesResult := &ScreenshotResult{bytes: []byte{0x89, 0x50, 0x4E, 0x47}}
	storedResult := &ScreenshotResult{stored: &StoredScreenshot{URL: "https://cdn.example/s/abc.png"}}

	if bytesResult.IsBytes() == bytesResult.IsStored() {
		t.Error("bytes result: IsBytes and IsStored must disagree")
	}
	if storedResult.IsBytes() == storedResult.IsStored() {
		t.Error("stored result: IsBytes and IsStored must disagree")
	}

	if _, err := bytesResult.Bytes(); err != nil {
		t.Errorf("Bytes() on bytes result: %v", err)
	}
	if _, err := storedResult.Stored(); err != nil {
		t.Errorf("Stored() on stored result: %v", err)
	}

	if _, err := bytesResult.Stored(); err == nil {
		t.Error("Stored() on bytes result should fail")
	} else if !strings.Contains(err.Error(), "Bytes") {
		t.Errorf("Stored() error should name the Bytes accessor, got %q", err)
	}

	if _, err := storedResult.Bytes(); err == nil {
		t.Error("Bytes() on stored result should fail")
	} else if !strings.Contains(err.Error(), "Stored") {
		t.Errorf("Bytes() error should name the Stored accessor, got %q", err)
	}
}

// TestDecodeStoredScreenshot verifies the mandatory-field rule for stored
// screenshot descriptors.
func TestDecodeStoredScreenshot(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name: "complete",
			body: `{"url":"https://cdn.example/s/abc.png","expires_at":"2025-01-01T00:00:00Z","width":1280,"height":720,"size_bytes":12345}`,
		},
		{
			name:    "missing expires_at",
			body:    `{"url":"https://cdn.example/s/abc.png","width":1280,"height":720,"size_bytes":12345}`,
			wantErr: "expires_at",
		},
		{
			name:    "missing size_bytes",
			body:    `{"url":"https://cdn.example/s/abc.png","expires_at":"2025-01-01T00:00:00Z","width":1280,"height":720}`,
			wantErr: "size_bytes",
		},
		{
			name:    "width has wrong type",
			body:    `{"url":"https://cdn.example/s/abc.png","expires_at":"2025-01-01T00:00:00Z","width":"wide","height":720,"size_bytes":12345}`,
			wantErr: "parse",
		},
		{
			name:    "not JSON",
			body:    `PNG...`,
			wantErr: "parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stored, err := decodeStoredScreenshot([]byte(tt.body))
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("decodeStoredScreenshot() error = %v", err)
				}
				if stored.URL != "https://cdn.example/s/abc.png" || stored.Width != 1280 ||
					stored.Height != 720 || stored.SizeBytes != 12345 ||
					stored.ExpiresAt != "2025-01-01T00:00:00Z" {
					t.Errorf("decodeStoredScreenshot() = %+v", stored)
				}
				return
			}
			if err == nil {
				t.Fatal("decodeStoredScreenshot() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

// TestDecodeUsage verifies the mandatory-field rule for usage responses.
func TestDecodeUsage(t *testing.T) {
	body := `{"screenshots_taken":42,"screenshots_limit":500,"storage_bytes_used":1048576,"storage_bytes_limit":5368709120,"period_start":"2025-01-01T00:00:00Z","period_end":"2025-02-01T00:00:00Z"}`

	usage, err := decodeUsage([]byte(body))
	if err != nil {
		t.Fatalf("decodeUsage() error = %v", err)
	}
	if usage.ScreenshotsTaken != 42 || usage.ScreenshotsLimit != 500 {
		t.Errorf("screenshot counters = %d/%d", usage.ScreenshotsTaken, usage.ScreenshotsLimit)
	}
	if usage.StorageBytesLimit != 5368709120 {
		t.Errorf("StorageBytesLimit = %d, want 5368709120 (must not truncate to 32 bits)", usage.StorageBytesLimit)
	}
	if usage.PeriodStart != "2025-01-01T00:00:00Z" || usage.PeriodEnd != "2025-02-01T00:00:00Z" {
		t.Errorf("period = %q..%q", usage.PeriodStart, usage.PeriodEnd)
	}

	if _, err := decodeUsage([]byte(`{"screenshots_taken":42}`)); err == nil {
		t.Error("decodeUsage() with missing fields should fail")
	}
}
