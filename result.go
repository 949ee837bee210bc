package pxshot

import (
	"encoding/json"
	"fmt"
)

// StoredScreenshot describes a screenshot the server persisted and hosts
// under a time-limited URL.
type StoredScreenshot struct {
	URL       string `json:"url"`
	ExpiresAt string `json:"expires_at"` // ISO 8601 expiration timestamp
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	SizeBytes int64  `json:"size_bytes"`
}

// ScreenshotResult holds the outcome of a screenshot request: either the raw
// image bytes, or a StoredScreenshot descriptor when the server persisted the
// artifact. Exactly one of the two variants is present.
type ScreenshotResult struct {
	bytes  []byte
	stored *StoredScreenshot
}

// IsStored reports whether the result holds a stored screenshot descriptor.
func (r *ScreenshotResult) IsStored() bool {
	return r.stored != nil
}

// IsBytes reports whether the result holds raw image bytes.
func (r *ScreenshotResult) IsBytes() bool {
	return r.stored == nil
}

// Bytes returns the raw image bytes. It fails when the screenshot was stored
// server-side; use Stored instead.
func (r *ScreenshotResult) Bytes() ([]byte, error) {
	if r.stored != nil {
		return nil, fmt.Errorf("screenshot was stored, use Stored instead")
	}
	return r.bytes, nil
}

// Stored returns the stored screenshot descriptor. It fails when the result
// holds raw bytes; use Bytes instead.
func (r *ScreenshotResult) Stored() (*StoredScreenshot, error) {
	if r.stored == nil {
		return nil, fmt.Errorf("screenshot was not stored, use Bytes instead")
	}
	return r.stored, nil
}

// decodeStoredScreenshot parses a stored-screenshot response body. All five
// fields are mandatory; a missing or mistyped field is a decode error.
func decodeStoredScreenshot(body []byte) (*StoredScreenshot, error) {
	var raw struct {
		URL       *string `json:"url"`
		ExpiresAt *string `json:"expires_at"`
		Width     *int    `json:"width"`
		Height    *int    `json:"height"`
		SizeBytes *int64  `json:"size_bytes"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse stored screenshot response: %w", err)
	}

	for field, ok := range map[string]bool{
		"url":        raw.URL != nil,
		"expires_at": raw.ExpiresAt != nil,
		"width":      raw.Width != nil,
		"height":     raw.Height != nil,
		"size_bytes": raw.SizeBytes != nil,
	} {
		if !ok {
			return nil, fmt.Errorf("failed to parse stored screenshot response: missing field %q", field)
		}
	}

	return &StoredScreenshot{
		URL:       *raw.URL,
		ExpiresAt: *raw.ExpiresAt,
		Width:     *raw.Width,
		Height:    *raw.Height,
		SizeBytes: *raw.SizeBytes,
	}, nil
}
