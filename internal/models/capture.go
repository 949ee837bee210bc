package models

import "time"

// Capture is one recorded screenshot capture, either saved to a local file
// or stored by the API under a hosted URL.
type Capture struct {
	ID         int64
	URL        string
	OutputPath string // local file the image was written to ("" for stored captures)
	StoredURL  string // hosted URL ("" for local captures)
	ExpiresAt  string // ISO 8601, only set for stored captures
	Width      int
	Height     int
	SizeBytes  int64
	Format     string
	CreatedAt  time.Time
}

// CaptureFilter holds filter criteria for querying capture history.
type CaptureFilter struct {
	SearchText string // filter by URL substring
	StoredOnly bool
	Limit      int
	Offset     int
}
