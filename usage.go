package pxshot

import (
	"encoding/json"
	"fmt"
)

// Usage reports API consumption for the current billing period. Storage
// counters are 64-bit; accounts can hold well past 2GiB of stored artifacts.
type Usage struct {
	ScreenshotsTaken  int    `json:"screenshots_taken"`
	ScreenshotsLimit  int    `json:"screenshots_limit"`
	StorageBytesUsed  int64  `json:"storage_bytes_used"`
	StorageBytesLimit int64  `json:"storage_bytes_limit"`
	PeriodStart       string `json:"period_start"` // ISO 8601
	PeriodEnd         string `json:"period_end"`   // ISO 8601
}

// decodeUsage parses a usage response body. All six fields are mandatory.
func decodeUsage(body []byte) (*Usage, error) {
	var raw struct {
		ScreenshotsTaken  *int    `json:"screenshots_taken"`
		ScreenshotsLimit  *int    `json:"screenshots_limit"`
		StorageBytesUsed  *int64  `json:"storage_bytes_used"`
		StorageBytesLimit *int64  `json:"storage_bytes_limit"`
		PeriodStart       *string `json:"period_start"`
		PeriodEnd         *string `json:"period_end"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse usage response: %w", err)
	}

	for field, ok := range map[string]bool{
		"screenshots_taken":   raw.ScreenshotsTaken != nil,
		"screenshots_limit":   raw.ScreenshotsLimit != nil,
		"storage_bytes_used":  raw.StorageBytesUsed != nil,
		"storage_bytes_limit": raw.StorageBytesLimit != nil,
		"period_start":        raw.PeriodStart != nil,
		"period_end":          raw.PeriodEnd != nil,
	} {
		if !ok {
			return nil, fmt.Errorf("failed to parse usage response: missing field %q", field)
		}
	}

	return &Usage{
		ScreenshotsTaken:  *raw.ScreenshotsTaken,
		ScreenshotsLimit:  *raw.ScreenshotsLimit,
		StorageBytesUsed:  *raw.StorageBytesUsed,
		StorageBytesLimit: *raw.StorageBytesLimit,
		PeriodStart:       *raw.PeriodStart,
		PeriodEnd:         *raw.PeriodEnd,
	}, nil
}
