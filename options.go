package pxshot

// Format is the image format for a screenshot.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatWEBP Format = "webp"
)

// WaitUntil selects when navigation is considered complete.
type WaitUntil string

const (
	WaitUntilLoad             WaitUntil = "load"             // window.onload event
	WaitUntilDOMContentLoaded WaitUntil = "domcontentloaded" // DOMContentLoaded event
	WaitUntilNetworkIdle      WaitUntil = "networkidle"      // no network activity for 500ms
	WaitUntilCommit           WaitUntil = "commit"           // first network response
)

// ScreenshotOptions configures a screenshot request. URL is required; every
// other field is optional and is omitted from the request payload when unset,
// so the server applies its own defaults. Use the Int, Bool and Float64
// helpers for literal values.
type ScreenshotOptions struct {
	URL               string    `json:"url"`
	Format            Format    `json:"format,omitempty"`
	Quality           *int      `json:"quality,omitempty"`             // JPEG/WEBP quality 0-100
	Width             *int      `json:"width,omitempty"`               // viewport width in pixels
	Height            *int      `json:"height,omitempty"`              // viewport height in pixels
	FullPage          *bool     `json:"full_page,omitempty"`           // capture full scrollable page
	WaitUntil         WaitUntil `json:"wait_until,omitempty"`          // navigation wait condition
	WaitForSelector   string    `json:"wait_for_selector,omitempty"`   // wait for CSS selector
	WaitForTimeout    *int      `json:"wait_for_timeout,omitempty"`    // additional wait in ms
	DeviceScaleFactor *float64  `json:"device_scale_factor,omitempty"` // device pixel ratio
	Store             *bool     `json:"store,omitempty"`               // store and return URL
	BlockAds          *bool     `json:"block_ads,omitempty"`           // block ads and trackers
}

// Int returns a pointer to v for use in ScreenshotOptions.
func Int(v int) *int { return &v }

// Bool returns a pointer to v for use in ScreenshotOptions.
func Bool(v bool) *bool { return &v }

// Float64 returns a pointer to v for use in ScreenshotOptions.
func Float64(v float64) *float64 { return &v }
