package main

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	pxshot "github.com/pxshot/pxshot-go"
	"golang.org/x/net/publicsuffix"
)

// defaultOutputName derives an output filename from the captured URL's
// registered domain, e.g. "https://playground.bfl.ai/x" -> "bfl.ai-<ts>.png".
func defaultOutputName(rawURL string, format pxshot.Format) string {
	return outputNameAt(rawURL, format, time.Now())
}

func outputNameAt(rawURL string, format pxshot.Format, now time.Time) string {
	name := "screenshot"

	if parsed, err := url.Parse(rawURL); err == nil && parsed.Hostname() != "" {
		host := strings.ToLower(parsed.Hostname())
		if domain, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
			name = domain
		} else {
			name = host
		}
	}

	return fmt.Sprintf("%s-%s.%s", name, now.Format("20060102-150405"), extension(format))
}

// extension maps an image format to its conventional file extension
func extension(format pxshot.Format) string {
	switch format {
	case pxshot.FormatJPEG:
		return "jpg"
	case pxshot.FormatWEBP:
		return "webp"
	default:
		return "png"
	}
}
