package ui

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/charmbracelet/huh"
)

// PromptForURL prompts the user for a page URL to capture
func PromptForURL() (string, error) {
	var input string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Enter page URL").
				Description("The page to capture, e.g. https://example.com").
				Placeholder("https://").
				Value(&input).
				Validate(func(s string) error {
					s = strings.TrimSpace(s)
					if s == "" {
						return fmt.Errorf("URL cannot be empty")
					}
					parsed, err := url.Parse(s)
					if err != nil || parsed.Host == "" {
						return fmt.Errorf("invalid URL: use https://host/path")
					}
					if parsed.Scheme != "http" && parsed.Scheme != "https" {
						return fmt.Errorf("URL must be http or https")
					}
					return nil
				}),
		),
	)

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("prompt cancelled: %w", err)
	}

	return strings.TrimSpace(input), nil
}
