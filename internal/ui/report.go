package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	pxshot "github.com/pxshot/pxshot-go"
)

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	successStyle := lipgloss.NewStyle().
		Foreground(ColorSuccess).
		Bold(true)
	fmt.Println(successStyle.Render(message))
}

// PrintError prints an error message
func PrintError(message string) {
	errorStyle := lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)
	fmt.Println(errorStyle.Render("Error: " + message))
}

// PrintInfo prints a dimmed informational message
func PrintInfo(message string) {
	fmt.Println(HintStyle.Render(message))
}

// PrintStored prints the descriptor of a server-stored screenshot
func PrintStored(stored *pxshot.StoredScreenshot) {
	fmt.Println(TitleStyle.Render("Screenshot stored"))
	fmt.Printf("  %s %s\n", AccentStyle.Render("URL:"), stored.URL)
	fmt.Printf("  %s %s\n", AccentStyle.Render("Expires:"), stored.ExpiresAt)
	fmt.Printf("  %s %dx%d\n", AccentStyle.Render("Dimensions:"), stored.Width, stored.Height)
	fmt.Printf("  %s %s\n", AccentStyle.Render("Size:"), FormatBytes(stored.SizeBytes))
}

// PrintUsage prints quota statistics for the current billing period
func PrintUsage(usage *pxshot.Usage) {
	fmt.Println(TitleStyle.Render("Pxshot usage"))

	fmt.Println(AccentStyle.Render("Screenshots"))
	fmt.Printf("  Used:      %d\n", usage.ScreenshotsTaken)
	fmt.Printf("  Limit:     %d\n", usage.ScreenshotsLimit)
	fmt.Printf("  Remaining: %d\n", usage.ScreenshotsLimit-usage.ScreenshotsTaken)
	fmt.Println()

	fmt.Println(AccentStyle.Render("Storage"))
	fmt.Printf("  Used:  %s\n", FormatBytes(usage.StorageBytesUsed))
	fmt.Printf("  Limit: %s\n", FormatBytes(usage.StorageBytesLimit))
	fmt.Println()

	fmt.Println(AccentStyle.Render("Billing period"))
	fmt.Printf("  Start: %s\n", usage.PeriodStart)
	fmt.Printf("  End:   %s\n", usage.PeriodEnd)
}

// FormatBytes renders a byte count in a human-friendly unit
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
