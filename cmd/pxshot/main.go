package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	pxshot "github.com/pxshot/pxshot-go"
	"github.com/pxshot/pxshot-go/internal/config"
	"github.com/pxshot/pxshot-go/internal/db"
	"github.com/pxshot/pxshot-go/internal/models"
	"github.com/pxshot/pxshot-go/internal/ui"
)

func main() {
	// Load .env file if it exists (silently ignore if not found)
	_ = godotenv.Load()

	// Parse command line flags
	urlFlag := flag.String("url", "", "Page URL to capture")
	outFlag := flag.String("out", "", "Output file (default: <domain>-<timestamp>.<ext>)")
	formatFlag := flag.String("format", "", "Image format: png, jpeg or webp")
	qualityFlag := flag.Int("quality", -1, "JPEG/WEBP quality 0-100")
	widthFlag := flag.Int("width", 0, "Viewport width in pixels")
	heightFlag := flag.Int("height", 0, "Viewport height in pixels")
	fullPageFlag := flag.Bool("full-page", false, "Capture the full scrollable page")
	waitUntilFlag := flag.String("wait-until", "", "Navigation wait condition: load, domcontentloaded, networkidle or commit")
	waitForFlag := flag.String("wait-for", "", "CSS selector to wait for")
	waitTimeoutFlag := flag.Int("wait-timeout", 0, "Additional wait in milliseconds")
	scaleFlag := flag.Float64("scale", 0, "Device scale factor")
	storeFlag := flag.Bool("store", false, "Store the screenshot server-side and print its URL")
	blockAdsFlag := flag.Bool("block-ads", false, "Block ads and trackers")
	usageFlag := flag.Bool("usage", false, "Show API usage statistics")
	historyFlag := flag.Bool("history", false, "Browse capture history")
	searchFlag := flag.String("search", "", "Filter history by URL substring")
	keyFlag := flag.String("key", "", "Pxshot API key (overrides PXSHOT_API_KEY and config file)")
	configFlag := flag.String("config", "", "Path to config file (default: ~/.config/pxshot/config.toml)")
	dbFlag := flag.String("db", "", "Path to history database (overrides config file)")
	timeoutFlag := flag.Int("timeout", 0, "Request timeout in seconds")
	verboseFlag := flag.Bool("verbose", false, "Log requests to stderr")
	flag.Parse()

	// Also accept the URL as a positional argument
	if *urlFlag == "" && flag.NArg() > 0 {
		*urlFlag = flag.Arg(0)
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		ui.PrintError(fmt.Sprintf("Failed to load config: %v", err))
		os.Exit(1)
	}

	dbPath := cfg.HistoryDB
	if *dbFlag != "" {
		dbPath = *dbFlag
	}

	// History browsing needs no API key
	if *historyFlag {
		if err := browseHistory(dbPath, *searchFlag); err != nil {
			ui.PrintError(err.Error())
			os.Exit(1)
		}
		return
	}

	client, err := newClient(cfg, *keyFlag, *timeoutFlag, *verboseFlag)
	if err != nil {
		ui.PrintError(err.Error())
		os.Exit(1)
	}

	if *usageFlag {
		if err := showUsage(client); err != nil {
			reportAPIFailure(err)
			os.Exit(1)
		}
		return
	}

	// Default mode: capture a screenshot, prompting for the URL if needed
	pageURL := *urlFlag
	if pageURL == "" {
		pageURL, err = ui.PromptForURL()
		if err != nil {
			ui.PrintError(err.Error())
			os.Exit(1)
		}
	}

	options := pxshot.ScreenshotOptions{URL: pageURL}
	if *formatFlag != "" {
		options.Format = pxshot.Format(*formatFlag)
	}
	if *qualityFlag >= 0 {
		options.Quality = pxshot.Int(*qualityFlag)
	}
	if *widthFlag != 0 {
		options.Width = pxshot.Int(*widthFlag)
	}
	if *heightFlag != 0 {
		options.Height = pxshot.Int(*heightFlag)
	}
	if *fullPageFlag {
		options.FullPage = pxshot.Bool(true)
	}
	if *waitUntilFlag != "" {
		options.WaitUntil = pxshot.WaitUntil(*waitUntilFlag)
	}
	if *waitForFlag != "" {
		options.WaitForSelector = *waitForFlag
	}
	if *waitTimeoutFlag != 0 {
		options.WaitForTimeout = pxshot.Int(*waitTimeoutFlag)
	}
	if *scaleFlag != 0 {
		options.DeviceScaleFactor = pxshot.Float64(*scaleFlag)
	}
	if *storeFlag {
		options.Store = pxshot.Bool(true)
	}
	if *blockAdsFlag {
		options.BlockAds = pxshot.Bool(true)
	}

	if err := capture(client, options, *outFlag, dbPath); err != nil {
		reportAPIFailure(err)
		os.Exit(1)
	}
}

// newClient builds the API client from config file, environment and flags.
// Flag beats environment beats config file.
func newClient(cfg config.Config, keyFlag string, timeoutFlag int, verbose bool) (*pxshot.Client, error) {
	apiKey := keyFlag
	if apiKey == "" {
		apiKey = os.Getenv("PXSHOT_API_KEY")
	}
	if apiKey == "" {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		return nil, fmt.Errorf("no API key: use -key, set PXSHOT_API_KEY, or add api_key to the config file")
	}

	timeout := timeoutFlag
	if timeout == 0 {
		timeout = cfg.TimeoutSeconds
	}

	clientConfig := pxshot.ClientConfig{
		APIKey:         apiKey,
		BaseURL:        cfg.BaseURL,
		TimeoutSeconds: timeout,
		UserAgent:      cfg.UserAgent,
	}
	if verbose {
		clientConfig.Logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "pxshot",
		})
	}

	return pxshot.NewClientWithConfig(clientConfig)
}

// capture runs the screenshot request, writes or reports the result, and
// records it in the history database.
func capture(client *pxshot.Client, options pxshot.ScreenshotOptions, outPath, dbPath string) error {
	var result *pxshot.ScreenshotResult
	var captureErr error

	err := ui.RunWithSpinner("Capturing "+options.URL+"...", func() {
		result, captureErr = client.Screenshot(options)
	})
	if err != nil {
		return err
	}
	if captureErr != nil {
		return captureErr
	}

	record := models.Capture{
		URL:    options.URL,
		Format: string(options.Format),
	}

	if result.IsStored() {
		stored, err := result.Stored()
		if err != nil {
			return err
		}
		ui.PrintStored(stored)
		record.StoredURL = stored.URL
		record.ExpiresAt = stored.ExpiresAt
		record.Width = stored.Width
		record.Height = stored.Height
		record.SizeBytes = stored.SizeBytes
	} else {
		data, err := result.Bytes()
		if err != nil {
			return err
		}
		if outPath == "" {
			outPath = defaultOutputName(options.URL, options.Format)
		}
		if err := os.WriteFile(outPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", outPath, err)
		}
		ui.PrintSuccess(fmt.Sprintf("Saved %s (%s)", outPath, ui.FormatBytes(int64(len(data)))))
		record.OutputPath = outPath
		record.SizeBytes = int64(len(data))
	}

	// History recording is best-effort; a failed insert should not fail the
	// capture that already succeeded
	database, err := db.New(dbPath)
	if err != nil {
		ui.PrintInfo(fmt.Sprintf("history not recorded: %v", err))
		return nil
	}
	defer database.Close()
	if _, err := database.InsertCapture(record); err != nil {
		ui.PrintInfo(fmt.Sprintf("history not recorded: %v", err))
	}

	return nil
}

func showUsage(client *pxshot.Client) error {
	var usage *pxshot.Usage
	var usageErr error

	err := ui.RunWithSpinner("Fetching usage...", func() {
		usage, usageErr = client.Usage()
	})
	if err != nil {
		return err
	}
	if usageErr != nil {
		return usageErr
	}

	ui.PrintUsage(usage)
	return nil
}

func browseHistory(dbPath, search string) error {
	database, err := db.New(dbPath)
	if err != nil {
		return err
	}
	defer database.Close()

	captures, err := database.ListCaptures(models.CaptureFilter{SearchText: search})
	if err != nil {
		return err
	}
	if len(captures) == 0 {
		ui.PrintInfo("No captures recorded yet.")
		return nil
	}

	return ui.RunHistoryBrowser(captures)
}

// reportAPIFailure prints an error with its taxonomy-specific details
func reportAPIFailure(err error) {
	var apiErr *pxshot.APIError
	var httpErr *pxshot.HTTPError
	var validationErr *pxshot.ValidationError

	switch {
	case errors.As(err, &apiErr):
		ui.PrintError(fmt.Sprintf("API error [%s]: %s", apiErr.Code, apiErr.Message))
	case errors.As(err, &httpErr):
		ui.PrintError(fmt.Sprintf("HTTP error (status %d): %s", httpErr.StatusCode, httpErr.Message))
	case errors.As(err, &validationErr):
		ui.PrintError("Invalid options: " + validationErr.Message)
	default:
		ui.PrintError(err.Error())
	}
}
