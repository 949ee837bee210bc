// Package pxshot is a client for the Pxshot screenshot API
// (https://pxshot.com). It captures rasterized screenshots of web pages and
// reports account usage.
//
// A minimal capture:
//
//	client, err := pxshot.NewClient(os.Getenv("PXSHOT_API_KEY"))
//	if err != nil {
//		// ...
//	}
//	result, err := client.Screenshot(pxshot.ScreenshotOptions{
//		URL: "https://example.com",
//	})
//	if err != nil {
//		// ...
//	}
//	data, err := result.Bytes()
//
// With Store set, the server persists the image and the result instead holds
// a StoredScreenshot descriptor with a time-limited hosted URL.
//
// Failures are typed: *ValidationError for bad input (raised before any
// request), *APIError for error responses from the service, *HTTPError for
// transport failures and unclassifiable HTTP errors. Discriminate with
// errors.As; anything else is a decode or misuse error.
package pxshot
