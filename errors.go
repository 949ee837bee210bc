package pxshot

import "fmt"

// ValidationError reports invalid caller-supplied input. It is returned
// before any network activity takes place.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// HTTPError reports a transport-level failure or an HTTP error status whose
// body was not a recognizable API error envelope. StatusCode is 0 when no
// response was received at all (DNS failure, refused connection, timeout).
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	if e.StatusCode == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// APIError reports an error response from the Pxshot API. Code is the
// machine-readable error code from the response envelope, e.g.
// "quota_exceeded".
type APIError struct {
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// errorEnvelope is the JSON shape the API returns for statuses >= 400.
type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
