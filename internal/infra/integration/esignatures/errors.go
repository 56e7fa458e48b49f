package esignatures

import "fmt"

// ConfigurationError: the API token was never configured. Checked before
// any network call so a misconfigured install fails fast.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

func IsConfigurationError(err error) bool {
	_, ok := err.(*ConfigurationError)
	return ok
}

// UpstreamError: the vendor answered with a non-success status, or with a
// body missing fields we depend on. Carries the raw response body so the
// caller can surface what the vendor actually said.
type UpstreamError struct {
	StatusCode int
	Body       string
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (status %d): %s", e.Message, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: %s", e.Message, e.Body)
}

func IsUpstreamError(err error) bool {
	_, ok := err.(*UpstreamError)
	return ok
}
