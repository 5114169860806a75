package recommend

import "fmt"

// ValidationError reports a rejected request. It maps to HTTP 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// UpstreamDataError wraps an analytical-store failure. It maps to HTTP 500.
type UpstreamDataError struct {
	Err error
}

func (e *UpstreamDataError) Error() string {
	return fmt.Sprintf("reference data: %v", e.Err)
}

func (e *UpstreamDataError) Unwrap() error {
	return e.Err
}

// UpstreamModelError wraps a generative-service failure. It maps to HTTP 500.
type UpstreamModelError struct {
	Err error
}

func (e *UpstreamModelError) Error() string {
	return fmt.Sprintf("model invocation: %v", e.Err)
}

func (e *UpstreamModelError) Unwrap() error {
	return e.Err
}
