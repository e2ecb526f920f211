package llm

import "fmt"

// ConfigurationError indicates the service credential is missing.
// It is raised before any network call is attempted.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// ServiceError represents a non-success response from the generative service
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("service error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("service error: %s", e.Message)
}

// TransportError represents a network failure or timeout reaching the service
type TransportError struct {
	Message string
	Cause   error
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("transport error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("transport error: %s", e.Message)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}
