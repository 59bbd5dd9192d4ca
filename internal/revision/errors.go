package revision

import "fmt"

// ErrNoUnlockedSections indicates a job had nothing for the assistant to change
type ErrNoUnlockedSections struct {
	DocumentID string
}

func (e *ErrNoUnlockedSections) Error() string {
	return fmt.Sprintf("document %s has no unlocked sections to revise", e.DocumentID)
}

// StoreError represents a persistence failure during job execution
type StoreError struct {
	Op    string
	Cause error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store operation %s failed: %v", e.Op, e.Cause)
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}

// RequestError represents an invalid job request
type RequestError struct {
	Message string
	Cause   error
}

func (e *RequestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid job request: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid job request: %s", e.Message)
}

func (e *RequestError) Unwrap() error {
	return e.Cause
}
