// ABOUTME: Error taxonomy for the AI gateway.
// ABOUTME: Extraction, parse, and service failures are distinct and terminal.
package gateway

import (
	"errors"
	"fmt"
)

// ErrExtraction means a report upload produced zero parsable lab fields.
// An unreadable image and a genuinely empty report are indistinguishable,
// so both are treated as failure.
var ErrExtraction = errors.New("could not read report: no recognizable lab values found")

// ParseError means a model response did not contain the expected JSON
// shape. Raw holds the offending response text for logs, never for users.
type ParseError struct {
	What string
	Raw  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("model response did not contain a valid %s", e.What)
}

// ServiceError wraps a transport or service failure from the external
// model. A single attempt is made; retries are left to the user.
type ServiceError struct {
	Op  string
	Err error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("ai service unavailable during %s: %v", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }
