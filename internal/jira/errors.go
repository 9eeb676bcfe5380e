package jira

import "fmt"

// TransportError covers network failures, timeouts, and non-success HTTP
// responses. Message carries the upstream error description when the error
// body was parseable, otherwise a generic one.
type TransportError struct {
	Status  int // 0 when the request never produced a response
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return fmt.Sprintf("request failed: %v", e.Err)
	}
	return fmt.Sprintf("unexpected status %d from Jira", e.Status)
}

func (e *TransportError) Unwrap() error { return e.Err }

// MalformedResponseError means the request succeeded but the body was not
// valid JSON or lacked the envelope shape for the configured API version.
type MalformedResponseError struct {
	Reason string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed response: %s: %v", e.Reason, e.Err)
	}
	return "malformed response: " + e.Reason
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }
