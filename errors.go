package worldtides

import "fmt"

// TransportError indicates the outbound call itself failed: connection,
// DNS, timeout. The response never arrived.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("worldtides transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func NewTransportError(err error) *TransportError {
	return &TransportError{Err: err}
}

// ResponseError indicates the call completed but the response was not usable:
// a non-success HTTP status, or a success with a missing or undecodable body.
type ResponseError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *ResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("worldtides api error (status %d): %s: %v", e.StatusCode, e.Message, e.Err)
	}
	return fmt.Sprintf("worldtides api error (status %d): %s", e.StatusCode, e.Message)
}

func (e *ResponseError) Unwrap() error {
	return e.Err
}

func NewResponseError(statusCode int, message string, err error) *ResponseError {
	return &ResponseError{
		StatusCode: statusCode,
		Message:    message,
		Err:        err,
	}
}

// RequestError reports an invalid request before anything is sent.
type RequestError struct {
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

func NewRequestError(message string) *RequestError {
	return &RequestError{Message: message}
}

// DateParseError reports a response timestamp that did not match the API
// date format.
type DateParseError struct {
	Value string
	Err   error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("parsing api date %q: %v", e.Value, e.Err)
}

func (e *DateParseError) Unwrap() error {
	return e.Err
}

func NewDateParseError(value string, err error) *DateParseError {
	return &DateParseError{Value: value, Err: err}
}
