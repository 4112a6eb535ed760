package sponsorblock

import (
	"errors"
	"fmt"
)

// ServerError reports that the API itself malfunctioned (a 5xx response).
// Callers may treat it as transient; the library performs no retries.
type ServerError struct {
	Status int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("internal API error, with status code %d", e.Status)
}

// ClientError reports a 4xx response. Status 404 is the recognized soft
// case: it means no data matched the query (e.g. a video with no segments)
// and callers usually treat it as an empty result rather than a failure.
// Any other status can mean this library is out of date with the API.
type ClientError struct {
	Status int
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("client HTTP error, with status code %d", e.Status)
}

// UnknownHTTPError reports a status outside the 2xx/4xx/5xx classes the
// library understands, such as an unfollowed redirect.
type UnknownHTTPError struct {
	Status int
}

func (e *UnknownHTTPError) Error() string {
	return fmt.Sprintf("unknown HTTP error, with status code %d", e.Status)
}

// RequestError reports a network or protocol level failure before any HTTP
// status was obtained. It wraps the transport's error.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("unable to communicate with the API: %v", e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// DecodeError reports that a response body did not parse as the expected
// JSON shape. It wraps the decoder's error.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unable to deserialize data from the API: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// MalformedDataError reports that a response parsed but failed semantic
// validation: bad time ordering, negative values, or missing
// mutually-required fields.
type MalformedDataError struct {
	Reason string
}

func (e *MalformedDataError) Error() string {
	return fmt.Sprintf("data received from the API does not meet verification: %s", e.Reason)
}

// UnrecognizedValueError reports an enumeration token outside the library's
// known vocabulary. Encountering one usually means the library is older
// than the API it is talking to.
type UnrecognizedValueError struct {
	// Field names the wire field the token came from, e.g. "category" or
	// "actionType".
	Field string
	// Raw is the offending token.
	Raw string
}

func (e *UnrecognizedValueError) Error() string {
	return fmt.Sprintf("received an unrecognized value of type %q from the API: %q", e.Field, e.Raw)
}

// ErrNoMatchingVideoHash is returned by the privacy-preserving segment
// lookups when the server's candidate hash matches did not include the
// requested video. Multiple candidates sharing a truncated hash prefix is
// expected collision handling, not a server error.
var ErrNoMatchingVideoHash = errors.New("no candidate video matched the requested hash prefix")
