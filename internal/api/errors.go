package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/linhqtruong/productcatalogmanager/pkg/httpclient"
)

// Kind classifies a normalized API failure.
type Kind int

const (
	// KindNetwork: no response reached the client at all.
	KindNetwork Kind = iota
	// KindClient: the backend answered with a 4xx status.
	KindClient
	// KindServer: the backend answered with a 5xx status.
	KindServer
	// KindUnknownHTTP: any other unexpected status.
	KindUnknownHTTP
	// KindLocal: the call failed before a request was even sent.
	KindLocal
)

// Error is the single failure type that crosses the adapter boundary.
// Message is always non-empty and human readable; controllers surface
// it directly without further interpretation.
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
}

func (e *Error) Error() string { return e.Message }

// serverMessage is the error body shape the backend produces: a
// top-level message plus optional field errors on validation failures.
type serverMessage struct {
	Message string `json:"message"`
}

// normalizeStatus maps a received status code and body into an Error.
// A server-supplied message field is interpolated when present,
// otherwise a generic phrase is used. The mapping is total.
func normalizeStatus(status int, body []byte) *Error {
	var sm serverMessage
	_ = json.Unmarshal(body, &sm)

	detail := func(fallback string) string {
		if sm.Message != "" {
			return sm.Message
		}
		return fallback
	}

	switch status {
	case http.StatusBadRequest:
		return &Error{Kind: KindClient, StatusCode: status,
			Message: fmt.Sprintf("Bad Request: %s", detail("Invalid request data"))}
	case http.StatusUnauthorized:
		return &Error{Kind: KindClient, StatusCode: status,
			Message: "Unauthorized: Please log in again"}
	case http.StatusForbidden:
		return &Error{Kind: KindClient, StatusCode: status,
			Message: "Forbidden: You do not have permission to access this resource"}
	case http.StatusNotFound:
		return &Error{Kind: KindClient, StatusCode: status,
			Message: fmt.Sprintf("Not Found: %s", detail("The requested resource was not found"))}
	case http.StatusUnprocessableEntity:
		return &Error{Kind: KindClient, StatusCode: status,
			Message: fmt.Sprintf("Validation Error: %s", detail("Data validation failed"))}
	case http.StatusInternalServerError:
		return &Error{Kind: KindServer, StatusCode: status,
			Message: "Server Error: Please try again later"}
	default:
		kind := KindUnknownHTTP
		if status >= 400 && status < 500 {
			kind = KindClient
		} else if status >= 500 {
			kind = KindServer
		}
		return &Error{Kind: kind, StatusCode: status,
			Message: fmt.Sprintf("HTTP Error %d: %s", status, detail("An unexpected error occurred"))}
	}
}

// normalizeTransport maps a transport-level failure (no usable
// response) into an Error. 5xx responses consumed by the circuit
// breaker arrive here as ServerStatusError and are mapped as if the
// response had been seen directly; everything else either never left
// the machine or died on the wire.
func normalizeTransport(err error) *Error {
	var statusErr *httpclient.ServerStatusError
	if errors.As(err, &statusErr) {
		return normalizeStatus(statusErr.StatusCode, statusErr.Body)
	}
	// An open breaker and a dead wire look the same to the user: the
	// backend could not be reached.
	return &Error{Kind: KindNetwork, Message: "Network Error: Please check your internet connection"}
}

// normalizeLocal maps a failure that happened before any request was
// sent (bad URL, body encoding, response decoding) into an Error.
func normalizeLocal(err error) *Error {
	return &Error{Kind: KindLocal, Message: fmt.Sprintf("Request Error: %v", err)}
}
