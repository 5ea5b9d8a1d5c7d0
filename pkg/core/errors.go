package core

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/bytedance/sonic"
)

// ErrorType represents the category of an API error.
type ErrorType int

// Error type constants categorize API errors for caller-side handling.
const (
	// ErrorTypeUnknown indicates an unclassified error.
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeRateLimit indicates the request weight limit was exceeded or the IP was banned.
	ErrorTypeRateLimit
	// ErrorTypeAuthentication indicates a missing, invalid or unauthorized API key or signature.
	ErrorTypeAuthentication
	// ErrorTypeBadRequest indicates invalid request parameters.
	ErrorTypeBadRequest
	// ErrorTypeNotFound indicates the requested path does not exist.
	ErrorTypeNotFound
	// ErrorTypeServerError indicates a server-side error.
	ErrorTypeServerError
)

// String returns the string representation of the error type.
func (t ErrorType) String() string {
	names := [...]string{
		"UNKNOWN",
		"RATE_LIMIT",
		"AUTHENTICATION",
		"BAD_REQUEST",
		"NOT_FOUND",
		"SERVER_ERROR",
	}
	if t < 0 || int(t) >= len(names) {
		return names[ErrorTypeUnknown]
	}
	return names[t]
}

// Sentinel errors for local preconditions. None of them involve network traffic.
var (
	// ErrClientClosed is returned when attempting to use a closed client.
	ErrClientClosed = errors.New("client is closed")
	// ErrNoCredentials is returned when an authenticated call lacks an API key or signer.
	ErrNoCredentials = errors.New("no credentials configured")
	// ErrMissingParameter is returned when a required parameter is empty.
	ErrMissingParameter = errors.New("missing required parameter")
	// ErrInvalidParameter is returned when a parameter is outside its enumeration.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// APIError is returned when the server answers with a non-2xx status.
type APIError struct {
	// StatusCode is the HTTP status code from the response.
	StatusCode int `json:"status_code"`
	// Body is the raw response body.
	Body string `json:"body"`
	// Code is the Binance error code, zero when the body carries none.
	Code int `json:"code"`
	// Message is the Binance error message, empty when the body carries none.
	Message string `json:"msg"`
}

type binanceAPIError struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// NewAPIError builds an APIError and extracts the Binance code and message from body
// when it is a {"code":..,"msg":..} document.
func NewAPIError(statusCode int, body string) *APIError {
	e := &APIError{
		StatusCode: statusCode,
		Body:       body,
	}
	var payload binanceAPIError
	if err := sonic.UnmarshalString(body, &payload); err == nil {
		e.Code = payload.Code
		e.Message = payload.Msg
	}
	return e
}

// Error implements the error interface for APIError.
func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("binance api error (%d/%d): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("binance api error (%d): %s", e.StatusCode, e.Body)
}

// Type classifies the error from its Binance code first and its HTTP status second.
func (e *APIError) Type() ErrorType {
	switch e.Code {
	case CodeTooManyRequests, CodeTooManyOrders:
		return ErrorTypeRateLimit
	case CodeUnauthorized, CodeInvalidSignature, CodeBadAPIKeyFormat, CodeRejectedMBXKey:
		return ErrorTypeAuthentication
	}
	if e.Code <= badRequestRangeStart && e.Code >= badRequestRangeFinish {
		return ErrorTypeBadRequest
	}

	switch {
	case e.StatusCode == http.StatusTooManyRequests, e.StatusCode == http.StatusTeapot:
		return ErrorTypeRateLimit
	case e.StatusCode == http.StatusUnauthorized, e.StatusCode == http.StatusForbidden:
		return ErrorTypeAuthentication
	case e.StatusCode == http.StatusNotFound:
		return ErrorTypeNotFound
	case e.StatusCode >= 500:
		return ErrorTypeServerError
	case e.StatusCode >= 400:
		return ErrorTypeBadRequest
	default:
		return ErrorTypeUnknown
	}
}

// TransportError is returned when no HTTP response was received.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

// NewTransportError wraps err as a TransportError for the given request.
func NewTransportError(method, path string, err error) *TransportError {
	return &TransportError{
		Method: method,
		Path:   path,
		Err:    err,
	}
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the round trip was aborted by a deadline.
func (e *TransportError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// IsAPIError returns true if err is or wraps an APIError.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// IsTransportError returns true if err is or wraps a TransportError.
func IsTransportError(err error) bool {
	var tErr *TransportError
	return errors.As(err, &tErr)
}

// IsRateLimitError returns true if err is an APIError caused by request weight limits.
// Callers should back off before retrying.
func IsRateLimitError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Type() == ErrorTypeRateLimit
	}
	return false
}

// IsAuthenticationError returns true if err is an APIError caused by credentials.
func IsAuthenticationError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Type() == ErrorTypeAuthentication
	}
	return false
}

// IsTimeoutError returns true if err is a TransportError caused by a deadline.
func IsTimeoutError(err error) bool {
	var tErr *TransportError
	if errors.As(err, &tErr) {
		return tErr.Timeout()
	}
	return false
}
