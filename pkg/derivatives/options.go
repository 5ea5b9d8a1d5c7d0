package derivatives

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"fapi/pkg/core"
)

// Option is a functional option for configuring the Client.
type Option func(*Options)

// Options holds configuration options for the Client.
type Options struct {
	Signer     core.Signer
	HTTPClient *http.Client
	Logger     zerolog.Logger
	Clock      func() time.Time
}

// WithSigner returns an option that sets the signer used for signed endpoints.
// It takes precedence over Credentials.SecretKey.
func WithSigner(s core.Signer) Option {
	return func(o *Options) {
		o.Signer = s
	}
}

// WithHTTPClient returns an option that shares an existing transport instance.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *Options) {
		o.HTTPClient = hc
	}
}

// WithLogger returns an option that sets the logger for the client.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithClock returns an option that sets the timestamp source of signed requests.
func WithClock(clock func() time.Time) Option {
	return func(o *Options) {
		o.Clock = clock
	}
}

// CallOption sets an optional query parameter of a single call.
type CallOption func(*CallOptions)

// CallOptions holds the optional query parameters of a call. Nil fields are omitted.
type CallOptions struct {
	Limit     *int
	StartTime *time.Time
	EndTime   *time.Time
}

// WithLimit sets the limit parameter.
func WithLimit(limit int) CallOption {
	return func(o *CallOptions) {
		o.Limit = &limit
	}
}

// WithStartTime sets the startTime parameter.
func WithStartTime(start time.Time) CallOption {
	return func(o *CallOptions) {
		o.StartTime = &start
	}
}

// WithEndTime sets the endTime parameter.
func WithEndTime(end time.Time) CallOption {
	return func(o *CallOptions) {
		o.EndTime = &end
	}
}

// WithTimeRange sets both startTime and endTime.
func WithTimeRange(start, end time.Time) CallOption {
	return func(o *CallOptions) {
		o.StartTime = &start
		o.EndTime = &end
	}
}

func applyCallOptions(opts ...CallOption) *CallOptions {
	o := &CallOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
