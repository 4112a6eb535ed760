// Package sponsorblock is a typed client for the SponsorBlock crowdsourced
// video-segment-classification API. It converts between the API's wire
// tokens and typed categories/actions, validates and reshapes segment
// records into a consistent domain model, and exposes one method per API
// endpoint. The client is immutable after construction and safe for
// concurrent use.
package sponsorblock

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/segmentskip/sponsorblock-go/pkg/hash"
)

// Version is the library version, used in the default User-Agent.
const Version = "0.4.0"

const (
	// BaseURLMain is the base URL of the official SponsorBlock API. This is
	// the default.
	BaseURLMain = "https://sponsor.ajay.app/api"
	// BaseURLTesting is the base URL of the SponsorBlock testing database.
	BaseURLTesting = "https://sponsor.ajay.app/test/api"
	// DefaultService is the default service discriminator sent with
	// segment queries.
	DefaultService = "YouTube"
	// DefaultHashPrefixLength is the default number of hash characters
	// sent for privacy-preserving lookups.
	DefaultHashPrefixLength = 4

	defaultUserAgent = "sponsorblock-go/" + Version
)

// Hash prefix bounds accepted by the API.
const (
	minHashPrefixLength = 4
	maxHashPrefixLength = 32
)

// Client issues requests against a SponsorBlock API instance. Construct it
// with New; the zero value is not usable. Configuration is fixed at
// construction and never mutated, so a single Client may be shared across
// goroutines.
type Client struct {
	http    *http.Client
	logger  zerolog.Logger
	metrics *clientMetrics

	userID           string
	baseURL          string
	userAgent        string
	service          string
	hashPrefixLength int
}

type settings struct {
	baseURL          string
	userAgent        string
	service          string
	hashPrefixLength int
	timeout          time.Duration
	httpClient       *http.Client
	logger           zerolog.Logger
	registerer       prometheus.Registerer
}

// Option configures a Client during construction.
type Option func(*settings)

// WithBaseURL points the client at a different API instance. Official
// instances include the /api suffix; see BaseURLMain and BaseURLTesting.
func WithBaseURL(baseURL string) Option {
	return func(s *settings) { s.baseURL = strings.TrimRight(baseURL, "/") }
}

// WithService sets the service discriminator sent with segment queries,
// for content hosted somewhere other than YouTube.
func WithService(service string) Option {
	return func(s *settings) { s.service = service }
}

// WithTimeout sets the per-request timeout. The default is no timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(s *settings) { s.timeout = timeout }
}

// WithHashPrefixLength sets how many characters of the video ID hash are
// sent for privacy-preserving lookups. Shorter prefixes mean more candidate
// matches returned by the server but better privacy. New rejects values
// outside [4, 32].
func WithHashPrefixLength(length int) Option {
	return func(s *settings) { s.hashPrefixLength = length }
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(userAgent string) Option {
	return func(s *settings) { s.userAgent = userAgent }
}

// WithHTTPClient supplies a custom *http.Client, e.g. for proxying or
// transport tuning. A timeout set via WithTimeout still applies.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(s *settings) { s.httpClient = httpClient }
}

// WithLogger attaches a zerolog logger; each request is logged as one
// structured event. Video and user identifiers are never logged. The
// default logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *settings) { s.logger = logger }
}

// WithMetrics registers per-operation request counters and duration
// histograms with reg. The library never touches the default registry.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(s *settings) { s.registerer = reg }
}

// New creates a Client. localUserID is the local (private) user ID; it
// functions as a credential and should be stored and treated like a
// password. It may be empty for purely read-only use, though some endpoint
// variants (the *Local user lookups) will not be usable without it.
func New(localUserID string, opts ...Option) (*Client, error) {
	s := settings{
		baseURL:          BaseURLMain,
		userAgent:        defaultUserAgent,
		service:          DefaultService,
		hashPrefixLength: DefaultHashPrefixLength,
		logger:           zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&s)
	}

	if s.hashPrefixLength < minHashPrefixLength || s.hashPrefixLength > maxHashPrefixLength {
		return nil, fmt.Errorf("hash prefix length %d outside the accepted range [%d, %d]",
			s.hashPrefixLength, minHashPrefixLength, maxHashPrefixLength)
	}

	httpClient := &http.Client{}
	if s.httpClient != nil {
		clone := *s.httpClient
		httpClient = &clone
	}
	if s.timeout > 0 {
		httpClient.Timeout = s.timeout
	}

	c := &Client{
		http:             httpClient,
		logger:           s.logger,
		userID:           localUserID,
		baseURL:          s.baseURL,
		userAgent:        s.userAgent,
		service:          s.service,
		hashPrefixLength: s.hashPrefixLength,
	}

	if s.registerer != nil {
		m, err := newClientMetrics(s.registerer)
		if err != nil {
			return nil, fmt.Errorf("registering client metrics: %w", err)
		}
		c.metrics = m
	}

	return c, nil
}

// PublicUserID derives the public user ID from the configured local user
// ID, the same way the service does (5000 iterations of SHA256).
func (c *Client) PublicUserID() string {
	return hash.HashUserID(c.userID)
}

// getJSON performs a GET against an API endpoint, classifies the HTTP
// outcome, and decodes a successful body into out. op is a stable operation
// name used for logging and metric labels; path is the endpoint path
// relative to the base URL.
func (c *Client) getJSON(ctx context.Context, op, path string, query url.Values, out any) error {
	start := time.Now()
	err := c.doGetJSON(ctx, path, query, out)
	c.observe(op, time.Since(start), err)
	return err
}

func (c *Client) doGetJSON(ctx context.Context, path string, query url.Values, out any) error {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return &RequestError{Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return &RequestError{Err: err}
	}
	defer resp.Body.Close()

	switch status := resp.StatusCode; {
	case status >= 200 && status < 300:
	case status >= 500 && status < 600:
		return &ServerError{Status: status}
	case status >= 400 && status < 500:
		return &ClientError{Status: status}
	default:
		return &UnknownHTTPError{Status: status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RequestError{Err: err}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}

// observe emits one structured log event and one metric observation per
// request. Only the operation name is recorded: video IDs, user IDs, and
// full request URLs stay out of logs and label values.
func (c *Client) observe(op string, elapsed time.Duration, err error) {
	outcome := "ok"
	status := 0

	var (
		serverErr  *ServerError
		clientErr  *ClientError
		unknownErr *UnknownHTTPError
		decodeErr  *DecodeError
	)
	switch {
	case err == nil:
	case errors.As(err, &serverErr):
		outcome, status = "server_error", serverErr.Status
	case errors.As(err, &clientErr):
		outcome, status = "client_error", clientErr.Status
	case errors.As(err, &unknownErr):
		outcome, status = "unknown_status", unknownErr.Status
	case errors.As(err, &decodeErr):
		outcome, status = "decode_error", http.StatusOK
	default:
		outcome = "transport_error"
	}

	if c.metrics != nil {
		c.metrics.observe(op, outcome, elapsed)
	}

	evt := c.logger.Debug()
	if err != nil {
		evt = c.logger.Warn()
	}
	evt.
		Str("operation", op).
		Int("status", status).
		Dur("duration_ms", elapsed).
		Err(err).
		Msg("api request")
}
