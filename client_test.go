package sponsorblock

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/segmentskip/sponsorblock-go/pkg/hash"
)

const testLocalUserID = "mkhBqJBGzmzXDHLmOEWJmkhBqJBGzmzXDHLm"

// newTestClient starts a test server around handler and returns a client
// pointed at it. The server is torn down with the test.
func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	opts = append([]Option{WithBaseURL(srv.URL)}, opts...)
	client, err := New(testLocalUserID, opts...)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	return client
}

func TestStatusClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			"404 is a client error", http.StatusNotFound, "Not Found",
			func(t *testing.T, err error) {
				var clientErr *ClientError
				if !errors.As(err, &clientErr) {
					t.Fatalf("error = %v, want *ClientError", err)
				}
				if clientErr.Status != http.StatusNotFound {
					t.Errorf("Status = %d, want 404", clientErr.Status)
				}
			},
		},
		{
			"500 is a server error", http.StatusInternalServerError, "oops",
			func(t *testing.T, err error) {
				var serverErr *ServerError
				if !errors.As(err, &serverErr) {
					t.Fatalf("error = %v, want *ServerError", err)
				}
				if serverErr.Status != http.StatusInternalServerError {
					t.Errorf("Status = %d, want 500", serverErr.Status)
				}
			},
		},
		{
			"304 is an unknown outcome", http.StatusNotModified, "",
			func(t *testing.T, err error) {
				var unknownErr *UnknownHTTPError
				if !errors.As(err, &unknownErr) {
					t.Fatalf("error = %v, want *UnknownHTTPError", err)
				}
				if unknownErr.Status != http.StatusNotModified {
					t.Errorf("Status = %d, want 304", unknownErr.Status)
				}
			},
		},
		{
			"200 with a bad body is a decode error", http.StatusOK, "not json",
			func(t *testing.T, err error) {
				var decodeErr *DecodeError
				if !errors.As(err, &decodeErr) {
					t.Fatalf("error = %v, want *DecodeError", err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := client.FetchSegments(context.Background(), "dQw4w9WgXcQ", AllCategories(), AllActions())
			if err == nil {
				t.Fatal("expected an error")
			}
			tt.check(t, err)
		})
	}
}

func TestSuccessfulFetch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"category":"sponsor","actionType":"skip","segment":[12.5,45.0],"UUID":"uuid-1","locked":1,"votes":10,"videoDuration":600},
			{"category":"poi_highlight","actionType":"skip","segment":[99.0,99.0],"UUID":"uuid-2","locked":0,"votes":-2,"videoDuration":0}
		]`))
	})

	segments, err := client.FetchSegments(context.Background(), "dQw4w9WgXcQ", AllCategories(), AllActions())
	if err != nil {
		t.Fatalf("FetchSegments error: %v", err)
	}
	if len(segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(segments))
	}

	first := segments[0]
	if first.Category != CategorySponsor || !first.Locked || first.Votes != 10 {
		t.Errorf("unexpected first segment: %+v", first)
	}
	if first.VideoDuration == nil || *first.VideoDuration != 600 {
		t.Errorf("VideoDuration = %v, want 600", first.VideoDuration)
	}

	second := segments[1]
	if second.Action != ActionPointOfInterest {
		t.Errorf("highlight Action = %v, want poi", second.Action)
	}
	if second.VideoDuration != nil {
		t.Error("sentinel 0 video duration should fold to nil")
	}
	if second.Votes != -2 {
		t.Errorf("Votes = %d, want -2", second.Votes)
	}
}

func TestQueryEncoding(t *testing.T) {
	var query map[string][]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte(`[]`))
	}, WithService("PeerTube"))

	categories := Categories(CategorySponsor, CategoryHighlight)
	actions := Actions(ActionSkip)
	_, err := client.FetchSegmentsWithRequired(context.Background(), "vid-1", categories, actions,
		[]string{"uuid-a", "uuid-b"})
	if err != nil {
		t.Fatalf("FetchSegmentsWithRequired error: %v", err)
	}

	want := map[string]string{
		"videoID":          "vid-1",
		"categories":       `["sponsor","poi_highlight"]`,
		"actionTypes":      `["skip"]`,
		"service":          "PeerTube",
		"requiredSegments": `["uuid-a","uuid-b"]`,
	}
	for key, wantValue := range want {
		values := query[key]
		if len(values) != 1 || values[0] != wantValue {
			t.Errorf("query[%q] = %v, want %q", key, values, wantValue)
		}
	}
}

func TestRequiredSegmentsOmittedWhenEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Has("requiredSegments") {
			t.Error("requiredSegments should be omitted when empty")
		}
		w.Write([]byte(`[]`))
	})

	if _, err := client.FetchSegments(context.Background(), "vid-1", AllCategories(), AllActions()); err != nil {
		t.Fatalf("FetchSegments error: %v", err)
	}
}

func TestCommunicationFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening any more

	client, err := New(testLocalUserID, WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	_, err = client.FetchSegments(context.Background(), "vid-1", AllCategories(), AllActions())
	var requestErr *RequestError
	if !errors.As(err, &requestErr) {
		t.Fatalf("error = %v, want *RequestError", err)
	}
	if requestErr.Unwrap() == nil {
		t.Error("RequestError should wrap the transport error")
	}
}

func TestContextCancellation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.FetchSegments(ctx, "vid-1", AllCategories(), AllActions())
	var requestErr *RequestError
	if !errors.As(err, &requestErr) {
		t.Fatalf("error = %v, want *RequestError", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error should wrap context.DeadlineExceeded, got %v", err)
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		wantErr bool
	}{
		{"too short", 3, true},
		{"lower bound", 4, false},
		{"upper bound", 32, false},
		{"too long", 33, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(testLocalUserID, WithHashPrefixLength(tt.length))
			if gotErr := err != nil; gotErr != tt.wantErr {
				t.Errorf("New with prefix length %d: error = %v, wantErr %v", tt.length, err, tt.wantErr)
			}
		})
	}
}

func TestUserAgentHeader(t *testing.T) {
	var userAgent string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("User-Agent")
		w.Write([]byte(`[]`))
	}, WithUserAgent("my-app/2.0"))

	if _, err := client.FetchSegments(context.Background(), "vid-1", AllCategories(), AllActions()); err != nil {
		t.Fatalf("FetchSegments error: %v", err)
	}
	if userAgent != "my-app/2.0" {
		t.Errorf("User-Agent = %q, want %q", userAgent, "my-app/2.0")
	}
}

func TestPublicUserID(t *testing.T) {
	client, err := New(testLocalUserID)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if got, want := client.PublicUserID(), hash.HashUserID(testLocalUserID); got != want {
		t.Errorf("PublicUserID() = %s, want %s", got, want)
	}
}

func TestMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}, WithMetrics(registry))

	if _, err := client.FetchSegments(context.Background(), "vid-1", AllCategories(), AllActions()); err != nil {
		t.Fatalf("FetchSegments error: %v", err)
	}

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("Gather error: %v", err)
	}

	found := false
	for _, family := range families {
		if family.GetName() != "sponsorblock_client_requests_total" {
			continue
		}
		found = true
		metrics := family.GetMetric()
		if len(metrics) != 1 {
			t.Fatalf("got %d request counter series, want 1", len(metrics))
		}
		if got := metrics[0].GetCounter().GetValue(); got != 1 {
			t.Errorf("request counter = %v, want 1", got)
		}
		labels := map[string]string{}
		for _, pair := range metrics[0].GetLabel() {
			labels[pair.GetName()] = pair.GetValue()
		}
		if labels["operation"] != "skipSegments" || labels["outcome"] != "ok" {
			t.Errorf("unexpected labels: %v", labels)
		}
	}
	if !found {
		t.Error("request counter was not registered")
	}
}

func TestMetricsDuplicateRegistration(t *testing.T) {
	registry := prometheus.NewRegistry()
	if _, err := New(testLocalUserID, WithMetrics(registry)); err != nil {
		t.Fatalf("first New error: %v", err)
	}
	if _, err := New(testLocalUserID, WithMetrics(registry)); err == nil {
		t.Error("registering the same collectors twice should fail")
	}
}
