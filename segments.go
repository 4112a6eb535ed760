package sponsorblock

import (
	"context"
	"net/url"

	"github.com/segmentskip/sponsorblock-go/pkg/hash"
)

// FetchSegments fetches the classified segments for a video, filtered to
// the accepted categories and action kinds. Pass AllCategories() and
// AllActions() for the maximally permissive query.
//
// When the video has no matching segments the API responds with HTTP 404,
// surfaced as a *ClientError with Status 404. Callers typically treat that
// case as an empty result rather than a failure.
func (c *Client) FetchSegments(ctx context.Context, videoID string, categories AcceptedCategories, actions AcceptedActions) ([]Segment, error) {
	return c.FetchSegmentsWithRequired(ctx, videoID, categories, actions, nil)
}

// FetchSegmentsWithRequired is FetchSegments with a list of segment UUIDs
// that the server must include in the result even when they fall below the
// vote threshold.
func (c *Client) FetchSegmentsWithRequired(ctx context.Context, videoID string, categories AcceptedCategories, actions AcceptedActions, requiredSegments []string) ([]Segment, error) {
	query := url.Values{}
	query.Set("videoID", videoID)
	c.setSegmentQuery(query, categories, actions, requiredSegments)

	var raws []rawSegment
	if err := c.getJSON(ctx, "skipSegments", "/skipSegments", query, &raws); err != nil {
		return nil, err
	}
	return normalizeAll(raws, false)
}

// rawHashMatch is one candidate in a hash-prefixed lookup response. The
// server returns every video whose ID hash starts with the requested
// prefix; the client picks out the one it actually asked about.
type rawHashMatch struct {
	VideoID  string       `json:"videoID"`
	Hash     string       `json:"hash"`
	Segments []rawSegment `json:"segments"`
}

// FetchSegmentsPrivately is FetchSegments in privacy-preserving mode: only
// the first few characters of SHA256(videoID) are sent (see
// WithHashPrefixLength), never the video ID itself. The server replies
// with every candidate sharing the prefix and the client selects the
// requested video locally.
//
// Returns ErrNoMatchingVideoHash when no candidate matches the requested
// video ID, and *ClientError with Status 404 when nothing matched the
// prefix at all.
func (c *Client) FetchSegmentsPrivately(ctx context.Context, videoID string, categories AcceptedCategories, actions AcceptedActions) ([]Segment, error) {
	return c.FetchSegmentsPrivatelyWithRequired(ctx, videoID, categories, actions, nil)
}

// FetchSegmentsPrivatelyWithRequired is FetchSegmentsPrivately with a list
// of segment UUIDs the server must include regardless of vote threshold.
func (c *Client) FetchSegmentsPrivatelyWithRequired(ctx context.Context, videoID string, categories AcceptedCategories, actions AcceptedActions, requiredSegments []string) ([]Segment, error) {
	prefix := hash.VideoHashPrefix(videoID, c.hashPrefixLength)

	query := url.Values{}
	c.setSegmentQuery(query, categories, actions, requiredSegments)

	var matches []rawHashMatch
	if err := c.getJSON(ctx, "skipSegmentsByHash", "/skipSegments/"+prefix, query, &matches); err != nil {
		return nil, err
	}
	for i := range matches {
		if matches[i].VideoID == videoID {
			return normalizeAll(matches[i].Segments, false)
		}
	}
	return nil, ErrNoMatchingVideoHash
}

// FetchSegmentInfo fetches the full records for specific segment UUIDs,
// including the submitter and moderation fields that skipSegments omits
// (available on the returned segments via Info).
func (c *Client) FetchSegmentInfo(ctx context.Context, uuids ...string) ([]Segment, error) {
	query := url.Values{}
	query.Set("UUIDs", urlArray(uuids))

	var raws []rawSegment
	if err := c.getJSON(ctx, "segmentInfo", "/segmentInfo", query, &raws); err != nil {
		return nil, err
	}
	return normalizeAll(raws, true)
}

func (c *Client) setSegmentQuery(query url.Values, categories AcceptedCategories, actions AcceptedActions, requiredSegments []string) {
	query.Set("categories", categories.urlValue())
	query.Set("actionTypes", actions.urlValue())
	query.Set("service", c.service)
	if len(requiredSegments) > 0 {
		query.Set("requiredSegments", urlArray(requiredSegments))
	}
}
