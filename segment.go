package sponsorblock

import (
	"fmt"
	"time"
)

// TimeSection is a start/end pair of timestamps within a video, in seconds.
// Sections produced by this library guarantee Start <= End.
type TimeSection struct {
	Start float64
	End   float64
}

// Duration returns End - Start.
func (s TimeSection) Duration() float64 { return s.End - s.Start }

// Segment is one classified interval or point within a video.
type Segment struct {
	// Category is the topical classification.
	Category Category
	// Action is the recommended handling, which decides what Start and End
	// mean: a section for Skip/Mute, a single point (Start) for
	// PointOfInterest, and nothing for FullVideo. Use TimeSection and
	// TimePoint instead of reading the bounds directly.
	Action ActionKind
	Start  float64
	End    float64
	// UUID uniquely identifies the segment in the service's database.
	UUID string
	// Locked reports whether moderators froze the segment against further
	// voting.
	Locked bool
	// Votes is the net vote count; negative means net downvotes.
	Votes int32
	// VideoDuration is the video's duration when the segment was
	// submitted, used to detect out-of-date segments. Nil when the service
	// never recorded one (older submissions).
	VideoDuration *float64
	// Info carries the extended fields returned by the segmentInfo
	// endpoint. Nil for segments fetched via skipSegments.
	Info *AdditionalSegmentInfo
}

// TimeSection returns the segment's time bounds for Skip and Mute actions.
func (s *Segment) TimeSection() (TimeSection, bool) {
	if s.Action == ActionSkip || s.Action == ActionMute {
		return TimeSection{Start: s.Start, End: s.End}, true
	}
	return TimeSection{}, false
}

// TimePoint returns the segment's single timestamp for PointOfInterest
// actions.
func (s *Segment) TimePoint() (float64, bool) {
	if s.Action == ActionPointOfInterest {
		return s.Start, true
	}
	return 0, false
}

// AdditionalSegmentInfo holds the submitter and moderation fields that only
// the segmentInfo endpoint returns.
type AdditionalSegmentInfo struct {
	// VideoID is the video the segment belongs to.
	VideoID string
	// SubmitterID is the public user ID of the submitter.
	SubmitterID string
	// TimeSubmitted is when the segment was submitted.
	TimeSubmitted time.Time
	// Views counts how many times the segment was skipped.
	Views int64
	// IncorrectVotes counts votes marking the segment incorrect.
	IncorrectVotes int64
	// Service is the platform the video belongs to, e.g. "YouTube".
	Service string
	// Hidden reports whether the segment is hidden from queries.
	Hidden bool
	// ShadowHidden reports whether the submitter is shadow-banned.
	ShadowHidden bool
	// Reputation is the submitter's reputation score.
	Reputation float64
	// UserAgent is the submitter's reported user agent.
	UserAgent string
}

// rawSegment is the wire shape shared by the skipSegments and segmentInfo
// endpoints. skipSegments encodes the time bounds as a two-element segment
// array while segmentInfo uses separate startTime/endTime fields; the two
// encodings are equivalent and mutually exclusive.
type rawSegment struct {
	Category      string    `json:"category"`
	ActionType    string    `json:"actionType"`
	Segment       []float64 `json:"segment"`
	StartTime     *float64  `json:"startTime"`
	EndTime       *float64  `json:"endTime"`
	UUID          string    `json:"UUID"`
	Locked        int       `json:"locked"`
	Votes         int32     `json:"votes"`
	VideoDuration float64   `json:"videoDuration"`

	// Fields only populated by segmentInfo.
	VideoID        string  `json:"videoID"`
	UserID         string  `json:"userID"`
	TimeSubmitted  int64   `json:"timeSubmitted"`
	Views          int64   `json:"views"`
	IncorrectVotes int64   `json:"incorrectVotes"`
	Service        string  `json:"service"`
	Hidden         int     `json:"hidden"`
	ShadowHidden   int     `json:"shadowHidden"`
	Reputation     float64 `json:"reputation"`
	UserAgent      string  `json:"userAgent"`
}

// bounds extracts the time bounds from whichever encoding the record uses.
func (r *rawSegment) bounds() (start, end float64, err error) {
	switch {
	case len(r.Segment) == 2:
		return r.Segment[0], r.Segment[1], nil
	case len(r.Segment) != 0:
		return 0, 0, &MalformedDataError{
			Reason: fmt.Sprintf("segment array has %d elements, want 2", len(r.Segment)),
		}
	case r.StartTime != nil && r.EndTime != nil:
		return *r.StartTime, *r.EndTime, nil
	default:
		return 0, 0, &MalformedDataError{Reason: "segment time bounds missing in both encodings"}
	}
}

// normalize validates a raw record and reshapes it into a Segment. The
// segmentInfo-only payload is retained only when includeInfo is set; the
// skipSegments endpoint leaves those fields at deserialization defaults,
// which are placeholders rather than data.
func (r *rawSegment) normalize(includeInfo bool) (Segment, error) {
	start, end, err := r.bounds()
	if err != nil {
		return Segment{}, err
	}
	if start > end {
		return Segment{}, &MalformedDataError{
			Reason: fmt.Sprintf("segment start (%v) > end (%v)", start, end),
		}
	}
	if start < 0 {
		return Segment{}, &MalformedDataError{
			Reason: fmt.Sprintf("segment start (%v) < 0", start),
		}
	}
	if end < 0 {
		return Segment{}, &MalformedDataError{
			Reason: fmt.Sprintf("segment end (%v) < 0", end),
		}
	}

	category, err := ParseCategory(r.Category)
	if err != nil {
		return Segment{}, err
	}
	action, err := ParseActionKind(r.ActionType)
	if err != nil {
		return Segment{}, err
	}
	// Older protocol versions report "skip" as the action token for
	// highlight segments. The category wins unconditionally: a highlight
	// is always a point of interest.
	if category == CategoryHighlight {
		action = ActionPointOfInterest
	}

	var videoDuration *float64
	switch {
	case r.VideoDuration < 0:
		return Segment{}, &MalformedDataError{
			Reason: fmt.Sprintf("video duration (%v) < 0", r.VideoDuration),
		}
	case r.VideoDuration > 0:
		d := r.VideoDuration
		videoDuration = &d
	}
	// 0 is the server's sentinel for segments submitted before durations
	// were tracked, not a zero-length video.

	seg := Segment{
		Category:      category,
		Action:        action,
		Start:         start,
		End:           end,
		UUID:          r.UUID,
		Locked:        r.Locked != 0,
		Votes:         r.Votes,
		VideoDuration: videoDuration,
	}
	if action == ActionFullVideo {
		seg.Start, seg.End = 0, 0
	}
	if includeInfo {
		seg.Info = &AdditionalSegmentInfo{
			VideoID:        r.VideoID,
			SubmitterID:    r.UserID,
			TimeSubmitted:  time.UnixMilli(r.TimeSubmitted).UTC(),
			Views:          r.Views,
			IncorrectVotes: r.IncorrectVotes,
			Service:        r.Service,
			Hidden:         r.Hidden != 0,
			ShadowHidden:   r.ShadowHidden != 0,
			Reputation:     r.Reputation,
			UserAgent:      r.UserAgent,
		}
	}
	return seg, nil
}

func normalizeAll(raws []rawSegment, includeInfo bool) ([]Segment, error) {
	segments := make([]Segment, 0, len(raws))
	for i := range raws {
		seg, err := raws[i].normalize(includeInfo)
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
	}
	return segments, nil
}
