package sponsorblock

import (
	"context"
	"net/url"
)

// UserInfo is a user's aggregate record as returned by the userInfo
// endpoint.
type UserInfo struct {
	// PublicUserID is the user's public ID (the hash of their local ID).
	PublicUserID string
	// UserName is the user's chosen display name, or "" when they never
	// chose one. The service reports the public ID as the name in that
	// case; the client folds it back to unset.
	UserName string
	// MinutesSaved is how many minutes of viewer time this user's segments
	// have saved others.
	MinutesSaved float64
	// SegmentCount is the number of submitted segments, excluding ignored
	// and hidden ones.
	SegmentCount int64
	// IgnoredSegmentCount is the number of ignored and hidden segments.
	IgnoredSegmentCount int64
	// ViewCount is the views on this user's segments, excluding ignored
	// and hidden segments.
	ViewCount int64
	// IgnoredViewCount is the views on ignored and hidden segments.
	IgnoredViewCount int64
	// Warnings is the number of currently active warnings.
	Warnings int64
	// Reputation is the user's reputation score.
	Reputation float64
	// VIP reports elevated-trust status.
	VIP bool
	// LastSegmentID is the UUID of the most recently submitted segment, or
	// "" if there is none.
	LastSegmentID string
}

// TotalSegmentCount returns SegmentCount + IgnoredSegmentCount.
func (u *UserInfo) TotalSegmentCount() int64 {
	return u.SegmentCount + u.IgnoredSegmentCount
}

// TotalViewCount returns ViewCount + IgnoredViewCount.
func (u *UserInfo) TotalViewCount() int64 {
	return u.ViewCount + u.IgnoredViewCount
}

type rawUserInfo struct {
	UserID              string  `json:"userID"`
	UserName            string  `json:"userName"`
	MinutesSaved        float64 `json:"minutesSaved"`
	SegmentCount        int64   `json:"segmentCount"`
	IgnoredSegmentCount int64   `json:"ignoredSegmentCount"`
	ViewCount           int64   `json:"viewCount"`
	IgnoredViewCount    int64   `json:"ignoredViewCount"`
	Warnings            int64   `json:"warnings"`
	Reputation          float64 `json:"reputation"`
	VIP                 bool    `json:"vip"`
	LastSegmentID       string  `json:"lastSegmentID"`
}

func (r *rawUserInfo) normalize() *UserInfo {
	return &UserInfo{
		PublicUserID:        r.UserID,
		UserName:            normalizeUserName(r.UserName, r.UserID),
		MinutesSaved:        r.MinutesSaved,
		SegmentCount:        r.SegmentCount,
		IgnoredSegmentCount: r.IgnoredSegmentCount,
		ViewCount:           r.ViewCount,
		IgnoredViewCount:    r.IgnoredViewCount,
		Warnings:            r.Warnings,
		Reputation:          r.Reputation,
		VIP:                 r.VIP,
		LastSegmentID:       r.LastSegmentID,
	}
}

// normalizeUserName folds the service's ID-as-name convention for "no
// custom name chosen" back to an unset value.
func normalizeUserName(userName, userID string) string {
	if userName == userID {
		return ""
	}
	return userName
}

// FetchUserInfo fetches a user's info by their public user ID.
func (c *Client) FetchUserInfo(ctx context.Context, publicUserID string) (*UserInfo, error) {
	return c.fetchUserInfo(ctx, "publicUserID", publicUserID)
}

// FetchUserInfoLocal fetches a user's info by their local (private) user
// ID. Prefer FetchUserInfo with the public ID where possible, so the
// credential never leaves the machine.
func (c *Client) FetchUserInfoLocal(ctx context.Context, localUserID string) (*UserInfo, error) {
	return c.fetchUserInfo(ctx, "userID", localUserID)
}

func (c *Client) fetchUserInfo(ctx context.Context, key, id string) (*UserInfo, error) {
	query := url.Values{}
	query.Set(key, id)

	var raw rawUserInfo
	if err := c.getJSON(ctx, "userInfo", "/userInfo", query, &raw); err != nil {
		return nil, err
	}
	return raw.normalize(), nil
}

// OverallStats is the summary block of a userStats response.
type OverallStats struct {
	MinutesSaved float64
	SegmentCount int64
}

// UserStats is a user's per-category and per-action submission breakdown.
type UserStats struct {
	// PublicUserID is the user's public ID.
	PublicUserID string
	// UserName follows the same unset convention as UserInfo.UserName.
	UserName string
	// OverallStats summarizes across all categories.
	OverallStats OverallStats
	// CategoryCount holds submitted-segment counts per category.
	// Categories this library doesn't recognize are omitted rather than
	// failing the response, so new server-side vocabulary degrades
	// gracefully.
	CategoryCount map[Category]int64
	// ActionTypeCount holds submitted-segment counts per action kind, with
	// the same unknown-token tolerance as CategoryCount.
	ActionTypeCount map[ActionKind]int64
}

type rawUserStats struct {
	UserID       string `json:"userID"`
	UserName     string `json:"userName"`
	OverallStats struct {
		MinutesSaved float64 `json:"minutesSaved"`
		SegmentCount int64   `json:"segmentCount"`
	} `json:"overallStats"`
	CategoryCount   map[string]int64 `json:"categoryCount"`
	ActionTypeCount map[string]int64 `json:"actionTypeCount"`
}

func (r *rawUserStats) normalize() *UserStats {
	stats := &UserStats{
		PublicUserID: r.UserID,
		UserName:     normalizeUserName(r.UserName, r.UserID),
		OverallStats: OverallStats{
			MinutesSaved: r.OverallStats.MinutesSaved,
			SegmentCount: r.OverallStats.SegmentCount,
		},
		CategoryCount:   make(map[Category]int64, len(r.CategoryCount)),
		ActionTypeCount: make(map[ActionKind]int64, len(r.ActionTypeCount)),
	}
	// Unknown tokens are dropped per entry instead of failing the call, so
	// a server that grows its vocabulary doesn't break the rest of the map.
	for token, count := range r.CategoryCount {
		if category, err := ParseCategory(token); err == nil {
			stats.CategoryCount[category] = count
		}
	}
	for token, count := range r.ActionTypeCount {
		if kind, err := ParseActionKind(token); err == nil {
			stats.ActionTypeCount[kind] = count
		}
	}
	return stats
}

// FetchUserStats fetches a user's stats by their public user ID, including
// the per-category and per-action breakdowns.
func (c *Client) FetchUserStats(ctx context.Context, publicUserID string) (*UserStats, error) {
	return c.fetchUserStats(ctx, "publicUserID", publicUserID)
}

// FetchUserStatsLocal fetches a user's stats by their local (private) user
// ID.
func (c *Client) FetchUserStatsLocal(ctx context.Context, localUserID string) (*UserStats, error) {
	return c.fetchUserStats(ctx, "userID", localUserID)
}

func (c *Client) fetchUserStats(ctx context.Context, key, id string) (*UserStats, error) {
	query := url.Values{}
	query.Set(key, id)
	query.Set("fetchCategoryStats", "true")
	query.Set("fetchActionTypeStats", "true")

	var raw rawUserStats
	if err := c.getJSON(ctx, "userStats", "/userStats", query, &raw); err != nil {
		return nil, err
	}
	return raw.normalize(), nil
}
