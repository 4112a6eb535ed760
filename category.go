package sponsorblock

// Category is the topical classification of a segment. Each value maps 1:1
// to an API wire token, and the declaration order is the canonical order
// used when encoding accepted-category sets into query parameters.
//
// For descriptions of each category, see
// https://wiki.sponsor.ajay.app/w/Segment_Categories
type Category int

const (
	// CategorySponsor is a paid promotion, paid referral, or direct
	// advertisement.
	CategorySponsor Category = iota
	// CategoryUnpaidSelfPromotion is unpaid or self-promotion: merchandise,
	// donations, or collaborator callouts.
	CategoryUnpaidSelfPromotion
	// CategoryInteractionReminder is a reminder to like, subscribe, or
	// follow in the middle of content.
	CategoryInteractionReminder
	// CategoryHighlight marks the point the video actually gets to its
	// subject. Highlight segments carry a single time point, not a range.
	CategoryHighlight
	// CategoryIntermissionIntroAnimation is an interval without content: a
	// pause, static frame, or repeating animation.
	CategoryIntermissionIntroAnimation
	// CategoryEndcardsCredits covers credits and endcards.
	CategoryEndcardsCredits
	// CategoryPreviewRecap is a recap of previous episodes or a preview of
	// what comes later in the video.
	CategoryPreviewRecap
	// CategoryNonMusic is a non-music section of a music video.
	CategoryNonMusic
	// CategoryFillerTangent is tangential filler added for time.
	CategoryFillerTangent
	// CategoryExclusiveAccess marks a video showing off a product or
	// service the creator received free or early access to.
	CategoryExclusiveAccess
)

// categoryTokens holds the API wire token for each Category, indexed by the
// enumerant value.
var categoryTokens = [...]string{
	CategorySponsor:                    "sponsor",
	CategoryUnpaidSelfPromotion:        "selfpromo",
	CategoryInteractionReminder:        "interaction",
	CategoryHighlight:                  "poi_highlight",
	CategoryIntermissionIntroAnimation: "intro",
	CategoryEndcardsCredits:            "outro",
	CategoryPreviewRecap:               "preview",
	CategoryNonMusic:                   "music_offtopic",
	CategoryFillerTangent:              "filler",
	CategoryExclusiveAccess:            "exclusive_access",
}

// String returns the API wire token for the category.
func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryTokens) {
		return ""
	}
	return categoryTokens[c]
}

// ParseCategory maps an API category token to its Category. Tokens must
// match exactly; no trimming or case folding is performed. An unknown token
// yields an *UnrecognizedValueError, which usually means this library is
// older than the API's vocabulary.
func ParseCategory(token string) (Category, error) {
	for i, t := range categoryTokens {
		if t == token {
			return Category(i), nil
		}
	}
	return 0, &UnrecognizedValueError{Field: "category", Raw: token}
}
