package sponsorblock

// ActionKind is the handling a segment's submitter recommended. It decides
// what timing data a segment carries: Skip and Mute segments have a
// start/end section, PointOfInterest a single time point, and FullVideo no
// timing data at all.
//
// See https://wiki.sponsor.ajay.app/w/Types#Action_Type
type ActionKind int

const (
	// ActionSkip recommends skipping the segment. The default action type.
	ActionSkip ActionKind = iota
	// ActionMute recommends muting the segment without skipping it.
	ActionMute
	// ActionPointOfInterest is a single point worth skipping to rather than
	// a skippable section.
	ActionPointOfInterest
	// ActionFullVideo labels the entire video; the content is too tightly
	// integrated to skip cleanly. Mostly informational.
	ActionFullVideo
)

var actionTokens = [...]string{
	ActionSkip:            "skip",
	ActionMute:            "mute",
	ActionPointOfInterest: "poi",
	ActionFullVideo:       "full",
}

// String returns the API wire token for the action kind.
func (a ActionKind) String() string {
	if a < 0 || int(a) >= len(actionTokens) {
		return ""
	}
	return actionTokens[a]
}

// ParseActionKind maps an API action token to its ActionKind. Tokens must
// match exactly. An unknown token yields an *UnrecognizedValueError.
func ParseActionKind(token string) (ActionKind, error) {
	for i, t := range actionTokens {
		if t == token {
			return ActionKind(i), nil
		}
	}
	return 0, &UnrecognizedValueError{Field: "actionType", Raw: token}
}
