package sponsorblock

import "strings"

// AcceptedCategories is a bit set of categories to request segments for.
// Bit i corresponds to the Category with enumerant value i. The zero value
// accepts nothing; the default for fetches should be AllCategories.
type AcceptedCategories uint32

// AcceptedActions is a bit set of action kinds to request segments for,
// with the same layout rules as AcceptedCategories.
type AcceptedActions uint32

// AllCategories returns the set accepting every known category.
func AllCategories() AcceptedCategories {
	return AcceptedCategories(1<<len(categoryTokens)) - 1
}

// AllActions returns the set accepting every known action kind.
func AllActions() AcceptedActions {
	return AcceptedActions(1<<len(actionTokens)) - 1
}

// Categories builds a set from individual Category values.
func Categories(cats ...Category) AcceptedCategories {
	var set AcceptedCategories
	for _, c := range cats {
		set = set.With(c)
	}
	return set
}

// Actions builds a set from individual ActionKind values.
func Actions(kinds ...ActionKind) AcceptedActions {
	var set AcceptedActions
	for _, a := range kinds {
		set = set.With(a)
	}
	return set
}

// With returns a copy of the set with c added.
func (s AcceptedCategories) With(c Category) AcceptedCategories {
	return s | 1<<uint(c)
}

// Has reports whether c is in the set.
func (s AcceptedCategories) Has(c Category) bool {
	return s&(1<<uint(c)) != 0
}

// With returns a copy of the set with a added.
func (s AcceptedActions) With(a ActionKind) AcceptedActions {
	return s | 1<<uint(a)
}

// Has reports whether a is in the set.
func (s AcceptedActions) Has(a ActionKind) bool {
	return s&(1<<uint(a)) != 0
}

// urlValue renders the set as the JSON-style array the API's query
// parameters expect, e.g. ["sponsor","poi_highlight"]. Tokens appear in
// canonical declaration order, so the output is deterministic for a given
// set. The empty set renders as [].
func (s AcceptedCategories) urlValue() string {
	return bitsetURLValue(uint32(s), categoryTokens[:])
}

func (s AcceptedActions) urlValue() string {
	return bitsetURLValue(uint32(s), actionTokens[:])
}

func bitsetURLValue(bits uint32, tokens []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, tok := range tokens {
		if bits&(1<<uint(i)) == 0 {
			continue
		}
		if b.Len() > 1 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(tok)
		b.WriteByte('"')
	}
	b.WriteByte(']')
	return b.String()
}

// urlArray renders arbitrary strings (segment UUIDs, required segments) in
// the same bracketed, double-quoted form.
func urlArray(values []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(v)
		b.WriteByte('"')
	}
	b.WriteByte(']')
	return b.String()
}
