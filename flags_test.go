package sponsorblock

import "testing"

func TestAcceptedCategoriesURLValue(t *testing.T) {
	tests := []struct {
		name string
		set  AcceptedCategories
		want string
	}{
		{
			"all categories in canonical order",
			AllCategories(),
			`["sponsor","selfpromo","interaction","poi_highlight","intro","outro","preview","music_offtopic","filler","exclusive_access"]`,
		},
		{
			"empty set",
			Categories(),
			`[]`,
		},
		{
			"singleton",
			Categories(CategoryHighlight),
			`["poi_highlight"]`,
		},
		{
			"insertion order does not matter",
			Categories(CategoryHighlight, CategorySponsor),
			`["sponsor","poi_highlight"]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.set.urlValue(); got != tt.want {
				t.Errorf("urlValue() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestAcceptedActionsURLValue(t *testing.T) {
	tests := []struct {
		name string
		set  AcceptedActions
		want string
	}{
		{"all actions", AllActions(), `["skip","mute","poi","full"]`},
		{"empty set", Actions(), `[]`},
		{"singleton", Actions(ActionMute), `["mute"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.set.urlValue(); got != tt.want {
				t.Errorf("urlValue() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestAcceptedCategoriesHasWith(t *testing.T) {
	set := Categories(CategorySponsor)
	if !set.Has(CategorySponsor) {
		t.Error("set should contain sponsor")
	}
	if set.Has(CategoryNonMusic) {
		t.Error("set should not contain music_offtopic")
	}

	set = set.With(CategoryNonMusic)
	if !set.Has(CategoryNonMusic) {
		t.Error("With should add music_offtopic")
	}

	all := AllCategories()
	for c := CategorySponsor; c <= CategoryExclusiveAccess; c++ {
		if !all.Has(c) {
			t.Errorf("AllCategories should contain %v", c)
		}
	}
}

func TestURLArray(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{"empty", nil, `[]`},
		{"single", []string{"a"}, `["a"]`},
		{"multiple", []string{"a", "b", "c"}, `["a","b","c"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := urlArray(tt.values); got != tt.want {
				t.Errorf("urlArray(%v) = %s, want %s", tt.values, got, tt.want)
			}
		})
	}
}
