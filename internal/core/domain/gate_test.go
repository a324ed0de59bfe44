package domain

import "testing"

func TestDecide(t *testing.T) {
	cctv, _ := LookupSection(SectionLiveCCTV)
	about, _ := LookupSection(SectionAboutUs)

	tests := []struct {
		name     string
		loggedIn bool
		view     Section
		want     DecisionKind
	}{
		{"protected logged out", false, cctv, DecisionRedirectToLogin},
		{"protected logged in", true, cctv, DecisionRender},
		{"public logged out", false, about, DecisionRender},
		{"public logged in", true, about, DecisionRender},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(tt.loggedIn, tt.view)
			if got.Kind != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got.Kind)
			}
			if got.Rendered() && (got.Section == nil || got.Section.Key != tt.view.Key) {
				t.Fatalf("render decision must carry the view, got %+v", got.Section)
			}
			if !got.Rendered() && got.Section != nil {
				t.Fatalf("redirect must not carry a view")
			}
		})
	}
}

func TestNavItems_HidesProtectedWhenLoggedOut(t *testing.T) {
	for _, s := range NavItems(false) {
		if s.Key == SectionLiveCCTV {
			t.Fatalf("livecctv listed for logged-out session")
		}
	}
	found := false
	for _, s := range NavItems(true) {
		if s.Key == SectionLiveCCTV {
			found = true
		}
	}
	if !found {
		t.Fatalf("livecctv missing for logged-in session")
	}
}
