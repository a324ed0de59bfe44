package domain

// DecisionKind is the outcome of the auth gate.
type DecisionKind string

const (
	DecisionRender          DecisionKind = "render"
	DecisionRedirectToLogin DecisionKind = "redirect_to_login"
)

// LoginPath is where gated requests are sent.
const LoginPath = "/login"

// RenderDecision is either Render(Section) or RedirectToLogin.
type RenderDecision struct {
	Kind    DecisionKind `json:"decision"`
	Section *Section     `json:"section,omitempty"`
}

// Decide is the auth gate: a pure function of the session flag and the
// requested view. It is evaluated on every navigation.
func Decide(isLoggedIn bool, view Section) RenderDecision {
	if view.Protected && !isLoggedIn {
		return RenderDecision{Kind: DecisionRedirectToLogin}
	}
	v := view
	return RenderDecision{Kind: DecisionRender, Section: &v}
}

// Rendered reports whether the decision renders the requested view.
func (d RenderDecision) Rendered() bool { return d.Kind == DecisionRender }
