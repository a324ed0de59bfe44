package service

import (
	"github.com/janasiksha/jpk-web/internal/core/domain"
	"github.com/janasiksha/jpk-web/internal/core/ports"
)

const (
	StrategyRouter = "router"
	StrategyAnchor = "anchor"
)

// Navigator carries out a navigation request for one strategy. Content
// sections never see which strategy is active.
type Navigator interface {
	Name() string
	Navigate(s *domain.Session, target string) ports.NavigationResult
}

// NewNavigator returns the navigator for name, falling back to the router.
func NewNavigator(name string) Navigator {
	if name == StrategyAnchor {
		return AnchorNavigator{}
	}
	return RouterNavigator{}
}

// RouterNavigator maps targets to URL paths and records each visit in the
// session history.
type RouterNavigator struct{}

func (RouterNavigator) Name() string { return StrategyRouter }

func (RouterNavigator) Navigate(s *domain.Session, target string) ports.NavigationResult {
	res := ports.NavigationResult{Strategy: StrategyRouter, Target: target}

	section, ok := domain.LookupSection(domain.SectionKey(target))
	if !ok {
		section = domain.NotFoundSection()
	}
	decision := domain.Decide(s.IsLoggedIn, section)
	res.Decision = decision.Kind

	if decision.Rendered() {
		res.Section = section
		res.Path = section.Path
	} else {
		login, _ := domain.LookupSection(domain.SectionLogin)
		res.Section = login
		res.Path = domain.LoginPath
	}
	s.PushHistory(res.Path)
	return res
}

// AnchorNavigator scrolls to a section of the single page. Sections that
// are not on the page (unknown keys, gated sections while logged out) turn
// the request into a no-op.
type AnchorNavigator struct{}

func (AnchorNavigator) Name() string { return StrategyAnchor }

func (AnchorNavigator) Navigate(s *domain.Session, target string) ports.NavigationResult {
	res := ports.NavigationResult{Strategy: StrategyAnchor, Target: target}

	section, ok := domain.LookupSection(domain.SectionKey(target))
	if !ok {
		res.Decision = domain.DecisionRender
		res.Section = domain.NotFoundSection()
		return res
	}
	decision := domain.Decide(s.IsLoggedIn, section)
	res.Decision = decision.Kind
	if !decision.Rendered() {
		return res
	}
	res.Section = section
	res.Anchor = "#" + string(section.Key)
	res.Scrolled = true
	return res
}
