package domain

// SectionKey identifies a content section. It doubles as the anchor id in
// the single-page layout and as the path segment in the router layout.
type SectionKey string

const (
	SectionHome           SectionKey = "home"
	SectionAboutUs        SectionKey = "aboutus"
	SectionWhoWeAre       SectionKey = "whoweare"
	SectionOurManifesto   SectionKey = "ourmanifesto"
	SectionOurTeam        SectionKey = "ourteam"
	SectionWhatWeDo       SectionKey = "whatwedo"
	SectionChildProtect   SectionKey = "childprotection"
	SectionChildEducation SectionKey = "childeducation"
	SectionAfterCare      SectionKey = "aftercare"
	SectionSwadhar        SectionKey = "swadhar"
	SectionElderlyCare    SectionKey = "elderlycare"
	SectionLatestProjects SectionKey = "latestprojects"
	SectionNewsRoom       SectionKey = "newsroom"
	SectionCaseHistory    SectionKey = "casehistory"
	SectionSuccessStory   SectionKey = "successstory"
	SectionGallery        SectionKey = "gallery"
	SectionLocation       SectionKey = "location"
	SectionSupportUs      SectionKey = "supportus"
	SectionDonate         SectionKey = "donate"
	SectionContact        SectionKey = "contact"
	SectionLiveCCTV       SectionKey = "livecctv"
	SectionLogin          SectionKey = "login"
	SectionNotFound       SectionKey = "notfound"
)

// Nav groups used by the navigation bar.
const (
	NavGroupNone  = ""
	NavGroupMain  = "main"
	NavGroupAbout = "about"
)

// Section is a stateless content view registered under a navigation key.
type Section struct {
	Key       SectionKey `json:"key"`
	Title     string     `json:"title"`
	Path      string     `json:"path"`
	Summary   string     `json:"summary,omitempty"`
	NavGroup  string     `json:"nav_group,omitempty"`
	Protected bool       `json:"protected"`
}

// sections is ordered as the sections appear on the single page.
var sections = []Section{
	{Key: SectionHome, Title: "Home", Path: "/", Summary: "Janasiksha Prochar Kendra: a safe haven for children and women in need."},
	{Key: SectionAboutUs, Title: "About Us", Path: "/aboutus", NavGroup: NavGroupMain, Summary: "Who we are and why we exist."},
	{Key: SectionWhoWeAre, Title: "Who We Are", Path: "/whoweare", NavGroup: NavGroupAbout},
	{Key: SectionOurManifesto, Title: "Our Manifesto", Path: "/ourmanifesto", NavGroup: NavGroupAbout},
	{Key: SectionOurTeam, Title: "Our Team", Path: "/ourteam", NavGroup: NavGroupAbout, Summary: "Meet the dedicated team behind Janasiksha Prochar Kendra."},
	{Key: SectionWhatWeDo, Title: "What We Do", Path: "/whatwedo", NavGroup: NavGroupMain, Summary: "Rescue, Rehabilitate, Reintegrate."},
	{Key: SectionChildProtect, Title: "Child Protection", Path: "/childprotection"},
	{Key: SectionChildEducation, Title: "Child Education", Path: "/childeducation"},
	{Key: SectionAfterCare, Title: "After Care", Path: "/aftercare"},
	{Key: SectionSwadhar, Title: "Swadhar", Path: "/swadhar"},
	{Key: SectionElderlyCare, Title: "Elderly Care", Path: "/elderlycare"},
	{Key: SectionLatestProjects, Title: "Our Latest Projects", Path: "/latestprojects"},
	{Key: SectionNewsRoom, Title: "News Room", Path: "/newsroom", NavGroup: NavGroupMain, Summary: "Our latest initiatives."},
	{Key: SectionCaseHistory, Title: "Case History", Path: "/casehistory", NavGroup: NavGroupMain},
	{Key: SectionSuccessStory, Title: "Success Story", Path: "/successstory"},
	{Key: SectionGallery, Title: "Gallery", Path: "/gallery", NavGroup: NavGroupMain},
	{Key: SectionLocation, Title: "Location", Path: "/location", Summary: "89, Elliot Road, Kolkata - 700016, West Bengal, India"},
	{Key: SectionSupportUs, Title: "Support Us", Path: "/supportus", NavGroup: NavGroupMain},
	{Key: SectionDonate, Title: "Donate", Path: "/donate"},
	{Key: SectionContact, Title: "Contact", Path: "/contact", NavGroup: NavGroupMain, Summary: "info@jpk.org | +91 33 2229 3292"},
	{Key: SectionLiveCCTV, Title: "Live CCTV", Path: "/livecctv", NavGroup: NavGroupMain, Protected: true},
	{Key: SectionLogin, Title: "Login", Path: "/login"},
}

var notFoundSection = Section{Key: SectionNotFound, Title: "Page Not Found", Path: "/notfound"}

var sectionIndex = func() map[SectionKey]Section {
	idx := make(map[SectionKey]Section, len(sections))
	for _, s := range sections {
		idx[s.Key] = s
	}
	return idx
}()

// LookupSection returns the registered section for key.
func LookupSection(key SectionKey) (Section, bool) {
	s, ok := sectionIndex[key]
	return s, ok
}

// NotFoundSection is the catch-all view for unknown targets.
func NotFoundSection() Section { return notFoundSection }

// Sections returns the full registry in page order.
func Sections() []Section {
	out := make([]Section, len(sections))
	copy(out, sections)
	return out
}

// NavItems returns the sections shown in the navigation bar. Protected
// sections are only listed for logged-in sessions.
func NavItems(isLoggedIn bool) []Section {
	out := make([]Section, 0, len(sections))
	for _, s := range sections {
		if s.NavGroup == NavGroupNone {
			continue
		}
		if s.Protected && !isLoggedIn {
			continue
		}
		out = append(out, s)
	}
	return out
}
