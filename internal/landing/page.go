// Package landing describes the Beregne 2.0 marketing page as a plain value
// tree. Nothing here touches markup; internal/web turns the tree into HTML.
package landing

// Kind names a top-level page section.
type Kind string

const (
	KindHeader   Kind = "header"
	KindHero     Kind = "hero"
	KindFeatures Kind = "features"
	KindDemo     Kind = "demo"
	KindPartners Kind = "partners"
	KindCTA      Kind = "cta"
	KindFooter   Kind = "footer"
)

// Order is the fixed top-to-bottom section order of the page.
var Order = []Kind{KindHeader, KindHero, KindFeatures, KindDemo, KindPartners, KindCTA, KindFooter}

// Variant selects the look of a button or badge.
type Variant string

const (
	VariantDefault   Variant = "default"
	VariantOutline   Variant = "outline"
	VariantSecondary Variant = "secondary"
)

// Size selects the button size.
type Size string

const (
	SizeDefault Size = "default"
	SizeLarge   Size = "lg"
)

// TargetBlank opens the destination in a new browsing context.
const TargetBlank = "_blank"

type Link struct {
	Label  string
	Href   string
	Target string
}

// Button is a call to action. A button without Href is inert.
type Button struct {
	Label   string
	Variant Variant
	Size    Size
	Href    string
	Target  string
	Wide    bool
}

// Link returns the navigation a button performs and whether it has one.
func (b Button) Link() (Link, bool) {
	if b.Href == "" {
		return Link{}, false
	}
	return Link{Label: b.Label, Href: b.Href, Target: b.Target}, true
}

type Badge struct {
	Label   string
	Variant Variant
}

// Bullet is a single checklist line of a feature card.
type Bullet struct {
	Mark string
	Text string
}

// Item is a titled benefit line.
type Item struct {
	Title string
	Text  string
}

// Step is one numbered onboarding step.
type Step struct {
	Badge Badge
	Text  string
}

type Card struct {
	Icon        string
	Tone        string
	Title       string
	Badge       *Badge
	Description string
	Bullets     []Bullet
	Items       []Item
	Steps       []Step
	Action      *Button
	Feature     bool
}

// Frame is an embedded browsing context pointing at an external origin.
type Frame struct {
	Heading string
	Caption string
	Src     string
	Width   string
	Height  string
	Title   string
	Border  bool
}

// Span is a run of headline text; Accent spans are highlighted.
type Span struct {
	Text   string
	Accent bool
}

type Section struct {
	Kind     Kind
	ID       string
	Brand    string
	Headline []Span
	Title    string
	Lead     string
	Nav      []Link
	Actions  []Button
	Cards    []Card
	Frame    *Frame
	Note     string
}

// Page is the complete landing page.
type Page struct {
	Title       string
	Description string
	Sections    []Section
}

// Kinds returns the section kinds in document order.
func (p Page) Kinds() []Kind {
	out := make([]Kind, 0, len(p.Sections))
	for _, s := range p.Sections {
		out = append(out, s.Kind)
	}
	return out
}

// Section returns the first section of the given kind.
func (p Page) Section(k Kind) (Section, bool) {
	for _, s := range p.Sections {
		if s.Kind == k {
			return s, true
		}
	}
	return Section{}, false
}

// FeatureCards returns the product cards of the features section.
func (p Page) FeatureCards() []Card {
	var out []Card
	for _, s := range p.Sections {
		for _, c := range s.Cards {
			if c.Feature {
				out = append(out, c)
			}
		}
	}
	return out
}

// Links returns every navigable element in document order: plain links,
// buttons with a destination and card actions.
func (p Page) Links() []Link {
	var out []Link
	for _, s := range p.Sections {
		out = append(out, s.Nav...)
		for _, b := range s.Actions {
			if l, ok := b.Link(); ok {
				out = append(out, l)
			}
		}
		for _, c := range s.Cards {
			if c.Action == nil {
				continue
			}
			if l, ok := c.Action.Link(); ok {
				out = append(out, l)
			}
		}
	}
	return out
}

// LinksTo returns the links whose destination equals href.
func (p Page) LinksTo(href string) []Link {
	var out []Link
	for _, l := range p.Links() {
		if l.Href == href {
			out = append(out, l)
		}
	}
	return out
}

// Frames returns all embedded frames.
func (p Page) Frames() []Frame {
	var out []Frame
	for _, s := range p.Sections {
		if s.Frame != nil {
			out = append(out, *s.Frame)
		}
	}
	return out
}
