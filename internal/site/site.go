// Package site binds configuration to the landing page and renders it.
package site

import (
	"bytes"
	"fmt"
	"io"

	"beregne/internal/config"
	"beregne/internal/landing"
	"beregne/internal/web"
	"golang.org/x/text/language"
)

type Site struct {
	Page  landing.Page
	Links landing.Links
	Lang  language.Tag

	rend *web.Renderer
}

func New(cfg config.SiteConfig) (*Site, error) {
	rend, err := web.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("templates: %w", err)
	}
	links := landing.LinksFor(cfg.Origin, cfg.ContactEmail)
	return &Site{
		Page:  landing.Build(links),
		Links: links,
		Lang:  cfg.Tag(),
		rend:  rend,
	}, nil
}

// Render writes the full landing document.
func (s *Site) Render(w io.Writer) error {
	data := web.Page[landing.Page]{
		Head: web.HeadData{
			Title:       s.Page.Title,
			Description: s.Page.Description,
			Lang:        s.Lang.String(),
		},
		Content: s.Page,
	}
	return s.rend.Render(w, "landing", data)
}

// Bytes renders the document into memory.
func (s *Site) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Summary is the structural outline of the page.
type Summary struct {
	Sections       []landing.Kind `json:"sections"`
	FeatureCards   int            `json:"feature_cards"`
	DashboardLinks int            `json:"dashboard_links"`
	FrameSrc       string         `json:"frame_src"`
}

func (s *Site) Summary() Summary {
	sum := Summary{
		Sections:       s.Page.Kinds(),
		FeatureCards:   len(s.Page.FeatureCards()),
		DashboardLinks: len(s.Page.LinksTo(s.Links.Dashboard)),
	}
	if frames := s.Page.Frames(); len(frames) > 0 {
		sum.FrameSrc = frames[0].Src
	}
	return sum
}
