package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"path"
	"strings"

	"beregne/internal/landing"
	"github.com/Masterminds/sprig/v3"
)

//go:embed tpl/**/*.tmpl
//go:embed tpl/*.tmpl
var tplFS embed.FS

// Pages lists the page templates under tpl/pages.
var Pages = []string{"landing"}

type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses the base layout, partials and every page once.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(Pages))}
	for _, name := range Pages {
		t := template.New("root").Funcs(funcs()).Funcs(sprig.FuncMap())
		if _, err := t.ParseFS(tplFS, "tpl/base.tmpl", "tpl/partials/*.tmpl"); err != nil {
			return nil, fmt.Errorf("parse layout: %w", err)
		}
		if _, err := t.ParseFS(tplFS, path.Join("tpl/pages", name+".tmpl")); err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

func (r *Renderer) Render(w io.Writer, name string, data any) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	return t.ExecuteTemplate(w, name, data)
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"buttonClass": buttonClass,
		"badgeClass":  badgeClass,
		"linkRel":     linkRel,
	}
}

func buttonClass(b landing.Button) string {
	cls := []string{"btn", "btn-" + string(orDefault(b.Variant))}
	if b.Size == landing.SizeLarge {
		cls = append(cls, "btn-lg")
	}
	if b.Wide {
		cls = append(cls, "w-full")
	}
	return strings.Join(cls, " ")
}

func badgeClass(b landing.Badge) string {
	return "badge badge-" + string(orDefault(b.Variant))
}

// linkRel isolates pages opened in a new browsing context from the opener.
func linkRel(target string) string {
	if target == landing.TargetBlank {
		return "noopener noreferrer"
	}
	return ""
}

func orDefault(v landing.Variant) landing.Variant {
	if v == "" {
		return landing.VariantDefault
	}
	return v
}
