// Package view renders the HTML pages of the booking directory from
// embedded templates.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-booking/internal/model"
	"github.com/iliyamo/venue-booking/internal/session"
)

//go:embed templates/*.html
var templatesFS embed.FS

// MediumDateTime is how start times are shown on listing and detail pages.
const MediumDateTime = "Mon 01, 02, 2006 3:04PM"

// FormDateTime matches the value format of an <input type="datetime-local">.
const FormDateTime = "2006-01-02T15:04"

// Page is the value every template is executed with.
type Page struct {
	Title   string
	Flashes []session.Flash
	Data    any
}

// Renderer implements echo.Renderer. Each page template is parsed together
// with layout.html into its own set so page blocks never collide.
type Renderer struct {
	pages map[string]*template.Template
}

// Funcs are the helpers available to every template.
var Funcs = template.FuncMap{
	"datetime": func(t time.Time) string { return t.UTC().Format(MediumDateTime) },
	"formtime": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.UTC().Format(FormDateTime)
	},
	"genres":       func(g model.Genres) string { return g.String() },
	"hasGenre":     func(g model.Genres, name string) bool { return g.Contains(name) },
	"genreChoices": func() []string { return model.GenreChoices },
	"plural": func(n int, one, many string) string {
		if n == 1 {
			return one
		}
		return many
	},
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	return parse(templatesFS)
}

func parse(fsys fs.FS) (*Renderer, error) {
	names, err := fs.Glob(fsys, "templates/*.html")
	if err != nil {
		return nil, err
	}
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, name := range names {
		base := strings.TrimSuffix(path.Base(name), ".html")
		if base == "layout" {
			continue
		}
		t, err := template.New(base).Funcs(Funcs).ParseFS(fsys, "templates/layout.html", name)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		r.pages[base] = t
	}
	return r, nil
}

// MustNew is like New but panics on a template error.
func MustNew() *Renderer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

// Render executes the named page inside the layout. data is usually a Page;
// anything else is wrapped into one.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("view: unknown template %q", name)
	}
	p, ok := data.(Page)
	if !ok {
		p = Page{Data: data}
	}
	return t.ExecuteTemplate(w, "layout", p)
}

// Has reports whether a page template exists.
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}
