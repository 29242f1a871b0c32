package handler

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"path"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pkordes/fyyur/internal/domain"
)

const (
	layoutFile   = "templates/layout.html"
	partialsFile = "templates/partials.html"
)

// Display formats for the datetime template function.
const (
	formatFull   = "Monday January 2, 2006 at 3:04PM"
	formatMedium = "Mon 01/02/2006 3:04PM"
)

// views holds one template set per page, each parsed together with the
// shared layout and partials so every page can define its own "content".
type views struct {
	pages map[string]*template.Template
}

func newViews(fsys fs.FS) (*views, error) {
	files, err := fs.Glob(fsys, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("handler.newViews: %w", err)
	}

	v := &views{pages: make(map[string]*template.Template)}
	for _, f := range files {
		if f == layoutFile || f == partialsFile {
			continue
		}
		name := strings.TrimSuffix(path.Base(f), ".html")
		t, err := template.New(name).Funcs(templateFuncs()).ParseFS(fsys, layoutFile, partialsFile, f)
		if err != nil {
			return nil, fmt.Errorf("handler.newViews: parsing %s: %w", f, err)
		}
		v.pages[name] = t
	}
	return v, nil
}

func (v *views) execute(w io.Writer, page string, data pageData) error {
	t, ok := v.pages[page]
	if !ok {
		return fmt.Errorf("handler.views.execute: unknown page %q", page)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"datetime": formatDatetime,
		"title":    cases.Title(language.English).String,
		"join":     strings.Join,
		"has":      func(list []string, v string) bool { return slices.Contains(list, v) },
		"states":   func() []string { return domain.States },
		"genres":   func() []string { return domain.Genres },
	}
}

// formatDatetime renders t in UTC; format is "full" or "medium".
func formatDatetime(t time.Time, format string) string {
	layout := formatMedium
	if format == "full" {
		layout = formatFull
	}
	return t.UTC().Format(layout)
}

// pageData is what the layout template receives. Data is handed to the page's
// "content" template.
type pageData struct {
	Title   string
	Flashes []string
	Data    any
}

// render executes page into a buffer first so a template failure can still
// produce a clean 500 instead of a half-written page.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, page, title string, data any) {
	pd := pageData{Title: title, Flashes: s.takeFlashes(w, r), Data: data}

	var buf bytes.Buffer
	if err := s.views.execute(&buf, page, pd); err != nil {
		s.log.ErrorContext(r.Context(), "template render failed", "page", page, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
