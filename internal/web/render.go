package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"

	"github.com/warrantyguard/claim-portal/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	pageHome      = "home"
	pageSubmit    = "submit"
	pageTrack     = "track"
	pageDashboard = "dashboard"
)

type renderer struct {
	pages map[string]*template.Template
}

func newRenderer() (*renderer, error) {
	pages := make(map[string]*template.Template)
	for _, name := range []string{pageHome, pageSubmit, pageTrack, pageDashboard} {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		pages[name] = t
	}
	return &renderer{pages: pages}, nil
}

// render writes nothing when the template fails.
func (r *renderer) render(w http.ResponseWriter, status int, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

func actionPath(id model.ClaimID, action string) string {
	return "/dashboard/" + url.PathEscape(id.String()) + "/actions/" + url.PathEscape(action)
}

func trackPath(id model.ClaimID) string {
	return "/track?id=" + url.QueryEscape(id.String())
}
