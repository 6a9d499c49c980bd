// Package view renders the server side HTML pages.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/jinzhu/inflection"
	"github.com/sanyco86/sample-app/internal/core"
)

const baseTitle = "Sample App"

//go:embed templates/*.html
var templatesFS embed.FS

var pageNames = []string{
	"home",
	"signup",
	"signin",
	"index",
	"show",
	"edit",
	"show_follow",
	"not_found",
	"error",
}

// Flash is a one-off notice shown at the top of the next page.
type Flash struct {
	Kind    string
	Message string
}

// FormValues are the submitted values echoed back into a re-rendered form.
type FormValues struct {
	Name    string
	Email   string
	Content string
}

type Page struct {
	Title       string
	CurrentUser *core.UserRecord
	Flash       *Flash
	Errors      []string
	Form        FormValues
	Data        any
}

func (p Page) SignedIn() bool {
	return p.CurrentUser != nil
}

// IsCurrent reports whether userID is the signed in user.
func (p Page) IsCurrent(userID string) bool {
	return p.CurrentUser != nil && p.CurrentUser.ID == userID
}

// CanDelete reports whether a delete control is shown for user: only admins
// see it and never on their own row.
func (p Page) CanDelete(user core.UserRecord) bool {
	return p.CurrentUser != nil && p.CurrentUser.Admin && p.CurrentUser.ID != user.ID
}

type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New("layout").Funcs(funcs).ParseFS(templatesFS,
			"templates/layout.html",
			"templates/partials.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		pages[name] = tmpl
	}

	return &Renderer{
		pages: pages,
	}, nil
}

// Render writes the named page with the given status. Nothing is written when
// the template fails.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, page Page) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", page); err != nil {
		return fmt.Errorf("execute %s template: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

var funcs = template.FuncMap{
	"fullTitle": FullTitle,
	"pluralize": Pluralize,
	"gravatar": func(user core.UserRecord, size int) string {
		return user.GravatarURL(size)
	},
	"timeAgo": timeAgo,
}

// FullTitle builds the document title for a page.
func FullTitle(title string) string {
	if title == "" {
		return baseTitle
	}
	return baseTitle + " | " + title
}

// Pluralize prefixes word with count, in plural form unless count is one.
func Pluralize(count int, word string) string {
	if count != 1 {
		word = inflection.Plural(word)
	}
	return fmt.Sprintf("%d %s", count, word)
}

func timeAgo(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "less than a minute"
	case d < time.Hour:
		return Pluralize(int(d/time.Minute), "minute")
	case d < 24*time.Hour:
		return Pluralize(int(d/time.Hour), "hour")
	default:
		return Pluralize(int(d/(24*time.Hour)), "day")
	}
}
