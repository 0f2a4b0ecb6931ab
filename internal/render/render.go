// Copyright (c) 2026 Vinterdal Labs
// SPDX-License-Identifier: GPL-3.0-or-later

// Package render renders the public site templates. All variants live in one
// parsed template set; pages pick their header, footer and content blocks by
// name through the include helper.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"github.com/vinterdal/bloggverk/internal/i18n"
	"github.com/vinterdal/bloggverk/internal/model"
	"github.com/vinterdal/bloggverk/internal/util"
)

var (
	markdownConverter = goldmark.New()
	markdownSanitizer = bluemonday.UGCPolicy()
)

// serifFonts are the fonts in the closed set that need a serif fallback stack.
var serifFonts = map[string]bool{
	"Playfair Display": true,
	"Lora":             true,
	"Merriweather":     true,
}

// Config holds renderer configuration.
type Config struct {
	TemplatesFS fs.FS
	IsDev       bool
}

// Renderer handles template rendering. In development templates are
// re-parsed on every render so edits show up without a restart.
type Renderer struct {
	fs    fs.FS
	isDev bool

	mu   sync.RWMutex
	tmpl *template.Template
}

// New creates a Renderer with parsed templates.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		fs:    cfg.TemplatesFS,
		isDev: cfg.IsDev,
	}
	tmpl, err := r.parse()
	if err != nil {
		return nil, err
	}
	r.tmpl = tmpl
	return r, nil
}

// parse loads every template file into a single set. Variant blocks are
// {{define}}d with numbered names (header_1 .. header_5 and so on).
func (r *Renderer) parse() (*template.Template, error) {
	// The include helper closes over the final template set so variant
	// blocks can be dispatched by computed name.
	var root *template.Template

	funcs := templateFuncs()
	funcs["include"] = func(name string, data any) (template.HTML, error) {
		var buf bytes.Buffer
		if err := root.ExecuteTemplate(&buf, name, data); err != nil {
			return "", fmt.Errorf("including template %s: %w", name, err)
		}
		return template.HTML(buf.String()), nil
	}

	tmpl, err := template.New("").Funcs(funcs).ParseFS(r.fs,
		"layouts/*.html",
		"partials/*.html",
		"headers/*.html",
		"footers/*.html",
		"frontpages/*.html",
		"posts/*.html",
		"pages/*.html",
	)
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	root = tmpl
	return tmpl, nil
}

// PageData is the data passed to every public page render.
type PageData struct {
	Website *model.Website
	Lang    i18n.Config

	Title           string
	MetaDescription string
	Canonical       string

	// Variant block names resolved by the handler via the dispatcher.
	HeaderTemplate  string
	FooterTemplate  string
	ContentTemplate string

	Posts    []*model.Post
	Post     *model.Post
	PrevPost *model.Post
	NextPost *model.Post

	// PageContent carries the HTML body of a static page (about, contact).
	PageContent template.HTML

	Disclaimer  *i18n.Disclaimer
	CurrentYear int
}

// Render writes a full page. In development the templates are re-parsed
// first.
func (r *Renderer) Render(w http.ResponseWriter, data *PageData) error {
	tmpl := r.templates()
	data.CurrentYear = time.Now().Year()

	// Render to a buffer first to catch errors before any bytes go out.
	buf := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(buf, "base", data); err != nil {
		return fmt.Errorf("executing base template: %w", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := buf.WriteTo(w)
	return err
}

// RenderNotFound writes the branded not-found page for unresolved hostnames.
func (r *Renderer) RenderNotFound(w http.ResponseWriter, hostname string) error {
	tmpl := r.templates()

	buf := new(bytes.Buffer)
	data := struct {
		Hostname    string
		CurrentYear int
	}{hostname, time.Now().Year()}
	if err := tmpl.ExecuteTemplate(buf, "site_not_found", data); err != nil {
		return fmt.Errorf("executing not-found template: %w", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, err := buf.WriteTo(w)
	return err
}

func (r *Renderer) templates() *template.Template {
	if r.isDev {
		if tmpl, err := r.parse(); err == nil {
			r.mu.Lock()
			r.tmpl = tmpl
			r.mu.Unlock()
		}
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tmpl
}

// templateFuncs returns the custom template functions.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"safe": func(s string) template.HTML {
			return template.HTML(s)
		},
		"markdown": func(s string) template.HTML {
			var buf bytes.Buffer
			if err := markdownConverter.Convert([]byte(s), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(s))
			}
			return template.HTML(markdownSanitizer.SanitizeBytes(buf.Bytes()))
		},
		"fontStack": FontStack,
		"formatDate": func(t time.Time, locale string) string {
			return FormatDate(t, locale)
		},
		"readingTime": func(content string) int {
			return util.ReadingTime(content, 200)
		},
		"truncate": func(s string, length int) string {
			return util.Truncate(s, length, "...")
		},
		"dict": func(pairs ...any) (map[string]any, error) {
			if len(pairs)%2 != 0 {
				return nil, fmt.Errorf("dict needs key/value pairs")
			}
			m := make(map[string]any, len(pairs)/2)
			for i := 0; i < len(pairs); i += 2 {
				key, ok := pairs[i].(string)
				if !ok {
					return nil, fmt.Errorf("dict keys must be strings")
				}
				m[key] = pairs[i+1]
			}
			return m, nil
		},
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
		"seq": func(start, end int) []int {
			var result []int
			for i := start; i <= end; i++ {
				result = append(result, i)
			}
			return result
		},
	}
}

// FontStack returns a CSS font-family stack for a font from the closed set.
func FontStack(font string) template.CSS {
	if font == "" {
		font = "Inter"
	}
	fallback := "Helvetica, Arial, sans-serif"
	if serifFonts[font] {
		fallback = "Georgia, serif"
	}
	return template.CSS(fmt.Sprintf("'%s', %s", font, fallback))
}

// monthNames maps the supported date locales to their month names.
var monthNames = map[string][12]string{
	"sv-SE": {"januari", "februari", "mars", "april", "maj", "juni",
		"juli", "augusti", "september", "oktober", "november", "december"},
	"nb-NO": {"januar", "februar", "mars", "april", "mai", "juni",
		"juli", "august", "september", "oktober", "november", "desember"},
	"de-DE": {"Januar", "Februar", "März", "April", "Mai", "Juni",
		"Juli", "August", "September", "Oktober", "November", "Dezember"},
}

// FormatDate formats a date in the tenant's locale. English locales use the
// standard library formatting; the others carry their own month names.
func FormatDate(t time.Time, locale string) string {
	months, ok := monthNames[locale]
	if !ok {
		return t.Format("2 January 2006")
	}
	month := months[int(t.Month())-1]
	if strings.HasPrefix(locale, "de") {
		return fmt.Sprintf("%d. %s %d", t.Day(), month, t.Year())
	}
	return fmt.Sprintf("%d %s %d", t.Day(), month, t.Year())
}
