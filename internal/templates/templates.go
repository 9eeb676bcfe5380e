package templates

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// IssueContext is the data a display template is executed against.
type IssueContext struct {
	ID            string
	Key           string
	Summary       string
	Status        string
	Type          string
	URL           string
	ParentKey     string
	ParentSummary string
}

// Renderer renders the title and subtitle of a result item. Template strings
// come from the workflow config; a nil template falls back to the fixed
// default format, as does a template that fails at execution time.
type Renderer struct {
	title    *template.Template
	subtitle *template.Template
}

// NewRenderer parses the optional title/subtitle template strings with the
// sprig function map. Empty strings leave the respective default in place;
// parse errors are reported so a broken config does not fail silently.
func NewRenderer(titleTmpl, subtitleTmpl string) (*Renderer, error) {
	r := &Renderer{}

	if titleTmpl != "" {
		t, err := template.New("title").Funcs(sprig.TxtFuncMap()).Parse(titleTmpl)
		if err != nil {
			return nil, fmt.Errorf("parse title template: %w", err)
		}
		r.title = t
	}

	if subtitleTmpl != "" {
		t, err := template.New("subtitle").Funcs(sprig.TxtFuncMap()).Parse(subtitleTmpl)
		if err != nil {
			return nil, fmt.Errorf("parse subtitle template: %w", err)
		}
		r.subtitle = t
	}

	return r, nil
}

// Title renders the item title for an issue.
func (r *Renderer) Title(ctx IssueContext) string {
	return render(r.title, ctx, ctx.Summary)
}

// Subtitle renders the item subtitle for an issue. The default is
// "KEY (Status)", extended with " - parent summary" when the issue has a
// parent carrying one.
func (r *Renderer) Subtitle(ctx IssueContext) string {
	fallback := fmt.Sprintf("%s (%s)", ctx.Key, ctx.Status)
	if ctx.ParentSummary != "" {
		fallback += " - " + ctx.ParentSummary
	}
	return render(r.subtitle, ctx, fallback)
}

// render executes tmpl against ctx, returning fallback when tmpl is nil or
// execution fails.
func render(tmpl *template.Template, ctx IssueContext, fallback string) string {
	if tmpl == nil {
		return fallback
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return fallback
	}
	return buf.String()
}
