package feedback

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gi8lino/jirafred/internal/icons"
	"github.com/gi8lino/jirafred/internal/jira"
	"github.com/gi8lino/jirafred/internal/templates"
)

// Assembler converts fetched issues into the launcher's result document.
type Assembler struct {
	IssueBaseURL string // "<account>/browse", used for issue_url variables
	Resolver     *icons.Resolver
	Renderer     *templates.Renderer
}

// Assemble builds the result document for the issues matching query. An
// empty issue list yields exactly one non-actionable placeholder naming the
// original query.
func (a *Assembler) Assemble(query string, issues []jira.Issue) Document {
	if len(issues) == 0 {
		return Document{Items: []Item{fillDefaults(NoResults(query))}}
	}

	items := make([]Item, 0, len(issues))
	for _, issue := range issues {
		items = append(items, fillDefaults(a.fromIssue(issue)))
	}
	return Document{Items: items}
}

// Failure builds a one-item document describing a failed invocation. The
// process still exits successfully; the launcher shows the error row instead.
func Failure(err error) Document {
	invalid := false
	return Document{Items: []Item{fillDefaults(Item{
		Title:    "No Issues Found",
		Subtitle: err.Error(),
		Valid:    &invalid,
	})}}
}

// NoResults is the placeholder item for a search that matched nothing.
func NoResults(query string) Item {
	invalid := false
	return Item{
		Title:    "No Results",
		Subtitle: fmt.Sprintf("No issues matching '%s'", query),
		Valid:    &invalid,
	}
}

// fromIssue maps one issue to a display item.
func (a *Assembler) fromIssue(issue jira.Issue) Item {
	var parentKey, parentSummary *string
	if parent := issue.Fields.Parent; parent != nil {
		if parent.Key != "" {
			parentKey = &parent.Key
		}
		if parent.Fields.Summary != "" {
			parentSummary = &parent.Fields.Summary
		}
	}

	ctx := templates.IssueContext{
		ID:      issue.ID,
		Key:     issue.Key,
		Summary: issue.Fields.Summary,
		Status:  issue.Fields.Status.Name,
		Type:    strings.ToLower(issue.Fields.IssueType.Name),
		URL:     a.IssueBaseURL + "/" + issue.Key,
	}
	if parentKey != nil {
		ctx.ParentKey = *parentKey
	}
	if parentSummary != nil {
		ctx.ParentSummary = *parentSummary
	}

	return Item{
		Title:    a.Renderer.Title(ctx),
		Subtitle: a.Renderer.Subtitle(ctx),
		Arg:      issue.ID,
		Icon:     &Icon{Path: a.Resolver.Resolve(issue)},
		Variables: &Variables{
			IssueID:       issue.ID,
			IssueKey:      issue.Key,
			IssueType:     ctx.Type,
			IssueSummary:  issue.Fields.Summary,
			IssueStatus:   issue.Fields.Status.Name,
			IssueURL:      ctx.URL,
			ParentKey:     parentKey,
			ParentSummary: parentSummary,
		},
	}
}

// fillDefaults completes the copy/large-type/ctrl-modifier sub-fields of an
// item when the producer left them empty. Already-populated sub-fields are
// never overwritten. The ctrl alternate acts on the human-readable title
// rather than the opaque issue ID.
func fillDefaults(item Item) Item {
	if item.Text == nil {
		item.Text = &Text{}
	}
	if item.Text.Copy == "" {
		item.Text.Copy = item.Title
	}
	if item.Text.LargeType == "" {
		item.Text.LargeType = item.Title
	}

	if item.Mods == nil {
		item.Mods = &Mods{}
	}
	if item.Mods.Ctrl == nil {
		item.Mods.Ctrl = &Mod{Arg: item.Title}
	}

	return item
}

// Write serializes the document to w as a single JSON object.
func (d Document) Write(w io.Writer) error {
	if err := json.NewEncoder(w).Encode(d); err != nil {
		return fmt.Errorf("encode feedback: %w", err)
	}
	return nil
}
