package templates_test

import (
	"testing"

	"github.com/gi8lino/jirafred/internal/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issueCtx() templates.IssueContext {
	return templates.IssueContext{
		ID:      "10001",
		Key:     "BUG-42",
		Summary: "Fix crash",
		Status:  "In Progress",
		Type:    "bug",
		URL:     "https://jira.example.com/browse/BUG-42",
	}
}

func TestRenderer(t *testing.T) {
	t.Parallel()

	t.Run("defaults produce the fixed format", func(t *testing.T) {
		t.Parallel()

		r, err := templates.NewRenderer("", "")
		require.NoError(t, err)

		assert.Equal(t, "Fix crash", r.Title(issueCtx()))
		assert.Equal(t, "BUG-42 (In Progress)", r.Subtitle(issueCtx()))
	})

	t.Run("default subtitle appends parent summary", func(t *testing.T) {
		t.Parallel()

		r, err := templates.NewRenderer("", "")
		require.NoError(t, err)

		ctx := issueCtx()
		ctx.ParentKey = "BUG-1"
		ctx.ParentSummary = "Crashes"
		assert.Equal(t, "BUG-42 (In Progress) - Crashes", r.Subtitle(ctx))
	})

	t.Run("custom templates with sprig functions", func(t *testing.T) {
		t.Parallel()

		r, err := templates.NewRenderer(
			"{{ .Summary | upper }}",
			"{{ .Key }} · {{ .Status | lower }}",
		)
		require.NoError(t, err)

		assert.Equal(t, "FIX CRASH", r.Title(issueCtx()))
		assert.Equal(t, "BUG-42 · in progress", r.Subtitle(issueCtx()))
	})

	t.Run("parse error is reported", func(t *testing.T) {
		t.Parallel()

		_, err := templates.NewRenderer("{{ .Summary", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse title template")
	})

	t.Run("execution failure falls back to the fixed format", func(t *testing.T) {
		t.Parallel()

		r, err := templates.NewRenderer("", `{{ fail "boom" }}`)
		require.NoError(t, err)

		assert.Equal(t, "BUG-42 (In Progress)", r.Subtitle(issueCtx()))
	})
}
