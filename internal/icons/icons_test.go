package icons_test

import (
	"testing"
	"testing/fstest"

	"github.com/gi8lino/jirafred/internal/icons"
	"github.com/gi8lino/jirafred/internal/jira"
	"github.com/stretchr/testify/assert"
)

// assetFS returns a fake icon directory with the stock avatar-ID SVGs.
func assetFS() fstest.MapFS {
	return fstest.MapFS{
		"10303.svg":  {Data: []byte("<svg/>")},
		"10307.svg":  {Data: []byte("<svg/>")},
		"10315.svg":  {Data: []byte("<svg/>")},
		".hidden":    {Data: []byte("")},
		".DS_Store":  {Data: []byte("")},
		"custom.png": {Data: []byte("png")},
	}
}

// issueWithType builds an issue carrying the given type signals.
func issueWithType(name, iconURL string, avatarID int64) jira.Issue {
	return jira.Issue{
		Key: "OPS-1",
		Fields: jira.Fields{
			IssueType: jira.IssueType{Name: name, IconURL: iconURL, AvatarID: avatarID},
		},
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	r := icons.NewResolver(assetFS(), "icons", nil)

	t.Run("icon URL basename wins first", func(t *testing.T) {
		t.Parallel()
		issue := issueWithType("Bug", "https://jira.example.com/images/10303.svg?size=medium", 0)
		assert.Equal(t, "icons/10303.svg", r.Resolve(issue))
	})

	t.Run("custom uploaded image resolves by basename", func(t *testing.T) {
		t.Parallel()
		issue := issueWithType("Whatever", "https://jira.example.com/secure/custom.png", 0)
		assert.Equal(t, "icons/custom.png", r.Resolve(issue))
	})

	t.Run("unknown icon URL falls back to type name", func(t *testing.T) {
		t.Parallel()
		issue := issueWithType("Epic", "https://jira.example.com/images/epic.svg", 0)
		assert.Equal(t, "icons/10307.svg", r.Resolve(issue))
	})

	t.Run("story diverges from avatar-ID filenames", func(t *testing.T) {
		t.Parallel()
		issue := issueWithType("Story", "https://jira.example.com/images/story.svg", 0)
		assert.Equal(t, "icons/10315.svg", r.Resolve(issue))
	})

	t.Run("type name is case-folded", func(t *testing.T) {
		t.Parallel()
		issue := issueWithType("EPIC", "", 0)
		assert.Equal(t, "icons/10307.svg", r.Resolve(issue))
	})

	t.Run("avatar ID probes the asset filename", func(t *testing.T) {
		t.Parallel()
		issue := issueWithType("Task", "", 10303)
		assert.Equal(t, "icons/10303.svg", r.Resolve(issue))
	})

	t.Run("no signals at all resolves to default", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, icons.DefaultAsset, r.Resolve(jira.Issue{}))
	})

	t.Run("unknown everything resolves to default", func(t *testing.T) {
		t.Parallel()
		issue := issueWithType("Spike", "https://jira.example.com/images/99999.svg", 99999)
		assert.Equal(t, icons.DefaultAsset, r.Resolve(issue))
	})

	t.Run("hidden files are not assets", func(t *testing.T) {
		t.Parallel()
		issue := issueWithType("", "https://jira.example.com/images/.DS_Store", 0)
		assert.Equal(t, icons.DefaultAsset, r.Resolve(issue))
	})
}

func TestResolveOverrides(t *testing.T) {
	t.Parallel()

	t.Run("config overrides extend the name map", func(t *testing.T) {
		t.Parallel()
		r := icons.NewResolver(assetFS(), "icons", map[string]string{"Spike": "custom"})
		assert.Equal(t, "icons/custom.png", r.Resolve(issueWithType("spike", "", 0)))
	})

	t.Run("override pointing at a missing asset falls through", func(t *testing.T) {
		t.Parallel()
		r := icons.NewResolver(assetFS(), "icons", map[string]string{"spike": "nope"})
		assert.Equal(t, icons.DefaultAsset, r.Resolve(issueWithType("Spike", "", 0)))
	})
}

func TestNewResolverMissingDir(t *testing.T) {
	t.Parallel()

	r := icons.NewResolver(fstest.MapFS{}, "icons", nil)
	assert.Equal(t, icons.DefaultAsset, r.Resolve(issueWithType("Bug", "https://x/10303.svg", 10303)))
}
