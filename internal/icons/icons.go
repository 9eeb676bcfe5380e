package icons

import (
	"io/fs"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/gi8lino/jirafred/internal/jira"
)

// DefaultAsset is the generic workflow icon used when no strategy matches.
const DefaultAsset = "icon.png"

// builtinNameMap maps issue-type names to stock asset keys. The "Epic" and
// "Story" icon URLs use the filenames "epic.svg" and "story.svg" upstream,
// diverging from the avatar-ID filenames of every other stock type, so they
// need explicit entries.
var builtinNameMap = map[string]string{
	"epic":  "10307",
	"story": "10315",
}

// Resolver maps an issue's type to a local icon asset. The known-asset set
// is precomputed once from the icon directory so resolution stays a pure
// lookup per issue.
type Resolver struct {
	known   map[string]string // asset key -> relative path
	nameMap map[string]string // case-folded type name -> asset key
}

// strategy is one attempt at resolving an icon asset key for an issue.
// It returns the resolved path and whether it applied.
type strategy func(issue jira.Issue) (string, bool)

// NewResolver builds a Resolver from the filesystem holding the icon assets.
// Hidden files are excluded; users can upload custom PNG images as issue
// type icons, so the directory listing is the source of truth for which
// stock icons actually exist. Extra name overrides (case-folded type name to
// asset key) extend the builtin map and win over it. An unreadable asset
// directory leaves the known set empty, so every lookup falls through to
// the default asset instead of failing.
func NewResolver(assets fs.FS, dir string, overrides map[string]string) *Resolver {
	entries, _ := fs.ReadDir(assets, ".")

	known := make(map[string]string, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		key := strings.TrimSuffix(name, path.Ext(name))
		known[key] = path.Join(dir, name)
	}

	nameMap := make(map[string]string, len(builtinNameMap)+len(overrides))
	for name, key := range builtinNameMap {
		nameMap[name] = key
	}
	for name, key := range overrides {
		nameMap[strings.ToLower(name)] = key
	}

	return &Resolver{known: known, nameMap: nameMap}
}

// Resolve returns the icon asset path for an issue. The strategies are
// tried in order and the chain always terminates in the default asset;
// resolution never fails, whatever subset of type signals is missing.
func (r *Resolver) Resolve(issue jira.Issue) string {
	for _, s := range []strategy{r.byIconURL, r.byTypeName, r.byAvatarID} {
		if asset, ok := s(issue); ok {
			return asset
		}
	}
	return DefaultAsset
}

// byIconURL keys the lookup on the basename of the declared icon URL with
// its extension stripped.
func (r *Resolver) byIconURL(issue jira.Issue) (string, bool) {
	iconURL := issue.Fields.IssueType.IconURL
	if iconURL == "" {
		return "", false
	}
	parsed, err := url.Parse(iconURL)
	if err != nil {
		return "", false
	}
	base := path.Base(parsed.Path)
	key := strings.TrimSuffix(base, path.Ext(base))
	asset, ok := r.known[key]
	return asset, ok
}

// byTypeName looks up the case-folded type name in the name map, then
// verifies the mapped asset exists.
func (r *Resolver) byTypeName(issue jira.Issue) (string, bool) {
	name := strings.ToLower(issue.Fields.IssueType.Name)
	if name == "" {
		return "", false
	}
	key, ok := r.nameMap[name]
	if !ok {
		return "", false
	}
	asset, ok := r.known[key]
	return asset, ok
}

// byAvatarID probes the numeric avatar ID directly as an asset filename.
func (r *Resolver) byAvatarID(issue jira.Issue) (string, bool) {
	id := issue.Fields.IssueType.AvatarID
	if id == 0 {
		return "", false
	}
	asset, ok := r.known[strconv.FormatInt(id, 10)]
	return asset, ok
}
