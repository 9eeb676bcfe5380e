package feedback

// Document is the serialized result list consumed by the host launcher.
type Document struct {
	Items []Item `json:"items"`
}

// Item is one display row in the launcher. Its field names and nesting are
// a fixed external contract and must not change.
type Item struct {
	Title     string     `json:"title"`
	Subtitle  string     `json:"subtitle"`
	Arg       string     `json:"arg,omitempty"`
	Valid     *bool      `json:"valid,omitempty"` // absent means actionable
	Icon      *Icon      `json:"icon,omitempty"`
	Variables *Variables `json:"variables,omitempty"`
	Text      *Text      `json:"text,omitempty"`
	Mods      *Mods      `json:"mods,omitempty"`
}

// Icon references a local icon asset.
type Icon struct {
	Path string `json:"path"`
}

// Variables are the auxiliary values passed along with a selected item.
// Parent fields are null for issues without a parent.
type Variables struct {
	IssueID       string  `json:"issue_id"`
	IssueKey      string  `json:"issue_key"`
	IssueType     string  `json:"issue_type"`
	IssueSummary  string  `json:"issue_summary"`
	IssueStatus   string  `json:"issue_status"`
	IssueURL      string  `json:"issue_url"`
	ParentKey     *string `json:"parent_key"`
	ParentSummary *string `json:"parent_summary"`
}

// Text holds the clipboard and large-type overrides of an item.
type Text struct {
	Copy      string `json:"copy,omitempty"`
	LargeType string `json:"largetype,omitempty"`
}

// Mod is the alternate behavior of an item under a modifier key.
type Mod struct {
	Arg      string `json:"arg,omitempty"`
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
	Valid    *bool  `json:"valid,omitempty"`
}

// Mods groups the modifier-key alternates of an item.
type Mods struct {
	Ctrl *Mod `json:"ctrl,omitempty"`
}
