package jira

// SearchResult is the top-level envelope returned by the Jira Cloud search API.
type SearchResult struct {
	Issues []Issue `json:"issues"`
}

// SectionedSearchResult is the envelope returned by v9 LTS deployments,
// which nest the issue list one level under a sections array.
type SectionedSearchResult struct {
	Sections []SearchResult `json:"sections"`
}

// Issue represents a single issue in the search result.
type Issue struct {
	ID     string `json:"id"`
	Key    string `json:"key"`
	Fields Fields `json:"fields"`
}

// Fields represents the inner fields of a Jira issue.
type Fields struct {
	Summary   string    `json:"summary"`
	Status    Status    `json:"status"`
	IssueType IssueType `json:"issuetype"`
	Parent    *Issue    `json:"parent"` // nullable
}

// Status represents the status field of the issue.
type Status struct {
	Name string `json:"name"`
}

// IssueType describes the declared type of an issue. IconURL and AvatarID
// vary by deployment: stock types carry a numeric avatar ID, named SVGs or
// custom uploads only a URL, and older API versions may omit both.
type IssueType struct {
	Name     string `json:"name"`
	IconURL  string `json:"iconUrl"`
	AvatarID int64  `json:"avatarId"`
}

// ErrorBody is the JSON shape Jira uses for failed requests.
type ErrorBody struct {
	ErrorMessages []string `json:"errorMessages"`
}
