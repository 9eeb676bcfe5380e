package query

import (
	"fmt"
	"strings"
)

// SearchFields is the field list requested for every search.
const SearchFields = "summary,issuetype,status,parent"

// Compiled is a ready-to-send JQL expression with its request parameters.
type Compiled struct {
	JQL        string
	Fields     string
	MaxResults int
}

// Sanitize strips JQL quoting metacharacters from a value so it cannot
// terminate the surrounding clause, then trims whitespace. It is the sole
// injection defense and must run on every interpolated value.
func Sanitize(value string) string {
	value = strings.NewReplacer(`"`, "", `\`, "").Replace(value)
	return strings.TrimSpace(value)
}

// ProjectFilter compiles a comma-separated project-key list into a
// "project IN (...) AND " prefix. An empty list compiles to "".
func ProjectFilter(projectList string) string {
	if strings.TrimSpace(projectList) == "" {
		return ""
	}
	var keys []string
	for _, key := range strings.Split(projectList, ",") {
		if key = Sanitize(key); key != "" {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return ""
	}
	return fmt.Sprintf("project IN (%s) AND ", strings.Join(keys, ", "))
}

// Compile turns a classification into the JQL expression to search with.
// Exact-key lookups are authoritative and never restricted to projects;
// the default and free-text searches are prefixed with the project filter
// when one is configured.
func Compile(c Classification, projectList string, maxResults int) Compiled {
	var jql string
	switch c.Kind {
	case KindIssueKey, KindIssueURL:
		jql = fmt.Sprintf("issuekey = %q", Sanitize(c.Token))
	case KindEmpty:
		// WAS matches issues that currently have or previously had the
		// value, so recently reassigned issues still show up.
		jql = ProjectFilter(projectList) + "assignee WAS currentuser() ORDER BY lastViewed DESC"
	default:
		jql = ProjectFilter(projectList) + fmt.Sprintf(
			`summary ~ "%s*" AND status != "Closed" ORDER BY lastViewed DESC`,
			Sanitize(c.Token),
		)
	}

	return Compiled{
		JQL:        jql,
		Fields:     SearchFields,
		MaxResults: maxResults,
	}
}
