package query

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind describes what a raw query string turned out to be.
type Kind int

const (
	KindEmpty    Kind = iota // no query at all
	KindIssueKey             // a direct issue key such as "ABC-123"
	KindIssueURL             // a link into the configured Jira account
	KindFreeText             // anything else, searched against summaries
)

var (
	issueKeyPattern = regexp.MustCompile(`^[A-Z]+-[0-9]+$`)
	numericPattern  = regexp.MustCompile(`^[0-9]+$`)
)

// Classification is the outcome of inspecting a raw query string.
type Classification struct {
	Kind  Kind
	Token string // issue key, URL remainder, or normalized free text
}

// Classify inspects a raw query string and decides how it should be searched.
// The issueBaseURL is the account's "/browse" URL; defaultProject, when set,
// lets a bare number like "123" expand to "<defaultProject>-123". A bare
// number without a configured project is ambiguous and falls through to a
// free-text search.
func Classify(raw, issueBaseURL, defaultProject string) Classification {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Classification{Kind: KindEmpty}
	}

	if issueBaseURL != "" && strings.HasPrefix(trimmed, issueBaseURL) {
		// Whatever trails the browse URL is taken verbatim, including any
		// extra path segments the user may have copied along.
		token := strings.TrimPrefix(trimmed, issueBaseURL+"/")
		return Classification{Kind: KindIssueURL, Token: token}
	}

	upper := strings.ToUpper(trimmed)
	if issueKeyPattern.MatchString(upper) {
		return Classification{Kind: KindIssueKey, Token: upper}
	}

	if numericPattern.MatchString(trimmed) {
		if project := strings.ReplaceAll(defaultProject, "-", ""); project != "" {
			key := strings.ToUpper(fmt.Sprintf("%s-%s", project, trimmed))
			return Classification{Kind: KindIssueKey, Token: key}
		}
		// no project to prepend, search the number as text
	}

	return Classification{Kind: KindFreeText, Token: strings.ToLower(trimmed)}
}
