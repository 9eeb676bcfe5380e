package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/gi8lino/jirafred/internal/config"
	"github.com/gi8lino/jirafred/internal/feedback"
	"github.com/gi8lino/jirafred/internal/flag"
	"github.com/gi8lino/jirafred/internal/icons"
	"github.com/gi8lino/jirafred/internal/jira"
	"github.com/gi8lino/jirafred/internal/logging"
	"github.com/gi8lino/jirafred/internal/query"
	"github.com/gi8lino/jirafred/internal/templates"
	"github.com/gi8lino/jirafred/internal/utils"

	"github.com/containeroo/tinyflags"
)

// Run executes one search invocation. The result document is always written
// to stdout and the process outcome is success even when the upstream call
// fails: the launcher shows failures as a non-actionable row, so an error
// return here is reserved for help/version output and broken stdout.
func Run(ctx context.Context, version string, args []string, getEnv func(string) string, stdout, stderr io.Writer) error {
	// Parse command-line flags
	flags, err := flag.ParseArgs(version, args, stderr, getEnv)
	if err != nil {
		if tinyflags.IsHelpRequested(err) || tinyflags.IsVersionRequested(err) {
			fmt.Fprint(stderr, err.Error()) // nolint:errcheck
			return nil
		}
		return feedback.Failure(err).Write(stdout)
	}

	// Setup logger; stdout carries the result document, so logs go to stderr
	logger := logging.SetupLogger(flags.LogFormat, flags.Debug, stderr)

	doc, err := search(ctx, flags, logger)
	if err != nil {
		logger.Error("search failed", "error", err)
		doc = feedback.Failure(err)
	}
	return doc.Write(stdout)
}

// search runs the classify/compile/fetch/assemble pipeline for one query.
func search(ctx context.Context, flags flag.Config, logger *slog.Logger) (feedback.Document, error) {
	// Optional workflow config, filling values flags/env left empty
	var cfg config.WorkflowConfig
	if flags.ConfigPath != "" {
		var err error
		if cfg, err = config.LoadConfig(flags.ConfigPath); err != nil {
			return feedback.Document{}, fmt.Errorf("loading config error: %w", err)
		}
	}
	username := firstNonEmpty(flags.Username, cfg.Username)
	token := firstNonEmpty(flags.APIToken, cfg.APIToken)
	projects := firstNonEmpty(flags.Projects, cfg.ProjectList())

	// Setup jira client
	auth, method, err := jira.ResolveAuth(flags.BearerToken, username, token)
	if err != nil {
		return feedback.Document{}, err
	}
	apiURL, err := url.Parse(flags.APIBaseURL())
	if err != nil {
		return feedback.Document{}, fmt.Errorf("invalid base URL: %w", err)
	}
	client := jira.NewClient(apiURL, jira.APIVersion(flags.APIVersion), auth, flags.Timeout)

	logger.Debug("jira auth",
		"method", method,
		"header", utils.ObfuscateHeader(utils.GetAuthorizationHeader(auth)),
	)

	// Classify the query and compile the JQL to search with
	classification := query.Classify(flags.Query, flags.IssueBaseURL(), flags.DefaultProject)
	compiled := query.Compile(classification, projects, flags.MaxResults)

	logger.Debug("compiled query", "jql", compiled.JQL, "maxResults", compiled.MaxResults)

	issues, err := client.Search(ctx, compiled)
	if err != nil {
		return feedback.Document{}, err
	}

	// Assemble the result document
	renderer, err := templates.NewRenderer(cfg.Display.Title, cfg.Display.Subtitle)
	if err != nil {
		return feedback.Document{}, err
	}
	assembler := &feedback.Assembler{
		IssueBaseURL: flags.IssueBaseURL(),
		Resolver:     icons.NewResolver(os.DirFS(flags.IconDir), flags.IconDir, cfg.Icons),
		Renderer:     renderer,
	}
	return assembler.Assemble(displayQuery(flags.Query, classification), issues), nil
}

// displayQuery is the query text shown in the "no results" placeholder: the
// trimmed input, or the extracted token when the input was an issue URL.
func displayQuery(raw string, c query.Classification) string {
	if c.Kind == query.KindIssueURL {
		return c.Token
	}
	return strings.TrimSpace(raw)
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
