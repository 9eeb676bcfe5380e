package flag

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/containeroo/tinyflags"
	"github.com/gi8lino/jirafred/internal/logging"
)

// Config holds all application and Jira-specific configuration.
type Config struct {
	BaseURL        string            // Account base URL, trailing slash stripped
	Username       string            // Basic auth username (email)
	APIToken       string            // Basic auth API token
	BearerToken    string            // PAT for self-hosted deployments
	MaxResults     int               // Result-count cap per search
	DefaultProject string            // Project key prepended to bare numbers
	Projects       string            // Comma-separated project restriction list
	APIVersion     string            // "cloud" or "v9-lts"
	IconDir        string            // Directory holding the icon assets
	ConfigPath     string            // Optional workflow config file
	Timeout        time.Duration     // HTTP request timeout
	Debug          bool              // Enables debug logging
	LogFormat      logging.LogFormat // Log output format (text or json)
	Query          string            // Positional query string; may be empty
}

// IssueBaseURL returns the browse URL issues live under.
func (c Config) IssueBaseURL() string { return c.BaseURL + "/browse" }

// APIBaseURL returns the REST API base URL.
func (c Config) APIBaseURL() string { return c.BaseURL + "/rest/api/3/" }

// ParseArgs parses CLI arguments into Config, handling version/help flags.
// Every flag is also bound to a JIRA_* environment variable, which is how
// the launcher host passes configuration.
func ParseArgs(version string, args []string, out io.Writer, getEnv func(string) string) (Config, error) {
	var cfg Config
	tf := tinyflags.NewFlagSet("jirafred", tinyflags.ContinueOnError)
	tf.Version(version)
	tf.SetGetEnvFn(getEnv)
	tf.EnvPrefix("JIRA")
	tf.SetOutput(out)

	// Jira account
	tf.StringVar(&cfg.BaseURL, "base-url", "", "Base URL of the Jira account").
		Finalize(func(s string) string { return strings.TrimRight(strings.TrimSpace(s), "/") }).
		Placeholder("URL").
		Value()
	tf.StringVar(&cfg.Username, "username", "", "Username (email) for Basic authentication").Value()
	tf.StringVar(&cfg.APIToken, "api-token", "", "API token for Basic authentication").Value()
	tf.StringVar(&cfg.BearerToken, "bearer-token", "", "Personal access token for Bearer authentication").Value()
	apiVersion := tf.String("api-version", "cloud", "Search API variant of the deployment").
		Choices("cloud", "v9-lts").
		Value()

	// Search behavior
	tf.IntVar(&cfg.MaxResults, "max-results", 9, "Maximum number of results to list").Value()
	tf.StringVar(&cfg.DefaultProject, "default-project", "", "Project key prepended to bare numeric queries").Value()
	tf.StringVar(&cfg.Projects, "projects", "", "Comma-separated project keys to restrict searches to").
		Placeholder("KEY,KEY").
		Value()

	// Local resources
	tf.StringVar(&cfg.IconDir, "icon-dir", "icons", "Path to the icon asset directory").Value()
	tf.StringVar(&cfg.ConfigPath, "config", "", "Path to an optional workflow config file").Value()

	// Transport
	tf.DurationVar(&cfg.Timeout, "timeout", 5*time.Second, "HTTP request timeout").Value()

	// Logging
	tf.BoolVar(&cfg.Debug, "debug", false, "Enable debug logging").Value()
	logFormat := tf.String("log-format", "text", "Log format").Choices("text", "json").Short("l").Value()

	// Parse
	if err := tf.Parse(args); err != nil {
		return Config{}, err
	}

	// Post-parse
	cfg.LogFormat = logging.LogFormat(*logFormat)
	cfg.APIVersion = *apiVersion
	if rest := tf.Args(); len(rest) > 0 {
		cfg.Query = rest[0]
	}

	if cfg.BaseURL == "" {
		return Config{}, fmt.Errorf("missing required flag --base-url (or JIRA_BASE_URL)")
	}
	if cfg.MaxResults <= 0 {
		return Config{}, fmt.Errorf("--max-results must be > 0")
	}

	return cfg, nil
}
