package config

// WorkflowConfig is the optional on-disk configuration of the workflow.
// Everything in it can also be supplied through flags or environment
// variables; the file only fills values those left empty.
type WorkflowConfig struct {
	Username string            `yaml:"username"`
	APIToken string            `yaml:"apiToken"` // supports env:/file: indirection
	Projects []string          `yaml:"projects"` // project restriction list
	Icons    map[string]string `yaml:"icons"`    // type name -> asset key overrides
	Display  Display           `yaml:"display"`
}

// Display holds optional templates overriding the fixed title/subtitle
// formats of result items.
type Display struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
}
