package registry

// Complexity grades the migration effort for a component.
type Complexity string

const (
	ComplexityLow      Complexity = "Low"
	ComplexityMedium   Complexity = "Medium"
	ComplexityHigh     Complexity = "High"
	ComplexityVariable Complexity = "Variable"
)

// ActionTemplate describes the target workflow action a component maps to.
// The description is carried through verbatim into the produced workflow's
// documentation.
type ActionTemplate struct {
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
}

// ComponentMapping is one registry entry: the migration metadata for a single
// component identity. Entries are immutable after registry load.
type ComponentMapping struct {
	Identity           string         `yaml:"-"`
	DisplayName        string         `yaml:"displayName"`
	Category           string         `yaml:"category"`
	Action             ActionTemplate `yaml:"action"`
	MigrationNotes     []string       `yaml:"migrationNotes"`
	RequiredResources  []string       `yaml:"requiredResources"`
	Complexity         Complexity     `yaml:"complexity"`
	CustomCodeRequired bool           `yaml:"customCodeRequired"`
}

type mappingsFile struct {
	Components       map[string]ComponentMapping `yaml:"components"`
	CustomComponents struct {
		Pattern *ComponentMapping `yaml:"pattern"`
	} `yaml:"customComponents"`
	Metadata struct {
		ComplexityLevels map[string]string `yaml:"complexityLevels"`
		RequiredServices map[string]string `yaml:"requiredServices"`
	} `yaml:"metadata"`
}
