package registry

import (
	_ "embed"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed component-mappings.yaml
var defaultMappings []byte

// placeholderToken is substituted with the component identity when the
// custom-component template is instantiated.
const placeholderToken = "{{COMPONENT_NAME}}"

const noDescription = "No description available"

// Registry maps component identities to migration metadata. It is safe for
// concurrent use: the mapping table is loaded at most once, on first access,
// and is read-only afterwards.
type Registry struct {
	source string
	logger *slog.Logger

	once             sync.Once
	entries          map[string]ComponentMapping
	keys             []string
	custom           *ComponentMapping
	complexityLevels map[string]string
	requiredServices map[string]string
}

// New creates a registry backed by the mappings file at source. An empty
// source selects the embedded default table. The logger receives the
// degraded-load diagnostic; nil means slog.Default().
func New(source string, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}

	return &Registry{
		source: source,
		logger: logger,
	}
}

// Default creates a registry backed by the mappings table embedded in the
// binary.
func Default(logger *slog.Logger) *Registry {
	return New("", logger)
}

// load reads and parses the mappings source exactly once. Any failure leaves
// a valid empty registry behind: resolution stays total via the built-in
// fallback, and the failure is logged rather than propagated.
func (r *Registry) load() {
	r.once.Do(func() {
		r.entries = make(map[string]ComponentMapping)
		r.complexityLevels = make(map[string]string)
		r.requiredServices = make(map[string]string)

		data, err := r.read()
		if err != nil {
			r.logger.Warn("component mappings unavailable, continuing with an empty registry",
				"source", r.source, "error", err)
			return
		}

		var file mappingsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			r.logger.Warn("component mappings malformed, continuing with an empty registry",
				"source", r.source, "error", err)
			return
		}

		for identity, mapping := range file.Components {
			mapping.Identity = identity
			key := strings.ToLower(identity)
			r.entries[key] = mapping
			r.keys = append(r.keys, key)
		}
		sort.Strings(r.keys)

		r.custom = file.CustomComponents.Pattern
		if file.Metadata.ComplexityLevels != nil {
			r.complexityLevels = file.Metadata.ComplexityLevels
		}
		if file.Metadata.RequiredServices != nil {
			r.requiredServices = file.Metadata.RequiredServices
		}
	})
}

func (r *Registry) read() ([]byte, error) {
	if r.source == "" {
		return defaultMappings, nil
	}

	return os.ReadFile(r.source)
}

// Resolve maps a component identity to its migration metadata. It never
// fails: identities unknown to the registry resolve through the
// custom-component template when one is defined, and through a built-in
// "Unknown Component" mapping otherwise.
func (r *Registry) Resolve(identity string) ComponentMapping {
	r.load()

	key := strings.ToLower(identity)

	if mapping, ok := r.entries[key]; ok {
		return mapping
	}

	if mapping, ok := r.partialMatch(key); ok {
		return mapping
	}

	if r.custom != nil {
		return instantiate(*r.custom, identity)
	}

	return fallbackMapping(identity)
}

// partialMatch finds an entry whose key is a suffix of the identity, or whose
// key's last dot-separated segment is a suffix of the identity. This covers
// lookups by short name against fully-qualified keys and the reverse. Keys
// are scanned in sorted order so matching is deterministic.
func (r *Registry) partialMatch(key string) (ComponentMapping, bool) {
	for _, entryKey := range r.keys {
		if strings.HasSuffix(key, entryKey) {
			return r.entries[entryKey], true
		}

		if segment := lastSegment(entryKey); segment != "" && strings.HasSuffix(key, segment) {
			return r.entries[entryKey], true
		}
	}

	return ComponentMapping{}, false
}

func lastSegment(key string) string {
	if idx := strings.LastIndex(key, "."); idx >= 0 {
		return key[idx+1:]
	}

	return key
}

// instantiate fills the custom-component template for a concrete identity,
// substituting the identity into every placeholder token. Slices are copied
// so template state never leaks between resolutions.
func instantiate(template ComponentMapping, identity string) ComponentMapping {
	substitute := func(s string) string {
		return strings.ReplaceAll(s, placeholderToken, identity)
	}

	template.Identity = identity
	template.DisplayName = substitute(template.DisplayName)
	template.Action.Description = substitute(template.Action.Description)

	notes := make([]string, len(template.MigrationNotes))
	for i, note := range template.MigrationNotes {
		notes[i] = substitute(note)
	}
	template.MigrationNotes = notes

	template.RequiredResources = append([]string(nil), template.RequiredResources...)

	return template
}

func fallbackMapping(identity string) ComponentMapping {
	return ComponentMapping{
		Identity:    identity,
		DisplayName: "Unknown Component",
		Category:    "Unknown",
		Action: ActionTemplate{
			Type:        "Compose",
			Description: "Document the original component behaviour and re-implement it on the target platform",
		},
		MigrationNotes: []string{
			"Custom component detected - manual assessment required",
			"No migration mapping exists for this component identity",
		},
		Complexity: ComplexityVariable,
	}
}

// ResolveAll returns every loaded registry entry, sorted by identity.
// Synthesized custom and fallback mappings are not included.
func (r *Registry) ResolveAll() []ComponentMapping {
	r.load()

	all := make([]ComponentMapping, 0, len(r.keys))
	for _, key := range r.keys {
		all = append(all, r.entries[key])
	}

	return all
}

// ComplexityDescription returns the descriptive text for a complexity level.
func (r *Registry) ComplexityDescription(level Complexity) string {
	r.load()

	if desc, ok := r.complexityLevels[string(level)]; ok {
		return desc
	}

	return noDescription
}

// ServiceDescription returns the descriptive text for a required target
// platform service.
func (r *Registry) ServiceDescription(name string) string {
	r.load()

	if desc, ok := r.requiredServices[name]; ok {
		return desc
	}

	return noDescription
}
