package solution

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
)

// fold normalizes a string for case-insensitive, culture-invariant
// comparison.
func fold(s string) string {
	return cases.Fold().String(s)
}

// ConfigurationAndPlatform is a (configuration name, platform name) pair such
// as ("Debug", "Any CPU"). The zero value means "unparseable" and must never
// be inserted into configuration collections.
type ConfigurationAndPlatform struct {
	Configuration string
	Platform      string
}

// ParseConfigurationAndPlatform splits a Name|Platform token on its last '|'.
// Tokens without a '|' are unparseable.
func ParseConfigurationAndPlatform(s string) (ConfigurationAndPlatform, bool) {
	i := strings.LastIndex(s, "|")
	if i < 0 {
		return ConfigurationAndPlatform{}, false
	}
	c := ConfigurationAndPlatform{
		Configuration: strings.TrimSpace(s[:i]),
		Platform:      strings.TrimSpace(s[i+1:]),
	}
	if c.IsZero() {
		return ConfigurationAndPlatform{}, false
	}
	return c, true
}

// IsZero reports whether both components are empty.
func (c ConfigurationAndPlatform) IsZero() bool {
	return c.Configuration == "" && c.Platform == ""
}

// String formats the pair back into its Name|Platform form.
func (c ConfigurationAndPlatform) String() string {
	return c.Configuration + "|" + c.Platform
}

// Equal compares both components case-insensitively.
func (c ConfigurationAndPlatform) Equal(o ConfigurationAndPlatform) bool {
	return c.key() == o.key()
}

func (c ConfigurationAndPlatform) key() string {
	return fold(c.Configuration) + "|" + fold(c.Platform)
}

// ProjectConfiguration is the project-side half of a configuration mapping:
// the configuration the project builds under, and whether the project builds
// at all for the solution configuration that maps to it.
type ProjectConfiguration struct {
	Configuration ConfigurationAndPlatform
	Build         bool
}

// ConfigurationMapping is a per-project table keyed by solution
// configuration. Absence of an entry means the project does not participate
// in that solution configuration.
type ConfigurationMapping struct {
	byKey map[string]ProjectConfiguration
}

// NewConfigurationMapping returns an empty mapping.
func NewConfigurationMapping() *ConfigurationMapping {
	return &ConfigurationMapping{byKey: make(map[string]ProjectConfiguration)}
}

// Get looks up the project configuration mapped to the given solution
// configuration.
func (m *ConfigurationMapping) Get(sol ConfigurationAndPlatform) (ProjectConfiguration, bool) {
	pc, ok := m.byKey[sol.key()]
	return pc, ok
}

// Len returns the number of mapped solution configurations.
func (m *ConfigurationMapping) Len() int { return len(m.byKey) }

// set records a mapping with build disabled; a later setBuild may enable it.
func (m *ConfigurationMapping) set(sol, proj ConfigurationAndPlatform) {
	m.byKey[sol.key()] = ProjectConfiguration{Configuration: proj}
}

// setBuild enables building for an already mapped solution configuration.
// Pairs without an ActiveCfg mapping never receive one here.
func (m *ConfigurationMapping) setBuild(sol ConfigurationAndPlatform) {
	key := sol.key()
	pc, ok := m.byKey[key]
	if !ok {
		return
	}
	pc.Build = true
	m.byKey[key] = pc
}

const (
	activeCfgSuffix = ".ActiveCfg"
	buildSuffix     = ".Build.0"
)

// applyProjectConfigurations consumes a ProjectConfigurationPlatforms section
// in two passes. Pass order matters: ActiveCfg entries establish mappings
// with build disabled, Build.0 entries then flip the flag.
func applyProjectConfigurations(sec *Section, byID map[uuid.UUID]*ProjectInfo) {
	for _, e := range sec.Entries {
		id, sol, ok := splitConfigurationKey(e.Key, activeCfgSuffix)
		if !ok {
			continue
		}
		info, known := byID[id]
		if !known {
			continue
		}
		proj, ok := ParseConfigurationAndPlatform(e.Value)
		if !ok {
			continue
		}
		info.Configurations.set(sol, proj)
	}
	for _, e := range sec.Entries {
		id, sol, ok := splitConfigurationKey(e.Key, buildSuffix)
		if !ok {
			continue
		}
		info, known := byID[id]
		if !known {
			continue
		}
		info.Configurations.setBuild(sol)
	}
}

// splitConfigurationKey decomposes a "{guid}.Name|Platform<suffix>" key. The
// suffix match is case-insensitive; any malformed part makes the whole key
// unusable.
func splitConfigurationKey(key, suffix string) (uuid.UUID, ConfigurationAndPlatform, bool) {
	if len(key) < len(suffix) || !strings.EqualFold(key[len(key)-len(suffix):], suffix) {
		return uuid.UUID{}, ConfigurationAndPlatform{}, false
	}
	rest := key[:len(key)-len(suffix)]
	dot := strings.Index(rest, ".")
	if dot < 0 {
		return uuid.UUID{}, ConfigurationAndPlatform{}, false
	}
	id, err := uuid.Parse(strings.TrimSpace(rest[:dot]))
	if err != nil {
		return uuid.UUID{}, ConfigurationAndPlatform{}, false
	}
	sol, ok := ParseConfigurationAndPlatform(rest[dot+1:])
	if !ok {
		return uuid.UUID{}, ConfigurationAndPlatform{}, false
	}
	return id, sol, true
}
