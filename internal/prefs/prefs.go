// Package prefs reads per-solution user preferences from a YAML sidecar next
// to the solution file.
package prefs

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/slnkit/slnkit/internal/solution"
)

// Preferences is the sidecar document, stored as <name>.sln.user.yml.
type Preferences struct {
	ActiveConfiguration string `yaml:"active_configuration"`
}

// SidecarPath returns the preference file path for a solution path.
func SidecarPath(solutionPath string) string {
	return solutionPath + ".user.yml"
}

// Loader implements solution.PreferencesLoader against the YAML sidecar.
type Loader struct{}

// New returns the default preferences loader.
func New() *Loader { return &Loader{} }

// LoadPreferences sets the solution's active configuration from the sidecar.
// A missing sidecar, an unparseable token, or a configuration the solution
// does not declare all fall back to the first declared configuration and
// platform.
func (l *Loader) LoadPreferences(sol *solution.Solution) error {
	if sol.Path == "" {
		fallback(sol)
		return nil
	}
	data, err := os.ReadFile(SidecarPath(sol.Path))
	if errors.Is(err, os.ErrNotExist) {
		fallback(sol)
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading solution preferences: %w", err)
	}
	var p Preferences
	if err := yaml.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("parsing solution preferences: %w", err)
	}
	active, ok := solution.ParseConfigurationAndPlatform(p.ActiveConfiguration)
	if ok && sol.HasConfiguration(active) {
		sol.ActiveConfiguration = active
		return nil
	}
	fallback(sol)
	return nil
}

func fallback(sol *solution.Solution) {
	if len(sol.ConfigurationNames) == 0 || len(sol.PlatformNames) == 0 {
		return
	}
	sol.ActiveConfiguration = solution.ConfigurationAndPlatform{
		Configuration: sol.ConfigurationNames[0],
		Platform:      sol.PlatformNames[0],
	}
}
