package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/slnkit/slnkit/internal/solution"
)

var inspectFormat string

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.sln>",
	Short: "List the projects of a solution",
	Long: `Parse a solution file and list every project and folder entry with
its type, identity, and resolved path.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sol, err := loadSolution(args[0])
		if err != nil {
			return err
		}
		if inspectFormat == "yaml" {
			return printYAML(sol)
		}
		return printPlain(sol)
	},
}

func init() {
	inspectCmd.Flags().StringVar(&inspectFormat, "format", "plain", "output format: plain or yaml")
	rootCmd.AddCommand(inspectCmd)
}

func printPlain(sol *solution.Solution) error {
	fmt.Printf("%s (%s)\n", sol.Path, sol.Version)
	if sol.Dirty {
		fmt.Println("note: duplicate project ids were repaired")
	}
	for _, p := range sol.Projects {
		kind := "project"
		if p.IsFolder() {
			kind = "folder"
		}
		fmt.Printf("  %-8s %s  {%s}  %s\n", kind, p.Title, p.ID, p.RelativePath)
	}
	return nil
}

// projectView is the YAML shape of one project entry.
type projectView struct {
	Title               string `yaml:"title"`
	Type                string `yaml:"type"`
	ID                  string `yaml:"id"`
	Path                string `yaml:"path"`
	Folder              bool   `yaml:"folder,omitempty"`
	ActiveConfiguration string `yaml:"active_configuration,omitempty"`
}

type solutionView struct {
	Path                string        `yaml:"path"`
	Version             string        `yaml:"version"`
	Configurations      []string      `yaml:"configurations"`
	Platforms           []string      `yaml:"platforms"`
	ActiveConfiguration string        `yaml:"active_configuration"`
	Dirty               bool          `yaml:"dirty,omitempty"`
	Projects            []projectView `yaml:"projects"`
}

func printYAML(sol *solution.Solution) error {
	view := solutionView{
		Path:                sol.Path,
		Version:             sol.Version.String(),
		Configurations:      sol.ConfigurationNames,
		Platforms:           sol.PlatformNames,
		ActiveConfiguration: sol.ActiveConfiguration.String(),
		Dirty:               sol.Dirty,
	}
	for _, p := range sol.Projects {
		pv := projectView{
			Title:  p.Title,
			Type:   p.TypeID.String(),
			ID:     p.ID.String(),
			Path:   p.Path,
			Folder: p.IsFolder(),
		}
		if !p.ActiveConfiguration.IsZero() {
			pv.ActiveConfiguration = p.ActiveConfiguration.String()
		}
		view.Projects = append(view.Projects, pv)
	}
	out, err := yaml.Marshal(view)
	if err != nil {
		return fmt.Errorf("encoding solution: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
