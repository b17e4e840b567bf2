package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slnkit/slnkit/internal/solution"
)

var configsCmd = &cobra.Command{
	Use:   "configs <file.sln>",
	Short: "Print the configuration matrix of a solution",
	Long: `Parse a solution file and print, for every project and solution
configuration, the mapped project configuration and whether the project
builds under it. Projects without a mapping for a configuration do not
participate in it, shown as "-".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sol, err := loadSolution(args[0])
		if err != nil {
			return err
		}
		for _, p := range sol.Projects {
			if p.IsFolder() {
				continue
			}
			fmt.Printf("%s:\n", p.Title)
			for _, cfg := range sol.ConfigurationNames {
				for _, plat := range sol.PlatformNames {
					sc := solution.ConfigurationAndPlatform{Configuration: cfg, Platform: plat}
					pc, ok := p.Configurations.Get(sc)
					if !ok {
						fmt.Printf("  %-24s -\n", sc)
						continue
					}
					build := " "
					if pc.Build {
						build = "build"
					}
					fmt.Printf("  %-24s %-24s %s\n", sc, pc.Configuration, build)
				}
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configsCmd)
}
