package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/slnkit/slnkit/internal/solution"
)

var treeCmd = &cobra.Command{
	Use:   "tree <file.sln>",
	Short: "Print the resolved solution item tree",
	Long: `Parse a solution file and print its item tree: folders with their
nested children, and top-level items at the root.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sol, err := loadSolution(args[0])
		if err != nil {
			return err
		}
		fmt.Println(sol.Path)
		for _, item := range sol.Items {
			printItem(item, 1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
}

func printItem(item solution.Item, depth int) {
	indent := strings.Repeat("  ", depth)
	if folder, ok := item.(*solution.SolutionFolder); ok {
		fmt.Printf("%s%s/\n", indent, folder.Name)
		for _, child := range folder.Items {
			printItem(child, depth+1)
		}
		return
	}
	fmt.Printf("%s%s\n", indent, item.ItemName())
}
