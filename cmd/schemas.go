package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tagmate/tagmate/constants/lipgloss"
)

var schemasCmd = &cobra.Command{
	Use:   "schemas",
	Short: "List the registered schema sources and their root elements",
	Run: func(cmd *cobra.Command, args []string) {
		rootDependencies := handleRootCommand(cmd)
		handleSchemasCommand(rootDependencies)
	},
}

func init() {
	rootCmd.AddCommand(schemasCmd)
}

func handleSchemasCommand(rootDependencies *RootDependencies) {
	paths := rootDependencies.Registry.Paths()
	if len(paths) == 0 {
		fmt.Println(lipgloss.Yellow.Render("No schemas registered. Configure a catalog with --catalog or catalog_path."))
		return
	}

	for _, path := range paths {
		source, _, ok := rootDependencies.Registry.Lookup(path)
		if !ok {
			continue
		}
		roots := source.GetRootElements()
		names := make([]string, 0, len(roots))
		for _, root := range roots {
			names = append(names, root.Name)
		}
		fmt.Println(lipgloss.Green.Render(path))
		fmt.Println(lipgloss.Gray.Render("  roots: " + strings.Join(names, ", ")))
	}
}
