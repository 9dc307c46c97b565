package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tagmate/tagmate/completion"
	completion_contracts "github.com/tagmate/tagmate/completion/contracts"
	"github.com/tagmate/tagmate/config"
	"github.com/tagmate/tagmate/constants/lipgloss"
	"github.com/tagmate/tagmate/schema_provider"
)

// RootDependencies holds the wired components shared by all subcommands.
type RootDependencies struct {
	Config   *config.Config
	Cwd      string
	Registry *schema_provider.SchemaRegistry
	Engine   completion_contracts.ICompletionEngine
}

var rootCmd = &cobra.Command{
	Use:   "tagmate",
	Short: "Schema-aware completion assistant for XML and markup documents.",
	Long: `tagmate resolves what kind of completion is valid at a cursor position in a
markup document, matches declared namespaces against registered schemas, and
returns the valid element, attribute, closing-tag or snippet suggestions for
that location.`,
	Run: func(cmd *cobra.Command, args []string) {
		if version, _ := cmd.Flags().GetBool("version"); version {
			fmt.Println(config.DefaultConfig.Version)
			return
		}
		_ = cmd.Help()
	},
}

func handleRootCommand(cmd *cobra.Command) *RootDependencies {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error getting current directory: %v", err)))
		os.Exit(1)
	}

	cfg := config.LoadConfigs(rootCmd, cwd)

	registry := schema_provider.NewSchemaRegistry()
	if !cfg.EnableCache {
		registry.DisableCaching()
	}

	if cfg.CatalogPath != "" {
		catalog, err := schema_provider.LoadCatalog(cfg.CatalogPath)
		if err != nil {
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
			os.Exit(1)
		}
		if err := catalog.Populate(registry, baseDirOf(cfg.CatalogPath)); err != nil {
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
			os.Exit(1)
		}
	}

	return &RootDependencies{
		Config:   cfg,
		Cwd:      cwd,
		Registry: registry,
		Engine:   completion.NewEngine(registry),
	}
}

func baseDirOf(path string) string {
	return filepath.Dir(path)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		os.Exit(1)
	}
}

func init() {
	config.InitFlags(rootCmd)
}
