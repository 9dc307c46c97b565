package cmd

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tagmate/tagmate/completion/models"
	"github.com/tagmate/tagmate/constants/lipgloss"
	"github.com/tagmate/tagmate/document"
	"github.com/tagmate/tagmate/utils"
)

var completeCmd = &cobra.Command{
	Use:   "complete",
	Short: "Resolve the completions valid at a cursor position in a markup file",
	Long: `The 'complete' subcommand runs one completion request against a file: it
classifies the completion kind from the trigger and surrounding text, infers
the enclosing element, selects the schemas bound to the declared namespaces
and prints the resulting suggestions.`,
	Run: func(cmd *cobra.Command, args []string) {
		rootDependencies := handleRootCommand(cmd)
		handleCompleteCommand(rootDependencies, cmd)
	},
}

func init() {
	completeCmd.Flags().String("file", "", "Path to the markup document")
	completeCmd.Flags().Int("line", 0, "Cursor line (0-indexed)")
	completeCmd.Flags().Int("col", 0, "Cursor column (0-indexed)")
	completeCmd.Flags().String("trigger", "invoked", "Trigger signal: a single character, 'invoked', or 'incomplete'")
	completeCmd.Flags().Bool("show-context", false, "Print the highlighted source around the cursor")
	_ = completeCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(completeCmd)
}

func handleCompleteCommand(rootDependencies *RootDependencies, cmd *cobra.Command) {
	file, _ := cmd.Flags().GetString("file")
	line, _ := cmd.Flags().GetInt("line")
	col, _ := cmd.Flags().GetInt("col")
	triggerArg, _ := cmd.Flags().GetString("trigger")
	showContext, _ := cmd.Flags().GetBool("show-context")

	data, err := os.ReadFile(file)
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error reading %s: %v", file, err)))
		os.Exit(1)
	}

	doc := document.New(string(data))
	pos := models.Position{Line: line, Character: col}

	fmt.Println(lipgloss.BoxStyle.Render(fmt.Sprintf("%s:%d:%d (trigger: %s)", file, line, col, triggerArg)))

	if showContext {
		_ = utils.RenderXMLPreview(doc.Text(), line, 3, rootDependencies.Config.Theme)
	}

	items := rootDependencies.Engine.Complete(doc, pos, parseTrigger(triggerArg))
	if len(items) == 0 {
		fmt.Println(lipgloss.Yellow.Render("No completions at this position."))
		return
	}

	tableData := pterm.TableData{{"Label", "Kind", "Insert", "Documentation"}}
	for _, item := range items {
		tableData = append(tableData, []string{item.Label, string(item.Kind), item.InsertText, item.Documentation})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}

func parseTrigger(arg string) models.Trigger {
	switch arg {
	case "", "invoked":
		return models.Trigger{Kind: models.TriggerInvoked}
	case "incomplete":
		return models.Trigger{Kind: models.TriggerIncomplete}
	default:
		return models.Trigger{Kind: models.TriggerCharacter, Character: arg}
	}
}
