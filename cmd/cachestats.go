package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tagmate/tagmate/constants/lipgloss"
	"github.com/tagmate/tagmate/utils"
)

// cacheStatsCmd reports per-schema suggestion cache performance.
var cacheStatsCmd = &cobra.Command{
	Use:   "cache-stats",
	Short: "Show suggestion cache performance per schema source",
	Run: func(cmd *cobra.Command, args []string) {
		var reset bool
		reset, _ = cmd.Flags().GetBool("reset")

		rootDependencies := handleRootCommand(cmd)
		handleCacheStatsCommand(rootDependencies, reset)
	},
}

func init() {
	cacheStatsCmd.Flags().BoolP("reset", "r", false, "Reset all cache performance counters after printing")

	rootCmd.AddCommand(cacheStatsCmd)
}

func handleCacheStatsCommand(rootDependencies *RootDependencies, reset bool) {
	report := rootDependencies.Registry.PerformanceReport()
	if len(report) == 0 {
		fmt.Println(lipgloss.Yellow.Render("No schemas registered, nothing to report."))
		return
	}

	tableData := pterm.TableData{{"Schema", "Requests", "Hits", "Misses", "Hit rate", "Entries"}}
	for _, path := range rootDependencies.Registry.Paths() {
		stats := report[path]
		tableData = append(tableData, []string{
			path,
			fmt.Sprintf("%d", stats["total_requests"]),
			fmt.Sprintf("%d", stats["cache_hits"]),
			fmt.Sprintf("%d", stats["cache_misses"]),
			fmt.Sprintf("%.1f%%", stats["hit_rate_percent"]),
			fmt.Sprintf("%d", stats["entries"]),
		})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()

	if !reset {
		return
	}

	fmt.Println(lipgloss.Yellow.Render("Reset all cache performance counters? [y/N]"))
	answer, err := utils.InputPrompt(bufio.NewReader(os.Stdin))
	if err != nil || !strings.EqualFold(answer, "y") {
		fmt.Println(lipgloss.Gray.Render("Reset cancelled."))
		return
	}

	rootDependencies.Registry.ResetPerformanceStats()
	fmt.Println(lipgloss.Green.Render("Cache performance counters reset."))
}
