package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/s0up4200/trendarr/source"
	"github.com/s0up4200/trendarr/trending"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [action-log...]",
	Short: "Check that action logs decode",
	Long:  `Decode every action in the given logs without dispatching them and report how many of each type were found.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	actions, err := source.LoadActionLogs(cmd.Context(), args...)
	if err != nil {
		return err
	}

	counts := make(map[trending.ActionType]int)
	var unrecognized int
	for _, action := range actions {
		if !action.Type().Known() {
			unrecognized++
			continue
		}
		counts[action.Type()]++
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✓ %d actions decoded\n", len(actions))

	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, string(t))
	}
	sort.Strings(types)
	for _, t := range types {
		fmt.Fprintf(out, "  • %s: %d\n", t, counts[trending.ActionType(t)])
	}
	if unrecognized > 0 {
		fmt.Fprintf(out, "  • unrecognized (ignored by the reducer): %d\n", unrecognized)
	}

	return nil
}
