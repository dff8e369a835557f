package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/trendarr/filter"
	"github.com/s0up4200/trendarr/source"
	"github.com/s0up4200/trendarr/store"
	"github.com/s0up4200/trendarr/trending"
)

var (
	trace       bool
	showDetails bool
)

// replayCmd represents the replay command
var replayCmd = &cobra.Command{
	Use:   "replay [action-log...]",
	Short: "Dispatch action logs through the store and print the final state",
	Long: `Read one or more JSON-lines action logs ("-" for stdin), dispatch every
action through the store in order and print the resulting trending state.

Use --filter or --preset to only print matching movies, for example:

  trendarr replay session.jsonl --filter 'hasGenre("horror") and Rating >= 7'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	replayCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	replayCmd.Flags().BoolVar(&trace, "trace", false, "print every state transition")
	replayCmd.Flags().BoolVar(&showDetails, "details", false, "show genres, ratings and ids")
}

func runReplay(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	actions, err := source.LoadActionLogs(ctx, args...)
	if err != nil {
		return fmt.Errorf("failed to load action logs: %w", err)
	}

	logger.Info().Int("actions", len(actions)).Strs("logs", args).Msg("Replaying actions")

	s := store.New(logger, store.WithHistory(cfg.Store.History))
	if trace {
		s.Subscribe(func(prev, next *trending.State, action trending.Action) {
			fmt.Fprintf(out, "%-34s loading=%-5t movies=%-4d error=%q\n",
				trending.TypeOf(action), next.Loading, len(next.Data), next.Error)
		})
	}

	for _, action := range actions {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.Dispatch(action)
	}

	state := s.State()

	selected, err := filters.Resolve(filterExpr, preset, cfg.Filter.DefaultExpression)
	if err != nil {
		return fmt.Errorf("invalid filter expression: %w", err)
	}
	if selected != nil {
		logger.Info().Str("filter", selected.Expression()).Msg("Filtering movies")
	}

	movies, err := filter.Apply(ctx, selected, state.Data)
	if err != nil {
		return err
	}

	rendered, err := formatterFor(cfg.Output.Format).FormatState(state, movies, trending.FormatOptions{
		ShowDetails: showDetails || cfg.Output.ShowDetails,
	})
	if err != nil {
		return err
	}

	if trace {
		fmt.Fprintln(out)
	}
	fmt.Fprint(out, rendered)
	return nil
}

func formatterFor(format string) trending.Formatter {
	if format == "json" {
		return trending.NewJSONFormatter()
	}
	return trending.NewConsoleFormatter()
}
