package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/s0up4200/trendarr/source"
	"github.com/s0up4200/trendarr/trending"
)

var (
	radarrExport string
	pageSize     int
	outFile      string
	keepOrder    bool
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Convert a Radarr movie export into an action log",
	Long: `Read a saved Radarr /api/v3/movie response and write the action log a
paging fetch of those movies would produce: a request, a success with the first
page and one load-more per further page.`,
	Args: cobra.NoArgs,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&radarrExport, "radarr", "", "path to a Radarr movie export (JSON)")
	importCmd.Flags().IntVar(&pageSize, "page-size", 0, "movies per page (default from config)")
	importCmd.Flags().StringVarP(&outFile, "out", "o", "", "write the action log to a file instead of stdout")
	importCmd.Flags().BoolVar(&keepOrder, "keep-order", false, "keep export order instead of sorting by popularity")
	_ = importCmd.MarkFlagRequired("radarr")
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	movies, err := source.LoadRadarrExportFile(ctx, radarrExport)
	if err != nil {
		return err
	}

	if cfg.Import.SortByPopularity && !keepOrder {
		movies = source.SortByPopularity(movies)
	}

	size := cfg.Import.PageSize
	if pageSize > 0 {
		size = pageSize
	}
	actions := trending.Paginate(movies, size)

	var w io.Writer = cmd.OutOrStdout()
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return fmt.Errorf("failed to create action log: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := source.WriteActionLog(w, actions); err != nil {
		return err
	}

	logger.Info().
		Int("movies", len(movies)).
		Int("actions", len(actions)).
		Int("page_size", size).
		Msg("Wrote action log")
	return nil
}
