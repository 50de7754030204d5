package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan [dir...]",
	Short: "Index music files for name lookup",
	Long: `Walk the given directories (or the configured library_sources) and record
every music file in the library index, so queued names resolve to paths.
Entries for files that disappeared from the scanned directories are dropped.`,
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	sources := args
	if len(sources) == 0 {
		sources = cfg.LibrarySources
	}
	if len(sources) == 0 {
		return errors.New("no directories to scan: pass some or set library_sources")
	}

	idx, err := openIndex(cfg)
	if err != nil {
		return fmt.Errorf("open library index: %w", err)
	}
	defer idx.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	stats, err := idx.Scan(ctx, sources, cfg.MatchExtension)
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}

	total, err := idx.Count()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Scanned %s files (%s): %s added, %s removed, %s indexed\n",
		humanize.Comma(int64(stats.Files)),
		humanize.Bytes(uint64(stats.Bytes)), //nolint:gosec // sizes are never negative
		humanize.Comma(int64(stats.Added)),
		humanize.Comma(int64(stats.Removed)),
		humanize.Comma(int64(total)),
	)
	return nil
}
