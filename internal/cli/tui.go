package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/llehouerou/wavesq/internal/app"
	"github.com/llehouerou/wavesq/internal/config"
	"github.com/llehouerou/wavesq/internal/errmsg"
	"github.com/llehouerou/wavesq/internal/icons"
	"github.com/llehouerou/wavesq/internal/library"
	"github.com/llehouerou/wavesq/internal/mpris"
	"github.com/llehouerou/wavesq/internal/notify"
	"github.com/llehouerou/wavesq/internal/playback"
	"github.com/llehouerou/wavesq/internal/player"
	"github.com/llehouerou/wavesq/internal/stderr"
)

func runTUI(cmd *cobra.Command, args []string) error {
	icons.Init(cfg.Icons)

	// Warnings printed from here on surface in the status line.
	capture, err := stderr.Start(cfg.EventBuffer)
	if err != nil {
		cmd.PrintErrln(errmsg.Format(errmsg.OpInitialize, err))
	}
	defer capture.Close()

	idx, err := openIndex(cfg)
	if err != nil {
		// The queue still works off the library sources alone.
		cmd.PrintErrln(errmsg.Format(errmsg.OpLibraryOpen, err))
	} else {
		defer idx.Close()
	}

	svc := playback.New(player.New(), newResolver(cfg, idx),
		playback.WithNames(args...),
		playback.WithLoop(cfg.Loop),
		playback.WithEventBuffer(cfg.EventBuffer),
	)
	defer svc.Close()

	if cfg.MPRIS {
		adapter, err := mpris.New(svc)
		if err != nil {
			cmd.PrintErrln(errmsg.Format(errmsg.OpMprisStart, err))
		} else {
			defer adapter.Close()
		}
	}

	var notifier notify.Notifier
	if cfg.Notifications {
		if notifier, err = notify.New(); err != nil {
			cmd.PrintErrln(errmsg.Format(errmsg.OpNotify, err))
			notifier = nil
		}
	}

	m := app.New(svc, notifier)
	m.Stderr = capture.Lines()
	defer m.Close()

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	if fm, ok := final.(app.Model); ok {
		if err := fm.DismissNotification(); err != nil {
			cmd.PrintErrln(errmsg.Format(errmsg.OpNotify, err))
		}
	}
	return nil
}

// openIndex opens the configured library index, or the default one.
func openIndex(cfg *config.Config) (*library.Index, error) {
	path := cfg.Database
	if path == "" {
		var err error
		if path, err = library.DefaultPath(); err != nil {
			return nil, err
		}
	}
	return library.Open(path)
}

// newResolver looks names up in the index first, then under the library
// sources. idx may be nil.
func newResolver(cfg *config.Config, idx *library.Index) func(string) (string, bool) {
	var fromIndex library.ResolveFunc
	if idx != nil {
		fromIndex = idx.Resolve
	}
	return library.Chain(fromIndex, library.DirResolver{Roots: cfg.LibrarySources}.Resolve)
}
