package main

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/router"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/domain"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/infra/token"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/infra/tui"
	"github.com/klwxsrx/parcelshare/internal/pkg/cmd"
	pkgcmd "github.com/klwxsrx/parcelshare/pkg/cmd"
	pkgtime "github.com/klwxsrx/parcelshare/pkg/time"
)

var uiCmd = &cobra.Command{
	Use:   "ui [path]",
	Short: "Start the interactive client",
	Long: `Starts the interactive client at path (default "/").

The session is shared with the one-shot commands and with other running
clients: signing in or out anywhere updates every open client.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUI,
}

func runUI(c *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(c.Context())
	defer cancel()

	navigator := tui.NewNavigator()
	a, err := newApp(ctx, navigator, cmd.WithFileLogging())
	if err != nil {
		return err
	}
	defer a.Close(ctx)
	defer pkgcmd.HandleAppPanic(ctx, a.logger)

	startPath := router.PathHome
	if len(args) > 0 {
		startPath = args[0]
	}

	screens, err := a.container.Screens.Load()
	if err != nil {
		return err
	}

	clock := pkgtime.NewClock()
	model := tui.New(ctx, tui.Config{
		Screens:   screens,
		Router:    a.container.Router.MustLoad(),
		Sessions:  a.sessions,
		Observer:  a.infra.Observer.MustLoad(),
		Clock:     clock,
		Logger:    a.logger,
		Markdown:  tui.GlamourMarkdown,
		Styles:    tui.DefaultStyles(),
		StartPath: startPath,
		StatusLine: func(sess domain.Session) string {
			return token.StatusLine(sess.Token, clock.Now(ctx))
		},
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	jobs := []pkgcmd.Job{
		func(ctx context.Context) error {
			stop := context.AfterFunc(ctx, program.Quit)
			defer stop()

			_, err := program.Run()
			return err
		},
		func(ctx context.Context) error {
			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case msg := <-navigator.Messages():
					program.Send(msg)
				}
			}
		},
		pkgcmd.TermSignalAwaiter,
	}
	if watcher, ok := a.infra.StorageWatcher(); ok {
		jobs = append(jobs, func(ctx context.Context) error {
			return watcher.Watch(ctx, func() {
				a.sessions.Reload(ctx)
				program.Send(tui.SessionChanged())
			})
		})
	}

	a.logger.WithField("startPath", startPath).Info(ctx, "interactive client started")
	defer func(started time.Time) {
		a.logger.WithField("duration", time.Since(started).String()).Info(ctx, "interactive client stopped")
	}(time.Now())

	return pkgcmd.Run(ctx, a.logger, jobs...)
}
