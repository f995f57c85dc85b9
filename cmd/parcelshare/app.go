package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/klwxsrx/parcelshare/internal/parcelshare"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/router"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/screen"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/session"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/infra/tui"
	"github.com/klwxsrx/parcelshare/internal/pkg/cmd"
	pkgcmd "github.com/klwxsrx/parcelshare/pkg/cmd"
	"github.com/klwxsrx/parcelshare/pkg/log"
)

type app struct {
	infra     *cmd.InfrastructureContainer
	container parcelshare.DependencyContainer
	logger    log.Logger
	sessions  *session.Store
}

func newApp(ctx context.Context, navigator router.Navigator, opts ...cmd.InfrastructureOption) (*app, error) {
	cfg, err := cmd.LoadConfig()
	if err != nil {
		return nil, err
	}

	opts = append(opts, cmd.WithEphemeralStorage(ephemeral))
	infra := cmd.NewInfrastructureContainer(cfg, opts...)
	logger, err := infra.Logger.Load()
	if err != nil {
		return nil, err
	}

	container := parcelshare.NewDependencyContainer(
		ctx,
		infra.Storage,
		infra.HTTPClientFactory,
		navigator,
		infra.Metrics,
		infra.Logger,
	)
	sessions, err := container.Sessions.Load()
	if err != nil {
		infra.Close(ctx)
		return nil, fmt.Errorf("open session storage: %w", err)
	}

	return &app{
		infra:     infra,
		container: container,
		logger:    logger,
		sessions:  sessions,
	}, nil
}

func (a *app) Close(ctx context.Context) {
	a.infra.Close(ctx)
}

// pathRecorder remembers where the last navigation of a one-shot command
// pointed to.
type pathRecorder struct {
	mu   sync.Mutex
	last string
}

func (r *pathRecorder) Navigate(path string) {
	r.set(path)
}

func (r *pathRecorder) Redirect(path string) {
	r.set(path)
}

func (r *pathRecorder) set(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last = path
}

func (r *pathRecorder) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

// oneShot drives a single screen synchronously.
type oneShot struct {
	*app
	navigator *pathRecorder
	mount     *screen.Mount
	out       io.Writer
}

func runOneShot(c *cobra.Command, f func(ctx context.Context, s *oneShot) error) error {
	ctx := c.Context()
	navigator := &pathRecorder{}
	a, err := newApp(ctx, navigator)
	if err != nil {
		return err
	}
	defer a.Close(ctx)
	defer pkgcmd.HandleAppPanic(ctx, a.logger)

	mount := screen.NewMount(ctx, a.infra.Observer.MustLoad())
	defer mount.Close()

	return f(mount.Context(), &oneShot{
		app:       a,
		navigator: navigator,
		mount:     mount,
		out:       c.OutOrStdout(),
	})
}

// open mounts the screen at path and waits for its initial fetch.
func (s *oneShot) open(ctx context.Context, path string) (screen.Screen, error) {
	screens, err := s.container.Screens.Load()
	if err != nil {
		return nil, err
	}

	scr, tasks := screens.Open(ctx, path)
	s.run(tasks...)

	if p, ok := scr.(*screen.Placeholder); ok {
		return nil, fmt.Errorf("%s: sign in first with \"parcelshare login\"", p.Text())
	}
	return scr, nil
}

func (s *oneShot) run(tasks ...screen.Task) {
	for _, task := range tasks {
		if task != nil {
			s.mount.Run(task)()
		}
	}
}

func (s *oneShot) render(scr screen.Screen, expand bool) {
	fmt.Fprintln(s.out, tui.RenderScreen(scr, s.sessions.Session(), tui.RenderOptions{
		Styles:   tui.PlainStyles(),
		Markdown: tui.PlainMarkdown,
		Width:    width,
		Now:      time.Now(),
		Expand:   expand,
	}))
}

// report prints the banner of scr; an error banner becomes the command error.
func (s *oneShot) report(scr screen.Screen) error {
	banner := scr.Banner()
	switch {
	case !banner.Visible():
		return nil
	case banner.Kind == screen.BannerError:
		return errors.New(banner.Text)
	default:
		fmt.Fprintln(s.out, banner.Text)
		return nil
	}
}
