package parcelshare

import (
	"context"

	"github.com/bluele/gcache"

	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/backend"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/router"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/screen"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/session"
	"github.com/klwxsrx/parcelshare/internal/parcelshare/infra/http"
	pkgcmd "github.com/klwxsrx/parcelshare/pkg/cmd"
	"github.com/klwxsrx/parcelshare/pkg/kv"
	"github.com/klwxsrx/parcelshare/pkg/lazy"
	"github.com/klwxsrx/parcelshare/pkg/log"
	"github.com/klwxsrx/parcelshare/pkg/metric"
)

const defaultAPIURL = "http://localhost:8080"

type DependencyContainer struct {
	Sessions lazy.Loader[*session.Store]
	Router   lazy.Loader[*router.Router]
	API      lazy.Loader[backend.API]
	Screens  lazy.Loader[*screen.Factory]
}

func NewDependencyContainer(
	ctx context.Context,
	storage lazy.Loader[kv.Storage],
	httpClientFactory lazy.Loader[pkgcmd.HTTPClientFactory],
	navigator router.Navigator,
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) DependencyContainer {
	sessions := sessionStoreProvider(ctx, storage, logger)
	routerImpl := routerProvider(sessions, navigator, metrics, logger)
	api := apiProvider(httpClientFactory, sessions)
	candidates := lazy.New(func() (gcache.Cache, error) {
		return screen.NewCandidateCache(), nil
	})

	return DependencyContainer{
		Sessions: sessions,
		Router:   routerImpl,
		API:      api,
		Screens: lazy.New(func() (*screen.Factory, error) {
			return screen.NewFactory(&screen.Deps{
				API:      api.MustLoad(),
				Sessions: sessions.MustLoad(),
				Router:   routerImpl.MustLoad(),
				Logger:   logger.MustLoad(),
			}, candidates.MustLoad()), nil
		}),
	}
}

func sessionStoreProvider(
	ctx context.Context,
	storage lazy.Loader[kv.Storage],
	logger lazy.Loader[log.Logger],
) lazy.Loader[*session.Store] {
	return lazy.New(func() (*session.Store, error) {
		s, err := storage.Load()
		if err != nil {
			return nil, err
		}

		store := session.NewStore(s, logger.MustLoad())
		store.Hydrate(ctx)
		return store, nil
	})
}

func routerProvider(
	sessions lazy.Loader[*session.Store],
	navigator router.Navigator,
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[*router.Router] {
	return lazy.New(func() (*router.Router, error) {
		return router.New(
			sessions.MustLoad(),
			navigator,
			logger.MustLoad(),
			router.WithMetrics(metrics.MustLoad()),
		), nil
	})
}

func apiProvider(
	httpClientFactory lazy.Loader[pkgcmd.HTTPClientFactory],
	sessions lazy.Loader[*session.Store],
) lazy.Loader[backend.API] {
	return lazy.New(func() (backend.API, error) {
		client, err := httpClientFactory.MustLoad().InitClient(http.Destination, defaultAPIURL)
		if err != nil {
			return nil, err
		}

		return http.NewBackend(client, sessions.MustLoad()), nil
	})
}
