package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	pkgcmd "github.com/klwxsrx/parcelshare/pkg/cmd"
	"github.com/klwxsrx/parcelshare/pkg/http"
	"github.com/klwxsrx/parcelshare/pkg/kv"
	"github.com/klwxsrx/parcelshare/pkg/lazy"
	"github.com/klwxsrx/parcelshare/pkg/log"
	"github.com/klwxsrx/parcelshare/pkg/metric"
	"github.com/klwxsrx/parcelshare/pkg/observability"
)

const (
	metricsNamespace     = "parcelshare"
	boltBucket           = "session"
	storageRetryDuration = 500 * time.Millisecond
)

type (
	InfrastructureOption func(*infrastructureOptions)

	infrastructureOptions struct {
		ephemeral   bool
		fileLogging bool
	}
)

// WithEphemeralStorage keeps the session in memory only.
func WithEphemeralStorage(ephemeral bool) InfrastructureOption {
	return func(o *infrastructureOptions) {
		o.ephemeral = o.ephemeral || ephemeral
	}
}

// WithFileLogging sends logs to a rotated file instead of stderr.
func WithFileLogging() InfrastructureOption {
	return func(o *infrastructureOptions) {
		o.fileLogging = true
	}
}

type InfrastructureContainer struct {
	Config            Config
	HTTPClientFactory lazy.Loader[pkgcmd.HTTPClientFactory]
	Storage           lazy.Loader[kv.Storage]
	Metrics           lazy.Loader[metric.Metrics]
	Observer          lazy.Loader[observability.Observer]
	Logger            lazy.Loader[log.Logger]

	registry    lazy.Loader[*metric.Registry]
	file        lazy.Loader[*kv.File]
	bolt        lazy.Loader[*kv.Bolt]
	logCloser   io.Closer
	storageKind StorageKind
}

func NewInfrastructureContainer(cfg Config, opts ...InfrastructureOption) *InfrastructureContainer {
	var o infrastructureOptions
	for _, opt := range opts {
		opt(&o)
	}

	storageKind := cfg.Storage
	if o.ephemeral {
		storageKind = StorageMemory
	}

	c := &InfrastructureContainer{
		Config:      cfg,
		storageKind: storageKind,
	}
	c.Logger = c.loggerProvider(o.fileLogging)
	c.registry = lazy.New(func() (*metric.Registry, error) {
		return metric.NewRegistry(metricsNamespace), nil
	})
	c.Metrics = lazy.New(func() (metric.Metrics, error) {
		return c.registry.MustLoad().Metrics(), nil
	})
	c.Observer = observerProvider(c.Logger)
	c.HTTPClientFactory = httpClientFactoryProvider(cfg, c.Observer, c.Metrics, c.Logger)
	c.file = lazy.New(func() (*kv.File, error) {
		return kv.NewFile(cfg.SessionFile())
	})
	c.bolt = lazy.New(func() (*kv.Bolt, error) {
		err := os.MkdirAll(cfg.Home, 0o700)
		if err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
		return kv.OpenBolt(cfg.BoltFile(), boltBucket)
	})
	c.Storage = c.storageProvider()
	return c
}

// StorageWatcher reports session changes made by other processes; only the
// file storage supports it.
func (c *InfrastructureContainer) StorageWatcher() (kv.Watcher, bool) {
	if c.storageKind != StorageFile {
		return nil, false
	}

	file, err := c.file.Load()
	if err != nil {
		return nil, false
	}
	return file, true
}

func (c *InfrastructureContainer) Close(ctx context.Context) {
	logger := c.Logger.MustLoad()
	if c.Config.MetricsFile != nil {
		c.registry.IfLoaded(func(registry *metric.Registry) {
			err := registry.WriteTextfile(*c.Config.MetricsFile)
			if err != nil {
				logger.WithError(err).Warn(ctx, "failed to export metrics")
			}
		})
	}

	c.bolt.IfLoaded(func(db *kv.Bolt) {
		err := db.Close()
		if err != nil {
			logger.WithError(err).Warn(ctx, "failed to close session database")
		}
	})

	if c.logCloser != nil {
		_ = c.logCloser.Close()
	}
}

func (c *InfrastructureContainer) loggerProvider(fileLogging bool) lazy.Loader[log.Logger] {
	return lazy.New(func() (log.Logger, error) {
		if !fileLogging {
			return pkgcmd.InitLogger(log.LevelWarn, log.WithOutput(os.Stderr), log.WithFormat(log.FormatText)), nil
		}

		logger, closer, err := pkgcmd.InitFileLogger(c.Config.LogFile(), log.LevelInfo)
		if err != nil {
			return nil, err
		}
		c.logCloser = closer
		return logger, nil
	})
}

func (c *InfrastructureContainer) storageProvider() lazy.Loader[kv.Storage] {
	return lazy.New(func() (kv.Storage, error) {
		switch c.storageKind {
		case StorageMemory:
			return kv.NewMemory(), nil
		case StorageBolt:
			db, err := c.bolt.Load()
			if err != nil {
				return nil, err
			}
			return kv.WithRetry(db, storageRetryDuration), nil
		default:
			file, err := c.file.Load()
			if err != nil {
				return nil, err
			}
			return kv.WithRetry(file, storageRetryDuration), nil
		}
	})
}

func observerProvider(
	logger lazy.Loader[log.Logger],
) lazy.Loader[observability.Observer] {
	return lazy.New(func() (observability.Observer, error) {
		return observability.New(
			observability.WithFieldsLogging(logger.MustLoad(),
				observability.LogFieldRequestID,
				observability.LogFieldMountID,
			),
		), nil
	})
}

func httpClientFactoryProvider(
	cfg Config,
	observer lazy.Loader[observability.Observer],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[pkgcmd.HTTPClientFactory] {
	return lazy.New(func() (pkgcmd.HTTPClientFactory, error) {
		opts := []http.ClientOption{
			http.WithRequestObservability(observer.MustLoad(), http.DefaultRequestIDHeader),
			http.WithRequestMetrics(metrics.MustLoad()),
			http.WithRequestLogging(logger.MustLoad(), log.LevelDebug, log.LevelWarn),
		}
		if cfg.HTTPTimeout != nil {
			opts = append(opts, http.WithTimeout(*cfg.HTTPTimeout))
		}

		return pkgcmd.InitHTTPClientFactory(opts...), nil
	})
}
