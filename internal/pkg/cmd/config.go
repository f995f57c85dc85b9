package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/klwxsrx/parcelshare/pkg/env"
)

type StorageKind string

const (
	StorageFile   StorageKind = "file"
	StorageBolt   StorageKind = "bolt"
	StorageMemory StorageKind = "memory"
)

const (
	appDirName      = "parcelshare"
	sessionFileName = "session.json"
	boltFileName    = "session.db"
	logFileName     = "parcelshare.log"
)

type Config struct {
	Home        string
	Storage     StorageKind
	HTTPTimeout *time.Duration
	MetricsFile *string
}

// LoadConfig reads the environment after loading .env from the working
// directory.
func LoadConfig() (Config, error) {
	err := env.LoadDotEnv()
	if err != nil {
		return Config{}, err
	}

	home, err := env.ParseOptional[*string]("PARCELSHARE_HOME")
	if err != nil {
		return Config{}, err
	}
	if home == nil {
		dir, err := os.UserConfigDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve config dir: %w", err)
		}
		home = new(string)
		*home = filepath.Join(dir, appDirName)
	}

	storage, err := env.ParseDefault("PARCELSHARE_STORAGE", string(StorageFile))
	if err != nil {
		return Config{}, err
	}
	switch StorageKind(storage) {
	case StorageFile, StorageBolt, StorageMemory:
	default:
		return Config{}, fmt.Errorf("invalid PARCELSHARE_STORAGE %q: want file, bolt or memory", storage)
	}

	timeout, err := env.ParseOptional[*time.Duration]("PARCELSHARE_HTTP_TIMEOUT")
	if err != nil {
		return Config{}, err
	}

	metricsFile, err := env.ParseOptional[*string]("PARCELSHARE_METRICS_FILE")
	if err != nil {
		return Config{}, err
	}

	return Config{
		Home:        *home,
		Storage:     StorageKind(storage),
		HTTPTimeout: timeout,
		MetricsFile: metricsFile,
	}, nil
}

func (c Config) SessionFile() string {
	return filepath.Join(c.Home, sessionFileName)
}

func (c Config) BoltFile() string {
	return filepath.Join(c.Home, boltFileName)
}

func (c Config) LogFile() string {
	return filepath.Join(c.Home, logFileName)
}
