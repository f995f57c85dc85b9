package env

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	pkgstrings "github.com/klwxsrx/parcelshare/pkg/strings"
)

var ErrNotFound = errors.New("env not found")

func Must[T any](val T, err error) T {
	if err != nil {
		panic(fmt.Errorf("failed to parse environment: %w", err))
	}
	return val
}

// LoadDotEnv reads variables from the given files (".env" when none passed)
// without overriding the ones already set. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	existing := make([]string, 0, len(files))
	for _, file := range files {
		if _, err := os.Stat(file); err == nil {
			existing = append(existing, file)
		}
	}
	if len(existing) == 0 {
		return nil
	}

	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("load dotenv files: %w", err)
	}

	return nil
}

func Parse[T pkgstrings.SupportedValueParsingTypes](key string) (T, error) {
	var blank T
	str, ok := os.LookupEnv(key)
	if !ok {
		return blank, fmt.Errorf("%w: %s with type %T", ErrNotFound, key, blank)
	}

	v, err := pkgstrings.ParseTypedValue[T](str)
	if err != nil {
		return blank, invalidValueError(key, blank, err)
	}

	return v, nil
}

func ParseOptional[T pkgstrings.SupportedPointerParsingTypes](key string) (T, error) {
	var blank T
	str, ok := os.LookupEnv(key)
	if !ok || str == "" {
		return blank, nil
	}

	v, err := pkgstrings.ParseTypedValue[T](str)
	if err != nil {
		return blank, invalidValueError(key, blank, err)
	}

	return v, nil
}

func ParseDefault[T pkgstrings.SupportedValueParsingTypes](key string, defaultValue T) (T, error) {
	v, err := Parse[T](key)
	if errors.Is(err, ErrNotFound) {
		return defaultValue, nil
	}

	return v, err
}

func invalidValueError(key string, blank any, err error) error {
	return fmt.Errorf("env %s with type %T has invalid value: %w", key, blank, err)
}
