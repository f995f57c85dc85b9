package cmd

import (
	"fmt"

	"github.com/iancoleman/strcase"

	"github.com/klwxsrx/parcelshare/pkg/env"
	"github.com/klwxsrx/parcelshare/pkg/http"
)

type HTTPClientFactory struct {
	impl http.ClientFactory
}

func InitHTTPClientFactory(opts ...http.ClientOption) HTTPClientFactory {
	return HTTPClientFactory{
		impl: http.NewClientFactory(opts...),
	}
}

// DestinationURLEnv names the variable holding the base url of dest, e.g.
// PARCELSHARE_API_URL for "parcelshare-api".
func DestinationURLEnv(dest http.Destination) string {
	return fmt.Sprintf("%s_URL", strcase.ToScreamingSnake(string(dest)))
}

func (f HTTPClientFactory) InitClient(dest http.Destination, defaultURL string, extraOpts ...http.ClientOption) (http.Client, error) {
	host, err := env.ParseDefault(DestinationURLEnv(dest), defaultURL)
	if err != nil {
		return nil, err
	}

	return f.impl.InitClient(dest, host, extraOpts...), nil
}
