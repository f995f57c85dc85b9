package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/klwxsrx/parcelshare/pkg/log"
	"github.com/klwxsrx/parcelshare/pkg/metric"
	"github.com/klwxsrx/parcelshare/pkg/observability"
)

const DefaultRequestIDHeader = "X-Request-ID"

type (
	ClientOption func(*ClientImpl)

	Client interface {
		NewRequest(ctx context.Context, route Route) *Request
		With(opts ...ClientOption) Client
	}

	ClientImpl struct {
		DestinationName string
		RESTClient      *resty.Client
		opts            []ClientOption
	}

	routeContextKey struct{}
)

func NewClient(opts ...ClientOption) Client {
	client := ClientImpl{
		DestinationName: "",
		RESTClient:      resty.New(),
		opts:            opts,
	}

	for _, opt := range opts {
		opt(&client)
	}

	return client
}

func (c ClientImpl) NewRequest(ctx context.Context, route Route) *Request {
	ctx = context.WithValue(ctx, routeContextKey{}, route)
	return &Request{
		impl:  c.RESTClient.NewRequest().SetContext(ctx),
		route: route,
	}
}

func (c ClientImpl) With(opts ...ClientOption) Client {
	mergedOpts := make([]ClientOption, 0, len(c.opts)+len(opts))
	mergedOpts = append(mergedOpts, c.opts...)
	mergedOpts = append(mergedOpts, opts...)
	return NewClient(mergedOpts...)
}

func WithClientDestination(name, url string) ClientOption {
	return func(c *ClientImpl) {
		c.DestinationName = name
		c.RESTClient.SetBaseURL(url)
	}
}

func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.SetTimeout(timeout)
	}
}

func WithRequestHeader(name, value string) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.SetHeader(name, value)
	}
}

func WithRequestObservability(observer observability.Observer, requestIDHeaderName string) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			id, ok := observer.RequestID(req.Context())
			if !ok {
				id = observability.NewID()
			}

			req.SetHeader(requestIDHeaderName, id)
			return nil
		})
	}
}

func WithRequestLogging(logger log.Logger, infoLevel, errorLevel log.Level) ClientOption {
	const destinationNameLogField = "destinationName"
	return func(c *ClientImpl) {
		c.RESTClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			entry := logger.With(log.Fields{
				destinationNameLogField: getDestinationNameForLogging(c),
				"method":                resp.Request.Method,
				"route":                 routeFromContext(resp.Request.Context()).URL,
				"responseCode":          resp.StatusCode(),
				"duration":              resp.Time().String(),
			})

			if resp.StatusCode() >= http.StatusInternalServerError {
				entry.Log(resp.Request.Context(), errorLevel, "http call completed with internal error")
			} else {
				entry.Log(resp.Request.Context(), infoLevel, "http call completed")
			}

			return nil
		})

		c.RESTClient.OnError(func(req *resty.Request, err error) {
			logger.
				With(log.Fields{
					destinationNameLogField: getDestinationNameForLogging(c),
					"method":                req.Method,
					"route":                 routeFromContext(req.Context()).URL,
				}).
				WithError(err).
				Log(req.Context(), errorLevel, "http call completed with error")
		})
	}
}

func WithRequestMetrics(metrics metric.Metrics) ClientOption {
	return func(c *ClientImpl) {
		destinationName := getDestinationNameForLogging(c)
		c.RESTClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			metrics.With(metric.Labels{
				"destination": destinationName,
				"method":      resp.Request.Method,
				"route":       routeFromContext(resp.Request.Context()).Name(),
				"code":        fmt.Sprintf("%d", resp.StatusCode()),
			}).Duration("http_client_request_duration_seconds", resp.Time())
			return nil
		})
	}
}

type ClientFactory struct {
	baseOpts []ClientOption
}

func NewClientFactory(opts ...ClientOption) ClientFactory {
	return ClientFactory{
		baseOpts: opts,
	}
}

func (f ClientFactory) InitClient(dest Destination, baseURL string, extraOpts ...ClientOption) Client {
	opts := make([]ClientOption, 0, len(f.baseOpts)+len(extraOpts)+1)
	opts = append(opts, WithClientDestination(string(dest), baseURL))
	opts = append(opts, f.baseOpts...)
	opts = append(opts, extraOpts...)

	return NewClient(opts...)
}

type Destination string

func getDestinationNameForLogging(c *ClientImpl) string {
	if c.DestinationName != "" {
		return c.DestinationName
	}
	return "-"
}

func routeFromContext(ctx context.Context) Route {
	route, _ := ctx.Value(routeContextKey{}).(Route)
	return route
}
