package observability

import (
	"context"

	"github.com/google/uuid"

	"github.com/klwxsrx/parcelshare/pkg/log"
)

type (
	LogField string

	contextKey int
)

const (
	LogFieldRequestID LogField = "requestID"
	LogFieldMountID   LogField = "mountID"
)

const (
	requestIDContextKey contextKey = iota
)

type (
	Observer interface {
		RequestID(context.Context) (string, bool)
		WithRequestID(context.Context, string) context.Context
		WithField(context.Context, LogField, string) context.Context
	}

	ObserverOption func(*observer)
)

type observer struct {
	logger        log.Logger
	loggingFields map[LogField]struct{}
}

func New(opts ...ObserverOption) Observer {
	o := observer{}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func NewID() string {
	return uuid.New().String()
}

func (o observer) RequestID(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(requestIDContextKey).(string)
	if !ok || len(requestID) == 0 {
		return "", false
	}

	return requestID, true
}

func (o observer) WithRequestID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, requestIDContextKey, id)
	return o.WithField(ctx, LogFieldRequestID, id)
}

func (o observer) WithField(ctx context.Context, field LogField, value string) context.Context {
	if o.logger == nil {
		return ctx
	}
	if _, ok := o.loggingFields[field]; !ok {
		return ctx
	}

	return o.logger.WithContext(ctx, log.Fields{
		string(field): value,
	})
}

func WithFieldsLogging(logger log.Logger, fields ...LogField) ObserverOption {
	return func(o *observer) {
		o.logger = logger

		o.loggingFields = make(map[LogField]struct{}, len(fields))
		for _, field := range fields {
			o.loggingFields[field] = struct{}{}
		}
	}
}
