// Package logging keeps a request scoped logrus entry and correlation id
// in the context.
package logging

import (
	"context"
	"os"

	"github.com/lithammer/shortuuid/v3"
	"github.com/sirupsen/logrus"
)

// HeaderCorrelationID is read from incoming requests and sent to the backend
const HeaderCorrelationID = "Correlation-ID"

type ctxKey int

const (
	loggerKey ctxKey = iota
	correlationIDKey
)

// Init configures the standard logger. Development gets colourless text,
// everything else JSON.
func Init(level string, development bool) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
	logrus.SetOutput(os.Stdout)

	if development {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

// NewCorrelationID generates an id for requests that arrive without one
func NewCorrelationID() string {
	return "gen_" + shortuuid.New()
}

func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey).(string)
	return id
}

// ToContext attaches a logger carrying request fields
func ToContext(ctx context.Context, entry *logrus.Entry) context.Context {
	return context.WithValue(ctx, loggerKey, entry)
}

// FromContext returns the request logger, or the standard logger bound to ctx
func FromContext(ctx context.Context) *logrus.Entry {
	if entry, ok := ctx.Value(loggerKey).(*logrus.Entry); ok {
		return entry.WithContext(ctx)
	}
	return logrus.WithContext(ctx)
}
