// SPDX-License-Identifier: MIT

package convert

import (
	"context"

	"github.com/sirupsen/logrus"
)

type loggerContextKey string

const loggerContextKeyVal = loggerContextKey("logrus.FieldLogger")

// Logger returns the logger carried by ctx, or the standard logger.
func Logger(ctx context.Context) logrus.FieldLogger {
	if logger, ok := ctx.Value(loggerContextKeyVal).(logrus.FieldLogger); ok {
		return logger
	}

	return logrus.StandardLogger()
}

// WithLogger returns a context carrying logger.
func WithLogger(ctx context.Context, logger logrus.FieldLogger) context.Context {
	return context.WithValue(ctx, loggerContextKeyVal, logger)
}
