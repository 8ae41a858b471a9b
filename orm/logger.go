package orm

import (
	"context"

	"go.uber.org/zap"
)

type zapLogger struct {
	l *zap.Logger
}

// ZapLogger adapts a *zap.Logger to Logger. Statements are logged at
// debug level with their arguments.
func ZapLogger(l *zap.Logger) Logger {
	return zapLogger{l: l}
}

func (z zapLogger) Log(_ context.Context, query string, args ...any) {
	z.l.Debug("exec", zap.String("query", query), zap.Any("args", args))
}
