package proxy

import (
	"reflect"
	"strings"
	"time"

	"go.uber.org/zap"
)

// UpperCase returns an Interceptor that uppercases every string-kind
// result of the delegate. Named string types keep their type; other
// results and the arguments are passed through unchanged.
func UpperCase() Interceptor {
	return func(call Call, next Invoker) []reflect.Value {
		results := next(call.Args)
		out := make([]reflect.Value, len(results))
		for i, r := range results {
			out[i] = upper(r)
		}
		return out
	}
}

func upper(v reflect.Value) reflect.Value {
	if v.Kind() != reflect.String {
		return v
	}
	return reflect.ValueOf(strings.ToUpper(v.String())).Convert(v.Type())
}

// Logging returns an Interceptor that logs each call with its elapsed
// time at debug level. A nil logger discards the entries.
func Logging(l *zap.Logger) Interceptor {
	if l == nil {
		l = zap.NewNop()
	}
	return func(call Call, next Invoker) []reflect.Value {
		start := time.Now()
		defer func() {
			l.Debug("call",
				zap.String("method", call.Method),
				zap.Int("args", len(call.Args)),
				zap.Duration("elapsed", time.Since(start)),
			)
		}()
		return next(call.Args)
	}
}
