package metrics

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/10igma/spacetrader-web/internal/application/mediator"
)

// PrometheusMiddleware records the duration and outcome of every request
// sent through the mediator. A nil collector disables it.
func PrometheusMiddleware(collector *CommandMetricsCollector) mediator.Middleware {
	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		if collector == nil {
			return next(ctx, request)
		}

		start := time.Now()
		response, err := next(ctx, request)
		collector.RecordCommandExecution(commandName(request), time.Since(start), err)
		return response, err
	}
}

// commandName strips the pointer and package prefix from the request type:
// "*commands.WarpCommand" becomes "WarpCommand".
func commandName(request mediator.Request) string {
	if request == nil {
		return "UnknownCommand"
	}
	name := strings.TrimPrefix(reflect.TypeOf(request).String(), "*")
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
}
