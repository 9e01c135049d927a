package ops

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Fuabioo/ghmcp/internal/errors"
	"github.com/Fuabioo/ghmcp/internal/github"
	"github.com/google/uuid"
)

// Dispatcher serves tool calls: one table lookup, one upstream GET, one
// reshape. It holds no mutable state and is safe for concurrent use.
type Dispatcher struct {
	fetcher github.Fetcher
	logger  *slog.Logger
}

// NewDispatcher creates a Dispatcher that reads GitHub through fetcher.
func NewDispatcher(fetcher github.Fetcher, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{fetcher: fetcher, logger: logger}
}

// Invoke runs the named tool. It always returns a Result; failures of any
// kind, including panics while reshaping, become Failure results.
func (d *Dispatcher) Invoke(ctx context.Context, name string, args map[string]any) (result Result) {
	logger := d.logger.With("call_id", uuid.NewString(), "tool", name)
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			logger.Error("tool panicked", "panic", r)
			result = Failure(fmt.Sprint(r))
			result.Code = errors.CodeInternal
		}
	}()

	op, ok := Lookup(name)
	if !ok {
		return d.fail(logger, errors.UnknownTool(name))
	}

	resolved, err := op.resolve(args)
	if err != nil {
		return d.fail(logger, err)
	}

	endpoint := op.endpoint(resolved)
	logger.Debug("invoking tool", "endpoint", endpoint)

	resp, err := d.fetcher.FetchJSON(ctx, endpoint)
	if err != nil {
		return d.fail(logger, err)
	}

	if message, failed := github.UpstreamError(resp); failed {
		return d.fail(logger, errors.UpstreamError(message))
	}

	payload, err := op.reshape(resp)
	if err != nil {
		return d.fail(logger, err)
	}

	logger.Debug("tool succeeded", "duration", time.Since(start))
	return Success(payload)
}

func (d *Dispatcher) fail(logger *slog.Logger, err error) Result {
	code := errors.Code(err)
	logger.Warn("tool failed", "code", code, "error", errors.Message(err))

	result := Failure(errors.Message(err))
	result.Code = code
	return result
}
