package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kailas-cloud/docsgate/internal/domain"
	"github.com/kailas-cloud/docsgate/internal/domain/tool"
	"github.com/kailas-cloud/docsgate/internal/logger"
	"github.com/kailas-cloud/docsgate/internal/metrics"
)

// Metric status labels.
const (
	statusOK                 = "ok"
	statusValidation         = "validation"
	statusUnknownTool        = "unknown_tool"
	statusNotFound           = "not_found"
	statusBackendUnavailable = "backend_unavailable"
	statusBackendError       = "backend_error"
	statusCanceled           = "canceled"
	statusPanic              = "panic"
	statusError              = "error"

	// unknownToolLabel replaces unregistered names in metric labels.
	unknownToolLabel = "unknown"
)

// Dispatcher runs tool invocations. Every call yields exactly one response;
// failures become error envelopes and never escape as errors or panics.
// Safe for concurrent use.
type Dispatcher struct {
	registry *Registry
	logger   *zap.Logger
}

// NewDispatcher creates a dispatcher over a populated registry.
func NewDispatcher(registry *Registry, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{registry: registry, logger: logger}
}

// Tools lists the registered tool descriptors in their fixed order.
func (d *Dispatcher) Tools() tool.Listing {
	return tool.Listing{Tools: d.registry.List()}
}

// Dispatch validates and runs one invocation.
func (d *Dispatcher) Dispatch(ctx context.Context, inv tool.Invocation) (resp tool.Response) {
	start := time.Now()
	log := logger.FromContextOr(ctx, d.logger).With(
		zap.String("tool", inv.Name),
		zap.String("invocation_id", uuid.NewString()),
	)
	label := inv.Name

	defer func() {
		if rec := recover(); rec != nil {
			log.Error("Tool handler panicked",
				zap.Any("panic", rec),
				zap.Stack("stack"),
			)
			resp = tool.Failure(fmt.Sprintf("internal error in tool %s", inv.Name))
			d.observe(label, statusPanic, start)
		}
	}()

	desc, handler, ok := d.registry.Lookup(inv.Name)
	if !ok {
		label = unknownToolLabel
		return d.fail(log, label, start, &domain.UnknownToolError{Name: inv.Name})
	}

	args, err := prepareArgs(desc, inv.Arguments)
	if err != nil {
		return d.fail(log, label, start, err)
	}

	out, err := handler(logger.ContextWithLogger(ctx, log), args)
	if err != nil {
		return d.fail(log, label, start, err)
	}

	resp = tool.Success(out)
	if resp.IsError {
		log.Error("Tool result encoding failed", zap.String("error", resp.Text()))
		d.observe(label, statusError, start)
		return resp
	}

	d.observe(label, statusOK, start)
	log.Info("Tool invocation completed", zap.Duration("duration", time.Since(start)))
	return resp
}

func (d *Dispatcher) fail(log *zap.Logger, label string, start time.Time, err error) tool.Response {
	status := statusOf(err)
	d.observe(label, status, start)

	fields := []zap.Field{
		zap.String("status", status),
		zap.Duration("duration", time.Since(start)),
		zap.Error(err),
	}
	switch status {
	case statusBackendUnavailable, statusBackendError, statusError:
		log.Error("Tool invocation failed", fields...)
	default:
		log.Warn("Tool invocation rejected", fields...)
	}
	return tool.Failure(err.Error())
}

func (d *Dispatcher) observe(label, status string, start time.Time) {
	metrics.ToolInvocationsTotal.WithLabelValues(label, status).Inc()
	metrics.ToolInvocationDuration.WithLabelValues(label).Observe(time.Since(start).Seconds())
}

// statusOf classifies an invocation error into a metric label.
func statusOf(err error) string {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return statusValidation
	case errors.Is(err, domain.ErrUnknownTool):
		return statusUnknownTool
	case errors.Is(err, domain.ErrDocumentNotFound):
		return statusNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return statusCanceled
	case errors.Is(err, domain.ErrBackendUnavailable):
		return statusBackendUnavailable
	case errors.Is(err, domain.ErrBackendError):
		return statusBackendError
	default:
		return statusError
	}
}
