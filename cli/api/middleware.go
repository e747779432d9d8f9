package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"

	"github.com/oaiiae/contact-book/handlers"
)

const requestIDHeader = "X-Request-Id"

// ctxlog is a [context.Context] key and acts as a virtual package for operations related to it.
type ctxlog struct{}

// requestID returns the id sent by the client or a new UUIDv7.
func requestID(ctx huma.Context) string {
	if id := ctx.Header(requestIDHeader); id != "" {
		return id
	}
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// loggerMiddleware returns a middleware that sets a [slog.Logger] in
// the [context.Context] and logs the request after it has terminated.
func (key ctxlog) loggerMiddleware(parent *slog.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		id := requestID(ctx)
		ctx.SetHeader(requestIDHeader, id)
		logger := parent.With("x-request-id", id)

		start := time.Now()
		next(huma.WithValue(ctx, key, logger.WithGroup("op").With("id", ctx.Operation().OperationID)))

		logger.LogAttrs(context.Background(), slog.LevelInfo,
			joinSpace(ctx.Operation().Method, ctx.Operation().Path, ctx.Version().Proto),
			slog.String("from", ctx.RemoteAddr()),
			slog.String("ref", ctx.Header("Referer")),
			slog.String("ua", ctx.Header("User-Agent")),
			slog.Int("status", ctx.Status()),
			slog.Duration("dur", time.Since(start)),
		)
	}
}

func (key ctxlog) logger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(key).(*slog.Logger); ok {
		return logger
	}
	return fallback
}

// recoverMiddleware returns a middleware that recovers and logs the value from panic.
// The client gets a 500 with a generic error body.
func (key ctxlog) recoverMiddleware(fallback *slog.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			key.logger(ctx.Context(), fallback).LogAttrs(context.Background(), slog.LevelError,
				"panic occurred", slog.Any("recovered", v))

			ctx.SetHeader("Content-Type", "application/json")
			ctx.SetStatus(http.StatusInternalServerError)
			_ = json.NewEncoder(ctx.BodyWriter()).Encode(
				handlers.NewError(http.StatusInternalServerError, "internal server error"))
		}()
		next(ctx)
	}
}

// errorHandler returns a function that gets the [slog.Logger] from [context.Context] and logs the error.
func (key ctxlog) errorHandler(fallback *slog.Logger) func(context.Context, error) {
	return func(ctx context.Context, err error) {
		level := slog.LevelError
		attrs := []slog.Attr{slog.Any("err", err)}

		var statusErr huma.StatusError
		if errors.As(err, &statusErr) {
			switch statusErr.GetStatus() / 100 {
			case 5: //nolint: mnd // 5XX HTTP Status Codes
				level = slog.LevelError
			case 4: //nolint: mnd // 4XX HTTP Status Codes
				level = slog.LevelWarn
			case 3: //nolint: mnd // 3XX HTTP Status Codes
				level = slog.LevelInfo
			}
			attrs = append(attrs, slog.Int("status", statusErr.GetStatus()))
		}

		key.logger(ctx, fallback).LogAttrs(context.Background(), level, "error occurred", attrs...)
	}
}

// requestMeter holds one counter and histogram per operation and status.
type requestMeter struct {
	set     *metrics.Set
	buckets []float64

	mu   sync.Mutex
	refs map[string]requestMeterRef
}

type requestMeterRef struct {
	*metrics.Counter
	*metrics.PrometheusHistogram
}

func (m *requestMeter) ref(op *huma.Operation, status int) requestMeterRef {
	code := strconv.Itoa(status)
	uid := op.OperationID + " " + code

	m.mu.Lock()
	defer m.mu.Unlock()
	ref, ok := m.refs[uid]
	if !ok {
		labels := joinQuote("{method=", op.Method, ",path=", op.Path, ",status=", code, "}")
		ref = requestMeterRef{
			m.set.NewCounter("http_requests_total" + labels),
			m.set.NewPrometheusHistogramExt("http_request_duration_seconds"+labels, m.buckets),
		}
		m.refs[uid] = ref
	}
	return ref
}

// meterRequests returns a middleware counting requests and timing them in set.
func meterRequests(set *metrics.Set) func(huma.Context, func(huma.Context)) {
	m := &requestMeter{
		set:     set,
		buckets: metrics.ExponentialBuckets(1e-3, 5, 6), //nolint: mnd // arbitrary
		refs:    make(map[string]requestMeterRef),
	}

	return func(ctx huma.Context, next func(huma.Context)) {
		start := time.Now()
		next(ctx)

		ref := m.ref(ctx.Operation(), ctx.Status())
		ref.Inc()
		ref.UpdateDuration(start)
	}
}
