// Package instrument decorates a backend.Client with OpenTelemetry spans and
// Prometheus query metrics.
package instrument

import (
	"context"
	"time"

	"github.com/louisbranch/portfolio/internal/backend"
	"github.com/louisbranch/portfolio/internal/platform/metrics"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/portfolio/internal/backend"

// Operation labels.
const (
	OpSelect = "select"
	OpCount  = "count"
	OpSingle = "single"
	OpInsert = "insert"
)

// Client wraps another backend.Client.
type Client struct {
	next    backend.Client
	tracer  trace.Tracer
	metrics *metrics.Metrics
}

var _ backend.Client = (*Client)(nil)

// Option configures the decorator.
type Option func(*Client)

// WithTracerProvider replaces the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) {
		if tp != nil {
			c.tracer = tp.Tracer(tracerName)
		}
	}
}

// Wrap decorates next. A nil m disables metrics.
func Wrap(next backend.Client, m *metrics.Metrics, opts ...Option) *Client {
	c := &Client{next: next, tracer: otel.Tracer(tracerName), metrics: m}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Select implements backend.Client.
func (c *Client) Select(ctx context.Context, q backend.Query, dest any) (backend.Result, error) {
	op := operation(q)
	ctx, span := c.tracer.Start(ctx, "backend."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.collection.name", q.Table),
			attribute.String("db.operation.name", op),
			attribute.Int("portfolio.query.filters", len(q.Filters)),
			attribute.Int("portfolio.query.limit", q.Max),
		),
	)
	defer span.End()

	start := time.Now()
	res, err := c.next.Select(ctx, q, dest)
	c.observe(q.Table, op, start, err)
	if res.Counted {
		span.SetAttributes(attribute.Int("portfolio.query.count", res.Count))
	}
	record(span, err)
	return res, err
}

// Insert implements backend.Client.
func (c *Client) Insert(ctx context.Context, table string, row any) error {
	ctx, span := c.tracer.Start(ctx, "backend."+OpInsert,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.collection.name", table),
			attribute.String("db.operation.name", OpInsert),
		),
	)
	defer span.End()

	start := time.Now()
	err := c.next.Insert(ctx, table, row)
	c.observe(table, OpInsert, start, err)
	record(span, err)
	return err
}

func (c *Client) observe(table, op string, start time.Time, err error) {
	if c.metrics == nil {
		return
	}
	outcome := metrics.OutcomeOK
	if err != nil && !backend.IsNotFound(err) {
		outcome = metrics.OutcomeError
	}
	c.metrics.BackendQueries.WithLabelValues(table, op, outcome).Inc()
	c.metrics.BackendDuration.WithLabelValues(table, op).Observe(time.Since(start).Seconds())
}

func record(span trace.Span, err error) {
	if err == nil {
		return
	}
	if backend.IsNotFound(err) {
		span.SetAttributes(attribute.Bool("portfolio.query.empty", true))
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

func operation(q backend.Query) string {
	switch {
	case q.HeadOnly:
		return OpCount
	case q.SingleRow:
		return OpSingle
	default:
		return OpSelect
	}
}
