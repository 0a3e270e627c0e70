package logging

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// Environment selects the log profile.
type Environment string

const (
	EnvDev  Environment = "dev"
	EnvProd Environment = "prod"
)

// Module tags log records with the emitting subsystem.
type Module string

// ServiceInfo identifies the running service in every log record.
type ServiceInfo struct {
	Name     string
	Version  string
	Revision string
}

type Options struct {
	Service       ServiceInfo
	Environment   Environment
	Level         slog.Level
	GCPProjectID  string
	DefaultModule Module
}

type ctxKey int

const requestIDKey ctxKey = iota

// WithRequestID stores the request id for downstream log records and
// outbound request headers.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// ValidateAndExtractRequestID returns id when it is a well-formed UUID,
// otherwise a fresh one.
func ValidateAndExtractRequestID(id string) string {
	if id != "" && uuid.Validate(id) == nil {
		return id
	}
	return uuid.NewString()
}

// NewLogger builds the service-wide JSON logger. Records pick up the
// request id from context and, on GCP builds, trace correlation attrs.
func NewLogger(opts Options) *slog.Logger {
	base := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: opts.Level,
	})

	handler := &contextHandler{
		Handler:       base,
		projectID:     opts.GCPProjectID,
		defaultModule: opts.DefaultModule,
	}

	logger := slog.New(handler).With(
		slog.String("service", opts.Service.Name),
		slog.String("version", opts.Service.Version),
		slog.String("env", string(opts.Environment)),
	)
	if opts.Service.Revision != "" {
		logger = logger.With(slog.String("revision", opts.Service.Revision))
	}

	return logger
}

type contextHandler struct {
	slog.Handler
	projectID     string
	defaultModule Module
}

func (h *contextHandler) Handle(ctx context.Context, record slog.Record) error {
	if id := RequestIDFromContext(ctx); id != "" {
		record.AddAttrs(slog.String("request_id", id))
	}
	if h.defaultModule != "" {
		record.AddAttrs(slog.String("module", string(h.defaultModule)))
	}
	if attrs := gcpTraceAttrs(ctx, h.projectID); len(attrs) > 0 {
		record.AddAttrs(attrs...)
	}

	return h.Handler.Handle(ctx, record)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{
		Handler:       h.Handler.WithAttrs(attrs),
		projectID:     h.projectID,
		defaultModule: h.defaultModule,
	}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{
		Handler:       h.Handler.WithGroup(name),
		projectID:     h.projectID,
		defaultModule: h.defaultModule,
	}
}
