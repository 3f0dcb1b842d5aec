package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Format represents logger output format.
type Format string

const (
	// FormatJSON outputs structured logs for log aggregation systems.
	FormatJSON Format = "json"
	// FormatText outputs human-readable logs for development debugging.
	FormatText Format = "text"
)

// Config represents the logger configuration.
type Config struct {
	Level  slog.Level `env:"LOG_LEVEL" envDefault:"info"`  // Level is the minimum level emitted.
	Format Format     `env:"LOG_FORMAT" envDefault:"json"` // Format selects json or text output.
	Name   string     `env:"LOG_SERVICE_NAME"`             // Name is attached to every record as "service" when set.
}

// Option configures logger creation.
type Option func(*options)

type options struct {
	cfg    Config
	output io.Writer
	attrs  []slog.Attr
}

// WithLevel sets the minimum log level.
func WithLevel(l slog.Level) Option {
	return func(o *options) { o.cfg.Level = l }
}

// WithFormat sets the output format. Invalid formats panic so that
// misconfiguration prevents startup instead of surfacing at runtime.
func WithFormat(f Format) Option {
	return func(o *options) {
		switch f {
		case FormatJSON, FormatText:
			o.cfg.Format = f
		default:
			panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
		}
	}
}

// WithOutput sets a custom output destination, ignoring nil writers.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// WithAttr adds static attributes to every log record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(o *options) {
		o.attrs = append(o.attrs, attrs...)
	}
}

// New creates a slog.Logger from configuration, applying options on top.
func New(cfg Config, opts ...Option) *slog.Logger {
	o := &options{cfg: cfg, output: os.Stdout}
	if o.cfg.Format == "" {
		o.cfg.Format = FormatJSON
	}
	for _, opt := range opts {
		opt(o)
	}

	var handler slog.Handler
	handlerOpts := &slog.HandlerOptions{Level: o.cfg.Level}
	if o.cfg.Format == FormatText {
		handler = slog.NewTextHandler(o.output, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(o.output, handlerOpts)
	}

	attrs := o.attrs
	if o.cfg.Name != "" {
		attrs = append(attrs, slog.String("service", o.cfg.Name))
	}
	if len(attrs) > 0 {
		handler = handler.WithAttrs(attrs)
	}

	return slog.New(handler)
}
